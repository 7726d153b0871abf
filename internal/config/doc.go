// Package config loads, normalizes, and validates pgadvise configuration.
//
// Configuration is TOML. The file is optional: maintainer scripts must be
// able to run on a bare system, so a missing file yields the built-in
// defaults, which carry the standard_conforming_strings probe. Paths are
// expanded (including tilde shortcuts) and every probe is sanitized before
// validation, so downstream code never sees relative paths or padded
// strings.
package config
