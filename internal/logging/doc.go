// Package logging builds slog loggers for pgadvise.
//
// Two formats exist: a compact console format for humans and JSON for log
// shippers. When a debconf frontend is attached, stdout belongs to the
// confmodule protocol, so loggers here only ever write to stderr or files.
package logging
