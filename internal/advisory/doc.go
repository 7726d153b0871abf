// Package advisory implements the configuration advisory check that runs
// from maintainer scripts.
//
// A probe names one forbidden assignment in one configuration file. When
// the assignment is present, the checker raises the probe's debconf
// question at critical priority and journals the event. Nothing here ever
// fails the caller: every error is folded into the returned Outcome, and
// the check command discards it after logging. A configuration check must
// never abort a package installation.
package advisory
