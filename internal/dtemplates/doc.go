// Package dtemplates reads debconf templates files, the declarative side of
// the questions pgadvise raises.
//
// The checker itself never needs these; templates are installed into the
// debconf database by dpkg. This package backs "pgadvise templates" and the
// status check that verifies every configured probe has a matching template,
// and it picks localized description text for display.
package dtemplates
