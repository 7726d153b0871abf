// Package conffile scans flat "name = value" configuration files, such as
// postgresql.conf, for specific uncommented assignments.
//
// It is deliberately not a full parser: the advisory check only ever needs
// to know whether a single setting is assigned a single value. Include
// directives, quoting, and everything else in the target file's grammar are
// ignored.
package conffile
