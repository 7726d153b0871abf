// Package debconf implements the client half of the debconf confmodule
// protocol, the line-oriented exchange a debconf frontend holds with a
// maintainer script over inherited file descriptors.
//
// Only the small command surface the advisory flow needs is implemented:
// CAPB, INPUT, GO, GET, and FSET. The answer database itself belongs to the
// frontend; this package only queues questions and flushes the display.
package debconf
