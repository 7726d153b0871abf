// Package main hosts the pgadvise CLI entrypoint and command graph.
//
// The Cobra-based command tree covers the maintainer-script entry point
// (check), operator diagnostics (status, history, templates), and
// configuration scaffolding. Subcommands stay thin: probe evaluation, the
// debconf exchange, and persistence all live in internal packages.
package main
