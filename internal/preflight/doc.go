// Package preflight provides readiness checks for the files and
// collaborators the advisory check touches.
//
// The checks back "pgadvise status" only. The check command itself never
// runs them: by policy it proceeds regardless of what is broken.
package preflight
