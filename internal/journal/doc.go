// Package journal persists a record of every advisory the checker raised,
// backed by SQLite.
//
// The journal exists for operators: "pgadvise history" answers which
// installs tripped the check and whether a frontend actually displayed the
// question. Journal writes are best-effort from the checker's perspective;
// a broken journal never blocks an installation.
package journal
