// Package sqlite provides SQLite-backed persistence for diff-run
// history using the modernc.org/sqlite driver.
package sqlite
