// Package memory provides in-memory implementations of the driven
// storage ports, used in tests and when persistence is disabled.
package memory
