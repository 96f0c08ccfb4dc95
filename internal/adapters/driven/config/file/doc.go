// Package file provides a TOML-backed configuration store holding
// default identity rules and CLI defaults. Configuration lives in
// ~/.yamly/config.toml unless another directory is given.
package file
