// Package types defines the provider entities, pipeline stages, and
// standard errors shared by the nextrip resolver and CLI.
package types
