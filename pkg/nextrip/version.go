// Package nextrip holds build metadata for the nextrip CLI.
package nextrip

// Version is the released version of the nextrip CLI.
const Version = "0.1.0"
