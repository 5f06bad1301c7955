// Package bellows holds shared metadata for the bellows CLI.
package bellows

// Version is the current bellows release.
var Version = "0.3.0"
