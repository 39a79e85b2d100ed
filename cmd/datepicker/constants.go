package main

// Default limits for CLI commands.
const (
	DefaultPartySize    = 2
	DefaultHistoryLimit = 20
	DefaultAuditLimit   = 20
	BarWidth            = 30
)

// Valid export formats.
var validFormats = []string{"json", "yaml", "csv", "markdown"}

// anyFilter disables the liked-by or location filter when sampling.
const anyFilter = "both"
