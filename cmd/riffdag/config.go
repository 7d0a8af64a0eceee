package main

// Flag names for Viper binding
const (
	// Global flags
	FlagVerbose = "verbose"
	FlagConfig  = "config"
	FlagLogFile = "log-file"

	// Inspector flags
	FlagDepth         = "depth"
	FlagWarnThreshold = "warn-threshold"
	FlagPlain         = "plain"
)
