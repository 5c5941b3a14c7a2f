package main

// Exit codes.
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (invalid arguments, runtime failure)
	ExitConfigError = 2 // Configuration error (missing config, invalid database list)
	ExitDataError   = 3 // Data error (malformed database, missing mandatory attribute)
)
