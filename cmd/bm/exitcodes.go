package main

import (
	"errors"

	"github.com/Cult-of-sam/Bookmark-Manager/internal/bookmark"
)

// Exit codes
const (
	ExitSuccess     = 0 // Success, with or without a bookmark printed
	ExitError       = 1 // I/O failure on the store or output file
	ExitUsageError  = 2 // Bad or missing arguments, unknown subcommand
	ExitDataError   = 3 // Store file cannot be parsed or encoded
	ExitConfigError = 4 // Invalid config file or environment
)

// exitCode maps an error returned by the command tree to an exit code.
func exitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if errors.Is(err, errConfig) {
		return ExitConfigError
	}
	switch bookmark.KindOf(err) {
	case bookmark.KindUsage:
		return ExitUsageError
	case bookmark.KindIO:
		return ExitError
	case bookmark.KindParse, bookmark.KindSerialization:
		return ExitDataError
	}
	// Cobra reports unknown commands and missing required flags as plain
	// errors before any command runs.
	return ExitUsageError
}
