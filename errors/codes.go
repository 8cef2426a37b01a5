// Package errors provides the fault taxonomy for git-fixme.
// It extends Go's standard error handling with string error codes so that a fault
// raised deep in the walk can be classified by the command layer without string matching.
package errors

// ErrorCode represents a specific fault class.
// Error codes are string-based for debuggability.
type ErrorCode string

const (
	// Scan faults.

	// CodeIO indicates a file or directory could not be read.
	CodeIO ErrorCode = "IO_ERROR"

	// CodeRepositoryQuery indicates an ignore or index lookup failed.
	CodeRepositoryQuery ErrorCode = "REPOSITORY_QUERY_FAILED"

	// CodeAttribution indicates blame data could not be computed for a line.
	CodeAttribution ErrorCode = "ATTRIBUTION_FAILED"

	// CodeScanFailed indicates one or more entries faulted during a walk.
	CodeScanFailed ErrorCode = "SCAN_FAILED"

	// Startup faults.

	// CodeDiscovery indicates no repository encloses the start directory.
	CodeDiscovery ErrorCode = "DISCOVERY_FAILED"

	// CodeInvalidConfig indicates a configuration source could not be loaded.
	CodeInvalidConfig ErrorCode = "INVALID_CONFIGURATION"

	// CodeInvalidInput indicates invalid command input, such as conflicting modes.
	CodeInvalidInput ErrorCode = "INVALID_INPUT"

	// System errors.

	// CodeInternal indicates an internal error occurred.
	CodeInternal ErrorCode = "INTERNAL_ERROR"

	// CodeUnknown indicates an unclassified error.
	CodeUnknown ErrorCode = "UNKNOWN"
)
