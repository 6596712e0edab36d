// Package errors provides structured error handling with machine codes.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// CodeMissingCredential marks operations attempted without an API
	// credential. Construction does not fail on it; requests do.
	CodeMissingCredential Code = "MISSING_CREDENTIAL"

	// CodeNetwork marks transport failures that happened before any HTTP
	// response was received (DNS, connection, timeout).
	CodeNetwork Code = "NETWORK"

	// CodeAPI marks non-success HTTP responses from the trading API.
	CodeAPI Code = "API"

	// CodeResponseParse marks success responses whose body could not be
	// decoded as JSON.
	CodeResponseParse Code = "RESPONSE_PARSE"

	// CodeValidation marks tool arguments that failed schema checks before
	// any HTTP call was attempted.
	CodeValidation Code = "VALIDATION"
)
