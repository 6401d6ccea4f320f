// Package errors provides the structured error type used across wmsui.
//
// Every failure the UI layer surfaces carries a Kind that places it in the
// taxonomy the API wrappers work with:
//   - network: the request did not complete
//   - status: the server answered with a non-2xx status
//   - decode: the response body was not the JSON we expected
//
// Configuration and bridge protocol failures have kinds of their own.
//
// # Error Codes
//
// Each error carries a short code (e.g., "W001") registered with a default
// message and detail. Callers override Message with what the user should
// see; the code and the wrapped cause remain available for logs:
//
//	err := errors.New("W002").
//	    WithMessage("Quantity exceeds stock").
//	    WithRequest("POST", url, 400)
//
// Error supports errors.Is and errors.As through Unwrap.
package errors
