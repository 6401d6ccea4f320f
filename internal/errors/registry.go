package errors

// Template defines a registered error type.
type Template struct {
	Kind    Kind
	Message string
	Detail  string
}

// registry maps error codes to their templates.
var registry = map[string]Template{
	// HTTP exchange errors (W001-W009)

	"W001": {
		Kind:    KindNetwork,
		Message: "Request did not complete",
		Detail:  "The connection failed or was interrupted before a response arrived.",
	},
	"W002": {
		Kind:    KindStatus,
		Message: "Request failed",
		Detail:  "The server answered with a non-success status.",
	},
	"W003": {
		Kind:    KindDecode,
		Message: "Response was not valid JSON",
		Detail:  "The response body could not be decoded.",
	},
	"W004": {
		Kind:    KindNetwork,
		Message: "Request could not be built",
		Detail:  "The URL or request body is invalid.",
	},

	// Configuration errors (W010-W019)

	"W010": {
		Kind:    KindConfig,
		Message: "Invalid configuration",
		Detail:  "A configuration value failed validation.",
	},

	// Page errors (W020-W029)

	"W020": {
		Kind:    KindSurface,
		Message: "Page surface missing",
		Detail:  "An element the UI layer needs is not present on the page.",
	},

	// Bridge protocol errors (W030-W039)

	"W030": {
		Kind:    KindProtocol,
		Message: "Invalid bridge message",
		Detail:  "A WebSocket message from the browser could not be decoded.",
	},

	// Input errors (W040-W049)

	"W040": {
		Kind:    KindInvalid,
		Message: "Invalid input",
		Detail:  "The request was rejected before it was sent.",
	},
}

// Lookup returns the template registered for code.
func Lookup(code string) (Template, bool) {
	t, ok := registry[code]
	return t, ok
}
