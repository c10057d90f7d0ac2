package errors

// Template defines a registered error type.
type Template struct {
	Category Category
	Message  string
	Detail   string
}

// registry maps error codes to their templates.
var registry = map[string]Template{
	// Configuration (E100-E199)

	"E100": {
		Category: CategoryConfig,
		Message:  "Configuration file not found",
		Detail:   "statebind looks for statebind.json in the given directory.",
	},
	"E101": {
		Category: CategoryConfig,
		Message:  "Invalid configuration file",
		Detail:   "The configuration file could not be read or is not valid JSON.",
	},
	"E102": {
		Category: CategoryConfig,
		Message:  "Invalid server port",
		Detail:   "The server port must be between 0 and 65535.",
	},
	"E103": {
		Category: CategoryConfig,
		Message:  "Invalid token length",
		Detail:   "Handle tokens must be at least one character long.",
	},
	"E104": {
		Category: CategoryConfig,
		Message:  "Unknown token source",
		Detail:   "Supported token sources are random, uuid and sequence.",
	},
	"E105": {
		Category: CategoryConfig,
		Message:  "Invalid log level",
		Detail:   "Supported log levels are debug, info, warn and error.",
	},
	"E106": {
		Category: CategoryConfig,
		Message:  "Invalid route path",
		Detail:   "Route paths must start with '/'.",
	},

	// Transport (E200-E299)

	"E200": {
		Category: CategoryProtocol,
		Message:  "Malformed frame",
		Detail:   "A WebSocket frame could not be decoded as a JSON event.",
	},
	"E201": {
		Category: CategoryProtocol,
		Message:  "WebSocket upgrade failed",
		Detail:   "The HTTP connection could not be upgraded to a WebSocket.",
	},
	"E202": {
		Category: CategoryProtocol,
		Message:  "Frame write failed",
		Detail:   "A render frame could not be written to the client.",
	},
}
