package handler

const (
	// RootPath is the root path of the API route group.
	RootPath = "/api"

	// ErrNilACDFatalLogMsg is used if app or cfg or db var pointer is nil.
	ErrNilACDFatalLogMsg = "app, cfg or db is nil"
)

// Error codes surfaced to clients.
const (
	// CodeUnauthorized is returned when a capability check denies the request.
	CodeUnauthorized = "UNAUTHORIZED"
	// CodeNotFound is returned for unmatched routes.
	CodeNotFound = "NOT_FOUND"
	// CodeSystemError is returned for any uncaught store or parsing failure.
	CodeSystemError = "SYSTEM_ERROR"
)

// User-facing messages. The product ships in Spanish.
const (
	// MsgNotFound is the body of 404 responses.
	MsgNotFound = "Ruta no encontrada"
	// MsgSystemError is the body of 500 responses.
	MsgSystemError = "Error del sistema. Por favor intenta de nuevo."
)
