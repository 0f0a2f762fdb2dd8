package handler

const (
	// APIPrefix is the path prefix of every json endpoint.
	APIPrefix = "/api/"

	// MsgNotFound is the error text for missing ids and unknown api paths.
	MsgNotFound = "Not found"

	// ErrNilACDFatalLogMsg is used if app or cfg or db var pointer is nil.
	ErrNilACDFatalLogMsg = "app, cfg or db is nil"
)
