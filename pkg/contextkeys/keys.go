package contextkeys

type contextKey string

const (
	APIKeyKey    contextKey = "VirtuSIMAPIKey"
	RequestIDKey contextKey = "RequestID"
	LoggerKey    contextKey = "Logger"
)
