// internal/common/errors/handler.go
package errors

// Handler normalizes errors and logs them in a standard shape so the
// transport and engine layers report failures consistently.
type Handler struct {
	logger Logger
}

type Logger interface {
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

func NewHandler(logger Logger) *Handler {
	return &Handler{logger: logger}
}

// Handle normalizes err, logs it with its code and category, and returns
// the normalized error for the caller to map into a response.
func (h *Handler) Handle(err error, fields map[string]interface{}) *StandardError {
	stdErr := Normalize(err)

	logFields := map[string]interface{}{
		"errorCode":     string(stdErr.Code),
		"errorCategory": GetErrorCategory(stdErr.Code),
		"errorDetails":  stdErr.Details,
		"retryable":     stdErr.Retryable,
	}
	for k, v := range fields {
		logFields[k] = v
	}

	if stdErr.Retryable {
		h.logger.Warn(stdErr.Message, logFields)
	} else {
		h.logger.Error(stdErr.Message, logFields)
	}
	return stdErr
}
