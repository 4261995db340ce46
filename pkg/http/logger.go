package http

import (
	"go.uber.org/zap"

	"go-weather/pkg/log"
	"go-weather/pkg/msg"
)

// HTTPLogger interface defines methods for logging HTTP requests and responses
type HTTPLogger interface {
	// LogRequest is called before the request is sent with all request data formed
	LogRequest(method, url string)

	// LogResponseSuccess is called immediately after receiving a successful response (non-error HTTP status)
	LogResponseSuccess(method, url string, httpStatus int, responseBody string, latency int64)

	// LogResponseError is called after a transport failure, an error HTTP status or an undecodable body
	LogResponseError(method, url string, httpStatus int, responseBody string, latency int64, err error)
}

// NopLogger discards everything.
type NopLogger struct{}

func (NopLogger) LogRequest(string, string) {}

func (NopLogger) LogResponseSuccess(string, string, int, string, int64) {}

func (NopLogger) LogResponseError(string, string, int, string, int64, error) {}

// ZapLogger writes outbound calls through pkg/log. Only failed calls log the (truncated) response body.
type ZapLogger struct {
	Name string
}

func (l ZapLogger) LogRequest(method, url string) {
	log.Debug(msg.GetMessage("http.request", method, url, l.Name),
		zap.String("client", l.Name),
		zap.String("method", method),
		zap.String("url", url))
}

func (l ZapLogger) LogResponseSuccess(method, url string, httpStatus int, responseBody string, latency int64) {
	log.Debug(msg.GetMessage("http.response", method, url, httpStatus),
		zap.String("client", l.Name),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency),
		zap.Int("response_size", len(responseBody)))
}

func (l ZapLogger) LogResponseError(method, url string, httpStatus int, responseBody string, latency int64, err error) {
	log.Warn(msg.GetMessage("http.request-failed", method, url, err),
		zap.String("client", l.Name),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency),
		zap.String("response", truncate(responseBody, 512)),
		zap.Error(err))
}

func truncate(value string, limit int) string {
	if len(value) <= limit {
		return value
	}
	return value[:limit] + "..."
}
