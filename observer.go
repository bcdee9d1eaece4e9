package splitwise

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// RequestEvent describes one completed round trip to the service.
type RequestEvent struct {
	ID         string
	Method     string
	URL        string
	StatusCode int
	Body       []byte
	Duration   time.Duration
	Err        error
}

// Observer receives one event per request the client performs.
// Implementations must be safe for concurrent use.
type Observer interface {
	ObserveRequest(ctx context.Context, event RequestEvent)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(ctx context.Context, event RequestEvent)

func (f ObserverFunc) ObserveRequest(ctx context.Context, event RequestEvent) {
	f(ctx, event)
}

// NopObserver discards every event.
type NopObserver struct{}

func (NopObserver) ObserveRequest(context.Context, RequestEvent) {}

// LogrusObserver logs successful requests at debug level and failed ones at
// error level. A nil Logger uses the logrus standard logger.
type LogrusObserver struct {
	Logger *logrus.Logger
}

func (o LogrusObserver) ObserveRequest(_ context.Context, event RequestEvent) {
	logger := o.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	entry := logger.WithFields(logrus.Fields{
		"request_id": event.ID,
		"method":     event.Method,
		"url":        event.URL,
		"status":     event.StatusCode,
		"duration":   event.Duration,
	})
	if event.Err != nil {
		entry.WithError(event.Err).Error("Splitwise request failed")
		return
	}
	entry.WithField("content", string(event.Body)).Debug("Splitwise request completed")
}
