// Package sentryreport adapts a sentry-go hub to the logfacade Aggregator.
package sentryreport

import (
	"github.com/Station-Manager/logfacade"
	"github.com/getsentry/sentry-go"
)

// Reporter is a logfacade.Aggregator backed by a sentry hub.
type Reporter struct {
	hub *sentry.Hub
}

var _ logfacade.Aggregator = (*Reporter)(nil)

// New returns a Reporter for hub. A nil hub makes every capture a no-op.
func New(hub *sentry.Hub) *Reporter {
	return &Reporter{hub: hub}
}

// CaptureException sends err on a scope carrying opts. done receives the
// event id, or "" when the client dropped the event.
func (r *Reporter) CaptureException(err error, opts logfacade.CaptureOptions, done func(eventID string)) error {
	if r == nil || r.hub == nil || r.hub.Client() == nil || err == nil {
		return nil
	}

	var id *sentry.EventID
	r.hub.WithScope(func(scope *sentry.Scope) {
		if opts.Level != "" {
			scope.SetLevel(sentry.Level(opts.Level))
		}
		for k, v := range opts.Tags {
			scope.SetTag(k, v)
		}
		for k, v := range opts.Extra {
			scope.SetExtra(k, v)
		}
		id = r.hub.CaptureException(err)
	})

	if done != nil {
		eventID := ""
		if id != nil {
			eventID = string(*id)
		}
		done(eventID)
	}
	return nil
}
