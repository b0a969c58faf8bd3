package logfacade

import (
	"runtime/debug"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/sourcegraph/conc/panics"
)

// ErrorReporter displays errors locally and forwards them to the reporting
// backends. Its severity is fixed when it is created.
type ErrorReporter struct {
	facade   *Facade
	sourceID string
	fatal    bool

	once      sync.Once
	namespace string
}

// Namespace returns the namespace the reporter reports under.
func (r *ErrorReporter) Namespace() string {
	r.once.Do(func() {
		r.namespace = r.facade.Namespace(r.sourceID)
	})
	return r.namespace
}

// Severity returns SeverityFatal or SeverityError.
func (r *ErrorReporter) Severity() Severity { return severityOf(r.fatal) }

// ReportErr reports err with remote reporting enabled.
func (r *ErrorReporter) ReportErr(err error) error {
	return r.Report(Err(err), false)
}

// Report displays in and, unless skipReporting is set or the facade runs
// in debug mode, forwards it to the tracker and the aggregator.
//
// The only error returned is a *ProgrammingError, when in is not an error
// and the strict policy covers this reporter's severity. Otherwise the raw
// value is coerced into a CoercedError. Backend failures never surface.
func (r *ErrorReporter) Report(in Input, skipReporting bool) error {
	f := r.facade
	sev := r.Severity()
	ns := r.Namespace()

	err := in.err
	if !in.IsError() {
		if f.strict(sev) {
			f.metrics.recordReport(sev, outcomeRejected)
			return &ProgrammingError{EntryPoint: r.entryPoint()}
		}
		err = coerce(in.raw)
	}

	f.display.PrintError(ns, r.fatal, stackOrMessage(err))

	if skipReporting || f.modes.Debug {
		f.metrics.recordReport(sev, outcomeSuppressed)
		return nil
	}

	f.forward(ns, sev, err)
	f.metrics.recordReport(sev, outcomeForwarded)
	return nil
}

func (r *ErrorReporter) entryPoint() string {
	if r.fatal {
		return entryPointLogFatal
	}
	return entryPointLogError
}

func (f *Facade) forward(ns string, sev Severity, err error) {
	b := f.backends.Load()
	if b == nil || (b.tracker == nil && b.aggregator == nil) {
		return
	}

	reportID := uuid.NewString()
	log := f.fallback.With().
		Str(tagKeyNamespace, ns).
		Str(extraKeyReportID, reportID).
		Logger()

	if b.tracker != nil {
		f.guard(backendAnalytics, log, func() error {
			return b.tracker.TrackEvent(
				EventCategoryLogs,
				EventActionException,
				eventLabel(sev),
				ns+": "+errorName(err)+": "+err.Error(),
			)
		})
	}

	if b.aggregator != nil {
		chain := walkErrorChain(err)
		opts := captureOptions(ns, sev, chain, reportID)
		log.Debug().Err(err).Str(extraKeyErrorChain, chain.String()).Msg("reporting to aggregator")
		f.guard(backendAggregation, log, func() error {
			return b.aggregator.CaptureException(err, opts, func(eventID string) {
				log.Debug().Str("event_id", eventID).Msg("reported to aggregator")
			})
		})
	}
}

// captureOptions carries the severity, the stack of the reporting call
// site and the error chain.
func captureOptions(ns string, sev Severity, chain errorChain, reportID string) CaptureOptions {
	root := chain.root()
	extra := map[string]any{
		extraKeyTrace:      string(debug.Stack()),
		extraKeyReportID:   reportID,
		extraKeyErrorChain: chain.messages(),
		extraKeyErrorRoot:  root.msg,
	}
	if root.op != emptyString {
		extra[extraKeyErrorRootOp] = root.op
	}
	return CaptureOptions{
		Level: sev.String(),
		Extra: extra,
		Tags:  map[string]string{tagKeyNamespace: ns},
	}
}

// guard runs a backend call, containing both returned errors and panics.
func (f *Facade) guard(backend string, log zerolog.Logger, call func() error) {
	var err error
	var pc panics.Catcher
	pc.Try(func() { err = call() })

	if rec := pc.Recovered(); rec != nil {
		f.metrics.recordFailure(backend)
		log.Warn().Str("backend", backend).Interface("panic", rec.Value).Msg("reporting backend panicked")
		return
	}
	if err != nil {
		f.metrics.recordFailure(backend)
		log.Warn().Str("backend", backend).Err(err).Msg("reporting backend failed")
	}
}

func eventLabel(sev Severity) string {
	if sev == SeverityFatal {
		return EventNameFatalError
	}
	return EventNameError
}
