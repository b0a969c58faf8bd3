package logfacade

import (
	"sync"
	"sync/atomic"
)

type countingPaths struct {
	root, name string
	calls      atomic.Int32
}

func (p *countingPaths) AppPath() string { p.calls.Add(1); return p.root }
func (p *countingPaths) AppName() string { return p.name }

type countingProcess struct {
	kind  string
	calls atomic.Int32
}

func (p *countingProcess) ProcessKind() string { p.calls.Add(1); return p.kind }

type passthroughDebug struct {
	mu    sync.Mutex
	bound []string
}

func (d *passthroughDebug) Bind(namespace string, out func(string)) func(string) {
	d.mu.Lock()
	d.bound = append(d.bound, namespace)
	d.mu.Unlock()
	return out
}

type printedError struct {
	namespace string
	fatal     bool
	text      string
}

type recordingDisplay struct {
	mu     sync.Mutex
	debugs []string
	errs   []printedError
}

func (d *recordingDisplay) PrintDebug(msg string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.debugs = append(d.debugs, msg)
}

func (d *recordingDisplay) PrintError(namespace string, fatal bool, text string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.errs = append(d.errs, printedError{namespace: namespace, fatal: fatal, text: text})
}

type trackedEvent struct {
	category, action, label, value string
}

type recordingTracker struct {
	events []trackedEvent
	err    error
	panic  any
}

func (t *recordingTracker) TrackEvent(category, action, label, value string) error {
	t.events = append(t.events, trackedEvent{category, action, label, value})
	if t.panic != nil {
		panic(t.panic)
	}
	return t.err
}

type capturedException struct {
	err  error
	opts CaptureOptions
}

type recordingAggregator struct {
	captured []capturedException
	eventID  string
	err      error
	panic    any
}

func (a *recordingAggregator) CaptureException(err error, opts CaptureOptions, done func(string)) error {
	a.captured = append(a.captured, capturedException{err: err, opts: opts})
	if a.panic != nil {
		panic(a.panic)
	}
	if a.err != nil {
		return a.err
	}
	if done != nil {
		done(a.eventID)
	}
	return nil
}

type harness struct {
	paths      *countingPaths
	process    *countingProcess
	debug      *passthroughDebug
	display    *recordingDisplay
	tracker    *recordingTracker
	aggregator *recordingAggregator
}

func newHarness() *harness {
	return &harness{
		paths:      &countingPaths{root: "/app", name: "App"},
		process:    &countingProcess{kind: "main"},
		debug:      &passthroughDebug{},
		display:    &recordingDisplay{},
		tracker:    &recordingTracker{},
		aggregator: &recordingAggregator{eventID: "evt-1"},
	}
}

func (h *harness) options() Options {
	return Options{
		Paths:      h.paths,
		Process:    h.process,
		Debug:      h.debug,
		Display:    h.display,
		Tracker:    h.tracker,
		Aggregator: h.aggregator,
	}
}

func (h *harness) backendCalls() int {
	return len(h.tracker.events) + len(h.aggregator.captured)
}
