package logfacade

import (
	"github.com/Station-Manager/errors"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/atomic"
)

// Options holds the collaborators and policy of a Facade. Paths, Process,
// Debug and Display are required; everything else is optional.
type Options struct {
	Paths   PathResolver
	Process ProcessKindProvider
	Debug   DebugSink
	Display DisplaySink

	Tracker    Tracker
	Aggregator Aggregator

	// SourceDir is joined to the application root before it is stripped
	// from source identifiers. Empty means DefaultSourceDir; "." means none.
	SourceDir string
	Modes     Modes
	// Strict overrides the policy derived from Modes.Dev.
	Strict    StrictPolicy

	// Fallback receives diagnostics about the reporting path itself.
	Fallback      *zerolog.Logger
	MeterProvider metric.MeterProvider
}

type backends struct {
	tracker    Tracker
	aggregator Aggregator
}

// Facade hands out debug emitters and error reporters bound to source files.
type Facade struct {
	paths     PathResolver
	process   ProcessKindProvider
	debug     DebugSink
	display   DisplaySink
	sourceDir string
	modes     Modes
	strict    StrictPolicy
	fallback  zerolog.Logger
	metrics   *reportMetrics
	backends  atomic.Pointer[backends]
}

// New validates opts and returns a ready Facade.
func New(opts Options) (*Facade, error) {
	const op errors.Op = "logfacade.New"
	switch {
	case opts.Paths == nil:
		return nil, errors.New(op).Msg(errMsgNoPaths)
	case opts.Process == nil:
		return nil, errors.New(op).Msg(errMsgNoProcess)
	case opts.Debug == nil:
		return nil, errors.New(op).Msg(errMsgNoDebugSink)
	case opts.Display == nil:
		return nil, errors.New(op).Msg(errMsgNoDisplaySink)
	}

	f := &Facade{
		paths:     opts.Paths,
		process:   opts.Process,
		debug:     opts.Debug,
		display:   opts.Display,
		sourceDir: opts.SourceDir,
		modes:     opts.Modes,
		strict:    opts.Strict,
		fallback:  zerolog.Nop(),
		metrics:   newReportMetrics(opts.MeterProvider),
	}
	if f.sourceDir == emptyString {
		f.sourceDir = DefaultSourceDir
	}
	if f.strict == nil {
		f.strict = StrictFor(emptyString, opts.Modes.Dev)
	}
	if opts.Fallback != nil {
		f.fallback = *opts.Fallback
	}
	f.backends.Store(&backends{tracker: opts.Tracker, aggregator: opts.Aggregator})
	return f, nil
}

// SetTracker replaces the analytics backend. A nil tracker disables it.
func (f *Facade) SetTracker(t Tracker) {
	f.swapBackends(func(b *backends) { b.tracker = t })
}

// SetAggregator replaces the error-aggregation backend. A nil aggregator disables it.
func (f *Facade) SetAggregator(a Aggregator) {
	f.swapBackends(func(b *backends) { b.aggregator = a })
}

func (f *Facade) swapBackends(mutate func(*backends)) {
	for {
		old := f.backends.Load()
		next := &backends{}
		if old != nil {
			*next = *old
		}
		mutate(next)
		if f.backends.CompareAndSwap(old, next) {
			return
		}
	}
}

// Namespace derives the namespace for sourceID from the current collaborators.
// Emitters and reporters memoize this value.
func (f *Facade) Namespace(sourceID string) string {
	return DeriveNamespace(
		sourceID,
		f.paths.AppPath(),
		f.sourceDir,
		f.paths.AppName(),
		f.process.ProcessKind(),
	)
}

// NewDebugEmitter returns an emitter bound to sourceID. Nothing is resolved
// until the first message.
func (f *Facade) NewDebugEmitter(sourceID string) *DebugEmitter {
	return &DebugEmitter{facade: f, sourceID: sourceID}
}

// NewErrorReporter returns a reporter bound to sourceID with a fixed severity.
func (f *Facade) NewErrorReporter(sourceID string, fatal bool) *ErrorReporter {
	return &ErrorReporter{facade: f, sourceID: sourceID, fatal: fatal}
}

// Bootstrap assembles a Facade from config: a zerolog Service as display sink
// and fallback channel, a NamespaceDebugger filtered by DebugNamespaces,
// and static path and process providers. Defaults are applied to a copy, so
// config itself is left untouched. The caller owns the returned Service and
// must Close it.
func Bootstrap(workingDir string, config *Config) (*Facade, *Service, error) {
	const op errors.Op = "logfacade.Bootstrap"
	if config == nil {
		return nil, nil, errors.New(op).Msg(errMsgNilConfig)
	}
	cfg := *config
	cfg.applyDefaults()
	if err := validateConfig(&cfg); err != nil {
		return nil, nil, err
	}

	svc := &Service{
		WorkingDir:    workingDir,
		LoggingConfig: &cfg.Logging,
		ExeName:       cfg.AppName,
	}
	if err := svc.Initialize(); err != nil {
		return nil, nil, err
	}

	fallback := svc.Logger()
	f, err := New(Options{
		Paths:     StaticPaths{Root: cfg.AppRoot, Name: cfg.AppName},
		Process:   StaticProcessKind(cfg.ProcessKind),
		Debug:     NewNamespaceDebugger(cfg.DebugNamespaces...),
		Display:   svc,
		SourceDir: cfg.SourceDir,
		Modes:     cfg.Modes,
		Strict:    StrictFor(cfg.Strictness, cfg.Modes.Dev),
		Fallback:  &fallback,
	})
	if err != nil {
		_ = svc.Close()
		return nil, nil, err
	}
	return f, svc, nil
}
