package logfacade

// PathResolver exposes the application root and its display name.
type PathResolver interface {
	AppPath() string
	AppName() string
}

// ProcessKindProvider returns a stable label for the running process,
// e.g. "main", "renderer" or "worker".
type ProcessKindProvider interface {
	ProcessKind() string
}

// DebugSink binds a namespace to a debug channel whose output is handed to out.
// The returned function may drop messages, e.g. when the namespace is disabled.
type DebugSink interface {
	Bind(namespace string, out func(msg string)) func(msg string)
}

// DisplaySink prints messages locally.
type DisplaySink interface {
	PrintDebug(msg string)
	PrintError(namespace string, fatal bool, stackOrMessage string)
}

// Tracker records analytics events.
type Tracker interface {
	TrackEvent(category, action, label, value string) error
}

// CaptureOptions accompany an exception sent to an Aggregator.
type CaptureOptions struct {
	Level string
	Extra map[string]any
	Tags  map[string]string
}

// Aggregator captures exceptions. done may be called with the backend's
// event identifier once delivery has been attempted; it may never be called.
// A returned error means the exception was rejected before delivery.
type Aggregator interface {
	CaptureException(err error, opts CaptureOptions, done func(eventID string)) error
}
