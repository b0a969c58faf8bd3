package logfacade

import "sync"

// DebugEmitter writes formatted debug text under a memoized namespace.
type DebugEmitter struct {
	facade   *Facade
	sourceID string

	once      sync.Once
	namespace string
	emit      func(string)
}

func (e *DebugEmitter) resolve() {
	e.once.Do(func() {
		e.namespace = e.facade.Namespace(e.sourceID)
		e.emit = e.facade.debug.Bind(e.namespace, e.facade.display.PrintDebug)
		if e.emit == nil {
			e.emit = func(string) {}
		}
	})
}

// Namespace returns the namespace the emitter writes under.
func (e *DebugEmitter) Namespace() string {
	e.resolve()
	return e.namespace
}

// Emit formats args and writes them to the debug sink. When the first
// argument is a string it is a printf format for the rest: directives
// without a verb or operand stay literal and surplus operands are appended
// with spaces. Otherwise the arguments are joined with spaces.
func (e *DebugEmitter) Emit(args ...any) {
	e.resolve()
	e.emit(formatArgs(args))
}

// Emitf is Emit with an explicit format string.
func (e *DebugEmitter) Emitf(format string, args ...any) {
	e.resolve()
	e.emit(formatf(format, args))
}
