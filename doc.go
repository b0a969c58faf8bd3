// Package logfacade binds source files to stable log namespaces and routes
// debug text and caught errors to injected collaborators.
//
// A Facade is built once per process with its collaborators: a path
// resolver, a process-kind provider, a debug sink, a display sink and,
// optionally, an analytics tracker and an error-aggregation backend. Each
// source unit then asks it for an emitter or a reporter:
//
//	var (
//		debug    = facade.NewDebugEmitter(logfacade.SourceFile())
//		logError = facade.NewErrorReporter(logfacade.SourceFile(), false)
//	)
//
//	debug.Emitf("connected to %s", addr)
//	_ = logError.ReportErr(err)
//
// Namespaces look like "App:feature/ui" and, for files under common/,
// "App:common/net/client:main" so shared code stays attributable to the
// process that ran it. Remote reporting is best-effort: a missing backend
// is a no-op and a failing one is logged on the fallback channel.
//
// Bootstrap wires the zerolog-backed Service as display sink and fallback
// channel from a single Config.
package logfacade
