package logfacade

const (
	emptyString  = ""
	sharedPrefix = "common/"
	nsSeparator  = ":"
)

const (
	// DefaultSourceDir is the directory under the application root that
	// source identifiers are made relative to.
	DefaultSourceDir = "scripts"

	// DefaultProcessKind is used when no process kind is configured.
	DefaultProcessKind = "main"
)

// Analytics event fields sent with every forwarded report.
const (
	EventCategoryLogs    = "Logs"
	EventActionException = "Exception"
	EventNameFatalError  = "Fatal Error"
	EventNameError       = "Error"
)

const (
	entryPointLogFatal     = "logFatal"
	entryPointLogError     = "logError"
	defaultErrorName       = "Error"
	defaultLogLevel        = "info"
	defaultLogFileBaseName = "app"

	extraKeyTrace       = "trace"
	extraKeyReportID    = "report_id"
	extraKeyErrorChain  = "error_chain"
	extraKeyErrorRoot   = "error_root"
	extraKeyErrorRootOp = "error_root_op"
	tagKeyNamespace     = "namespace"

	backendAnalytics   = "analytics"
	backendAggregation = "aggregation"

	strictnessNone  = "none"
	strictnessAll   = "all"
	strictnessFatal = "fatal"
	strictnessError = "error"
)

const (
	errMsgNilConfig      = "Logging config is nil."
	errMsgNilService     = "Logger service is nil."
	errMsgConfigInvalid  = "Logging configuration is invalid."
	errMsgRelLogFileDir  = "RelLogFileDir must be a relative path inside the working dir."
	errMsgNoPaths        = "Path resolver is not set."
	errMsgNoProcess      = "Process kind provider is not set."
	errMsgNoDebugSink    = "Debug sink is not set."
	errMsgNoDisplaySink  = "Display sink is not set."
	errMsgReadConfig     = "Unable to read config file."
	errMsgParseConfig    = "Unable to parse config file."
	errMsgWorkingDirNone = "Working dir has not been set."
	errMsgNoWriters      = "No logging channels enabled."
)
