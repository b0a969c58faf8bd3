package logfacade

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/Station-Manager/errors"
	"github.com/Station-Manager/utils"
	"github.com/rs/zerolog"
	"go.uber.org/atomic"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Service is a zerolog-backed DisplaySink. Its logger also serves as the
// fallback channel of a Facade built by Bootstrap.
type Service struct {
	WorkingDir    string
	LoggingConfig *LoggingConfig
	// ExeName names the log file; empty means the executable's name.
	ExeName       string

	mu            sync.Mutex
	logger        atomic.Pointer[zerolog.Logger]
	fileWriter    *lumberjack.Logger
	isInitialized atomic.Bool
}

// Initialize builds the writers and the logger. Calling it again on an
// initialized Service is a no-op.
func (s *Service) Initialize() error {
	const op errors.Op = "logfacade.Service.Initialize"
	if s == nil {
		return errors.New(op).Msg(errMsgNilService)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isInitialized.Load() {
		return nil
	}
	if s.WorkingDir == emptyString {
		return errors.New(op).Msg(errMsgWorkingDirNone)
	}
	if err := validateLoggingConfig(s.LoggingConfig); err != nil {
		return errors.New(op).Err(err).Msg(errMsgConfigInvalid)
	}

	exeName := s.ExeName
	if exeName == emptyString {
		name, err := utils.ExecName(true)
		if err != nil {
			return errors.New(op).Err(err).Msg("Unable to determine executable name.")
		}
		exeName = name
	}

	if s.LoggingConfig.FileLogging || !s.LoggingConfig.ConsoleLogging {
		dir := filepath.Join(s.WorkingDir, s.LoggingConfig.RelLogFileDir)
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return errors.New(op).Err(err).Msg("Unable to create logs directory.")
		}
	}

	writers := s.initializeWriters(exeName)
	if len(writers) == 0 {
		return errors.New(op).Msg(errMsgNoWriters)
	}

	level, err := zerolog.ParseLevel(s.LoggingConfig.Level)
	if err != nil {
		return errors.New(op).Err(err).Msg(errMsgConfigInvalid)
	}

	logger := zerolog.New(io.MultiWriter(writers...)).Level(level)
	if s.LoggingConfig.WithTimestamp {
		logger = logger.With().Timestamp().Logger()
	}

	s.logger.Store(&logger)
	s.isInitialized.Store(true)
	return nil
}

// Close releases the file writer. It's safe to call Close multiple times.
func (s *Service) Close() error {
	if s == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isInitialized.Swap(false) {
		return nil
	}
	s.logger.Store(nil)

	if s.fileWriter != nil {
		err := s.fileWriter.Close()
		s.fileWriter = nil
		if err != nil {
			return errors.New("logfacade.Service.Close").Err(err).Msg("Unable to close log file.")
		}
	}
	return nil
}

// Logger returns a copy of the underlying logger, or a disabled logger
// when the Service is not initialized.
func (s *Service) Logger() zerolog.Logger {
	if s == nil || !s.isInitialized.Load() {
		return zerolog.Nop()
	}
	if logger := s.logger.Load(); logger != nil {
		return *logger
	}
	return zerolog.Nop()
}

// PrintDebug logs msg at debug level.
func (s *Service) PrintDebug(msg string) {
	logger := s.current()
	if logger == nil {
		return
	}
	logger.Debug().Msg(msg)
}

// PrintError logs an error. Fatal errors are written at fatal level
// without terminating the process.
func (s *Service) PrintError(namespace string, fatal bool, stackOrMessage string) {
	logger := s.current()
	if logger == nil {
		return
	}
	level := zerolog.ErrorLevel
	if fatal {
		level = zerolog.FatalLevel
	}
	logger.WithLevel(level).
		Str(tagKeyNamespace, namespace).
		Bool("fatal", fatal).
		Msg(stackOrMessage)
}

func (s *Service) current() *zerolog.Logger {
	if s == nil || !s.isInitialized.Load() {
		return nil
	}
	return s.logger.Load()
}
