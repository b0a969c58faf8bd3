package logfacade

import (
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

func (s *Service) initializeRollingFileLogger(exeName string) *lumberjack.Logger {
	if exeName == emptyString {
		exeName = defaultLogFileBaseName
	}

	path := filepath.Join(s.WorkingDir, s.LoggingConfig.RelLogFileDir, exeName+".log")

	return &lumberjack.Logger{
		Filename:   path,
		MaxBackups: s.LoggingConfig.LogFileMaxBackups,
		MaxAge:     s.LoggingConfig.LogFileMaxAgeDays,
		MaxSize:    s.LoggingConfig.LogFileMaxSizeMB,
		Compress:   s.LoggingConfig.LogFileCompress,
	}
}

func (s *Service) initializeWriters(exeName string) []io.Writer {
	var writers []io.Writer

	// With both writers disabled the file writer is used anyway. The
	// config is shared with the caller and is not rewritten.
	if s.LoggingConfig.FileLogging || !s.LoggingConfig.ConsoleLogging {
		s.fileWriter = s.initializeRollingFileLogger(exeName)
		writers = append(writers, s.fileWriter)
	}
	if s.LoggingConfig.ConsoleLogging {
		cw := zerolog.ConsoleWriter{Out: os.Stderr, NoColor: s.LoggingConfig.ConsoleNoColor}
		if s.LoggingConfig.ConsoleTimeFormat != emptyString {
			cw.TimeFormat = s.LoggingConfig.ConsoleTimeFormat
		}
		writers = append(writers, cw)
	}

	return writers
}
