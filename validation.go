package logfacade

import (
	"path/filepath"
	"strings"
	"sync"

	"github.com/Station-Manager/errors"
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate
var once sync.Once

func getValidator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

func validateConfig(cfg *Config) error {
	const op errors.Op = "logfacade.validateConfig"
	if cfg == nil {
		return errors.New(op).Msg(errMsgNilConfig)
	}

	if err := getValidator().Struct(cfg); err != nil {
		return errors.New(op).Err(err).Msg(errMsgConfigInvalid)
	}

	return checkRelLogFileDir(op, cfg.Logging.RelLogFileDir)
}

func validateLoggingConfig(cfg *LoggingConfig) error {
	const op errors.Op = "logfacade.validateLoggingConfig"
	if cfg == nil {
		return errors.New(op).Msg(errMsgNilConfig)
	}

	if err := getValidator().Struct(cfg); err != nil {
		return errors.New(op).Err(err).Msg(errMsgConfigInvalid)
	}

	return checkRelLogFileDir(op, cfg.RelLogFileDir)
}

// checkRelLogFileDir keeps log files inside the working directory.
func checkRelLogFileDir(op errors.Op, dir string) error {
	if filepath.IsAbs(dir) {
		return errors.New(op).Msg(errMsgRelLogFileDir)
	}
	clean := filepath.ToSlash(filepath.Clean(dir))
	if clean == ".." || strings.HasPrefix(clean, "../") {
		return errors.New(op).Msg(errMsgRelLogFileDir)
	}
	return nil
}
