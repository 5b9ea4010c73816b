package conf

import (
	"fmt"
	"os"
	"reflect"

	"dario.cat/mergo"
	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

// Error codes surfaced by the loader.
const (
	ErrCodeInvalidType  = "CONFIG_INVALID_TYPE"
	ErrCodeEnvironment  = "CONFIG_ENV_READ_FAILED"
	ErrCodeFileNotFound = "CONFIG_FILE_NOT_FOUND"
	ErrCodeMerge        = "CONFIG_MERGE_FAILED"
	ErrCodeValidation   = "CONFIG_VALIDATION_FAILED"
)

// Error wraps a configuration failure with a stable code.
type Error struct {
	Code    string
	Message string
	Cause   error
}

func (e Error) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e Error) Unwrap() error {
	return e.Cause
}

// Loader reads configuration from the environment, optionally merged with a
// file, then validates the result with struct tags.
type Loader struct {
	fileName string
	validate *validator.Validate
}

// Option configures a Loader.
type Option func(*Loader)

// WithFileName sets a configuration file that is merged beneath environment
// variables (environment wins).
func WithFileName(fileName string) Option {
	return func(l *Loader) {
		l.fileName = fileName
	}
}

// NewLoader creates a configuration loader. If no file is configured and a
// .env file exists in the working directory, it is used as the file source.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{validate: validator.New()}
	for _, opt := range opts {
		opt(l)
	}
	if l.fileName == "" {
		if _, err := os.Stat(".env"); err == nil {
			l.fileName = ".env"
		}
	}
	return l
}

// Load populates cfg, which must be a pointer to a struct.
func (l *Loader) Load(cfg interface{}) error {
	if reflect.ValueOf(cfg).Kind() != reflect.Ptr {
		return &Error{
			Code:    ErrCodeInvalidType,
			Message: fmt.Sprintf("configuration must be a pointer to struct, got %T", cfg),
		}
	}

	if err := cleanenv.ReadEnv(cfg); err != nil {
		return &Error{Code: ErrCodeEnvironment, Message: "failed to read environment variables", Cause: err}
	}

	if l.fileName != "" {
		if err := l.mergeFile(cfg); err != nil {
			return err
		}
	}

	if err := l.validate.Struct(cfg); err != nil {
		return &Error{Code: ErrCodeValidation, Message: "configuration validation failed", Cause: err}
	}

	return nil
}

func (l *Loader) mergeFile(cfg interface{}) error {
	fileCfg := reflect.New(reflect.ValueOf(cfg).Elem().Type()).Interface()

	if err := cleanenv.ReadConfig(l.fileName, fileCfg); err != nil {
		return &Error{
			Code:    ErrCodeFileNotFound,
			Message: fmt.Sprintf("failed to read configuration file: %s", l.fileName),
			Cause:   err,
		}
	}

	// Environment values already present in cfg take precedence.
	if err := mergo.Merge(cfg, fileCfg); err != nil {
		return &Error{Code: ErrCodeMerge, Message: "failed to merge configuration sources", Cause: err}
	}

	return nil
}
