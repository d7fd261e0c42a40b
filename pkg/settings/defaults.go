package settings

import (
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

const (
	// DefaultCapacity is the number of upcoming pieces shown to the player.
	DefaultCapacity = 5

	defaultKinds       = "IOTL"
	defaultLogLevel    = "info"
	defaultLogFile     = "logs/tetris-queue.log"
	defaultLogMaxSize  = 10 // megabytes
	defaultLogBackups  = 3
	defaultLogMaxAgeDy = 7
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Default returns the configuration the CLI runs with.
func Default() Config {
	return Config{
		Queue: Queue{
			Capacity:    DefaultCapacity,
			InitialFill: DefaultCapacity,
			Kinds:       defaultKinds,
		},
		Logger: Logger{
			LogLevel:    defaultLogLevel,
			FileLogName: defaultLogFile,
			MaxBackups:  defaultLogBackups,
			MaxAge:      defaultLogMaxAgeDy,
			MaxSize:     defaultLogMaxSize,
			Compress:    true,
		},
	}
}

// Validate checks cfg against its struct tags.
func Validate(cfg Config) error {
	if err := validate.Struct(cfg); err != nil {
		return errors.Wrap(err, "settings: invalid configuration")
	}
	return nil
}
