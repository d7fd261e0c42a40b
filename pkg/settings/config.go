package settings

type Config struct {
	Queue  Queue  `mapstructure:"queue" validate:"required"`
	Logger Logger `mapstructure:"logger" validate:"required"`
}

// Queue is the configuration for the upcoming pieces queue
type Queue struct {
	Capacity    int    `mapstructure:"capacity" validate:"min=1,max=64"`
	InitialFill int    `mapstructure:"initial_fill" validate:"min=0,ltefield=Capacity"`
	Kinds       string `mapstructure:"kinds" validate:"required,max=7"`
}

// Logger is the configuration for the logger
type Logger struct {
	LogLevel    string `mapstructure:"log_level" validate:"oneof=debug info warn error"`
	FileLogName string `mapstructure:"file_log_name"`
	MaxBackups  int    `mapstructure:"max_backups" validate:"min=0"`
	MaxAge      int    `mapstructure:"max_age" validate:"min=0"`
	MaxSize     int    `mapstructure:"max_size" validate:"min=0"`
	Compress    bool   `mapstructure:"compress"`
}
