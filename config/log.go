package config

type LogConfig struct {
	LogLevel   string
	LogHandler string
}

func NewLogConfig() *LogConfig {
	return &LogConfig{
		LogLevel:   "info",
		LogHandler: "default",
	}
}

// ResolveLogConfig overrides the defaults with LOG_LEVEL and LOG_HANDLER.
func ResolveLogConfig(p Provider) *LogConfig {
	conf := NewLogConfig()
	if v := ReadOptional(p, "LOG_LEVEL"); v != "" {
		conf.LogLevel = v
	}
	if v := ReadOptional(p, "LOG_HANDLER"); v != "" {
		conf.LogHandler = v
	}
	return conf
}
