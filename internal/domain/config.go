package domain

// Config mirrors movierec.yaml.
type Config struct {
	ConfigFormatVersion string             `yaml:"config_format_version"`
	Server              ServerSettings     `yaml:"server"`
	Generative          GenerativeSettings `yaml:"generative"`
	Storage             StorageSettings    `yaml:"storage"`
	Logging             LoggingSettings    `yaml:"logging"`
}

// ServerSettings configures the HTTP boundary.
type ServerSettings struct {
	Host            string   `yaml:"host"`
	Port            int      `yaml:"port"`
	CORSOrigins     []string `yaml:"cors_origins"`
	ShutdownTimeout int      `yaml:"shutdown_timeout"`
}

// StorageSettings configures the request log.
type StorageSettings struct {
	DatabasePath string `yaml:"database_path"`
	QueueSize    int    `yaml:"queue_size"`
}

// LoggingSettings selects the log level and output format.
type LoggingSettings struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}
