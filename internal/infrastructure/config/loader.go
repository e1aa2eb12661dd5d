package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/doeshing/movierec-go/assets"
	"github.com/doeshing/movierec-go/internal/domain"
	"github.com/doeshing/movierec-go/internal/pkg/filesystem"
)

// DefaultConfigFile is looked up in the working directory.
const DefaultConfigFile = "movierec.yaml"

// FileLoader loads YAML configuration from movierec.yaml (overridable via
// MOVIEREC_CONFIG) and applies .env and environment overrides on top.
type FileLoader struct {
	overridePath string
	envFiles     []string
	getenv       func(string) string
}

// NewFileLoader builds a new loader. An empty path means the default lookup.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{overridePath: path, getenv: os.Getenv}
}

// WithEnvFiles sets the dotenv files read before the environment. Missing
// files are ignored. The default is ".env".
func (l *FileLoader) WithEnvFiles(files ...string) *FileLoader {
	l.envFiles = append([]string{}, files...)
	return l
}

// Load implements ports.ConfigProvider. A missing file yields defaults.
func (l *FileLoader) Load(context.Context) (domain.Config, error) {
	if err := l.loadEnvFiles(); err != nil {
		return domain.Config{}, err
	}

	cfg := DefaultConfig()
	data, err := os.ReadFile(l.Path())
	switch {
	case err == nil:
		cfg = domain.Config{}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return domain.Config{}, fmt.Errorf("parse %s: %w", l.Path(), err)
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return domain.Config{}, err
	}

	cfg = hydrateDefaults(cfg)
	return l.applyEnv(cfg)
}

// Path resolves the config file location.
func (l *FileLoader) Path() string {
	if l.overridePath != "" {
		return expandPath(l.overridePath)
	}
	if custom := l.getenv("MOVIEREC_CONFIG"); custom != "" {
		return expandPath(custom)
	}
	return DefaultConfigFile
}

// WriteDefault writes the commented default template unless the file exists
// and force is false. The credential is never written.
func (l *FileLoader) WriteDefault(force bool) (string, error) {
	path := l.Path()
	if !force {
		if _, err := os.Stat(path); err == nil {
			return path, fmt.Errorf("%s already exists", path)
		}
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, domain.DirectoryPermissions); err != nil {
			return path, err
		}
	}
	return path, os.WriteFile(path, assets.DefaultConfigYAML, domain.SecureFilePermissions)
}

// Marshal renders cfg as YAML.
func Marshal(cfg domain.Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

func (l *FileLoader) loadEnvFiles() error {
	files := l.envFiles
	if files == nil {
		files = []string{".env"}
	}
	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", file, err)
		}
	}
	return nil
}

func (l *FileLoader) applyEnv(cfg domain.Config) (domain.Config, error) {
	if host := l.getenv("HOST"); host != "" {
		cfg.Server.Host = host
	}
	if port := l.getenv("PORT"); port != "" {
		n, err := strconv.Atoi(port)
		if err != nil {
			return domain.Config{}, fmt.Errorf("PORT must be a number, got %q", port)
		}
		cfg.Server.Port = n
	}
	if path := l.getenv("MOVIEREC_DB_PATH"); path != "" {
		cfg.Storage.DatabasePath = path
	}
	if level := l.getenv("MOVIEREC_LOG_LEVEL"); level != "" {
		cfg.Logging.Level = level
	}

	cfg.Generative.APIKey = strings.TrimSpace(resolveEnv(l.getenv, cfg.Generative.AuthEnvVar, domain.DefaultAuthEnvVar))
	cfg.Generative.OrganizationID = strings.TrimSpace(resolveEnv(l.getenv, cfg.Generative.OrgEnvVar, "OPENAI_ORG_ID"))
	return cfg, nil
}

// DefaultConfig returns the settings used when no file is present.
func DefaultConfig() domain.Config {
	return domain.Config{
		ConfigFormatVersion: "1",
		Server: domain.ServerSettings{
			Host:            domain.DefaultHost,
			Port:            domain.DefaultPort,
			CORSOrigins:     []string{"*"},
			ShutdownTimeout: int(domain.DefaultShutdownTimeout.Seconds()),
		},
		Generative: domain.GenerativeSettings{
			Endpoint:       domain.DefaultGenerativeEndpoint,
			ModelID:        domain.DefaultGenerativeModel,
			AuthEnvVar:     domain.DefaultAuthEnvVar,
			Temperature:    defaultTemperature(),
			TimeoutSeconds: int(domain.DefaultGenerativeTimeout.Seconds()),
			ExpectedTitles: domain.DefaultRecommendationSize,
		},
		Storage: domain.StorageSettings{
			DatabasePath: domain.DefaultDatabasePath,
			QueueSize:    domain.DefaultRecorderQueueSize,
		},
		Logging: domain.LoggingSettings{
			Level:  "info",
			Format: "json",
		},
	}
}

func defaultTemperature() *float64 {
	t := domain.DefaultTemperature
	return &t
}

func hydrateDefaults(cfg domain.Config) domain.Config {
	def := DefaultConfig()
	if cfg.ConfigFormatVersion == "" {
		cfg.ConfigFormatVersion = def.ConfigFormatVersion
	}
	if cfg.Server.Host == "" {
		cfg.Server.Host = def.Server.Host
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = def.Server.Port
	}
	if len(cfg.Server.CORSOrigins) == 0 {
		cfg.Server.CORSOrigins = def.Server.CORSOrigins
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = def.Server.ShutdownTimeout
	}
	if cfg.Generative.Endpoint == "" {
		cfg.Generative.Endpoint = def.Generative.Endpoint
	}
	if cfg.Generative.ModelID == "" {
		cfg.Generative.ModelID = def.Generative.ModelID
	}
	if cfg.Generative.AuthEnvVar == "" {
		cfg.Generative.AuthEnvVar = def.Generative.AuthEnvVar
	}
	if cfg.Generative.Temperature == nil {
		cfg.Generative.Temperature = def.Generative.Temperature
	}
	if cfg.Generative.TimeoutSeconds == 0 {
		cfg.Generative.TimeoutSeconds = def.Generative.TimeoutSeconds
	}
	if cfg.Generative.ExpectedTitles == 0 {
		cfg.Generative.ExpectedTitles = def.Generative.ExpectedTitles
	}
	if cfg.Storage.DatabasePath == "" {
		cfg.Storage.DatabasePath = def.Storage.DatabasePath
	}
	if cfg.Storage.QueueSize == 0 {
		cfg.Storage.QueueSize = def.Storage.QueueSize
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = def.Logging.Level
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = def.Logging.Format
	}
	return cfg
}

func resolveEnv(getenv func(string) string, primary, fallback string) string {
	if primary != "" {
		if value := getenv(primary); value != "" {
			return value
		}
	}
	if fallback == "" {
		return ""
	}
	return getenv(fallback)
}

func expandPath(path string) string {
	return filesystem.ExpandPath(path)
}
