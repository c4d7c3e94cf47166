package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	S3     S3Config
	Export ExportConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// S3Config holds object storage settings. An empty bucket disables uploads.
type S3Config struct {
	Region    string `mapstructure:"region"`
	Bucket    string `mapstructure:"bucket"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
}

// Enabled reports whether an object storage collaborator is configured.
func (s *S3Config) Enabled() bool {
	return s.Bucket != ""
}

// ExportConfig holds artifact placement settings.
type ExportConfig struct {
	TextPrefix string `mapstructure:"text_prefix"`
	CSVPrefix  string `mapstructure:"csv_prefix"`
}

// Load reads configuration from environment variables with the DOCREVIEW_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("DOCREVIEW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// S3 defaults
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.bucket", "")
	v.SetDefault("s3.endpoint", "")

	// Export defaults
	v.SetDefault("export.text_prefix", "final_output/text/")
	v.SetDefault("export.csv_prefix", "final_output/csv/")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":          "DOCREVIEW_SERVER_PORT",
		"server.read_timeout":  "DOCREVIEW_SERVER_READ_TIMEOUT",
		"server.write_timeout": "DOCREVIEW_SERVER_WRITE_TIMEOUT",
		"server.environment":   "DOCREVIEW_SERVER_ENVIRONMENT",
		"s3.region":            "DOCREVIEW_S3_REGION",
		"s3.bucket":            "DOCREVIEW_S3_BUCKET",
		"s3.endpoint":          "DOCREVIEW_S3_ENDPOINT",
		"s3.access_key":        "DOCREVIEW_S3_ACCESS_KEY",
		"s3.secret_key":        "DOCREVIEW_S3_SECRET_KEY",
		"export.text_prefix":   "DOCREVIEW_EXPORT_TEXT_PREFIX",
		"export.csv_prefix":    "DOCREVIEW_EXPORT_CSV_PREFIX",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if DOCREVIEW_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("DOCREVIEW_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.S3 = S3Config{
		Region:    v.GetString("s3.region"),
		Bucket:    v.GetString("s3.bucket"),
		Endpoint:  v.GetString("s3.endpoint"),
		AccessKey: v.GetString("s3.access_key"),
		SecretKey: v.GetString("s3.secret_key"),
	}
	cfg.Export = ExportConfig{
		TextPrefix: v.GetString("export.text_prefix"),
		CSVPrefix:  v.GetString("export.csv_prefix"),
	}

	return cfg, nil
}
