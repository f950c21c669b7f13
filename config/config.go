package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration. Loaded once at startup and
// passed by value into the components that need it.
type Config struct {
	Environment EnvironmentConfig
	HTTPServer  HTTPServerConfig
	Logger      LoggerConfig

	Webhook WebhookConfig
	Git     GitConfig
	SSH     SSHConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type WebhookConfig struct {
	Secret          string
	RateLimitPerMin int
}

type GitConfig struct {
	ReposDir       string
	DefaultBranch  string // fallback when a payload declares none
	AutoClone      bool
	CommandTimeout time.Duration
}

type SSHConfig struct {
	KeyDir string // empty disables deploy key management
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Webhook
	cfg.Webhook.Secret = viper.GetString("webhook.secret")
	if secret := viper.GetString("github_webhook_secret"); secret != "" {
		cfg.Webhook.Secret = secret
	}
	cfg.Webhook.RateLimitPerMin = viper.GetInt("webhook.rate_limit_per_min")

	if cfg.Webhook.Secret == "" {
		return nil, fmt.Errorf("webhook secret is required - set webhook.secret or GITHUB_WEBHOOK_SECRET")
	}

	// Git
	cfg.Git.ReposDir = viper.GetString("git.repos_dir")
	cfg.Git.DefaultBranch = viper.GetString("git.default_branch")
	cfg.Git.AutoClone = viper.GetBool("git.auto_clone")

	timeout, err := time.ParseDuration(viper.GetString("git.command_timeout"))
	if err != nil {
		return nil, fmt.Errorf("invalid git.command_timeout: %w", err)
	}
	cfg.Git.CommandTimeout = timeout

	// SSH deploy key
	cfg.SSH.KeyDir = viper.GetString("ssh.key_dir")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("webhook.rate_limit_per_min", 60)
	viper.SetDefault("git.repos_dir", "./repos")
	viper.SetDefault("git.default_branch", "main")
	viper.SetDefault("git.auto_clone", true)
	viper.SetDefault("git.command_timeout", "120s")
	viper.SetDefault("ssh.key_dir", "")
}
