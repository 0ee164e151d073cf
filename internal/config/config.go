package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	AI       AIConfig
	Search   SearchConfig
	UI       UIConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// AIConfig holds idea-generation provider settings.
type AIConfig struct {
	APIKeyEnv string `mapstructure:"api_key_env"`
	APIKey    string `mapstructure:"api_key"`
	Model     string
}

// SearchConfig holds product-search provider settings.
type SearchConfig struct {
	APIKeyEnv    string `mapstructure:"api_key_env"`
	APIKey       string `mapstructure:"api_key"`
	Engine       string
	AffiliateTag string `mapstructure:"affiliate_tag"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	CurrencySymbol string `mapstructure:"currency_symbol"`
	Timezone       string
}

// Load reads configuration from file and env. Env var overrides use prefix GIFTWIZ_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "giftwiz", "giftwiz.db"))
	v.SetDefault("ai.api_key_env", "OPENAI_API_KEY")
	v.SetDefault("ai.api_key", "")
	v.SetDefault("ai.model", "gpt-4o-mini")
	v.SetDefault("search.api_key_env", "SERPAPI_API_KEY")
	v.SetDefault("search.api_key", "")
	v.SetDefault("search.engine", "amazon")
	v.SetDefault("search.affiliate_tag", "giftwiz-20")
	v.SetDefault("ui.currency_symbol", "$")
	v.SetDefault("ui.timezone", "Local")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("GIFTWIZ_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "giftwiz"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("GIFTWIZ")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config directory if needed.
// API keys land in plain text in the config file; encourage users to prefer env vars
// or the secret store.
func Save(cfg Config) error {
	path := os.Getenv("GIFTWIZ_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "giftwiz", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("ai.api_key_env", cfg.AI.APIKeyEnv)
	v.Set("ai.api_key", cfg.AI.APIKey)
	v.Set("ai.model", cfg.AI.Model)
	v.Set("search.api_key_env", cfg.Search.APIKeyEnv)
	v.Set("search.api_key", cfg.Search.APIKey)
	v.Set("search.engine", cfg.Search.Engine)
	v.Set("search.affiliate_tag", cfg.Search.AffiliateTag)
	v.Set("ui.currency_symbol", cfg.UI.CurrencySymbol)
	v.Set("ui.timezone", cfg.UI.Timezone)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
