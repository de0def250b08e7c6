package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
)

// envBindings maps config keys to the environment variables they read.
var envBindings = map[string]string{
	"server.port":           "PORT",
	"server.log_level":      "LOG_LEVEL",
	"server.client_origin":  "CLIENT_ORIGIN",
	"auth.jwt_secret":       "JWT_SECRET",
	"auth.session_ttl":      "SESSION_TTL",
	"game.min_length":       "MIN_LENGTH",
	"game.language":         "LANGUAGE",
	"game.daily_salt":       "DAILY_SALT",
	"words.root_file":       "WORDS_ROOT_FILE",
	"words.dictionary_file": "WORDS_DICTIONARY_FILE",
	"lexicon.path":          "LEXICON_PATH",
	"lexicon.name":          "LEXICON_NAME",
}

// Load reads .env (if present) and the environment, applies defaults and
// validates the result.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("server.port", 5175)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.client_origin", "http://localhost:5173")
	v.SetDefault("auth.jwt_secret", "dev_secret_change_me")
	v.SetDefault("auth.session_ttl", "24h")
	v.SetDefault("game.min_length", 1)
	v.SetDefault("game.language", "en")
	v.SetDefault("game.daily_salt", "local_dev_salt")
	v.SetDefault("words.root_file", "")
	v.SetDefault("words.dictionary_file", "")
	v.SetDefault("lexicon.path", "./data")
	v.SetDefault("lexicon.name", "")

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("config: bind %s: %w", env, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config: invalid: %w", err)
	}
	return &cfg, nil
}

// LanguageTag returns the parsed game language.
func (c *Config) LanguageTag() language.Tag {
	tag, err := language.Parse(c.Game.Language)
	if err != nil {
		return language.English
	}
	return tag
}
