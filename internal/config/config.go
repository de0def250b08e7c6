// Package config loads server settings from the environment (and an optional
// .env file) into a typed, validated Config.
package config

import "time"

// Config holds all server configuration.
type Config struct {
	Server  ServerConfig  `mapstructure:"server" validate:"required"`
	Auth    AuthConfig    `mapstructure:"auth" validate:"required"`
	Game    GameConfig    `mapstructure:"game" validate:"required"`
	Words   WordsConfig   `mapstructure:"words"`
	Lexicon LexiconConfig `mapstructure:"lexicon"`
}

// ServerConfig contains HTTP and logging settings.
type ServerConfig struct {
	Port         int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel     string `mapstructure:"log_level" validate:"required,oneof=trace debug info warn error fatal"`
	ClientOrigin string `mapstructure:"client_origin" validate:"required"`
}

// AuthConfig contains session token settings.
type AuthConfig struct {
	JWTSecret  string        `mapstructure:"jwt_secret" validate:"required,min=8"`
	SessionTTL time.Duration `mapstructure:"session_ttl" validate:"gt=0"`
}

// GameConfig contains rule settings.
type GameConfig struct {
	MinLength int    `mapstructure:"min_length" validate:"gte=1"`
	Language  string `mapstructure:"language" validate:"required,bcp47_language_tag"`
	DailySalt string `mapstructure:"daily_salt" validate:"required"`
}

// WordsConfig points at word list files; empty means the embedded defaults.
type WordsConfig struct {
	RootFile       string `mapstructure:"root_file" validate:"omitempty,file"`
	DictionaryFile string `mapstructure:"dictionary_file" validate:"omitempty,file"`
}

// LexiconConfig selects a KWG lexicon as the dictionary. When Name is empty
// the word list dictionary is used instead.
type LexiconConfig struct {
	DataPath string `mapstructure:"path" validate:"required_with=Name"`
	Name     string `mapstructure:"name"`
}
