package main

import (
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordscramble/internal/config"
	"github.com/robalobadob/wordscramble/internal/dictionary"
	"github.com/robalobadob/wordscramble/internal/game"
	"github.com/robalobadob/wordscramble/internal/httpserver"
	"github.com/robalobadob/wordscramble/internal/store"
	"github.com/robalobadob/wordscramble/internal/words"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if lvl, err := zerolog.ParseLevel(cfg.Server.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	roots, err := words.Load(cfg.Words.RootFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load root words")
	}

	dict, name, size, err := openDictionary(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load dictionary")
	}

	mem := store.NewMemoryStore()
	go sweepSessions(mem, cfg.Auth.SessionTTL)

	srv := httpserver.New(httpserver.Options{
		Store: mem,
		Roots: roots,
		Validator: game.Validator{
			Dictionary: dict,
			MinLength:  cfg.Game.MinLength,
			Language:   cfg.LanguageTag(),
		},
		JWTSecret:      cfg.Auth.JWTSecret,
		SessionTTL:     cfg.Auth.SessionTTL,
		ClientOrigin:   cfg.Server.ClientOrigin,
		DailySalt:      cfg.Game.DailySalt,
		DictionaryName: name,
		DictionarySize: size,
	})

	port := strconv.Itoa(cfg.Server.Port)
	log.Info().Str("port", port).Int("roots", roots.Len()).Str("dictionary", name).Msg("starting wordscramble")
	if err := srv.Start(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

// openDictionary picks the KWG lexicon when one is configured, otherwise the
// word list. size is -1 for lexicons.
func openDictionary(cfg *config.Config) (game.Dictionary, string, int, error) {
	if cfg.Lexicon.Name != "" {
		lex, err := dictionary.LoadLexicon(cfg.Lexicon.DataPath, cfg.Lexicon.Name, cfg.LanguageTag())
		if err != nil {
			return nil, "", 0, err
		}
		return lex, lex.Name(), -1, nil
	}
	wl, err := dictionary.LoadWordList(cfg.Words.DictionaryFile, cfg.LanguageTag())
	if err != nil {
		return nil, "", 0, err
	}
	name := "embedded"
	if cfg.Words.DictionaryFile != "" {
		name = cfg.Words.DictionaryFile
	}
	return wl, name, wl.Len(), nil
}

// sweepSessions drops idle sessions every few minutes.
func sweepSessions(mem *store.Memory, ttl time.Duration) {
	t := time.NewTicker(5 * time.Minute)
	defer t.Stop()
	for range t.C {
		if n := mem.Sweep(ttl); n > 0 {
			log.Debug().Int("removed", n).Msg("swept idle sessions")
		}
	}
}
