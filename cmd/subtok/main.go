package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"subtok/internal/pkg/subtok/config"
	"subtok/internal/pkg/subtok/corpus"
	"subtok/internal/pkg/subtok/tokenizer"
)

func main() {
	fmt.Fprintf(os.Stderr, "subtok %s\n", Version)

	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.LoadAndParse()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to parse configuration")
	}

	if err := setupLogging(cfg); err != nil {
		log.Fatal().Err(err).Msg("Failed to setup logging")
	}

	if cfg.ListTokenizers {
		names := tokenizer.List()
		sort.Strings(names)
		fmt.Fprintf(os.Stderr, "Available tokenizers (%d):\n", len(names))
		for _, name := range names {
			fmt.Fprintf(os.Stderr, "  %s\n", name)
		}
		return
	}

	log.Debug().
		Str("tokenizer", cfg.Tokenizer).
		Int("numsymbols", cfg.NumSymbols).
		Int("minfreq", cfg.MinFreq).
		Bool("crosswords", cfg.CrossWords).
		Strs("inputs", cfg.Inputs).
		Msg("Configuration loaded")

	docs, err := corpus.Load(cfg.Inputs, cfg.DocPerLine)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load corpus")
	}
	log.Info().Int("documents", len(docs)).Msg("Corpus loaded")

	tok, err := tokenizer.New(cfg.Tokenizer, tokenizer.Config{
		NumSymbols: cfg.NumSymbols,
		MinFreq:    cfg.MinFreq,
		CrossWords: cfg.CrossWords,
		Subwords:   cfg.Subwords,
	})
	if err != nil {
		log.Fatal().Err(err).Str("tokenizer", cfg.Tokenizer).Msg("Failed to create tokenizer")
	}

	log.Info().Str("tokenizer", cfg.Tokenizer).Msg("Training...")
	startTime := time.Now()
	if err := tok.Fit(docs); err != nil {
		log.Fatal().Err(err).Msg("Training failed")
	}
	symbols := tok.Symbols()
	log.Info().
		Dur("elapsed", time.Since(startTime)).
		Int("symbols", len(symbols)).
		Msg("Training finished")

	if cfg.Output != "" {
		if err := saveVocab(cfg.Output, cfg.Tokenizer, symbols); err != nil {
			log.Fatal().Err(err).Msg("Failed to save vocabulary")
		}
		log.Info().Str("output", cfg.Output).Msg("Vocabulary saved")
	}

	if cfg.Text != "" {
		tokens, err := tok.Transform(cfg.Text)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to tokenize text")
		}
		log.Debug().Int("tokens", len(tokens)).Msg("Text tokenized")
		fmt.Println(strings.Join(tokens, " | "))
	}
}

// vocabFile is the checkpoint format written next to a trained model. The
// core library only exposes the symbol set; persistence lives out here.
type vocabFile struct {
	Tokenizer string   `json:"tokenizer"`
	Symbols   []string `json:"symbols"`
}

func saveVocab(path, name string, symbols []string) error {
	data, err := json.MarshalIndent(vocabFile{Tokenizer: name, Symbols: symbols}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode vocabulary: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write vocabulary: %w", err)
	}
	return nil
}

func setupLogging(cfg *config.Config) error {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		log.Logger = zerolog.New(f).With().Timestamp().Logger()
	}

	return nil
}
