package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	Tokenizer      string   `mapstructure:"tokenizer"`
	NumSymbols     int      `mapstructure:"numsymbols"`
	MinFreq        int      `mapstructure:"minfreq"`
	CrossWords     bool     `mapstructure:"crosswords"`
	Subwords       []string `mapstructure:"subwords"`
	DocPerLine     bool     `mapstructure:"doc_per_line"`
	Text           string   `mapstructure:"text"`
	Output         string   `mapstructure:"output"`
	LogLevel       string   `mapstructure:"log_level"`
	LogFile        string   `mapstructure:"log_file"`
	ListTokenizers bool     `mapstructure:"list_tokenizers"`

	// Inputs are the positional corpus paths (files, directories or "-").
	Inputs []string
}

func LoadAndParse() (*Config, error) {
	viper.SetDefault("tokenizer", "bpe")
	viper.SetDefault("numsymbols", 4096)
	viper.SetDefault("minfreq", 10)
	viper.SetDefault("crosswords", false)
	viper.SetDefault("doc_per_line", false)
	viper.SetDefault("output", "vocab.json")
	viper.SetDefault("log_level", "info")
	viper.SetDefault("log_file", "")

	flagSet := pflag.NewFlagSet("subtok", pflag.ContinueOnError)
	configFile := flagSet.StringP("config", "c", "", "Path to config file")
	flagSet.StringP("tokenizer", "k", "", "Tokenizer variant (char, word, bpe, subwords)")
	flagSet.IntP("numsymbols", "n", 0, "Maximum vocabulary size")
	flagSet.IntP("minfreq", "m", 0, "Minimum symbol frequency")
	flagSet.Bool("crosswords", false, "Allow merges across word boundaries")
	flagSet.StringSlice("subwords", nil, "Fixed subword list for the subwords tokenizer")
	flagSet.Bool("doc-per-line", false, "Treat every input line as its own document")
	flagSet.StringP("text", "t", "", "Tokenize this text after training and print the tokens")
	flagSet.StringP("output", "o", "", "Output vocabulary JSON file")
	flagSet.StringP("log-level", "l", "", "Log level (debug, info, warn, error)")
	flagSet.String("log-file", "", "Log file path")
	flagSet.Bool("list-tokenizers", false, "List available tokenizers and exit")
	helpFlag := flagSet.BoolP("help", "h", false, "Show help message")

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	if *helpFlag {
		fmt.Fprintf(os.Stderr, "Usage: subtok [options] corpus...\n\nOptions:\n")
		flagSet.PrintDefaults()
		os.Exit(0)
	}

	bindings := map[string]string{
		"tokenizer":       "tokenizer",
		"numsymbols":      "numsymbols",
		"minfreq":         "minfreq",
		"crosswords":      "crosswords",
		"subwords":        "subwords",
		"doc_per_line":    "doc-per-line",
		"text":            "text",
		"output":          "output",
		"log_level":       "log-level",
		"log_file":        "log-file",
		"list_tokenizers": "list-tokenizers",
	}
	for key, flag := range bindings {
		if err := viper.BindPFlag(key, flagSet.Lookup(flag)); err != nil {
			return nil, err
		}
	}

	if *configFile != "" {
		viper.SetConfigFile(*configFile)
	} else {
		viper.SetConfigName("subtok.cfg")
		viper.SetConfigType("toml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("configs")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "subtok"))
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	viper.SetEnvPrefix("SUBTOK")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Inputs = flagSet.Args()

	if cfg.NumSymbols <= 0 {
		return nil, fmt.Errorf("numsymbols must be positive, got %d", cfg.NumSymbols)
	}
	if cfg.MinFreq <= 0 {
		return nil, fmt.Errorf("minfreq must be positive, got %d", cfg.MinFreq)
	}
	if len(cfg.Inputs) == 0 && !cfg.ListTokenizers {
		return nil, fmt.Errorf("at least one corpus path is required (file, directory, or '-' for stdin)")
	}

	return &cfg, nil
}
