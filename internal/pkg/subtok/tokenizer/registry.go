package tokenizer

import (
	"fmt"
	"sync"
)

// Config carries the per-instance options recognized by the tokenizer
// factories. Variants ignore the fields they do not use.
type Config struct {
	// NumSymbols is the target/maximum vocabulary size.
	NumSymbols int
	// MinFreq is the minimum occurrence count for a merge, or for a
	// composite symbol to survive pruning.
	MinFreq int
	// CrossWords allows merged symbols to span word/punctuation boundaries.
	CrossWords bool
	// Subwords is the fixed vocabulary for the "subwords" variant.
	Subwords []string
}

func (cfg Config) validate() error {
	if cfg.NumSymbols <= 0 {
		return fmt.Errorf("tokenizer: numsymbols must be positive, got %d", cfg.NumSymbols)
	}
	if cfg.MinFreq <= 0 {
		return fmt.Errorf("tokenizer: minfreq must be positive, got %d", cfg.MinFreq)
	}
	return nil
}

type Factory func(cfg Config) (Tokenizer, error)

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Factory)
)

// Register makes a tokenizer variant available under a name. It panics on
// a nil factory or a duplicate name, mirroring database/sql.Register.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if factory == nil {
		panic("tokenizer: Register factory is nil")
	}
	if _, dup := registry[name]; dup {
		panic("tokenizer: Register called twice for " + name)
	}
	registry[name] = factory
}

// New builds a tokenizer variant by name.
func New(name string, cfg Config) (Tokenizer, error) {
	registryMu.RLock()
	factory, ok := registry[name]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("tokenizer: unknown tokenizer %q (registered: %v)", name, List())
	}
	return factory(cfg)
}

// List returns the names of all registered tokenizer variants.
func List() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}

func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := registry[name]
	return ok
}
