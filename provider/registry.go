package provider

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"gtranslate/config"
	"gtranslate/voice"
)

var ErrUnknownPlatform = errors.New("unknown tts platform")

// Engine is what the host platform talks to.
type Engine interface {
	Name() string
	DefaultLanguage() string
	SupportedLanguages() []string
	// GetTTSAudio returns nil audio and a nil error when the speech
	// service failed to produce anything.
	GetTTSAudio(ctx context.Context, message string, language string) (*voice.Audio, error)
}

// Factory builds an engine from a validated configuration entry.
type Factory func(cfg config.Platform) (Engine, error)

var (
	factories   = map[string]Factory{}
	factoriesMu sync.RWMutex
)

// Register makes a platform available to GetEngine. Meant to be
// called from init, registering a name twice panics.
func Register(platform string, factory Factory) {
	factoriesMu.Lock()
	defer factoriesMu.Unlock()

	if factory == nil {
		panic("provider: nil factory for " + platform)
	}
	if _, dup := factories[platform]; dup {
		panic("provider: duplicate platform " + platform)
	}
	factories[platform] = factory
}

// Platforms lists the registered platform names, sorted.
func Platforms() []string {
	factoriesMu.RLock()
	defer factoriesMu.RUnlock()

	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetEngine validates cfg and sets up the engine for its platform.
func GetEngine(cfg config.Platform) (Engine, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config; %w", err)
	}

	factoriesMu.RLock()
	factory, ok := factories[cfg.Platform]
	factoriesMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPlatform, cfg.Platform)
	}

	return factory(cfg)
}
