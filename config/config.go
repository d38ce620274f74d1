package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v2"
)

const (
	DefaultLanguage = "en"
	DefaultDelay    = 0

	MinDelay = 0
	MaxDelay = 15000
)

var (
	ErrInvalidLanguage = errors.New("unsupported language")
	ErrInvalidDelay    = errors.New("delay must be between 0 and 15000 ms")
	ErrMissingPlatform = errors.New("platform not set")
)

// Platform is one tts entry of the platform configuration.
type Platform struct {
	Platform string `yaml:"platform"`
	Language string `yaml:"language"`
	// Delay is the silence in milliseconds added before and after speech.
	Delay int `yaml:"delay"`
}

// File mirrors the tts section of a configuration file:
//
//	tts:
//	  - platform: google_translate
//	    language: en
//	    delay: 500
type File struct {
	TTS []Platform `yaml:"tts"`
}

// Load reads, defaults and validates a configuration file.
func Load(filename string) (*File, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config; %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML configuration, rejecting unknown keys.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.UnmarshalStrict(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse config; %w", err)
	}

	for i := range f.TTS {
		f.TTS[i].ApplyDefaults()
		if err := f.TTS[i].Validate(); err != nil {
			return nil, fmt.Errorf("tts entry %d; %w", i, err)
		}
	}

	return &f, nil
}

// ApplyDefaults fills in options left out of the configuration.
func (p *Platform) ApplyDefaults() {
	if p.Language == "" {
		p.Language = DefaultLanguage
	}
}

func (p Platform) Validate() error {
	if p.Platform == "" {
		return ErrMissingPlatform
	}
	if !IsSupportedLanguage(p.Language) {
		return fmt.Errorf("%w: %q", ErrInvalidLanguage, p.Language)
	}
	if p.Delay < MinDelay || p.Delay > MaxDelay {
		return fmt.Errorf("%w: got %d", ErrInvalidDelay, p.Delay)
	}
	return nil
}

// DelayDuration is Delay as a time.Duration
func (p Platform) DelayDuration() time.Duration {
	return time.Duration(p.Delay) * time.Millisecond
}
