package provider

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"gtranslate/config"
	"gtranslate/voice"
)

const PlatformGoogleTranslate = "google_translate"

var ErrUnsupportedLanguage = errors.New("unsupported language")

func init() {
	Register(PlatformGoogleTranslate, func(cfg config.Platform) (Engine, error) {
		return New(cfg, &voice.Google{})
	})
}

// GoogleProvider speaks through google translate and optionally
// pads the result with silence. Read only once built.
type GoogleProvider struct {
	lang  string
	delay time.Duration
	synth voice.Synthesizer
}

var _ Engine = &GoogleProvider{}

func New(cfg config.Platform, synth voice.Synthesizer) (*GoogleProvider, error) {
	if synth == nil {
		return nil, errors.New("nil synthesizer")
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config; %w", err)
	}

	return &GoogleProvider{
		lang:  cfg.Language,
		delay: cfg.DelayDuration(),
		synth: synth,
	}, nil
}

func (p *GoogleProvider) Name() string {
	return "Google (custom)"
}

func (p *GoogleProvider) DefaultLanguage() string {
	return p.lang
}

func (p *GoogleProvider) SupportedLanguages() []string {
	return config.SupportedLanguages()
}

func (p *GoogleProvider) Delay() time.Duration {
	return p.delay
}

// GetTTSAudio speaks message in language, the default language when
// empty. A failed synthesis is logged and yields no audio; padding
// errors are returned.
func (p *GoogleProvider) GetTTSAudio(ctx context.Context, message string, language string) (*voice.Audio, error) {
	if language == "" {
		language = p.lang
	}
	if !config.IsSupportedLanguage(language) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, language)
	}

	speech, err := p.synth.Synthesize(ctx, message, language)
	if err != nil {
		logrus.WithError(err).WithField("language", language).Errorln("error during processing of TTS request")
		return nil, nil
	}
	if len(speech.Data) == 0 {
		logrus.WithField("language", language).Errorln("speech service returned no audio")
		return nil, nil
	}

	out, err := voice.Pad(speech, p.delay)
	if err != nil {
		return nil, fmt.Errorf("failed to pad speech; %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"language": language,
		"format":   out.Format,
		"bytes":    len(out.Data),
	}).Debugln("tts audio ready")

	return &out, nil
}
