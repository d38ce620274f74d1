package main

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync/atomic"
	"syscall"

	"github.com/sirupsen/logrus"
	cli "github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"gtranslate/config"
	"gtranslate/provider"
)

var errNoAudio = errors.New("no audio produced")

func newInterruptContext(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case <-c:
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}

type options struct {
	configFile string
	language   string
	delay      int
	outdir     string
	jobs       int
	rps        float64
	logLevel   string
}

func main() {
	var opts options
	cli.StringVarP(&opts.configFile, "config", "c", "", "YAML config with a tts section")
	cli.StringVarP(&opts.language, "language", "l", "", "Language of the messages (engine default when empty)")
	cli.IntVarP(&opts.delay, "delay", "d", config.DefaultDelay, "Silence in ms around speech when no config file is given")
	cli.StringVarP(&opts.outdir, "out", "o", ".", "Output directory")
	cli.IntVarP(&opts.jobs, "jobs", "j", 2, "Messages synthesized at once")
	cli.Float64VarP(&opts.rps, "rate", "r", 1, "Max requests per second to the speech service")
	cli.StringVar(&opts.logLevel, "log", "info", "Log level")
	cli.Parse()

	if err := opts.validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		cli.PrintDefaults()
		os.Exit(2)
	}

	level, err := logrus.ParseLevel(opts.logLevel)
	if err != nil {
		logrus.WithError(err).Fatalln("bad log level")
	}
	logrus.SetLevel(level)

	if cli.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: gtranslate [flags] message...")
		cli.PrintDefaults()
		os.Exit(2)
	}

	ctx, cancel := newInterruptContext(context.Background())
	defer cancel()

	engine, err := loadEngine(opts)
	if err != nil {
		logrus.WithError(err).Fatalln("failed to set up tts engine")
	}

	if err := run(ctx, engine, opts, cli.Args()); err != nil {
		logrus.WithError(err).Errorln("finished with errors")
		os.Exit(1)
	}
}

func (o options) validate() error {
	if o.rps <= 0 {
		return fmt.Errorf("--rate must be above 0, got %v", o.rps)
	}
	if o.jobs < 1 {
		return fmt.Errorf("--jobs must be at least 1, got %d", o.jobs)
	}
	return nil
}

func loadEngine(opts options) (provider.Engine, error) {
	cfg := config.Platform{
		Platform: provider.PlatformGoogleTranslate,
		Delay:    opts.delay,
	}

	if opts.configFile != "" {
		f, err := config.Load(opts.configFile)
		if err != nil {
			return nil, err
		}
		if len(f.TTS) == 0 {
			return nil, fmt.Errorf("no tts entries in %s", opts.configFile)
		}
		cfg = f.TTS[0]
	}

	engine, err := provider.GetEngine(cfg)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"engine":   engine.Name(),
		"language": engine.DefaultLanguage(),
		"delay":    cfg.Delay,
	}).Infoln("tts engine ready")

	return engine, nil
}

// run speaks every message and writes the audio to the output dir
func run(ctx context.Context, engine provider.Engine, opts options, messages []string) error {
	if err := os.MkdirAll(opts.outdir, 0755); err != nil {
		return fmt.Errorf("failed to create out dir; %w", err)
	}

	jobs := opts.jobs
	if jobs < 1 {
		jobs = 1
	}

	// google starts refusing when hammered
	limiter := rate.NewLimiter(rate.Limit(opts.rps), 1)

	var failed atomic.Int32
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(jobs)

	for _, message := range messages {
		message := message
		group.Go(func() error {
			if err := limiter.Wait(ctx); err != nil {
				return err
			}

			file, err := speak(ctx, engine, opts.language, message, opts.outdir)
			if errors.Is(err, errNoAudio) {
				failed.Add(1)
				logrus.WithField("message", message).Warnln("no audio for message")
				return nil
			}
			if err != nil {
				return err
			}

			logrus.WithFields(logrus.Fields{
				"message": message,
				"file":    file,
			}).Infoln("wrote speech")
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}
	if n := failed.Load(); n > 0 {
		return fmt.Errorf("%d of %d messages produced no audio", n, len(messages))
	}
	return nil
}

func speak(ctx context.Context, engine provider.Engine, language, message, outdir string) (string, error) {
	audio, err := engine.GetTTSAudio(ctx, message, language)
	if err != nil {
		return "", fmt.Errorf("failed tts for %q; %w", message, err)
	}
	if audio == nil {
		return "", errNoAudio
	}

	file := filepath.Join(outdir, hashString(language+"\x00"+message)+"."+audio.Format)
	if err := os.WriteFile(file, audio.Data, 0644); err != nil {
		return "", fmt.Errorf("failed to write file to disk; %w", err)
	}

	return file, nil
}

func hashString(input string) string {
	hash := sha256.New()
	hash.Write([]byte(input))
	return hex.EncodeToString(hash.Sum(nil))
}
