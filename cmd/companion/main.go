package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/umputun/companion/pkg/config"
	"github.com/umputun/companion/pkg/engine"
	"github.com/umputun/companion/pkg/llm"
	"github.com/umputun/companion/pkg/notify"
	"github.com/umputun/companion/pkg/persona"
	"github.com/umputun/companion/pkg/repository"
	"github.com/umputun/companion/pkg/scheduler"
	"github.com/umputun/companion/pkg/starter"
	"github.com/umputun/companion/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"f" long:"config" env:"CONFIG" default:"config.yml" description:"config file path"`
	Listen string `short:"l" long:"listen" env:"LISTEN" description:"listen address, overrides config"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	setupLog(opts.Debug, opts.NoColor)

	log.Printf("[INFO] starting companion version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	err := run(ctx, opts)
	cancel()

	if err != nil {
		log.Printf("[ERROR] companion failed: %v", err)
		os.Exit(1)
	}

	log.Print("[INFO] shutdown complete")
}

// run wires all components together and blocks until the context is canceled
func run(ctx context.Context, opts Opts) error {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}

	// rebuild the logger so API keys and bot tokens never reach the output
	if secs := secrets(cfg); len(secs) > 0 {
		setupLog(opts.Debug, opts.NoColor, secs...)
	}

	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to init database: %w", err)
	}
	defer func() {
		if err := repos.Close(); err != nil {
			log.Printf("[WARN] failed to close database: %v", err)
		}
	}()

	builder := persona.NewBuilder(persona.BuilderParams{History: repos.Turn, Boundaries: repos.Boundary})
	generator := llm.NewGenerator(cfg.LLM)
	boundaries := engine.NewManager(repos.Boundary, 0) // default 24h hard stop
	questions := engine.NewTracker(repos.Turn)

	gateCfg := engine.DefaultGateConfig()
	gateCfg.Enabled = !cfg.Proactive.Disabled
	gateCfg.DisabledArchetypes = cfg.Proactive.DisabledArchetypes
	gateCfg.QuietStart = cfg.Proactive.QuietStart
	gateCfg.QuietEnd = cfg.Proactive.QuietEnd

	evalParams := engine.EvaluatorParams{
		Config:    gateCfg,
		Boundary:  boundaries,
		Questions: questions,
		Attempts:  repos.Proactive,
		Users:     repos.User,
		Builder:   builder,
		Generator: generator,
	}

	// optional news-based conversation starters
	var feedSrc *starter.Source
	if cfg.Starters.Enabled {
		feedSrc = starter.NewSource(starter.Params{
			Feeds:           cfg.Starters.Feeds,
			RefreshInterval: cfg.Starters.RefreshInterval,
			Timeout:         cfg.Starters.Timeout,
			UserAgent:       cfg.Starters.UserAgent,
		})
		evalParams.Starter = feedSrc
	}

	evaluator := engine.NewEvaluator(evalParams)

	orchestrator := engine.NewOrchestrator(engine.OrchestratorParams{
		Boundary:  boundaries,
		Questions: questions,
		Turns:     repos.Turn,
		Users:     repos.User,
		Builder:   builder,
		Generator: generator,
	})

	// telegram is optional, without a token the REST API is the only channel
	var tgClient *notify.Client
	if cfg.Telegram.Token != "" {
		tgClient = notify.NewClient(notify.ClientParams{
			Token:       cfg.Telegram.Token,
			APIBase:     cfg.Telegram.APIURL,
			PollTimeout: cfg.Telegram.PollTimeout,
		})
	}

	schedParams := scheduler.Params{
		Users:             repos.User,
		Evaluator:         evaluator,
		Turns:             repos.Turn,
		Attempts:          repos.Proactive,
		ProactiveInterval: cfg.Proactive.Interval,
		ActiveWindow:      cfg.Proactive.ActiveWindow,
		BatchSize:         cfg.Proactive.BatchSize,
		CleanupInterval:   cfg.Cleanup.Interval,
		TurnRetention:     time.Duration(cfg.Cleanup.TurnDays) * 24 * time.Hour,
		AttemptRetention:  time.Duration(cfg.Cleanup.AttemptDays) * 24 * time.Hour,
	}
	if tgClient != nil { // assigning a nil *Client would make the interface non-nil
		schedParams.Notifier = tgClient
	}
	sched := scheduler.NewScheduler(schedParams)
	sched.Start(ctx)
	defer sched.Stop()

	srv := server.New(server.Params{
		Users:         repos.User,
		Boundaries:    repos.Boundary,
		Turns:         repos.Turn,
		Processor:     orchestrator,
		Evaluator:     evaluator,
		Listen:        cfg.Server.Listen,
		Timeout:       cfg.Server.Timeout,
		Version:       revision,
		Debug:         opts.Debug,
		MessageRate:   rate.Every(time.Minute / time.Duration(cfg.Limits.MessageRatePerMin)),
		DedupWindow:   cfg.Limits.DedupWindow,
		MaxMessageLen: cfg.Limits.MaxMessageLength,
	})

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := srv.Run(ctx); err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	if tgClient != nil {
		listener := notify.NewListener(notify.ListenerParams{
			Client:    tgClient,
			Users:     repos.User,
			Processor: orchestrator,
		})
		g.Go(func() error {
			if err := listener.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return fmt.Errorf("telegram listener: %w", err)
			}
			return nil
		})
	}

	if feedSrc != nil {
		g.Go(func() error {
			if err := feedSrc.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return fmt.Errorf("starter feeds: %w", err)
			}
			return nil
		})
	}

	return g.Wait()
}

// secrets collects config values that must never appear in logs
func secrets(cfg *config.Config) []string {
	var secs []string
	if cfg.LLM.APIKey != "" {
		secs = append(secs, cfg.LLM.APIKey)
	}
	if cfg.Telegram.Token != "" {
		secs = append(secs, cfg.Telegram.Token)
	}
	return secs
}

func setupLog(dbg, noColor bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	if !noColor {
		colorizer := lgr.Mapper{
			ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
			WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
			InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
			DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
			CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
			TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
		}
		logOpts = append(logOpts, lgr.Map(colorizer))
	}

	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
