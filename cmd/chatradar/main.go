package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"
	"golang.org/x/sync/errgroup"

	"github.com/chatradar/chatradar/pkg/broadcast"
	"github.com/chatradar/chatradar/pkg/config"
	"github.com/chatradar/chatradar/pkg/directory"
	"github.com/chatradar/chatradar/pkg/domain"
	"github.com/chatradar/chatradar/pkg/matcher"
	"github.com/chatradar/chatradar/pkg/notifier"
	"github.com/chatradar/chatradar/pkg/repository"
	"github.com/chatradar/chatradar/pkg/scanner"
	"github.com/chatradar/chatradar/pkg/scanner/discord"
	"github.com/chatradar/chatradar/pkg/scanner/telegram"
	"github.com/chatradar/chatradar/pkg/sink"
	"github.com/chatradar/chatradar/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"f" long:"config" env:"CONFIG" default:"config.yml" description:"config file"`
	Listen string `short:"l" long:"listen" env:"LISTEN" description:"listen address, overrides config"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

// scannerUnit is the shared lifecycle of streaming and polling scanners
type scannerUnit interface {
	Start(ctx context.Context) error
	Stop()
	Status() domain.ScannerStatus
}

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

	color.NoColor = opts.NoColor
	setupLog(opts.Debug)

	lgr.Printf("[INFO] starting chatradar version %s", revision)

	cfg, err := config.Load(opts.Config)
	if err != nil {
		lgr.Printf("[ERROR] failed to load config %s: %v", opts.Config, err)
		os.Exit(1)
	}
	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}

	// re-setup logging with credentials masked
	setupLog(opts.Debug, secrets(cfg)...)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		lgr.Printf("[INFO] termination signal received")
		cancel()
	}()

	err = run(ctx, opts, cfg)
	cancel()

	if err != nil {
		lgr.Printf("[ERROR] chatradar failed: %v", err)
		os.Exit(1)
	}

	lgr.Printf("[INFO] shutdown complete")
}

// run assembles all components and blocks until ctx is canceled or a
// component fails
func run(ctx context.Context, opts Opts, cfg *config.Config) error {
	dir, err := directory.Load(cfg.Directory.Path)
	if err != nil {
		return fmt.Errorf("load directory %s: %w", cfg.Directory.Path, err)
	}

	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("init repositories: %w", err)
	}
	defer func() {
		if err := repos.Close(); err != nil {
			lgr.Printf("[WARN] failed to close repositories: %v", err)
		}
	}()

	var emb matcher.Embedder
	if ec := cfg.GetEmbeddingsConfig(); ec.APIKey != "" || ec.Endpoint != "" {
		emb = matcher.NewOpenAIEmbedder(ec.Endpoint, ec.APIKey, ec.Model, ec.Timeout)
	} else {
		lgr.Printf("[WARN] embeddings not configured, semantic keywords degrade to exact matching")
	}
	match := matcher.New(matcher.NewCache(emb), emb, cfg.Matcher.Threshold)
	match.SetMinTopicPercent(cfg.Matcher.MinTopicPercent)

	broadcaster := broadcast.New(cfg.Broadcast.Window)
	defer broadcaster.Close()

	dispatcher := notifier.New(notifier.Params{
		Mentions:  repos.Mention,
		Policies:  dir,
		Email:     makeEmailSender(cfg),
		Platform:  makePlatformSender(cfg),
		QueueSize: cfg.Notifications.QueueSize,
		Workers:   cfg.Notifications.Workers,
	})
	dispatcher.Start(ctx)
	defer dispatcher.Stop()

	snk := sink.New(repos.Mention, dispatcher, broadcaster)

	units := makeScanners(cfg, dir, match, snk, repos)
	for _, u := range units {
		if err := u.Start(ctx); err != nil {
			// a bad token should not take down the API and the other scanner
			lgr.Printf("[WARN] %s scanner failed to start: %v", u.Status().Platform, err)
		}
	}
	defer func() {
		for _, u := range units {
			u.Stop()
		}
	}()

	reporters := make([]server.StatusReporter, len(units))
	for i, u := range units {
		reporters[i] = u
	}
	srv := server.New(cfg, repos.Mention, broadcaster, reporters, revision, opts.Debug)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return srv.Run(gctx) })
	g.Go(func() error { return dir.Watch(gctx) })
	g.Go(func() error {
		return config.Watch(gctx, opts.Config, func(nc *config.Config) {
			// matching defaults apply live, the rest needs a restart
			match.SetThreshold(nc.Matcher.Threshold)
			match.SetMinTopicPercent(nc.Matcher.MinTopicPercent)
			lgr.Printf("[INFO] matcher defaults updated: threshold=%.2f, min_topic_percent=%d",
				nc.Matcher.Threshold, nc.Matcher.MinTopicPercent)
		})
	})
	return g.Wait()
}

// makeScanners builds the enabled platform scanners
func makeScanners(cfg *config.Config, dir *directory.Directory, match *matcher.Matcher, snk *sink.Sink, repos *repository.Repositories) []scannerUnit {
	var units []scannerUnit

	if cfg.Telegram.Enabled {
		tr := telegram.New(telegram.Params{Token: cfg.Telegram.BotToken, PollTime: cfg.Telegram.PollTime})
		units = append(units, scanner.NewStreamScanner(scanner.StreamParams{
			Platform:        "telegram",
			Transport:       tr,
			Loader:          scanner.NewFilterLoader("telegram", dir, dir, tr),
			Keywords:        dir,
			Matcher:         match,
			Sink:            snk,
			RefreshInterval: cfg.Filter.RefreshInterval,
		}))
	}

	if cfg.Discord.Enabled {
		tr := discord.New(cfg.Discord.BotToken)
		units = append(units, scanner.NewPollScanner(scanner.PollParams{
			Platform:  "discord",
			Transport: tr,
			Loader:    scanner.NewFilterLoader("discord", dir, dir, tr),
			Keywords:  dir,
			Matcher:   match,
			Sink:      snk,
			Dedup:     repos.Mention,
			Interval:  cfg.Discord.PollInterval,
			Cooldown:  cfg.Discord.Cooldown,
			RPS:       cfg.Discord.RPS,
		}))
	}

	if len(units) == 0 {
		lgr.Printf("[WARN] no scanners enabled, serving recorded mentions only")
	}
	return units
}

// makeEmailSender returns nil when email delivery is not configured
func makeEmailSender(cfg *config.Config) notifier.EmailSender {
	if cfg.Notifications.SMTPHost == "" {
		return nil
	}
	return notifier.NewSMTPSender(notifier.SMTPParams{
		Host:     cfg.Notifications.SMTPHost,
		Port:     cfg.Notifications.SMTPPort,
		User:     cfg.Notifications.SMTPUser,
		Password: cfg.Notifications.SMTPPassword,
		TLS:      cfg.Notifications.SMTPTLS,
		From:     cfg.Notifications.From,
	})
}

// makePlatformSender returns nil when telegram delivery is not configured
func makePlatformSender(cfg *config.Config) notifier.PlatformSender {
	if cfg.Notifications.BotToken == "" {
		return nil
	}
	sender, err := notifier.NewTelegramSender(cfg.Notifications.BotToken)
	if err != nil {
		lgr.Printf("[WARN] telegram notifications disabled: %v", err)
		return nil
	}
	return sender
}

// secrets collects credentials to mask in logs
func secrets(cfg *config.Config) []string {
	var res []string
	for _, s := range []string{
		cfg.Telegram.BotToken,
		cfg.Discord.BotToken,
		cfg.Embeddings.APIKey,
		cfg.Notifications.BotToken,
		cfg.Notifications.SMTPPassword,
	} {
		if s != "" {
			res = append(res, s)
		}
	}
	return res
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
