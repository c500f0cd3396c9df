// Command tickstream serves the engine's physics ticks over WebSocket.
// It polls through one bridge session and fans every new tick out to
// all connected clients; inbound messages carry controller input back
// to the engine. With -fake it runs against the in-process stand-in
// engine instead of a native library.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"

	"tickbridge"
	"tickbridge/internal/enginesim"
	"tickbridge/internal/stream"
	"tickbridge/logging"
	"tickbridge/telemetry"
)

const shutdownGrace = 5 * time.Second

type config struct {
	Listen      string `toml:"listen" env:"TICKSTREAM_LISTEN"`
	LibraryPath string `toml:"library_path" env:"TICKBRIDGE_LIB"`
	Fake        bool   `toml:"fake" env:"TICKSTREAM_FAKE"`
	TickRate    int    `toml:"tick_rate" env:"TICKSTREAM_TICK_RATE"`
	LogLevel    string `toml:"log_level" env:"TICKSTREAM_LOG_LEVEL"`
	EventBuffer int    `toml:"event_buffer" env:"TICKSTREAM_EVENT_BUFFER"`
}

func defaultConfig() config {
	return config{
		Listen:   ":8080",
		TickRate: 120,
		LogLevel: "info",
	}
}

// loadConfig layers defaults, then the TOML file, then environment
// variables, then flags. Later layers win.
func loadConfig(args []string) (config, error) {
	cfg := defaultConfig()

	fs := flag.NewFlagSet("tickstream", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to a TOML config file")
	listen := fs.String("listen", "", "listen address (overrides config)")
	fake := fs.Bool("fake", false, "run against the in-process stand-in engine")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	if *configPath != "" {
		if _, err := toml.DecodeFile(*configPath, &cfg); err != nil {
			return config{}, fmt.Errorf("load config %s: %w", *configPath, err)
		}
	}
	if err := env.Parse(&cfg); err != nil {
		return config{}, fmt.Errorf("parse environment: %w", err)
	}
	if *listen != "" {
		cfg.Listen = *listen
	}
	if *fake {
		cfg.Fake = true
	}
	return cfg, nil
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "tickstream:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("log level %q: %w", cfg.LogLevel, err)
	}
	zl := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(level).
		With().Timestamp().Logger()
	logger := telemetry.WrapZerolog(zl)

	router := logging.NewRouter(nil,
		logging.Config{BufferSize: cfg.EventBuffer, MinSeverity: logging.SeverityInfo},
		logging.NewZerologSink(zl),
	)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		router.Close(ctx)
	}()

	counters := telemetry.NewPollCounters()
	metrics := &telemetry.MetricsMap{}
	opts := tickbridge.Options{
		LibraryPath: cfg.LibraryPath,
		Logger:      logger,
		Counters:    counters,
		Metrics:     metrics,
	}

	stop := make(chan struct{})
	var client *tickbridge.Client
	if cfg.Fake {
		engine := enginesim.New(enginesim.Config{TickRate: cfg.TickRate, Logger: logger})
		go engine.Run(stop)
		client = tickbridge.NewClient(engine.Core(), opts)
		zl.Info().Int("tick_rate", cfg.TickRate).Msg("running against the stand-in engine")
	} else {
		client, err = tickbridge.Connect(opts)
		if err != nil {
			close(stop)
			return err
		}
	}

	hub := stream.NewHub(stream.HubConfig{Logger: logger, Events: router, Metrics: metrics})
	pump := stream.NewPump(hub, client.Physicist())
	go pump.Run(stop)

	mux := http.NewServeMux()
	handler := stream.NewHandler(hub, client, stream.HandlerConfig{
		Logger:   logger,
		Counters: counters,
	})
	handler.Register(mux)

	server := &http.Server{Addr: cfg.Listen, Handler: mux}
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.ListenAndServe()
	}()
	zl.Info().Str("listen", cfg.Listen).Msg("tickstream serving")

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigs:
		zl.Info().Str("signal", sig.String()).Msg("shutting down")
	case err := <-serveErr:
		close(stop)
		hub.Close()
		return err
	}

	close(stop)
	ctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	hub.Close()

	snap := counters.Snapshot()
	zl.Info().
		Uint64("polls", snap.Polls).
		Uint64("delivered", snap.Delivered).
		Uint64("timeouts", snap.Timeouts).
		Msg("final poll counters")
	return nil
}
