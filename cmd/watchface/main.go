// Command watchface shows a live analog watch face in the terminal. Any key
// or mouse click stands in for a shake and toggles the date; q quits.
//
// Usage:
//
//	watchface -theme mono -log /tmp/watchface.log -metrics :9100 -ntp pool.ntp.org
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

	"github.com/gdamore/tcell/v2"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/satindergrewal/watchface"
	"github.com/satindergrewal/watchface/config"
	"github.com/satindergrewal/watchface/logging"
	"github.com/satindergrewal/watchface/metrics"
	"github.com/satindergrewal/watchface/ntpclock"
	"github.com/satindergrewal/watchface/term"
)

func main() {
	themeName := flag.String("theme", "", "theme: color or mono")
	configPath := flag.String("config", "", "HCL config file")
	logPath := flag.String("log", "", "append logs to this file (the screen belongs to the face)")
	logLevel := flag.String("log-level", "", "debug, info, warn or error")
	ntpServer := flag.String("ntp", "", "correct the clock against this NTP server")
	metricsAddr := flag.String("metrics", "", "serve Prometheus metrics on this address")
	flag.Parse()

	file := &config.File{}
	if *configPath != "" {
		var err error
		if file, err = config.Load(*configPath); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}
	if *themeName != "" {
		file.Theme = *themeName
	}
	if *logLevel != "" {
		file.LogLevel = *logLevel
	}
	if *ntpServer != "" {
		file.NTPServer = *ntpServer
	}
	if *metricsAddr != "" {
		file.MetricsListen = *metricsAddr
	}

	if err := run(file, *logPath); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(file *config.File, logPath string) error {
	cfg, err := file.Face()
	if err != nil {
		return err
	}
	level, err := logging.ParseLevel(file.LogLevel)
	if err != nil {
		return err
	}
	logOut, err := logging.OpenFile(logPath)
	if err != nil {
		return err
	}
	defer logOut.Close()
	log := logging.New(logging.Config{Level: level, Output: logOut})

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()
	screen.EnableMouse()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var opts []watchface.Option
	var clock watchface.Clock
	if file.NTPServer != "" {
		c := ntpclock.New(file.NTPServer, log)
		go c.Run(ctx, ntpclock.DefaultResync)
		clock = c
		opts = append(opts, watchface.WithClock(c))
	}
	if file.MetricsListen != "" {
		reg := prometheus.NewRegistry()
		opts = append(opts, watchface.WithObserver(metrics.New(reg)))
		srv := &http.Server{
			Addr:              file.MetricsListen,
			Handler:           metrics.Handler(reg),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error("metrics server", "err", err)
			}
		}()
		defer srv.Close()
		log.Info("serving metrics", "addr", file.MetricsListen)
	}

	display := term.New(screen, cfg.Theme)
	display.SetStatus("any key: toggle date · q: quit")
	face := watchface.NewFace(display, cfg, opts...)
	events := display.Events(ctx)

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-events.Quit:
				cancel()
				return
			case <-events.Redraw:
				if err := face.Do(ctx, display.Flush); err != nil {
					return
				}
			}
		}
	}()

	log.Info("watch face started", "theme", cfg.Theme.Name, "tick", cfg.TickInterval)
	err = face.Run(ctx, watchface.AlignedTicks(ctx, clock, cfg.TickInterval), events.Gestures)
	log.Info("watch face stopped", "date", face.Visibility())
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
