// Command watchface-serve runs a watch face and serves it over HTTP: the
// current frame at /face.png, its geometry at /api/face, a gesture endpoint
// and Prometheus metrics. With -tls a self-signed certificate is generated
// at startup so phones on the LAN can open it over HTTPS.
package main

import (
	"context"
	"crypto/tls"
	"errors"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/satindergrewal/watchface"
	"github.com/satindergrewal/watchface/config"
	"github.com/satindergrewal/watchface/logging"
	"github.com/satindergrewal/watchface/metrics"
	"github.com/satindergrewal/watchface/ntpclock"
	"github.com/satindergrewal/watchface/raster"
	"github.com/satindergrewal/watchface/server"
)

func main() {
	addr := flag.String("addr", "", "listen address (default :8080, or :8443 with -tls)")
	useTLS := flag.Bool("tls", false, "serve HTTPS with an in-memory self-signed certificate")
	themeName := flag.String("theme", "", "theme: color or mono")
	configPath := flag.String("config", "", "HCL config file")
	logLevel := flag.String("log-level", "", "debug, info, warn or error")
	ntpServer := flag.String("ntp", "", "correct the clock against this NTP server")
	flag.Parse()

	var file *config.File
	if *configPath != "" {
		var err error
		if file, err = config.Load(*configPath); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	} else {
		file = &config.File{}
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
	if *addr != "" {
		file.Listen = *addr
	}

	if err := run(file, *useTLS); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(file *config.File, useTLS bool) error {
	level, err := logging.ParseLevel(file.LogLevel)
	if err != nil {
		return err
	}
	logCfg := logging.DefaultConfig()
	logCfg.Level = level
	log := logging.New(logCfg)

	cfg, err := file.Face()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	opts := []watchface.Option{watchface.WithObserver(metrics.New(reg))}
	var clock watchface.Clock
	if file.NTPServer != "" {
		c := ntpclock.New(file.NTPServer, log)
		go c.Run(ctx, ntpclock.DefaultResync)
		clock = c
		opts = append(opts, watchface.WithClock(c))
	}
	canvas := raster.New(cfg.Theme)
	face := watchface.NewFace(canvas, cfg, opts...)

	go func() {
		if err := face.Run(ctx, watchface.AlignedTicks(ctx, clock, cfg.TickInterval), nil); err != nil && !errors.Is(err, context.Canceled) {
			log.Error("face loop stopped", "err", err)
		}
	}()

	listen := file.Listen
	if listen == "" {
		listen = ":8080"
		if useTLS {
			listen = ":8443"
		}
	}

	srv := &http.Server{
		Addr:              listen,
		Handler:           server.New(face, canvas, metrics.Handler(reg), log).Router(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	scheme := "http"
	if useTLS {
		cert, err := selfSignedCert(certIPs())
		if err != nil {
			return fmt.Errorf("tls cert: %w", err)
		}
		srv.TLSConfig = &tls.Config{Certificates: []tls.Certificate{cert}}
		scheme = "https"
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	_, port, _ := net.SplitHostPort(listen)
	log.Info("watch face server",
		"theme", cfg.Theme.Name,
		"url", fmt.Sprintf("%s://%s/face.png", scheme, net.JoinHostPort(lanIP().String(), port)),
	)

	if useTLS {
		// Empty cert/key paths because TLSConfig is set directly.
		err = srv.ListenAndServeTLS("", "")
	} else {
		err = srv.ListenAndServe()
	}
	if errors.Is(err, http.ErrServerClosed) {
		log.Info("server stopped")
		return nil
	}
	return err
}
