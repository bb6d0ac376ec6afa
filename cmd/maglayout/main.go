package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/foomo/maglayout"
	"github.com/foomo/maglayout/config"
	"github.com/foomo/maglayout/reports"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func must(comment string, err error) {
	if err != nil {
		fmt.Println(comment, err)
		os.Exit(1)
	}
}

func main() {
	flagServe := flag.Bool("serve", false, "serve reports and metrics and rewalk on schedule")
	flagPrint := flag.Bool("print", false, "print every record as yaml")
	flagDebug := flag.Bool("debug", false, "dump the loaded config")
	flag.Parse()
	if len(flag.Args()) != 1 {
		fmt.Println("usage:", os.Args[0], "[-serve] [-print] path/to/config.yaml")
		os.Exit(1)
	}
	conf, errConf := config.Get(flag.Arg(0))
	must("config error:", errConf)
	if *flagDebug {
		spew.Dump(conf)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if *flagServe {
		serve(conf, logger)
		return
	}

	w := maglayout.NewWalker(
		conf.LayoutDir,
		conf.ImageDir,
		maglayout.WithLogger(logger),
		maglayout.WithIndexMode(maglayout.IndexMode(conf.IndexMode)),
		maglayout.WithNormalizedKeywords(conf.NormalizeKeywords),
	)
	if *flagPrint {
		examples := w.Walk()
		for examples.Next() {
			ex := examples.Example()
			errWrite := reports.WriteAnnotation(os.Stdout, ex)
			ex.Annotation.Close()
			must("could not write record:", errWrite)
		}
		must("walk failed:", examples.Err())
		return
	}
	status, errCollect := w.Collect()
	maglayout.PrintStatus(os.Stdout, status)
	if errCollect != nil {
		os.Exit(2)
	}
}

func serve(conf *config.Config, logger *slog.Logger) {
	registry := prometheus.NewRegistry()
	s := maglayout.NewService(conf, logger, registry)

	router := reports.NewRouter("/reports", s.StatusFunc(), logger)
	router.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	httpServer := &http.Server{
		Addr:         conf.Addr,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		if _, errRewalk := s.Rewalk(); errRewalk != nil {
			logger.Error("initial walk failed", "error", errRewalk)
		}
	}()
	stop, errSchedule := s.Schedule(conf.Schedule)
	must("could not schedule walks:", errSchedule)
	defer stop()

	go func() {
		logger.Info("serving reports", "addr", conf.Addr)
		if errListen := httpServer.ListenAndServe(); errListen != nil && !errors.Is(errListen, http.ErrServerClosed) {
			logger.Error("server failed", "error", errListen)
			os.Exit(1)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan
	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if errShutdown := httpServer.Shutdown(ctx); errShutdown != nil {
		logger.Error("shutdown failed", "error", errShutdown)
	}
}
