package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/ggorockee/cookiemap/internal/candidates"
	"github.com/ggorockee/cookiemap/internal/config"
	"github.com/ggorockee/cookiemap/internal/connector"
	"github.com/ggorockee/cookiemap/internal/discovery"
	"github.com/ggorockee/cookiemap/internal/logger"
	"github.com/ggorockee/cookiemap/internal/storage"
	"github.com/ggorockee/cookiemap/internal/telemetry"
)

func main() {
	os.Exit(realMain(os.Args[1:]))
}

// realMain returns the process exit code so deferred cleanup runs before exit
func realMain(args []string) int {
	fs := flag.NewFlagSet("discovery", flag.ContinueOnError)
	platform := fs.String("platform", "", "platform to search: tiktok, instagram or all")
	keywords := fs.String("keywords", "dubai chewy cookie", "comma-separated search keywords")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *platform == "" && fs.NArg() > 0 {
		*platform = fs.Arg(0)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		return 1
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		return 1
	}
	defer logger.Sync()

	log := logger.GetLogger("main")

	if *platform == "" {
		log.Error("platform is required, e.g. discovery -platform tiktok")
		return 1
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tel, err := telemetry.New(ctx, "cookiemap-discovery", cfg.SigNozEndpoint)
	if err != nil {
		log.Warnf("telemetry init failed, continuing without it: %v", err)
		tel = telemetry.NewNoop("cookiemap-discovery")
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := tel.Shutdown(shutdownCtx); err != nil {
			log.Warnf("telemetry shutdown failed: %v", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Info("signal received, cancelling discovery")
		cancel()
	}()

	table := candidates.New(storage.NewFileBackend(cfg.Storage.CandidatesPath()))
	svc := discovery.NewService(connector.NewRegistryFromConfig(cfg), table, tel)

	terms := splitKeywords(*keywords)
	log.Infof("========== discovery start: %s (keywords: %v) ==========", *platform, terms)

	if err := discover(ctx, svc, *platform, terms); err != nil {
		log.Errorf("discovery on %s failed: %v", *platform, err)
		return 1
	}

	log.Infof("========== discovery end: %s ==========", *platform)
	return 0
}

func discover(ctx context.Context, svc *discovery.Service, platform string, keywords []string) error {
	log := logger.GetLogger("main")

	var results []*discovery.Result
	if platform == "all" {
		all, err := svc.RunAll(ctx, keywords)
		if err != nil {
			return err
		}
		results = all
	} else {
		res, err := svc.Run(ctx, discovery.Request{Keywords: keywords, Platform: platform})
		if err != nil {
			return err
		}
		results = append(results, res)
	}

	for _, res := range results {
		log.Infof("[%s] %s", res.RunID, res.Message())
		for _, c := range res.Saved {
			log.Infof("  #%s %s (%s, %s) via %s", c.ID, c.Name, c.City, c.State, c.SourceHandle)
		}
	}
	return nil
}

func splitKeywords(s string) []string {
	var out []string
	for _, k := range strings.Split(s, ",") {
		if k = strings.TrimSpace(k); k != "" {
			out = append(out, k)
		}
	}
	return out
}
