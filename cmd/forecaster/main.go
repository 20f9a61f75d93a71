package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"matchup-forecast/internal/catalog"
	"matchup-forecast/internal/config"
	"matchup-forecast/internal/forecast"
	"matchup-forecast/internal/server"
	"matchup-forecast/internal/workflow"
)

func main() {
	homeCode := flag.String("home", "", "home team code for a one-shot forecast")
	awayCode := flag.String("away", "", "away team code for a one-shot forecast")
	flag.Parse()

	cfg := config.Load()
	if err := config.Validate(cfg); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	cat := catalog.Default()
	if cfg.CatalogPath != "" {
		var err error
		cat, err = catalog.LoadFile(cfg.CatalogPath)
		if err != nil {
			log.Fatalf("Catalog load failed: %v", err)
		}
	}
	log.Printf("Catalog loaded: %d teams", cat.Len())

	wf := workflow.New(cat, forecast.DefaultParams(), cfg.AnalysisLatency)

	if *homeCode != "" || *awayCode != "" {
		runOnce(wf, *homeCode, *awayCode, cfg.AnalysisLatency)
		return
	}

	serve(wf, cat, cfg)
}

// runOnce computes a single forecast from the command line and prints it.
func runOnce(wf *workflow.Workflow, home, away string, latency time.Duration) {
	if home == "" || away == "" {
		log.Fatal("Both -home and -away are required for a one-shot forecast")
	}
	if err := wf.Select(forecast.SideHome, home); err != nil {
		log.Fatalf("Home selection: %v", err)
	}
	if err := wf.Select(forecast.SideAway, away); err != nil {
		log.Fatalf("Away selection: %v", err)
	}
	if !wf.Trigger() {
		log.Fatal("Forecast trigger rejected")
	}

	deadline := time.Now().Add(latency + 5*time.Second)
	for wf.State() != workflow.StateResolved {
		if time.Now().After(deadline) {
			log.Fatal("Forecast did not resolve")
		}
		time.Sleep(10 * time.Millisecond)
	}

	pred, _ := wf.Prediction()
	snap := wf.Snapshot()

	fmt.Printf("%s @ %s\n", snap.Away.Name, snap.Home.Name)
	fmt.Printf("  Predicted score: %d-%d (total %d)\n", pred.HomeScore, pred.AwayScore, pred.TotalPoints)
	fmt.Printf("  Winner: %s (%.1f%%, %s confidence)\n", pred.WinnerName, pred.WinProbability*100, pred.ConfidenceTier)
	fmt.Printf("  O/U line: %.1f (over %.1f%%)\n", pred.OverUnderLine, pred.OverProbability*100)
	fmt.Printf("  Spread: %+.1f, %s to cover (%.1f%%)\n", pred.SpreadLine, pred.SpreadCoverCode, pred.SpreadProbability*100)
}

// serve runs the HTTP presentation API until interrupted.
func serve(wf *workflow.Workflow, cat *catalog.Catalog, cfg config.Config) {
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: server.New(wf, cat).Router(),
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Println("Shutdown signal received, stopping...")
		cancel()
	}()

	go func() {
		log.Printf("Forecast API listening on %s (latency %s)", srv.Addr, cfg.AnalysisLatency)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Server error: %v", err)
			cancel()
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
	log.Println("Forecaster stopped gracefully")
}
