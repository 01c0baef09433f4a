package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"TronLens/internal/di"
	"TronLens/internal/domain/models"
	"TronLens/internal/usecase"
	"TronLens/pkg/config"
	"TronLens/pkg/util"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "config file path")
	address := flag.String("address", "", "TRX or ETH address to analyze")
	batch := flag.Int("batch", 0, "page size for transfer history (0 uses config)")
	asJSON := flag.Bool("json", false, "print the report as JSON")
	flag.Parse()

	if *address == "" && flag.NArg() > 0 {
		*address = flag.Arg(0)
	}
	if *address == "" {
		fmt.Fprintln(os.Stderr, "usage: analyze -address <addr> [-batch n] [-json]")
		os.Exit(2)
	}

	cfg, err := config.LoadWithEnv(*configPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}
	// keep stdout for the report
	cfg.Log.Output = "stderr"

	analyzer, cleanup, err := di.InitializeAnalyzer(cfg)
	if err != nil {
		log.Fatalf("analyzer initialization failed: %v", err)
	}
	defer cleanup()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	report, err := analyzer.Analyze(ctx, *address, *batch)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidAddress) {
			fmt.Fprintf(os.Stderr, "%q is not a TRX or ETH address\n", *address)
			cleanup()
			os.Exit(2)
		}
		cleanup()
		log.Fatalf("analysis failed: %v", err)
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			log.Printf("encode report: %v", err)
		}
		return
	}
	printReport(os.Stdout, report)
}

func printReport(w io.Writer, r *models.AddressReport) {
	fmt.Fprintf(w, "Address:    %s (%s)\n", r.Address, r.AddressType)
	fmt.Fprintf(w, "Transfers:  %d in %d requests\n", r.TransferCount, r.Requests)
	if !r.Complete {
		fmt.Fprintf(w, "Warning:    history incomplete: %s\n", r.TruncatedReason)
	}
	fmt.Fprintf(w, "Total in:   %s\n", util.FormatAmount(r.Totals.TotalIn))
	fmt.Fprintf(w, "Total out:  %s\n", util.FormatAmount(r.Totals.TotalOut))
	fmt.Fprintf(w, "Activity:   %s\n", r.Profile)

	printShares(w, "Top senders", r.TopIn)
	printShares(w, "Top recipients", r.TopOut)

	if len(r.Daily) > 0 {
		fmt.Fprintln(w, "\nDaily volume:")
		for _, d := range r.Daily {
			fmt.Fprintf(w, "  %s  %4d  %s\n", d.Date, d.Count, util.FormatAmount(d.Amount))
		}
	}
}

func printShares(w io.Writer, title string, shares []models.CounterpartyShare) {
	if len(shares) == 0 {
		return
	}
	fmt.Fprintf(w, "\n%s:\n", title)
	for _, s := range shares {
		fmt.Fprintf(w, "  %-14s  %16s  %6s%%\n", util.ShortenAddress(s.Address), util.FormatAmount(s.Amount), s.Percent.StringFixed(2))
	}
}
