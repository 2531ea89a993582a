// Package main generates a metrics report from one uploaded transaction file.
// It decodes the file (first sheet or table only), runs the metrics engine,
// and writes report.json plus REPORT.md to the output directory.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"

	"payment-metrics-lab/internal/decode"
	"payment-metrics-lab/internal/engine"
	"payment-metrics-lab/internal/reporting"
)

func main() {
	// Parse flags
	input := flag.String("input", "", "Input file (.csv, .tsv, .txt, .xlsx)")
	outputDir := flag.String("output-dir", "out", "Output directory for generated files")
	trace := flag.Bool("trace", false, "Echo engine diagnostics to stderr")

	feeRate := flag.Float64("fee-rate", 0.02, "Revenue proxy fee rate applied to volume")
	gatewayShare := flag.Float64("gateway-share", 0.015, "Payment gateway share of revenue split")
	bnplShare := flag.Float64("bnpl-share", 0.008, "Credit/BNPL share of revenue split")
	vasShare := flag.Float64("vas-share", 0.005, "Value-added services share of revenue split")
	onboardMultiplier := flag.Float64("onboard-multiplier", 1.2, "Onboarded merchants estimate multiplier")
	churnRate := flag.Float64("churn-rate", 5.2, "Merchant churn rate placeholder, percent")
	settlementHours := flag.Float64("settlement-hours", 24, "Settlement time constant, hours")
	uptime := flag.Float64("uptime", 99.95, "System uptime placeholder, percent")
	compliance := flag.Float64("compliance", 98.5, "Compliance score placeholder, percent")
	flag.Parse()

	if *input == "" {
		fmt.Fprintln(os.Stderr, "Error: --input is required")
		flag.Usage()
		os.Exit(1)
	}

	rows, err := decode.DecodeFile(*input)
	if err != nil {
		if errors.Is(err, decode.ErrUnsupportedFormat) {
			fmt.Fprintf(os.Stderr, "Error: %v (supported: .csv, .tsv, .txt, .xlsx)\n", err)
		} else {
			fmt.Fprintf(os.Stderr, "Error decoding %s: %v\n", *input, err)
		}
		os.Exit(1)
	}

	opts := []engine.Option{engine.WithConfig(engine.Config{
		FeeRate:           decimal.NewFromFloat(*feeRate),
		GatewayShare:      decimal.NewFromFloat(*gatewayShare),
		CreditBNPLShare:   decimal.NewFromFloat(*bnplShare),
		VASShare:          decimal.NewFromFloat(*vasShare),
		OnboardMultiplier: *onboardMultiplier,
		ChurnRatePct:      *churnRate,
		SettlementHours:   *settlementHours,
		SystemUptimePct:   *uptime,
		CompliancePct:     *compliance,
	})}
	if *trace {
		opts = append(opts, engine.WithTracer(func(ev engine.TraceEvent) {
			fmt.Fprintf(os.Stderr, "[%s] %s %v\n", ev.Stage, ev.Message, ev.Fields)
		}))
	}

	report := engine.New(opts...).ComputeReport(rows)
	if report == nil {
		fmt.Println("No report available: dataset is empty")
		return
	}

	if err := os.MkdirAll(*outputDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output dir: %v\n", err)
		os.Exit(1)
	}

	jsonOut, err := reporting.RenderJSON(report)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering JSON: %v\n", err)
		os.Exit(1)
	}
	jsonPath := filepath.Join(*outputDir, "report.json")
	if err := os.WriteFile(jsonPath, jsonOut, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", jsonPath, err)
		os.Exit(1)
	}

	mdPath := filepath.Join(*outputDir, "REPORT.md")
	if err := os.WriteFile(mdPath, []byte(reporting.RenderMarkdown(report)), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", mdPath, err)
		os.Exit(1)
	}

	fmt.Printf("Report generated from %d rows:\n  %s\n  %s\n", len(rows), jsonPath, mdPath)
}
