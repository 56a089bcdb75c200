package main

import (
	"fmt"
	"log"
	"os"
	"runtime"
	"strings"

	"github.com/catalogops/product-report/internal/config"
	"github.com/catalogops/product-report/internal/ingestion"
	"github.com/catalogops/product-report/internal/parser"
	"github.com/catalogops/product-report/internal/report"
	"github.com/catalogops/product-report/internal/stats"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Set at build time via ldflags.
var (
	Version   = "1.0.0"
	BuildDate = "unknown"
)

var (
	inputPath  string
	outputPath string
)

var rootCmd = &cobra.Command{
	Use:   "product-report",
	Short: "Validate a delimited product file and generate a summary report",
	Long: `product-report reads a ;-delimited product file, validates every record
against the catalog business rules, and writes a text report with aggregate
statistics and a per-line error listing. A report is always produced, even
when the input file is missing or contains only invalid records.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display the application version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("product-report")
		fmt.Printf("Version:    %s\n", Version)
		fmt.Printf("Build Date: %s\n", BuildDate)
		fmt.Printf("Go Version: %s\n", runtime.Version())
	},
}

func init() {
	rootCmd.Flags().StringVar(&inputPath, "input", "", "path to the input file (overrides INPUT_FILE)")
	rootCmd.Flags().StringVar(&outputPath, "output", "", "path to the report file (overrides OUTPUT_FILE)")
	rootCmd.AddCommand(versionCmd)
}

func run() error {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: could not load .env file: %v", err)
	}

	cfg := config.New()
	if inputPath != "" {
		cfg.InputPath = inputPath
	}
	if outputPath != "" {
		cfg.OutputPath = outputPath
	}

	fileProcessor := ingestion.NewFileProcessor(parser.NewRecordValidator())
	service := ingestion.NewReportService(
		fileProcessor,
		stats.NewAggregator(),
		report.NewRenderer(),
		report.FileSink{Path: cfg.OutputPath},
		*cfg,
	)

	summary, err := service.Execute()
	if err != nil {
		return err
	}

	printSummary(summary)
	return nil
}

func printSummary(s ingestion.Summary) {
	fmt.Println("DATA PROCESSING UTILITY")
	fmt.Println(strings.Repeat("=", 40))
	fmt.Printf("Total records: %d\n", s.Total)
	fmt.Printf("Valid: %d\n", s.Valid)
	fmt.Printf("Invalid: %d\n", s.Invalid)
	fmt.Printf("Total value: %.2f\n", s.TotalValue)
	fmt.Printf("Report saved to: %s\n", s.ReportPath)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
