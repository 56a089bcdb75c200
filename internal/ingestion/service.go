package ingestion

import (
	"log"

	"github.com/catalogops/product-report/internal/config"
	"github.com/catalogops/product-report/internal/models"
	"github.com/catalogops/product-report/pkg/checksum"
	"github.com/google/uuid"
)

// Processor splits an input file into valid records and per-line errors.
type Processor interface {
	ProcessFile(path string) ([]models.Record, []models.LineError, error)
}

// Aggregator reduces the valid-record set into run statistics.
type Aggregator interface {
	Aggregate(records []models.Record) models.Statistics
}

// Renderer formats the run results into the report text.
type Renderer interface {
	Render(valid []models.Record, lineErrors []models.LineError, stats models.Statistics) string
}

// Sink persists the rendered report.
type Sink interface {
	Write(report string) error
}

// Summary is the operator-facing digest of one run.
type Summary struct {
	Total      int
	Valid      int
	Invalid    int
	TotalValue float64
	ReportPath string
}

// ReportService wires the processing pipeline together. It holds no business
// logic of its own.
type ReportService struct {
	processor  Processor
	aggregator Aggregator
	renderer   Renderer
	sink       Sink
	config     config.Config
}

func NewReportService(processor Processor, aggregator Aggregator, renderer Renderer, sink Sink, cfg config.Config) *ReportService {
	return &ReportService{
		processor:  processor,
		aggregator: aggregator,
		renderer:   renderer,
		sink:       sink,
		config:     cfg,
	}
}

// Execute drives one run: process file, aggregate statistics, render the
// report, persist it. Per-line failures are report content, not run
// failures. A missing input file downgrades to a warning and the run still
// produces an empty report; only a sink write failure aborts.
func (s *ReportService) Execute() (Summary, error) {
	runID := uuid.New()
	log.Printf("Starting run %s for input %s", runID, s.config.InputPath)

	if sum, err := checksum.GetFileChecksum(s.config.InputPath); err == nil {
		log.Printf("Input file checksum: %s", sum)
	}

	valid, lineErrors, err := s.processor.ProcessFile(s.config.InputPath)
	if err != nil {
		log.Printf("WARN: %v. Producing an empty report.", err)
	}

	stats := s.aggregator.Aggregate(valid)
	report := s.renderer.Render(valid, lineErrors, stats)

	if err := s.sink.Write(report); err != nil {
		return Summary{}, err
	}

	log.Printf("Run %s finished: %d valid, %d invalid, report saved to %s",
		runID, len(valid), len(lineErrors), s.config.OutputPath)

	return Summary{
		Total:      len(valid) + len(lineErrors),
		Valid:      len(valid),
		Invalid:    len(lineErrors),
		TotalValue: stats.TotalValue,
		ReportPath: s.config.OutputPath,
	}, nil
}
