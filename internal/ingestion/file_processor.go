package ingestion

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/catalogops/product-report/internal/models"
)

// ErrEmptyLine is recorded for blank or whitespace-only input lines. Such
// lines never reach the validator and never consume an id.
var ErrEmptyLine = errors.New("empty line")

// Validator parses one raw line into a Record. A successful id parse claims
// the id's slot in usedIDs even if a later field fails.
type Validator interface {
	ParseAndValidate(line string, usedIDs map[int]bool) (*models.Record, error)
}

// FileProcessor walks a line source in order and splits it into valid
// records and per-line errors. Id uniqueness is tracked across the whole
// source with a set that is created fresh for every Process call.
type FileProcessor struct {
	validator Validator
}

func NewFileProcessor(validator Validator) *FileProcessor {
	return &FileProcessor{validator: validator}
}

// Process reads the source line by line with 1-based numbering. Per-line
// failures are collected, never propagated; both result sequences preserve
// input order.
func (fp *FileProcessor) Process(r io.Reader) ([]models.Record, []models.LineError) {
	valid := []models.Record{}
	lineErrors := []models.LineError{}
	usedIDs := make(map[int]bool)

	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := scanner.Text()

		if strings.TrimSpace(line) == "" {
			lineErrors = append(lineErrors, models.LineError{Line: lineNumber, Reason: ErrEmptyLine})
			continue
		}

		record, err := fp.validator.ParseAndValidate(line, usedIDs)
		if err != nil {
			lineErrors = append(lineErrors, models.LineError{Line: lineNumber, Reason: err})
			continue
		}
		valid = append(valid, *record)
	}
	if err := scanner.Err(); err != nil {
		log.Printf("WARN: failed reading line source after line %d: %v", lineNumber, err)
	}

	return valid, lineErrors
}

// ProcessFile opens path and processes its contents. A missing or unreadable
// file is a recoverable condition: the error is returned for the caller to
// log, alongside empty sequences, so the run can still produce a report.
func (fp *FileProcessor) ProcessFile(path string) ([]models.Record, []models.LineError, error) {
	file, err := os.Open(path)
	if err != nil {
		return []models.Record{}, []models.LineError{}, fmt.Errorf("failed to open input file %s: %w", path, err)
	}
	defer file.Close()

	valid, lineErrors := fp.Process(file)
	return valid, lineErrors, nil
}
