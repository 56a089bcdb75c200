package report

import (
	"fmt"
	"os"
)

// FileSink persists the rendered report to a file, overwriting any previous
// run's report at the same path.
type FileSink struct {
	Path string
}

func (s FileSink) Write(report string) error {
	if err := os.WriteFile(s.Path, []byte(report), 0644); err != nil {
		return fmt.Errorf("failed to write report to %s: %w", s.Path, err)
	}
	return nil
}
