package console

import (
	"context"
	"fmt"
	"io"

	"smart-house/internal/ports"
)

// Sink writes reports to a writer, guaranteeing a trailing newline so
// consecutive reports stay separated.
type Sink struct {
	w io.Writer
}

var _ ports.ReportSink = (*Sink)(nil)

func NewSink(w io.Writer) *Sink {
	return &Sink{w: w}
}

func (s *Sink) Write(ctx context.Context, report string) error {
	if _, err := io.WriteString(s.w, report); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	if len(report) == 0 || report[len(report)-1] != '\n' {
		if _, err := io.WriteString(s.w, "\n"); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
	}
	return nil
}
