package ports

import "context"

// ReportSink receives rendered reports for display.
type ReportSink interface {
	Write(ctx context.Context, report string) error
}
