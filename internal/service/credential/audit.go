package credential

import (
	"context"
	"log/slog"

	"github.com/pontohq/timeclock-backend-go/internal/domain/credential"
)

// NoopAuditSink discards audit events.
type NoopAuditSink struct{}

func (NoopAuditSink) Record(ctx context.Context, event credential.AuditEvent) error {
	return nil
}

// SlogAuditSink writes authentication audit events to the application log.
type SlogAuditSink struct{}

func (SlogAuditSink) Record(ctx context.Context, event credential.AuditEvent) error {
	attrs := []any{
		"method", string(event.Method),
		"success", event.Success,
		"ip", event.IPAddress,
		"device", event.DeviceID,
	}
	if event.EmployeeID != nil {
		attrs = append(attrs, "employee_id", *event.EmployeeID)
	}
	if event.Reason != "" {
		attrs = append(attrs, "reason", event.Reason)
	}
	slog.Info("Authentication attempt", attrs...)
	return nil
}
