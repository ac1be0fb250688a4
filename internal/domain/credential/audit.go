package credential

import "context"

// AuditSink receives one event per authentication attempt. Implementations
// must not block the gate; write failures are logged and swallowed.
type AuditSink interface {
	Record(ctx context.Context, event AuditEvent) error
}
