package mirror

import (
	"context"
)

// MirrorService assembles the monthly point-mirror document. Pure projection:
// all computation lives in the summary service.
type MirrorService interface {
	Build(ctx context.Context, employeeID string, month, year int) (Document, error)
}
