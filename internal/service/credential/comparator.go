package credential

import (
	"context"

	"github.com/pontohq/timeclock-backend-go/internal/domain/credential"
)

// DirectComparator matches biometric identifiers by direct equality. Template
// matching proper lives in an external capability; this is the default until
// one is wired in.
type DirectComparator struct{}

func (DirectComparator) Match(ctx context.Context, storedTemplateID, presented string) (bool, error) {
	return storedTemplateID == presented, nil
}

var _ credential.BiometricComparator = DirectComparator{}
