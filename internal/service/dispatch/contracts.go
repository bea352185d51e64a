//go:generate mockgen -source=contracts.go -destination=dispatch_mocks_test.go -package=dispatch_test

package dispatch

import (
	"context"

	"service-assistance/internal/ports/dispatchtx"
)

// dispatchRepository opens the locked transaction scope the engine runs in.
type dispatchRepository interface {
	WithTx(ctx context.Context, fn func(tx dispatchtx.Repository) error) error
}
