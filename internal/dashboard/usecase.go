package dashboard

import "context"

type UseCase interface {
	GetSummary(ctx context.Context) (*Summary, error)
}
