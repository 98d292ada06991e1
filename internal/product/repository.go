package product

import (
	"context"

	"github.com/fekuna/omnipos-warehouse-service/internal/model"
)

type Repository interface {
	FindAll(ctx context.Context) ([]model.Product, error)
	SaveAll(ctx context.Context, products []model.Product) error
}
