package usecase

import (
	"context"

	"github.com/fekuna/omnipos-warehouse-service/internal/dashboard"
	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/logger"
)

type dashboardUseCase struct {
	repo   dashboard.Repository
	logger logger.ZapLogger
}

func NewDashboardUseCase(repo dashboard.Repository, log logger.ZapLogger) dashboard.UseCase {
	return &dashboardUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *dashboardUseCase) GetSummary(ctx context.Context) (*dashboard.Summary, error) {
	products, err := uc.repo.FindProducts(ctx)
	if err != nil {
		return nil, err
	}
	warehouses, err := uc.repo.FindWarehouses(ctx)
	if err != nil {
		return nil, err
	}
	stock, err := uc.repo.FindStock(ctx)
	if err != nil {
		return nil, err
	}
	return dashboard.Summarize(products, warehouses, stock), nil
}
