package usecase

import (
	"context"
	"sort"
	"strings"

	"github.com/fekuna/omnipos-warehouse-service/internal/model"
	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/lock"
	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/logger"
	"github.com/fekuna/omnipos-warehouse-service/internal/product"
	"github.com/fekuna/omnipos-warehouse-service/internal/product/dto"
	"go.uber.org/zap"
)

type productUseCase struct {
	repo   product.Repository
	locker lock.Locker
	logger logger.ZapLogger
}

func NewProductUseCase(repo product.Repository, locker lock.Locker, log logger.ZapLogger) product.UseCase {
	return &productUseCase{
		repo:   repo,
		locker: locker,
		logger: log,
	}
}

func (uc *productUseCase) CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error) {
	p := model.Product{
		SKU:          strings.TrimSpace(input.SKU),
		Name:         strings.TrimSpace(input.Name),
		Category:     strings.TrimSpace(input.Category),
		UnitCost:     input.UnitCost,
		ReorderPoint: input.ReorderPoint.Int(),
	}
	if err := validate(&p); err != nil {
		return nil, err
	}

	ctx, unlock, err := uc.locker.Lock(ctx, lock.KeyProducts)
	if err != nil {
		return nil, err
	}
	defer unlock()

	products, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if !isSKUUnique(products, p.SKU, 0) {
		return nil, product.ErrDuplicateSKU
	}

	p.ID = model.NextID(products, productID)
	if err := uc.repo.SaveAll(ctx, append(products, p)); err != nil {
		return nil, err
	}

	uc.logger.Info("product created", zap.Int("product_id", p.ID), zap.String("sku", p.SKU))
	return &p, nil
}

func (uc *productUseCase) GetProduct(ctx context.Context, id int) (*model.Product, error) {
	products, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	p, _ := model.FindProduct(products, id)
	if p == nil {
		return nil, product.ErrProductNotFound
	}
	return p, nil
}

func (uc *productUseCase) ListProducts(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, error) {
	less, err := sortFunc(filters.SortBy)
	if err != nil {
		return nil, err
	}

	products, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]model.Product, 0, len(products))
	query := strings.ToLower(strings.TrimSpace(filters.SearchQuery))
	for _, p := range products {
		if filters.Category != "" && !strings.EqualFold(p.Category, filters.Category) {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(p.Name), query) &&
			!strings.Contains(strings.ToLower(p.SKU), query) {
			continue
		}
		out = append(out, p)
	}

	desc := strings.EqualFold(filters.SortOrder, "desc")
	sort.SliceStable(out, func(i, j int) bool {
		if desc {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
	return out, nil
}

func (uc *productUseCase) UpdateProduct(ctx context.Context, input *dto.UpdateProductInput) (*model.Product, error) {
	ctx, unlock, err := uc.locker.Lock(ctx, lock.KeyProducts)
	if err != nil {
		return nil, err
	}
	defer unlock()

	products, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	existing, idx := model.FindProduct(products, input.ID)
	if existing == nil {
		return nil, product.ErrProductNotFound
	}

	p := *existing
	if input.SKU != nil {
		p.SKU = strings.TrimSpace(*input.SKU)
	}
	if input.Name != nil {
		p.Name = strings.TrimSpace(*input.Name)
	}
	if input.Category != nil {
		p.Category = strings.TrimSpace(*input.Category)
	}
	if input.UnitCost != nil {
		p.UnitCost = *input.UnitCost
	}
	if input.ReorderPoint != nil {
		p.ReorderPoint = input.ReorderPoint.Int()
	}
	if err := validate(&p); err != nil {
		return nil, err
	}
	if !isSKUUnique(products, p.SKU, p.ID) {
		return nil, product.ErrDuplicateSKU
	}

	products[idx] = p
	if err := uc.repo.SaveAll(ctx, products); err != nil {
		return nil, err
	}

	uc.logger.Info("product updated", zap.Int("product_id", p.ID))
	return &p, nil
}

func (uc *productUseCase) DeleteProduct(ctx context.Context, id int) error {
	ctx, unlock, err := uc.locker.Lock(ctx, lock.KeyProducts)
	if err != nil {
		return err
	}
	defer unlock()

	products, err := uc.repo.FindAll(ctx)
	if err != nil {
		return err
	}
	_, idx := model.FindProduct(products, id)
	if idx < 0 {
		return product.ErrProductNotFound
	}

	products = append(products[:idx], products[idx+1:]...)
	if err := uc.repo.SaveAll(ctx, products); err != nil {
		return err
	}

	uc.logger.Info("product deleted", zap.Int("product_id", id))
	return nil
}

func validate(p *model.Product) error {
	switch {
	case p.SKU == "":
		return product.ErrSKURequired
	case p.Name == "":
		return product.ErrNameRequired
	case p.UnitCost.IsNegative():
		return product.ErrNegativeCost
	case p.ReorderPoint < 0:
		return product.ErrNegativeReorder
	}
	return nil
}

func isSKUUnique(products []model.Product, sku string, excludeID int) bool {
	for _, p := range products {
		if p.ID != excludeID && strings.EqualFold(p.SKU, sku) {
			return false
		}
	}
	return true
}

func productID(p model.Product) int { return p.ID }

func sortFunc(field string) (func(a, b model.Product) bool, error) {
	switch field {
	case "", "id":
		return func(a, b model.Product) bool { return a.ID < b.ID }, nil
	case "sku":
		return func(a, b model.Product) bool { return a.SKU < b.SKU }, nil
	case "name":
		return func(a, b model.Product) bool { return strings.ToLower(a.Name) < strings.ToLower(b.Name) }, nil
	case "category":
		return func(a, b model.Product) bool { return a.Category < b.Category }, nil
	case "unitCost":
		return func(a, b model.Product) bool { return a.UnitCost.LessThan(b.UnitCost) }, nil
	case "reorderPoint":
		return func(a, b model.Product) bool { return a.ReorderPoint < b.ReorderPoint }, nil
	default:
		return nil, product.ErrInvalidSort
	}
}
