package product

import "github.com/fekuna/omnipos-warehouse-service/internal/pkg/apperr"

var (
	ErrProductNotFound = apperr.New(apperr.KindNotFound, "product_not_found", "product not found")
	ErrDuplicateSKU    = apperr.New(apperr.KindConflict, "duplicate_sku", "sku already exists")
	ErrSKURequired     = apperr.New(apperr.KindValidation, "invalid_product", "sku is required")
	ErrNameRequired    = apperr.New(apperr.KindValidation, "invalid_product", "name is required")
	ErrNegativeCost    = apperr.New(apperr.KindValidation, "invalid_product", "unit cost cannot be negative")
	ErrNegativeReorder = apperr.New(apperr.KindValidation, "invalid_product", "reorder point cannot be negative")
	ErrInvalidSort     = apperr.New(apperr.KindValidation, "invalid_sort", "unsupported sort field")
)
