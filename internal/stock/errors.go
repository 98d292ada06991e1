package stock

import "github.com/fekuna/omnipos-warehouse-service/internal/pkg/apperr"

var (
	ErrStockNotFound     = apperr.New(apperr.KindNotFound, "stock_not_found", "stock record not found")
	ErrProductNotFound   = apperr.New(apperr.KindNotFound, "product_not_found", "product not found")
	ErrWarehouseNotFound = apperr.New(apperr.KindNotFound, "warehouse_not_found", "warehouse not found")
	ErrNegativeQuantity  = apperr.New(apperr.KindValidation, "invalid_stock", "quantity cannot be negative")
	ErrZeroDelta         = apperr.New(apperr.KindValidation, "invalid_adjustment", "adjustment delta cannot be zero")
	ErrInsufficientStock = apperr.New(apperr.KindBusinessRule, "insufficient_stock", "adjustment would make stock negative")
	ErrQuantityOverflow  = apperr.New(apperr.KindBusinessRule, "quantity_overflow", "adjustment would overflow stock quantity")
)
