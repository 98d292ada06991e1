package warehouse

import "github.com/fekuna/omnipos-warehouse-service/internal/pkg/apperr"

var (
	ErrWarehouseNotFound = apperr.New(apperr.KindNotFound, "warehouse_not_found", "warehouse not found")
	ErrDuplicateCode     = apperr.New(apperr.KindConflict, "duplicate_code", "warehouse code already exists")
	ErrCodeRequired      = apperr.New(apperr.KindValidation, "invalid_warehouse", "code is required")
	ErrNameRequired      = apperr.New(apperr.KindValidation, "invalid_warehouse", "name is required")
)
