package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AKASH-GHOSH2002/POS-BACKEND/internal/adapter/api/dto"
	"github.com/AKASH-GHOSH2002/POS-BACKEND/internal/adapter/repository"
	"github.com/AKASH-GHOSH2002/POS-BACKEND/internal/domain/bill"
	"github.com/AKASH-GHOSH2002/POS-BACKEND/internal/domain/customer"
	"github.com/AKASH-GHOSH2002/POS-BACKEND/internal/domain/inventory"
	"github.com/AKASH-GHOSH2002/POS-BACKEND/internal/domain/price"
	"github.com/AKASH-GHOSH2002/POS-BACKEND/internal/domain/product"
	"github.com/AKASH-GHOSH2002/POS-BACKEND/internal/domain/staff"
	"github.com/AKASH-GHOSH2002/POS-BACKEND/internal/domain/store"
	"github.com/AKASH-GHOSH2002/POS-BACKEND/pkg/logger"
)

// statusForError maps domain and repository errors to HTTP status codes.
// Unknown errors fall through to 500.
func statusForError(err error) int {
	switch {
	case errors.Is(err, repository.ErrInventoryNotFound),
		errors.Is(err, repository.ErrProductNotFound),
		errors.Is(err, repository.ErrStoreNotFound),
		errors.Is(err, repository.ErrCustomerNotFound),
		errors.Is(err, repository.ErrStaffNotFound),
		errors.Is(err, repository.ErrBillNotFound),
		errors.Is(err, repository.ErrNotificationNotFound),
		errors.Is(err, price.ErrPriceNotFound):
		return http.StatusNotFound

	case errors.Is(err, repository.ErrInventoryDuplicate),
		errors.Is(err, repository.ErrProductDuplicateSKU),
		errors.Is(err, repository.ErrStoreDuplicateCode),
		errors.Is(err, repository.ErrBillDuplicateNumber):
		return http.StatusConflict

	case errors.Is(err, inventory.ErrInsufficientStock):
		return http.StatusUnprocessableEntity

	case errors.Is(err, inventory.ErrInvalidQuantity),
		errors.Is(err, inventory.ErrNegativeQuantity),
		errors.Is(err, inventory.ErrInvalidMovement),
		errors.Is(err, inventory.ErrEmptyProductID),
		errors.Is(err, inventory.ErrEmptyStoreID),
		errors.Is(err, bill.ErrNotHold),
		errors.Is(err, bill.ErrNoItems),
		errors.Is(err, bill.ErrInvalidQuantity),
		errors.Is(err, bill.ErrNegativePaidAmount),
		errors.Is(err, product.ErrEmptyName),
		errors.Is(err, product.ErrEmptySKU),
		errors.Is(err, store.ErrEmptyName),
		errors.Is(err, store.ErrEmptyCode),
		errors.Is(err, customer.ErrEmptyName),
		errors.Is(err, staff.ErrEmptyName),
		errors.Is(err, staff.ErrEmptyStoreID):
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}

// respondError writes the error envelope for a failed operation, logging the
// unexpected ones.
func respondError(ctx *gin.Context, log logger.Logger, message string, err error) {
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		log.Error(message, "error", err)
	}
	ctx.JSON(status, dto.NewErrorResponse(status, message, err.Error()))
}
