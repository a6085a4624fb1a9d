package utils

import (
	"errors"
	"net/http"

	"github.com/tayyabriaz60/Cloth-Product/models"

	"github.com/gin-gonic/gin"
)

// BadRequest reports a boundary-level failure (malformed JSON, wrong field
// types) in the same shape as service validation errors.
func BadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error":   "validation_error",
		"message": err.Error(),
	})
}

// RespondError maps the service error taxonomy onto HTTP responses. Anything
// unrecognized is treated as a storage failure.
func RespondError(c *gin.Context, err error) {
	var (
		validationErr *models.ValidationError
		notFoundErr   *models.NotFoundError
		stockErr      *models.InsufficientStockError
	)

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "validation_error",
			"message": validationErr.Error(),
		})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "not_found",
			"message": notFoundErr.Error(),
		})
	case errors.As(err, &stockErr):
		c.JSON(http.StatusConflict, gin.H{
			"error":        "insufficient_stock",
			"message":      stockErr.Error(),
			"inventory_id": stockErr.InventoryID,
			"requested":    stockErr.Requested,
			"available":    stockErr.Available,
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "storage_error",
			"message": err.Error(),
		})
	}
}
