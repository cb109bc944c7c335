package handlers

import (
	"ClinicBook/middlewares"
	"ClinicBook/store"
	"errors"

	"github.com/gin-gonic/gin"
)

// writeStoreError maps store errors onto HTTP statuses: uniqueness and
// reference conflicts are 409, field check failures 422, missing rows
// 404, anything else 500.
func writeStoreError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrUniquenessViolation):
		c.JSON(409, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrReferenceViolation):
		c.JSON(409, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrConstraintViolation):
		c.JSON(422, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrNotFound):
		c.JSON(404, gin.H{"error": err.Error()})
	default:
		middlewares.HttpError(c, "internal server error", 500, err)
	}
}
