package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vidro-absolut/study-api/internal/middleware"
	appErrors "github.com/vidro-absolut/study-api/pkg/errors"
)

func currentUserID(c *gin.Context) (string, error) {
	claims := middleware.Claims(c)
	if claims == nil || claims.UserID() == "" {
		return "", appErrors.ErrUnauthorized
	}
	return claims.UserID(), nil
}

func bindError(err error, message string) error {
	return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, message)
}

// pathID returns the :id route parameter. Ids are UUIDs, so anything else cannot name a row.
func pathID(c *gin.Context) (string, error) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		return "", appErrors.Clone(appErrors.ErrNotFound, "resource not found")
	}
	return id, nil
}
