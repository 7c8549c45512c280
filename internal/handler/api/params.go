package api

import (
	"errors"
	"net/http"

	"resort-engine/internal/domain/reservation"
	"resort-engine/internal/handler/httperr"
	"resort-engine/internal/handler/middleware"
	"resort-engine/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errUnauthenticated = errors.New("unauthenticated request reached a protected handler")

// actor aborts with 401 when no actor was set by the auth middleware.
func actor(c *gin.Context) (shared.Actor, bool) {
	a, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
	}
	return a, ok
}

func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+name+" format", nil)
		return uuid.Nil, false
	}
	return id, true
}

func pathKind(c *gin.Context) (reservation.Kind, bool) {
	kind, err := reservation.ParseKind(c.Param("kind"))
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return "", false
	}
	return kind, true
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return false
	}
	return true
}

func bindQuery(c *gin.Context, dst any) bool {
	if err := c.ShouldBindQuery(dst); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return false
	}
	return true
}
