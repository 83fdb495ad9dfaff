package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	domainerrors "payeasy.backend/internal/domain/errors"
	"payeasy.backend/internal/interfaces/http/middleware"
	"payeasy.backend/internal/interfaces/http/response"
	"payeasy.backend/pkg/utils"
)

const defaultPageSize = 20

// paginationFromQuery reads ?page and ?limit with sane defaults.
func paginationFromQuery(c *gin.Context) utils.PaginationParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultPageSize)))
	if limit <= 0 || limit > 100 {
		limit = defaultPageSize
	}
	return utils.GetPaginationParams(page, limit)
}

// requireUserID pulls the authenticated user from the context, aborting
// with 401 when the auth middleware did not run.
func requireUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return uuid.Nil, false
	}
	return userID, true
}

// parseIDParam parses a :param path segment as a UUID.
func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid "+name))
		return uuid.Nil, false
	}
	return id, true
}
