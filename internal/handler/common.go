package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"Band_Plan/internal/coverage"
	"Band_Plan/internal/middleware"
	"Band_Plan/internal/service"

	"github.com/gin-gonic/gin"
)

func currentUserID(c *gin.Context) uint64 {
	userIDAny, _ := c.Get(middleware.ContextUserIDKey)
	userID, _ := userIDAny.(uint64)
	return userID
}

func paramID(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid id"})
		return 0, false
	}
	return id, true
}

func parseDate(c *gin.Context, raw string) (time.Time, bool) {
	date, err := time.Parse(coverage.DateLayout, raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid date, want YYYY-MM-DD"})
		return time.Time{}, false
	}
	return date, true
}

// writeServiceError 业务错误到 HTTP 状态码的统一映射
func writeServiceError(c *gin.Context, err error) {
	var missing *coverage.MissingInstrumentsError
	switch {
	case errors.As(err, &missing):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"msg":                 err.Error(),
			"missing_instruments": missing.Instruments,
		})
	case errors.Is(err, service.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"msg": err.Error()})
	case errors.Is(err, service.ErrEventOnDate),
		errors.Is(err, service.ErrDateTaken),
		errors.Is(err, service.ErrDateNotAvailable),
		errors.Is(err, service.ErrMemberNotInGroup),
		errors.Is(err, service.ErrMemberAlreadyLinked):
		c.JSON(http.StatusConflict, gin.H{"msg": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
	}
}
