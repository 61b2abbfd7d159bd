package handler

import (
	"net/http"

	"Band_Plan/internal/service"

	"github.com/gin-gonic/gin"
)

type CalendarHandler struct {
	svc *service.CalendarService
}

func NewCalendarHandler(svc *service.CalendarService) *CalendarHandler {
	return &CalendarHandler{svc: svc}
}

// ICS 日历客户端订阅的 .ics 文件
func (h *CalendarHandler) ICS(c *gin.Context) {
	groupID, ok := paramID(c, "id")
	if !ok {
		return
	}
	body, err := h.svc.ICS(groupID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="calendar.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(body))
}

// AvailableDates 纯文本的可用日期清单
func (h *CalendarHandler) AvailableDates(c *gin.Context) {
	groupID, ok := paramID(c, "id")
	if !ok {
		return
	}
	body, err := h.svc.AvailableDatesText(c.Request.Context(), groupID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(body))
}
