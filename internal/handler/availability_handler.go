package handler

import (
	"net/http"

	"Band_Plan/internal/coverage"
	"Band_Plan/internal/service"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	svc      *service.AvailabilityService
	coverage *service.CoverageService
}

func NewAvailabilityHandler(svc *service.AvailabilityService, coverageSvc *service.CoverageService) *AvailabilityHandler {
	return &AvailabilityHandler{svc: svc, coverage: coverageSvc}
}

type MarkReq struct {
	Date   string `json:"date"`              // YYYY-MM-DD
	UserID uint64 `json:"user_id,omitempty"` // 为空表示操作自己
}

// Coverage 整队可用性：available / not_available 两个集合加逐日期解释
func (h *AvailabilityHandler) Coverage(c *gin.Context) {
	groupID, ok := paramID(c, "id")
	if !ok {
		return
	}
	res, err := h.coverage.Resolve(c.Request.Context(), groupID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// Eligibility 指定日期每个成员能否到场，事件编辑器用
func (h *AvailabilityHandler) Eligibility(c *gin.Context) {
	groupID, ok := paramID(c, "id")
	if !ok {
		return
	}
	date, ok := parseDate(c, c.Query("date"))
	if !ok {
		return
	}
	list, err := h.coverage.EligibilityForDate(groupID, date)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"list": list})
}

func (h *AvailabilityHandler) Mark(c *gin.Context) {
	h.toggle(c, true)
}

func (h *AvailabilityHandler) Unmark(c *gin.Context) {
	h.toggle(c, false)
}

func (h *AvailabilityHandler) toggle(c *gin.Context, mark bool) {
	actorID := currentUserID(c)

	var req MarkReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}
	date, ok := parseDate(c, req.Date)
	if !ok {
		return
	}
	targetID := req.UserID
	if targetID == 0 {
		targetID = actorID
	}

	var err error
	if mark {
		err = h.svc.Mark(c.Request.Context(), actorID, targetID, date)
	} else {
		err = h.svc.Unmark(c.Request.Context(), actorID, targetID, date)
	}
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}

// MyDates 当前用户标记过的日期
func (h *AvailabilityHandler) MyDates(c *gin.Context) {
	userID := currentUserID(c)
	marks, err := h.svc.DatesFor(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "list failed"})
		return
	}
	dates := make([]string, 0, len(marks))
	for _, m := range marks {
		dates = append(dates, m.Date.Format(coverage.DateLayout))
	}
	c.JSON(http.StatusOK, gin.H{"dates": dates})
}
