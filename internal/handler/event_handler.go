package handler

import (
	"net/http"

	"Band_Plan/internal/service"

	"github.com/gin-gonic/gin"
)

type EventHandler struct {
	svc *service.EventService
}

func NewEventHandler(svc *service.EventService) *EventHandler {
	return &EventHandler{svc: svc}
}

type EventReq struct {
	Name      string   `json:"name"`
	Date      string   `json:"date"` // YYYY-MM-DD，编辑时忽略
	Time      string   `json:"time"`
	Notes     string   `json:"notes"`
	Location  string   `json:"location"`
	MemberIDs []uint64 `json:"member_ids"`
}

func (h *EventHandler) List(c *gin.Context) {
	groupID, ok := paramID(c, "id")
	if !ok {
		return
	}
	list, err := h.svc.ListByGroup(groupID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"list": list})
}

func (h *EventHandler) Create(c *gin.Context) {
	userID := currentUserID(c)
	groupID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req EventReq
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}
	date, ok := parseDate(c, req.Date)
	if !ok {
		return
	}

	event, err := h.svc.Create(c.Request.Context(), userID, groupID, service.EventInput{
		Name:      req.Name,
		Date:      date,
		Time:      req.Time,
		Notes:     req.Notes,
		Location:  req.Location,
		MemberIDs: req.MemberIDs,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

func (h *EventHandler) Update(c *gin.Context) {
	userID := currentUserID(c)
	eventID, ok := paramID(c, "eventId")
	if !ok {
		return
	}

	var req EventReq
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	event, err := h.svc.Update(c.Request.Context(), userID, eventID, service.EventInput{
		Name:      req.Name,
		Time:      req.Time,
		Notes:     req.Notes,
		Location:  req.Location,
		MemberIDs: req.MemberIDs,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

func (h *EventHandler) Delete(c *gin.Context) {
	userID := currentUserID(c)
	eventID, ok := paramID(c, "eventId")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), userID, eventID); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}
