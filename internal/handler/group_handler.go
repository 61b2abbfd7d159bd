package handler

import (
	"net/http"

	"Band_Plan/internal/service"

	"github.com/gin-gonic/gin"
)

type GroupHandler struct {
	svc *service.GroupService
}

type GroupCreateReq struct {
	Name string `json:"name"`
}

func NewGroupHandler(coverageSvc *service.CoverageService) *GroupHandler {
	return &GroupHandler{svc: service.NewGroupService(coverageSvc)}
}

func (h *GroupHandler) Create(c *gin.Context) {
	userID := currentUserID(c)

	var req GroupCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	group, err := h.svc.CreateGroup(userID, req.Name)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": group.ID, "name": group.Name})
}

func (h *GroupHandler) List(c *gin.Context) {
	userID := currentUserID(c)
	list, err := h.svc.ListGroups(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"list": list})
}

func (h *GroupHandler) Delete(c *gin.Context) {
	userID := currentUserID(c)
	groupID, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.DeleteGroup(c.Request.Context(), userID, groupID); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}
