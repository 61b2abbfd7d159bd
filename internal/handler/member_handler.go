package handler

import (
	"net/http"

	"Band_Plan/internal/service"

	"github.com/gin-gonic/gin"
)

type MemberHandler struct {
	svc    *service.MemberService
	invite *service.InviteService
}

func NewMemberHandler(svc *service.MemberService, invite *service.InviteService) *MemberHandler {
	return &MemberHandler{svc: svc, invite: invite}
}

type MemberReq struct {
	Name        string   `json:"name"`
	Role        string   `json:"role"`
	Instruments []string `json:"instruments"`
}

type InviteReq struct {
	Email string `json:"email"`
}

type AcceptInviteReq struct {
	Code string `json:"code"`
}

func (h *MemberHandler) List(c *gin.Context) {
	groupID, ok := paramID(c, "id")
	if !ok {
		return
	}
	list, err := h.svc.ListMembers(groupID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"list": list})
}

func (h *MemberHandler) Add(c *gin.Context) {
	userID := currentUserID(c)
	groupID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req MemberReq
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	member, err := h.svc.AddMember(c.Request.Context(), userID, groupID, service.MemberInput{
		Name:        req.Name,
		Role:        req.Role,
		Instruments: req.Instruments,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, member)
}

func (h *MemberHandler) Edit(c *gin.Context) {
	userID := currentUserID(c)
	memberID, ok := paramID(c, "memberId")
	if !ok {
		return
	}

	var req MemberReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	member, err := h.svc.EditMember(c.Request.Context(), userID, memberID, service.MemberInput{
		Name:        req.Name,
		Role:        req.Role,
		Instruments: req.Instruments,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, member)
}

func (h *MemberHandler) Remove(c *gin.Context) {
	userID := currentUserID(c)
	memberID, ok := paramID(c, "memberId")
	if !ok {
		return
	}
	if err := h.svc.RemoveMember(c.Request.Context(), userID, memberID); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}

func (h *MemberHandler) Invite(c *gin.Context) {
	userID := currentUserID(c)
	memberID, ok := paramID(c, "memberId")
	if !ok {
		return
	}

	var req InviteReq
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}
	if err := h.invite.SendInvite(userID, memberID, req.Email); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}

func (h *MemberHandler) AcceptInvite(c *gin.Context) {
	userID := currentUserID(c)

	var req AcceptInviteReq
	if err := c.ShouldBindJSON(&req); err != nil || req.Code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}
	if err := h.invite.AcceptInvite(c.Request.Context(), userID, req.Code); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}
