package handler

import (
	"net/http"

	"Band_Plan/internal/repository/mysql"

	"github.com/gin-gonic/gin"
)

// InstrumentHandler 全局乐器目录，前端编辑成员时用来做选择列表
type InstrumentHandler struct {
	repo *mysql.InstrumentRepository
}

func NewInstrumentHandler() *InstrumentHandler {
	return &InstrumentHandler{repo: mysql.NewInstrumentRepository()}
}

func (h *InstrumentHandler) List(c *gin.Context) {
	list, err := h.repo.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"list": list})
}
