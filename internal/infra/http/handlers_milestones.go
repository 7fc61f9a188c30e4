package http

import (
	"net/http"
	"time"

	"eventos/internal/domain"
	"eventos/internal/usecase"

	"github.com/gin-gonic/gin"
)

type grantMilestoneRequest struct {
	UserID      int64  `json:"userId"`
	Titulo      string `json:"titulo"`
	Descripcion string `json:"descripcion"`
	Categoria   string `json:"categoria"`
}

type milestoneUpdateRequest struct {
	Titulo        string     `json:"titulo"`
	Descripcion   string     `json:"descripcion"`
	Categoria     string     `json:"categoria"`
	FechaRegistro *time.Time `json:"fecha_registro"`
}

func (s *Server) handleGrantMilestone(c *gin.Context) {
	if _, ok := s.requireAuthenticated(c); !ok {
		return
	}
	if !s.milestonesReady(c) {
		return
	}
	eventID, ok := pathID(c, "eventoId")
	if !ok {
		return
	}
	var req grantMilestoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeErrorCode(c, http.StatusBadRequest, "INVALID_JSON", "invalid json")
		return
	}
	hito, err := s.milestones.Grant(c.Request.Context(), usecase.GrantMilestoneRequest{
		EventID:     eventID,
		UserID:      req.UserID,
		Titulo:      req.Titulo,
		Descripcion: req.Descripcion,
		Categoria:   req.Categoria,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, hito)
}

func (s *Server) handleListMilestones(c *gin.Context) {
	if _, ok := s.requireAuthenticated(c); !ok {
		return
	}
	if !s.milestonesReady(c) {
		return
	}
	hitos, err := s.milestones.ListAll(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, hitos)
}

func (s *Server) handleMyMilestones(c *gin.Context) {
	principal, ok := s.requireAuthenticated(c)
	if !ok {
		return
	}
	if !s.milestonesReady(c) {
		return
	}
	hitos, err := s.milestones.ListMine(c.Request.Context(), principal.Subject)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, hitos)
}

func (s *Server) handleGetMilestone(c *gin.Context) {
	if _, ok := s.requireAuthenticated(c); !ok {
		return
	}
	if !s.milestonesReady(c) {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	hito, err := s.milestones.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, hito)
}

func (s *Server) handleUpdateMilestone(c *gin.Context) {
	if _, ok := s.requireAny(c, "admin:update", "organizador:update"); !ok {
		return
	}
	if !s.milestonesReady(c) {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req milestoneUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeErrorCode(c, http.StatusBadRequest, "INVALID_JSON", "invalid json")
		return
	}
	update := domain.Milestone{
		Titulo:      req.Titulo,
		Descripcion: req.Descripcion,
		Categoria:   req.Categoria,
	}
	if req.FechaRegistro != nil {
		update.FechaRegistro = *req.FechaRegistro
	}
	hito, err := s.milestones.Update(c.Request.Context(), id, update)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, hito)
}

func (s *Server) handleDeleteMilestone(c *gin.Context) {
	if _, ok := s.requireAny(c, "admin:write", "organizador:write"); !ok {
		return
	}
	if !s.milestonesReady(c) {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := s.milestones.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "hito eliminado"})
}
