package http

import (
	"net/http"
	"strconv"
	"time"

	"eventos/internal/domain"
	"eventos/internal/infra/auth/rbac"

	"github.com/gin-gonic/gin"
)

type eventRequest struct {
	Nombre      string    `json:"nombre"`
	Tipo        string    `json:"tipo"`
	Fecha       time.Time `json:"fecha"`
	Empresa     string    `json:"empresa"`
	Descripcion string    `json:"descripcion"`
}

func (r eventRequest) toDomain() domain.Event {
	return domain.Event{
		Nombre:      r.Nombre,
		Tipo:        r.Tipo,
		Fecha:       r.Fecha,
		Empresa:     r.Empresa,
		Descripcion: r.Descripcion,
	}
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		writeErrorCode(c, http.StatusBadRequest, "INVALID_ID", "invalid id")
		return 0, false
	}
	return id, true
}

func (s *Server) handleActiveEvents(c *gin.Context) {
	if !s.eventsReady(c) {
		return
	}
	events, err := s.events.ListActive(c.Request.Context(), 0)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, events)
}

// handleEventHistory serves the full event list, past events included, for
// the admin history view.
func (s *Server) handleEventHistory(c *gin.Context) {
	if _, ok := s.requireAny(c, "admin:read", rbac.TagAdmin); !ok {
		return
	}
	if !s.eventsReady(c) {
		return
	}
	events, err := s.events.ListAll(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, events)
}

func (s *Server) handleNextEvent(c *gin.Context) {
	if !s.eventsReady(c) {
		return
	}
	event, err := s.events.NextEvent(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	if event == nil {
		c.Status(http.StatusOK)
		return
	}
	c.JSON(http.StatusOK, event)
}

func (s *Server) handleActiveEventCount(c *gin.Context) {
	if !s.eventsReady(c) {
		return
	}
	count, err := s.events.CountActive(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

func (s *Server) handleActiveParticipantCounts(c *gin.Context) {
	if !s.eventsReady(c) {
		return
	}
	counts, err := s.events.ActiveParticipantCounts(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, counts)
}

func (s *Server) handleTotalActiveParticipants(c *gin.Context) {
	if !s.eventsReady(c) {
		return
	}
	total, err := s.events.TotalActiveParticipants(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"total": total})
}

func (s *Server) handleGetEvent(c *gin.Context) {
	if !s.eventsReady(c) {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	event, err := s.events.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

func (s *Server) handleEventParticipants(c *gin.Context) {
	if !s.eventsReady(c) {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	profiles, err := s.events.Participants(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, profiles)
}

func (s *Server) handleCreateEvent(c *gin.Context) {
	if _, ok := s.requireAny(c, "admin:write", "organizador:write", rbac.TagAdmin); !ok {
		return
	}
	if !s.eventsReady(c) {
		return
	}
	var req eventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeErrorCode(c, http.StatusBadRequest, "INVALID_JSON", "invalid json")
		return
	}
	event := req.toDomain()
	if err := s.events.Create(c.Request.Context(), &event); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

func (s *Server) handleUpdateEvent(c *gin.Context) {
	if _, ok := s.requireAny(c, "admin:update", "organizador:update"); !ok {
		return
	}
	if !s.eventsReady(c) {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req eventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeErrorCode(c, http.StatusBadRequest, "INVALID_JSON", "invalid json")
		return
	}
	event, err := s.events.Update(c.Request.Context(), id, req.toDomain())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

func (s *Server) handleDeleteEvent(c *gin.Context) {
	if _, ok := s.requireAny(c, "admin:write", "organizador:write", rbac.TagAdmin); !ok {
		return
	}
	if !s.eventsReady(c) {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := s.events.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "evento eliminado"})
}

func (s *Server) handleJoinEvent(c *gin.Context) {
	principal, ok := s.requireAuthenticated(c)
	if !ok {
		return
	}
	if !s.eventsReady(c) {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	event, err := s.events.Join(c.Request.Context(), principal.Subject, id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": principal.Subject + " se inscribió al evento " + event.Nombre})
}

func (s *Server) handleLeaveEvent(c *gin.Context) {
	principal, ok := s.requireAuthenticated(c)
	if !ok {
		return
	}
	if !s.eventsReady(c) {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	event, err := s.events.Leave(c.Request.Context(), principal.Subject, id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": principal.Subject + " se eliminó del evento " + event.Nombre})
}

func (s *Server) handleMyEvents(c *gin.Context) {
	principal, ok := s.requireAuthenticated(c)
	if !ok {
		return
	}
	if !s.eventsReady(c) {
		return
	}
	events, err := s.events.EventsOf(c.Request.Context(), principal.Subject)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, events)
}
