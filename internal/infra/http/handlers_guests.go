package http

import (
	"net/http"

	"eventos/internal/domain"

	"github.com/gin-gonic/gin"
)

type guestRequest struct {
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	Correo   string `json:"correo"`
	Telefono string `json:"telefono"`
	Empresa  string `json:"empresa"`
}

func (s *Server) handleInviteGuest(c *gin.Context) {
	if _, ok := s.requireAuthenticated(c); !ok {
		return
	}
	if !s.guestsReady(c) {
		return
	}
	eventID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req guestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeErrorCode(c, http.StatusBadRequest, "INVALID_JSON", "invalid json")
		return
	}
	guest := domain.ExternalGuest{
		EventID:  eventID,
		Nombre:   req.Nombre,
		Apellido: req.Apellido,
		Correo:   req.Correo,
		Telefono: req.Telefono,
		Empresa:  req.Empresa,
	}
	if err := s.guests.Invite(c.Request.Context(), &guest); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, guest)
}

func (s *Server) handleListGuests(c *gin.Context) {
	if _, ok := s.requireAuthenticated(c); !ok {
		return
	}
	if !s.guestsReady(c) {
		return
	}
	eventID, ok := pathID(c, "id")
	if !ok {
		return
	}
	guests, err := s.guests.ListByEvent(c.Request.Context(), eventID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, guests)
}
