package http

import (
	"net/http"

	"eventos/internal/domain"

	"github.com/gin-gonic/gin"
)

type profileUpdateRequest struct {
	Nombre   *string `json:"nombre"`
	Apellido *string `json:"apellido"`
	Correo   *string `json:"correo"`
}

type changeRoleRequest struct {
	Rol string `json:"rol"`
}

func (s *Server) handleGetProfile(c *gin.Context) {
	principal, ok := s.requireAuthenticated(c)
	if !ok {
		return
	}
	if !s.usersReady(c) {
		return
	}
	profile, err := s.users.ProfileOf(c.Request.Context(), principal.Subject)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (s *Server) handleUpdateProfile(c *gin.Context) {
	principal, ok := s.requireAuthenticated(c)
	if !ok {
		return
	}
	if !s.usersReady(c) {
		return
	}
	var req profileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeErrorCode(c, http.StatusBadRequest, "INVALID_JSON", "invalid json")
		return
	}
	profile, err := s.users.UpdateProfile(c.Request.Context(), principal.Subject, domain.ProfileUpdate{
		Nombre:   req.Nombre,
		Apellido: req.Apellido,
		Correo:   req.Correo,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (s *Server) handleDeleteProfile(c *gin.Context) {
	principal, ok := s.requireAuthenticated(c)
	if !ok {
		return
	}
	if !s.usersReady(c) {
		return
	}
	if err := s.users.DeleteAccount(c.Request.Context(), principal.Subject); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "usuario eliminado"})
}

func (s *Server) handleListUsers(c *gin.Context) {
	principal, ok := s.requireAny(c, "admin:write", "organizador:write")
	if !ok {
		return
	}
	if !s.usersReady(c) {
		return
	}
	profiles, err := s.users.ListOthers(c.Request.Context(), principal.Subject)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, profiles)
}

func (s *Server) handleChangeRole(c *gin.Context) {
	if _, ok := s.requireAny(c, "admin:write", "organizador:write"); !ok {
		return
	}
	if !s.usersReady(c) {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req changeRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Rol == "" {
		writeErrorCode(c, http.StatusBadRequest, "INVALID_JSON", "rol is required")
		return
	}
	profile, err := s.users.ChangeRole(c.Request.Context(), id, req.Rol)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "rol actualizado", "usuario": profile})
}
