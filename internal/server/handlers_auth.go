package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/pathwise/internal/apperr"
	"github.com/abhisek/pathwise/internal/store"
)

type userView struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Email   string   `json:"email"`
	Skills  []string `json:"skills"`
	Domains []string `json:"domains"`
}

func viewUser(u *store.User) userView {
	return userView{
		ID:      u.ID.String(),
		Name:    u.Name,
		Email:   u.Email,
		Skills:  u.Skills,
		Domains: u.Domains,
	}
}

func (s *Server) handleRegister(c *gin.Context) {
	var req struct {
		Name     string   `json:"name"`
		Email    string   `json:"email"`
		Password string   `json:"password"`
		Skills   []string `json:"skills"`
		Domains  []string `json:"domains"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		s.writeError(c, apperr.Validation("body", "invalid JSON"))
		return
	}

	sess, err := s.auth.Register(c.Request.Context(), req.Name, req.Email, req.Password, req.Skills, req.Domains)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"token": sess.Token, "user": viewUser(sess.User)})
}

func (s *Server) handleLogin(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		s.writeError(c, apperr.Validation("body", "invalid JSON"))
		return
	}

	sess, err := s.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": sess.Token, "user": viewUser(sess.User)})
}
