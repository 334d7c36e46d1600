package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/pathwise/internal/apperr"
	"github.com/abhisek/pathwise/internal/auth"
)

// writeError maps a service error onto an HTTP status:
//
//	validation        400  the request itself is malformed
//	invalid creds     401  wrong email or password
//	not found         404  nothing to show, distinct from empty
//	invalid transition 409 client state is stale, re-fetch
//	generation failed 502  the AI backend let us down, retry later
//
// Everything else is a 500 with no detail leaked.
func (s *Server) writeError(c *gin.Context, err error) {
	switch {
	case apperr.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, auth.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
	case apperr.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperr.IsInvalidTransition(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case apperr.IsGenerationFailed(err):
		c.JSON(http.StatusBadGateway, gin.H{"error": "content generation failed, try again"})
	default:
		s.log.Error("request failed", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
