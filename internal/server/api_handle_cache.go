package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// fetchCacheStats returns the counters of the directory cache
func (s *Server) fetchCacheStats(c *gin.Context) {
	session, ok := s.session(c)
	if !ok {
		return
	}

	cache := session.Cache()
	c.JSON(http.StatusOK, gin.H{
		"directory": cache.Name(),
		"enabled":   cache.Enabled(),
		"entries":   cache.Len(),
		"stats":     cache.Stats(),
	})
}

// invalidateCache removes the provided ids from the directory cache
func (s *Server) invalidateCache(c *gin.Context) {
	session, ok := s.session(c)
	if !ok {
		return
	}

	var data InvalidateRequest
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session.Cache().Invalidate(data.IDs...)
	c.JSON(http.StatusOK, gin.H{"message": "OK"})
}

// flushCache removes all entries from the directory cache
func (s *Server) flushCache(c *gin.Context) {
	session, ok := s.session(c)
	if !ok {
		return
	}

	session.Cache().InvalidateAll()
	c.JSON(http.StatusOK, gin.H{"message": "OK"})
}

// flushAllCaches removes all entries from every directory cache
func (s *Server) flushAllCaches(c *gin.Context) {
	s.manager.InvalidateAll()
	s.Logger.Info().Msg("All directory caches flushed")
	c.JSON(http.StatusOK, gin.H{"message": "OK"})
}
