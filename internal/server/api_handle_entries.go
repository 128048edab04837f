package server

import (
	"errors"
	"net/http"

	"github.com/Lord-Y/dircache"
	"github.com/gin-gonic/gin"
)

// session returns the session of the directory named in the request path.
// A 404 is sent when the directory is unknown
func (s *Server) session(c *gin.Context) (*dircache.Session[*dircache.Record], bool) {
	name := c.Params.ByName("name")
	session, ok := s.sessions[name]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": dircache.ErrUnknownDirectory.Error()})
		return nil, false
	}
	return session, true
}

// errorStatus maps dircache errors to http status codes
func errorStatus(err error) int {
	switch {
	case errors.Is(err, dircache.ErrEntryNotFound), errors.Is(err, dircache.ErrUnknownDirectory):
		return http.StatusNotFound
	case errors.Is(err, dircache.ErrEntryAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, dircache.ErrReadOnlyDirectory):
		return http.StatusForbidden
	case errors.Is(err, dircache.ErrEntryIDRequired), errors.Is(err, dircache.ErrNilRecord):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func toRecord(entry Entry) *dircache.Record {
	record := dircache.NewRecord(entry.ID)
	for field, value := range entry.Fields {
		record.Set(field, value)
	}
	for name, ids := range entry.References {
		record.SetReferences(name, ids)
	}
	return record
}

func fromRecord(record *dircache.Record) Entry {
	return Entry{
		ID:         record.ID,
		Fields:     record.Fields,
		References: record.References,
		ReadOnly:   record.IsReadOnly(),
	}
}

// fetchDirectories returns the names of all configured directories
func (s *Server) fetchDirectories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"directories": s.manager.Names()})
}

// fetchEntry will fetch the entry through the directory cache.
// References are resolved unless references=false is provided
func (s *Server) fetchEntry(c *gin.Context) {
	session, ok := s.session(c)
	if !ok {
		return
	}

	id := c.Params.ByName("id")
	var (
		record *dircache.Record
		found  bool
		err    error
	)
	if c.DefaultQuery("references", "true") == "false" {
		record, found, err = session.GetEntryWithoutReferences(id)
	} else {
		record, found, err = session.GetEntry(id)
	}
	if err != nil {
		c.JSON(errorStatus(err), gin.H{"error": err.Error()})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": dircache.ErrEntryNotFound.Error()})
		return
	}

	c.JSON(http.StatusOK, fromRecord(record))
}

// createEntry will create the entry with the provided data
func (s *Server) createEntry(c *gin.Context) {
	session, ok := s.session(c)
	if !ok {
		return
	}

	var data Entry
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := session.CreateEntry(toRecord(data))
	if err != nil {
		c.JSON(errorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// updateEntry will replace the entry with the provided data
func (s *Server) updateEntry(c *gin.Context) {
	session, ok := s.session(c)
	if !ok {
		return
	}

	var data Entry
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := session.UpdateEntry(c.Params.ByName("id"), toRecord(data)); err != nil {
		c.JSON(errorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "OK"})
}

// deleteEntry will delete the provided entry
func (s *Server) deleteEntry(c *gin.Context) {
	session, ok := s.session(c)
	if !ok {
		return
	}

	if err := session.DeleteEntry(c.Params.ByName("id")); err != nil {
		c.JSON(errorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "OK"})
}
