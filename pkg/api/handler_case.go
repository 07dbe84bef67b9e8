package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/caseops/inquest/pkg/models"
)

// createCaseHandler handles POST /api/v1/cases.
func (s *Server) createCaseHandler(c *gin.Context) {
	var body CreateCaseBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	created, err := s.cases.CreateCase(c.Request.Context(), userID(c), models.CreateCaseRequest{
		Title:       body.Title,
		Description: body.Description,
		Priority:    body.Priority,
		Tags:        body.Tags,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// getCaseHandler handles GET /api/v1/cases/:id.
func (s *Server) getCaseHandler(c *gin.Context) {
	found, err := s.cases.GetCase(c.Request.Context(), c.Param("id"), userID(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, found)
}

// listCasesHandler handles GET /api/v1/cases.
func (s *Server) listCasesHandler(c *gin.Context) {
	filters := models.CaseFilters{Limit: 25}

	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			filters.Limit = n
		}
	}
	if v := c.Query("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			filters.Offset = n
		}
	}
	if v := c.Query("status"); v != "" {
		switch models.CaseStatus(v) {
		case models.CaseConsulting, models.CaseInvestigating, models.CaseResolved, models.CaseClosed:
			filters.Status = models.CaseStatus(v)
		default:
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid status: " + v})
			return
		}
	}
	if v := c.Query("priority"); v != "" {
		switch models.CasePriority(v) {
		case models.PriorityLow, models.PriorityMedium, models.PriorityHigh, models.PriorityCritical:
			filters.Priority = models.CasePriority(v)
		default:
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid priority: " + v})
			return
		}
	}
	filters.Tag = c.Query("tag")
	if v := c.Query("created_after"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid created_after: must be RFC3339"})
			return
		}
		filters.CreatedAfter = &t
	}
	if v := c.Query("created_before"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid created_before: must be RFC3339"})
			return
		}
		filters.CreatedBefore = &t
	}

	result, err := s.cases.ListCases(c.Request.Context(), userID(c), filters)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// updateCaseHandler handles PATCH /api/v1/cases/:id.
func (s *Server) updateCaseHandler(c *gin.Context) {
	var body UpdateCaseBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	title := ""
	if body.Title != nil {
		title = *body.Title
	}
	description := ""
	if body.Description != nil {
		description = *body.Description
	}
	updated, err := s.cases.UpdateCase(c.Request.Context(), c.Param("id"), userID(c), title, description, body.Tags)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// deleteCaseHandler handles DELETE /api/v1/cases/:id.
func (s *Server) deleteCaseHandler(c *gin.Context) {
	if err := s.cases.DeleteCase(c.Request.Context(), c.Param("id"), userID(c)); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// resolveCaseHandler handles POST /api/v1/cases/:id/resolve.
func (s *Server) resolveCaseHandler(c *gin.Context) {
	var body StatusChangeBody
	_ = c.ShouldBindJSON(&body)

	resolved, err := s.cases.ResolveCase(c.Request.Context(), c.Param("id"), userID(c), body.Reason)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resolved)
}

// closeCaseHandler handles POST /api/v1/cases/:id/close.
func (s *Server) closeCaseHandler(c *gin.Context) {
	var body StatusChangeBody
	_ = c.ShouldBindJSON(&body)

	closed, err := s.cases.CloseCase(c.Request.Context(), c.Param("id"), userID(c), body.Reason)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, closed)
}

// transcriptHandler handles GET /api/v1/cases/:id/messages.
func (s *Server) transcriptHandler(c *gin.Context) {
	limit := 50
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 500 {
			limit = n
		}
	}
	messages, err := s.cases.Transcript(c.Request.Context(), c.Param("id"), userID(c), limit)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": messages})
}
