package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/caseops/inquest/pkg/models"
)

func validReportType(t models.ReportType) bool {
	for _, known := range models.AllReportTypes {
		if t == known {
			return true
		}
	}
	return false
}

// generateReportHandler handles POST /api/v1/cases/:id/reports. With
// async=true the report is enqueued for the worker pool and returned as
// 202 in PENDING; otherwise it is rendered inline.
func (s *Server) generateReportHandler(c *gin.Context) {
	var body GenerateReportBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	if !validReportType(body.Type) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid report type: " + string(body.Type)})
		return
	}

	// Ownership check rides on the case lookup.
	owned, err := s.cases.GetCase(c.Request.Context(), c.Param("id"), userID(c))
	if err != nil {
		abortWithError(c, err)
		return
	}

	if body.Async {
		rec, err := s.reports.Enqueue(c.Request.Context(), owned, body.Type)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusAccepted, rec)
		return
	}

	rec, err := s.reports.Generate(c.Request.Context(), owned, body.Type, body.UseLLM)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

// listReportsHandler handles GET /api/v1/cases/:id/reports. ?type
// filters to one report type.
func (s *Server) listReportsHandler(c *gin.Context) {
	if _, err := s.cases.GetCase(c.Request.Context(), c.Param("id"), userID(c)); err != nil {
		abortWithError(c, err)
		return
	}

	reportType := models.ReportType(c.Query("type"))
	if reportType != "" && !validReportType(reportType) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid report type: " + string(reportType)})
		return
	}

	reports, err := s.reports.List(c.Request.Context(), c.Param("id"), reportType)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reports": reports})
}

// getReportHandler handles GET /api/v1/reports/:rid.
func (s *Server) getReportHandler(c *gin.Context) {
	rec, err := s.reports.Get(c.Request.Context(), c.Param("rid"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	if _, err := s.cases.GetCase(c.Request.Context(), rec.CaseID, userID(c)); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// deleteReportHandler handles DELETE /api/v1/reports/:rid.
func (s *Server) deleteReportHandler(c *gin.Context) {
	rec, err := s.reports.Get(c.Request.Context(), c.Param("rid"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	if _, err := s.cases.GetCase(c.Request.Context(), rec.CaseID, userID(c)); err != nil {
		abortWithError(c, err)
		return
	}
	if err := s.reports.Delete(c.Request.Context(), rec.ID); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// reportRecommendationsHandler handles GET
// /api/v1/cases/:id/reports/recommendations.
func (s *Server) reportRecommendationsHandler(c *gin.Context) {
	owned, err := s.cases.GetCase(c.Request.Context(), c.Param("id"), userID(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	recommended, err := s.reports.Recommendations(c.Request.Context(), owned)
	if err != nil {
		abortWithError(c, err)
		return
	}
	if recommended == nil {
		recommended = []models.ReportType{}
	}
	c.JSON(http.StatusOK, gin.H{"recommended": recommended})
}

// linkClosureReportsHandler handles POST /api/v1/cases/:id/closure/reports.
func (s *Server) linkClosureReportsHandler(c *gin.Context) {
	var body LinkClosureBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	owned, err := s.cases.GetCase(c.Request.Context(), c.Param("id"), userID(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	if err := s.reports.LinkToClosure(c.Request.Context(), owned, body.ReportIDs); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
