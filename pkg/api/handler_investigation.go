package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/caseops/inquest/pkg/services"
)

// initializeHandler handles POST /api/v1/cases/:id/investigation.
func (s *Server) initializeHandler(c *gin.Context) {
	var body InitializeBody
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
	}

	state, err := s.investigations.Initialize(c.Request.Context(), c.Param("id"), userID(c), services.InitializeRequest{
		StrategyChoice: body.StrategyChoice,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, state)
}

// getStateHandler handles GET /api/v1/cases/:id/investigation.
func (s *Server) getStateHandler(c *gin.Context) {
	state, err := s.investigations.GetState(c.Request.Context(), c.Param("id"), userID(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// processTurnHandler handles POST /api/v1/cases/:id/turns.
func (s *Server) processTurnHandler(c *gin.Context) {
	var body TurnBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	result, err := s.investigations.ProcessTurn(c.Request.Context(), c.Param("id"), userID(c), body.Input, body.Attachments)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// progressHandler handles GET /api/v1/cases/:id/progress.
func (s *Server) progressHandler(c *gin.Context) {
	progress, err := s.investigations.GetProgress(c.Request.Context(), c.Param("id"), userID(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, progress)
}

// addHypothesisHandler handles POST /api/v1/cases/:id/hypotheses.
func (s *Server) addHypothesisHandler(c *gin.Context) {
	var body HypothesisBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	h, err := s.investigations.AddHypothesis(c.Request.Context(), c.Param("id"), userID(c), body.Statement, body.Category, body.Likelihood)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, h)
}

// retireHypothesisHandler handles DELETE /api/v1/cases/:id/hypotheses/:hid.
// ?superseded=true marks the hypothesis superseded instead of retired.
func (s *Server) retireHypothesisHandler(c *gin.Context) {
	superseded := c.Query("superseded") == "true"
	err := s.investigations.RetireHypothesis(c.Request.Context(), c.Param("id"), userID(c), c.Param("hid"), superseded)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// addEvidenceHandler handles POST /api/v1/cases/:id/evidence.
func (s *Server) addEvidenceHandler(c *gin.Context) {
	var body EvidenceBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	ev, err := s.investigations.AddEvidence(c.Request.Context(), c.Param("id"), userID(c), body.Description, body.Category, body.HypothesisID, body.Supports)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ev)
}

// ackDegradedHandler handles POST /api/v1/cases/:id/degraded/ack.
func (s *Server) ackDegradedHandler(c *gin.Context) {
	if err := s.investigations.AcknowledgeDegraded(c.Request.Context(), c.Param("id"), userID(c)); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
