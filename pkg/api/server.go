// Package api exposes the HTTP surface: case lifecycle, investigation
// turns, evidence files, reports, and the event stream.
package api

import (
	"github.com/gin-gonic/gin"

	"github.com/caseops/inquest/pkg/database"
	"github.com/caseops/inquest/pkg/events"
	"github.com/caseops/inquest/pkg/queue"
	"github.com/caseops/inquest/pkg/report"
	"github.com/caseops/inquest/pkg/services"
)

// Server holds the handler dependencies. Optional collaborators
// (workerPool, dispatcher) may be nil; the routes that need them
// degrade gracefully.
type Server struct {
	db             *database.Client
	cases          *services.CaseService
	investigations *services.InvestigationService
	evidence       *services.EvidenceService
	reports        *report.Generator
	workerPool     *queue.WorkerPool
	dispatcher     *events.Dispatcher
}

// NewServer creates the API server.
func NewServer(
	db *database.Client,
	cases *services.CaseService,
	investigations *services.InvestigationService,
	evidence *services.EvidenceService,
	reports *report.Generator,
	workerPool *queue.WorkerPool,
	dispatcher *events.Dispatcher,
) *Server {
	return &Server{
		db:             db,
		cases:          cases,
		investigations: investigations,
		evidence:       evidence,
		reports:        reports,
		workerPool:     workerPool,
		dispatcher:     dispatcher,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(), securityHeaders())

	r.GET("/health", s.healthHandler)

	v1 := r.Group("/api/v1")
	{
		v1.POST("/cases", s.createCaseHandler)
		v1.GET("/cases", s.listCasesHandler)
		v1.GET("/cases/:id", s.getCaseHandler)
		v1.PATCH("/cases/:id", s.updateCaseHandler)
		v1.DELETE("/cases/:id", s.deleteCaseHandler)
		v1.POST("/cases/:id/resolve", s.resolveCaseHandler)
		v1.POST("/cases/:id/close", s.closeCaseHandler)
		v1.GET("/cases/:id/messages", s.transcriptHandler)

		v1.POST("/cases/:id/investigation", s.initializeHandler)
		v1.GET("/cases/:id/investigation", s.getStateHandler)
		v1.POST("/cases/:id/turns", s.processTurnHandler)
		v1.GET("/cases/:id/progress", s.progressHandler)
		v1.POST("/cases/:id/hypotheses", s.addHypothesisHandler)
		v1.DELETE("/cases/:id/hypotheses/:hid", s.retireHypothesisHandler)
		v1.POST("/cases/:id/evidence", s.addEvidenceHandler)
		v1.POST("/cases/:id/degraded/ack", s.ackDegradedHandler)

		v1.POST("/cases/:id/files", s.uploadFileHandler)
		v1.GET("/cases/:id/files", s.listFilesHandler)
		v1.GET("/files/:fid", s.downloadFileHandler)
		v1.DELETE("/files/:fid", s.deleteFileHandler)

		v1.POST("/cases/:id/reports", s.generateReportHandler)
		v1.GET("/cases/:id/reports", s.listReportsHandler)
		v1.GET("/cases/:id/reports/recommendations", s.reportRecommendationsHandler)
		v1.POST("/cases/:id/closure/reports", s.linkClosureReportsHandler)
		v1.GET("/reports/:rid", s.getReportHandler)
		v1.DELETE("/reports/:rid", s.deleteReportHandler)

		v1.GET("/cases/:id/stream", s.caseStreamHandler)
		v1.GET("/stream", s.globalStreamHandler)

		v1.GET("/queue/health", s.queueHealthHandler)
	}

	return r
}
