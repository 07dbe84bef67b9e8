package api

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/caseops/inquest/pkg/events"
)

// keepAliveInterval is how often an SSE comment line is written so
// intermediate proxies do not drop an idle stream.
const keepAliveInterval = 30 * time.Second

// caseStreamHandler handles GET /api/v1/cases/:id/stream. Streams the
// case's NOTIFY events as SSE.
func (s *Server) caseStreamHandler(c *gin.Context) {
	if _, err := s.cases.GetCase(c.Request.Context(), c.Param("id"), userID(c)); err != nil {
		abortWithError(c, err)
		return
	}
	s.streamChannel(c, events.CaseChannel(c.Param("id")))
}

// globalStreamHandler handles GET /api/v1/stream. Streams case-level
// status events across all cases.
func (s *Server) globalStreamHandler(c *gin.Context) {
	s.streamChannel(c, events.GlobalCasesChannel)
}

func (s *Server) streamChannel(c *gin.Context, channel string) {
	if s.dispatcher == nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "event streaming not available"})
		return
	}

	ch, cancel := s.dispatcher.Subscribe(channel)
	defer cancel()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Writer.WriteHeader(http.StatusOK)
	c.Writer.Flush()

	keepAlive := time.NewTicker(keepAliveInterval)
	defer keepAlive.Stop()

	for {
		select {
		case <-c.Request.Context().Done():
			return
		case payload, ok := <-ch:
			if !ok {
				return
			}
			writeSSE(c.Writer, payload)
		case <-keepAlive.C:
			io.WriteString(c.Writer, ": keep-alive\n\n")
			c.Writer.Flush()
		}
	}
}

func writeSSE(w gin.ResponseWriter, payload []byte) {
	io.WriteString(w, "data: ")
	w.Write(payload)
	io.WriteString(w, "\n\n")
	w.Flush()
}
