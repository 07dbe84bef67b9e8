package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caseops/inquest/pkg/models"
)

func generateReport(t *testing.T, f *apiFixture, user, caseID string, reportType models.ReportType) *httptest.ResponseRecorder {
	t.Helper()
	return f.do(t, user, http.MethodPost, "/api/v1/cases/"+caseID+"/reports", GenerateReportBody{Type: reportType})
}

func TestGenerateReport_Inline(t *testing.T) {
	f := newAPIFixture(t)
	seedInvestigatingCase(t, f.repo, "case-1", "alice")

	rec := generateReport(t, f, "alice", "case-1", models.ReportIncident)
	require.Equal(t, http.StatusCreated, rec.Code)

	rpt := decode[models.CaseReport](t, rec)
	assert.Equal(t, models.ReportCompleted, rpt.Status)
	assert.Equal(t, 1, rpt.Version)
	assert.True(t, rpt.IsCurrent)
	assert.NotEmpty(t, rpt.Content)
}

func TestGenerateReport_InvalidType(t *testing.T) {
	f := newAPIFixture(t)
	seedInvestigatingCase(t, f.repo, "case-1", "alice")

	rec := generateReport(t, f, "alice", "case-1", "weekly_digest")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGenerateReport_Async(t *testing.T) {
	f := newAPIFixture(t)
	seedInvestigatingCase(t, f.repo, "case-1", "alice")

	rec := f.do(t, "alice", http.MethodPost, "/api/v1/cases/case-1/reports", GenerateReportBody{
		Type:  models.ReportIncident,
		Async: true,
	})
	require.Equal(t, http.StatusAccepted, rec.Code)

	rpt := decode[models.CaseReport](t, rec)
	assert.Equal(t, models.ReportPending, rpt.Status)
	assert.Equal(t, 1, rpt.Version)
}

func TestGenerateReport_VersionLimit(t *testing.T) {
	f := newAPIFixture(t)
	seedInvestigatingCase(t, f.repo, "case-1", "alice")

	for i := 1; i <= 5; i++ {
		rec := generateReport(t, f, "alice", "case-1", models.ReportIncident)
		require.Equal(t, http.StatusCreated, rec.Code, "version %d", i)
		rpt := decode[models.CaseReport](t, rec)
		assert.Equal(t, i, rpt.Version)
	}

	rec := generateReport(t, f, "alice", "case-1", models.ReportIncident)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestListReports_SingleCurrentVersion(t *testing.T) {
	f := newAPIFixture(t)
	seedInvestigatingCase(t, f.repo, "case-1", "alice")

	require.Equal(t, http.StatusCreated, generateReport(t, f, "alice", "case-1", models.ReportIncident).Code)
	require.Equal(t, http.StatusCreated, generateReport(t, f, "alice", "case-1", models.ReportIncident).Code)

	rec := f.do(t, "alice", http.MethodGet, "/api/v1/cases/case-1/reports?type=incident_report", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	result := decode[struct {
		Reports []*models.CaseReport `json:"reports"`
	}](t, rec)
	require.Len(t, result.Reports, 2)

	current := 0
	for _, r := range result.Reports {
		if r.IsCurrent {
			current++
			assert.Equal(t, 2, r.Version)
		}
	}
	assert.Equal(t, 1, current)
}

func TestDeleteReport_ClosureLinkedRefused(t *testing.T) {
	f := newAPIFixture(t)
	seedInvestigatingCase(t, f.repo, "case-1", "alice")

	rec := generateReport(t, f, "alice", "case-1", models.ReportIncident)
	require.Equal(t, http.StatusCreated, rec.Code)
	rpt := decode[models.CaseReport](t, rec)

	// Reports can only be linked to closure once the case is terminal.
	rec = f.do(t, "alice", http.MethodPost, "/api/v1/cases/case-1/closure/reports", LinkClosureBody{ReportIDs: []string{rpt.ID}})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = f.do(t, "alice", http.MethodPost, "/api/v1/cases/case-1/resolve", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(t, "alice", http.MethodPost, "/api/v1/cases/case-1/closure/reports", LinkClosureBody{ReportIDs: []string{rpt.ID}})
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = f.do(t, "alice", http.MethodDelete, "/api/v1/reports/"+rpt.ID, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestDeleteReport(t *testing.T) {
	f := newAPIFixture(t)
	seedInvestigatingCase(t, f.repo, "case-1", "alice")

	rec := generateReport(t, f, "alice", "case-1", models.ReportIncident)
	require.Equal(t, http.StatusCreated, rec.Code)
	rpt := decode[models.CaseReport](t, rec)

	rec = f.do(t, "mallory", http.MethodDelete, "/api/v1/reports/"+rpt.ID, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = f.do(t, "alice", http.MethodDelete, "/api/v1/reports/"+rpt.ID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = f.do(t, "alice", http.MethodGet, "/api/v1/reports/"+rpt.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestReportRecommendations(t *testing.T) {
	f := newAPIFixture(t)
	seedResolvedCase(t, f.repo, "case-1", "alice")

	rec := f.do(t, "alice", http.MethodGet, "/api/v1/cases/case-1/reports/recommendations", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	result := decode[struct {
		Recommended []models.ReportType `json:"recommended"`
	}](t, rec)
	assert.ElementsMatch(t, models.AllReportTypes, result.Recommended)

	// A completed current version drops its type from the list.
	require.Equal(t, http.StatusCreated, generateReport(t, f, "alice", "case-1", models.ReportPostMortem).Code)

	rec = f.do(t, "alice", http.MethodGet, "/api/v1/cases/case-1/reports/recommendations", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	result = decode[struct {
		Recommended []models.ReportType `json:"recommended"`
	}](t, rec)
	assert.ElementsMatch(t, []models.ReportType{models.ReportIncident, models.ReportRunbook}, result.Recommended)
}
