package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caseops/inquest/pkg/models"
)

func TestCreateCase(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, "alice", http.MethodPost, "/api/v1/cases", CreateCaseBody{
		Title:    "DB connection pool exhausted",
		Priority: models.PriorityHigh,
		Tags:     []string{"database"},
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	created := decode[models.Case](t, rec)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "alice", created.OwnerID)
	assert.Equal(t, models.CaseConsulting, created.Status)
	assert.Equal(t, []string{"database"}, created.Tags)
}

func TestCreateCase_MissingTitle(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, "alice", http.MethodPost, "/api/v1/cases", map[string]string{"description": "no title"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetCase_OwnershipEnforced(t *testing.T) {
	f := newAPIFixture(t)
	seedInvestigatingCase(t, f.repo, "case-1", "alice")

	rec := f.do(t, "alice", http.MethodGet, "/api/v1/cases/case-1", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(t, "mallory", http.MethodGet, "/api/v1/cases/case-1", nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = f.do(t, "alice", http.MethodGet, "/api/v1/cases/nope", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListCases_InvalidFilters(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, "alice", http.MethodGet, "/api/v1/cases?status=bogus", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(t, "alice", http.MethodGet, "/api/v1/cases?priority=urgent", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(t, "alice", http.MethodGet, "/api/v1/cases?created_after=yesterday", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListCases_ScopedToOwner(t *testing.T) {
	f := newAPIFixture(t)
	seedInvestigatingCase(t, f.repo, "case-1", "alice")
	seedInvestigatingCase(t, f.repo, "case-2", "bob")

	rec := f.do(t, "alice", http.MethodGet, "/api/v1/cases", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	result := decode[models.CaseListResponse](t, rec)
	require.Len(t, result.Cases, 1)
	assert.Equal(t, "case-1", result.Cases[0].ID)
}

func TestUpdateCase(t *testing.T) {
	f := newAPIFixture(t)
	seedInvestigatingCase(t, f.repo, "case-1", "alice")

	title := "Revised title"
	rec := f.do(t, "alice", http.MethodPatch, "/api/v1/cases/case-1", UpdateCaseBody{Title: &title})
	require.Equal(t, http.StatusOK, rec.Code)

	updated := decode[models.Case](t, rec)
	assert.Equal(t, "Revised title", updated.Title)
}

func TestDeleteCase_TerminalOnly(t *testing.T) {
	f := newAPIFixture(t)
	seedInvestigatingCase(t, f.repo, "case-1", "alice")

	// Active cases cannot be deleted.
	rec := f.do(t, "alice", http.MethodDelete, "/api/v1/cases/case-1", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = f.do(t, "alice", http.MethodPost, "/api/v1/cases/case-1/resolve", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(t, "alice", http.MethodDelete, "/api/v1/cases/case-1", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = f.do(t, "alice", http.MethodGet, "/api/v1/cases/case-1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestResolveCase(t *testing.T) {
	f := newAPIFixture(t)
	seedInvestigatingCase(t, f.repo, "case-1", "alice")

	rec := f.do(t, "alice", http.MethodPost, "/api/v1/cases/case-1/resolve", StatusChangeBody{Reason: "root cause fixed"})
	require.Equal(t, http.StatusOK, rec.Code)
	resolved := decode[models.Case](t, rec)
	assert.Equal(t, models.CaseResolved, resolved.Status)

	// Resolved is terminal.
	rec = f.do(t, "alice", http.MethodPost, "/api/v1/cases/case-1/close", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestCloseCase_FromConsulting(t *testing.T) {
	f := newAPIFixture(t)
	seedConsultingCase(t, f.repo, "case-1", "alice", "", "")

	// Abandoning consultation is allowed; resolving it is not.
	rec := f.do(t, "alice", http.MethodPost, "/api/v1/cases/case-1/resolve", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = f.do(t, "alice", http.MethodPost, "/api/v1/cases/case-1/close", StatusChangeBody{Reason: "duplicate"})
	require.Equal(t, http.StatusOK, rec.Code)
	closed := decode[models.Case](t, rec)
	assert.Equal(t, models.CaseClosed, closed.Status)
}
