package engine

import (
	"fmt"

	"github.com/caseops/inquest/pkg/investigation"
	"github.com/caseops/inquest/pkg/models"
	"github.com/google/uuid"
)

// inferEvidenceCategory derives the evidence category for an uploaded
// file from where the investigation currently stands: before the
// symptom is verified everything speaks to the symptom; until a
// solution is proposed uploads are treated as causal; afterwards they
// document the resolution.
func inferEvidenceCategory(p *investigation.Progress) investigation.EvidenceCategory {
	switch {
	case !p.SymptomVerified:
		return investigation.EvidenceSymptom
	case !p.SolutionProposed:
		return investigation.EvidenceCausal
	default:
		return investigation.EvidenceResolution
	}
}

// captureAttachments registers uploaded files as evidence on the state
// and returns the new evidence ids.
func captureAttachments(s *investigation.State, attachments []models.Attachment) []string {
	ids := make([]string, 0, len(attachments))
	for _, a := range attachments {
		ev := investigation.Evidence{
			ID:              uuid.New().String(),
			Description:     fmt.Sprintf("uploaded file %s", a.Filename),
			Category:        inferEvidenceCategory(&s.Progress),
			Form:            a.ContentType,
			SourceType:      "file_upload",
			ContentSummary:  a.Summary,
			CollectedAtTurn: s.CurrentTurn,
		}
		s.Evidence = append(s.Evidence, ev)
		ids = append(ids, ev.ID)
	}
	return ids
}
