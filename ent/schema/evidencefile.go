package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// EvidenceFile holds the schema definition for the EvidenceFile entity:
// an uploaded evidence blob tracked alongside its storage key. A failed
// upload rolls the row back and best-effort deletes the blob.
type EvidenceFile struct {
	ent.Schema
}

// Fields of the EvidenceFile.
func (EvidenceFile) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("file_id").
			Unique().
			Immutable(),
		field.String("case_id").
			Immutable(),
		field.String("filename"),
		field.String("content_type"),
		field.String("storage_path").
			Comment("Key into the file store"),
		field.Int64("size_bytes"),
		field.String("evidence_id").
			Optional().
			Nillable().
			Comment("State-document evidence entry created for this file"),
		field.Text("content_summary").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the EvidenceFile.
func (EvidenceFile) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("case", CaseRecord.Type).
			Ref("evidence_files").
			Field("case_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the EvidenceFile.
func (EvidenceFile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("case_id", "created_at"),
	}
}
