package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CaseRecord holds the schema definition for the CaseRecord entity: one incident
// investigation owned by a user. The engine's working document is
// embedded in the metadata JSON column.
type CaseRecord struct {
	ent.Schema
}

// Fields of the CaseRecord.
func (CaseRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("case_id").
			Unique().
			Immutable(),
		field.String("owner_id").
			Immutable().
			Comment("From oauth2-proxy"),
		field.String("title"),
		field.Text("description").
			Optional().
			Comment("User-supplied fault description (full-text searchable)"),
		field.Enum("status").
			Values("consulting", "investigating", "resolved", "closed").
			Default("consulting"),
		field.Enum("priority").
			Values("low", "medium", "high", "critical").
			Default("medium"),
		field.JSON("tags", []string{}).
			Optional(),
		field.JSON("metadata", map[string]interface{}{}).
			Optional().
			Comment("Embeds metadata.investigation (engine state) and metadata.status_history (audit trail)"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.Time("resolved_at").
			Optional().
			Nillable(),
		field.String("resolved_by").
			Optional().
			Nillable(),
		field.Time("closed_at").
			Optional().
			Nillable(),
		field.String("closed_by").
			Optional().
			Nillable(),
		field.Time("deleted_at").
			Optional().
			Nillable().
			Comment("Soft delete for retention policy"),
	}
}

// Edges of the CaseRecord.
func (CaseRecord) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("messages", CaseMessage.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("reports", CaseReport.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("evidence_files", EvidenceFile.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the CaseRecord.
func (CaseRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id"),
		index.Fields("status"),
		index.Fields("priority"),

		// List endpoints filter by owner+status and sort by recency.
		index.Fields("owner_id", "status"),
		index.Fields("status", "created_at"),

		// Partial index for soft deletes
		index.Fields("deleted_at").
			Annotations(entsql.IndexWhere("deleted_at IS NOT NULL")),
	}
}
