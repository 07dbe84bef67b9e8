package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CaseReport holds the schema definition for the CaseReport entity: a
// versioned rendered Markdown artefact. At most one report per
// (case_id, type) is current.
type CaseReport struct {
	ent.Schema
}

// Fields of the CaseReport.
func (CaseReport) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("report_id").
			Unique().
			Immutable(),
		field.String("case_id").
			Immutable(),
		field.Enum("type").
			Values("incident_report", "runbook", "post_mortem"),
		field.String("title").
			Optional(),
		field.Text("content").
			Optional().
			Comment("UTF-8 Markdown"),
		field.String("format").
			Default("markdown"),
		field.Enum("status").
			Values("pending", "generating", "completed", "failed").
			Default("pending"),
		field.Int("version"),
		field.Bool("is_current").
			Default(false),
		field.Bool("linked_to_closure").
			Default(false).
			Comment("Closure-linked reports are never deleted"),
		field.String("error_message").
			Optional().
			Nillable(),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("Pod that claimed the generation job"),
		field.Int64("generation_time_ms").
			Optional(),
		field.Time("generated_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Worker heartbeat while generating"),
	}
}

// Edges of the CaseReport.
func (CaseReport) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("case", CaseRecord.Type).
			Ref("reports").
			Field("case_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the CaseReport.
func (CaseReport) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("case_id", "type", "is_current"),
		index.Fields("status", "created_at"),
	}
}
