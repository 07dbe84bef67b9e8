package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CaseMessage holds the schema definition for the CaseMessage entity:
// one transcript entry. The transcript survives independently of the
// investigation state document.
type CaseMessage struct {
	ent.Schema
}

// Fields of the CaseMessage.
func (CaseMessage) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("message_id").
			Unique().
			Immutable(),
		field.String("case_id").
			Immutable(),
		field.Enum("role").
			Values("user", "assistant"),
		field.Text("content"),
		field.Int("turn_number").
			Comment("Turn the message belongs to; 0 for consulting chatter"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the CaseMessage.
func (CaseMessage) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("case", CaseRecord.Type).
			Ref("messages").
			Field("case_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the CaseMessage.
func (CaseMessage) Indexes() []ent.Index {
	return []ent.Index{
		// Transcript order
		index.Fields("case_id", "created_at"),
		index.Fields("case_id", "turn_number"),
	}
}
