// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/caseops/inquest/ent/casemessage"
	"github.com/caseops/inquest/ent/caserecord"
	"github.com/caseops/inquest/ent/casereport"
	"github.com/caseops/inquest/ent/evidencefile"
	"github.com/caseops/inquest/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	casemessageFields := schema.CaseMessage{}.Fields()
	_ = casemessageFields
	// casemessageDescCreatedAt is the schema descriptor for created_at field.
	casemessageDescCreatedAt := casemessageFields[5].Descriptor()
	// casemessage.DefaultCreatedAt holds the default value on creation for the created_at field.
	casemessage.DefaultCreatedAt = casemessageDescCreatedAt.Default.(func() time.Time)
	caserecordFields := schema.CaseRecord{}.Fields()
	_ = caserecordFields
	// caserecordDescCreatedAt is the schema descriptor for created_at field.
	caserecordDescCreatedAt := caserecordFields[8].Descriptor()
	// caserecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	caserecord.DefaultCreatedAt = caserecordDescCreatedAt.Default.(func() time.Time)
	// caserecordDescUpdatedAt is the schema descriptor for updated_at field.
	caserecordDescUpdatedAt := caserecordFields[9].Descriptor()
	// caserecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	caserecord.DefaultUpdatedAt = caserecordDescUpdatedAt.Default.(func() time.Time)
	// caserecord.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	caserecord.UpdateDefaultUpdatedAt = caserecordDescUpdatedAt.UpdateDefault.(func() time.Time)
	casereportFields := schema.CaseReport{}.Fields()
	_ = casereportFields
	// casereportDescFormat is the schema descriptor for format field.
	casereportDescFormat := casereportFields[5].Descriptor()
	// casereport.DefaultFormat holds the default value on creation for the format field.
	casereport.DefaultFormat = casereportDescFormat.Default.(string)
	// casereportDescIsCurrent is the schema descriptor for is_current field.
	casereportDescIsCurrent := casereportFields[8].Descriptor()
	// casereport.DefaultIsCurrent holds the default value on creation for the is_current field.
	casereport.DefaultIsCurrent = casereportDescIsCurrent.Default.(bool)
	// casereportDescLinkedToClosure is the schema descriptor for linked_to_closure field.
	casereportDescLinkedToClosure := casereportFields[9].Descriptor()
	// casereport.DefaultLinkedToClosure holds the default value on creation for the linked_to_closure field.
	casereport.DefaultLinkedToClosure = casereportDescLinkedToClosure.Default.(bool)
	// casereportDescCreatedAt is the schema descriptor for created_at field.
	casereportDescCreatedAt := casereportFields[14].Descriptor()
	// casereport.DefaultCreatedAt holds the default value on creation for the created_at field.
	casereport.DefaultCreatedAt = casereportDescCreatedAt.Default.(func() time.Time)
	// casereportDescUpdatedAt is the schema descriptor for updated_at field.
	casereportDescUpdatedAt := casereportFields[15].Descriptor()
	// casereport.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	casereport.DefaultUpdatedAt = casereportDescUpdatedAt.Default.(func() time.Time)
	// casereport.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	casereport.UpdateDefaultUpdatedAt = casereportDescUpdatedAt.UpdateDefault.(func() time.Time)
	evidencefileFields := schema.EvidenceFile{}.Fields()
	_ = evidencefileFields
	// evidencefileDescCreatedAt is the schema descriptor for created_at field.
	evidencefileDescCreatedAt := evidencefileFields[8].Descriptor()
	// evidencefile.DefaultCreatedAt holds the default value on creation for the created_at field.
	evidencefile.DefaultCreatedAt = evidencefileDescCreatedAt.Default.(func() time.Time)
}
