// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// CaseMessage is the predicate function for casemessage builders.
type CaseMessage func(*sql.Selector)

// CaseRecord is the predicate function for caserecord builders.
type CaseRecord func(*sql.Selector)

// CaseReport is the predicate function for casereport builders.
type CaseReport func(*sql.Selector)

// EvidenceFile is the predicate function for evidencefile builders.
type EvidenceFile func(*sql.Selector)
