// Code generated by ent, DO NOT EDIT.

package casereport

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/caseops/inquest/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldContainsFold(FieldID, id))
}

// CaseID applies equality check predicate on the "case_id" field. It's identical to CaseIDEQ.
func CaseID(v string) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldEQ(FieldCaseID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldEQ(FieldTitle, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldEQ(FieldContent, v))
}

// Format applies equality check predicate on the "format" field. It's identical to FormatEQ.
func Format(v string) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldEQ(FieldFormat, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldEQ(FieldVersion, v))
}

// IsCurrent applies equality check predicate on the "is_current" field. It's identical to IsCurrentEQ.
func IsCurrent(v bool) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldEQ(FieldIsCurrent, v))
}

// LinkedToClosure applies equality check predicate on the "linked_to_closure" field. It's identical to LinkedToClosureEQ.
func LinkedToClosure(v bool) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldEQ(FieldLinkedToClosure, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldEQ(FieldErrorMessage, v))
}

// PodID applies equality check predicate on the "pod_id" field. It's identical to PodIDEQ.
func PodID(v string) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldEQ(FieldPodID, v))
}

// GenerationTimeMs applies equality check predicate on the "generation_time_ms" field. It's identical to GenerationTimeMsEQ.
func GenerationTimeMs(v int64) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldEQ(FieldGenerationTimeMs, v))
}

// GeneratedAt applies equality check predicate on the "generated_at" field. It's identical to GeneratedAtEQ.
func GeneratedAt(v time.Time) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldEQ(FieldGeneratedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldEQ(FieldUpdatedAt, v))
}

// CaseIDEQ applies the EQ predicate on the "case_id" field.
func CaseIDEQ(v string) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldEQ(FieldCaseID, v))
}

// CaseIDNEQ applies the NEQ predicate on the "case_id" field.
func CaseIDNEQ(v string) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldNEQ(FieldCaseID, v))
}

// CaseIDIn applies the In predicate on the "case_id" field.
func CaseIDIn(vs ...string) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldIn(FieldCaseID, vs...))
}

// CaseIDNotIn applies the NotIn predicate on the "case_id" field.
func CaseIDNotIn(vs ...string) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldNotIn(FieldCaseID, vs...))
}

// CaseIDGT applies the GT predicate on the "case_id" field.
func CaseIDGT(v string) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldGT(FieldCaseID, v))
}

// CaseIDGTE applies the GTE predicate on the "case_id" field.
func CaseIDGTE(v string) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldGTE(FieldCaseID, v))
}

// CaseIDLT applies the LT predicate on the "case_id" field.
func CaseIDLT(v string) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldLT(FieldCaseID, v))
}

// CaseIDLTE applies the LTE predicate on the "case_id" field.
func CaseIDLTE(v string) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldLTE(FieldCaseID, v))
}

// CaseIDContains applies the Contains predicate on the "case_id" field.
func CaseIDContains(v string) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldContains(FieldCaseID, v))
}

// CaseIDHasPrefix applies the HasPrefix predicate on the "case_id" field.
func CaseIDHasPrefix(v string) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldHasPrefix(FieldCaseID, v))
}

// CaseIDHasSuffix applies the HasSuffix predicate on the "case_id" field.
func CaseIDHasSuffix(v string) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldHasSuffix(FieldCaseID, v))
}

// CaseIDEqualFold applies the EqualFold predicate on the "case_id" field.
func CaseIDEqualFold(v string) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldEqualFold(FieldCaseID, v))
}

// CaseIDContainsFold applies the ContainsFold predicate on the "case_id" field.
func CaseIDContainsFold(v string) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldContainsFold(FieldCaseID, v))
}

// TypeEQ applies the EQ predicate on the "type" field.
func TypeEQ(v Type) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldEQ(FieldType, v))
}

// TypeNEQ applies the NEQ predicate on the "type" field.
func TypeNEQ(v Type) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldNEQ(FieldType, v))
}

// TypeIn applies the In predicate on the "type" field.
func TypeIn(vs ...Type) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldIn(FieldType, vs...))
}

// TypeNotIn applies the NotIn predicate on the "type" field.
func TypeNotIn(vs ...Type) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldNotIn(FieldType, vs...))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleIsNil applies the IsNil predicate on the "title" field.
func TitleIsNil() predicate.CaseReport {
	return predicate.CaseReport(sql.FieldIsNull(FieldTitle))
}

// TitleNotNil applies the NotNil predicate on the "title" field.
func TitleNotNil() predicate.CaseReport {
	return predicate.CaseReport(sql.FieldNotNull(FieldTitle))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldContainsFold(FieldTitle, v))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldHasSuffix(FieldContent, v))
}

// ContentIsNil applies the IsNil predicate on the "content" field.
func ContentIsNil() predicate.CaseReport {
	return predicate.CaseReport(sql.FieldIsNull(FieldContent))
}

// ContentNotNil applies the NotNil predicate on the "content" field.
func ContentNotNil() predicate.CaseReport {
	return predicate.CaseReport(sql.FieldNotNull(FieldContent))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldContainsFold(FieldContent, v))
}

// FormatEQ applies the EQ predicate on the "format" field.
func FormatEQ(v string) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldEQ(FieldFormat, v))
}

// FormatNEQ applies the NEQ predicate on the "format" field.
func FormatNEQ(v string) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldNEQ(FieldFormat, v))
}

// FormatIn applies the In predicate on the "format" field.
func FormatIn(vs ...string) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldIn(FieldFormat, vs...))
}

// FormatNotIn applies the NotIn predicate on the "format" field.
func FormatNotIn(vs ...string) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldNotIn(FieldFormat, vs...))
}

// FormatGT applies the GT predicate on the "format" field.
func FormatGT(v string) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldGT(FieldFormat, v))
}

// FormatGTE applies the GTE predicate on the "format" field.
func FormatGTE(v string) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldGTE(FieldFormat, v))
}

// FormatLT applies the LT predicate on the "format" field.
func FormatLT(v string) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldLT(FieldFormat, v))
}

// FormatLTE applies the LTE predicate on the "format" field.
func FormatLTE(v string) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldLTE(FieldFormat, v))
}

// FormatContains applies the Contains predicate on the "format" field.
func FormatContains(v string) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldContains(FieldFormat, v))
}

// FormatHasPrefix applies the HasPrefix predicate on the "format" field.
func FormatHasPrefix(v string) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldHasPrefix(FieldFormat, v))
}

// FormatHasSuffix applies the HasSuffix predicate on the "format" field.
func FormatHasSuffix(v string) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldHasSuffix(FieldFormat, v))
}

// FormatEqualFold applies the EqualFold predicate on the "format" field.
func FormatEqualFold(v string) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldEqualFold(FieldFormat, v))
}

// FormatContainsFold applies the ContainsFold predicate on the "format" field.
func FormatContainsFold(v string) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldContainsFold(FieldFormat, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldNotIn(FieldStatus, vs...))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldLTE(FieldVersion, v))
}

// IsCurrentEQ applies the EQ predicate on the "is_current" field.
func IsCurrentEQ(v bool) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldEQ(FieldIsCurrent, v))
}

// IsCurrentNEQ applies the NEQ predicate on the "is_current" field.
func IsCurrentNEQ(v bool) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldNEQ(FieldIsCurrent, v))
}

// LinkedToClosureEQ applies the EQ predicate on the "linked_to_closure" field.
func LinkedToClosureEQ(v bool) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldEQ(FieldLinkedToClosure, v))
}

// LinkedToClosureNEQ applies the NEQ predicate on the "linked_to_closure" field.
func LinkedToClosureNEQ(v bool) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldNEQ(FieldLinkedToClosure, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.CaseReport {
	return predicate.CaseReport(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.CaseReport {
	return predicate.CaseReport(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldContainsFold(FieldErrorMessage, v))
}

// PodIDEQ applies the EQ predicate on the "pod_id" field.
func PodIDEQ(v string) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldEQ(FieldPodID, v))
}

// PodIDNEQ applies the NEQ predicate on the "pod_id" field.
func PodIDNEQ(v string) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldNEQ(FieldPodID, v))
}

// PodIDIn applies the In predicate on the "pod_id" field.
func PodIDIn(vs ...string) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldIn(FieldPodID, vs...))
}

// PodIDNotIn applies the NotIn predicate on the "pod_id" field.
func PodIDNotIn(vs ...string) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldNotIn(FieldPodID, vs...))
}

// PodIDGT applies the GT predicate on the "pod_id" field.
func PodIDGT(v string) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldGT(FieldPodID, v))
}

// PodIDGTE applies the GTE predicate on the "pod_id" field.
func PodIDGTE(v string) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldGTE(FieldPodID, v))
}

// PodIDLT applies the LT predicate on the "pod_id" field.
func PodIDLT(v string) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldLT(FieldPodID, v))
}

// PodIDLTE applies the LTE predicate on the "pod_id" field.
func PodIDLTE(v string) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldLTE(FieldPodID, v))
}

// PodIDContains applies the Contains predicate on the "pod_id" field.
func PodIDContains(v string) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldContains(FieldPodID, v))
}

// PodIDHasPrefix applies the HasPrefix predicate on the "pod_id" field.
func PodIDHasPrefix(v string) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldHasPrefix(FieldPodID, v))
}

// PodIDHasSuffix applies the HasSuffix predicate on the "pod_id" field.
func PodIDHasSuffix(v string) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldHasSuffix(FieldPodID, v))
}

// PodIDIsNil applies the IsNil predicate on the "pod_id" field.
func PodIDIsNil() predicate.CaseReport {
	return predicate.CaseReport(sql.FieldIsNull(FieldPodID))
}

// PodIDNotNil applies the NotNil predicate on the "pod_id" field.
func PodIDNotNil() predicate.CaseReport {
	return predicate.CaseReport(sql.FieldNotNull(FieldPodID))
}

// PodIDEqualFold applies the EqualFold predicate on the "pod_id" field.
func PodIDEqualFold(v string) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldEqualFold(FieldPodID, v))
}

// PodIDContainsFold applies the ContainsFold predicate on the "pod_id" field.
func PodIDContainsFold(v string) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldContainsFold(FieldPodID, v))
}

// GenerationTimeMsEQ applies the EQ predicate on the "generation_time_ms" field.
func GenerationTimeMsEQ(v int64) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldEQ(FieldGenerationTimeMs, v))
}

// GenerationTimeMsNEQ applies the NEQ predicate on the "generation_time_ms" field.
func GenerationTimeMsNEQ(v int64) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldNEQ(FieldGenerationTimeMs, v))
}

// GenerationTimeMsIn applies the In predicate on the "generation_time_ms" field.
func GenerationTimeMsIn(vs ...int64) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldIn(FieldGenerationTimeMs, vs...))
}

// GenerationTimeMsNotIn applies the NotIn predicate on the "generation_time_ms" field.
func GenerationTimeMsNotIn(vs ...int64) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldNotIn(FieldGenerationTimeMs, vs...))
}

// GenerationTimeMsGT applies the GT predicate on the "generation_time_ms" field.
func GenerationTimeMsGT(v int64) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldGT(FieldGenerationTimeMs, v))
}

// GenerationTimeMsGTE applies the GTE predicate on the "generation_time_ms" field.
func GenerationTimeMsGTE(v int64) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldGTE(FieldGenerationTimeMs, v))
}

// GenerationTimeMsLT applies the LT predicate on the "generation_time_ms" field.
func GenerationTimeMsLT(v int64) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldLT(FieldGenerationTimeMs, v))
}

// GenerationTimeMsLTE applies the LTE predicate on the "generation_time_ms" field.
func GenerationTimeMsLTE(v int64) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldLTE(FieldGenerationTimeMs, v))
}

// GenerationTimeMsIsNil applies the IsNil predicate on the "generation_time_ms" field.
func GenerationTimeMsIsNil() predicate.CaseReport {
	return predicate.CaseReport(sql.FieldIsNull(FieldGenerationTimeMs))
}

// GenerationTimeMsNotNil applies the NotNil predicate on the "generation_time_ms" field.
func GenerationTimeMsNotNil() predicate.CaseReport {
	return predicate.CaseReport(sql.FieldNotNull(FieldGenerationTimeMs))
}

// GeneratedAtEQ applies the EQ predicate on the "generated_at" field.
func GeneratedAtEQ(v time.Time) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldEQ(FieldGeneratedAt, v))
}

// GeneratedAtNEQ applies the NEQ predicate on the "generated_at" field.
func GeneratedAtNEQ(v time.Time) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldNEQ(FieldGeneratedAt, v))
}

// GeneratedAtIn applies the In predicate on the "generated_at" field.
func GeneratedAtIn(vs ...time.Time) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldIn(FieldGeneratedAt, vs...))
}

// GeneratedAtNotIn applies the NotIn predicate on the "generated_at" field.
func GeneratedAtNotIn(vs ...time.Time) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldNotIn(FieldGeneratedAt, vs...))
}

// GeneratedAtGT applies the GT predicate on the "generated_at" field.
func GeneratedAtGT(v time.Time) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldGT(FieldGeneratedAt, v))
}

// GeneratedAtGTE applies the GTE predicate on the "generated_at" field.
func GeneratedAtGTE(v time.Time) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldGTE(FieldGeneratedAt, v))
}

// GeneratedAtLT applies the LT predicate on the "generated_at" field.
func GeneratedAtLT(v time.Time) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldLT(FieldGeneratedAt, v))
}

// GeneratedAtLTE applies the LTE predicate on the "generated_at" field.
func GeneratedAtLTE(v time.Time) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldLTE(FieldGeneratedAt, v))
}

// GeneratedAtIsNil applies the IsNil predicate on the "generated_at" field.
func GeneratedAtIsNil() predicate.CaseReport {
	return predicate.CaseReport(sql.FieldIsNull(FieldGeneratedAt))
}

// GeneratedAtNotNil applies the NotNil predicate on the "generated_at" field.
func GeneratedAtNotNil() predicate.CaseReport {
	return predicate.CaseReport(sql.FieldNotNull(FieldGeneratedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.CaseReport {
	return predicate.CaseReport(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasCase applies the HasEdge predicate on the "case" edge.
func HasCase() predicate.CaseReport {
	return predicate.CaseReport(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CaseTable, CaseColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCaseWith applies the HasEdge predicate on the "case" edge with a given conditions (other predicates).
func HasCaseWith(preds ...predicate.CaseRecord) predicate.CaseReport {
	return predicate.CaseReport(func(s *sql.Selector) {
		step := newCaseStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CaseReport) predicate.CaseReport {
	return predicate.CaseReport(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CaseReport) predicate.CaseReport {
	return predicate.CaseReport(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CaseReport) predicate.CaseReport {
	return predicate.CaseReport(sql.NotPredicates(p))
}
