// Code generated by ent, DO NOT EDIT.

package evidencefile

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/caseops/inquest/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldContainsFold(FieldID, id))
}

// CaseID applies equality check predicate on the "case_id" field. It's identical to CaseIDEQ.
func CaseID(v string) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldEQ(FieldCaseID, v))
}

// Filename applies equality check predicate on the "filename" field. It's identical to FilenameEQ.
func Filename(v string) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldEQ(FieldFilename, v))
}

// ContentType applies equality check predicate on the "content_type" field. It's identical to ContentTypeEQ.
func ContentType(v string) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldEQ(FieldContentType, v))
}

// StoragePath applies equality check predicate on the "storage_path" field. It's identical to StoragePathEQ.
func StoragePath(v string) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldEQ(FieldStoragePath, v))
}

// SizeBytes applies equality check predicate on the "size_bytes" field. It's identical to SizeBytesEQ.
func SizeBytes(v int64) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldEQ(FieldSizeBytes, v))
}

// EvidenceID applies equality check predicate on the "evidence_id" field. It's identical to EvidenceIDEQ.
func EvidenceID(v string) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldEQ(FieldEvidenceID, v))
}

// ContentSummary applies equality check predicate on the "content_summary" field. It's identical to ContentSummaryEQ.
func ContentSummary(v string) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldEQ(FieldContentSummary, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldEQ(FieldCreatedAt, v))
}

// CaseIDEQ applies the EQ predicate on the "case_id" field.
func CaseIDEQ(v string) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldEQ(FieldCaseID, v))
}

// CaseIDNEQ applies the NEQ predicate on the "case_id" field.
func CaseIDNEQ(v string) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldNEQ(FieldCaseID, v))
}

// CaseIDIn applies the In predicate on the "case_id" field.
func CaseIDIn(vs ...string) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldIn(FieldCaseID, vs...))
}

// CaseIDNotIn applies the NotIn predicate on the "case_id" field.
func CaseIDNotIn(vs ...string) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldNotIn(FieldCaseID, vs...))
}

// CaseIDGT applies the GT predicate on the "case_id" field.
func CaseIDGT(v string) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldGT(FieldCaseID, v))
}

// CaseIDGTE applies the GTE predicate on the "case_id" field.
func CaseIDGTE(v string) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldGTE(FieldCaseID, v))
}

// CaseIDLT applies the LT predicate on the "case_id" field.
func CaseIDLT(v string) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldLT(FieldCaseID, v))
}

// CaseIDLTE applies the LTE predicate on the "case_id" field.
func CaseIDLTE(v string) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldLTE(FieldCaseID, v))
}

// CaseIDContains applies the Contains predicate on the "case_id" field.
func CaseIDContains(v string) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldContains(FieldCaseID, v))
}

// CaseIDHasPrefix applies the HasPrefix predicate on the "case_id" field.
func CaseIDHasPrefix(v string) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldHasPrefix(FieldCaseID, v))
}

// CaseIDHasSuffix applies the HasSuffix predicate on the "case_id" field.
func CaseIDHasSuffix(v string) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldHasSuffix(FieldCaseID, v))
}

// CaseIDEqualFold applies the EqualFold predicate on the "case_id" field.
func CaseIDEqualFold(v string) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldEqualFold(FieldCaseID, v))
}

// CaseIDContainsFold applies the ContainsFold predicate on the "case_id" field.
func CaseIDContainsFold(v string) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldContainsFold(FieldCaseID, v))
}

// FilenameEQ applies the EQ predicate on the "filename" field.
func FilenameEQ(v string) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldEQ(FieldFilename, v))
}

// FilenameNEQ applies the NEQ predicate on the "filename" field.
func FilenameNEQ(v string) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldNEQ(FieldFilename, v))
}

// FilenameIn applies the In predicate on the "filename" field.
func FilenameIn(vs ...string) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldIn(FieldFilename, vs...))
}

// FilenameNotIn applies the NotIn predicate on the "filename" field.
func FilenameNotIn(vs ...string) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldNotIn(FieldFilename, vs...))
}

// FilenameGT applies the GT predicate on the "filename" field.
func FilenameGT(v string) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldGT(FieldFilename, v))
}

// FilenameGTE applies the GTE predicate on the "filename" field.
func FilenameGTE(v string) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldGTE(FieldFilename, v))
}

// FilenameLT applies the LT predicate on the "filename" field.
func FilenameLT(v string) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldLT(FieldFilename, v))
}

// FilenameLTE applies the LTE predicate on the "filename" field.
func FilenameLTE(v string) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldLTE(FieldFilename, v))
}

// FilenameContains applies the Contains predicate on the "filename" field.
func FilenameContains(v string) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldContains(FieldFilename, v))
}

// FilenameHasPrefix applies the HasPrefix predicate on the "filename" field.
func FilenameHasPrefix(v string) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldHasPrefix(FieldFilename, v))
}

// FilenameHasSuffix applies the HasSuffix predicate on the "filename" field.
func FilenameHasSuffix(v string) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldHasSuffix(FieldFilename, v))
}

// FilenameEqualFold applies the EqualFold predicate on the "filename" field.
func FilenameEqualFold(v string) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldEqualFold(FieldFilename, v))
}

// FilenameContainsFold applies the ContainsFold predicate on the "filename" field.
func FilenameContainsFold(v string) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldContainsFold(FieldFilename, v))
}

// ContentTypeEQ applies the EQ predicate on the "content_type" field.
func ContentTypeEQ(v string) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldEQ(FieldContentType, v))
}

// ContentTypeNEQ applies the NEQ predicate on the "content_type" field.
func ContentTypeNEQ(v string) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldNEQ(FieldContentType, v))
}

// ContentTypeIn applies the In predicate on the "content_type" field.
func ContentTypeIn(vs ...string) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldIn(FieldContentType, vs...))
}

// ContentTypeNotIn applies the NotIn predicate on the "content_type" field.
func ContentTypeNotIn(vs ...string) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldNotIn(FieldContentType, vs...))
}

// ContentTypeGT applies the GT predicate on the "content_type" field.
func ContentTypeGT(v string) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldGT(FieldContentType, v))
}

// ContentTypeGTE applies the GTE predicate on the "content_type" field.
func ContentTypeGTE(v string) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldGTE(FieldContentType, v))
}

// ContentTypeLT applies the LT predicate on the "content_type" field.
func ContentTypeLT(v string) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldLT(FieldContentType, v))
}

// ContentTypeLTE applies the LTE predicate on the "content_type" field.
func ContentTypeLTE(v string) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldLTE(FieldContentType, v))
}

// ContentTypeContains applies the Contains predicate on the "content_type" field.
func ContentTypeContains(v string) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldContains(FieldContentType, v))
}

// ContentTypeHasPrefix applies the HasPrefix predicate on the "content_type" field.
func ContentTypeHasPrefix(v string) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldHasPrefix(FieldContentType, v))
}

// ContentTypeHasSuffix applies the HasSuffix predicate on the "content_type" field.
func ContentTypeHasSuffix(v string) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldHasSuffix(FieldContentType, v))
}

// ContentTypeEqualFold applies the EqualFold predicate on the "content_type" field.
func ContentTypeEqualFold(v string) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldEqualFold(FieldContentType, v))
}

// ContentTypeContainsFold applies the ContainsFold predicate on the "content_type" field.
func ContentTypeContainsFold(v string) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldContainsFold(FieldContentType, v))
}

// StoragePathEQ applies the EQ predicate on the "storage_path" field.
func StoragePathEQ(v string) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldEQ(FieldStoragePath, v))
}

// StoragePathNEQ applies the NEQ predicate on the "storage_path" field.
func StoragePathNEQ(v string) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldNEQ(FieldStoragePath, v))
}

// StoragePathIn applies the In predicate on the "storage_path" field.
func StoragePathIn(vs ...string) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldIn(FieldStoragePath, vs...))
}

// StoragePathNotIn applies the NotIn predicate on the "storage_path" field.
func StoragePathNotIn(vs ...string) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldNotIn(FieldStoragePath, vs...))
}

// StoragePathGT applies the GT predicate on the "storage_path" field.
func StoragePathGT(v string) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldGT(FieldStoragePath, v))
}

// StoragePathGTE applies the GTE predicate on the "storage_path" field.
func StoragePathGTE(v string) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldGTE(FieldStoragePath, v))
}

// StoragePathLT applies the LT predicate on the "storage_path" field.
func StoragePathLT(v string) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldLT(FieldStoragePath, v))
}

// StoragePathLTE applies the LTE predicate on the "storage_path" field.
func StoragePathLTE(v string) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldLTE(FieldStoragePath, v))
}

// StoragePathContains applies the Contains predicate on the "storage_path" field.
func StoragePathContains(v string) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldContains(FieldStoragePath, v))
}

// StoragePathHasPrefix applies the HasPrefix predicate on the "storage_path" field.
func StoragePathHasPrefix(v string) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldHasPrefix(FieldStoragePath, v))
}

// StoragePathHasSuffix applies the HasSuffix predicate on the "storage_path" field.
func StoragePathHasSuffix(v string) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldHasSuffix(FieldStoragePath, v))
}

// StoragePathEqualFold applies the EqualFold predicate on the "storage_path" field.
func StoragePathEqualFold(v string) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldEqualFold(FieldStoragePath, v))
}

// StoragePathContainsFold applies the ContainsFold predicate on the "storage_path" field.
func StoragePathContainsFold(v string) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldContainsFold(FieldStoragePath, v))
}

// SizeBytesEQ applies the EQ predicate on the "size_bytes" field.
func SizeBytesEQ(v int64) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldEQ(FieldSizeBytes, v))
}

// SizeBytesNEQ applies the NEQ predicate on the "size_bytes" field.
func SizeBytesNEQ(v int64) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldNEQ(FieldSizeBytes, v))
}

// SizeBytesIn applies the In predicate on the "size_bytes" field.
func SizeBytesIn(vs ...int64) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldIn(FieldSizeBytes, vs...))
}

// SizeBytesNotIn applies the NotIn predicate on the "size_bytes" field.
func SizeBytesNotIn(vs ...int64) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldNotIn(FieldSizeBytes, vs...))
}

// SizeBytesGT applies the GT predicate on the "size_bytes" field.
func SizeBytesGT(v int64) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldGT(FieldSizeBytes, v))
}

// SizeBytesGTE applies the GTE predicate on the "size_bytes" field.
func SizeBytesGTE(v int64) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldGTE(FieldSizeBytes, v))
}

// SizeBytesLT applies the LT predicate on the "size_bytes" field.
func SizeBytesLT(v int64) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldLT(FieldSizeBytes, v))
}

// SizeBytesLTE applies the LTE predicate on the "size_bytes" field.
func SizeBytesLTE(v int64) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldLTE(FieldSizeBytes, v))
}

// EvidenceIDEQ applies the EQ predicate on the "evidence_id" field.
func EvidenceIDEQ(v string) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldEQ(FieldEvidenceID, v))
}

// EvidenceIDNEQ applies the NEQ predicate on the "evidence_id" field.
func EvidenceIDNEQ(v string) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldNEQ(FieldEvidenceID, v))
}

// EvidenceIDIn applies the In predicate on the "evidence_id" field.
func EvidenceIDIn(vs ...string) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldIn(FieldEvidenceID, vs...))
}

// EvidenceIDNotIn applies the NotIn predicate on the "evidence_id" field.
func EvidenceIDNotIn(vs ...string) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldNotIn(FieldEvidenceID, vs...))
}

// EvidenceIDGT applies the GT predicate on the "evidence_id" field.
func EvidenceIDGT(v string) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldGT(FieldEvidenceID, v))
}

// EvidenceIDGTE applies the GTE predicate on the "evidence_id" field.
func EvidenceIDGTE(v string) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldGTE(FieldEvidenceID, v))
}

// EvidenceIDLT applies the LT predicate on the "evidence_id" field.
func EvidenceIDLT(v string) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldLT(FieldEvidenceID, v))
}

// EvidenceIDLTE applies the LTE predicate on the "evidence_id" field.
func EvidenceIDLTE(v string) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldLTE(FieldEvidenceID, v))
}

// EvidenceIDContains applies the Contains predicate on the "evidence_id" field.
func EvidenceIDContains(v string) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldContains(FieldEvidenceID, v))
}

// EvidenceIDHasPrefix applies the HasPrefix predicate on the "evidence_id" field.
func EvidenceIDHasPrefix(v string) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldHasPrefix(FieldEvidenceID, v))
}

// EvidenceIDHasSuffix applies the HasSuffix predicate on the "evidence_id" field.
func EvidenceIDHasSuffix(v string) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldHasSuffix(FieldEvidenceID, v))
}

// EvidenceIDIsNil applies the IsNil predicate on the "evidence_id" field.
func EvidenceIDIsNil() predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldIsNull(FieldEvidenceID))
}

// EvidenceIDNotNil applies the NotNil predicate on the "evidence_id" field.
func EvidenceIDNotNil() predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldNotNull(FieldEvidenceID))
}

// EvidenceIDEqualFold applies the EqualFold predicate on the "evidence_id" field.
func EvidenceIDEqualFold(v string) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldEqualFold(FieldEvidenceID, v))
}

// EvidenceIDContainsFold applies the ContainsFold predicate on the "evidence_id" field.
func EvidenceIDContainsFold(v string) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldContainsFold(FieldEvidenceID, v))
}

// ContentSummaryEQ applies the EQ predicate on the "content_summary" field.
func ContentSummaryEQ(v string) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldEQ(FieldContentSummary, v))
}

// ContentSummaryNEQ applies the NEQ predicate on the "content_summary" field.
func ContentSummaryNEQ(v string) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldNEQ(FieldContentSummary, v))
}

// ContentSummaryIn applies the In predicate on the "content_summary" field.
func ContentSummaryIn(vs ...string) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldIn(FieldContentSummary, vs...))
}

// ContentSummaryNotIn applies the NotIn predicate on the "content_summary" field.
func ContentSummaryNotIn(vs ...string) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldNotIn(FieldContentSummary, vs...))
}

// ContentSummaryGT applies the GT predicate on the "content_summary" field.
func ContentSummaryGT(v string) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldGT(FieldContentSummary, v))
}

// ContentSummaryGTE applies the GTE predicate on the "content_summary" field.
func ContentSummaryGTE(v string) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldGTE(FieldContentSummary, v))
}

// ContentSummaryLT applies the LT predicate on the "content_summary" field.
func ContentSummaryLT(v string) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldLT(FieldContentSummary, v))
}

// ContentSummaryLTE applies the LTE predicate on the "content_summary" field.
func ContentSummaryLTE(v string) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldLTE(FieldContentSummary, v))
}

// ContentSummaryContains applies the Contains predicate on the "content_summary" field.
func ContentSummaryContains(v string) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldContains(FieldContentSummary, v))
}

// ContentSummaryHasPrefix applies the HasPrefix predicate on the "content_summary" field.
func ContentSummaryHasPrefix(v string) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldHasPrefix(FieldContentSummary, v))
}

// ContentSummaryHasSuffix applies the HasSuffix predicate on the "content_summary" field.
func ContentSummaryHasSuffix(v string) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldHasSuffix(FieldContentSummary, v))
}

// ContentSummaryIsNil applies the IsNil predicate on the "content_summary" field.
func ContentSummaryIsNil() predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldIsNull(FieldContentSummary))
}

// ContentSummaryNotNil applies the NotNil predicate on the "content_summary" field.
func ContentSummaryNotNil() predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldNotNull(FieldContentSummary))
}

// ContentSummaryEqualFold applies the EqualFold predicate on the "content_summary" field.
func ContentSummaryEqualFold(v string) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldEqualFold(FieldContentSummary, v))
}

// ContentSummaryContainsFold applies the ContainsFold predicate on the "content_summary" field.
func ContentSummaryContainsFold(v string) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldContainsFold(FieldContentSummary, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.FieldLTE(FieldCreatedAt, v))
}

// HasCase applies the HasEdge predicate on the "case" edge.
func HasCase() predicate.EvidenceFile {
	return predicate.EvidenceFile(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CaseTable, CaseColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCaseWith applies the HasEdge predicate on the "case" edge with a given conditions (other predicates).
func HasCaseWith(preds ...predicate.CaseRecord) predicate.EvidenceFile {
	return predicate.EvidenceFile(func(s *sql.Selector) {
		step := newCaseStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.EvidenceFile) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.EvidenceFile) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.EvidenceFile) predicate.EvidenceFile {
	return predicate.EvidenceFile(sql.NotPredicates(p))
}
