// Code generated by ent, DO NOT EDIT.

package announcement

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/dzadsearch/ads-ingest/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Announcement {
	return predicate.Announcement(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Announcement {
	return predicate.Announcement(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Announcement {
	return predicate.Announcement(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Announcement {
	return predicate.Announcement(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Announcement {
	return predicate.Announcement(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Announcement {
	return predicate.Announcement(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Announcement {
	return predicate.Announcement(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Announcement {
	return predicate.Announcement(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Announcement {
	return predicate.Announcement(sql.FieldLTE(FieldID, id))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldEQ(FieldTitle, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldEQ(FieldDescription, v))
}

// Number applies equality check predicate on the "number" field. It's identical to NumberEQ.
func Number(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldEQ(FieldNumber, v))
}

// Owner applies equality check predicate on the "owner" field. It's identical to OwnerEQ.
func Owner(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldEQ(FieldOwner, v))
}

// Terms applies equality check predicate on the "terms" field. It's identical to TermsEQ.
func Terms(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldEQ(FieldTerms, v))
}

// Contact applies equality check predicate on the "contact" field. It's identical to ContactEQ.
func Contact(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldEQ(FieldContact, v))
}

// DueAmount applies equality check predicate on the "due_amount" field. It's identical to DueAmountEQ.
func DueAmount(v int64) predicate.Announcement {
	return predicate.Announcement(sql.FieldEQ(FieldDueAmount, v))
}

// PublishDate applies equality check predicate on the "publish_date" field. It's identical to PublishDateEQ.
func PublishDate(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldEQ(FieldPublishDate, v))
}

// DueDate applies equality check predicate on the "due_date" field. It's identical to DueDateEQ.
func DueDate(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldEQ(FieldDueDate, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v int) predicate.Announcement {
	return predicate.Announcement(sql.FieldEQ(FieldStatus, v))
}

// WilayaID applies equality check predicate on the "wilaya_id" field. It's identical to WilayaIDEQ.
func WilayaID(v int) predicate.Announcement {
	return predicate.Announcement(sql.FieldEQ(FieldWilayaID, v))
}

// BusinessLineID applies equality check predicate on the "business_line_id" field. It's identical to BusinessLineIDEQ.
func BusinessLineID(v int) predicate.Announcement {
	return predicate.Announcement(sql.FieldEQ(FieldBusinessLineID, v))
}

// AnnouncementTypeID applies equality check predicate on the "announcement_type_id" field. It's identical to AnnouncementTypeIDEQ.
func AnnouncementTypeID(v int) predicate.Announcement {
	return predicate.Announcement(sql.FieldEQ(FieldAnnouncementTypeID, v))
}

// WilayaName applies equality check predicate on the "wilaya_name" field. It's identical to WilayaNameEQ.
func WilayaName(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldEQ(FieldWilayaName, v))
}

// BusinessLineName applies equality check predicate on the "business_line_name" field. It's identical to BusinessLineNameEQ.
func BusinessLineName(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldEQ(FieldBusinessLineName, v))
}

// AnnouncementTypeName applies equality check predicate on the "announcement_type_name" field. It's identical to AnnouncementTypeNameEQ.
func AnnouncementTypeName(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldEQ(FieldAnnouncementTypeName, v))
}

// SourceFile applies equality check predicate on the "source_file" field. It's identical to SourceFileEQ.
func SourceFile(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldEQ(FieldSourceFile, v))
}

// SourcePage applies equality check predicate on the "source_page" field. It's identical to SourcePageEQ.
func SourcePage(v int) predicate.Announcement {
	return predicate.Announcement(sql.FieldEQ(FieldSourcePage, v))
}

// IssueNumber applies equality check predicate on the "issue_number" field. It's identical to IssueNumberEQ.
func IssueNumber(v int) predicate.Announcement {
	return predicate.Announcement(sql.FieldEQ(FieldIssueNumber, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Announcement {
	return predicate.Announcement(sql.FieldEQ(FieldCreatedAt, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Announcement {
	return predicate.Announcement(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Announcement {
	return predicate.Announcement(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldContainsFold(FieldTitle, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Announcement {
	return predicate.Announcement(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Announcement {
	return predicate.Announcement(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.Announcement {
	return predicate.Announcement(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.Announcement {
	return predicate.Announcement(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldContainsFold(FieldDescription, v))
}

// NumberEQ applies the EQ predicate on the "number" field.
func NumberEQ(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldEQ(FieldNumber, v))
}

// NumberNEQ applies the NEQ predicate on the "number" field.
func NumberNEQ(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldNEQ(FieldNumber, v))
}

// NumberIn applies the In predicate on the "number" field.
func NumberIn(vs ...string) predicate.Announcement {
	return predicate.Announcement(sql.FieldIn(FieldNumber, vs...))
}

// NumberNotIn applies the NotIn predicate on the "number" field.
func NumberNotIn(vs ...string) predicate.Announcement {
	return predicate.Announcement(sql.FieldNotIn(FieldNumber, vs...))
}

// NumberGT applies the GT predicate on the "number" field.
func NumberGT(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldGT(FieldNumber, v))
}

// NumberGTE applies the GTE predicate on the "number" field.
func NumberGTE(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldGTE(FieldNumber, v))
}

// NumberLT applies the LT predicate on the "number" field.
func NumberLT(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldLT(FieldNumber, v))
}

// NumberLTE applies the LTE predicate on the "number" field.
func NumberLTE(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldLTE(FieldNumber, v))
}

// NumberContains applies the Contains predicate on the "number" field.
func NumberContains(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldContains(FieldNumber, v))
}

// NumberHasPrefix applies the HasPrefix predicate on the "number" field.
func NumberHasPrefix(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldHasPrefix(FieldNumber, v))
}

// NumberHasSuffix applies the HasSuffix predicate on the "number" field.
func NumberHasSuffix(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldHasSuffix(FieldNumber, v))
}

// NumberIsNil applies the IsNil predicate on the "number" field.
func NumberIsNil() predicate.Announcement {
	return predicate.Announcement(sql.FieldIsNull(FieldNumber))
}

// NumberNotNil applies the NotNil predicate on the "number" field.
func NumberNotNil() predicate.Announcement {
	return predicate.Announcement(sql.FieldNotNull(FieldNumber))
}

// NumberEqualFold applies the EqualFold predicate on the "number" field.
func NumberEqualFold(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldEqualFold(FieldNumber, v))
}

// NumberContainsFold applies the ContainsFold predicate on the "number" field.
func NumberContainsFold(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldContainsFold(FieldNumber, v))
}

// OwnerEQ applies the EQ predicate on the "owner" field.
func OwnerEQ(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldEQ(FieldOwner, v))
}

// OwnerNEQ applies the NEQ predicate on the "owner" field.
func OwnerNEQ(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldNEQ(FieldOwner, v))
}

// OwnerIn applies the In predicate on the "owner" field.
func OwnerIn(vs ...string) predicate.Announcement {
	return predicate.Announcement(sql.FieldIn(FieldOwner, vs...))
}

// OwnerNotIn applies the NotIn predicate on the "owner" field.
func OwnerNotIn(vs ...string) predicate.Announcement {
	return predicate.Announcement(sql.FieldNotIn(FieldOwner, vs...))
}

// OwnerGT applies the GT predicate on the "owner" field.
func OwnerGT(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldGT(FieldOwner, v))
}

// OwnerGTE applies the GTE predicate on the "owner" field.
func OwnerGTE(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldGTE(FieldOwner, v))
}

// OwnerLT applies the LT predicate on the "owner" field.
func OwnerLT(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldLT(FieldOwner, v))
}

// OwnerLTE applies the LTE predicate on the "owner" field.
func OwnerLTE(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldLTE(FieldOwner, v))
}

// OwnerContains applies the Contains predicate on the "owner" field.
func OwnerContains(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldContains(FieldOwner, v))
}

// OwnerHasPrefix applies the HasPrefix predicate on the "owner" field.
func OwnerHasPrefix(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldHasPrefix(FieldOwner, v))
}

// OwnerHasSuffix applies the HasSuffix predicate on the "owner" field.
func OwnerHasSuffix(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldHasSuffix(FieldOwner, v))
}

// OwnerIsNil applies the IsNil predicate on the "owner" field.
func OwnerIsNil() predicate.Announcement {
	return predicate.Announcement(sql.FieldIsNull(FieldOwner))
}

// OwnerNotNil applies the NotNil predicate on the "owner" field.
func OwnerNotNil() predicate.Announcement {
	return predicate.Announcement(sql.FieldNotNull(FieldOwner))
}

// OwnerEqualFold applies the EqualFold predicate on the "owner" field.
func OwnerEqualFold(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldEqualFold(FieldOwner, v))
}

// OwnerContainsFold applies the ContainsFold predicate on the "owner" field.
func OwnerContainsFold(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldContainsFold(FieldOwner, v))
}

// TermsEQ applies the EQ predicate on the "terms" field.
func TermsEQ(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldEQ(FieldTerms, v))
}

// TermsNEQ applies the NEQ predicate on the "terms" field.
func TermsNEQ(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldNEQ(FieldTerms, v))
}

// TermsIn applies the In predicate on the "terms" field.
func TermsIn(vs ...string) predicate.Announcement {
	return predicate.Announcement(sql.FieldIn(FieldTerms, vs...))
}

// TermsNotIn applies the NotIn predicate on the "terms" field.
func TermsNotIn(vs ...string) predicate.Announcement {
	return predicate.Announcement(sql.FieldNotIn(FieldTerms, vs...))
}

// TermsGT applies the GT predicate on the "terms" field.
func TermsGT(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldGT(FieldTerms, v))
}

// TermsGTE applies the GTE predicate on the "terms" field.
func TermsGTE(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldGTE(FieldTerms, v))
}

// TermsLT applies the LT predicate on the "terms" field.
func TermsLT(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldLT(FieldTerms, v))
}

// TermsLTE applies the LTE predicate on the "terms" field.
func TermsLTE(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldLTE(FieldTerms, v))
}

// TermsContains applies the Contains predicate on the "terms" field.
func TermsContains(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldContains(FieldTerms, v))
}

// TermsHasPrefix applies the HasPrefix predicate on the "terms" field.
func TermsHasPrefix(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldHasPrefix(FieldTerms, v))
}

// TermsHasSuffix applies the HasSuffix predicate on the "terms" field.
func TermsHasSuffix(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldHasSuffix(FieldTerms, v))
}

// TermsIsNil applies the IsNil predicate on the "terms" field.
func TermsIsNil() predicate.Announcement {
	return predicate.Announcement(sql.FieldIsNull(FieldTerms))
}

// TermsNotNil applies the NotNil predicate on the "terms" field.
func TermsNotNil() predicate.Announcement {
	return predicate.Announcement(sql.FieldNotNull(FieldTerms))
}

// TermsEqualFold applies the EqualFold predicate on the "terms" field.
func TermsEqualFold(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldEqualFold(FieldTerms, v))
}

// TermsContainsFold applies the ContainsFold predicate on the "terms" field.
func TermsContainsFold(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldContainsFold(FieldTerms, v))
}

// ContactEQ applies the EQ predicate on the "contact" field.
func ContactEQ(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldEQ(FieldContact, v))
}

// ContactNEQ applies the NEQ predicate on the "contact" field.
func ContactNEQ(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldNEQ(FieldContact, v))
}

// ContactIn applies the In predicate on the "contact" field.
func ContactIn(vs ...string) predicate.Announcement {
	return predicate.Announcement(sql.FieldIn(FieldContact, vs...))
}

// ContactNotIn applies the NotIn predicate on the "contact" field.
func ContactNotIn(vs ...string) predicate.Announcement {
	return predicate.Announcement(sql.FieldNotIn(FieldContact, vs...))
}

// ContactGT applies the GT predicate on the "contact" field.
func ContactGT(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldGT(FieldContact, v))
}

// ContactGTE applies the GTE predicate on the "contact" field.
func ContactGTE(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldGTE(FieldContact, v))
}

// ContactLT applies the LT predicate on the "contact" field.
func ContactLT(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldLT(FieldContact, v))
}

// ContactLTE applies the LTE predicate on the "contact" field.
func ContactLTE(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldLTE(FieldContact, v))
}

// ContactContains applies the Contains predicate on the "contact" field.
func ContactContains(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldContains(FieldContact, v))
}

// ContactHasPrefix applies the HasPrefix predicate on the "contact" field.
func ContactHasPrefix(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldHasPrefix(FieldContact, v))
}

// ContactHasSuffix applies the HasSuffix predicate on the "contact" field.
func ContactHasSuffix(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldHasSuffix(FieldContact, v))
}

// ContactIsNil applies the IsNil predicate on the "contact" field.
func ContactIsNil() predicate.Announcement {
	return predicate.Announcement(sql.FieldIsNull(FieldContact))
}

// ContactNotNil applies the NotNil predicate on the "contact" field.
func ContactNotNil() predicate.Announcement {
	return predicate.Announcement(sql.FieldNotNull(FieldContact))
}

// ContactEqualFold applies the EqualFold predicate on the "contact" field.
func ContactEqualFold(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldEqualFold(FieldContact, v))
}

// ContactContainsFold applies the ContainsFold predicate on the "contact" field.
func ContactContainsFold(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldContainsFold(FieldContact, v))
}

// DueAmountEQ applies the EQ predicate on the "due_amount" field.
func DueAmountEQ(v int64) predicate.Announcement {
	return predicate.Announcement(sql.FieldEQ(FieldDueAmount, v))
}

// DueAmountNEQ applies the NEQ predicate on the "due_amount" field.
func DueAmountNEQ(v int64) predicate.Announcement {
	return predicate.Announcement(sql.FieldNEQ(FieldDueAmount, v))
}

// DueAmountIn applies the In predicate on the "due_amount" field.
func DueAmountIn(vs ...int64) predicate.Announcement {
	return predicate.Announcement(sql.FieldIn(FieldDueAmount, vs...))
}

// DueAmountNotIn applies the NotIn predicate on the "due_amount" field.
func DueAmountNotIn(vs ...int64) predicate.Announcement {
	return predicate.Announcement(sql.FieldNotIn(FieldDueAmount, vs...))
}

// DueAmountGT applies the GT predicate on the "due_amount" field.
func DueAmountGT(v int64) predicate.Announcement {
	return predicate.Announcement(sql.FieldGT(FieldDueAmount, v))
}

// DueAmountGTE applies the GTE predicate on the "due_amount" field.
func DueAmountGTE(v int64) predicate.Announcement {
	return predicate.Announcement(sql.FieldGTE(FieldDueAmount, v))
}

// DueAmountLT applies the LT predicate on the "due_amount" field.
func DueAmountLT(v int64) predicate.Announcement {
	return predicate.Announcement(sql.FieldLT(FieldDueAmount, v))
}

// DueAmountLTE applies the LTE predicate on the "due_amount" field.
func DueAmountLTE(v int64) predicate.Announcement {
	return predicate.Announcement(sql.FieldLTE(FieldDueAmount, v))
}

// DueAmountIsNil applies the IsNil predicate on the "due_amount" field.
func DueAmountIsNil() predicate.Announcement {
	return predicate.Announcement(sql.FieldIsNull(FieldDueAmount))
}

// DueAmountNotNil applies the NotNil predicate on the "due_amount" field.
func DueAmountNotNil() predicate.Announcement {
	return predicate.Announcement(sql.FieldNotNull(FieldDueAmount))
}

// PublishDateEQ applies the EQ predicate on the "publish_date" field.
func PublishDateEQ(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldEQ(FieldPublishDate, v))
}

// PublishDateNEQ applies the NEQ predicate on the "publish_date" field.
func PublishDateNEQ(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldNEQ(FieldPublishDate, v))
}

// PublishDateIn applies the In predicate on the "publish_date" field.
func PublishDateIn(vs ...string) predicate.Announcement {
	return predicate.Announcement(sql.FieldIn(FieldPublishDate, vs...))
}

// PublishDateNotIn applies the NotIn predicate on the "publish_date" field.
func PublishDateNotIn(vs ...string) predicate.Announcement {
	return predicate.Announcement(sql.FieldNotIn(FieldPublishDate, vs...))
}

// PublishDateGT applies the GT predicate on the "publish_date" field.
func PublishDateGT(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldGT(FieldPublishDate, v))
}

// PublishDateGTE applies the GTE predicate on the "publish_date" field.
func PublishDateGTE(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldGTE(FieldPublishDate, v))
}

// PublishDateLT applies the LT predicate on the "publish_date" field.
func PublishDateLT(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldLT(FieldPublishDate, v))
}

// PublishDateLTE applies the LTE predicate on the "publish_date" field.
func PublishDateLTE(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldLTE(FieldPublishDate, v))
}

// PublishDateContains applies the Contains predicate on the "publish_date" field.
func PublishDateContains(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldContains(FieldPublishDate, v))
}

// PublishDateHasPrefix applies the HasPrefix predicate on the "publish_date" field.
func PublishDateHasPrefix(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldHasPrefix(FieldPublishDate, v))
}

// PublishDateHasSuffix applies the HasSuffix predicate on the "publish_date" field.
func PublishDateHasSuffix(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldHasSuffix(FieldPublishDate, v))
}

// PublishDateIsNil applies the IsNil predicate on the "publish_date" field.
func PublishDateIsNil() predicate.Announcement {
	return predicate.Announcement(sql.FieldIsNull(FieldPublishDate))
}

// PublishDateNotNil applies the NotNil predicate on the "publish_date" field.
func PublishDateNotNil() predicate.Announcement {
	return predicate.Announcement(sql.FieldNotNull(FieldPublishDate))
}

// PublishDateEqualFold applies the EqualFold predicate on the "publish_date" field.
func PublishDateEqualFold(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldEqualFold(FieldPublishDate, v))
}

// PublishDateContainsFold applies the ContainsFold predicate on the "publish_date" field.
func PublishDateContainsFold(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldContainsFold(FieldPublishDate, v))
}

// DueDateEQ applies the EQ predicate on the "due_date" field.
func DueDateEQ(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldEQ(FieldDueDate, v))
}

// DueDateNEQ applies the NEQ predicate on the "due_date" field.
func DueDateNEQ(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldNEQ(FieldDueDate, v))
}

// DueDateIn applies the In predicate on the "due_date" field.
func DueDateIn(vs ...string) predicate.Announcement {
	return predicate.Announcement(sql.FieldIn(FieldDueDate, vs...))
}

// DueDateNotIn applies the NotIn predicate on the "due_date" field.
func DueDateNotIn(vs ...string) predicate.Announcement {
	return predicate.Announcement(sql.FieldNotIn(FieldDueDate, vs...))
}

// DueDateGT applies the GT predicate on the "due_date" field.
func DueDateGT(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldGT(FieldDueDate, v))
}

// DueDateGTE applies the GTE predicate on the "due_date" field.
func DueDateGTE(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldGTE(FieldDueDate, v))
}

// DueDateLT applies the LT predicate on the "due_date" field.
func DueDateLT(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldLT(FieldDueDate, v))
}

// DueDateLTE applies the LTE predicate on the "due_date" field.
func DueDateLTE(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldLTE(FieldDueDate, v))
}

// DueDateContains applies the Contains predicate on the "due_date" field.
func DueDateContains(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldContains(FieldDueDate, v))
}

// DueDateHasPrefix applies the HasPrefix predicate on the "due_date" field.
func DueDateHasPrefix(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldHasPrefix(FieldDueDate, v))
}

// DueDateHasSuffix applies the HasSuffix predicate on the "due_date" field.
func DueDateHasSuffix(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldHasSuffix(FieldDueDate, v))
}

// DueDateIsNil applies the IsNil predicate on the "due_date" field.
func DueDateIsNil() predicate.Announcement {
	return predicate.Announcement(sql.FieldIsNull(FieldDueDate))
}

// DueDateNotNil applies the NotNil predicate on the "due_date" field.
func DueDateNotNil() predicate.Announcement {
	return predicate.Announcement(sql.FieldNotNull(FieldDueDate))
}

// DueDateEqualFold applies the EqualFold predicate on the "due_date" field.
func DueDateEqualFold(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldEqualFold(FieldDueDate, v))
}

// DueDateContainsFold applies the ContainsFold predicate on the "due_date" field.
func DueDateContainsFold(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldContainsFold(FieldDueDate, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v int) predicate.Announcement {
	return predicate.Announcement(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v int) predicate.Announcement {
	return predicate.Announcement(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...int) predicate.Announcement {
	return predicate.Announcement(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...int) predicate.Announcement {
	return predicate.Announcement(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v int) predicate.Announcement {
	return predicate.Announcement(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v int) predicate.Announcement {
	return predicate.Announcement(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v int) predicate.Announcement {
	return predicate.Announcement(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v int) predicate.Announcement {
	return predicate.Announcement(sql.FieldLTE(FieldStatus, v))
}

// WilayaIDEQ applies the EQ predicate on the "wilaya_id" field.
func WilayaIDEQ(v int) predicate.Announcement {
	return predicate.Announcement(sql.FieldEQ(FieldWilayaID, v))
}

// WilayaIDNEQ applies the NEQ predicate on the "wilaya_id" field.
func WilayaIDNEQ(v int) predicate.Announcement {
	return predicate.Announcement(sql.FieldNEQ(FieldWilayaID, v))
}

// WilayaIDIn applies the In predicate on the "wilaya_id" field.
func WilayaIDIn(vs ...int) predicate.Announcement {
	return predicate.Announcement(sql.FieldIn(FieldWilayaID, vs...))
}

// WilayaIDNotIn applies the NotIn predicate on the "wilaya_id" field.
func WilayaIDNotIn(vs ...int) predicate.Announcement {
	return predicate.Announcement(sql.FieldNotIn(FieldWilayaID, vs...))
}

// WilayaIDIsNil applies the IsNil predicate on the "wilaya_id" field.
func WilayaIDIsNil() predicate.Announcement {
	return predicate.Announcement(sql.FieldIsNull(FieldWilayaID))
}

// WilayaIDNotNil applies the NotNil predicate on the "wilaya_id" field.
func WilayaIDNotNil() predicate.Announcement {
	return predicate.Announcement(sql.FieldNotNull(FieldWilayaID))
}

// BusinessLineIDEQ applies the EQ predicate on the "business_line_id" field.
func BusinessLineIDEQ(v int) predicate.Announcement {
	return predicate.Announcement(sql.FieldEQ(FieldBusinessLineID, v))
}

// BusinessLineIDNEQ applies the NEQ predicate on the "business_line_id" field.
func BusinessLineIDNEQ(v int) predicate.Announcement {
	return predicate.Announcement(sql.FieldNEQ(FieldBusinessLineID, v))
}

// BusinessLineIDIn applies the In predicate on the "business_line_id" field.
func BusinessLineIDIn(vs ...int) predicate.Announcement {
	return predicate.Announcement(sql.FieldIn(FieldBusinessLineID, vs...))
}

// BusinessLineIDNotIn applies the NotIn predicate on the "business_line_id" field.
func BusinessLineIDNotIn(vs ...int) predicate.Announcement {
	return predicate.Announcement(sql.FieldNotIn(FieldBusinessLineID, vs...))
}

// BusinessLineIDIsNil applies the IsNil predicate on the "business_line_id" field.
func BusinessLineIDIsNil() predicate.Announcement {
	return predicate.Announcement(sql.FieldIsNull(FieldBusinessLineID))
}

// BusinessLineIDNotNil applies the NotNil predicate on the "business_line_id" field.
func BusinessLineIDNotNil() predicate.Announcement {
	return predicate.Announcement(sql.FieldNotNull(FieldBusinessLineID))
}

// AnnouncementTypeIDEQ applies the EQ predicate on the "announcement_type_id" field.
func AnnouncementTypeIDEQ(v int) predicate.Announcement {
	return predicate.Announcement(sql.FieldEQ(FieldAnnouncementTypeID, v))
}

// AnnouncementTypeIDNEQ applies the NEQ predicate on the "announcement_type_id" field.
func AnnouncementTypeIDNEQ(v int) predicate.Announcement {
	return predicate.Announcement(sql.FieldNEQ(FieldAnnouncementTypeID, v))
}

// AnnouncementTypeIDIn applies the In predicate on the "announcement_type_id" field.
func AnnouncementTypeIDIn(vs ...int) predicate.Announcement {
	return predicate.Announcement(sql.FieldIn(FieldAnnouncementTypeID, vs...))
}

// AnnouncementTypeIDNotIn applies the NotIn predicate on the "announcement_type_id" field.
func AnnouncementTypeIDNotIn(vs ...int) predicate.Announcement {
	return predicate.Announcement(sql.FieldNotIn(FieldAnnouncementTypeID, vs...))
}

// AnnouncementTypeIDIsNil applies the IsNil predicate on the "announcement_type_id" field.
func AnnouncementTypeIDIsNil() predicate.Announcement {
	return predicate.Announcement(sql.FieldIsNull(FieldAnnouncementTypeID))
}

// AnnouncementTypeIDNotNil applies the NotNil predicate on the "announcement_type_id" field.
func AnnouncementTypeIDNotNil() predicate.Announcement {
	return predicate.Announcement(sql.FieldNotNull(FieldAnnouncementTypeID))
}

// WilayaNameEQ applies the EQ predicate on the "wilaya_name" field.
func WilayaNameEQ(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldEQ(FieldWilayaName, v))
}

// WilayaNameNEQ applies the NEQ predicate on the "wilaya_name" field.
func WilayaNameNEQ(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldNEQ(FieldWilayaName, v))
}

// WilayaNameIn applies the In predicate on the "wilaya_name" field.
func WilayaNameIn(vs ...string) predicate.Announcement {
	return predicate.Announcement(sql.FieldIn(FieldWilayaName, vs...))
}

// WilayaNameNotIn applies the NotIn predicate on the "wilaya_name" field.
func WilayaNameNotIn(vs ...string) predicate.Announcement {
	return predicate.Announcement(sql.FieldNotIn(FieldWilayaName, vs...))
}

// WilayaNameGT applies the GT predicate on the "wilaya_name" field.
func WilayaNameGT(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldGT(FieldWilayaName, v))
}

// WilayaNameGTE applies the GTE predicate on the "wilaya_name" field.
func WilayaNameGTE(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldGTE(FieldWilayaName, v))
}

// WilayaNameLT applies the LT predicate on the "wilaya_name" field.
func WilayaNameLT(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldLT(FieldWilayaName, v))
}

// WilayaNameLTE applies the LTE predicate on the "wilaya_name" field.
func WilayaNameLTE(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldLTE(FieldWilayaName, v))
}

// WilayaNameContains applies the Contains predicate on the "wilaya_name" field.
func WilayaNameContains(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldContains(FieldWilayaName, v))
}

// WilayaNameHasPrefix applies the HasPrefix predicate on the "wilaya_name" field.
func WilayaNameHasPrefix(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldHasPrefix(FieldWilayaName, v))
}

// WilayaNameHasSuffix applies the HasSuffix predicate on the "wilaya_name" field.
func WilayaNameHasSuffix(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldHasSuffix(FieldWilayaName, v))
}

// WilayaNameIsNil applies the IsNil predicate on the "wilaya_name" field.
func WilayaNameIsNil() predicate.Announcement {
	return predicate.Announcement(sql.FieldIsNull(FieldWilayaName))
}

// WilayaNameNotNil applies the NotNil predicate on the "wilaya_name" field.
func WilayaNameNotNil() predicate.Announcement {
	return predicate.Announcement(sql.FieldNotNull(FieldWilayaName))
}

// WilayaNameEqualFold applies the EqualFold predicate on the "wilaya_name" field.
func WilayaNameEqualFold(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldEqualFold(FieldWilayaName, v))
}

// WilayaNameContainsFold applies the ContainsFold predicate on the "wilaya_name" field.
func WilayaNameContainsFold(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldContainsFold(FieldWilayaName, v))
}

// BusinessLineNameEQ applies the EQ predicate on the "business_line_name" field.
func BusinessLineNameEQ(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldEQ(FieldBusinessLineName, v))
}

// BusinessLineNameNEQ applies the NEQ predicate on the "business_line_name" field.
func BusinessLineNameNEQ(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldNEQ(FieldBusinessLineName, v))
}

// BusinessLineNameIn applies the In predicate on the "business_line_name" field.
func BusinessLineNameIn(vs ...string) predicate.Announcement {
	return predicate.Announcement(sql.FieldIn(FieldBusinessLineName, vs...))
}

// BusinessLineNameNotIn applies the NotIn predicate on the "business_line_name" field.
func BusinessLineNameNotIn(vs ...string) predicate.Announcement {
	return predicate.Announcement(sql.FieldNotIn(FieldBusinessLineName, vs...))
}

// BusinessLineNameGT applies the GT predicate on the "business_line_name" field.
func BusinessLineNameGT(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldGT(FieldBusinessLineName, v))
}

// BusinessLineNameGTE applies the GTE predicate on the "business_line_name" field.
func BusinessLineNameGTE(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldGTE(FieldBusinessLineName, v))
}

// BusinessLineNameLT applies the LT predicate on the "business_line_name" field.
func BusinessLineNameLT(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldLT(FieldBusinessLineName, v))
}

// BusinessLineNameLTE applies the LTE predicate on the "business_line_name" field.
func BusinessLineNameLTE(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldLTE(FieldBusinessLineName, v))
}

// BusinessLineNameContains applies the Contains predicate on the "business_line_name" field.
func BusinessLineNameContains(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldContains(FieldBusinessLineName, v))
}

// BusinessLineNameHasPrefix applies the HasPrefix predicate on the "business_line_name" field.
func BusinessLineNameHasPrefix(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldHasPrefix(FieldBusinessLineName, v))
}

// BusinessLineNameHasSuffix applies the HasSuffix predicate on the "business_line_name" field.
func BusinessLineNameHasSuffix(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldHasSuffix(FieldBusinessLineName, v))
}

// BusinessLineNameIsNil applies the IsNil predicate on the "business_line_name" field.
func BusinessLineNameIsNil() predicate.Announcement {
	return predicate.Announcement(sql.FieldIsNull(FieldBusinessLineName))
}

// BusinessLineNameNotNil applies the NotNil predicate on the "business_line_name" field.
func BusinessLineNameNotNil() predicate.Announcement {
	return predicate.Announcement(sql.FieldNotNull(FieldBusinessLineName))
}

// BusinessLineNameEqualFold applies the EqualFold predicate on the "business_line_name" field.
func BusinessLineNameEqualFold(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldEqualFold(FieldBusinessLineName, v))
}

// BusinessLineNameContainsFold applies the ContainsFold predicate on the "business_line_name" field.
func BusinessLineNameContainsFold(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldContainsFold(FieldBusinessLineName, v))
}

// AnnouncementTypeNameEQ applies the EQ predicate on the "announcement_type_name" field.
func AnnouncementTypeNameEQ(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldEQ(FieldAnnouncementTypeName, v))
}

// AnnouncementTypeNameNEQ applies the NEQ predicate on the "announcement_type_name" field.
func AnnouncementTypeNameNEQ(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldNEQ(FieldAnnouncementTypeName, v))
}

// AnnouncementTypeNameIn applies the In predicate on the "announcement_type_name" field.
func AnnouncementTypeNameIn(vs ...string) predicate.Announcement {
	return predicate.Announcement(sql.FieldIn(FieldAnnouncementTypeName, vs...))
}

// AnnouncementTypeNameNotIn applies the NotIn predicate on the "announcement_type_name" field.
func AnnouncementTypeNameNotIn(vs ...string) predicate.Announcement {
	return predicate.Announcement(sql.FieldNotIn(FieldAnnouncementTypeName, vs...))
}

// AnnouncementTypeNameGT applies the GT predicate on the "announcement_type_name" field.
func AnnouncementTypeNameGT(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldGT(FieldAnnouncementTypeName, v))
}

// AnnouncementTypeNameGTE applies the GTE predicate on the "announcement_type_name" field.
func AnnouncementTypeNameGTE(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldGTE(FieldAnnouncementTypeName, v))
}

// AnnouncementTypeNameLT applies the LT predicate on the "announcement_type_name" field.
func AnnouncementTypeNameLT(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldLT(FieldAnnouncementTypeName, v))
}

// AnnouncementTypeNameLTE applies the LTE predicate on the "announcement_type_name" field.
func AnnouncementTypeNameLTE(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldLTE(FieldAnnouncementTypeName, v))
}

// AnnouncementTypeNameContains applies the Contains predicate on the "announcement_type_name" field.
func AnnouncementTypeNameContains(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldContains(FieldAnnouncementTypeName, v))
}

// AnnouncementTypeNameHasPrefix applies the HasPrefix predicate on the "announcement_type_name" field.
func AnnouncementTypeNameHasPrefix(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldHasPrefix(FieldAnnouncementTypeName, v))
}

// AnnouncementTypeNameHasSuffix applies the HasSuffix predicate on the "announcement_type_name" field.
func AnnouncementTypeNameHasSuffix(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldHasSuffix(FieldAnnouncementTypeName, v))
}

// AnnouncementTypeNameIsNil applies the IsNil predicate on the "announcement_type_name" field.
func AnnouncementTypeNameIsNil() predicate.Announcement {
	return predicate.Announcement(sql.FieldIsNull(FieldAnnouncementTypeName))
}

// AnnouncementTypeNameNotNil applies the NotNil predicate on the "announcement_type_name" field.
func AnnouncementTypeNameNotNil() predicate.Announcement {
	return predicate.Announcement(sql.FieldNotNull(FieldAnnouncementTypeName))
}

// AnnouncementTypeNameEqualFold applies the EqualFold predicate on the "announcement_type_name" field.
func AnnouncementTypeNameEqualFold(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldEqualFold(FieldAnnouncementTypeName, v))
}

// AnnouncementTypeNameContainsFold applies the ContainsFold predicate on the "announcement_type_name" field.
func AnnouncementTypeNameContainsFold(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldContainsFold(FieldAnnouncementTypeName, v))
}

// BoundingBoxIsNil applies the IsNil predicate on the "bounding_box" field.
func BoundingBoxIsNil() predicate.Announcement {
	return predicate.Announcement(sql.FieldIsNull(FieldBoundingBox))
}

// BoundingBoxNotNil applies the NotNil predicate on the "bounding_box" field.
func BoundingBoxNotNil() predicate.Announcement {
	return predicate.Announcement(sql.FieldNotNull(FieldBoundingBox))
}

// SourceFileEQ applies the EQ predicate on the "source_file" field.
func SourceFileEQ(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldEQ(FieldSourceFile, v))
}

// SourceFileNEQ applies the NEQ predicate on the "source_file" field.
func SourceFileNEQ(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldNEQ(FieldSourceFile, v))
}

// SourceFileIn applies the In predicate on the "source_file" field.
func SourceFileIn(vs ...string) predicate.Announcement {
	return predicate.Announcement(sql.FieldIn(FieldSourceFile, vs...))
}

// SourceFileNotIn applies the NotIn predicate on the "source_file" field.
func SourceFileNotIn(vs ...string) predicate.Announcement {
	return predicate.Announcement(sql.FieldNotIn(FieldSourceFile, vs...))
}

// SourceFileGT applies the GT predicate on the "source_file" field.
func SourceFileGT(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldGT(FieldSourceFile, v))
}

// SourceFileGTE applies the GTE predicate on the "source_file" field.
func SourceFileGTE(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldGTE(FieldSourceFile, v))
}

// SourceFileLT applies the LT predicate on the "source_file" field.
func SourceFileLT(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldLT(FieldSourceFile, v))
}

// SourceFileLTE applies the LTE predicate on the "source_file" field.
func SourceFileLTE(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldLTE(FieldSourceFile, v))
}

// SourceFileContains applies the Contains predicate on the "source_file" field.
func SourceFileContains(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldContains(FieldSourceFile, v))
}

// SourceFileHasPrefix applies the HasPrefix predicate on the "source_file" field.
func SourceFileHasPrefix(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldHasPrefix(FieldSourceFile, v))
}

// SourceFileHasSuffix applies the HasSuffix predicate on the "source_file" field.
func SourceFileHasSuffix(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldHasSuffix(FieldSourceFile, v))
}

// SourceFileIsNil applies the IsNil predicate on the "source_file" field.
func SourceFileIsNil() predicate.Announcement {
	return predicate.Announcement(sql.FieldIsNull(FieldSourceFile))
}

// SourceFileNotNil applies the NotNil predicate on the "source_file" field.
func SourceFileNotNil() predicate.Announcement {
	return predicate.Announcement(sql.FieldNotNull(FieldSourceFile))
}

// SourceFileEqualFold applies the EqualFold predicate on the "source_file" field.
func SourceFileEqualFold(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldEqualFold(FieldSourceFile, v))
}

// SourceFileContainsFold applies the ContainsFold predicate on the "source_file" field.
func SourceFileContainsFold(v string) predicate.Announcement {
	return predicate.Announcement(sql.FieldContainsFold(FieldSourceFile, v))
}

// SourcePageEQ applies the EQ predicate on the "source_page" field.
func SourcePageEQ(v int) predicate.Announcement {
	return predicate.Announcement(sql.FieldEQ(FieldSourcePage, v))
}

// SourcePageNEQ applies the NEQ predicate on the "source_page" field.
func SourcePageNEQ(v int) predicate.Announcement {
	return predicate.Announcement(sql.FieldNEQ(FieldSourcePage, v))
}

// SourcePageIn applies the In predicate on the "source_page" field.
func SourcePageIn(vs ...int) predicate.Announcement {
	return predicate.Announcement(sql.FieldIn(FieldSourcePage, vs...))
}

// SourcePageNotIn applies the NotIn predicate on the "source_page" field.
func SourcePageNotIn(vs ...int) predicate.Announcement {
	return predicate.Announcement(sql.FieldNotIn(FieldSourcePage, vs...))
}

// SourcePageGT applies the GT predicate on the "source_page" field.
func SourcePageGT(v int) predicate.Announcement {
	return predicate.Announcement(sql.FieldGT(FieldSourcePage, v))
}

// SourcePageGTE applies the GTE predicate on the "source_page" field.
func SourcePageGTE(v int) predicate.Announcement {
	return predicate.Announcement(sql.FieldGTE(FieldSourcePage, v))
}

// SourcePageLT applies the LT predicate on the "source_page" field.
func SourcePageLT(v int) predicate.Announcement {
	return predicate.Announcement(sql.FieldLT(FieldSourcePage, v))
}

// SourcePageLTE applies the LTE predicate on the "source_page" field.
func SourcePageLTE(v int) predicate.Announcement {
	return predicate.Announcement(sql.FieldLTE(FieldSourcePage, v))
}

// SourcePageIsNil applies the IsNil predicate on the "source_page" field.
func SourcePageIsNil() predicate.Announcement {
	return predicate.Announcement(sql.FieldIsNull(FieldSourcePage))
}

// SourcePageNotNil applies the NotNil predicate on the "source_page" field.
func SourcePageNotNil() predicate.Announcement {
	return predicate.Announcement(sql.FieldNotNull(FieldSourcePage))
}

// IssueNumberEQ applies the EQ predicate on the "issue_number" field.
func IssueNumberEQ(v int) predicate.Announcement {
	return predicate.Announcement(sql.FieldEQ(FieldIssueNumber, v))
}

// IssueNumberNEQ applies the NEQ predicate on the "issue_number" field.
func IssueNumberNEQ(v int) predicate.Announcement {
	return predicate.Announcement(sql.FieldNEQ(FieldIssueNumber, v))
}

// IssueNumberIn applies the In predicate on the "issue_number" field.
func IssueNumberIn(vs ...int) predicate.Announcement {
	return predicate.Announcement(sql.FieldIn(FieldIssueNumber, vs...))
}

// IssueNumberNotIn applies the NotIn predicate on the "issue_number" field.
func IssueNumberNotIn(vs ...int) predicate.Announcement {
	return predicate.Announcement(sql.FieldNotIn(FieldIssueNumber, vs...))
}

// IssueNumberGT applies the GT predicate on the "issue_number" field.
func IssueNumberGT(v int) predicate.Announcement {
	return predicate.Announcement(sql.FieldGT(FieldIssueNumber, v))
}

// IssueNumberGTE applies the GTE predicate on the "issue_number" field.
func IssueNumberGTE(v int) predicate.Announcement {
	return predicate.Announcement(sql.FieldGTE(FieldIssueNumber, v))
}

// IssueNumberLT applies the LT predicate on the "issue_number" field.
func IssueNumberLT(v int) predicate.Announcement {
	return predicate.Announcement(sql.FieldLT(FieldIssueNumber, v))
}

// IssueNumberLTE applies the LTE predicate on the "issue_number" field.
func IssueNumberLTE(v int) predicate.Announcement {
	return predicate.Announcement(sql.FieldLTE(FieldIssueNumber, v))
}

// IssueNumberIsNil applies the IsNil predicate on the "issue_number" field.
func IssueNumberIsNil() predicate.Announcement {
	return predicate.Announcement(sql.FieldIsNull(FieldIssueNumber))
}

// IssueNumberNotNil applies the NotNil predicate on the "issue_number" field.
func IssueNumberNotNil() predicate.Announcement {
	return predicate.Announcement(sql.FieldNotNull(FieldIssueNumber))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Announcement {
	return predicate.Announcement(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Announcement {
	return predicate.Announcement(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Announcement {
	return predicate.Announcement(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Announcement {
	return predicate.Announcement(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Announcement {
	return predicate.Announcement(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Announcement {
	return predicate.Announcement(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Announcement {
	return predicate.Announcement(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Announcement {
	return predicate.Announcement(sql.FieldLTE(FieldCreatedAt, v))
}

// HasWilaya applies the HasEdge predicate on the "wilaya" edge.
func HasWilaya() predicate.Announcement {
	return predicate.Announcement(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, WilayaTable, WilayaColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasWilayaWith applies the HasEdge predicate on the "wilaya" edge with a given conditions (other predicates).
func HasWilayaWith(preds ...predicate.Wilaya) predicate.Announcement {
	return predicate.Announcement(func(s *sql.Selector) {
		step := newWilayaStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasBusinessLine applies the HasEdge predicate on the "business_line" edge.
func HasBusinessLine() predicate.Announcement {
	return predicate.Announcement(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, BusinessLineTable, BusinessLineColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBusinessLineWith applies the HasEdge predicate on the "business_line" edge with a given conditions (other predicates).
func HasBusinessLineWith(preds ...predicate.BusinessLine) predicate.Announcement {
	return predicate.Announcement(func(s *sql.Selector) {
		step := newBusinessLineStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAnnouncementType applies the HasEdge predicate on the "announcement_type" edge.
func HasAnnouncementType() predicate.Announcement {
	return predicate.Announcement(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AnnouncementTypeTable, AnnouncementTypeColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAnnouncementTypeWith applies the HasEdge predicate on the "announcement_type" edge with a given conditions (other predicates).
func HasAnnouncementTypeWith(preds ...predicate.AnnouncementType) predicate.Announcement {
	return predicate.Announcement(func(s *sql.Selector) {
		step := newAnnouncementTypeStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Announcement) predicate.Announcement {
	return predicate.Announcement(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Announcement) predicate.Announcement {
	return predicate.Announcement(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Announcement) predicate.Announcement {
	return predicate.Announcement(sql.NotPredicates(p))
}
