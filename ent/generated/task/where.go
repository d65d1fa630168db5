// Code generated by ent, DO NOT EDIT.

package task

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/omerfdemir/pickuptracker/ent/generated/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldID, id))
}

// DonorName applies equality check predicate on the "donor_name" field. It's identical to DonorNameEQ.
func DonorName(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldDonorName, v))
}

// Address applies equality check predicate on the "address" field. It's identical to AddressEQ.
func Address(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldAddress, v))
}

// PhoneNumbers applies equality check predicate on the "phone_numbers" field. It's identical to PhoneNumbersEQ.
func PhoneNumbers(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldPhoneNumbers, v))
}

// LocationLink applies equality check predicate on the "location_link" field. It's identical to LocationLinkEQ.
func LocationLink(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldLocationLink, v))
}

// Quantity applies equality check predicate on the "quantity" field. It's identical to QuantityEQ.
func Quantity(v uint32) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldQuantity, v))
}

// IsUrgent applies equality check predicate on the "is_urgent" field. It's identical to IsUrgentEQ.
func IsUrgent(v bool) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldIsUrgent, v))
}

// IsBroadcast applies equality check predicate on the "is_broadcast" field. It's identical to IsBroadcastEQ.
func IsBroadcast(v bool) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldIsBroadcast, v))
}

// VisitorFormFilled applies equality check predicate on the "visitor_form_filled" field. It's identical to VisitorFormFilledEQ.
func VisitorFormFilled(v bool) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldVisitorFormFilled, v))
}

// TrustNoticeGiven applies equality check predicate on the "trust_notice_given" field. It's identical to TrustNoticeGivenEQ.
func TrustNoticeGiven(v bool) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldTrustNoticeGiven, v))
}

// CreatedBy applies equality check predicate on the "created_by" field. It's identical to CreatedByEQ.
func CreatedBy(v uuid.UUID) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCreatedBy, v))
}

// AssignedTo applies equality check predicate on the "assigned_to" field. It's identical to AssignedToEQ.
func AssignedTo(v uuid.UUID) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldAssignedTo, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldUpdatedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCompletedAt, v))
}

// DonorNameEQ applies the EQ predicate on the "donor_name" field.
func DonorNameEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldDonorName, v))
}

// DonorNameNEQ applies the NEQ predicate on the "donor_name" field.
func DonorNameNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldDonorName, v))
}

// DonorNameIn applies the In predicate on the "donor_name" field.
func DonorNameIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldDonorName, vs...))
}

// DonorNameNotIn applies the NotIn predicate on the "donor_name" field.
func DonorNameNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldDonorName, vs...))
}

// DonorNameGT applies the GT predicate on the "donor_name" field.
func DonorNameGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldDonorName, v))
}

// DonorNameGTE applies the GTE predicate on the "donor_name" field.
func DonorNameGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldDonorName, v))
}

// DonorNameLT applies the LT predicate on the "donor_name" field.
func DonorNameLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldDonorName, v))
}

// DonorNameLTE applies the LTE predicate on the "donor_name" field.
func DonorNameLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldDonorName, v))
}

// DonorNameContains applies the Contains predicate on the "donor_name" field.
func DonorNameContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldDonorName, v))
}

// DonorNameHasPrefix applies the HasPrefix predicate on the "donor_name" field.
func DonorNameHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldDonorName, v))
}

// DonorNameHasSuffix applies the HasSuffix predicate on the "donor_name" field.
func DonorNameHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldDonorName, v))
}

// DonorNameEqualFold applies the EqualFold predicate on the "donor_name" field.
func DonorNameEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldDonorName, v))
}

// DonorNameContainsFold applies the ContainsFold predicate on the "donor_name" field.
func DonorNameContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldDonorName, v))
}

// AddressEQ applies the EQ predicate on the "address" field.
func AddressEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldAddress, v))
}

// AddressNEQ applies the NEQ predicate on the "address" field.
func AddressNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldAddress, v))
}

// AddressIn applies the In predicate on the "address" field.
func AddressIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldAddress, vs...))
}

// AddressNotIn applies the NotIn predicate on the "address" field.
func AddressNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldAddress, vs...))
}

// AddressGT applies the GT predicate on the "address" field.
func AddressGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldAddress, v))
}

// AddressGTE applies the GTE predicate on the "address" field.
func AddressGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldAddress, v))
}

// AddressLT applies the LT predicate on the "address" field.
func AddressLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldAddress, v))
}

// AddressLTE applies the LTE predicate on the "address" field.
func AddressLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldAddress, v))
}

// AddressContains applies the Contains predicate on the "address" field.
func AddressContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldAddress, v))
}

// AddressHasPrefix applies the HasPrefix predicate on the "address" field.
func AddressHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldAddress, v))
}

// AddressHasSuffix applies the HasSuffix predicate on the "address" field.
func AddressHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldAddress, v))
}

// AddressIsNil applies the IsNil predicate on the "address" field.
func AddressIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldAddress))
}

// AddressNotNil applies the NotNil predicate on the "address" field.
func AddressNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldAddress))
}

// AddressEqualFold applies the EqualFold predicate on the "address" field.
func AddressEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldAddress, v))
}

// AddressContainsFold applies the ContainsFold predicate on the "address" field.
func AddressContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldAddress, v))
}

// PhoneNumbersEQ applies the EQ predicate on the "phone_numbers" field.
func PhoneNumbersEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldPhoneNumbers, v))
}

// PhoneNumbersNEQ applies the NEQ predicate on the "phone_numbers" field.
func PhoneNumbersNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldPhoneNumbers, v))
}

// PhoneNumbersIn applies the In predicate on the "phone_numbers" field.
func PhoneNumbersIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldPhoneNumbers, vs...))
}

// PhoneNumbersNotIn applies the NotIn predicate on the "phone_numbers" field.
func PhoneNumbersNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldPhoneNumbers, vs...))
}

// PhoneNumbersGT applies the GT predicate on the "phone_numbers" field.
func PhoneNumbersGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldPhoneNumbers, v))
}

// PhoneNumbersGTE applies the GTE predicate on the "phone_numbers" field.
func PhoneNumbersGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldPhoneNumbers, v))
}

// PhoneNumbersLT applies the LT predicate on the "phone_numbers" field.
func PhoneNumbersLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldPhoneNumbers, v))
}

// PhoneNumbersLTE applies the LTE predicate on the "phone_numbers" field.
func PhoneNumbersLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldPhoneNumbers, v))
}

// PhoneNumbersContains applies the Contains predicate on the "phone_numbers" field.
func PhoneNumbersContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldPhoneNumbers, v))
}

// PhoneNumbersHasPrefix applies the HasPrefix predicate on the "phone_numbers" field.
func PhoneNumbersHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldPhoneNumbers, v))
}

// PhoneNumbersHasSuffix applies the HasSuffix predicate on the "phone_numbers" field.
func PhoneNumbersHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldPhoneNumbers, v))
}

// PhoneNumbersIsNil applies the IsNil predicate on the "phone_numbers" field.
func PhoneNumbersIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldPhoneNumbers))
}

// PhoneNumbersNotNil applies the NotNil predicate on the "phone_numbers" field.
func PhoneNumbersNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldPhoneNumbers))
}

// PhoneNumbersEqualFold applies the EqualFold predicate on the "phone_numbers" field.
func PhoneNumbersEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldPhoneNumbers, v))
}

// PhoneNumbersContainsFold applies the ContainsFold predicate on the "phone_numbers" field.
func PhoneNumbersContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldPhoneNumbers, v))
}

// LocationLinkEQ applies the EQ predicate on the "location_link" field.
func LocationLinkEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldLocationLink, v))
}

// LocationLinkNEQ applies the NEQ predicate on the "location_link" field.
func LocationLinkNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldLocationLink, v))
}

// LocationLinkIn applies the In predicate on the "location_link" field.
func LocationLinkIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldLocationLink, vs...))
}

// LocationLinkNotIn applies the NotIn predicate on the "location_link" field.
func LocationLinkNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldLocationLink, vs...))
}

// LocationLinkGT applies the GT predicate on the "location_link" field.
func LocationLinkGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldLocationLink, v))
}

// LocationLinkGTE applies the GTE predicate on the "location_link" field.
func LocationLinkGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldLocationLink, v))
}

// LocationLinkLT applies the LT predicate on the "location_link" field.
func LocationLinkLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldLocationLink, v))
}

// LocationLinkLTE applies the LTE predicate on the "location_link" field.
func LocationLinkLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldLocationLink, v))
}

// LocationLinkContains applies the Contains predicate on the "location_link" field.
func LocationLinkContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldLocationLink, v))
}

// LocationLinkHasPrefix applies the HasPrefix predicate on the "location_link" field.
func LocationLinkHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldLocationLink, v))
}

// LocationLinkHasSuffix applies the HasSuffix predicate on the "location_link" field.
func LocationLinkHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldLocationLink, v))
}

// LocationLinkIsNil applies the IsNil predicate on the "location_link" field.
func LocationLinkIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldLocationLink))
}

// LocationLinkNotNil applies the NotNil predicate on the "location_link" field.
func LocationLinkNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldLocationLink))
}

// LocationLinkEqualFold applies the EqualFold predicate on the "location_link" field.
func LocationLinkEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldLocationLink, v))
}

// LocationLinkContainsFold applies the ContainsFold predicate on the "location_link" field.
func LocationLinkContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldLocationLink, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v Category) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v Category) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...Category) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...Category) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldCategory, vs...))
}

// QuantityEQ applies the EQ predicate on the "quantity" field.
func QuantityEQ(v uint32) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldQuantity, v))
}

// QuantityNEQ applies the NEQ predicate on the "quantity" field.
func QuantityNEQ(v uint32) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldQuantity, v))
}

// QuantityIn applies the In predicate on the "quantity" field.
func QuantityIn(vs ...uint32) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldQuantity, vs...))
}

// QuantityNotIn applies the NotIn predicate on the "quantity" field.
func QuantityNotIn(vs ...uint32) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldQuantity, vs...))
}

// QuantityGT applies the GT predicate on the "quantity" field.
func QuantityGT(v uint32) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldQuantity, v))
}

// QuantityGTE applies the GTE predicate on the "quantity" field.
func QuantityGTE(v uint32) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldQuantity, v))
}

// QuantityLT applies the LT predicate on the "quantity" field.
func QuantityLT(v uint32) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldQuantity, v))
}

// QuantityLTE applies the LTE predicate on the "quantity" field.
func QuantityLTE(v uint32) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldQuantity, v))
}

// QuantityIsNil applies the IsNil predicate on the "quantity" field.
func QuantityIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldQuantity))
}

// QuantityNotNil applies the NotNil predicate on the "quantity" field.
func QuantityNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldQuantity))
}

// IsUrgentEQ applies the EQ predicate on the "is_urgent" field.
func IsUrgentEQ(v bool) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldIsUrgent, v))
}

// IsUrgentNEQ applies the NEQ predicate on the "is_urgent" field.
func IsUrgentNEQ(v bool) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldIsUrgent, v))
}

// IsBroadcastEQ applies the EQ predicate on the "is_broadcast" field.
func IsBroadcastEQ(v bool) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldIsBroadcast, v))
}

// IsBroadcastNEQ applies the NEQ predicate on the "is_broadcast" field.
func IsBroadcastNEQ(v bool) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldIsBroadcast, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldStatus, vs...))
}

// VisitorFormFilledEQ applies the EQ predicate on the "visitor_form_filled" field.
func VisitorFormFilledEQ(v bool) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldVisitorFormFilled, v))
}

// VisitorFormFilledNEQ applies the NEQ predicate on the "visitor_form_filled" field.
func VisitorFormFilledNEQ(v bool) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldVisitorFormFilled, v))
}

// TrustNoticeGivenEQ applies the EQ predicate on the "trust_notice_given" field.
func TrustNoticeGivenEQ(v bool) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldTrustNoticeGiven, v))
}

// TrustNoticeGivenNEQ applies the NEQ predicate on the "trust_notice_given" field.
func TrustNoticeGivenNEQ(v bool) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldTrustNoticeGiven, v))
}

// CreatedByEQ applies the EQ predicate on the "created_by" field.
func CreatedByEQ(v uuid.UUID) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedByNEQ applies the NEQ predicate on the "created_by" field.
func CreatedByNEQ(v uuid.UUID) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldCreatedBy, v))
}

// CreatedByIn applies the In predicate on the "created_by" field.
func CreatedByIn(vs ...uuid.UUID) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldCreatedBy, vs...))
}

// CreatedByNotIn applies the NotIn predicate on the "created_by" field.
func CreatedByNotIn(vs ...uuid.UUID) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldCreatedBy, vs...))
}

// AssignedToEQ applies the EQ predicate on the "assigned_to" field.
func AssignedToEQ(v uuid.UUID) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldAssignedTo, v))
}

// AssignedToNEQ applies the NEQ predicate on the "assigned_to" field.
func AssignedToNEQ(v uuid.UUID) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldAssignedTo, v))
}

// AssignedToIn applies the In predicate on the "assigned_to" field.
func AssignedToIn(vs ...uuid.UUID) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldAssignedTo, vs...))
}

// AssignedToNotIn applies the NotIn predicate on the "assigned_to" field.
func AssignedToNotIn(vs ...uuid.UUID) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldAssignedTo, vs...))
}

// AssignedToIsNil applies the IsNil predicate on the "assigned_to" field.
func AssignedToIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldAssignedTo))
}

// AssignedToNotNil applies the NotNil predicate on the "assigned_to" field.
func AssignedToNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldAssignedTo))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldUpdatedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldCompletedAt))
}

// HasCreator applies the HasEdge predicate on the "creator" edge.
func HasCreator() predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CreatorTable, CreatorColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCreatorWith applies the HasEdge predicate on the "creator" edge with a given conditions (other predicates).
func HasCreatorWith(preds ...predicate.User) predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := newCreatorStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAssignee applies the HasEdge predicate on the "assignee" edge.
func HasAssignee() predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AssigneeTable, AssigneeColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAssigneeWith applies the HasEdge predicate on the "assignee" edge with a given conditions (other predicates).
func HasAssigneeWith(preds ...predicate.User) predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := newAssigneeStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasItems applies the HasEdge predicate on the "items" edge.
func HasItems() predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ItemsTable, ItemsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasItemsWith applies the HasEdge predicate on the "items" edge with a given conditions (other predicates).
func HasItemsWith(preds ...predicate.Item) predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := newItemsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasPhotos applies the HasEdge predicate on the "photos" edge.
func HasPhotos() predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, PhotosTable, PhotosColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPhotosWith applies the HasEdge predicate on the "photos" edge with a given conditions (other predicates).
func HasPhotosWith(preds ...predicate.TaskPhoto) predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := newPhotosStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasLocationLogs applies the HasEdge predicate on the "location_logs" edge.
func HasLocationLogs() predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, LocationLogsTable, LocationLogsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLocationLogsWith applies the HasEdge predicate on the "location_logs" edge with a given conditions (other predicates).
func HasLocationLogsWith(preds ...predicate.LocationLog) predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := newLocationLogsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Task) predicate.Task {
	return predicate.Task(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Task) predicate.Task {
	return predicate.Task(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Task) predicate.Task {
	return predicate.Task(sql.NotPredicates(p))
}
