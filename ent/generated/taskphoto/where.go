// Code generated by ent, DO NOT EDIT.

package taskphoto

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/omerfdemir/pickuptracker/ent/generated/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.TaskPhoto {
	return predicate.TaskPhoto(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.TaskPhoto {
	return predicate.TaskPhoto(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.TaskPhoto {
	return predicate.TaskPhoto(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.TaskPhoto {
	return predicate.TaskPhoto(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.TaskPhoto {
	return predicate.TaskPhoto(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.TaskPhoto {
	return predicate.TaskPhoto(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.TaskPhoto {
	return predicate.TaskPhoto(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.TaskPhoto {
	return predicate.TaskPhoto(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.TaskPhoto {
	return predicate.TaskPhoto(sql.FieldLTE(FieldID, id))
}

// TaskID applies equality check predicate on the "task_id" field. It's identical to TaskIDEQ.
func TaskID(v uuid.UUID) predicate.TaskPhoto {
	return predicate.TaskPhoto(sql.FieldEQ(FieldTaskID, v))
}

// FilePath applies equality check predicate on the "file_path" field. It's identical to FilePathEQ.
func FilePath(v string) predicate.TaskPhoto {
	return predicate.TaskPhoto(sql.FieldEQ(FieldFilePath, v))
}

// UploadedAt applies equality check predicate on the "uploaded_at" field. It's identical to UploadedAtEQ.
func UploadedAt(v time.Time) predicate.TaskPhoto {
	return predicate.TaskPhoto(sql.FieldEQ(FieldUploadedAt, v))
}

// TaskIDEQ applies the EQ predicate on the "task_id" field.
func TaskIDEQ(v uuid.UUID) predicate.TaskPhoto {
	return predicate.TaskPhoto(sql.FieldEQ(FieldTaskID, v))
}

// TaskIDNEQ applies the NEQ predicate on the "task_id" field.
func TaskIDNEQ(v uuid.UUID) predicate.TaskPhoto {
	return predicate.TaskPhoto(sql.FieldNEQ(FieldTaskID, v))
}

// TaskIDIn applies the In predicate on the "task_id" field.
func TaskIDIn(vs ...uuid.UUID) predicate.TaskPhoto {
	return predicate.TaskPhoto(sql.FieldIn(FieldTaskID, vs...))
}

// TaskIDNotIn applies the NotIn predicate on the "task_id" field.
func TaskIDNotIn(vs ...uuid.UUID) predicate.TaskPhoto {
	return predicate.TaskPhoto(sql.FieldNotIn(FieldTaskID, vs...))
}

// FilePathEQ applies the EQ predicate on the "file_path" field.
func FilePathEQ(v string) predicate.TaskPhoto {
	return predicate.TaskPhoto(sql.FieldEQ(FieldFilePath, v))
}

// FilePathNEQ applies the NEQ predicate on the "file_path" field.
func FilePathNEQ(v string) predicate.TaskPhoto {
	return predicate.TaskPhoto(sql.FieldNEQ(FieldFilePath, v))
}

// FilePathIn applies the In predicate on the "file_path" field.
func FilePathIn(vs ...string) predicate.TaskPhoto {
	return predicate.TaskPhoto(sql.FieldIn(FieldFilePath, vs...))
}

// FilePathNotIn applies the NotIn predicate on the "file_path" field.
func FilePathNotIn(vs ...string) predicate.TaskPhoto {
	return predicate.TaskPhoto(sql.FieldNotIn(FieldFilePath, vs...))
}

// FilePathGT applies the GT predicate on the "file_path" field.
func FilePathGT(v string) predicate.TaskPhoto {
	return predicate.TaskPhoto(sql.FieldGT(FieldFilePath, v))
}

// FilePathGTE applies the GTE predicate on the "file_path" field.
func FilePathGTE(v string) predicate.TaskPhoto {
	return predicate.TaskPhoto(sql.FieldGTE(FieldFilePath, v))
}

// FilePathLT applies the LT predicate on the "file_path" field.
func FilePathLT(v string) predicate.TaskPhoto {
	return predicate.TaskPhoto(sql.FieldLT(FieldFilePath, v))
}

// FilePathLTE applies the LTE predicate on the "file_path" field.
func FilePathLTE(v string) predicate.TaskPhoto {
	return predicate.TaskPhoto(sql.FieldLTE(FieldFilePath, v))
}

// FilePathContains applies the Contains predicate on the "file_path" field.
func FilePathContains(v string) predicate.TaskPhoto {
	return predicate.TaskPhoto(sql.FieldContains(FieldFilePath, v))
}

// FilePathHasPrefix applies the HasPrefix predicate on the "file_path" field.
func FilePathHasPrefix(v string) predicate.TaskPhoto {
	return predicate.TaskPhoto(sql.FieldHasPrefix(FieldFilePath, v))
}

// FilePathHasSuffix applies the HasSuffix predicate on the "file_path" field.
func FilePathHasSuffix(v string) predicate.TaskPhoto {
	return predicate.TaskPhoto(sql.FieldHasSuffix(FieldFilePath, v))
}

// FilePathEqualFold applies the EqualFold predicate on the "file_path" field.
func FilePathEqualFold(v string) predicate.TaskPhoto {
	return predicate.TaskPhoto(sql.FieldEqualFold(FieldFilePath, v))
}

// FilePathContainsFold applies the ContainsFold predicate on the "file_path" field.
func FilePathContainsFold(v string) predicate.TaskPhoto {
	return predicate.TaskPhoto(sql.FieldContainsFold(FieldFilePath, v))
}

// PhotoTypeEQ applies the EQ predicate on the "photo_type" field.
func PhotoTypeEQ(v PhotoType) predicate.TaskPhoto {
	return predicate.TaskPhoto(sql.FieldEQ(FieldPhotoType, v))
}

// PhotoTypeNEQ applies the NEQ predicate on the "photo_type" field.
func PhotoTypeNEQ(v PhotoType) predicate.TaskPhoto {
	return predicate.TaskPhoto(sql.FieldNEQ(FieldPhotoType, v))
}

// PhotoTypeIn applies the In predicate on the "photo_type" field.
func PhotoTypeIn(vs ...PhotoType) predicate.TaskPhoto {
	return predicate.TaskPhoto(sql.FieldIn(FieldPhotoType, vs...))
}

// PhotoTypeNotIn applies the NotIn predicate on the "photo_type" field.
func PhotoTypeNotIn(vs ...PhotoType) predicate.TaskPhoto {
	return predicate.TaskPhoto(sql.FieldNotIn(FieldPhotoType, vs...))
}

// UploadedAtEQ applies the EQ predicate on the "uploaded_at" field.
func UploadedAtEQ(v time.Time) predicate.TaskPhoto {
	return predicate.TaskPhoto(sql.FieldEQ(FieldUploadedAt, v))
}

// UploadedAtNEQ applies the NEQ predicate on the "uploaded_at" field.
func UploadedAtNEQ(v time.Time) predicate.TaskPhoto {
	return predicate.TaskPhoto(sql.FieldNEQ(FieldUploadedAt, v))
}

// UploadedAtIn applies the In predicate on the "uploaded_at" field.
func UploadedAtIn(vs ...time.Time) predicate.TaskPhoto {
	return predicate.TaskPhoto(sql.FieldIn(FieldUploadedAt, vs...))
}

// UploadedAtNotIn applies the NotIn predicate on the "uploaded_at" field.
func UploadedAtNotIn(vs ...time.Time) predicate.TaskPhoto {
	return predicate.TaskPhoto(sql.FieldNotIn(FieldUploadedAt, vs...))
}

// UploadedAtGT applies the GT predicate on the "uploaded_at" field.
func UploadedAtGT(v time.Time) predicate.TaskPhoto {
	return predicate.TaskPhoto(sql.FieldGT(FieldUploadedAt, v))
}

// UploadedAtGTE applies the GTE predicate on the "uploaded_at" field.
func UploadedAtGTE(v time.Time) predicate.TaskPhoto {
	return predicate.TaskPhoto(sql.FieldGTE(FieldUploadedAt, v))
}

// UploadedAtLT applies the LT predicate on the "uploaded_at" field.
func UploadedAtLT(v time.Time) predicate.TaskPhoto {
	return predicate.TaskPhoto(sql.FieldLT(FieldUploadedAt, v))
}

// UploadedAtLTE applies the LTE predicate on the "uploaded_at" field.
func UploadedAtLTE(v time.Time) predicate.TaskPhoto {
	return predicate.TaskPhoto(sql.FieldLTE(FieldUploadedAt, v))
}

// HasTask applies the HasEdge predicate on the "task" edge.
func HasTask() predicate.TaskPhoto {
	return predicate.TaskPhoto(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TaskTable, TaskColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTaskWith applies the HasEdge predicate on the "task" edge with a given conditions (other predicates).
func HasTaskWith(preds ...predicate.Task) predicate.TaskPhoto {
	return predicate.TaskPhoto(func(s *sql.Selector) {
		step := newTaskStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TaskPhoto) predicate.TaskPhoto {
	return predicate.TaskPhoto(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TaskPhoto) predicate.TaskPhoto {
	return predicate.TaskPhoto(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TaskPhoto) predicate.TaskPhoto {
	return predicate.TaskPhoto(sql.NotPredicates(p))
}
