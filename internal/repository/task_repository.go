// internal/repository/task_repository.go
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	ent "github.com/omerfdemir/pickuptracker/ent/generated"
	"github.com/omerfdemir/pickuptracker/ent/generated/item"
	"github.com/omerfdemir/pickuptracker/ent/generated/locationlog"
	"github.com/omerfdemir/pickuptracker/ent/generated/predicate"
	"github.com/omerfdemir/pickuptracker/ent/generated/task"
	"github.com/omerfdemir/pickuptracker/ent/generated/taskphoto"
)

// Workflow errors surfaced to the service layer.
var (
	// ErrAlreadyClaimed is returned when the conditional claim update
	// matched no rows: another driver won the broadcast task first.
	ErrAlreadyClaimed = errors.New("task already claimed by another driver")

	// ErrNotAssignee is returned when a driver acts on a task that is
	// not assigned to them.
	ErrNotAssignee = errors.New("task is not assigned to this driver")

	// ErrTerminalState is returned for transitions out of completed or
	// cancelled.
	ErrTerminalState = errors.New("task is in a terminal state")
)

type EntTaskRepository struct {
	client *ent.Client
}

func NewEntTaskRepository(client *ent.Client) *EntTaskRepository {
	return &EntTaskRepository{
		client: client,
	}
}

// TaskInput carries the admin-supplied fields for a new pickup task.
type TaskInput struct {
	DonorName    string
	Address      string
	PhoneNumbers string
	LocationLink string
	Category     task.Category
	Quantity     *uint32
	IsUrgent     bool
	CreatorID    uuid.UUID
	AssigneeID   *uuid.UUID
}

// ListFilter narrows the admin task list.
type ListFilter struct {
	Status        *task.Status
	Keyword       Keyword
	StartDate     *time.Time // calendar date, inclusive
	EndDate       *time.Time // calendar date, inclusive
	CompletedOnly bool
	Limit         int
	Offset        int
}

// Keyword is the derived list filter from the admin task list.
type Keyword string

const (
	KeywordNone      Keyword = ""
	KeywordPending   Keyword = "pending"
	KeywordUrgent    Keyword = "urgent"
	KeywordCompleted Keyword = "completed"
)

// GeoPoint is an optional GPS checkpoint supplied with start/complete.
type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

// ItemInput is one collected item row submitted on completion.
type ItemInput struct {
	Category  string
	Quantity  uint32
	Condition item.Condition
}

// PhotoRecord references an already-stored image file.
type PhotoRecord struct {
	FilePath  string
	PhotoType taskphoto.PhotoType
}

// CompleteInput is the composite completion submission.
type CompleteInput struct {
	TaskID            uuid.UUID
	DriverID          uuid.UUID
	VisitorFormFilled bool
	TrustNoticeGiven  bool
	Items             []ItemInput
	Photos            []PhotoRecord
	Location          *GeoPoint
}

// Create persists a new task. A task without an assignee is broadcast
// to all drivers.
func (r *EntTaskRepository) Create(ctx context.Context, input *TaskInput) (*ent.Task, error) {
	create := r.client.Task.
		Create().
		SetDonorName(input.DonorName).
		SetAddress(input.Address).
		SetPhoneNumbers(input.PhoneNumbers).
		SetLocationLink(input.LocationLink).
		SetCategory(input.Category).
		SetNillableQuantity(input.Quantity).
		SetIsUrgent(input.IsUrgent).
		SetCreatedBy(input.CreatorID).
		SetStatus(task.StatusAssigned)

	if input.AssigneeID != nil {
		create = create.
			SetAssignedTo(*input.AssigneeID).
			SetIsBroadcast(false)
	} else {
		create = create.SetIsBroadcast(true)
	}

	created, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}

	return r.GetByID(ctx, created.ID)
}

// GetByID loads a task with all of its relations.
func (r *EntTaskRepository) GetByID(ctx context.Context, id uuid.UUID) (*ent.Task, error) {
	return r.client.Task.
		Query().
		Where(task.IDEQ(id)).
		WithAssignee().
		WithCreator().
		WithItems(func(q *ent.ItemQuery) {
			q.Order(ent.Asc(item.FieldPosition), ent.Asc(item.FieldCreatedAt))
		}).
		WithPhotos().
		WithLocationLogs().
		Only(ctx)
}

// List returns tasks matching the filter in insertion order, plus the
// total match count before pagination.
func (r *EntTaskRepository) List(ctx context.Context, filter ListFilter) ([]*ent.Task, int, error) {
	query := r.client.Task.Query()

	var predicates []predicate.Task

	if filter.CompletedOnly {
		predicates = append(predicates, task.StatusEQ(task.StatusCompleted))
	}

	if filter.Status != nil {
		predicates = append(predicates, task.StatusEQ(*filter.Status))
	}

	switch filter.Keyword {
	case KeywordPending:
		predicates = append(predicates, task.StatusNEQ(task.StatusCompleted))
	case KeywordUrgent:
		predicates = append(predicates, task.IsUrgent(true))
	case KeywordCompleted:
		predicates = append(predicates, task.StatusEQ(task.StatusCompleted))
	}

	// Date bounds compare by calendar date, inclusive on both ends.
	if filter.StartDate != nil {
		predicates = append(predicates, task.CreatedAtGTE(startOfDay(*filter.StartDate)))
	}
	if filter.EndDate != nil {
		predicates = append(predicates, task.CreatedAtLT(startOfDay(*filter.EndDate).AddDate(0, 0, 1)))
	}

	if len(predicates) > 0 {
		query = query.Where(predicates...)
	}

	totalCount, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("count tasks: %w", err)
	}

	// Insertion order, the list view's contract.
	query = query.Order(ent.Asc(task.FieldCreatedAt), ent.Asc(task.FieldID))

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	tasks, err := query.
		WithAssignee().
		WithItems(func(q *ent.ItemQuery) {
			q.Order(ent.Asc(item.FieldPosition), ent.Asc(item.FieldCreatedAt))
		}).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("query tasks: %w", err)
	}

	return tasks, totalCount, nil
}

// visibleToDriver is the row-level rule for drivers: their own tasks
// plus anything currently broadcast.
func visibleToDriver(driverID uuid.UUID) predicate.Task {
	return task.Or(
		task.AssignedToEQ(driverID),
		task.IsBroadcast(true),
	)
}

// DriverQueue returns the driver's open tasks, urgent first then newest.
func (r *EntTaskRepository) DriverQueue(ctx context.Context, driverID uuid.UUID) ([]*ent.Task, error) {
	tasks, err := r.client.Task.
		Query().
		Where(
			visibleToDriver(driverID),
			task.StatusNEQ(task.StatusCompleted),
		).
		Order(ent.Desc(task.FieldIsUrgent), ent.Desc(task.FieldCreatedAt)).
		WithAssignee().
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query driver queue: %w", err)
	}

	return tasks, nil
}

// DriverStats counts the driver's visible tasks, including completed ones.
func (r *EntTaskRepository) DriverStats(ctx context.Context, driverID uuid.UUID) (total, inProgress, completed int, err error) {
	base := r.client.Task.Query().Where(visibleToDriver(driverID))

	if total, err = base.Clone().Count(ctx); err != nil {
		return 0, 0, 0, fmt.Errorf("count driver tasks: %w", err)
	}
	if inProgress, err = base.Clone().Where(task.StatusEQ(task.StatusInProgress)).Count(ctx); err != nil {
		return 0, 0, 0, fmt.Errorf("count in-progress tasks: %w", err)
	}
	if completed, err = base.Clone().Where(task.StatusEQ(task.StatusCompleted)).Count(ctx); err != nil {
		return 0, 0, 0, fmt.Errorf("count completed tasks: %w", err)
	}

	return total, inProgress, completed, nil
}

// GetVisibleToDriver loads a task only if the driver may see it.
func (r *EntTaskRepository) GetVisibleToDriver(ctx context.Context, id, driverID uuid.UUID) (*ent.Task, error) {
	return r.client.Task.
		Query().
		Where(task.IDEQ(id), visibleToDriver(driverID)).
		WithAssignee().
		WithItems(func(q *ent.ItemQuery) {
			q.Order(ent.Asc(item.FieldPosition), ent.Asc(item.FieldCreatedAt))
		}).
		WithPhotos().
		WithLocationLogs().
		Only(ctx)
}

// Start moves a task to in_progress for the acting driver. For a
// broadcast task this is the claim point: the assignment happens as a
// single conditional update so that of two concurrent claims exactly
// one succeeds and the other observes ErrAlreadyClaimed.
func (r *EntTaskRepository) Start(ctx context.Context, taskID, driverID uuid.UUID, loc *GeoPoint) (*ent.Task, error) {
	current, err := r.client.Task.
		Query().
		Where(task.IDEQ(taskID), visibleToDriver(driverID)).
		Only(ctx)
	if err != nil {
		return nil, err
	}

	if current.Status == task.StatusCompleted || current.Status == task.StatusCancelled {
		return nil, ErrTerminalState
	}

	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("starting transaction: %w", err)
	}

	if current.IsBroadcast {
		// Claim: assign only if still broadcast and unassigned.
		n, err := tx.Task.
			Update().
			Where(
				task.IDEQ(taskID),
				task.IsBroadcast(true),
				task.AssignedToIsNil(),
			).
			SetIsBroadcast(false).
			SetAssignedTo(driverID).
			SetStatus(task.StatusInProgress).
			Save(ctx)
		if err != nil {
			return nil, rollback(tx, fmt.Errorf("claim task: %w", err))
		}
		if n == 0 {
			return nil, rollback(tx, ErrAlreadyClaimed)
		}
	} else {
		if current.AssignedTo == nil || *current.AssignedTo != driverID {
			return nil, rollback(tx, ErrNotAssignee)
		}

		n, err := tx.Task.
			Update().
			Where(
				task.IDEQ(taskID),
				task.AssignedToEQ(driverID),
				task.StatusNotIn(task.StatusCompleted, task.StatusCancelled),
			).
			SetStatus(task.StatusInProgress).
			Save(ctx)
		if err != nil {
			return nil, rollback(tx, fmt.Errorf("start task: %w", err))
		}
		if n == 0 {
			return nil, rollback(tx, ErrTerminalState)
		}
	}

	if loc != nil {
		if _, err := tx.LocationLog.
			Create().
			SetTaskID(taskID).
			SetLatitude(loc.Latitude).
			SetLongitude(loc.Longitude).
			SetEvent(locationlog.EventStart).
			Save(ctx); err != nil {
			return nil, rollback(tx, fmt.Errorf("log start location: %w", err))
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit start: %w", err)
	}

	return r.GetByID(ctx, taskID)
}

// Complete closes a task: completion flags, collected items, photo
// records, the completion timestamp and an optional GPS checkpoint are
// persisted in one transaction, or not at all.
func (r *EntTaskRepository) Complete(ctx context.Context, input *CompleteInput) (*ent.Task, error) {
	current, err := r.client.Task.
		Query().
		Where(task.IDEQ(input.TaskID)).
		Only(ctx)
	if err != nil {
		return nil, err
	}

	// Broadcast tasks have to be started (claimed) before completion.
	if current.AssignedTo == nil || *current.AssignedTo != input.DriverID {
		return nil, ErrNotAssignee
	}
	if current.Status == task.StatusCompleted || current.Status == task.StatusCancelled {
		return nil, ErrTerminalState
	}

	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("starting transaction: %w", err)
	}

	// completed_at is stamped exactly once, guarded the same way as the
	// claim: the update matches only non-terminal rows.
	n, err := tx.Task.
		Update().
		Where(
			task.IDEQ(input.TaskID),
			task.AssignedToEQ(input.DriverID),
			task.StatusNotIn(task.StatusCompleted, task.StatusCancelled),
		).
		SetStatus(task.StatusCompleted).
		SetCompletedAt(time.Now()).
		SetVisitorFormFilled(input.VisitorFormFilled).
		SetTrustNoticeGiven(input.TrustNoticeGiven).
		Save(ctx)
	if err != nil {
		return nil, rollback(tx, fmt.Errorf("complete task: %w", err))
	}
	if n == 0 {
		return nil, rollback(tx, ErrTerminalState)
	}

	if len(input.Items) > 0 {
		builders := make([]*ent.ItemCreate, len(input.Items))
		for i, it := range input.Items {
			builders[i] = tx.Item.
				Create().
				SetTaskID(input.TaskID).
				SetCategory(it.Category).
				SetQuantity(it.Quantity).
				SetCondition(it.Condition).
				SetPosition(uint32(i))
		}
		if _, err := tx.Item.CreateBulk(builders...).Save(ctx); err != nil {
			return nil, rollback(tx, fmt.Errorf("create items: %w", err))
		}
	}

	if len(input.Photos) > 0 {
		builders := make([]*ent.TaskPhotoCreate, len(input.Photos))
		for i, p := range input.Photos {
			builders[i] = tx.TaskPhoto.
				Create().
				SetTaskID(input.TaskID).
				SetFilePath(p.FilePath).
				SetPhotoType(p.PhotoType)
		}
		if _, err := tx.TaskPhoto.CreateBulk(builders...).Save(ctx); err != nil {
			return nil, rollback(tx, fmt.Errorf("create photos: %w", err))
		}
	}

	if input.Location != nil {
		if _, err := tx.LocationLog.
			Create().
			SetTaskID(input.TaskID).
			SetLatitude(input.Location.Latitude).
			SetLongitude(input.Location.Longitude).
			SetEvent(locationlog.EventComplete).
			Save(ctx); err != nil {
			return nil, rollback(tx, fmt.Errorf("log complete location: %w", err))
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit complete: %w", err)
	}

	return r.GetByID(ctx, input.TaskID)
}

// Cancel marks a task cancelled unless it is already terminal.
func (r *EntTaskRepository) Cancel(ctx context.Context, id uuid.UUID) (*ent.Task, error) {
	if _, err := r.client.Task.Query().Where(task.IDEQ(id)).Only(ctx); err != nil {
		return nil, err
	}

	n, err := r.client.Task.
		Update().
		Where(
			task.IDEQ(id),
			task.StatusNotIn(task.StatusCompleted, task.StatusCancelled),
		).
		SetStatus(task.StatusCancelled).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("cancel task: %w", err)
	}
	if n == 0 {
		return nil, ErrTerminalState
	}

	return r.GetByID(ctx, id)
}

// Reset is the admin escape hatch out of a terminal state: the task
// returns to assigned, the completion stamp and flags are cleared, and
// an unassigned task goes back into the broadcast pool. Collected
// items, photos and location logs are kept as the audit trail.
func (r *EntTaskRepository) Reset(ctx context.Context, id uuid.UUID) (*ent.Task, error) {
	current, err := r.client.Task.Query().Where(task.IDEQ(id)).Only(ctx)
	if err != nil {
		return nil, err
	}

	update := r.client.Task.
		UpdateOneID(id).
		SetStatus(task.StatusAssigned).
		ClearCompletedAt().
		SetVisitorFormFilled(false).
		SetTrustNoticeGiven(false)

	if current.AssignedTo == nil {
		update = update.SetIsBroadcast(true)
	}

	if _, err := update.Save(ctx); err != nil {
		return nil, fmt.Errorf("reset task: %w", err)
	}

	return r.GetByID(ctx, id)
}

// DashboardStats are the counters on the admin dashboard.
type DashboardStats struct {
	Total     int
	Pending   int
	Urgent    int
	Completed int
	Recent    []*ent.Task
}

// Stats computes the admin dashboard counters and the five most recent
// tasks.
func (r *EntTaskRepository) Stats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}
	var err error

	if stats.Total, err = r.client.Task.Query().Count(ctx); err != nil {
		return nil, fmt.Errorf("count tasks: %w", err)
	}
	if stats.Pending, err = r.client.Task.Query().
		Where(task.StatusNEQ(task.StatusCompleted)).
		Count(ctx); err != nil {
		return nil, fmt.Errorf("count pending tasks: %w", err)
	}
	if stats.Urgent, err = r.client.Task.Query().
		Where(
			task.IsUrgent(true),
			task.StatusIn(task.StatusAssigned, task.StatusInProgress),
		).
		Count(ctx); err != nil {
		return nil, fmt.Errorf("count urgent tasks: %w", err)
	}
	if stats.Completed, err = r.client.Task.Query().
		Where(task.StatusEQ(task.StatusCompleted)).
		Count(ctx); err != nil {
		return nil, fmt.Errorf("count completed tasks: %w", err)
	}

	if stats.Recent, err = r.client.Task.Query().
		Order(ent.Desc(task.FieldCreatedAt)).
		Limit(5).
		WithAssignee().
		All(ctx); err != nil {
		return nil, fmt.Errorf("query recent tasks: %w", err)
	}

	return stats, nil
}

// startOfDay truncates to midnight UTC; stored timestamps are UTC.
func startOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// rollback is the transaction rollback helper.
func rollback(tx *ent.Tx, err error) error {
	if rerr := tx.Rollback(); rerr != nil {
		err = fmt.Errorf("%w: %v", err, rerr)
	}
	return err
}
