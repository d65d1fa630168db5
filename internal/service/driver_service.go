// internal/service/driver_service.go
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	dispatchv1 "github.com/omerfdemir/pickuptracker/api/proto/dispatch/v1/generated"
	ent "github.com/omerfdemir/pickuptracker/ent/generated"
	"github.com/omerfdemir/pickuptracker/internal/repository"
	"github.com/omerfdemir/pickuptracker/internal/storage"
	"github.com/omerfdemir/pickuptracker/pkg/receipt"
)

// DriverService is the driver surface: the pickup queue and the
// start/complete workflow.
type DriverService struct {
	dispatchv1.UnimplementedDriverServiceServer
	taskRepo       *repository.EntTaskRepository
	photoStore     *storage.PhotoStore
	securityLogger *SecurityLogger
}

// NewDriverService creates a new driver service
func NewDriverService(
	taskRepo *repository.EntTaskRepository,
	photoStore *storage.PhotoStore,
	securityLogger *SecurityLogger,
) *DriverService {
	return &DriverService{
		taskRepo:       taskRepo,
		photoStore:     photoStore,
		securityLogger: securityLogger,
	}
}

// GetQueue returns the driver's open tasks, urgent first then newest,
// along with their workload counters.
func (s *DriverService) GetQueue(ctx context.Context, _ *dispatchv1.GetQueueRequest) (*dispatchv1.GetQueueResponse, error) {
	driver, err := requireDriver(ctx, s.securityLogger)
	if err != nil {
		return nil, err
	}

	tasks, err := s.taskRepo.DriverQueue(ctx, driver.ID)
	if err != nil {
		return nil, status.Error(codes.Internal, "failed to get queue")
	}

	total, inProgress, completed, err := s.taskRepo.DriverStats(ctx, driver.ID)
	if err != nil {
		return nil, status.Error(codes.Internal, "failed to count tasks")
	}

	return &dispatchv1.GetQueueResponse{
		Tasks:           convertTasksToProto(tasks),
		TotalTasks:      int32(total),
		InProgressTasks: int32(inProgress),
		CompletedTasks:  int32(completed),
	}, nil
}

// GetTask returns one task if the driver may see it: their own tasks
// and anything currently broadcast.
func (s *DriverService) GetTask(ctx context.Context, req *dispatchv1.GetTaskRequest) (*dispatchv1.GetTaskResponse, error) {
	driver, err := requireDriver(ctx, s.securityLogger)
	if err != nil {
		return nil, err
	}

	id, err := uuid.Parse(req.Id)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid task ID format")
	}

	found, err := s.taskRepo.GetVisibleToDriver(ctx, id, driver.ID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "task not found")
		}
		return nil, status.Error(codes.Internal, "failed to get task")
	}

	return &dispatchv1.GetTaskResponse{
		Task: convertTaskToProto(found),
	}, nil
}

// StartTask moves a task to in progress. For a broadcast task this is
// the claim: the first driver wins, later ones get an Aborted error and
// should refresh their queue.
func (s *DriverService) StartTask(ctx context.Context, req *dispatchv1.StartTaskRequest) (*dispatchv1.StartTaskResponse, error) {
	driver, err := requireDriver(ctx, s.securityLogger)
	if err != nil {
		return nil, err
	}

	id, err := uuid.Parse(req.Id)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid task ID format")
	}

	started, err := s.taskRepo.Start(ctx, id, driver.ID, convertProtoToGeoPoint(req.Location))
	if err != nil {
		switch {
		case ent.IsNotFound(err):
			return nil, status.Error(codes.NotFound, "task not found")
		case errors.Is(err, repository.ErrAlreadyClaimed):
			if err := s.securityLogger.LogClaimConflict(ctx, driver.ID, req.Id); err != nil {
				// best effort
			}
			return nil, status.Error(codes.Aborted, "task already claimed by another driver")
		case errors.Is(err, repository.ErrNotAssignee):
			return nil, status.Error(codes.PermissionDenied, "task is not assigned to you")
		case errors.Is(err, repository.ErrTerminalState):
			return nil, status.Error(codes.FailedPrecondition, "task is already completed or cancelled")
		default:
			return nil, status.Error(codes.Internal, "failed to start task")
		}
	}

	return &dispatchv1.StartTaskResponse{
		Task: convertTaskToProto(started),
	}, nil
}

// CompleteTask records the pickup outcome. Photos are written to disk
// first; the database changes then land in a single transaction, so a
// failed completion leaves the task untouched.
func (s *DriverService) CompleteTask(ctx context.Context, req *dispatchv1.CompleteTaskRequest) (*dispatchv1.CompleteTaskResponse, error) {
	driver, err := requireDriver(ctx, s.securityLogger)
	if err != nil {
		return nil, err
	}

	id, err := uuid.Parse(req.Id)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid task ID format")
	}

	input := &repository.CompleteInput{
		TaskID:            id,
		DriverID:          driver.ID,
		VisitorFormFilled: req.VisitorFormFilled,
		TrustNoticeGiven:  req.TrustNoticeGiven,
		Location:          convertProtoToGeoPoint(req.Location),
	}

	for _, it := range req.Items {
		input.Items = append(input.Items, repository.ItemInput{
			Category:  it.Category,
			Quantity:  it.Quantity,
			Condition: convertProtoToCondition(it.Condition),
		})
	}

	for _, p := range req.Photos {
		relPath, err := s.photoStore.Save(p.FileName, p.Data)
		if err != nil {
			return nil, status.Error(codes.Internal, "failed to store photo")
		}
		input.Photos = append(input.Photos, repository.PhotoRecord{
			FilePath:  relPath,
			PhotoType: convertProtoToPhotoType(p.PhotoType),
		})
	}

	completed, err := s.taskRepo.Complete(ctx, input)
	if err != nil {
		switch {
		case ent.IsNotFound(err):
			return nil, status.Error(codes.NotFound, "task not found")
		case errors.Is(err, repository.ErrNotAssignee):
			return nil, status.Error(codes.PermissionDenied, "task is not assigned to you")
		case errors.Is(err, repository.ErrTerminalState):
			return nil, status.Error(codes.FailedPrecondition, "task is already completed or cancelled")
		case ent.IsValidationError(err):
			return nil, status.Error(codes.InvalidArgument, "invalid item or photo data")
		default:
			return nil, status.Error(codes.Internal, "failed to complete task")
		}
	}

	return &dispatchv1.CompleteTaskResponse{
		Task:        convertTaskToProto(completed),
		ReceiptText: receiptForTask(completed),
	}, nil
}

// GetReceipt returns the donation receipt for a task. Admins may fetch
// any receipt; a driver only their own.
func (s *DriverService) GetReceipt(ctx context.Context, req *dispatchv1.GetReceiptRequest) (*dispatchv1.GetReceiptResponse, error) {
	a, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	id, err := uuid.Parse(req.Id)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid task ID format")
	}

	found, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "task not found")
		}
		return nil, status.Error(codes.Internal, "failed to get task")
	}

	isAdmin := a.Role == roleAdmin || a.IsSuperuser
	isAssignee := found.AssignedTo != nil && *found.AssignedTo == a.ID
	if !isAdmin && !isAssignee {
		if err := s.securityLogger.LogPermissionDenied(ctx, a.ID, "receipt access denied"); err != nil {
			// best effort
		}
		return nil, status.Error(codes.PermissionDenied, "not allowed to view this receipt")
	}

	return &dispatchv1.GetReceiptResponse{
		ReceiptText: receiptForTask(found),
		Task:        convertTaskToProto(found),
	}, nil
}

func convertProtoToGeoPoint(p *dispatchv1.GeoPoint) *repository.GeoPoint {
	if p == nil {
		return nil
	}
	return &repository.GeoPoint{
		Latitude:  p.Latitude,
		Longitude: p.Longitude,
	}
}

// receiptForTask builds the receipt text from the task's loaded items.
func receiptForTask(t *ent.Task) string {
	lines := make([]receipt.Line, len(t.Edges.Items))
	for i, it := range t.Edges.Items {
		lines[i] = receipt.Line{
			Quantity: it.Quantity,
			Category: it.Category,
		}
	}
	return receipt.Text(t.DonorName, lines)
}
