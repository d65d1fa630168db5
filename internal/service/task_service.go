// internal/service/task_service.go
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"

	dispatchv1 "github.com/omerfdemir/pickuptracker/api/proto/dispatch/v1/generated"
	ent "github.com/omerfdemir/pickuptracker/ent/generated"
	"github.com/omerfdemir/pickuptracker/ent/generated/task"
	"github.com/omerfdemir/pickuptracker/ent/generated/user"
	"github.com/omerfdemir/pickuptracker/internal/report"
	"github.com/omerfdemir/pickuptracker/internal/repository"
	"github.com/omerfdemir/pickuptracker/pkg/auth"
)

const defaultPageSize = 20

// TaskService is the administrator surface: pickup task management,
// reporting and driver accounts.
type TaskService struct {
	dispatchv1.UnimplementedTaskServiceServer
	client          *ent.Client
	taskRepo        *repository.EntTaskRepository
	reportRepo      *repository.ReportRepository
	passwordManager *auth.PasswordManager
	securityLogger  *SecurityLogger
}

// NewTaskService creates a new task service
func NewTaskService(
	client *ent.Client,
	taskRepo *repository.EntTaskRepository,
	reportRepo *repository.ReportRepository,
	securityLogger *SecurityLogger,
) *TaskService {
	return &TaskService{
		client:          client,
		taskRepo:        taskRepo,
		reportRepo:      reportRepo,
		passwordManager: auth.NewPasswordManager(),
		securityLogger:  securityLogger,
	}
}

// CreateTask creates a pickup task. Without an assignee the task is
// broadcast to every driver.
func (s *TaskService) CreateTask(ctx context.Context, req *dispatchv1.CreateTaskRequest) (*dispatchv1.CreateTaskResponse, error) {
	admin, err := requireAdmin(ctx, s.securityLogger)
	if err != nil {
		return nil, err
	}

	input := &repository.TaskInput{
		DonorName:    strings.TrimSpace(req.DonorName),
		Address:      req.Address,
		PhoneNumbers: req.PhoneNumbers,
		LocationLink: req.LocationLink,
		Category:     convertProtoToCategory(req.Category),
		IsUrgent:     req.IsUrgent,
		CreatorID:    admin.ID,
	}

	if req.Quantity > 0 {
		q := req.Quantity
		input.Quantity = &q
	}

	if req.AssignedToId != "" {
		driverID, err := uuid.Parse(req.AssignedToId)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, "invalid assigned_to_id format")
		}

		// Assignee must be an existing driver account
		exists, err := s.client.User.Query().
			Where(user.ID(driverID), user.RoleEQ(user.RoleDriver)).
			Exist(ctx)
		if err != nil {
			return nil, status.Error(codes.Internal, "failed to check driver")
		}
		if !exists {
			return nil, status.Error(codes.InvalidArgument, "assigned_to_id is not a driver")
		}

		input.AssigneeID = &driverID
	}

	created, err := s.taskRepo.Create(ctx, input)
	if err != nil {
		return nil, status.Error(codes.Internal, "failed to create task")
	}

	return &dispatchv1.CreateTaskResponse{
		Task: convertTaskToProto(created),
	}, nil
}

// GetTask returns one task with all of its relations
func (s *TaskService) GetTask(ctx context.Context, req *dispatchv1.GetTaskRequest) (*dispatchv1.GetTaskResponse, error) {
	if _, err := requireAdmin(ctx, s.securityLogger); err != nil {
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

	return &dispatchv1.GetTaskResponse{
		Task: convertTaskToProto(found),
	}, nil
}

// ListTasks returns tasks matching the filters in insertion order
func (s *TaskService) ListTasks(ctx context.Context, req *dispatchv1.ListTasksRequest) (*dispatchv1.ListTasksResponse, error) {
	if _, err := requireAdmin(ctx, s.securityLogger); err != nil {
		return nil, err
	}

	filter := repository.ListFilter{
		Keyword: convertProtoToKeyword(req.Keyword),
	}

	if st, ok := convertProtoToStatus(req.Status); ok {
		filter.Status = &st
	}

	if err := applyDateRange(&filter, req.StartDate, req.EndDate); err != nil {
		return nil, err
	}
	filter.Limit, filter.Offset = pageBounds(req.PageSize, req.Page)

	tasks, totalCount, err := s.taskRepo.List(ctx, filter)
	if err != nil {
		return nil, status.Error(codes.Internal, "failed to list tasks")
	}

	return &dispatchv1.ListTasksResponse{
		Tasks:      convertTasksToProto(tasks),
		TotalCount: int32(totalCount),
	}, nil
}

// TaskHistory returns completed tasks, optionally bounded by date
func (s *TaskService) TaskHistory(ctx context.Context, req *dispatchv1.TaskHistoryRequest) (*dispatchv1.TaskHistoryResponse, error) {
	if _, err := requireAdmin(ctx, s.securityLogger); err != nil {
		return nil, err
	}

	filter := repository.ListFilter{
		CompletedOnly: true,
	}

	if err := applyDateRange(&filter, req.StartDate, req.EndDate); err != nil {
		return nil, err
	}
	filter.Limit, filter.Offset = pageBounds(req.PageSize, req.Page)

	tasks, totalCount, err := s.taskRepo.List(ctx, filter)
	if err != nil {
		return nil, status.Error(codes.Internal, "failed to list task history")
	}

	return &dispatchv1.TaskHistoryResponse{
		Tasks:      convertTasksToProto(tasks),
		TotalCount: int32(totalCount),
	}, nil
}

// CancelTask marks a task cancelled
func (s *TaskService) CancelTask(ctx context.Context, req *dispatchv1.CancelTaskRequest) (*dispatchv1.CancelTaskResponse, error) {
	if _, err := requireAdmin(ctx, s.securityLogger); err != nil {
		return nil, err
	}

	id, err := uuid.Parse(req.Id)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid task ID format")
	}

	cancelled, err := s.taskRepo.Cancel(ctx, id)
	if err != nil {
		switch {
		case ent.IsNotFound(err):
			return nil, status.Error(codes.NotFound, "task not found")
		case errors.Is(err, repository.ErrTerminalState):
			return nil, status.Error(codes.FailedPrecondition, "task is already completed or cancelled")
		default:
			return nil, status.Error(codes.Internal, "failed to cancel task")
		}
	}

	return &dispatchv1.CancelTaskResponse{
		Task: convertTaskToProto(cancelled),
	}, nil
}

// ResetTask returns a terminal task to the assigned state
func (s *TaskService) ResetTask(ctx context.Context, req *dispatchv1.ResetTaskRequest) (*dispatchv1.ResetTaskResponse, error) {
	if _, err := requireAdmin(ctx, s.securityLogger); err != nil {
		return nil, err
	}

	id, err := uuid.Parse(req.Id)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid task ID format")
	}

	reset, err := s.taskRepo.Reset(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "task not found")
		}
		return nil, status.Error(codes.Internal, "failed to reset task")
	}

	return &dispatchv1.ResetTaskResponse{
		Task: convertTaskToProto(reset),
	}, nil
}

// ExportTasks renders the matching tasks as a CSV download
func (s *TaskService) ExportTasks(ctx context.Context, req *dispatchv1.ExportTasksRequest) (*dispatchv1.ExportTasksResponse, error) {
	if _, err := requireAdmin(ctx, s.securityLogger); err != nil {
		return nil, err
	}

	filter := repository.ExportFilter{
		Keyword: convertProtoToKeyword(req.Keyword),
	}

	if st, ok := convertProtoToStatus(req.Status); ok {
		statusStr := string(st)
		filter.Status = &statusStr
	}

	if req.StartDate != "" {
		start, err := parseCalendarDate(req.StartDate, "start_date")
		if err != nil {
			return nil, err
		}
		filter.StartDate = &start
	}
	if req.EndDate != "" {
		end, err := parseCalendarDate(req.EndDate, "end_date")
		if err != nil {
			return nil, err
		}
		filter.EndDate = &end
	}

	rows, err := s.reportRepo.ExportRows(ctx, filter)
	if err != nil {
		return nil, status.Error(codes.Internal, "failed to export tasks")
	}

	csvData, err := report.TasksCSV(rows)
	if err != nil {
		return nil, status.Error(codes.Internal, "failed to render export")
	}

	return &dispatchv1.ExportTasksResponse{
		CsvData:     csvData,
		FileName:    report.ExportFileName(time.Now()),
		ContentType: report.CSVContentType,
	}, nil
}

// GetDashboardStats returns the admin dashboard counters
func (s *TaskService) GetDashboardStats(ctx context.Context, _ *dispatchv1.GetDashboardStatsRequest) (*dispatchv1.GetDashboardStatsResponse, error) {
	if _, err := requireAdmin(ctx, s.securityLogger); err != nil {
		return nil, err
	}

	stats, err := s.taskRepo.Stats(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, "failed to compute dashboard stats")
	}

	return &dispatchv1.GetDashboardStatsResponse{
		TotalTasks:     int32(stats.Total),
		PendingTasks:   int32(stats.Pending),
		UrgentTasks:    int32(stats.Urgent),
		CompletedTasks: int32(stats.Completed),
		RecentTasks:    convertTasksToProto(stats.Recent),
	}, nil
}

// ListDrivers returns all driver accounts
func (s *TaskService) ListDrivers(ctx context.Context, _ *dispatchv1.ListDriversRequest) (*dispatchv1.ListDriversResponse, error) {
	if _, err := requireAdmin(ctx, s.securityLogger); err != nil {
		return nil, err
	}

	drivers, err := s.client.User.Query().
		Where(user.RoleEQ(user.RoleDriver)).
		Order(ent.Asc(user.FieldUsername)).
		All(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, "failed to list drivers")
	}

	resp := &dispatchv1.ListDriversResponse{}
	for _, d := range drivers {
		resp.Drivers = append(resp.Drivers, convertDriverToProto(d))
	}

	return resp, nil
}

// CreateDriver provisions a new driver account
func (s *TaskService) CreateDriver(ctx context.Context, req *dispatchv1.CreateDriverRequest) (*dispatchv1.CreateDriverResponse, error) {
	admin, err := requireAdmin(ctx, s.securityLogger)
	if err != nil {
		return nil, err
	}

	username := strings.ToLower(req.Username)
	if err := auth.ValidateUsername(username); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	exists, err := s.client.User.Query().
		Where(user.UsernameEQ(username)).
		Exist(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, "failed to check username")
	}
	if exists {
		return nil, status.Error(codes.AlreadyExists, "username already taken")
	}

	hashedPassword, err := s.passwordManager.HashPassword(req.Password)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	created, err := s.client.User.Create().
		SetUsername(username).
		SetPasswordHash(hashedPassword).
		SetPhoneNumber(req.PhoneNumber).
		SetRole(user.RoleDriver).
		Save(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, "failed to create driver")
	}

	if err := s.securityLogger.LogDriverCreated(ctx, admin.ID, created.Username); err != nil {
		// best effort
	}

	return &dispatchv1.CreateDriverResponse{
		Driver: convertDriverToProto(created),
	}, nil
}

// DeleteDriver removes a driver account. The driver's open tasks go
// back into the broadcast pool; terminal tasks keep their history with
// the assignee cleared.
func (s *TaskService) DeleteDriver(ctx context.Context, req *dispatchv1.DeleteDriverRequest) (*emptypb.Empty, error) {
	admin, err := requireAdmin(ctx, s.securityLogger)
	if err != nil {
		return nil, err
	}

	driverID, err := uuid.Parse(req.Id)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid driver ID format")
	}

	if driverID == admin.ID {
		return nil, status.Error(codes.InvalidArgument, "cannot delete your own account")
	}

	target, err := s.client.User.Get(ctx, driverID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "driver not found")
		}
		return nil, status.Error(codes.Internal, "failed to get driver")
	}

	if target.Role != user.RoleDriver {
		return nil, status.Error(codes.InvalidArgument, "user is not a driver")
	}
	if target.IsSuperuser {
		return nil, status.Error(codes.PermissionDenied, "cannot delete a superuser account")
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, "failed to start transaction")
	}

	// Re-broadcast the driver's open tasks
	if _, err := tx.Task.Update().
		Where(
			task.AssignedToEQ(driverID),
			task.StatusIn(task.StatusAssigned, task.StatusInProgress),
		).
		ClearAssignedTo().
		SetIsBroadcast(true).
		SetStatus(task.StatusAssigned).
		Save(ctx); err != nil {
		tx.Rollback()
		return nil, status.Error(codes.Internal, "failed to reassign tasks")
	}

	// Detach remaining (terminal) tasks
	if _, err := tx.Task.Update().
		Where(task.AssignedToEQ(driverID)).
		ClearAssignedTo().
		Save(ctx); err != nil {
		tx.Rollback()
		return nil, status.Error(codes.Internal, "failed to detach tasks")
	}

	if err := tx.User.DeleteOneID(driverID).Exec(ctx); err != nil {
		tx.Rollback()
		return nil, status.Error(codes.Internal, "failed to delete driver")
	}

	if err := tx.Commit(); err != nil {
		return nil, status.Error(codes.Internal, "failed to commit driver deletion")
	}

	if err := s.securityLogger.LogDriverDeleted(ctx, admin.ID, target.Username); err != nil {
		// best effort
	}

	return &emptypb.Empty{}, nil
}

// Helpers

func convertTasksToProto(tasks []*ent.Task) []*dispatchv1.Task {
	out := make([]*dispatchv1.Task, len(tasks))
	for i, t := range tasks {
		out[i] = convertTaskToProto(t)
	}
	return out
}

func convertProtoToKeyword(k dispatchv1.ListKeyword) repository.Keyword {
	switch k {
	case dispatchv1.ListKeyword_LIST_KEYWORD_PENDING:
		return repository.KeywordPending
	case dispatchv1.ListKeyword_LIST_KEYWORD_URGENT:
		return repository.KeywordUrgent
	case dispatchv1.ListKeyword_LIST_KEYWORD_COMPLETED:
		return repository.KeywordCompleted
	default:
		return repository.KeywordNone
	}
}

func parseCalendarDate(value, field string) (time.Time, error) {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, status.Errorf(codes.InvalidArgument, "%s must be in YYYY-MM-DD form", field)
	}
	return parsed, nil
}

func applyDateRange(filter *repository.ListFilter, startDate, endDate string) error {
	if startDate != "" {
		start, err := parseCalendarDate(startDate, "start_date")
		if err != nil {
			return err
		}
		filter.StartDate = &start
	}
	if endDate != "" {
		end, err := parseCalendarDate(endDate, "end_date")
		if err != nil {
			return err
		}
		filter.EndDate = &end
	}
	return nil
}

func pageBounds(pageSize, page int32) (limit, offset int) {
	limit = int(pageSize)
	if limit <= 0 {
		limit = defaultPageSize
	}
	if page > 0 {
		offset = int(page) * limit
	}
	return limit, offset
}
