// internal/service/task_service_test.go
package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	dispatchv1 "github.com/omerfdemir/pickuptracker/api/proto/dispatch/v1/generated"
	ent "github.com/omerfdemir/pickuptracker/ent/generated"
	"github.com/omerfdemir/pickuptracker/ent/generated/task"
	"github.com/omerfdemir/pickuptracker/internal/repository"

	_ "github.com/mattn/go-sqlite3"
)

func newTestTaskService(t *testing.T, client *ent.Client) *TaskService {
	sqlxDB, err := sqlx.Open("sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	require.NoError(t, err)
	t.Cleanup(func() { sqlxDB.Close() })

	securityLogger := NewSecurityLogger(NewSecurityService(client))
	return NewTaskService(
		client,
		repository.NewEntTaskRepository(client),
		repository.NewReportRepository(sqlxDB),
		securityLogger,
	)
}

func TestTaskService_CreateTask(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	helpers := NewTestHelpers(t, client)
	admin := helpers.CreateAdminUser("admin1", "TestPass123!")
	driver := helpers.CreateDriverUser("driver1", "TestPass123!")
	adminCtx := helpers.AuthedContext(admin)

	svc := newTestTaskService(t, client)

	t.Run("unassigned task is broadcast", func(t *testing.T) {
		resp, err := svc.CreateTask(adminCtx, &dispatchv1.CreateTaskRequest{
			DonorName: "Jane",
			Address:   "42 Elm Street",
			Category:  dispatchv1.Category_CATEGORY_FURNITURE,
			IsUrgent:  true,
		})
		require.NoError(t, err)
		assert.True(t, resp.Task.IsBroadcast)
		assert.Empty(t, resp.Task.AssignedToId)
		assert.Equal(t, dispatchv1.TaskStatus_TASK_STATUS_ASSIGNED, resp.Task.Status)
		assert.Equal(t, admin.ID.String(), resp.Task.CreatedById)
	})

	t.Run("assigned task is not broadcast", func(t *testing.T) {
		resp, err := svc.CreateTask(adminCtx, &dispatchv1.CreateTaskRequest{
			DonorName:    "John",
			Address:      "7 Oak Avenue",
			AssignedToId: driver.ID.String(),
		})
		require.NoError(t, err)
		assert.False(t, resp.Task.IsBroadcast)
		assert.Equal(t, driver.ID.String(), resp.Task.AssignedToId)
		assert.Equal(t, "driver1", resp.Task.AssignedToUsername)
	})

	t.Run("assignee must be a driver", func(t *testing.T) {
		_, err := svc.CreateTask(adminCtx, &dispatchv1.CreateTaskRequest{
			DonorName:    "John",
			AssignedToId: admin.ID.String(),
		})
		require.Error(t, err)
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})

	t.Run("drivers cannot create tasks", func(t *testing.T) {
		_, err := svc.CreateTask(helpers.AuthedContext(driver), &dispatchv1.CreateTaskRequest{
			DonorName: "Jane",
		})
		require.Error(t, err)
		assert.Equal(t, codes.PermissionDenied, status.Code(err))
	})

	t.Run("superuser passes the admin gate", func(t *testing.T) {
		super := helpers.CreateSuperuser("root1", "TestPass123!")
		_, err := svc.CreateTask(helpers.AuthedContext(super), &dispatchv1.CreateTaskRequest{
			DonorName: "Jane",
		})
		require.NoError(t, err)
	})
}

func TestTaskService_ListTasks(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	helpers := NewTestHelpers(t, client)
	admin := helpers.CreateAdminUser("admin1", "TestPass123!")
	adminCtx := helpers.AuthedContext(admin)

	svc := newTestTaskService(t, client)
	repo := repository.NewEntTaskRepository(client)

	mkTask := func(donor string, urgent bool) *ent.Task {
		created, err := repo.Create(context.Background(), &repository.TaskInput{
			DonorName: donor,
			IsUrgent:  urgent,
			Category:  task.CategoryOther,
			CreatorID: admin.ID,
		})
		require.NoError(t, err)
		return created
	}

	first := mkTask("Alice", false)
	second := mkTask("Bob", true)
	third := mkTask("Carol", false)

	// Complete one so the status filters have something to split on
	_, err := client.Task.UpdateOneID(third.ID).
		SetStatus(task.StatusCompleted).
		SetCompletedAt(time.Now()).
		Save(context.Background())
	require.NoError(t, err)

	t.Run("returns all in insertion order", func(t *testing.T) {
		resp, err := svc.ListTasks(adminCtx, &dispatchv1.ListTasksRequest{})
		require.NoError(t, err)
		require.Len(t, resp.Tasks, 3)
		assert.Equal(t, int32(3), resp.TotalCount)
		assert.Equal(t, first.ID.String(), resp.Tasks[0].Id)
		assert.Equal(t, second.ID.String(), resp.Tasks[1].Id)
	})

	t.Run("filter by status", func(t *testing.T) {
		resp, err := svc.ListTasks(adminCtx, &dispatchv1.ListTasksRequest{
			Status: dispatchv1.TaskStatus_TASK_STATUS_COMPLETED,
		})
		require.NoError(t, err)
		require.Len(t, resp.Tasks, 1)
		assert.Equal(t, "Carol", resp.Tasks[0].DonorName)
	})

	t.Run("pending keyword excludes completed", func(t *testing.T) {
		resp, err := svc.ListTasks(adminCtx, &dispatchv1.ListTasksRequest{
			Keyword: dispatchv1.ListKeyword_LIST_KEYWORD_PENDING,
		})
		require.NoError(t, err)
		assert.Len(t, resp.Tasks, 2)
	})

	t.Run("urgent keyword", func(t *testing.T) {
		resp, err := svc.ListTasks(adminCtx, &dispatchv1.ListTasksRequest{
			Keyword: dispatchv1.ListKeyword_LIST_KEYWORD_URGENT,
		})
		require.NoError(t, err)
		require.Len(t, resp.Tasks, 1)
		assert.Equal(t, "Bob", resp.Tasks[0].DonorName)
	})

	t.Run("date range is inclusive", func(t *testing.T) {
		today := time.Now().UTC().Format("2006-01-02")
		resp, err := svc.ListTasks(adminCtx, &dispatchv1.ListTasksRequest{
			StartDate: today,
			EndDate:   today,
		})
		require.NoError(t, err)
		assert.Len(t, resp.Tasks, 3)

		tomorrow := time.Now().UTC().AddDate(0, 0, 1).Format("2006-01-02")
		resp, err = svc.ListTasks(adminCtx, &dispatchv1.ListTasksRequest{
			StartDate: tomorrow,
		})
		require.NoError(t, err)
		assert.Empty(t, resp.Tasks)
	})

	t.Run("pagination", func(t *testing.T) {
		resp, err := svc.ListTasks(adminCtx, &dispatchv1.ListTasksRequest{
			PageSize: 2,
			Page:     1,
		})
		require.NoError(t, err)
		require.Len(t, resp.Tasks, 1)
		assert.Equal(t, int32(3), resp.TotalCount)
	})
}

func TestTaskService_TaskHistory(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	helpers := NewTestHelpers(t, client)
	admin := helpers.CreateAdminUser("admin1", "TestPass123!")
	adminCtx := helpers.AuthedContext(admin)

	svc := newTestTaskService(t, client)
	repo := repository.NewEntTaskRepository(client)

	open, err := repo.Create(context.Background(), &repository.TaskInput{
		DonorName: "Open",
		Category:  task.CategoryOther,
		CreatorID: admin.ID,
	})
	require.NoError(t, err)
	_ = open

	done, err := repo.Create(context.Background(), &repository.TaskInput{
		DonorName: "Done",
		Category:  task.CategoryOther,
		CreatorID: admin.ID,
	})
	require.NoError(t, err)
	_, err = client.Task.UpdateOneID(done.ID).
		SetStatus(task.StatusCompleted).
		SetCompletedAt(time.Now()).
		Save(context.Background())
	require.NoError(t, err)

	resp, err := svc.TaskHistory(adminCtx, &dispatchv1.TaskHistoryRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Tasks, 1)
	assert.Equal(t, "Done", resp.Tasks[0].DonorName)
}

func TestTaskService_CancelAndReset(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	helpers := NewTestHelpers(t, client)
	admin := helpers.CreateAdminUser("admin1", "TestPass123!")
	adminCtx := helpers.AuthedContext(admin)

	svc := newTestTaskService(t, client)

	created, err := svc.CreateTask(adminCtx, &dispatchv1.CreateTaskRequest{DonorName: "Jane"})
	require.NoError(t, err)
	taskID := created.Task.Id

	cancelled, err := svc.CancelTask(adminCtx, &dispatchv1.CancelTaskRequest{Id: taskID})
	require.NoError(t, err)
	assert.Equal(t, dispatchv1.TaskStatus_TASK_STATUS_CANCELLED, cancelled.Task.Status)

	// Terminal tasks cannot be cancelled again
	_, err = svc.CancelTask(adminCtx, &dispatchv1.CancelTaskRequest{Id: taskID})
	require.Error(t, err)
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))

	// Reset returns the task to the pool
	reset, err := svc.ResetTask(adminCtx, &dispatchv1.ResetTaskRequest{Id: taskID})
	require.NoError(t, err)
	assert.Equal(t, dispatchv1.TaskStatus_TASK_STATUS_ASSIGNED, reset.Task.Status)
	assert.True(t, reset.Task.IsBroadcast)
	assert.Nil(t, reset.Task.CompletedAt)
}

func TestTaskService_ExportTasks(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	helpers := NewTestHelpers(t, client)
	admin := helpers.CreateAdminUser("admin1", "TestPass123!")
	driver := helpers.CreateDriverUser("driver1", "TestPass123!")
	adminCtx := helpers.AuthedContext(admin)

	svc := newTestTaskService(t, client)
	repo := repository.NewEntTaskRepository(client)
	ctx := context.Background()

	driverID := driver.ID
	created, err := repo.Create(ctx, &repository.TaskInput{
		DonorName:  "Jane",
		Address:    "42 Elm Street",
		Category:   task.CategoryFurniture,
		CreatorID:  admin.ID,
		AssigneeID: &driverID,
	})
	require.NoError(t, err)

	_, err = repo.Start(ctx, created.ID, driverID, nil)
	require.NoError(t, err)
	_, err = repo.Complete(ctx, &repository.CompleteInput{
		TaskID:   created.ID,
		DriverID: driverID,
		Items: []repository.ItemInput{
			{Category: "Chairs", Quantity: 2},
			{Category: "Table", Quantity: 1},
		},
	})
	require.NoError(t, err)

	resp, err := svc.ExportTasks(adminCtx, &dispatchv1.ExportTasksRequest{})
	require.NoError(t, err)
	assert.Equal(t, "text/csv", resp.ContentType)
	assert.Contains(t, resp.FileName, "tasks_export_")

	lines := strings.Split(strings.TrimSpace(string(resp.CsvData)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "ID,Donor,Address,Status,Driver,Items Collected,Created At", lines[0])
	assert.Contains(t, lines[1], "Jane")
	assert.Contains(t, lines[1], "Completed")
	assert.Contains(t, lines[1], "driver1")
	assert.Contains(t, lines[1], "2 Chairs, 1 Table")
}

func TestTaskService_ExportTasks_KeywordFilter(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	helpers := NewTestHelpers(t, client)
	admin := helpers.CreateAdminUser("admin1", "TestPass123!")
	driver := helpers.CreateDriverUser("driver1", "TestPass123!")
	adminCtx := helpers.AuthedContext(admin)

	svc := newTestTaskService(t, client)
	repo := repository.NewEntTaskRepository(client)
	ctx := context.Background()

	_, err := repo.Create(ctx, &repository.TaskInput{
		DonorName: "Alice",
		Category:  task.CategoryOther,
		IsUrgent:  true,
		CreatorID: admin.ID,
	})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &repository.TaskInput{
		DonorName: "Bob",
		Category:  task.CategoryOther,
		CreatorID: admin.ID,
	})
	require.NoError(t, err)

	driverID := driver.ID
	done, err := repo.Create(ctx, &repository.TaskInput{
		DonorName:  "Carol",
		Category:   task.CategoryOther,
		CreatorID:  admin.ID,
		AssigneeID: &driverID,
	})
	require.NoError(t, err)
	_, err = repo.Start(ctx, done.ID, driverID, nil)
	require.NoError(t, err)
	_, err = repo.Complete(ctx, &repository.CompleteInput{TaskID: done.ID, DriverID: driverID})
	require.NoError(t, err)

	exportLines := func(keyword dispatchv1.ListKeyword) []string {
		resp, err := svc.ExportTasks(adminCtx, &dispatchv1.ExportTasksRequest{Keyword: keyword})
		require.NoError(t, err)
		return strings.Split(strings.TrimSpace(string(resp.CsvData)), "\n")
	}

	urgent := exportLines(dispatchv1.ListKeyword_LIST_KEYWORD_URGENT)
	require.Len(t, urgent, 2)
	assert.Contains(t, urgent[1], "Alice")

	pending := exportLines(dispatchv1.ListKeyword_LIST_KEYWORD_PENDING)
	require.Len(t, pending, 3)
	assert.Contains(t, pending[1], "Alice")
	assert.Contains(t, pending[2], "Bob")

	completed := exportLines(dispatchv1.ListKeyword_LIST_KEYWORD_COMPLETED)
	require.Len(t, completed, 2)
	assert.Contains(t, completed[1], "Carol")
}

func TestTaskService_GetDashboardStats(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	helpers := NewTestHelpers(t, client)
	admin := helpers.CreateAdminUser("admin1", "TestPass123!")
	adminCtx := helpers.AuthedContext(admin)

	svc := newTestTaskService(t, client)
	repo := repository.NewEntTaskRepository(client)
	ctx := context.Background()

	for _, urgent := range []bool{true, false, false} {
		_, err := repo.Create(ctx, &repository.TaskInput{
			DonorName: "Donor",
			IsUrgent:  urgent,
			Category:  task.CategoryOther,
			CreatorID: admin.ID,
		})
		require.NoError(t, err)
	}

	resp, err := svc.GetDashboardStats(adminCtx, &dispatchv1.GetDashboardStatsRequest{})
	require.NoError(t, err)
	assert.Equal(t, int32(3), resp.TotalTasks)
	assert.Equal(t, int32(3), resp.PendingTasks)
	assert.Equal(t, int32(1), resp.UrgentTasks)
	assert.Equal(t, int32(0), resp.CompletedTasks)
	assert.Len(t, resp.RecentTasks, 3)
}

func TestTaskService_DriverManagement(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	helpers := NewTestHelpers(t, client)
	admin := helpers.CreateAdminUser("admin1", "TestPass123!")
	adminCtx := helpers.AuthedContext(admin)

	svc := newTestTaskService(t, client)

	created, err := svc.CreateDriver(adminCtx, &dispatchv1.CreateDriverRequest{
		Username:    "newdriver",
		Password:    "DriverPass123",
		PhoneNumber: "555-0100",
	})
	require.NoError(t, err)
	assert.Equal(t, "newdriver", created.Driver.Username)

	t.Run("duplicate username rejected", func(t *testing.T) {
		_, err := svc.CreateDriver(adminCtx, &dispatchv1.CreateDriverRequest{
			Username: "newdriver",
			Password: "DriverPass123",
		})
		require.Error(t, err)
		assert.Equal(t, codes.AlreadyExists, status.Code(err))
	})

	t.Run("weak password rejected", func(t *testing.T) {
		_, err := svc.CreateDriver(adminCtx, &dispatchv1.CreateDriverRequest{
			Username: "anotherdriver",
			Password: "weak",
		})
		require.Error(t, err)
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})

	t.Run("list drivers", func(t *testing.T) {
		resp, err := svc.ListDrivers(adminCtx, &dispatchv1.ListDriversRequest{})
		require.NoError(t, err)
		require.Len(t, resp.Drivers, 1)
		assert.Equal(t, "newdriver", resp.Drivers[0].Username)
	})

	t.Run("cannot delete self", func(t *testing.T) {
		_, err := svc.DeleteDriver(adminCtx, &dispatchv1.DeleteDriverRequest{Id: admin.ID.String()})
		require.Error(t, err)
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})

	t.Run("cannot delete admins", func(t *testing.T) {
		other := helpers.CreateAdminUser("admin2", "TestPass123!")
		_, err := svc.DeleteDriver(adminCtx, &dispatchv1.DeleteDriverRequest{Id: other.ID.String()})
		require.Error(t, err)
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})

	t.Run("deleting a driver re-broadcasts open tasks", func(t *testing.T) {
		repo := repository.NewEntTaskRepository(client)
		ctx := context.Background()

		driverID, err := uuid.Parse(created.Driver.Id)
		require.NoError(t, err)

		open, err := repo.Create(ctx, &repository.TaskInput{
			DonorName:  "Jane",
			Category:   task.CategoryOther,
			CreatorID:  admin.ID,
			AssigneeID: &driverID,
		})
		require.NoError(t, err)

		_, err = svc.DeleteDriver(adminCtx, &dispatchv1.DeleteDriverRequest{Id: created.Driver.Id})
		require.NoError(t, err)

		reloaded, err := client.Task.Get(ctx, open.ID)
		require.NoError(t, err)
		assert.True(t, reloaded.IsBroadcast)
		assert.Nil(t, reloaded.AssignedTo)
		assert.Equal(t, task.StatusAssigned, reloaded.Status)
	})
}
