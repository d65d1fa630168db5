// internal/service/driver_service_test.go
package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	dispatchv1 "github.com/omerfdemir/pickuptracker/api/proto/dispatch/v1/generated"
	ent "github.com/omerfdemir/pickuptracker/ent/generated"
	"github.com/omerfdemir/pickuptracker/ent/generated/securityevent"
	"github.com/omerfdemir/pickuptracker/ent/generated/task"
	"github.com/omerfdemir/pickuptracker/internal/repository"
	"github.com/omerfdemir/pickuptracker/internal/storage"

	_ "github.com/mattn/go-sqlite3"
)

func newTestDriverService(t *testing.T, client *ent.Client) (*DriverService, string) {
	mediaRoot := t.TempDir()
	securityLogger := NewSecurityLogger(NewSecurityService(client))
	svc := NewDriverService(
		repository.NewEntTaskRepository(client),
		storage.NewPhotoStore(mediaRoot),
		securityLogger,
	)
	return svc, mediaRoot
}

func createBroadcastTask(t *testing.T, client *ent.Client, admin *ent.User, donor string, urgent bool) *ent.Task {
	repo := repository.NewEntTaskRepository(client)
	created, err := repo.Create(context.Background(), &repository.TaskInput{
		DonorName: donor,
		Address:   "42 Elm Street",
		Category:  task.CategoryFurniture,
		IsUrgent:  urgent,
		CreatorID: admin.ID,
	})
	require.NoError(t, err)
	return created
}

func createAssignedTask(t *testing.T, client *ent.Client, admin, driver *ent.User, donor string) *ent.Task {
	repo := repository.NewEntTaskRepository(client)
	driverID := driver.ID
	created, err := repo.Create(context.Background(), &repository.TaskInput{
		DonorName:  donor,
		Category:   task.CategoryOther,
		CreatorID:  admin.ID,
		AssigneeID: &driverID,
	})
	require.NoError(t, err)
	return created
}

func TestDriverService_GetQueue(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	helpers := NewTestHelpers(t, client)
	admin := helpers.CreateAdminUser("admin1", "TestPass123!")
	driver := helpers.CreateDriverUser("driver1", "TestPass123!")
	other := helpers.CreateDriverUser("driver2", "TestPass123!")

	svc, _ := newTestDriverService(t, client)

	createBroadcastTask(t, client, admin, "Broadcast", false)
	createAssignedTask(t, client, admin, driver, "Mine")
	urgent := createBroadcastTask(t, client, admin, "Urgent", true)
	theirs := createAssignedTask(t, client, admin, other, "Theirs")
	_ = theirs

	// Completed tasks stay out of the queue
	done := createAssignedTask(t, client, admin, driver, "Done")
	repo := repository.NewEntTaskRepository(client)
	_, err := repo.Start(context.Background(), done.ID, driver.ID, nil)
	require.NoError(t, err)
	_, err = repo.Complete(context.Background(), &repository.CompleteInput{
		TaskID:   done.ID,
		DriverID: driver.ID,
	})
	require.NoError(t, err)

	resp, err := svc.GetQueue(helpers.AuthedContext(driver), &dispatchv1.GetQueueRequest{})
	require.NoError(t, err)

	require.Len(t, resp.Tasks, 3)
	// Urgent first, then newest
	assert.Equal(t, urgent.ID.String(), resp.Tasks[0].Id)
	assert.Equal(t, "Mine", resp.Tasks[1].DonorName)
	assert.Equal(t, "Broadcast", resp.Tasks[2].DonorName)

	assert.Equal(t, int32(4), resp.TotalTasks)
	assert.Equal(t, int32(0), resp.InProgressTasks)
	assert.Equal(t, int32(1), resp.CompletedTasks)

	t.Run("admins are rejected", func(t *testing.T) {
		_, err := svc.GetQueue(helpers.AuthedContext(admin), &dispatchv1.GetQueueRequest{})
		require.Error(t, err)
		assert.Equal(t, codes.PermissionDenied, status.Code(err))
	})
}

func TestDriverService_GetTask_Visibility(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	helpers := NewTestHelpers(t, client)
	admin := helpers.CreateAdminUser("admin1", "TestPass123!")
	driver := helpers.CreateDriverUser("driver1", "TestPass123!")
	other := helpers.CreateDriverUser("driver2", "TestPass123!")

	svc, _ := newTestDriverService(t, client)

	broadcast := createBroadcastTask(t, client, admin, "Broadcast", false)
	theirs := createAssignedTask(t, client, admin, other, "Theirs")

	// Broadcast tasks are visible to any driver
	resp, err := svc.GetTask(helpers.AuthedContext(driver), &dispatchv1.GetTaskRequest{Id: broadcast.ID.String()})
	require.NoError(t, err)
	assert.Equal(t, "Broadcast", resp.Task.DonorName)

	// Another driver's task is not
	_, err = svc.GetTask(helpers.AuthedContext(driver), &dispatchv1.GetTaskRequest{Id: theirs.ID.String()})
	require.Error(t, err)
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestDriverService_StartTask_ClaimsBroadcast(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	helpers := NewTestHelpers(t, client)
	admin := helpers.CreateAdminUser("admin1", "TestPass123!")
	winner := helpers.CreateDriverUser("driver1", "TestPass123!")
	loser := helpers.CreateDriverUser("driver2", "TestPass123!")

	svc, _ := newTestDriverService(t, client)
	broadcast := createBroadcastTask(t, client, admin, "Jane", false)

	resp, err := svc.StartTask(helpers.AuthedContext(winner), &dispatchv1.StartTaskRequest{
		Id:       broadcast.ID.String(),
		Location: &dispatchv1.GeoPoint{Latitude: 41.0082, Longitude: 28.9784},
	})
	require.NoError(t, err)
	assert.Equal(t, dispatchv1.TaskStatus_TASK_STATUS_IN_PROGRESS, resp.Task.Status)
	assert.False(t, resp.Task.IsBroadcast)
	assert.Equal(t, winner.ID.String(), resp.Task.AssignedToId)
	require.Len(t, resp.Task.LocationLogs, 1)
	assert.Equal(t, dispatchv1.LocationEvent_LOCATION_EVENT_START, resp.Task.LocationLogs[0].Event)

	// The second claim loses and the conflict is recorded
	_, err = svc.StartTask(helpers.AuthedContext(loser), &dispatchv1.StartTaskRequest{
		Id: broadcast.ID.String(),
	})
	require.Error(t, err)
	assert.Equal(t, codes.Aborted, status.Code(err))

	conflicts, err := client.SecurityEvent.Query().
		Where(securityevent.EventTypeEQ(securityevent.EventTypeTaskClaimConflict)).
		Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, conflicts)
}

func TestDriverService_StartTask_Errors(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	helpers := NewTestHelpers(t, client)
	admin := helpers.CreateAdminUser("admin1", "TestPass123!")
	driver := helpers.CreateDriverUser("driver1", "TestPass123!")
	other := helpers.CreateDriverUser("driver2", "TestPass123!")

	svc, _ := newTestDriverService(t, client)
	driverCtx := helpers.AuthedContext(driver)

	t.Run("another driver's task is not found", func(t *testing.T) {
		theirs := createAssignedTask(t, client, admin, other, "Theirs")
		_, err := svc.StartTask(driverCtx, &dispatchv1.StartTaskRequest{Id: theirs.ID.String()})
		require.Error(t, err)
		assert.Equal(t, codes.NotFound, status.Code(err))
	})

	t.Run("cancelled task cannot be started", func(t *testing.T) {
		mine := createAssignedTask(t, client, admin, driver, "Mine")
		_, err := client.Task.UpdateOneID(mine.ID).SetStatus(task.StatusCancelled).Save(context.Background())
		require.NoError(t, err)

		_, err = svc.StartTask(driverCtx, &dispatchv1.StartTaskRequest{Id: mine.ID.String()})
		require.Error(t, err)
		assert.Equal(t, codes.FailedPrecondition, status.Code(err))
	})
}

func TestDriverService_CompleteTask(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	helpers := NewTestHelpers(t, client)
	admin := helpers.CreateAdminUser("admin1", "TestPass123!")
	driver := helpers.CreateDriverUser("driver1", "TestPass123!")
	driverCtx := helpers.AuthedContext(driver)

	svc, mediaRoot := newTestDriverService(t, client)

	broadcast := createBroadcastTask(t, client, admin, "Jane", true)
	_, err := svc.StartTask(driverCtx, &dispatchv1.StartTaskRequest{Id: broadcast.ID.String()})
	require.NoError(t, err)

	resp, err := svc.CompleteTask(driverCtx, &dispatchv1.CompleteTaskRequest{
		Id:                broadcast.ID.String(),
		VisitorFormFilled: true,
		TrustNoticeGiven:  true,
		Items: []*dispatchv1.ItemInput{
			{Category: "Chairs", Quantity: 2, Condition: dispatchv1.ItemCondition_ITEM_CONDITION_GOOD},
			{Category: "Table", Quantity: 1, Condition: dispatchv1.ItemCondition_ITEM_CONDITION_AVERAGE},
		},
		Photos: []*dispatchv1.PhotoUpload{
			{Data: []byte("fake image bytes"), FileName: "sofa.jpg", PhotoType: dispatchv1.PhotoType_PHOTO_TYPE_ITEM},
		},
		Location: &dispatchv1.GeoPoint{Latitude: 41.0082, Longitude: 28.9784},
	})
	require.NoError(t, err)

	assert.Equal(t, dispatchv1.TaskStatus_TASK_STATUS_COMPLETED, resp.Task.Status)
	assert.NotNil(t, resp.Task.CompletedAt)
	assert.True(t, resp.Task.VisitorFormFilled)
	assert.True(t, resp.Task.TrustNoticeGiven)

	require.Len(t, resp.Task.Items, 2)
	assert.Equal(t, "Chairs", resp.Task.Items[0].Category)
	assert.Equal(t, "Table", resp.Task.Items[1].Category)

	require.Len(t, resp.Task.Photos, 1)
	stored := resp.Task.Photos[0].FilePath
	assert.Contains(t, stored, "task_photos/")
	data, err := os.ReadFile(filepath.Join(mediaRoot, filepath.FromSlash(stored)))
	require.NoError(t, err)
	assert.Equal(t, []byte("fake image bytes"), data)

	require.Len(t, resp.Task.LocationLogs, 1)
	assert.Equal(t, dispatchv1.LocationEvent_LOCATION_EVENT_COMPLETE, resp.Task.LocationLogs[0].Event)

	assert.Equal(t, "Donation Receipt - Donor: Jane. Items: 2 Chairs, 1 Table. Thank you!", resp.ReceiptText)

	t.Run("cannot complete twice", func(t *testing.T) {
		_, err := svc.CompleteTask(driverCtx, &dispatchv1.CompleteTaskRequest{Id: broadcast.ID.String()})
		require.Error(t, err)
		assert.Equal(t, codes.FailedPrecondition, status.Code(err))
	})
}

func TestDriverService_CompleteTask_InvalidItemPersistsNothing(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	helpers := NewTestHelpers(t, client)
	admin := helpers.CreateAdminUser("admin1", "TestPass123!")
	driver := helpers.CreateDriverUser("driver1", "TestPass123!")
	driverCtx := helpers.AuthedContext(driver)

	svc, _ := newTestDriverService(t, client)

	broadcast := createBroadcastTask(t, client, admin, "Jane", false)
	_, err := svc.StartTask(driverCtx, &dispatchv1.StartTaskRequest{Id: broadcast.ID.String()})
	require.NoError(t, err)

	// One bad item row rejects the whole submission
	_, err = svc.CompleteTask(driverCtx, &dispatchv1.CompleteTaskRequest{
		Id:                broadcast.ID.String(),
		VisitorFormFilled: true,
		TrustNoticeGiven:  true,
		Items: []*dispatchv1.ItemInput{
			{Category: "Chairs", Quantity: 2, Condition: dispatchv1.ItemCondition_ITEM_CONDITION_GOOD},
			{Category: "Table", Quantity: 0, Condition: dispatchv1.ItemCondition_ITEM_CONDITION_AVERAGE},
		},
		Photos: []*dispatchv1.PhotoUpload{
			{Data: []byte("fake image bytes"), FileName: "sofa.jpg", PhotoType: dispatchv1.PhotoType_PHOTO_TYPE_ITEM},
		},
		Location: &dispatchv1.GeoPoint{Latitude: 41.0082, Longitude: 28.9784},
	})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	// The transaction rolled back whole: no flags, no items, no photos,
	// no completion log
	ctx := context.Background()
	reloaded, err := client.Task.Get(ctx, broadcast.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusInProgress, reloaded.Status)
	assert.Nil(t, reloaded.CompletedAt)
	assert.False(t, reloaded.VisitorFormFilled)
	assert.False(t, reloaded.TrustNoticeGiven)

	items, err := client.Item.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, items)

	photos, err := client.TaskPhoto.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, photos)

	logs, err := client.LocationLog.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, logs)

	// A corrected submission still goes through
	resp, err := svc.CompleteTask(driverCtx, &dispatchv1.CompleteTaskRequest{
		Id:    broadcast.ID.String(),
		Items: []*dispatchv1.ItemInput{{Category: "Chairs", Quantity: 2}},
	})
	require.NoError(t, err)
	assert.Equal(t, dispatchv1.TaskStatus_TASK_STATUS_COMPLETED, resp.Task.Status)
}

func TestDriverService_CompleteTask_ItemOrderPreserved(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	helpers := NewTestHelpers(t, client)
	admin := helpers.CreateAdminUser("admin1", "TestPass123!")
	driver := helpers.CreateDriverUser("driver1", "TestPass123!")
	driverCtx := helpers.AuthedContext(driver)

	svc, _ := newTestDriverService(t, client)

	broadcast := createBroadcastTask(t, client, admin, "Jane", false)
	_, err := svc.StartTask(driverCtx, &dispatchv1.StartTaskRequest{Id: broadcast.ID.String()})
	require.NoError(t, err)

	resp, err := svc.CompleteTask(driverCtx, &dispatchv1.CompleteTaskRequest{
		Id: broadcast.ID.String(),
		Items: []*dispatchv1.ItemInput{
			{Category: "Table", Quantity: 1},
			{Category: "Chairs", Quantity: 4},
			{Category: "Books", Quantity: 12},
			{Category: "Lamp", Quantity: 2},
		},
	})
	require.NoError(t, err)

	require.Len(t, resp.Task.Items, 4)
	got := make([]string, len(resp.Task.Items))
	for i, it := range resp.Task.Items {
		got[i] = it.Category
	}
	assert.Equal(t, []string{"Table", "Chairs", "Books", "Lamp"}, got)

	assert.Equal(t, "Donation Receipt - Donor: Jane. Items: 1 Table, 4 Chairs, 12 Books, 2 Lamp. Thank you!", resp.ReceiptText)
}

func TestDriverService_CompleteTask_RequiresClaim(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	helpers := NewTestHelpers(t, client)
	admin := helpers.CreateAdminUser("admin1", "TestPass123!")
	driver := helpers.CreateDriverUser("driver1", "TestPass123!")

	svc, _ := newTestDriverService(t, client)

	// A broadcast task has to be started (claimed) before completion
	broadcast := createBroadcastTask(t, client, admin, "Jane", false)
	_, err := svc.CompleteTask(helpers.AuthedContext(driver), &dispatchv1.CompleteTaskRequest{
		Id: broadcast.ID.String(),
	})
	require.Error(t, err)
	assert.Equal(t, codes.PermissionDenied, status.Code(err))

	// Nothing was persisted
	reloaded, err := client.Task.Get(context.Background(), broadcast.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusAssigned, reloaded.Status)
	assert.True(t, reloaded.IsBroadcast)
}

func TestDriverService_GetReceipt(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	helpers := NewTestHelpers(t, client)
	admin := helpers.CreateAdminUser("admin1", "TestPass123!")
	driver := helpers.CreateDriverUser("driver1", "TestPass123!")
	other := helpers.CreateDriverUser("driver2", "TestPass123!")
	driverCtx := helpers.AuthedContext(driver)

	svc, _ := newTestDriverService(t, client)

	broadcast := createBroadcastTask(t, client, admin, "Jane", false)
	_, err := svc.StartTask(driverCtx, &dispatchv1.StartTaskRequest{Id: broadcast.ID.String()})
	require.NoError(t, err)
	_, err = svc.CompleteTask(driverCtx, &dispatchv1.CompleteTaskRequest{
		Id:    broadcast.ID.String(),
		Items: []*dispatchv1.ItemInput{{Category: "Chairs", Quantity: 2}},
	})
	require.NoError(t, err)

	want := "Donation Receipt - Donor: Jane. Items: 2 Chairs. Thank you!"

	// The assigned driver sees the receipt
	resp, err := svc.GetReceipt(driverCtx, &dispatchv1.GetReceiptRequest{Id: broadcast.ID.String()})
	require.NoError(t, err)
	assert.Equal(t, want, resp.ReceiptText)

	// So does an admin
	resp, err = svc.GetReceipt(helpers.AuthedContext(admin), &dispatchv1.GetReceiptRequest{Id: broadcast.ID.String()})
	require.NoError(t, err)
	assert.Equal(t, want, resp.ReceiptText)

	// Other drivers do not
	_, err = svc.GetReceipt(helpers.AuthedContext(other), &dispatchv1.GetReceiptRequest{Id: broadcast.ID.String()})
	require.Error(t, err)
	assert.Equal(t, codes.PermissionDenied, status.Code(err))
}
