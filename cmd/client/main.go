// cmd/client/main.go walks the full dispatch flow against a running
// server: admin login, driver provisioning, broadcast task, claim,
// completion and receipt. Expects the seed accounts to exist.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"

	authv1 "github.com/omerfdemir/pickuptracker/api/proto/auth/v1/generated"
	dispatchv1 "github.com/omerfdemir/pickuptracker/api/proto/dispatch/v1/generated"
)

func main() {
	addr := "localhost:50051"
	if v := os.Getenv("GRPC_ADDR"); v != "" {
		addr = v
	}

	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer conn.Close()

	authClient := authv1.NewAuthServiceClient(conn)
	taskClient := dispatchv1.NewTaskServiceClient(conn)
	driverClient := dispatchv1.NewDriverServiceClient(conn)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	// Admin login
	fmt.Println("== Admin login ==")
	adminLogin, err := authClient.Login(ctx, &authv1.LoginRequest{
		Username: "admin",
		Password: envOr("SEED_ADMIN_PASSWORD", "AdminPass123"),
	})
	if err != nil {
		log.Fatalf("Admin login failed: %v", err)
	}
	adminCtx := withToken(ctx, adminLogin.AccessToken)
	fmt.Printf("Logged in as %s (role %s)\n", adminLogin.User.Username, adminLogin.User.Role)

	// Create a broadcast task
	fmt.Println("\n== Create broadcast task ==")
	created, err := taskClient.CreateTask(adminCtx, &dispatchv1.CreateTaskRequest{
		DonorName:    "Jane",
		Address:      "42 Elm Street",
		PhoneNumbers: "555-0142",
		Category:     dispatchv1.Category_CATEGORY_FURNITURE,
		IsUrgent:     true,
	})
	if err != nil {
		log.Fatalf("CreateTask failed: %v", err)
	}
	taskID := created.Task.Id
	fmt.Printf("Task %s created (broadcast=%v, status=%s)\n", taskID, created.Task.IsBroadcast, created.Task.Status)

	// Driver login
	fmt.Println("\n== Driver login ==")
	driverLogin, err := authClient.Login(ctx, &authv1.LoginRequest{
		Username: "driver",
		Password: envOr("SEED_DRIVER_PASSWORD", "DriverPass123"),
	})
	if err != nil {
		log.Fatalf("Driver login failed: %v", err)
	}
	driverCtx := withToken(ctx, driverLogin.AccessToken)

	// Queue shows the broadcast task
	queue, err := driverClient.GetQueue(driverCtx, &dispatchv1.GetQueueRequest{})
	if err != nil {
		log.Fatalf("GetQueue failed: %v", err)
	}
	fmt.Printf("Driver queue has %d open task(s)\n", len(queue.Tasks))

	// Claim and start
	fmt.Println("\n== Start (claim) task ==")
	started, err := driverClient.StartTask(driverCtx, &dispatchv1.StartTaskRequest{
		Id:       taskID,
		Location: &dispatchv1.GeoPoint{Latitude: 41.0082, Longitude: 28.9784},
	})
	if err != nil {
		log.Fatalf("StartTask failed: %v", err)
	}
	fmt.Printf("Task status: %s, assigned to %s\n", started.Task.Status, started.Task.AssignedToUsername)

	// Complete with items
	fmt.Println("\n== Complete task ==")
	completed, err := driverClient.CompleteTask(driverCtx, &dispatchv1.CompleteTaskRequest{
		Id:                taskID,
		VisitorFormFilled: true,
		TrustNoticeGiven:  true,
		Items: []*dispatchv1.ItemInput{
			{Category: "Chairs", Quantity: 2, Condition: dispatchv1.ItemCondition_ITEM_CONDITION_GOOD},
			{Category: "Table", Quantity: 1, Condition: dispatchv1.ItemCondition_ITEM_CONDITION_AVERAGE},
		},
		Location: &dispatchv1.GeoPoint{Latitude: 41.0082, Longitude: 28.9784},
	})
	if err != nil {
		log.Fatalf("CompleteTask failed: %v", err)
	}
	fmt.Printf("Task status: %s\n", completed.Task.Status)
	fmt.Printf("Receipt: %s\n", completed.ReceiptText)

	// Admin export
	fmt.Println("\n== Export CSV ==")
	export, err := taskClient.ExportTasks(adminCtx, &dispatchv1.ExportTasksRequest{})
	if err != nil {
		log.Fatalf("ExportTasks failed: %v", err)
	}
	fmt.Printf("Export %s (%d bytes)\n", export.FileName, len(export.CsvData))

	// Dashboard
	stats, err := taskClient.GetDashboardStats(adminCtx, &dispatchv1.GetDashboardStatsRequest{})
	if err != nil {
		log.Fatalf("GetDashboardStats failed: %v", err)
	}
	fmt.Printf("Dashboard: total=%d pending=%d urgent=%d completed=%d\n",
		stats.TotalTasks, stats.PendingTasks, stats.UrgentTasks, stats.CompletedTasks)
}

func withToken(ctx context.Context, token string) context.Context {
	return metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+token)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
