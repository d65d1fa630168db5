// internal/middleware/validation_test.go
package middleware

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	dispatchv1 "github.com/omerfdemir/pickuptracker/api/proto/dispatch/v1/generated"
)

const testTaskID = "11111111-1111-1111-1111-111111111111"

// runValidation pushes a request through the interceptor and reports
// whether it reached the handler.
func runValidation(t *testing.T, req interface{}) (bool, error) {
	t.Helper()

	interceptor := NewValidationInterceptor(nil)
	handlerCalled := false
	_, err := interceptor.Unary()(
		context.Background(),
		req,
		&grpc.UnaryServerInfo{FullMethod: "/dispatch.v1.DriverService/CompleteTask"},
		func(ctx context.Context, req interface{}) (interface{}, error) {
			handlerCalled = true
			return nil, nil
		},
	)
	return handlerCalled, err
}

func TestValidationInterceptor_CompleteTaskRequest(t *testing.T) {
	valid := func() *dispatchv1.CompleteTaskRequest {
		return &dispatchv1.CompleteTaskRequest{
			Id: testTaskID,
			Items: []*dispatchv1.ItemInput{
				{Category: "Chairs", Quantity: 2},
			},
			Photos: []*dispatchv1.PhotoUpload{
				{Data: []byte("image bytes"), FileName: "sofa.jpg"},
			},
			Location: &dispatchv1.GeoPoint{Latitude: 41.0082, Longitude: 28.9784},
		}
	}

	tests := []struct {
		name    string
		mutate  func(req *dispatchv1.CompleteTaskRequest)
		wantErr string
	}{
		{
			name:   "valid request passes",
			mutate: func(req *dispatchv1.CompleteTaskRequest) {},
		},
		{
			name: "missing task ID",
			mutate: func(req *dispatchv1.CompleteTaskRequest) {
				req.Id = ""
			},
			wantErr: "task ID is required",
		},
		{
			name: "malformed task ID",
			mutate: func(req *dispatchv1.CompleteTaskRequest) {
				req.Id = "not-a-uuid"
			},
			wantErr: "invalid task ID format",
		},
		{
			name: "zero quantity item",
			mutate: func(req *dispatchv1.CompleteTaskRequest) {
				req.Items[0].Quantity = 0
			},
			wantErr: "items[0]: quantity must be at least 1",
		},
		{
			name: "blank item category",
			mutate: func(req *dispatchv1.CompleteTaskRequest) {
				req.Items[0].Category = "   "
			},
			wantErr: "items[0]: category is required",
		},
		{
			name: "empty photo data",
			mutate: func(req *dispatchv1.CompleteTaskRequest) {
				req.Photos[0].Data = nil
			},
			wantErr: "photos[0]: image data is required",
		},
		{
			name: "latitude out of range",
			mutate: func(req *dispatchv1.CompleteTaskRequest) {
				req.Location.Latitude = 91
			},
			wantErr: "latitude must be between -90 and 90",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid()
			tt.mutate(req)

			handlerCalled, err := runValidation(t, req)

			if tt.wantErr == "" {
				require.NoError(t, err)
				assert.True(t, handlerCalled)
				return
			}

			require.Error(t, err)
			assert.Equal(t, codes.InvalidArgument, status.Code(err))
			assert.Contains(t, err.Error(), tt.wantErr)
			// Invalid requests are rejected whole before any handler runs
			assert.False(t, handlerCalled)
		})
	}
}

func TestValidationInterceptor_CompleteTaskRequest_AllErrorsReported(t *testing.T) {
	req := &dispatchv1.CompleteTaskRequest{
		Id: testTaskID,
		Items: []*dispatchv1.ItemInput{
			{Category: "Chairs", Quantity: 2},
			{Category: "", Quantity: 0},
		},
	}

	handlerCalled, err := runValidation(t, req)
	require.Error(t, err)
	assert.False(t, handlerCalled)
	assert.Contains(t, err.Error(), "items[1]: category is required")
	assert.Contains(t, err.Error(), "items[1]: quantity must be at least 1")
}
