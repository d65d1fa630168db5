// internal/middleware/validation.go
package middleware

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	authv1 "github.com/omerfdemir/pickuptracker/api/proto/auth/v1/generated"
	dispatchv1 "github.com/omerfdemir/pickuptracker/api/proto/dispatch/v1/generated"
)

// ValidationConfig holds validation configuration
type ValidationConfig struct {
	MinPasswordLength     int
	MinUsernameLength     int
	MaxUsernameLength     int
	MaxDonorNameLength    int
	MaxAddressLength      int
	MaxPhoneNumbersLength int
	MaxLocationLinkLength int
	MaxItemCategoryLength int
	MaxItemsPerTask       int
	MaxPhotosPerTask      int
	MaxPhotoBytes         int
	MaxPageSize           int
}

// DefaultValidationConfig returns default validation configuration
func DefaultValidationConfig() *ValidationConfig {
	return &ValidationConfig{
		MinPasswordLength:     8,
		MinUsernameLength:     3,
		MaxUsernameLength:     50,
		MaxDonorNameLength:    255,
		MaxAddressLength:      5000,
		MaxPhoneNumbersLength: 255,
		MaxLocationLinkLength: 500,
		MaxItemCategoryLength: 100,
		MaxItemsPerTask:       100,
		MaxPhotosPerTask:      20,
		MaxPhotoBytes:         10 << 20,
		MaxPageSize:           100,
	}
}

// ValidationInterceptor validates requests before they reach the services.
// Validation here is all-or-nothing: a request with any invalid part is
// rejected whole and nothing is persisted.
type ValidationInterceptor struct {
	config *ValidationConfig
}

// NewValidationInterceptor creates a new validation interceptor
func NewValidationInterceptor(config *ValidationConfig) *ValidationInterceptor {
	if config == nil {
		config = DefaultValidationConfig()
	}
	return &ValidationInterceptor{
		config: config,
	}
}

// Unary returns a unary server interceptor for request validation
func (v *ValidationInterceptor) Unary() grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		if err := v.validateRequest(req); err != nil {
			return nil, err
		}

		return handler(ctx, req)
	}
}

// Stream returns a stream server interceptor. There are no streaming
// endpoints with request payloads to validate, so it passes through.
func (v *ValidationInterceptor) Stream() grpc.StreamServerInterceptor {
	return func(
		srv interface{},
		stream grpc.ServerStream,
		info *grpc.StreamServerInfo,
		handler grpc.StreamHandler,
	) error {
		return handler(srv, stream)
	}
}

// validateRequest validates different request types
func (v *ValidationInterceptor) validateRequest(req interface{}) error {
	switch r := req.(type) {
	case *authv1.LoginRequest:
		return v.validateLoginRequest(r)
	case *dispatchv1.CreateTaskRequest:
		return v.validateCreateTaskRequest(r)
	case *dispatchv1.GetTaskRequest:
		return validateIDOnly(r.Id)
	case *dispatchv1.CancelTaskRequest:
		return validateIDOnly(r.Id)
	case *dispatchv1.ResetTaskRequest:
		return validateIDOnly(r.Id)
	case *dispatchv1.GetReceiptRequest:
		return validateIDOnly(r.Id)
	case *dispatchv1.DeleteDriverRequest:
		return validateIDOnly(r.Id)
	case *authv1.ResolveSecurityEventRequest:
		return validateIDOnly(r.Id)
	case *dispatchv1.ListTasksRequest:
		return v.validateListTasksRequest(r)
	case *dispatchv1.TaskHistoryRequest:
		return v.validateTaskHistoryRequest(r)
	case *dispatchv1.ExportTasksRequest:
		return v.validateExportTasksRequest(r)
	case *dispatchv1.CreateDriverRequest:
		return v.validateCreateDriverRequest(r)
	case *dispatchv1.StartTaskRequest:
		return v.validateStartTaskRequest(r)
	case *dispatchv1.CompleteTaskRequest:
		return v.validateCompleteTaskRequest(r)
	}

	return nil
}

func (v *ValidationInterceptor) validateLoginRequest(req *authv1.LoginRequest) error {
	var errs []string

	if req.Username == "" {
		errs = append(errs, "username is required")
	} else if len(req.Username) > v.config.MaxUsernameLength {
		errs = append(errs, fmt.Sprintf("username too long (max %d characters)", v.config.MaxUsernameLength))
	}

	if req.Password == "" {
		errs = append(errs, "password is required")
	}

	return joinErrors(errs)
}

func (v *ValidationInterceptor) validateCreateTaskRequest(req *dispatchv1.CreateTaskRequest) error {
	var errs []string

	if strings.TrimSpace(req.DonorName) == "" {
		errs = append(errs, "donor_name is required")
	} else if len(req.DonorName) > v.config.MaxDonorNameLength {
		errs = append(errs, fmt.Sprintf("donor_name too long (max %d characters)", v.config.MaxDonorNameLength))
	}

	if len(req.Address) > v.config.MaxAddressLength {
		errs = append(errs, fmt.Sprintf("address too long (max %d characters)", v.config.MaxAddressLength))
	}

	if len(req.PhoneNumbers) > v.config.MaxPhoneNumbersLength {
		errs = append(errs, fmt.Sprintf("phone_numbers too long (max %d characters)", v.config.MaxPhoneNumbersLength))
	}

	if len(req.LocationLink) > v.config.MaxLocationLinkLength {
		errs = append(errs, fmt.Sprintf("location_link too long (max %d characters)", v.config.MaxLocationLinkLength))
	}

	if req.AssignedToId != "" && !isValidUUID(req.AssignedToId) {
		errs = append(errs, "invalid assigned_to_id format")
	}

	return joinErrors(errs)
}

func (v *ValidationInterceptor) validateListTasksRequest(req *dispatchv1.ListTasksRequest) error {
	var errs []string

	errs = append(errs, validatePaging(req.PageSize, req.Page, v.config.MaxPageSize)...)
	errs = append(errs, validateDateRange(req.StartDate, req.EndDate)...)

	return joinErrors(errs)
}

func (v *ValidationInterceptor) validateTaskHistoryRequest(req *dispatchv1.TaskHistoryRequest) error {
	var errs []string

	errs = append(errs, validatePaging(req.PageSize, req.Page, v.config.MaxPageSize)...)
	errs = append(errs, validateDateRange(req.StartDate, req.EndDate)...)

	return joinErrors(errs)
}

func (v *ValidationInterceptor) validateExportTasksRequest(req *dispatchv1.ExportTasksRequest) error {
	return joinErrors(validateDateRange(req.StartDate, req.EndDate))
}

func (v *ValidationInterceptor) validateCreateDriverRequest(req *dispatchv1.CreateDriverRequest) error {
	var errs []string

	if req.Username == "" {
		errs = append(errs, "username is required")
	} else {
		if len(req.Username) < v.config.MinUsernameLength {
			errs = append(errs, fmt.Sprintf("username too short (min %d characters)", v.config.MinUsernameLength))
		}
		if len(req.Username) > v.config.MaxUsernameLength {
			errs = append(errs, fmt.Sprintf("username too long (max %d characters)", v.config.MaxUsernameLength))
		}
		if !usernameRegex.MatchString(req.Username) {
			errs = append(errs, "username can only contain letters, numbers, underscores, and hyphens")
		}
	}

	if req.Password == "" {
		errs = append(errs, "password is required")
	} else if len(req.Password) < v.config.MinPasswordLength {
		errs = append(errs, fmt.Sprintf("password too short (min %d characters)", v.config.MinPasswordLength))
	}

	if len(req.PhoneNumber) > 20 {
		errs = append(errs, "phone_number too long (max 20 characters)")
	}

	return joinErrors(errs)
}

func (v *ValidationInterceptor) validateStartTaskRequest(req *dispatchv1.StartTaskRequest) error {
	var errs []string

	if req.Id == "" {
		errs = append(errs, "task ID is required")
	} else if !isValidUUID(req.Id) {
		errs = append(errs, "invalid task ID format")
	}

	errs = append(errs, validateGeoPoint(req.Location)...)

	return joinErrors(errs)
}

func (v *ValidationInterceptor) validateCompleteTaskRequest(req *dispatchv1.CompleteTaskRequest) error {
	var errs []string

	if req.Id == "" {
		errs = append(errs, "task ID is required")
	} else if !isValidUUID(req.Id) {
		errs = append(errs, "invalid task ID format")
	}

	if len(req.Items) > v.config.MaxItemsPerTask {
		errs = append(errs, fmt.Sprintf("too many items (max %d)", v.config.MaxItemsPerTask))
	}

	for i, item := range req.Items {
		if strings.TrimSpace(item.Category) == "" {
			errs = append(errs, fmt.Sprintf("items[%d]: category is required", i))
		} else if len(item.Category) > v.config.MaxItemCategoryLength {
			errs = append(errs, fmt.Sprintf("items[%d]: category too long (max %d characters)", i, v.config.MaxItemCategoryLength))
		}
		if item.Quantity < 1 {
			errs = append(errs, fmt.Sprintf("items[%d]: quantity must be at least 1", i))
		}
	}

	if len(req.Photos) > v.config.MaxPhotosPerTask {
		errs = append(errs, fmt.Sprintf("too many photos (max %d)", v.config.MaxPhotosPerTask))
	}

	for i, photo := range req.Photos {
		if len(photo.Data) == 0 {
			errs = append(errs, fmt.Sprintf("photos[%d]: image data is required", i))
		} else if len(photo.Data) > v.config.MaxPhotoBytes {
			errs = append(errs, fmt.Sprintf("photos[%d]: image too large (max %d bytes)", i, v.config.MaxPhotoBytes))
		}
	}

	errs = append(errs, validateGeoPoint(req.Location)...)

	return joinErrors(errs)
}

// Helper validation functions

func validateIDOnly(id string) error {
	if id == "" {
		return status.Error(codes.InvalidArgument, "ID is required")
	}
	if !isValidUUID(id) {
		return status.Error(codes.InvalidArgument, "invalid ID format")
	}
	return nil
}

func validatePaging(pageSize, page int32, maxPageSize int) []string {
	var errs []string
	if pageSize < 0 {
		errs = append(errs, "page size cannot be negative")
	}
	if int(pageSize) > maxPageSize {
		errs = append(errs, fmt.Sprintf("page size cannot exceed %d", maxPageSize))
	}
	if page < 0 {
		errs = append(errs, "page cannot be negative")
	}
	return errs
}

// validateDateRange checks YYYY-MM-DD calendar dates.
func validateDateRange(startDate, endDate string) []string {
	var errs []string
	if startDate != "" {
		if _, err := time.Parse("2006-01-02", startDate); err != nil {
			errs = append(errs, "start_date must be in YYYY-MM-DD form")
		}
	}
	if endDate != "" {
		if _, err := time.Parse("2006-01-02", endDate); err != nil {
			errs = append(errs, "end_date must be in YYYY-MM-DD form")
		}
	}
	return errs
}

func validateGeoPoint(p *dispatchv1.GeoPoint) []string {
	if p == nil {
		return nil
	}
	var errs []string
	if p.Latitude < -90 || p.Latitude > 90 {
		errs = append(errs, "latitude must be between -90 and 90")
	}
	if p.Longitude < -180 || p.Longitude > 180 {
		errs = append(errs, "longitude must be between -180 and 180")
	}
	return errs
}

func joinErrors(errs []string) error {
	if len(errs) == 0 {
		return nil
	}
	return status.Error(codes.InvalidArgument, strings.Join(errs, "; "))
}

var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// isValidUUID checks if a string is a valid UUID format
func isValidUUID(s string) bool {
	return uuidRegex.MatchString(s)
}

var uuidRegex = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)
