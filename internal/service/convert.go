// internal/service/convert.go
package service

import (
	"google.golang.org/protobuf/types/known/timestamppb"

	dispatchv1 "github.com/omerfdemir/pickuptracker/api/proto/dispatch/v1/generated"
	ent "github.com/omerfdemir/pickuptracker/ent/generated"
	"github.com/omerfdemir/pickuptracker/ent/generated/item"
	"github.com/omerfdemir/pickuptracker/ent/generated/locationlog"
	"github.com/omerfdemir/pickuptracker/ent/generated/task"
	"github.com/omerfdemir/pickuptracker/ent/generated/taskphoto"
)

// Proto <-> ent enum conversions for the dispatch surface.

func convertStatusToProto(s task.Status) dispatchv1.TaskStatus {
	switch s {
	case task.StatusAssigned:
		return dispatchv1.TaskStatus_TASK_STATUS_ASSIGNED
	case task.StatusInProgress:
		return dispatchv1.TaskStatus_TASK_STATUS_IN_PROGRESS
	case task.StatusCompleted:
		return dispatchv1.TaskStatus_TASK_STATUS_COMPLETED
	case task.StatusCancelled:
		return dispatchv1.TaskStatus_TASK_STATUS_CANCELLED
	default:
		return dispatchv1.TaskStatus_TASK_STATUS_UNSPECIFIED
	}
}

func convertProtoToStatus(s dispatchv1.TaskStatus) (task.Status, bool) {
	switch s {
	case dispatchv1.TaskStatus_TASK_STATUS_ASSIGNED:
		return task.StatusAssigned, true
	case dispatchv1.TaskStatus_TASK_STATUS_IN_PROGRESS:
		return task.StatusInProgress, true
	case dispatchv1.TaskStatus_TASK_STATUS_COMPLETED:
		return task.StatusCompleted, true
	case dispatchv1.TaskStatus_TASK_STATUS_CANCELLED:
		return task.StatusCancelled, true
	default:
		return "", false
	}
}

func convertCategoryToProto(c task.Category) dispatchv1.Category {
	switch c {
	case task.CategoryFurniture:
		return dispatchv1.Category_CATEGORY_FURNITURE
	case task.CategoryClothes:
		return dispatchv1.Category_CATEGORY_CLOTHES
	case task.CategoryElectronics:
		return dispatchv1.Category_CATEGORY_ELECTRONICS
	case task.CategoryFood:
		return dispatchv1.Category_CATEGORY_FOOD
	case task.CategoryBooks:
		return dispatchv1.Category_CATEGORY_BOOKS
	case task.CategoryOther:
		return dispatchv1.Category_CATEGORY_OTHER
	default:
		return dispatchv1.Category_CATEGORY_UNSPECIFIED
	}
}

func convertProtoToCategory(c dispatchv1.Category) task.Category {
	switch c {
	case dispatchv1.Category_CATEGORY_FURNITURE:
		return task.CategoryFurniture
	case dispatchv1.Category_CATEGORY_CLOTHES:
		return task.CategoryClothes
	case dispatchv1.Category_CATEGORY_ELECTRONICS:
		return task.CategoryElectronics
	case dispatchv1.Category_CATEGORY_FOOD:
		return task.CategoryFood
	case dispatchv1.Category_CATEGORY_BOOKS:
		return task.CategoryBooks
	default:
		return task.CategoryOther
	}
}

func convertConditionToProto(c item.Condition) dispatchv1.ItemCondition {
	switch c {
	case item.ConditionGood:
		return dispatchv1.ItemCondition_ITEM_CONDITION_GOOD
	case item.ConditionAverage:
		return dispatchv1.ItemCondition_ITEM_CONDITION_AVERAGE
	case item.ConditionPoor:
		return dispatchv1.ItemCondition_ITEM_CONDITION_POOR
	default:
		return dispatchv1.ItemCondition_ITEM_CONDITION_UNSPECIFIED
	}
}

func convertProtoToCondition(c dispatchv1.ItemCondition) item.Condition {
	switch c {
	case dispatchv1.ItemCondition_ITEM_CONDITION_AVERAGE:
		return item.ConditionAverage
	case dispatchv1.ItemCondition_ITEM_CONDITION_POOR:
		return item.ConditionPoor
	default:
		return item.ConditionGood
	}
}

func convertPhotoTypeToProto(t taskphoto.PhotoType) dispatchv1.PhotoType {
	switch t {
	case taskphoto.PhotoTypeItem:
		return dispatchv1.PhotoType_PHOTO_TYPE_ITEM
	case taskphoto.PhotoTypeDonor:
		return dispatchv1.PhotoType_PHOTO_TYPE_DONOR
	case taskphoto.PhotoTypeVisitorForm:
		return dispatchv1.PhotoType_PHOTO_TYPE_VISITOR_FORM
	case taskphoto.PhotoTypeOther:
		return dispatchv1.PhotoType_PHOTO_TYPE_OTHER
	default:
		return dispatchv1.PhotoType_PHOTO_TYPE_UNSPECIFIED
	}
}

func convertProtoToPhotoType(t dispatchv1.PhotoType) taskphoto.PhotoType {
	switch t {
	case dispatchv1.PhotoType_PHOTO_TYPE_DONOR:
		return taskphoto.PhotoTypeDonor
	case dispatchv1.PhotoType_PHOTO_TYPE_VISITOR_FORM:
		return taskphoto.PhotoTypeVisitorForm
	case dispatchv1.PhotoType_PHOTO_TYPE_OTHER:
		return taskphoto.PhotoTypeOther
	default:
		return taskphoto.PhotoTypeItem
	}
}

func convertLocationEventToProto(e locationlog.Event) dispatchv1.LocationEvent {
	switch e {
	case locationlog.EventStart:
		return dispatchv1.LocationEvent_LOCATION_EVENT_START
	case locationlog.EventComplete:
		return dispatchv1.LocationEvent_LOCATION_EVENT_COMPLETE
	default:
		return dispatchv1.LocationEvent_LOCATION_EVENT_UNSPECIFIED
	}
}

// convertTaskToProto maps a task and its loaded edges to the wire type.
func convertTaskToProto(t *ent.Task) *dispatchv1.Task {
	proto := &dispatchv1.Task{
		Id:                t.ID.String(),
		DonorName:         t.DonorName,
		Address:           t.Address,
		PhoneNumbers:      t.PhoneNumbers,
		LocationLink:      t.LocationLink,
		Category:          convertCategoryToProto(t.Category),
		IsUrgent:          t.IsUrgent,
		IsBroadcast:       t.IsBroadcast,
		Status:            convertStatusToProto(t.Status),
		CreatedById:       t.CreatedBy.String(),
		VisitorFormFilled: t.VisitorFormFilled,
		TrustNoticeGiven:  t.TrustNoticeGiven,
		CreatedAt:         timestamppb.New(t.CreatedAt),
		UpdatedAt:         timestamppb.New(t.UpdatedAt),
	}

	if t.Quantity != nil {
		proto.Quantity = *t.Quantity
	}

	if t.AssignedTo != nil {
		proto.AssignedToId = t.AssignedTo.String()
	}
	if t.Edges.Assignee != nil {
		proto.AssignedToUsername = t.Edges.Assignee.Username
	}

	if t.CompletedAt != nil {
		proto.CompletedAt = timestamppb.New(*t.CompletedAt)
	}

	for _, it := range t.Edges.Items {
		proto.Items = append(proto.Items, convertItemToProto(it))
	}
	for _, p := range t.Edges.Photos {
		proto.Photos = append(proto.Photos, convertPhotoToProto(p))
	}
	for _, l := range t.Edges.LocationLogs {
		proto.LocationLogs = append(proto.LocationLogs, convertLocationLogToProto(l))
	}

	return proto
}

func convertItemToProto(it *ent.Item) *dispatchv1.Item {
	return &dispatchv1.Item{
		Id:        it.ID.String(),
		Category:  it.Category,
		Quantity:  it.Quantity,
		Condition: convertConditionToProto(it.Condition),
	}
}

func convertPhotoToProto(p *ent.TaskPhoto) *dispatchv1.TaskPhoto {
	return &dispatchv1.TaskPhoto{
		Id:         p.ID.String(),
		FilePath:   p.FilePath,
		PhotoType:  convertPhotoTypeToProto(p.PhotoType),
		UploadedAt: timestamppb.New(p.UploadedAt),
	}
}

func convertLocationLogToProto(l *ent.LocationLog) *dispatchv1.LocationLog {
	return &dispatchv1.LocationLog{
		Id:        l.ID.String(),
		Latitude:  l.Latitude,
		Longitude: l.Longitude,
		Event:     convertLocationEventToProto(l.Event),
		Timestamp: timestamppb.New(l.Timestamp),
	}
}

func convertDriverToProto(u *ent.User) *dispatchv1.Driver {
	return &dispatchv1.Driver{
		Id:          u.ID.String(),
		Username:    u.Username,
		PhoneNumber: u.PhoneNumber,
		CreatedAt:   timestamppb.New(u.CreatedAt),
	}
}
