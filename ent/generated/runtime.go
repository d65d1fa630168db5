// Code generated by ent, DO NOT EDIT.

package generated

import (
	"time"

	"github.com/google/uuid"
	"github.com/omerfdemir/pickuptracker/ent/generated/item"
	"github.com/omerfdemir/pickuptracker/ent/generated/locationlog"
	"github.com/omerfdemir/pickuptracker/ent/generated/securityevent"
	"github.com/omerfdemir/pickuptracker/ent/generated/task"
	"github.com/omerfdemir/pickuptracker/ent/generated/taskphoto"
	"github.com/omerfdemir/pickuptracker/ent/generated/user"
	"github.com/omerfdemir/pickuptracker/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	itemFields := schema.Item{}.Fields()
	_ = itemFields
	// itemDescCategory is the schema descriptor for category field.
	itemDescCategory := itemFields[2].Descriptor()
	// item.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	item.CategoryValidator = func() func(string) error {
		validators := itemDescCategory.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(category string) error {
			for _, fn := range fns {
				if err := fn(category); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// itemDescQuantity is the schema descriptor for quantity field.
	itemDescQuantity := itemFields[3].Descriptor()
	// item.DefaultQuantity holds the default value on creation for the quantity field.
	item.DefaultQuantity = itemDescQuantity.Default.(uint32)
	// item.QuantityValidator is a validator for the "quantity" field. It is called by the builders before save.
	item.QuantityValidator = itemDescQuantity.Validators[0].(func(uint32) error)
	// itemDescPosition is the schema descriptor for position field.
	itemDescPosition := itemFields[5].Descriptor()
	// item.DefaultPosition holds the default value on creation for the position field.
	item.DefaultPosition = itemDescPosition.Default.(uint32)
	// itemDescCreatedAt is the schema descriptor for created_at field.
	itemDescCreatedAt := itemFields[6].Descriptor()
	// item.DefaultCreatedAt holds the default value on creation for the created_at field.
	item.DefaultCreatedAt = itemDescCreatedAt.Default.(func() time.Time)
	// itemDescID is the schema descriptor for id field.
	itemDescID := itemFields[0].Descriptor()
	// item.DefaultID holds the default value on creation for the id field.
	item.DefaultID = itemDescID.Default.(func() uuid.UUID)
	locationlogFields := schema.LocationLog{}.Fields()
	_ = locationlogFields
	// locationlogDescTimestamp is the schema descriptor for timestamp field.
	locationlogDescTimestamp := locationlogFields[5].Descriptor()
	// locationlog.DefaultTimestamp holds the default value on creation for the timestamp field.
	locationlog.DefaultTimestamp = locationlogDescTimestamp.Default.(func() time.Time)
	// locationlogDescID is the schema descriptor for id field.
	locationlogDescID := locationlogFields[0].Descriptor()
	// locationlog.DefaultID holds the default value on creation for the id field.
	locationlog.DefaultID = locationlogDescID.Default.(func() uuid.UUID)
	securityeventFields := schema.SecurityEvent{}.Fields()
	_ = securityeventFields
	// securityeventDescMetadata is the schema descriptor for metadata field.
	securityeventDescMetadata := securityeventFields[6].Descriptor()
	// securityevent.DefaultMetadata holds the default value on creation for the metadata field.
	securityevent.DefaultMetadata = securityeventDescMetadata.Default.(map[string]interface{})
	// securityeventDescResolved is the schema descriptor for resolved field.
	securityeventDescResolved := securityeventFields[8].Descriptor()
	// securityevent.DefaultResolved holds the default value on creation for the resolved field.
	securityevent.DefaultResolved = securityeventDescResolved.Default.(bool)
	// securityeventDescCreatedAt is the schema descriptor for created_at field.
	securityeventDescCreatedAt := securityeventFields[9].Descriptor()
	// securityevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	securityevent.DefaultCreatedAt = securityeventDescCreatedAt.Default.(func() time.Time)
	// securityeventDescID is the schema descriptor for id field.
	securityeventDescID := securityeventFields[0].Descriptor()
	// securityevent.DefaultID holds the default value on creation for the id field.
	securityevent.DefaultID = securityeventDescID.Default.(func() uuid.UUID)
	taskFields := schema.Task{}.Fields()
	_ = taskFields
	// taskDescDonorName is the schema descriptor for donor_name field.
	taskDescDonorName := taskFields[1].Descriptor()
	// task.DonorNameValidator is a validator for the "donor_name" field. It is called by the builders before save.
	task.DonorNameValidator = func() func(string) error {
		validators := taskDescDonorName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(donor_name string) error {
			for _, fn := range fns {
				if err := fn(donor_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// taskDescPhoneNumbers is the schema descriptor for phone_numbers field.
	taskDescPhoneNumbers := taskFields[3].Descriptor()
	// task.PhoneNumbersValidator is a validator for the "phone_numbers" field. It is called by the builders before save.
	task.PhoneNumbersValidator = taskDescPhoneNumbers.Validators[0].(func(string) error)
	// taskDescLocationLink is the schema descriptor for location_link field.
	taskDescLocationLink := taskFields[4].Descriptor()
	// task.LocationLinkValidator is a validator for the "location_link" field. It is called by the builders before save.
	task.LocationLinkValidator = taskDescLocationLink.Validators[0].(func(string) error)
	// taskDescQuantity is the schema descriptor for quantity field.
	taskDescQuantity := taskFields[6].Descriptor()
	// task.QuantityValidator is a validator for the "quantity" field. It is called by the builders before save.
	task.QuantityValidator = taskDescQuantity.Validators[0].(func(uint32) error)
	// taskDescIsUrgent is the schema descriptor for is_urgent field.
	taskDescIsUrgent := taskFields[7].Descriptor()
	// task.DefaultIsUrgent holds the default value on creation for the is_urgent field.
	task.DefaultIsUrgent = taskDescIsUrgent.Default.(bool)
	// taskDescIsBroadcast is the schema descriptor for is_broadcast field.
	taskDescIsBroadcast := taskFields[8].Descriptor()
	// task.DefaultIsBroadcast holds the default value on creation for the is_broadcast field.
	task.DefaultIsBroadcast = taskDescIsBroadcast.Default.(bool)
	// taskDescVisitorFormFilled is the schema descriptor for visitor_form_filled field.
	taskDescVisitorFormFilled := taskFields[10].Descriptor()
	// task.DefaultVisitorFormFilled holds the default value on creation for the visitor_form_filled field.
	task.DefaultVisitorFormFilled = taskDescVisitorFormFilled.Default.(bool)
	// taskDescTrustNoticeGiven is the schema descriptor for trust_notice_given field.
	taskDescTrustNoticeGiven := taskFields[11].Descriptor()
	// task.DefaultTrustNoticeGiven holds the default value on creation for the trust_notice_given field.
	task.DefaultTrustNoticeGiven = taskDescTrustNoticeGiven.Default.(bool)
	// taskDescCreatedAt is the schema descriptor for created_at field.
	taskDescCreatedAt := taskFields[14].Descriptor()
	// task.DefaultCreatedAt holds the default value on creation for the created_at field.
	task.DefaultCreatedAt = taskDescCreatedAt.Default.(func() time.Time)
	// taskDescUpdatedAt is the schema descriptor for updated_at field.
	taskDescUpdatedAt := taskFields[15].Descriptor()
	// task.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	task.DefaultUpdatedAt = taskDescUpdatedAt.Default.(func() time.Time)
	// task.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	task.UpdateDefaultUpdatedAt = taskDescUpdatedAt.UpdateDefault.(func() time.Time)
	// taskDescID is the schema descriptor for id field.
	taskDescID := taskFields[0].Descriptor()
	// task.DefaultID holds the default value on creation for the id field.
	task.DefaultID = taskDescID.Default.(func() uuid.UUID)
	taskphotoFields := schema.TaskPhoto{}.Fields()
	_ = taskphotoFields
	// taskphotoDescFilePath is the schema descriptor for file_path field.
	taskphotoDescFilePath := taskphotoFields[2].Descriptor()
	// taskphoto.FilePathValidator is a validator for the "file_path" field. It is called by the builders before save.
	taskphoto.FilePathValidator = func() func(string) error {
		validators := taskphotoDescFilePath.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(file_path string) error {
			for _, fn := range fns {
				if err := fn(file_path); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// taskphotoDescUploadedAt is the schema descriptor for uploaded_at field.
	taskphotoDescUploadedAt := taskphotoFields[4].Descriptor()
	// taskphoto.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	taskphoto.DefaultUploadedAt = taskphotoDescUploadedAt.Default.(func() time.Time)
	// taskphotoDescID is the schema descriptor for id field.
	taskphotoDescID := taskphotoFields[0].Descriptor()
	// taskphoto.DefaultID holds the default value on creation for the id field.
	taskphoto.DefaultID = taskphotoDescID.Default.(func() uuid.UUID)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescUsername is the schema descriptor for username field.
	userDescUsername := userFields[1].Descriptor()
	// user.UsernameValidator is a validator for the "username" field. It is called by the builders before save.
	user.UsernameValidator = func() func(string) error {
		validators := userDescUsername.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
			validators[2].(func(string) error),
		}
		return func(username string) error {
			for _, fn := range fns {
				if err := fn(username); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescPasswordHash is the schema descriptor for password_hash field.
	userDescPasswordHash := userFields[2].Descriptor()
	// user.PasswordHashValidator is a validator for the "password_hash" field. It is called by the builders before save.
	user.PasswordHashValidator = userDescPasswordHash.Validators[0].(func(string) error)
	// userDescPhoneNumber is the schema descriptor for phone_number field.
	userDescPhoneNumber := userFields[3].Descriptor()
	// user.DefaultPhoneNumber holds the default value on creation for the phone_number field.
	user.DefaultPhoneNumber = userDescPhoneNumber.Default.(string)
	// user.PhoneNumberValidator is a validator for the "phone_number" field. It is called by the builders before save.
	user.PhoneNumberValidator = userDescPhoneNumber.Validators[0].(func(string) error)
	// userDescIsSuperuser is the schema descriptor for is_superuser field.
	userDescIsSuperuser := userFields[5].Descriptor()
	// user.DefaultIsSuperuser holds the default value on creation for the is_superuser field.
	user.DefaultIsSuperuser = userDescIsSuperuser.Default.(bool)
	// userDescFailedLoginAttempts is the schema descriptor for failed_login_attempts field.
	userDescFailedLoginAttempts := userFields[6].Descriptor()
	// user.DefaultFailedLoginAttempts holds the default value on creation for the failed_login_attempts field.
	user.DefaultFailedLoginAttempts = userDescFailedLoginAttempts.Default.(int)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[11].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userFields[12].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescID is the schema descriptor for id field.
	userDescID := userFields[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
}
