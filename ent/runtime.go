// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/estatedesk/backend/ent/activity"
	"github.com/estatedesk/backend/ent/deal"
	"github.com/estatedesk/backend/ent/formsubmission"
	"github.com/estatedesk/backend/ent/lead"
	"github.com/estatedesk/backend/ent/property"
	"github.com/estatedesk/backend/ent/schema"
	"github.com/estatedesk/backend/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	activityFields := schema.Activity{}.Fields()
	_ = activityFields
	// activityDescContent is the schema descriptor for content field.
	activityDescContent := activityFields[1].Descriptor()
	// activity.ContentValidator is a validator for the "content" field. It is called by the builders before save.
	activity.ContentValidator = activityDescContent.Validators[0].(func(string) error)
	// activityDescUserID is the schema descriptor for user_id field.
	activityDescUserID := activityFields[2].Descriptor()
	// activity.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	activity.UserIDValidator = activityDescUserID.Validators[0].(func(int) error)
	// activityDescCreatedAt is the schema descriptor for created_at field.
	activityDescCreatedAt := activityFields[6].Descriptor()
	// activity.DefaultCreatedAt holds the default value on creation for the created_at field.
	activity.DefaultCreatedAt = activityDescCreatedAt.Default.(func() time.Time)
	dealFields := schema.Deal{}.Fields()
	_ = dealFields
	// dealDescLeadID is the schema descriptor for lead_id field.
	dealDescLeadID := dealFields[0].Descriptor()
	// deal.LeadIDValidator is a validator for the "lead_id" field. It is called by the builders before save.
	deal.LeadIDValidator = dealDescLeadID.Validators[0].(func(int) error)
	// dealDescPropertyID is the schema descriptor for property_id field.
	dealDescPropertyID := dealFields[1].Descriptor()
	// deal.PropertyIDValidator is a validator for the "property_id" field. It is called by the builders before save.
	deal.PropertyIDValidator = dealDescPropertyID.Validators[0].(func(int) error)
	// dealDescCreatedAt is the schema descriptor for created_at field.
	dealDescCreatedAt := dealFields[7].Descriptor()
	// deal.DefaultCreatedAt holds the default value on creation for the created_at field.
	deal.DefaultCreatedAt = dealDescCreatedAt.Default.(func() time.Time)
	// dealDescUpdatedAt is the schema descriptor for updated_at field.
	dealDescUpdatedAt := dealFields[8].Descriptor()
	// deal.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	deal.DefaultUpdatedAt = dealDescUpdatedAt.Default.(func() time.Time)
	// deal.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	deal.UpdateDefaultUpdatedAt = dealDescUpdatedAt.UpdateDefault.(func() time.Time)
	formsubmissionFields := schema.FormSubmission{}.Fields()
	_ = formsubmissionFields
	// formsubmissionDescPropertyID is the schema descriptor for property_id field.
	formsubmissionDescPropertyID := formsubmissionFields[0].Descriptor()
	// formsubmission.PropertyIDValidator is a validator for the "property_id" field. It is called by the builders before save.
	formsubmission.PropertyIDValidator = formsubmissionDescPropertyID.Validators[0].(func(int) error)
	// formsubmissionDescFullName is the schema descriptor for full_name field.
	formsubmissionDescFullName := formsubmissionFields[1].Descriptor()
	// formsubmission.FullNameValidator is a validator for the "full_name" field. It is called by the builders before save.
	formsubmission.FullNameValidator = formsubmissionDescFullName.Validators[0].(func(string) error)
	// formsubmissionDescEmail is the schema descriptor for email field.
	formsubmissionDescEmail := formsubmissionFields[2].Descriptor()
	// formsubmission.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	formsubmission.EmailValidator = formsubmissionDescEmail.Validators[0].(func(string) error)
	// formsubmissionDescLeadID is the schema descriptor for lead_id field.
	formsubmissionDescLeadID := formsubmissionFields[5].Descriptor()
	// formsubmission.LeadIDValidator is a validator for the "lead_id" field. It is called by the builders before save.
	formsubmission.LeadIDValidator = formsubmissionDescLeadID.Validators[0].(func(int) error)
	// formsubmissionDescCreatedAt is the schema descriptor for created_at field.
	formsubmissionDescCreatedAt := formsubmissionFields[6].Descriptor()
	// formsubmission.DefaultCreatedAt holds the default value on creation for the created_at field.
	formsubmission.DefaultCreatedAt = formsubmissionDescCreatedAt.Default.(func() time.Time)
	leadFields := schema.Lead{}.Fields()
	_ = leadFields
	// leadDescFullName is the schema descriptor for full_name field.
	leadDescFullName := leadFields[0].Descriptor()
	// lead.FullNameValidator is a validator for the "full_name" field. It is called by the builders before save.
	lead.FullNameValidator = leadDescFullName.Validators[0].(func(string) error)
	// leadDescEmail is the schema descriptor for email field.
	leadDescEmail := leadFields[1].Descriptor()
	// lead.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	lead.EmailValidator = leadDescEmail.Validators[0].(func(string) error)
	// leadDescCreatedAt is the schema descriptor for created_at field.
	leadDescCreatedAt := leadFields[9].Descriptor()
	// lead.DefaultCreatedAt holds the default value on creation for the created_at field.
	lead.DefaultCreatedAt = leadDescCreatedAt.Default.(func() time.Time)
	// leadDescUpdatedAt is the schema descriptor for updated_at field.
	leadDescUpdatedAt := leadFields[10].Descriptor()
	// lead.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	lead.DefaultUpdatedAt = leadDescUpdatedAt.Default.(func() time.Time)
	// lead.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	lead.UpdateDefaultUpdatedAt = leadDescUpdatedAt.UpdateDefault.(func() time.Time)
	propertyFields := schema.Property{}.Fields()
	_ = propertyFields
	// propertyDescTitle is the schema descriptor for title field.
	propertyDescTitle := propertyFields[0].Descriptor()
	// property.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	property.TitleValidator = propertyDescTitle.Validators[0].(func(string) error)
	// propertyDescSlug is the schema descriptor for slug field.
	propertyDescSlug := propertyFields[1].Descriptor()
	// property.SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	property.SlugValidator = propertyDescSlug.Validators[0].(func(string) error)
	// propertyDescAddress is the schema descriptor for address field.
	propertyDescAddress := propertyFields[2].Descriptor()
	// property.AddressValidator is a validator for the "address" field. It is called by the builders before save.
	property.AddressValidator = propertyDescAddress.Validators[0].(func(string) error)
	// propertyDescCity is the schema descriptor for city field.
	propertyDescCity := propertyFields[3].Descriptor()
	// property.CityValidator is a validator for the "city" field. It is called by the builders before save.
	property.CityValidator = propertyDescCity.Validators[0].(func(string) error)
	// propertyDescCountry is the schema descriptor for country field.
	propertyDescCountry := propertyFields[4].Descriptor()
	// property.CountryValidator is a validator for the "country" field. It is called by the builders before save.
	property.CountryValidator = propertyDescCountry.Validators[0].(func(string) error)
	// propertyDescPublished is the schema descriptor for published field.
	propertyDescPublished := propertyFields[7].Descriptor()
	// property.DefaultPublished holds the default value on creation for the published field.
	property.DefaultPublished = propertyDescPublished.Default.(bool)
	// propertyDescCreatedAt is the schema descriptor for created_at field.
	propertyDescCreatedAt := propertyFields[19].Descriptor()
	// property.DefaultCreatedAt holds the default value on creation for the created_at field.
	property.DefaultCreatedAt = propertyDescCreatedAt.Default.(func() time.Time)
	// propertyDescUpdatedAt is the schema descriptor for updated_at field.
	propertyDescUpdatedAt := propertyFields[20].Descriptor()
	// property.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	property.DefaultUpdatedAt = propertyDescUpdatedAt.Default.(func() time.Time)
	// property.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	property.UpdateDefaultUpdatedAt = propertyDescUpdatedAt.UpdateDefault.(func() time.Time)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescName is the schema descriptor for name field.
	userDescName := userFields[0].Descriptor()
	// user.NameValidator is a validator for the "name" field. It is called by the builders before save.
	user.NameValidator = userDescName.Validators[0].(func(string) error)
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[1].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescPasswordHash is the schema descriptor for password_hash field.
	userDescPasswordHash := userFields[2].Descriptor()
	// user.PasswordHashValidator is a validator for the "password_hash" field. It is called by the builders before save.
	user.PasswordHashValidator = userDescPasswordHash.Validators[0].(func(string) error)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[4].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userFields[5].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
}
