// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/dzadsearch/ads-ingest/db/ent/schema"
	"github.com/dzadsearch/ads-ingest/gen/ent/announcement"
	"github.com/dzadsearch/ads-ingest/gen/ent/announcementtype"
	"github.com/dzadsearch/ads-ingest/gen/ent/businessline"
	"github.com/dzadsearch/ads-ingest/gen/ent/wilaya"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	announcementFields := schema.Announcement{}.Fields()
	_ = announcementFields
	// announcementDescTitle is the schema descriptor for title field.
	announcementDescTitle := announcementFields[1].Descriptor()
	// announcement.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	announcement.TitleValidator = announcementDescTitle.Validators[0].(func(string) error)
	// announcementDescStatus is the schema descriptor for status field.
	announcementDescStatus := announcementFields[10].Descriptor()
	// announcement.DefaultStatus holds the default value on creation for the status field.
	announcement.DefaultStatus = announcementDescStatus.Default.(int)
	// announcementDescCreatedAt is the schema descriptor for created_at field.
	announcementDescCreatedAt := announcementFields[21].Descriptor()
	// announcement.DefaultCreatedAt holds the default value on creation for the created_at field.
	announcement.DefaultCreatedAt = announcementDescCreatedAt.Default.(func() time.Time)
	// announcementDescID is the schema descriptor for id field.
	announcementDescID := announcementFields[0].Descriptor()
	// announcement.DefaultID holds the default value on creation for the id field.
	announcement.DefaultID = announcementDescID.Default.(func() uuid.UUID)
	announcementtypeFields := schema.AnnouncementType{}.Fields()
	_ = announcementtypeFields
	// announcementtypeDescName is the schema descriptor for name field.
	announcementtypeDescName := announcementtypeFields[1].Descriptor()
	// announcementtype.NameValidator is a validator for the "name" field. It is called by the builders before save.
	announcementtype.NameValidator = announcementtypeDescName.Validators[0].(func(string) error)
	// announcementtypeDescID is the schema descriptor for id field.
	announcementtypeDescID := announcementtypeFields[0].Descriptor()
	// announcementtype.IDValidator is a validator for the "id" field. It is called by the builders before save.
	announcementtype.IDValidator = announcementtypeDescID.Validators[0].(func(int) error)
	businesslineFields := schema.BusinessLine{}.Fields()
	_ = businesslineFields
	// businesslineDescName is the schema descriptor for name field.
	businesslineDescName := businesslineFields[1].Descriptor()
	// businessline.NameValidator is a validator for the "name" field. It is called by the builders before save.
	businessline.NameValidator = businesslineDescName.Validators[0].(func(string) error)
	// businesslineDescID is the schema descriptor for id field.
	businesslineDescID := businesslineFields[0].Descriptor()
	// businessline.IDValidator is a validator for the "id" field. It is called by the builders before save.
	businessline.IDValidator = businesslineDescID.Validators[0].(func(int) error)
	wilayaFields := schema.Wilaya{}.Fields()
	_ = wilayaFields
	// wilayaDescName is the schema descriptor for name field.
	wilayaDescName := wilayaFields[1].Descriptor()
	// wilaya.NameValidator is a validator for the "name" field. It is called by the builders before save.
	wilaya.NameValidator = wilayaDescName.Validators[0].(func(string) error)
	// wilayaDescID is the schema descriptor for id field.
	wilayaDescID := wilayaFields[0].Descriptor()
	// wilaya.IDValidator is a validator for the "id" field. It is called by the builders before save.
	wilaya.IDValidator = wilayaDescID.Validators[0].(func(int) error)
}
