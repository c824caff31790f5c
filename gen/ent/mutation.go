// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/dzadsearch/ads-ingest/gen/ent/announcement"
	"github.com/dzadsearch/ads-ingest/gen/ent/announcementtype"
	"github.com/dzadsearch/ads-ingest/gen/ent/businessline"
	"github.com/dzadsearch/ads-ingest/gen/ent/predicate"
	"github.com/dzadsearch/ads-ingest/gen/ent/wilaya"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAnnouncement     = "Announcement"
	TypeAnnouncementType = "AnnouncementType"
	TypeBusinessLine     = "BusinessLine"
	TypeWilaya           = "Wilaya"
)

// AnnouncementMutation represents an operation that mutates the Announcement nodes in the graph.
type AnnouncementMutation struct {
	config
	op                       Op
	typ                      string
	id                       *uuid.UUID
	title                    *string
	description              *string
	number                   *string
	owner                    *string
	terms                    *string
	contact                  *string
	due_amount               *int64
	adddue_amount            *int64
	publish_date             *string
	due_date                 *string
	status                   *int
	addstatus                *int
	wilaya_name              *string
	business_line_name       *string
	announcement_type_name   *string
	bounding_box             *map[string]int
	source_file              *string
	source_page              *int
	addsource_page           *int
	issue_number             *int
	addissue_number          *int
	created_at               *time.Time
	clearedFields            map[string]struct{}
	wilaya                   *int
	clearedwilaya            bool
	business_line            *int
	clearedbusiness_line     bool
	announcement_type        *int
	clearedannouncement_type bool
	done                     bool
	oldValue                 func(context.Context) (*Announcement, error)
	predicates               []predicate.Announcement
}

var _ ent.Mutation = (*AnnouncementMutation)(nil)

// announcementOption allows management of the mutation configuration using functional options.
type announcementOption func(*AnnouncementMutation)

// newAnnouncementMutation creates new mutation for the Announcement entity.
func newAnnouncementMutation(c config, op Op, opts ...announcementOption) *AnnouncementMutation {
	m := &AnnouncementMutation{
		config:        c,
		op:            op,
		typ:           TypeAnnouncement,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAnnouncementID sets the ID field of the mutation.
func withAnnouncementID(id uuid.UUID) announcementOption {
	return func(m *AnnouncementMutation) {
		var (
			err   error
			once  sync.Once
			value *Announcement
		)
		m.oldValue = func(ctx context.Context) (*Announcement, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Announcement.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAnnouncement sets the old Announcement of the mutation.
func withAnnouncement(node *Announcement) announcementOption {
	return func(m *AnnouncementMutation) {
		m.oldValue = func(context.Context) (*Announcement, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AnnouncementMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AnnouncementMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Announcement entities.
func (m *AnnouncementMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AnnouncementMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AnnouncementMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Announcement.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTitle sets the "title" field.
func (m *AnnouncementMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *AnnouncementMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Announcement entity.
// If the Announcement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnnouncementMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *AnnouncementMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *AnnouncementMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *AnnouncementMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Announcement entity.
// If the Announcement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnnouncementMutation) OldDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *AnnouncementMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[announcement.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *AnnouncementMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[announcement.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *AnnouncementMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, announcement.FieldDescription)
}

// SetNumber sets the "number" field.
func (m *AnnouncementMutation) SetNumber(s string) {
	m.number = &s
}

// Number returns the value of the "number" field in the mutation.
func (m *AnnouncementMutation) Number() (r string, exists bool) {
	v := m.number
	if v == nil {
		return
	}
	return *v, true
}

// OldNumber returns the old "number" field's value of the Announcement entity.
// If the Announcement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnnouncementMutation) OldNumber(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNumber: %w", err)
	}
	return oldValue.Number, nil
}

// ClearNumber clears the value of the "number" field.
func (m *AnnouncementMutation) ClearNumber() {
	m.number = nil
	m.clearedFields[announcement.FieldNumber] = struct{}{}
}

// NumberCleared returns if the "number" field was cleared in this mutation.
func (m *AnnouncementMutation) NumberCleared() bool {
	_, ok := m.clearedFields[announcement.FieldNumber]
	return ok
}

// ResetNumber resets all changes to the "number" field.
func (m *AnnouncementMutation) ResetNumber() {
	m.number = nil
	delete(m.clearedFields, announcement.FieldNumber)
}

// SetOwner sets the "owner" field.
func (m *AnnouncementMutation) SetOwner(s string) {
	m.owner = &s
}

// Owner returns the value of the "owner" field in the mutation.
func (m *AnnouncementMutation) Owner() (r string, exists bool) {
	v := m.owner
	if v == nil {
		return
	}
	return *v, true
}

// OldOwner returns the old "owner" field's value of the Announcement entity.
// If the Announcement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnnouncementMutation) OldOwner(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwner is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwner requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwner: %w", err)
	}
	return oldValue.Owner, nil
}

// ClearOwner clears the value of the "owner" field.
func (m *AnnouncementMutation) ClearOwner() {
	m.owner = nil
	m.clearedFields[announcement.FieldOwner] = struct{}{}
}

// OwnerCleared returns if the "owner" field was cleared in this mutation.
func (m *AnnouncementMutation) OwnerCleared() bool {
	_, ok := m.clearedFields[announcement.FieldOwner]
	return ok
}

// ResetOwner resets all changes to the "owner" field.
func (m *AnnouncementMutation) ResetOwner() {
	m.owner = nil
	delete(m.clearedFields, announcement.FieldOwner)
}

// SetTerms sets the "terms" field.
func (m *AnnouncementMutation) SetTerms(s string) {
	m.terms = &s
}

// Terms returns the value of the "terms" field in the mutation.
func (m *AnnouncementMutation) Terms() (r string, exists bool) {
	v := m.terms
	if v == nil {
		return
	}
	return *v, true
}

// OldTerms returns the old "terms" field's value of the Announcement entity.
// If the Announcement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnnouncementMutation) OldTerms(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTerms is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTerms requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTerms: %w", err)
	}
	return oldValue.Terms, nil
}

// ClearTerms clears the value of the "terms" field.
func (m *AnnouncementMutation) ClearTerms() {
	m.terms = nil
	m.clearedFields[announcement.FieldTerms] = struct{}{}
}

// TermsCleared returns if the "terms" field was cleared in this mutation.
func (m *AnnouncementMutation) TermsCleared() bool {
	_, ok := m.clearedFields[announcement.FieldTerms]
	return ok
}

// ResetTerms resets all changes to the "terms" field.
func (m *AnnouncementMutation) ResetTerms() {
	m.terms = nil
	delete(m.clearedFields, announcement.FieldTerms)
}

// SetContact sets the "contact" field.
func (m *AnnouncementMutation) SetContact(s string) {
	m.contact = &s
}

// Contact returns the value of the "contact" field in the mutation.
func (m *AnnouncementMutation) Contact() (r string, exists bool) {
	v := m.contact
	if v == nil {
		return
	}
	return *v, true
}

// OldContact returns the old "contact" field's value of the Announcement entity.
// If the Announcement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnnouncementMutation) OldContact(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContact is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContact requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContact: %w", err)
	}
	return oldValue.Contact, nil
}

// ClearContact clears the value of the "contact" field.
func (m *AnnouncementMutation) ClearContact() {
	m.contact = nil
	m.clearedFields[announcement.FieldContact] = struct{}{}
}

// ContactCleared returns if the "contact" field was cleared in this mutation.
func (m *AnnouncementMutation) ContactCleared() bool {
	_, ok := m.clearedFields[announcement.FieldContact]
	return ok
}

// ResetContact resets all changes to the "contact" field.
func (m *AnnouncementMutation) ResetContact() {
	m.contact = nil
	delete(m.clearedFields, announcement.FieldContact)
}

// SetDueAmount sets the "due_amount" field.
func (m *AnnouncementMutation) SetDueAmount(i int64) {
	m.due_amount = &i
	m.adddue_amount = nil
}

// DueAmount returns the value of the "due_amount" field in the mutation.
func (m *AnnouncementMutation) DueAmount() (r int64, exists bool) {
	v := m.due_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldDueAmount returns the old "due_amount" field's value of the Announcement entity.
// If the Announcement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnnouncementMutation) OldDueAmount(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDueAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDueAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDueAmount: %w", err)
	}
	return oldValue.DueAmount, nil
}

// AddDueAmount adds i to the "due_amount" field.
func (m *AnnouncementMutation) AddDueAmount(i int64) {
	if m.adddue_amount != nil {
		*m.adddue_amount += i
	} else {
		m.adddue_amount = &i
	}
}

// AddedDueAmount returns the value that was added to the "due_amount" field in this mutation.
func (m *AnnouncementMutation) AddedDueAmount() (r int64, exists bool) {
	v := m.adddue_amount
	if v == nil {
		return
	}
	return *v, true
}

// ClearDueAmount clears the value of the "due_amount" field.
func (m *AnnouncementMutation) ClearDueAmount() {
	m.due_amount = nil
	m.adddue_amount = nil
	m.clearedFields[announcement.FieldDueAmount] = struct{}{}
}

// DueAmountCleared returns if the "due_amount" field was cleared in this mutation.
func (m *AnnouncementMutation) DueAmountCleared() bool {
	_, ok := m.clearedFields[announcement.FieldDueAmount]
	return ok
}

// ResetDueAmount resets all changes to the "due_amount" field.
func (m *AnnouncementMutation) ResetDueAmount() {
	m.due_amount = nil
	m.adddue_amount = nil
	delete(m.clearedFields, announcement.FieldDueAmount)
}

// SetPublishDate sets the "publish_date" field.
func (m *AnnouncementMutation) SetPublishDate(s string) {
	m.publish_date = &s
}

// PublishDate returns the value of the "publish_date" field in the mutation.
func (m *AnnouncementMutation) PublishDate() (r string, exists bool) {
	v := m.publish_date
	if v == nil {
		return
	}
	return *v, true
}

// OldPublishDate returns the old "publish_date" field's value of the Announcement entity.
// If the Announcement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnnouncementMutation) OldPublishDate(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPublishDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPublishDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPublishDate: %w", err)
	}
	return oldValue.PublishDate, nil
}

// ClearPublishDate clears the value of the "publish_date" field.
func (m *AnnouncementMutation) ClearPublishDate() {
	m.publish_date = nil
	m.clearedFields[announcement.FieldPublishDate] = struct{}{}
}

// PublishDateCleared returns if the "publish_date" field was cleared in this mutation.
func (m *AnnouncementMutation) PublishDateCleared() bool {
	_, ok := m.clearedFields[announcement.FieldPublishDate]
	return ok
}

// ResetPublishDate resets all changes to the "publish_date" field.
func (m *AnnouncementMutation) ResetPublishDate() {
	m.publish_date = nil
	delete(m.clearedFields, announcement.FieldPublishDate)
}

// SetDueDate sets the "due_date" field.
func (m *AnnouncementMutation) SetDueDate(s string) {
	m.due_date = &s
}

// DueDate returns the value of the "due_date" field in the mutation.
func (m *AnnouncementMutation) DueDate() (r string, exists bool) {
	v := m.due_date
	if v == nil {
		return
	}
	return *v, true
}

// OldDueDate returns the old "due_date" field's value of the Announcement entity.
// If the Announcement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnnouncementMutation) OldDueDate(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDueDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDueDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDueDate: %w", err)
	}
	return oldValue.DueDate, nil
}

// ClearDueDate clears the value of the "due_date" field.
func (m *AnnouncementMutation) ClearDueDate() {
	m.due_date = nil
	m.clearedFields[announcement.FieldDueDate] = struct{}{}
}

// DueDateCleared returns if the "due_date" field was cleared in this mutation.
func (m *AnnouncementMutation) DueDateCleared() bool {
	_, ok := m.clearedFields[announcement.FieldDueDate]
	return ok
}

// ResetDueDate resets all changes to the "due_date" field.
func (m *AnnouncementMutation) ResetDueDate() {
	m.due_date = nil
	delete(m.clearedFields, announcement.FieldDueDate)
}

// SetStatus sets the "status" field.
func (m *AnnouncementMutation) SetStatus(i int) {
	m.status = &i
	m.addstatus = nil
}

// Status returns the value of the "status" field in the mutation.
func (m *AnnouncementMutation) Status() (r int, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Announcement entity.
// If the Announcement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnnouncementMutation) OldStatus(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// AddStatus adds i to the "status" field.
func (m *AnnouncementMutation) AddStatus(i int) {
	if m.addstatus != nil {
		*m.addstatus += i
	} else {
		m.addstatus = &i
	}
}

// AddedStatus returns the value that was added to the "status" field in this mutation.
func (m *AnnouncementMutation) AddedStatus() (r int, exists bool) {
	v := m.addstatus
	if v == nil {
		return
	}
	return *v, true
}

// ResetStatus resets all changes to the "status" field.
func (m *AnnouncementMutation) ResetStatus() {
	m.status = nil
	m.addstatus = nil
}

// SetWilayaID sets the "wilaya_id" field.
func (m *AnnouncementMutation) SetWilayaID(i int) {
	m.wilaya = &i
}

// WilayaID returns the value of the "wilaya_id" field in the mutation.
func (m *AnnouncementMutation) WilayaID() (r int, exists bool) {
	v := m.wilaya
	if v == nil {
		return
	}
	return *v, true
}

// OldWilayaID returns the old "wilaya_id" field's value of the Announcement entity.
// If the Announcement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnnouncementMutation) OldWilayaID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWilayaID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWilayaID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWilayaID: %w", err)
	}
	return oldValue.WilayaID, nil
}

// ClearWilayaID clears the value of the "wilaya_id" field.
func (m *AnnouncementMutation) ClearWilayaID() {
	m.wilaya = nil
	m.clearedFields[announcement.FieldWilayaID] = struct{}{}
}

// WilayaIDCleared returns if the "wilaya_id" field was cleared in this mutation.
func (m *AnnouncementMutation) WilayaIDCleared() bool {
	_, ok := m.clearedFields[announcement.FieldWilayaID]
	return ok
}

// ResetWilayaID resets all changes to the "wilaya_id" field.
func (m *AnnouncementMutation) ResetWilayaID() {
	m.wilaya = nil
	delete(m.clearedFields, announcement.FieldWilayaID)
}

// SetBusinessLineID sets the "business_line_id" field.
func (m *AnnouncementMutation) SetBusinessLineID(i int) {
	m.business_line = &i
}

// BusinessLineID returns the value of the "business_line_id" field in the mutation.
func (m *AnnouncementMutation) BusinessLineID() (r int, exists bool) {
	v := m.business_line
	if v == nil {
		return
	}
	return *v, true
}

// OldBusinessLineID returns the old "business_line_id" field's value of the Announcement entity.
// If the Announcement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnnouncementMutation) OldBusinessLineID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBusinessLineID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBusinessLineID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBusinessLineID: %w", err)
	}
	return oldValue.BusinessLineID, nil
}

// ClearBusinessLineID clears the value of the "business_line_id" field.
func (m *AnnouncementMutation) ClearBusinessLineID() {
	m.business_line = nil
	m.clearedFields[announcement.FieldBusinessLineID] = struct{}{}
}

// BusinessLineIDCleared returns if the "business_line_id" field was cleared in this mutation.
func (m *AnnouncementMutation) BusinessLineIDCleared() bool {
	_, ok := m.clearedFields[announcement.FieldBusinessLineID]
	return ok
}

// ResetBusinessLineID resets all changes to the "business_line_id" field.
func (m *AnnouncementMutation) ResetBusinessLineID() {
	m.business_line = nil
	delete(m.clearedFields, announcement.FieldBusinessLineID)
}

// SetAnnouncementTypeID sets the "announcement_type_id" field.
func (m *AnnouncementMutation) SetAnnouncementTypeID(i int) {
	m.announcement_type = &i
}

// AnnouncementTypeID returns the value of the "announcement_type_id" field in the mutation.
func (m *AnnouncementMutation) AnnouncementTypeID() (r int, exists bool) {
	v := m.announcement_type
	if v == nil {
		return
	}
	return *v, true
}

// OldAnnouncementTypeID returns the old "announcement_type_id" field's value of the Announcement entity.
// If the Announcement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnnouncementMutation) OldAnnouncementTypeID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnnouncementTypeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnnouncementTypeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnnouncementTypeID: %w", err)
	}
	return oldValue.AnnouncementTypeID, nil
}

// ClearAnnouncementTypeID clears the value of the "announcement_type_id" field.
func (m *AnnouncementMutation) ClearAnnouncementTypeID() {
	m.announcement_type = nil
	m.clearedFields[announcement.FieldAnnouncementTypeID] = struct{}{}
}

// AnnouncementTypeIDCleared returns if the "announcement_type_id" field was cleared in this mutation.
func (m *AnnouncementMutation) AnnouncementTypeIDCleared() bool {
	_, ok := m.clearedFields[announcement.FieldAnnouncementTypeID]
	return ok
}

// ResetAnnouncementTypeID resets all changes to the "announcement_type_id" field.
func (m *AnnouncementMutation) ResetAnnouncementTypeID() {
	m.announcement_type = nil
	delete(m.clearedFields, announcement.FieldAnnouncementTypeID)
}

// SetWilayaName sets the "wilaya_name" field.
func (m *AnnouncementMutation) SetWilayaName(s string) {
	m.wilaya_name = &s
}

// WilayaName returns the value of the "wilaya_name" field in the mutation.
func (m *AnnouncementMutation) WilayaName() (r string, exists bool) {
	v := m.wilaya_name
	if v == nil {
		return
	}
	return *v, true
}

// OldWilayaName returns the old "wilaya_name" field's value of the Announcement entity.
// If the Announcement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnnouncementMutation) OldWilayaName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWilayaName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWilayaName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWilayaName: %w", err)
	}
	return oldValue.WilayaName, nil
}

// ClearWilayaName clears the value of the "wilaya_name" field.
func (m *AnnouncementMutation) ClearWilayaName() {
	m.wilaya_name = nil
	m.clearedFields[announcement.FieldWilayaName] = struct{}{}
}

// WilayaNameCleared returns if the "wilaya_name" field was cleared in this mutation.
func (m *AnnouncementMutation) WilayaNameCleared() bool {
	_, ok := m.clearedFields[announcement.FieldWilayaName]
	return ok
}

// ResetWilayaName resets all changes to the "wilaya_name" field.
func (m *AnnouncementMutation) ResetWilayaName() {
	m.wilaya_name = nil
	delete(m.clearedFields, announcement.FieldWilayaName)
}

// SetBusinessLineName sets the "business_line_name" field.
func (m *AnnouncementMutation) SetBusinessLineName(s string) {
	m.business_line_name = &s
}

// BusinessLineName returns the value of the "business_line_name" field in the mutation.
func (m *AnnouncementMutation) BusinessLineName() (r string, exists bool) {
	v := m.business_line_name
	if v == nil {
		return
	}
	return *v, true
}

// OldBusinessLineName returns the old "business_line_name" field's value of the Announcement entity.
// If the Announcement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnnouncementMutation) OldBusinessLineName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBusinessLineName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBusinessLineName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBusinessLineName: %w", err)
	}
	return oldValue.BusinessLineName, nil
}

// ClearBusinessLineName clears the value of the "business_line_name" field.
func (m *AnnouncementMutation) ClearBusinessLineName() {
	m.business_line_name = nil
	m.clearedFields[announcement.FieldBusinessLineName] = struct{}{}
}

// BusinessLineNameCleared returns if the "business_line_name" field was cleared in this mutation.
func (m *AnnouncementMutation) BusinessLineNameCleared() bool {
	_, ok := m.clearedFields[announcement.FieldBusinessLineName]
	return ok
}

// ResetBusinessLineName resets all changes to the "business_line_name" field.
func (m *AnnouncementMutation) ResetBusinessLineName() {
	m.business_line_name = nil
	delete(m.clearedFields, announcement.FieldBusinessLineName)
}

// SetAnnouncementTypeName sets the "announcement_type_name" field.
func (m *AnnouncementMutation) SetAnnouncementTypeName(s string) {
	m.announcement_type_name = &s
}

// AnnouncementTypeName returns the value of the "announcement_type_name" field in the mutation.
func (m *AnnouncementMutation) AnnouncementTypeName() (r string, exists bool) {
	v := m.announcement_type_name
	if v == nil {
		return
	}
	return *v, true
}

// OldAnnouncementTypeName returns the old "announcement_type_name" field's value of the Announcement entity.
// If the Announcement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnnouncementMutation) OldAnnouncementTypeName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnnouncementTypeName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnnouncementTypeName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnnouncementTypeName: %w", err)
	}
	return oldValue.AnnouncementTypeName, nil
}

// ClearAnnouncementTypeName clears the value of the "announcement_type_name" field.
func (m *AnnouncementMutation) ClearAnnouncementTypeName() {
	m.announcement_type_name = nil
	m.clearedFields[announcement.FieldAnnouncementTypeName] = struct{}{}
}

// AnnouncementTypeNameCleared returns if the "announcement_type_name" field was cleared in this mutation.
func (m *AnnouncementMutation) AnnouncementTypeNameCleared() bool {
	_, ok := m.clearedFields[announcement.FieldAnnouncementTypeName]
	return ok
}

// ResetAnnouncementTypeName resets all changes to the "announcement_type_name" field.
func (m *AnnouncementMutation) ResetAnnouncementTypeName() {
	m.announcement_type_name = nil
	delete(m.clearedFields, announcement.FieldAnnouncementTypeName)
}

// SetBoundingBox sets the "bounding_box" field.
func (m *AnnouncementMutation) SetBoundingBox(value map[string]int) {
	m.bounding_box = &value
}

// BoundingBox returns the value of the "bounding_box" field in the mutation.
func (m *AnnouncementMutation) BoundingBox() (r map[string]int, exists bool) {
	v := m.bounding_box
	if v == nil {
		return
	}
	return *v, true
}

// OldBoundingBox returns the old "bounding_box" field's value of the Announcement entity.
// If the Announcement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnnouncementMutation) OldBoundingBox(ctx context.Context) (v map[string]int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBoundingBox is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBoundingBox requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBoundingBox: %w", err)
	}
	return oldValue.BoundingBox, nil
}

// ClearBoundingBox clears the value of the "bounding_box" field.
func (m *AnnouncementMutation) ClearBoundingBox() {
	m.bounding_box = nil
	m.clearedFields[announcement.FieldBoundingBox] = struct{}{}
}

// BoundingBoxCleared returns if the "bounding_box" field was cleared in this mutation.
func (m *AnnouncementMutation) BoundingBoxCleared() bool {
	_, ok := m.clearedFields[announcement.FieldBoundingBox]
	return ok
}

// ResetBoundingBox resets all changes to the "bounding_box" field.
func (m *AnnouncementMutation) ResetBoundingBox() {
	m.bounding_box = nil
	delete(m.clearedFields, announcement.FieldBoundingBox)
}

// SetSourceFile sets the "source_file" field.
func (m *AnnouncementMutation) SetSourceFile(s string) {
	m.source_file = &s
}

// SourceFile returns the value of the "source_file" field in the mutation.
func (m *AnnouncementMutation) SourceFile() (r string, exists bool) {
	v := m.source_file
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceFile returns the old "source_file" field's value of the Announcement entity.
// If the Announcement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnnouncementMutation) OldSourceFile(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceFile is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceFile requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceFile: %w", err)
	}
	return oldValue.SourceFile, nil
}

// ClearSourceFile clears the value of the "source_file" field.
func (m *AnnouncementMutation) ClearSourceFile() {
	m.source_file = nil
	m.clearedFields[announcement.FieldSourceFile] = struct{}{}
}

// SourceFileCleared returns if the "source_file" field was cleared in this mutation.
func (m *AnnouncementMutation) SourceFileCleared() bool {
	_, ok := m.clearedFields[announcement.FieldSourceFile]
	return ok
}

// ResetSourceFile resets all changes to the "source_file" field.
func (m *AnnouncementMutation) ResetSourceFile() {
	m.source_file = nil
	delete(m.clearedFields, announcement.FieldSourceFile)
}

// SetSourcePage sets the "source_page" field.
func (m *AnnouncementMutation) SetSourcePage(i int) {
	m.source_page = &i
	m.addsource_page = nil
}

// SourcePage returns the value of the "source_page" field in the mutation.
func (m *AnnouncementMutation) SourcePage() (r int, exists bool) {
	v := m.source_page
	if v == nil {
		return
	}
	return *v, true
}

// OldSourcePage returns the old "source_page" field's value of the Announcement entity.
// If the Announcement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnnouncementMutation) OldSourcePage(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourcePage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourcePage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourcePage: %w", err)
	}
	return oldValue.SourcePage, nil
}

// AddSourcePage adds i to the "source_page" field.
func (m *AnnouncementMutation) AddSourcePage(i int) {
	if m.addsource_page != nil {
		*m.addsource_page += i
	} else {
		m.addsource_page = &i
	}
}

// AddedSourcePage returns the value that was added to the "source_page" field in this mutation.
func (m *AnnouncementMutation) AddedSourcePage() (r int, exists bool) {
	v := m.addsource_page
	if v == nil {
		return
	}
	return *v, true
}

// ClearSourcePage clears the value of the "source_page" field.
func (m *AnnouncementMutation) ClearSourcePage() {
	m.source_page = nil
	m.addsource_page = nil
	m.clearedFields[announcement.FieldSourcePage] = struct{}{}
}

// SourcePageCleared returns if the "source_page" field was cleared in this mutation.
func (m *AnnouncementMutation) SourcePageCleared() bool {
	_, ok := m.clearedFields[announcement.FieldSourcePage]
	return ok
}

// ResetSourcePage resets all changes to the "source_page" field.
func (m *AnnouncementMutation) ResetSourcePage() {
	m.source_page = nil
	m.addsource_page = nil
	delete(m.clearedFields, announcement.FieldSourcePage)
}

// SetIssueNumber sets the "issue_number" field.
func (m *AnnouncementMutation) SetIssueNumber(i int) {
	m.issue_number = &i
	m.addissue_number = nil
}

// IssueNumber returns the value of the "issue_number" field in the mutation.
func (m *AnnouncementMutation) IssueNumber() (r int, exists bool) {
	v := m.issue_number
	if v == nil {
		return
	}
	return *v, true
}

// OldIssueNumber returns the old "issue_number" field's value of the Announcement entity.
// If the Announcement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnnouncementMutation) OldIssueNumber(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIssueNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIssueNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIssueNumber: %w", err)
	}
	return oldValue.IssueNumber, nil
}

// AddIssueNumber adds i to the "issue_number" field.
func (m *AnnouncementMutation) AddIssueNumber(i int) {
	if m.addissue_number != nil {
		*m.addissue_number += i
	} else {
		m.addissue_number = &i
	}
}

// AddedIssueNumber returns the value that was added to the "issue_number" field in this mutation.
func (m *AnnouncementMutation) AddedIssueNumber() (r int, exists bool) {
	v := m.addissue_number
	if v == nil {
		return
	}
	return *v, true
}

// ClearIssueNumber clears the value of the "issue_number" field.
func (m *AnnouncementMutation) ClearIssueNumber() {
	m.issue_number = nil
	m.addissue_number = nil
	m.clearedFields[announcement.FieldIssueNumber] = struct{}{}
}

// IssueNumberCleared returns if the "issue_number" field was cleared in this mutation.
func (m *AnnouncementMutation) IssueNumberCleared() bool {
	_, ok := m.clearedFields[announcement.FieldIssueNumber]
	return ok
}

// ResetIssueNumber resets all changes to the "issue_number" field.
func (m *AnnouncementMutation) ResetIssueNumber() {
	m.issue_number = nil
	m.addissue_number = nil
	delete(m.clearedFields, announcement.FieldIssueNumber)
}

// SetCreatedAt sets the "created_at" field.
func (m *AnnouncementMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AnnouncementMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Announcement entity.
// If the Announcement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnnouncementMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AnnouncementMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearWilaya clears the "wilaya" edge to the Wilaya entity.
func (m *AnnouncementMutation) ClearWilaya() {
	m.clearedwilaya = true
	m.clearedFields[announcement.FieldWilayaID] = struct{}{}
}

// WilayaCleared reports if the "wilaya" edge to the Wilaya entity was cleared.
func (m *AnnouncementMutation) WilayaCleared() bool {
	return m.WilayaIDCleared() || m.clearedwilaya
}

// WilayaIDs returns the "wilaya" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// WilayaID instead. It exists only for internal usage by the builders.
func (m *AnnouncementMutation) WilayaIDs() (ids []int) {
	if id := m.wilaya; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetWilaya resets all changes to the "wilaya" edge.
func (m *AnnouncementMutation) ResetWilaya() {
	m.wilaya = nil
	m.clearedwilaya = false
}

// ClearBusinessLine clears the "business_line" edge to the BusinessLine entity.
func (m *AnnouncementMutation) ClearBusinessLine() {
	m.clearedbusiness_line = true
	m.clearedFields[announcement.FieldBusinessLineID] = struct{}{}
}

// BusinessLineCleared reports if the "business_line" edge to the BusinessLine entity was cleared.
func (m *AnnouncementMutation) BusinessLineCleared() bool {
	return m.BusinessLineIDCleared() || m.clearedbusiness_line
}

// BusinessLineIDs returns the "business_line" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// BusinessLineID instead. It exists only for internal usage by the builders.
func (m *AnnouncementMutation) BusinessLineIDs() (ids []int) {
	if id := m.business_line; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetBusinessLine resets all changes to the "business_line" edge.
func (m *AnnouncementMutation) ResetBusinessLine() {
	m.business_line = nil
	m.clearedbusiness_line = false
}

// ClearAnnouncementType clears the "announcement_type" edge to the AnnouncementType entity.
func (m *AnnouncementMutation) ClearAnnouncementType() {
	m.clearedannouncement_type = true
	m.clearedFields[announcement.FieldAnnouncementTypeID] = struct{}{}
}

// AnnouncementTypeCleared reports if the "announcement_type" edge to the AnnouncementType entity was cleared.
func (m *AnnouncementMutation) AnnouncementTypeCleared() bool {
	return m.AnnouncementTypeIDCleared() || m.clearedannouncement_type
}

// AnnouncementTypeIDs returns the "announcement_type" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AnnouncementTypeID instead. It exists only for internal usage by the builders.
func (m *AnnouncementMutation) AnnouncementTypeIDs() (ids []int) {
	if id := m.announcement_type; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAnnouncementType resets all changes to the "announcement_type" edge.
func (m *AnnouncementMutation) ResetAnnouncementType() {
	m.announcement_type = nil
	m.clearedannouncement_type = false
}

// Where appends a list predicates to the AnnouncementMutation builder.
func (m *AnnouncementMutation) Where(ps ...predicate.Announcement) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AnnouncementMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AnnouncementMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Announcement, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AnnouncementMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AnnouncementMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Announcement).
func (m *AnnouncementMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AnnouncementMutation) Fields() []string {
	fields := make([]string, 0, 21)
	if m.title != nil {
		fields = append(fields, announcement.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, announcement.FieldDescription)
	}
	if m.number != nil {
		fields = append(fields, announcement.FieldNumber)
	}
	if m.owner != nil {
		fields = append(fields, announcement.FieldOwner)
	}
	if m.terms != nil {
		fields = append(fields, announcement.FieldTerms)
	}
	if m.contact != nil {
		fields = append(fields, announcement.FieldContact)
	}
	if m.due_amount != nil {
		fields = append(fields, announcement.FieldDueAmount)
	}
	if m.publish_date != nil {
		fields = append(fields, announcement.FieldPublishDate)
	}
	if m.due_date != nil {
		fields = append(fields, announcement.FieldDueDate)
	}
	if m.status != nil {
		fields = append(fields, announcement.FieldStatus)
	}
	if m.wilaya != nil {
		fields = append(fields, announcement.FieldWilayaID)
	}
	if m.business_line != nil {
		fields = append(fields, announcement.FieldBusinessLineID)
	}
	if m.announcement_type != nil {
		fields = append(fields, announcement.FieldAnnouncementTypeID)
	}
	if m.wilaya_name != nil {
		fields = append(fields, announcement.FieldWilayaName)
	}
	if m.business_line_name != nil {
		fields = append(fields, announcement.FieldBusinessLineName)
	}
	if m.announcement_type_name != nil {
		fields = append(fields, announcement.FieldAnnouncementTypeName)
	}
	if m.bounding_box != nil {
		fields = append(fields, announcement.FieldBoundingBox)
	}
	if m.source_file != nil {
		fields = append(fields, announcement.FieldSourceFile)
	}
	if m.source_page != nil {
		fields = append(fields, announcement.FieldSourcePage)
	}
	if m.issue_number != nil {
		fields = append(fields, announcement.FieldIssueNumber)
	}
	if m.created_at != nil {
		fields = append(fields, announcement.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AnnouncementMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case announcement.FieldTitle:
		return m.Title()
	case announcement.FieldDescription:
		return m.Description()
	case announcement.FieldNumber:
		return m.Number()
	case announcement.FieldOwner:
		return m.Owner()
	case announcement.FieldTerms:
		return m.Terms()
	case announcement.FieldContact:
		return m.Contact()
	case announcement.FieldDueAmount:
		return m.DueAmount()
	case announcement.FieldPublishDate:
		return m.PublishDate()
	case announcement.FieldDueDate:
		return m.DueDate()
	case announcement.FieldStatus:
		return m.Status()
	case announcement.FieldWilayaID:
		return m.WilayaID()
	case announcement.FieldBusinessLineID:
		return m.BusinessLineID()
	case announcement.FieldAnnouncementTypeID:
		return m.AnnouncementTypeID()
	case announcement.FieldWilayaName:
		return m.WilayaName()
	case announcement.FieldBusinessLineName:
		return m.BusinessLineName()
	case announcement.FieldAnnouncementTypeName:
		return m.AnnouncementTypeName()
	case announcement.FieldBoundingBox:
		return m.BoundingBox()
	case announcement.FieldSourceFile:
		return m.SourceFile()
	case announcement.FieldSourcePage:
		return m.SourcePage()
	case announcement.FieldIssueNumber:
		return m.IssueNumber()
	case announcement.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AnnouncementMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case announcement.FieldTitle:
		return m.OldTitle(ctx)
	case announcement.FieldDescription:
		return m.OldDescription(ctx)
	case announcement.FieldNumber:
		return m.OldNumber(ctx)
	case announcement.FieldOwner:
		return m.OldOwner(ctx)
	case announcement.FieldTerms:
		return m.OldTerms(ctx)
	case announcement.FieldContact:
		return m.OldContact(ctx)
	case announcement.FieldDueAmount:
		return m.OldDueAmount(ctx)
	case announcement.FieldPublishDate:
		return m.OldPublishDate(ctx)
	case announcement.FieldDueDate:
		return m.OldDueDate(ctx)
	case announcement.FieldStatus:
		return m.OldStatus(ctx)
	case announcement.FieldWilayaID:
		return m.OldWilayaID(ctx)
	case announcement.FieldBusinessLineID:
		return m.OldBusinessLineID(ctx)
	case announcement.FieldAnnouncementTypeID:
		return m.OldAnnouncementTypeID(ctx)
	case announcement.FieldWilayaName:
		return m.OldWilayaName(ctx)
	case announcement.FieldBusinessLineName:
		return m.OldBusinessLineName(ctx)
	case announcement.FieldAnnouncementTypeName:
		return m.OldAnnouncementTypeName(ctx)
	case announcement.FieldBoundingBox:
		return m.OldBoundingBox(ctx)
	case announcement.FieldSourceFile:
		return m.OldSourceFile(ctx)
	case announcement.FieldSourcePage:
		return m.OldSourcePage(ctx)
	case announcement.FieldIssueNumber:
		return m.OldIssueNumber(ctx)
	case announcement.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Announcement field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnnouncementMutation) SetField(name string, value ent.Value) error {
	switch name {
	case announcement.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case announcement.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case announcement.FieldNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNumber(v)
		return nil
	case announcement.FieldOwner:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwner(v)
		return nil
	case announcement.FieldTerms:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTerms(v)
		return nil
	case announcement.FieldContact:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContact(v)
		return nil
	case announcement.FieldDueAmount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDueAmount(v)
		return nil
	case announcement.FieldPublishDate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPublishDate(v)
		return nil
	case announcement.FieldDueDate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDueDate(v)
		return nil
	case announcement.FieldStatus:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case announcement.FieldWilayaID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWilayaID(v)
		return nil
	case announcement.FieldBusinessLineID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBusinessLineID(v)
		return nil
	case announcement.FieldAnnouncementTypeID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnnouncementTypeID(v)
		return nil
	case announcement.FieldWilayaName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWilayaName(v)
		return nil
	case announcement.FieldBusinessLineName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBusinessLineName(v)
		return nil
	case announcement.FieldAnnouncementTypeName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnnouncementTypeName(v)
		return nil
	case announcement.FieldBoundingBox:
		v, ok := value.(map[string]int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBoundingBox(v)
		return nil
	case announcement.FieldSourceFile:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceFile(v)
		return nil
	case announcement.FieldSourcePage:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourcePage(v)
		return nil
	case announcement.FieldIssueNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIssueNumber(v)
		return nil
	case announcement.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Announcement field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AnnouncementMutation) AddedFields() []string {
	var fields []string
	if m.adddue_amount != nil {
		fields = append(fields, announcement.FieldDueAmount)
	}
	if m.addstatus != nil {
		fields = append(fields, announcement.FieldStatus)
	}
	if m.addsource_page != nil {
		fields = append(fields, announcement.FieldSourcePage)
	}
	if m.addissue_number != nil {
		fields = append(fields, announcement.FieldIssueNumber)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AnnouncementMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case announcement.FieldDueAmount:
		return m.AddedDueAmount()
	case announcement.FieldStatus:
		return m.AddedStatus()
	case announcement.FieldSourcePage:
		return m.AddedSourcePage()
	case announcement.FieldIssueNumber:
		return m.AddedIssueNumber()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnnouncementMutation) AddField(name string, value ent.Value) error {
	switch name {
	case announcement.FieldDueAmount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDueAmount(v)
		return nil
	case announcement.FieldStatus:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStatus(v)
		return nil
	case announcement.FieldSourcePage:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSourcePage(v)
		return nil
	case announcement.FieldIssueNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIssueNumber(v)
		return nil
	}
	return fmt.Errorf("unknown Announcement numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AnnouncementMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(announcement.FieldDescription) {
		fields = append(fields, announcement.FieldDescription)
	}
	if m.FieldCleared(announcement.FieldNumber) {
		fields = append(fields, announcement.FieldNumber)
	}
	if m.FieldCleared(announcement.FieldOwner) {
		fields = append(fields, announcement.FieldOwner)
	}
	if m.FieldCleared(announcement.FieldTerms) {
		fields = append(fields, announcement.FieldTerms)
	}
	if m.FieldCleared(announcement.FieldContact) {
		fields = append(fields, announcement.FieldContact)
	}
	if m.FieldCleared(announcement.FieldDueAmount) {
		fields = append(fields, announcement.FieldDueAmount)
	}
	if m.FieldCleared(announcement.FieldPublishDate) {
		fields = append(fields, announcement.FieldPublishDate)
	}
	if m.FieldCleared(announcement.FieldDueDate) {
		fields = append(fields, announcement.FieldDueDate)
	}
	if m.FieldCleared(announcement.FieldWilayaID) {
		fields = append(fields, announcement.FieldWilayaID)
	}
	if m.FieldCleared(announcement.FieldBusinessLineID) {
		fields = append(fields, announcement.FieldBusinessLineID)
	}
	if m.FieldCleared(announcement.FieldAnnouncementTypeID) {
		fields = append(fields, announcement.FieldAnnouncementTypeID)
	}
	if m.FieldCleared(announcement.FieldWilayaName) {
		fields = append(fields, announcement.FieldWilayaName)
	}
	if m.FieldCleared(announcement.FieldBusinessLineName) {
		fields = append(fields, announcement.FieldBusinessLineName)
	}
	if m.FieldCleared(announcement.FieldAnnouncementTypeName) {
		fields = append(fields, announcement.FieldAnnouncementTypeName)
	}
	if m.FieldCleared(announcement.FieldBoundingBox) {
		fields = append(fields, announcement.FieldBoundingBox)
	}
	if m.FieldCleared(announcement.FieldSourceFile) {
		fields = append(fields, announcement.FieldSourceFile)
	}
	if m.FieldCleared(announcement.FieldSourcePage) {
		fields = append(fields, announcement.FieldSourcePage)
	}
	if m.FieldCleared(announcement.FieldIssueNumber) {
		fields = append(fields, announcement.FieldIssueNumber)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AnnouncementMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AnnouncementMutation) ClearField(name string) error {
	switch name {
	case announcement.FieldDescription:
		m.ClearDescription()
		return nil
	case announcement.FieldNumber:
		m.ClearNumber()
		return nil
	case announcement.FieldOwner:
		m.ClearOwner()
		return nil
	case announcement.FieldTerms:
		m.ClearTerms()
		return nil
	case announcement.FieldContact:
		m.ClearContact()
		return nil
	case announcement.FieldDueAmount:
		m.ClearDueAmount()
		return nil
	case announcement.FieldPublishDate:
		m.ClearPublishDate()
		return nil
	case announcement.FieldDueDate:
		m.ClearDueDate()
		return nil
	case announcement.FieldWilayaID:
		m.ClearWilayaID()
		return nil
	case announcement.FieldBusinessLineID:
		m.ClearBusinessLineID()
		return nil
	case announcement.FieldAnnouncementTypeID:
		m.ClearAnnouncementTypeID()
		return nil
	case announcement.FieldWilayaName:
		m.ClearWilayaName()
		return nil
	case announcement.FieldBusinessLineName:
		m.ClearBusinessLineName()
		return nil
	case announcement.FieldAnnouncementTypeName:
		m.ClearAnnouncementTypeName()
		return nil
	case announcement.FieldBoundingBox:
		m.ClearBoundingBox()
		return nil
	case announcement.FieldSourceFile:
		m.ClearSourceFile()
		return nil
	case announcement.FieldSourcePage:
		m.ClearSourcePage()
		return nil
	case announcement.FieldIssueNumber:
		m.ClearIssueNumber()
		return nil
	}
	return fmt.Errorf("unknown Announcement nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AnnouncementMutation) ResetField(name string) error {
	switch name {
	case announcement.FieldTitle:
		m.ResetTitle()
		return nil
	case announcement.FieldDescription:
		m.ResetDescription()
		return nil
	case announcement.FieldNumber:
		m.ResetNumber()
		return nil
	case announcement.FieldOwner:
		m.ResetOwner()
		return nil
	case announcement.FieldTerms:
		m.ResetTerms()
		return nil
	case announcement.FieldContact:
		m.ResetContact()
		return nil
	case announcement.FieldDueAmount:
		m.ResetDueAmount()
		return nil
	case announcement.FieldPublishDate:
		m.ResetPublishDate()
		return nil
	case announcement.FieldDueDate:
		m.ResetDueDate()
		return nil
	case announcement.FieldStatus:
		m.ResetStatus()
		return nil
	case announcement.FieldWilayaID:
		m.ResetWilayaID()
		return nil
	case announcement.FieldBusinessLineID:
		m.ResetBusinessLineID()
		return nil
	case announcement.FieldAnnouncementTypeID:
		m.ResetAnnouncementTypeID()
		return nil
	case announcement.FieldWilayaName:
		m.ResetWilayaName()
		return nil
	case announcement.FieldBusinessLineName:
		m.ResetBusinessLineName()
		return nil
	case announcement.FieldAnnouncementTypeName:
		m.ResetAnnouncementTypeName()
		return nil
	case announcement.FieldBoundingBox:
		m.ResetBoundingBox()
		return nil
	case announcement.FieldSourceFile:
		m.ResetSourceFile()
		return nil
	case announcement.FieldSourcePage:
		m.ResetSourcePage()
		return nil
	case announcement.FieldIssueNumber:
		m.ResetIssueNumber()
		return nil
	case announcement.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Announcement field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AnnouncementMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.wilaya != nil {
		edges = append(edges, announcement.EdgeWilaya)
	}
	if m.business_line != nil {
		edges = append(edges, announcement.EdgeBusinessLine)
	}
	if m.announcement_type != nil {
		edges = append(edges, announcement.EdgeAnnouncementType)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AnnouncementMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case announcement.EdgeWilaya:
		if id := m.wilaya; id != nil {
			return []ent.Value{*id}
		}
	case announcement.EdgeBusinessLine:
		if id := m.business_line; id != nil {
			return []ent.Value{*id}
		}
	case announcement.EdgeAnnouncementType:
		if id := m.announcement_type; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AnnouncementMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AnnouncementMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AnnouncementMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedwilaya {
		edges = append(edges, announcement.EdgeWilaya)
	}
	if m.clearedbusiness_line {
		edges = append(edges, announcement.EdgeBusinessLine)
	}
	if m.clearedannouncement_type {
		edges = append(edges, announcement.EdgeAnnouncementType)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AnnouncementMutation) EdgeCleared(name string) bool {
	switch name {
	case announcement.EdgeWilaya:
		return m.clearedwilaya
	case announcement.EdgeBusinessLine:
		return m.clearedbusiness_line
	case announcement.EdgeAnnouncementType:
		return m.clearedannouncement_type
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AnnouncementMutation) ClearEdge(name string) error {
	switch name {
	case announcement.EdgeWilaya:
		m.ClearWilaya()
		return nil
	case announcement.EdgeBusinessLine:
		m.ClearBusinessLine()
		return nil
	case announcement.EdgeAnnouncementType:
		m.ClearAnnouncementType()
		return nil
	}
	return fmt.Errorf("unknown Announcement unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AnnouncementMutation) ResetEdge(name string) error {
	switch name {
	case announcement.EdgeWilaya:
		m.ResetWilaya()
		return nil
	case announcement.EdgeBusinessLine:
		m.ResetBusinessLine()
		return nil
	case announcement.EdgeAnnouncementType:
		m.ResetAnnouncementType()
		return nil
	}
	return fmt.Errorf("unknown Announcement edge %s", name)
}

// AnnouncementTypeMutation represents an operation that mutates the AnnouncementType nodes in the graph.
type AnnouncementTypeMutation struct {
	config
	op                   Op
	typ                  string
	id                   *int
	name                 *string
	clearedFields        map[string]struct{}
	announcements        map[uuid.UUID]struct{}
	removedannouncements map[uuid.UUID]struct{}
	clearedannouncements bool
	done                 bool
	oldValue             func(context.Context) (*AnnouncementType, error)
	predicates           []predicate.AnnouncementType
}

var _ ent.Mutation = (*AnnouncementTypeMutation)(nil)

// announcementtypeOption allows management of the mutation configuration using functional options.
type announcementtypeOption func(*AnnouncementTypeMutation)

// newAnnouncementTypeMutation creates new mutation for the AnnouncementType entity.
func newAnnouncementTypeMutation(c config, op Op, opts ...announcementtypeOption) *AnnouncementTypeMutation {
	m := &AnnouncementTypeMutation{
		config:        c,
		op:            op,
		typ:           TypeAnnouncementType,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAnnouncementTypeID sets the ID field of the mutation.
func withAnnouncementTypeID(id int) announcementtypeOption {
	return func(m *AnnouncementTypeMutation) {
		var (
			err   error
			once  sync.Once
			value *AnnouncementType
		)
		m.oldValue = func(ctx context.Context) (*AnnouncementType, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AnnouncementType.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAnnouncementType sets the old AnnouncementType of the mutation.
func withAnnouncementType(node *AnnouncementType) announcementtypeOption {
	return func(m *AnnouncementTypeMutation) {
		m.oldValue = func(context.Context) (*AnnouncementType, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AnnouncementTypeMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AnnouncementTypeMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AnnouncementType entities.
func (m *AnnouncementTypeMutation) SetID(id int) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AnnouncementTypeMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AnnouncementTypeMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AnnouncementType.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *AnnouncementTypeMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *AnnouncementTypeMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the AnnouncementType entity.
// If the AnnouncementType object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnnouncementTypeMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *AnnouncementTypeMutation) ResetName() {
	m.name = nil
}

// AddAnnouncementIDs adds the "announcements" edge to the Announcement entity by ids.
func (m *AnnouncementTypeMutation) AddAnnouncementIDs(ids ...uuid.UUID) {
	if m.announcements == nil {
		m.announcements = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.announcements[ids[i]] = struct{}{}
	}
}

// ClearAnnouncements clears the "announcements" edge to the Announcement entity.
func (m *AnnouncementTypeMutation) ClearAnnouncements() {
	m.clearedannouncements = true
}

// AnnouncementsCleared reports if the "announcements" edge to the Announcement entity was cleared.
func (m *AnnouncementTypeMutation) AnnouncementsCleared() bool {
	return m.clearedannouncements
}

// RemoveAnnouncementIDs removes the "announcements" edge to the Announcement entity by IDs.
func (m *AnnouncementTypeMutation) RemoveAnnouncementIDs(ids ...uuid.UUID) {
	if m.removedannouncements == nil {
		m.removedannouncements = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.announcements, ids[i])
		m.removedannouncements[ids[i]] = struct{}{}
	}
}

// RemovedAnnouncements returns the removed IDs of the "announcements" edge to the Announcement entity.
func (m *AnnouncementTypeMutation) RemovedAnnouncementsIDs() (ids []uuid.UUID) {
	for id := range m.removedannouncements {
		ids = append(ids, id)
	}
	return
}

// AnnouncementsIDs returns the "announcements" edge IDs in the mutation.
func (m *AnnouncementTypeMutation) AnnouncementsIDs() (ids []uuid.UUID) {
	for id := range m.announcements {
		ids = append(ids, id)
	}
	return
}

// ResetAnnouncements resets all changes to the "announcements" edge.
func (m *AnnouncementTypeMutation) ResetAnnouncements() {
	m.announcements = nil
	m.clearedannouncements = false
	m.removedannouncements = nil
}

// Where appends a list predicates to the AnnouncementTypeMutation builder.
func (m *AnnouncementTypeMutation) Where(ps ...predicate.AnnouncementType) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AnnouncementTypeMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AnnouncementTypeMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AnnouncementType, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AnnouncementTypeMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AnnouncementTypeMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AnnouncementType).
func (m *AnnouncementTypeMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AnnouncementTypeMutation) Fields() []string {
	fields := make([]string, 0, 1)
	if m.name != nil {
		fields = append(fields, announcementtype.FieldName)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AnnouncementTypeMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case announcementtype.FieldName:
		return m.Name()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AnnouncementTypeMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case announcementtype.FieldName:
		return m.OldName(ctx)
	}
	return nil, fmt.Errorf("unknown AnnouncementType field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnnouncementTypeMutation) SetField(name string, value ent.Value) error {
	switch name {
	case announcementtype.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	}
	return fmt.Errorf("unknown AnnouncementType field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AnnouncementTypeMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AnnouncementTypeMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnnouncementTypeMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AnnouncementType numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AnnouncementTypeMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AnnouncementTypeMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AnnouncementTypeMutation) ClearField(name string) error {
	return fmt.Errorf("unknown AnnouncementType nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AnnouncementTypeMutation) ResetField(name string) error {
	switch name {
	case announcementtype.FieldName:
		m.ResetName()
		return nil
	}
	return fmt.Errorf("unknown AnnouncementType field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AnnouncementTypeMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.announcements != nil {
		edges = append(edges, announcementtype.EdgeAnnouncements)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AnnouncementTypeMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case announcementtype.EdgeAnnouncements:
		ids := make([]ent.Value, 0, len(m.announcements))
		for id := range m.announcements {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AnnouncementTypeMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedannouncements != nil {
		edges = append(edges, announcementtype.EdgeAnnouncements)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AnnouncementTypeMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case announcementtype.EdgeAnnouncements:
		ids := make([]ent.Value, 0, len(m.removedannouncements))
		for id := range m.removedannouncements {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AnnouncementTypeMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedannouncements {
		edges = append(edges, announcementtype.EdgeAnnouncements)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AnnouncementTypeMutation) EdgeCleared(name string) bool {
	switch name {
	case announcementtype.EdgeAnnouncements:
		return m.clearedannouncements
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AnnouncementTypeMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown AnnouncementType unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AnnouncementTypeMutation) ResetEdge(name string) error {
	switch name {
	case announcementtype.EdgeAnnouncements:
		m.ResetAnnouncements()
		return nil
	}
	return fmt.Errorf("unknown AnnouncementType edge %s", name)
}

// BusinessLineMutation represents an operation that mutates the BusinessLine nodes in the graph.
type BusinessLineMutation struct {
	config
	op                   Op
	typ                  string
	id                   *int
	name                 *string
	clearedFields        map[string]struct{}
	announcements        map[uuid.UUID]struct{}
	removedannouncements map[uuid.UUID]struct{}
	clearedannouncements bool
	done                 bool
	oldValue             func(context.Context) (*BusinessLine, error)
	predicates           []predicate.BusinessLine
}

var _ ent.Mutation = (*BusinessLineMutation)(nil)

// businesslineOption allows management of the mutation configuration using functional options.
type businesslineOption func(*BusinessLineMutation)

// newBusinessLineMutation creates new mutation for the BusinessLine entity.
func newBusinessLineMutation(c config, op Op, opts ...businesslineOption) *BusinessLineMutation {
	m := &BusinessLineMutation{
		config:        c,
		op:            op,
		typ:           TypeBusinessLine,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBusinessLineID sets the ID field of the mutation.
func withBusinessLineID(id int) businesslineOption {
	return func(m *BusinessLineMutation) {
		var (
			err   error
			once  sync.Once
			value *BusinessLine
		)
		m.oldValue = func(ctx context.Context) (*BusinessLine, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().BusinessLine.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBusinessLine sets the old BusinessLine of the mutation.
func withBusinessLine(node *BusinessLine) businesslineOption {
	return func(m *BusinessLineMutation) {
		m.oldValue = func(context.Context) (*BusinessLine, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BusinessLineMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BusinessLineMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of BusinessLine entities.
func (m *BusinessLineMutation) SetID(id int) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BusinessLineMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BusinessLineMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().BusinessLine.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *BusinessLineMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *BusinessLineMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the BusinessLine entity.
// If the BusinessLine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessLineMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *BusinessLineMutation) ResetName() {
	m.name = nil
}

// AddAnnouncementIDs adds the "announcements" edge to the Announcement entity by ids.
func (m *BusinessLineMutation) AddAnnouncementIDs(ids ...uuid.UUID) {
	if m.announcements == nil {
		m.announcements = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.announcements[ids[i]] = struct{}{}
	}
}

// ClearAnnouncements clears the "announcements" edge to the Announcement entity.
func (m *BusinessLineMutation) ClearAnnouncements() {
	m.clearedannouncements = true
}

// AnnouncementsCleared reports if the "announcements" edge to the Announcement entity was cleared.
func (m *BusinessLineMutation) AnnouncementsCleared() bool {
	return m.clearedannouncements
}

// RemoveAnnouncementIDs removes the "announcements" edge to the Announcement entity by IDs.
func (m *BusinessLineMutation) RemoveAnnouncementIDs(ids ...uuid.UUID) {
	if m.removedannouncements == nil {
		m.removedannouncements = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.announcements, ids[i])
		m.removedannouncements[ids[i]] = struct{}{}
	}
}

// RemovedAnnouncements returns the removed IDs of the "announcements" edge to the Announcement entity.
func (m *BusinessLineMutation) RemovedAnnouncementsIDs() (ids []uuid.UUID) {
	for id := range m.removedannouncements {
		ids = append(ids, id)
	}
	return
}

// AnnouncementsIDs returns the "announcements" edge IDs in the mutation.
func (m *BusinessLineMutation) AnnouncementsIDs() (ids []uuid.UUID) {
	for id := range m.announcements {
		ids = append(ids, id)
	}
	return
}

// ResetAnnouncements resets all changes to the "announcements" edge.
func (m *BusinessLineMutation) ResetAnnouncements() {
	m.announcements = nil
	m.clearedannouncements = false
	m.removedannouncements = nil
}

// Where appends a list predicates to the BusinessLineMutation builder.
func (m *BusinessLineMutation) Where(ps ...predicate.BusinessLine) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BusinessLineMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BusinessLineMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.BusinessLine, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BusinessLineMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BusinessLineMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (BusinessLine).
func (m *BusinessLineMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BusinessLineMutation) Fields() []string {
	fields := make([]string, 0, 1)
	if m.name != nil {
		fields = append(fields, businessline.FieldName)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BusinessLineMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case businessline.FieldName:
		return m.Name()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BusinessLineMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case businessline.FieldName:
		return m.OldName(ctx)
	}
	return nil, fmt.Errorf("unknown BusinessLine field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BusinessLineMutation) SetField(name string, value ent.Value) error {
	switch name {
	case businessline.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	}
	return fmt.Errorf("unknown BusinessLine field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BusinessLineMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BusinessLineMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BusinessLineMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown BusinessLine numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BusinessLineMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BusinessLineMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BusinessLineMutation) ClearField(name string) error {
	return fmt.Errorf("unknown BusinessLine nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BusinessLineMutation) ResetField(name string) error {
	switch name {
	case businessline.FieldName:
		m.ResetName()
		return nil
	}
	return fmt.Errorf("unknown BusinessLine field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BusinessLineMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.announcements != nil {
		edges = append(edges, businessline.EdgeAnnouncements)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BusinessLineMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case businessline.EdgeAnnouncements:
		ids := make([]ent.Value, 0, len(m.announcements))
		for id := range m.announcements {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BusinessLineMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedannouncements != nil {
		edges = append(edges, businessline.EdgeAnnouncements)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BusinessLineMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case businessline.EdgeAnnouncements:
		ids := make([]ent.Value, 0, len(m.removedannouncements))
		for id := range m.removedannouncements {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BusinessLineMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedannouncements {
		edges = append(edges, businessline.EdgeAnnouncements)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BusinessLineMutation) EdgeCleared(name string) bool {
	switch name {
	case businessline.EdgeAnnouncements:
		return m.clearedannouncements
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BusinessLineMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown BusinessLine unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BusinessLineMutation) ResetEdge(name string) error {
	switch name {
	case businessline.EdgeAnnouncements:
		m.ResetAnnouncements()
		return nil
	}
	return fmt.Errorf("unknown BusinessLine edge %s", name)
}

// WilayaMutation represents an operation that mutates the Wilaya nodes in the graph.
type WilayaMutation struct {
	config
	op                   Op
	typ                  string
	id                   *int
	name                 *string
	clearedFields        map[string]struct{}
	announcements        map[uuid.UUID]struct{}
	removedannouncements map[uuid.UUID]struct{}
	clearedannouncements bool
	done                 bool
	oldValue             func(context.Context) (*Wilaya, error)
	predicates           []predicate.Wilaya
}

var _ ent.Mutation = (*WilayaMutation)(nil)

// wilayaOption allows management of the mutation configuration using functional options.
type wilayaOption func(*WilayaMutation)

// newWilayaMutation creates new mutation for the Wilaya entity.
func newWilayaMutation(c config, op Op, opts ...wilayaOption) *WilayaMutation {
	m := &WilayaMutation{
		config:        c,
		op:            op,
		typ:           TypeWilaya,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWilayaID sets the ID field of the mutation.
func withWilayaID(id int) wilayaOption {
	return func(m *WilayaMutation) {
		var (
			err   error
			once  sync.Once
			value *Wilaya
		)
		m.oldValue = func(ctx context.Context) (*Wilaya, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Wilaya.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWilaya sets the old Wilaya of the mutation.
func withWilaya(node *Wilaya) wilayaOption {
	return func(m *WilayaMutation) {
		m.oldValue = func(context.Context) (*Wilaya, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WilayaMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WilayaMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Wilaya entities.
func (m *WilayaMutation) SetID(id int) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WilayaMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WilayaMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Wilaya.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *WilayaMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *WilayaMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Wilaya entity.
// If the Wilaya object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WilayaMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *WilayaMutation) ResetName() {
	m.name = nil
}

// AddAnnouncementIDs adds the "announcements" edge to the Announcement entity by ids.
func (m *WilayaMutation) AddAnnouncementIDs(ids ...uuid.UUID) {
	if m.announcements == nil {
		m.announcements = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.announcements[ids[i]] = struct{}{}
	}
}

// ClearAnnouncements clears the "announcements" edge to the Announcement entity.
func (m *WilayaMutation) ClearAnnouncements() {
	m.clearedannouncements = true
}

// AnnouncementsCleared reports if the "announcements" edge to the Announcement entity was cleared.
func (m *WilayaMutation) AnnouncementsCleared() bool {
	return m.clearedannouncements
}

// RemoveAnnouncementIDs removes the "announcements" edge to the Announcement entity by IDs.
func (m *WilayaMutation) RemoveAnnouncementIDs(ids ...uuid.UUID) {
	if m.removedannouncements == nil {
		m.removedannouncements = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.announcements, ids[i])
		m.removedannouncements[ids[i]] = struct{}{}
	}
}

// RemovedAnnouncements returns the removed IDs of the "announcements" edge to the Announcement entity.
func (m *WilayaMutation) RemovedAnnouncementsIDs() (ids []uuid.UUID) {
	for id := range m.removedannouncements {
		ids = append(ids, id)
	}
	return
}

// AnnouncementsIDs returns the "announcements" edge IDs in the mutation.
func (m *WilayaMutation) AnnouncementsIDs() (ids []uuid.UUID) {
	for id := range m.announcements {
		ids = append(ids, id)
	}
	return
}

// ResetAnnouncements resets all changes to the "announcements" edge.
func (m *WilayaMutation) ResetAnnouncements() {
	m.announcements = nil
	m.clearedannouncements = false
	m.removedannouncements = nil
}

// Where appends a list predicates to the WilayaMutation builder.
func (m *WilayaMutation) Where(ps ...predicate.Wilaya) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WilayaMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WilayaMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Wilaya, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WilayaMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WilayaMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Wilaya).
func (m *WilayaMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WilayaMutation) Fields() []string {
	fields := make([]string, 0, 1)
	if m.name != nil {
		fields = append(fields, wilaya.FieldName)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WilayaMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case wilaya.FieldName:
		return m.Name()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WilayaMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case wilaya.FieldName:
		return m.OldName(ctx)
	}
	return nil, fmt.Errorf("unknown Wilaya field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WilayaMutation) SetField(name string, value ent.Value) error {
	switch name {
	case wilaya.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	}
	return fmt.Errorf("unknown Wilaya field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WilayaMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WilayaMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WilayaMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Wilaya numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WilayaMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WilayaMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WilayaMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Wilaya nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WilayaMutation) ResetField(name string) error {
	switch name {
	case wilaya.FieldName:
		m.ResetName()
		return nil
	}
	return fmt.Errorf("unknown Wilaya field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WilayaMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.announcements != nil {
		edges = append(edges, wilaya.EdgeAnnouncements)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WilayaMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case wilaya.EdgeAnnouncements:
		ids := make([]ent.Value, 0, len(m.announcements))
		for id := range m.announcements {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WilayaMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedannouncements != nil {
		edges = append(edges, wilaya.EdgeAnnouncements)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WilayaMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case wilaya.EdgeAnnouncements:
		ids := make([]ent.Value, 0, len(m.removedannouncements))
		for id := range m.removedannouncements {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WilayaMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedannouncements {
		edges = append(edges, wilaya.EdgeAnnouncements)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WilayaMutation) EdgeCleared(name string) bool {
	switch name {
	case wilaya.EdgeAnnouncements:
		return m.clearedannouncements
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WilayaMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Wilaya unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WilayaMutation) ResetEdge(name string) error {
	switch name {
	case wilaya.EdgeAnnouncements:
		m.ResetAnnouncements()
		return nil
	}
	return fmt.Errorf("unknown Wilaya edge %s", name)
}
