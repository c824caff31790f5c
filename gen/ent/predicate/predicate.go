// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Announcement is the predicate function for announcement builders.
type Announcement func(*sql.Selector)

// AnnouncementType is the predicate function for announcementtype builders.
type AnnouncementType func(*sql.Selector)

// BusinessLine is the predicate function for businessline builders.
type BusinessLine func(*sql.Selector)

// Wilaya is the predicate function for wilaya builders.
type Wilaya func(*sql.Selector)
