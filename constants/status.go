package constants

// Announcement status codes (stored as integers).
const (
	AnnouncementStatusOpen      = 1
	AnnouncementStatusClosed    = 2
	AnnouncementStatusCancelled = 3
)

// StatusDefault is applied when the model omits or mangles the status field.
const StatusDefault = AnnouncementStatusOpen
