package entity

// BoundingBox locates one announcement inside a page image, in pixel
// coordinates of the rendered page.
type BoundingBox struct {
	XMin int `json:"x_min"`
	YMin int `json:"y_min"`
	XMax int `json:"x_max"`
	YMax int `json:"y_max"`
}

// AnnouncementRecord is one parsed announcement from one detected region of
// one ad page. It is immutable after creation except for reconciliation of
// the three taxonomy fields.
type AnnouncementRecord struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Number      string `json:"number"`
	Owner       string `json:"owner"`
	Terms       string `json:"terms"`
	Contact     string `json:"contact"`
	DueAmount   *int64 `json:"due_amount"`
	PublishDate string `json:"publish_date"` // YYYY-MM-DD, may be empty
	DueDate     string `json:"due_date"`     // YYYY-MM-DD, may be empty
	Status      int    `json:"status"`

	Wilaya           TaxonomyEntry `json:"wilaya"`
	BusinessLine     TaxonomyEntry `json:"business_line"`
	AnnouncementType TaxonomyEntry `json:"announcement_type"`

	BoundingBox BoundingBox `json:"bounding_box"`
}
