package vision

import "context"

const detectPrompt = `Detect all announcements in the attached newspaper page image.
For each announcement:
a. Compute its bounding box in pixel coordinates.
b. OCR the text and parse into fields:
   id, title, description, number, owner, terms, contact, dueAmount, publishDate, dueDate, status
c. Extract or infer the strings for Wilaya, Business Line, Announcement Type.
d. Case-insensitively match these strings against PREDEFINED_LISTS.
e. If match, insert the full object; if no match, create {id:null, name:original_string}.

Return a JSON array of announcement objects exactly matching this schema (no extra keys).

OUTPUT FORMAT EXAMPLE:
[
  {
    "announcement": {
      "id": "announcement_1",
      "title": "Tender for Office Supplies",
      "description": "Supply of standard office stationery",
      "number": "TDR-2025-01",
      "owner": "Regional Directorate of Education",
      "terms": null,
      "contact": "Procurement Office",
      "dueAmount": null,
      "publishDate": "2025-04-23",
      "dueDate": "2025-05-10",
      "status": 1
    },
    "wilaya": {"id": 2, "name": "wilaya_name2"},
    "businessLine": {"id": null, "name": "Office Stationery Supply"},
    "announcementType": {"id": 1, "name": "announcement_type1"},
    "boundingBox": {"x_min": 60, "y_min": 200, "x_max": 480, "y_max": 550}
  }
]`

// DetectAnnouncements runs full announcement detection over one page image.
// listsBlock is the rendered PREDEFINED_LISTS section (wilayas, business
// lines, announcement types) the model matches against. The raw model text
// is returned for the parser to validate; fences are already stripped.
func (c *Client) DetectAnnouncements(ctx context.Context, imagePath, listsBlock string) (string, error) {
	system := "PREDEFINED_LISTS:\n" + listsBlock
	content, err := c.chat(ctx, system, detectPrompt, imagePath)
	if err != nil {
		return "", err
	}
	return StripFences(content), nil
}
