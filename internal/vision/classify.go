package vision

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// PageVerdict is the model's ads-or-not answer for one page.
type PageVerdict struct {
	ContainsAds bool `json:"contains_ads"`
	Confidence  int  `json:"confidence"`
}

const classifyPrompt = `Analyze this newspaper page in Arabic and determine if it contains advertisements.
Focus on identifying commercial ads, classified ads, or announcement sections.
Look for the word "إشهار" (advertisement) which often appears at the top of ad pages.

Return ONLY a JSON object with the following structure:
{
    "contains_ads": true/false,
    "confidence": 0-100
}`

// ClassifyPage asks the model whether the page image contains advertisements.
// Confidence is clamped to 0..100.
func (c *Client) ClassifyPage(ctx context.Context, imagePath string) (PageVerdict, error) {
	content, err := c.chat(ctx, "", classifyPrompt, imagePath)
	if err != nil {
		return PageVerdict{}, err
	}

	var v PageVerdict
	if err := json.Unmarshal([]byte(StripFences(content)), &v); err != nil {
		return PageVerdict{}, fmt.Errorf("parse page verdict %q: %w", truncate(content, 200), err)
	}
	if v.Confidence < 0 {
		v.Confidence = 0
	}
	if v.Confidence > 100 {
		v.Confidence = 100
	}
	return v, nil
}

// StripFences removes a markdown code fence wrapper if the model added one.
func StripFences(s string) string {
	s = strings.TrimSpace(s)
	if after, ok := strings.CutPrefix(s, "```json"); ok {
		s = after
	} else if after, ok := strings.CutPrefix(s, "```"); ok {
		s = after
	} else {
		return s
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
