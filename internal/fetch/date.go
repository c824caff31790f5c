package fetch

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// Algerian Arabic month names as the publisher prints them.
var arabicMonths = map[string]time.Month{
	"جانفي":  time.January,
	"فيفري":  time.February,
	"مارس":   time.March,
	"أفريل":  time.April,
	"ماي":    time.May,
	"جوان":   time.June,
	"جويلية": time.July,
	"أوت":    time.August,
	"سبتمبر": time.September,
	"أكتوبر": time.October,
	"نوفمبر": time.November,
	"ديسمبر": time.December,
}

var arabicDateRe = regexp.MustCompile(`(\S+)\s+(\d+)\s+(\S+)\s+(\d+)`)

// ParseArabicDate parses a listing date like "الأحد 16 مارس 2025"
// (weekday, day, month, year).
func ParseArabicDate(s string) (time.Time, error) {
	m := arabicDateRe.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, fmt.Errorf("unrecognized date %q", s)
	}

	day, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[4])
	month, ok := arabicMonths[m[3]]
	if !ok {
		return time.Time{}, fmt.Errorf("unknown month %q in %q", m[3], s)
	}
	if day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("day out of range in %q", s)
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC), nil
}
