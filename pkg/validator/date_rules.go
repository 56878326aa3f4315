package validator

import (
	"regexp"
	"strconv"
	"time"
)

// dateRegex limits accepted dates to ISO form with a year between 2000 and 2299.
var dateRegex = regexp.MustCompile(`^2[0-2][0-9][0-9]-[0-9][0-9]-[0-9][0-9]$`)

// CheckDate reports whether v is a YYYY-MM-DD string naming a real calendar
// day in the years 2000 through 2299.
func CheckDate(v any) bool {
	if !CheckString(v, false) {
		return false
	}
	s := v.(string)
	if !dateRegex.MatchString(s) {
		return false
	}

	year, _ := strconv.Atoi(s[0:4])
	month, _ := strconv.Atoi(s[5:7])
	day, _ := strconv.Atoi(s[8:10])

	return isCalendarDate(year, month, day)
}

// isCalendarDate rejects out-of-range months and days that time.Date would
// otherwise normalize into the following month.
func isCalendarDate(year, month, day int) bool {
	if month < 1 || month > 12 || day < 1 {
		return false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return t.Year() == year && int(t.Month()) == month && t.Day() == day
}
