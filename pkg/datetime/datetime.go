// Package datetime renders date and date-time answers as display labels.
package datetime

import (
	"time"

	"github.com/ncruces/go-strftime"
	"golang.org/x/text/language"

	"github.com/goliatone/go-answerfmt/pkg/appearance"
)

// Formatter turns an instant into a locale-aware label honouring the date
// picker details parsed from a question's appearance.
type Formatter interface {
	Label(t time.Time, details appearance.DatePickerDetails, includeTime bool, tag language.Tag) string
}

// FormatterFunc adapts a function to Formatter.
type FormatterFunc func(t time.Time, details appearance.DatePickerDetails, includeTime bool, tag language.Tag) string

// Label calls fn.
func (fn FormatterFunc) Label(t time.Time, details appearance.DatePickerDetails, includeTime bool, tag language.Tag) string {
	return fn(t, details, includeTime, tag)
}

const (
	patternMonthFirst = "%b %d, %Y"
	patternDayFirst   = "%d %b %Y"
	patternMonthYear  = "%B %Y"
	patternYear       = "%Y"
	patternTime       = " %H:%M"
)

// gregorian renders labels on the Gregorian calendar. Alternate calendars in
// the picker details are displayed as their Gregorian equivalent.
type gregorian struct{}

// Gregorian is the default Formatter.
var Gregorian Formatter = gregorian{}

func (gregorian) Label(t time.Time, details appearance.DatePickerDetails, includeTime bool, tag language.Tag) string {
	return strftime.Format(Pattern(details, includeTime, tag), t)
}

// Pattern returns the strftime pattern used for the supplied details and tag.
// English locales put the month first; every other locale puts the day first.
func Pattern(details appearance.DatePickerDetails, includeTime bool, tag language.Tag) string {
	var pattern string
	switch {
	case details.MonthYear():
		pattern = patternMonthYear
	case details.YearOnly():
		pattern = patternYear
	case monthFirst(tag):
		pattern = patternMonthFirst
	default:
		pattern = patternDayFirst
	}
	if includeTime {
		pattern += patternTime
	}
	return pattern
}

func monthFirst(tag language.Tag) bool {
	if tag == language.Und {
		return true
	}
	base, _ := tag.Base()
	english, _ := language.English.Base()
	return base == english
}
