package appearance

// Calendar identifies the calendar system a date widget displays.
type Calendar string

// Supported calendars. Gregorian is the default.
const (
	CalendarGregorian    Calendar = "gregorian"
	CalendarEthiopian    Calendar = "ethiopian"
	CalendarCoptic       Calendar = "coptic"
	CalendarIslamic      Calendar = "islamic"
	CalendarBikramSambat Calendar = "bikram-sambat"
	CalendarMyanmar      Calendar = "myanmar"
	CalendarPersian      Calendar = "persian"
)

// PickerMode controls which date parts a widget collects and displays.
type PickerMode string

const (
	ModeCalendar  PickerMode = "calendar"
	ModeSpinners  PickerMode = "spinners"
	ModeMonthYear PickerMode = "month-year"
	ModeYear      PickerMode = "year"
)

const tokenNoCalendar = "no-calendar"

var alternateCalendars = []Calendar{
	CalendarEthiopian,
	CalendarCoptic,
	CalendarIslamic,
	CalendarBikramSambat,
	CalendarMyanmar,
	CalendarPersian,
}

// DatePickerDetails is the subset of an appearance hint that alters date and
// time presentation.
type DatePickerDetails struct {
	Calendar Calendar
	Mode     PickerMode
}

// MonthYear reports whether only month and year are shown.
func (d DatePickerDetails) MonthYear() bool {
	return d.Mode == ModeMonthYear
}

// YearOnly reports whether only the year is shown.
func (d DatePickerDetails) YearOnly() bool {
	return d.Mode == ModeYear
}

// DatePicker extracts date picker details from the hint. Alternate calendars
// always use spinners; `month-year` and `year` then narrow the displayed parts.
func DatePicker(h Hint) DatePickerDetails {
	details := DatePickerDetails{
		Calendar: CalendarGregorian,
		Mode:     ModeCalendar,
	}
	if h == "" {
		return details
	}

	normalized := h.Normalized()
	matched := false
	for _, calendar := range alternateCalendars {
		if normalized.Contains(string(calendar)) {
			details.Calendar = calendar
			details.Mode = ModeSpinners
			matched = true
			break
		}
	}
	if !matched && normalized.Contains(tokenNoCalendar) {
		details.Mode = ModeSpinners
	}

	switch {
	case normalized.Contains(string(ModeMonthYear)):
		details.Mode = ModeMonthYear
	case normalized.Contains(string(ModeYear)):
		details.Mode = ModeYear
	}
	return details
}
