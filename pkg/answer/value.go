package answer

import (
	"strings"
	"time"
)

// Kind names a Value variant.
type Kind string

const (
	KindSelectionList Kind = "selection-list"
	KindDate          Kind = "date"
	KindDateTime      Kind = "datetime"
	KindNumericText   Kind = "numeric-text"
	KindCodedText     Kind = "coded-text"
	KindPlainText     Kind = "plain-text"
)

// Value is the closed set of answer variants. Only types in this package
// implement it.
type Value interface {
	Kind() Kind
	// Text returns the raw, unformatted representation of the answer.
	Text() string
	isValue()
}

// Selection is one chosen option. Label holds the externally resolved display
// label and is nil when the choice has none.
type Selection struct {
	Value string  `json:"value" yaml:"value"`
	Label *string `json:"label,omitempty" yaml:"label,omitempty"`
}

// DisplayLabel returns the resolved label, or the choice value when no label
// was resolved.
func (s Selection) DisplayLabel() string {
	if s.Label != nil {
		return *s.Label
	}
	return s.Value
}

// LabelOf returns a pointer to label, for building selections inline.
func LabelOf(label string) *string {
	return &label
}

// SelectionList answers select-multiple and rank questions. Items keep the
// order in which they were selected.
type SelectionList struct {
	Items  []Selection
	Ranked bool
}

func (SelectionList) Kind() Kind { return KindSelectionList }

func (v SelectionList) Text() string {
	values := make([]string, 0, len(v.Items))
	for _, item := range v.Items {
		values = append(values, item.Value)
	}
	return strings.Join(values, " ")
}

func (SelectionList) isValue() {}

// DateValue answers date questions. Only the calendar date is meaningful.
type DateValue struct {
	Date time.Time
}

func (DateValue) Kind() Kind { return KindDate }

func (v DateValue) Text() string { return v.Date.Format(time.DateOnly) }

func (DateValue) isValue() {}

// DateTimeValue answers dateTime questions.
type DateTimeValue struct {
	Time time.Time
}

func (DateTimeValue) Kind() Kind { return KindDateTime }

func (v DateTimeValue) Text() string { return v.Time.Format("2006-01-02T15:04:05.000Z07:00") }

func (DateTimeValue) isValue() {}

// NumericText answers integer and decimal questions as entered.
type NumericText struct {
	Raw string
}

func (NumericText) Kind() Kind { return KindNumericText }

func (v NumericText) Text() string { return v.Raw }

func (NumericText) isValue() {}

// CodedText holds an item code that resolves to a label through an itemset
// lookup table.
type CodedText struct {
	Code string
}

func (CodedText) Kind() Kind { return KindCodedText }

func (v CodedText) Text() string { return v.Code }

func (CodedText) isValue() {}

// PlainText is the fallback variant.
type PlainText struct {
	Raw string
}

func (PlainText) Kind() Kind { return KindPlainText }

func (v PlainText) Text() string { return v.Raw }

func (PlainText) isValue() {}
