package format

import (
	"log/slog"

	"golang.org/x/text/language"

	"github.com/goliatone/go-answerfmt/pkg/datetime"
	"github.com/goliatone/go-answerfmt/pkg/richtext"
)

// Option configures a Formatter.
type Option func(*Formatter)

// WithLocale sets the locale used for date labels and digit grouping.
func WithLocale(tag language.Tag) Option {
	return func(f *Formatter) {
		f.locale = tag
	}
}

// WithDateFormatter replaces the Gregorian date formatter.
func WithDateFormatter(formatter datetime.Formatter) Option {
	return func(f *Formatter) {
		if formatter != nil {
			f.dates = formatter
		}
	}
}

// WithItemLookup wires the itemset label lookup. Without one, itemset codes
// render as raw text.
func WithItemLookup(lookup ItemLookup) Option {
	return func(f *Formatter) {
		f.items = lookup
	}
}

// WithRichText replaces the markdown converter used by ChoiceText.
func WithRichText(converter richtext.Converter) Option {
	return func(f *Formatter) {
		if converter != nil {
			f.richText = converter
		}
	}
}

// WithLogger routes recoverable parse failures to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(f *Formatter) {
		if logger != nil {
			f.logger = logger
		}
	}
}
