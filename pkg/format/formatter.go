package format

import (
	"html/template"
	"log/slog"
	"strconv"
	"strings"

	"golang.org/x/text/language"

	"github.com/goliatone/go-answerfmt/pkg/answer"
	"github.com/goliatone/go-answerfmt/pkg/appearance"
	"github.com/goliatone/go-answerfmt/pkg/datetime"
	"github.com/goliatone/go-answerfmt/pkg/richtext"
)

// RequiredMarker prefixes the label of required questions.
const RequiredMarker = `<span style="color:#F44336">*</span> `

// ItemLookup resolves an itemset code to its label for the given media folder
// and language. Implementations are expected to be local and synchronous.
type ItemLookup interface {
	ItemLabel(code, mediaFolder, language string) string
}

// FormContext exposes the active form's language and media settings.
type FormContext interface {
	DeclaredLanguages() []string
	CurrentLanguage() string
	MediaFolderPath() string
}

// Formatter renders answers. It is immutable once built and safe for
// concurrent use.
type Formatter struct {
	locale    language.Tag
	dates     datetime.Formatter
	items     ItemLookup
	richText  richtext.Converter
	logger    *slog.Logger
	separator string
}

// New constructs a Formatter. The zero configuration formats for
// language.AmericanEnglish with Gregorian date labels and no item lookup.
func New(options ...Option) *Formatter {
	f := &Formatter{
		locale:   language.AmericanEnglish,
		dates:    datetime.Gregorian,
		richText: richtext.Markdown,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(f)
	}
	f.separator = groupingSeparator(f.locale)
	return f
}

// Locale reports the formatter locale.
func (f *Formatter) Locale() language.Tag {
	return f.locale
}

// Format returns the display text for the question's answer. form may be nil
// when no form context is available.
func (f *Formatter) Format(q answer.Question, form FormContext) string {
	switch value := q.Value.(type) {
	case answer.SelectionList:
		return joinSelections(value)
	case answer.DateTimeValue:
		return f.dates.Label(value.Time, appearance.DatePicker(q.Appearance), true, f.locale)
	case answer.DateValue:
		return f.dates.Label(value.Date, appearance.DatePicker(q.Appearance), false, f.locale)
	}

	if q.Value != nil && q.Appearance.Contains(appearance.TokenThousandsSep) {
		result := groupDecimal(q.AnswerText(), f.separator)
		if result.Err != nil {
			f.log().Warn("format: group thousands",
				slog.String("question", q.Name),
				slog.String("raw", q.AnswerText()),
				slog.Any("error", result.Err),
			)
		}
		return result.Text
	}

	if coded, ok := q.Value.(answer.CodedText); ok && q.DataType == answer.DataTypeText && q.HasItemsetQuery() && f.items != nil {
		return f.items.ItemLabel(coded.Code, mediaFolder(form), formLanguage(form))
	}

	return q.AnswerText()
}

// MarkRequired prefixes text with RequiredMarker when required is set. A nil
// text is treated as empty.
func MarkRequired(text *string, required bool) string {
	var value string
	if text != nil {
		value = *text
	}
	if !required {
		return value
	}
	return RequiredMarker + value
}

// ChoiceText renders a resolved choice label as rich text. A nil label yields
// empty output.
func (f *Formatter) ChoiceText(label *string) template.HTML {
	if label == nil {
		return ""
	}
	return f.richText.ToHTML(*label)
}

// LabelText renders a question label as rich text, marked when required.
func (f *Formatter) LabelText(label string, required bool) template.HTML {
	return f.richText.ToHTML(MarkRequired(&label, required))
}

func joinSelections(list answer.SelectionList) string {
	var b strings.Builder
	for i, item := range list.Items {
		if i > 0 {
			b.WriteString(", ")
		}
		if list.Ranked {
			b.WriteString(strconv.Itoa(i + 1))
			b.WriteString(". ")
		}
		b.WriteString(item.DisplayLabel())
	}
	return b.String()
}

func formLanguage(form FormContext) string {
	if form == nil || len(form.DeclaredLanguages()) == 0 {
		return ""
	}
	return form.CurrentLanguage()
}

func mediaFolder(form FormContext) string {
	if form == nil {
		return ""
	}
	return form.MediaFolderPath()
}

func (f *Formatter) log() *slog.Logger {
	if f.logger == nil {
		return slog.Default()
	}
	return f.logger
}
