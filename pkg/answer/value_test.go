package answer

import (
	"testing"
	"time"
)

func TestValueText(t *testing.T) {
	when := time.Date(2024, time.March, 5, 14, 7, 9, 0, time.UTC)

	cases := []struct {
		name  string
		value Value
		kind  Kind
		want  string
	}{
		{
			name: "selection list joins values",
			value: SelectionList{Items: []Selection{
				{Value: "b", Label: LabelOf("Bee")},
				{Value: "a"},
			}},
			kind: KindSelectionList,
			want: "b a",
		},
		{name: "date", value: DateValue{Date: when}, kind: KindDate, want: "2024-03-05"},
		{name: "datetime", value: DateTimeValue{Time: when}, kind: KindDateTime, want: "2024-03-05T14:07:09.000Z"},
		{name: "numeric", value: NumericText{Raw: "12.50"}, kind: KindNumericText, want: "12.50"},
		{name: "coded", value: CodedText{Code: "ke"}, kind: KindCodedText, want: "ke"},
		{name: "plain", value: PlainText{Raw: "hello"}, kind: KindPlainText, want: "hello"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.value.Kind(); got != tc.kind {
				t.Fatalf("Kind() = %q, want %q", got, tc.kind)
			}
			if got := tc.value.Text(); got != tc.want {
				t.Fatalf("Text() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestSelectionDisplayLabel(t *testing.T) {
	if got := (Selection{Value: "x", Label: LabelOf("Ex")}).DisplayLabel(); got != "Ex" {
		t.Fatalf("expected resolved label, got %q", got)
	}
	if got := (Selection{Value: "x", Label: LabelOf("")}).DisplayLabel(); got != "" {
		t.Fatalf("expected empty resolved label to be kept, got %q", got)
	}
	if got := (Selection{Value: "x"}).DisplayLabel(); got != "x" {
		t.Fatalf("expected value fallback, got %q", got)
	}
}

func TestQuestionAnswerText(t *testing.T) {
	var q Question
	if q.Answered() || q.AnswerText() != "" {
		t.Fatalf("expected unanswered question to render empty text")
	}
	q.Value = PlainText{Raw: "ok"}
	if !q.Answered() || q.AnswerText() != "ok" {
		t.Fatalf("unexpected answer text %q", q.AnswerText())
	}
}

func TestQuestionHasItemsetQuery(t *testing.T) {
	if (Question{}).HasItemsetQuery() {
		t.Fatalf("expected no query without attributes")
	}
	q := Question{Attributes: map[string]string{AttributeQuery: "instance('counties')/root/item"}}
	if !q.HasItemsetQuery() {
		t.Fatalf("expected query attribute to be detected")
	}
}

func TestParseDataType(t *testing.T) {
	cases := map[string]DataType{
		"text":            DataTypeText,
		" Decimal ":       DataTypeDecimal,
		"select_multiple": DataTypeSelectMulti,
		"odk:rank":        DataTypeRank,
		"dateTime":        DataTypeDateTime,
	}
	for raw, want := range cases {
		got, err := ParseDataType(raw)
		if err != nil {
			t.Fatalf("ParseDataType(%q): unexpected error %v", raw, err)
		}
		if got != want {
			t.Fatalf("ParseDataType(%q) = %q, want %q", raw, got, want)
		}
	}

	if got, err := ParseDataType("hologram"); err == nil || got != DataTypeUnsupported {
		t.Fatalf("expected unsupported error, got %q (%v)", got, err)
	}
}

func TestFormContext(t *testing.T) {
	form := Form{Languages: []string{"English", "French"}, Language: "French", MediaFolder: "/forms/demo-media"}
	if len(form.DeclaredLanguages()) != 2 || form.CurrentLanguage() != "French" || form.MediaFolderPath() != "/forms/demo-media" {
		t.Fatalf("unexpected form context %+v", form)
	}
}
