package summary

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/goliatone/go-answerfmt/pkg/answer"
	"github.com/goliatone/go-answerfmt/pkg/format"
	"github.com/goliatone/go-answerfmt/pkg/layout"
)

func sampleQuestions() []answer.Question {
	return []answer.Question{
		{Name: "name", Label: "Name", Required: true, DataType: answer.DataTypeText, Value: answer.PlainText{Raw: "Ana <3"}},
		{
			Name:       "fruit",
			Label:      "Fruit",
			DataType:   answer.DataTypeSelectMulti,
			Appearance: "columns",
			Value: answer.SelectionList{Items: []answer.Selection{
				{Value: "a", Label: answer.LabelOf("Apple")},
				{Value: "b", Label: answer.LabelOf("Banana")},
			}},
		},
		{Name: "count", Label: "Count", DataType: answer.DataTypeInteger, Appearance: "thousands-sep columns-4", Value: answer.NumericText{Raw: "12000"}},
	}
}

func buildRows() []Row {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	f := format.New(format.WithLogger(logger))
	r := layout.New(layout.WithLogger(logger))
	return Build(sampleQuestions(), answer.Form{}, f, r, layout.ScreenLarge)
}

func TestBuild(t *testing.T) {
	rows := buildRows()

	want := []Row{
		{Name: "name", Label: "Name", Required: true, Answer: "Ana <3", Columns: 1},
		{Name: "fruit", Label: "Fruit", Answer: "Apple, Banana", Columns: 4},
		{Name: "count", Label: "Count", Answer: "12,000", Columns: 1},
	}
	if diff := cmp.Diff(want, rows, cmpopts.IgnoreFields(Row{}, "LabelHTML")); diff != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(string(rows[0].LabelHTML), "<span") {
		t.Fatalf("expected required marker in label html, got %q", rows[0].LabelHTML)
	}
}

func TestText(t *testing.T) {
	var buf bytes.Buffer
	if err := Text(&buf, buildRows()); err != nil {
		t.Fatalf("text: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header and 3 rows, got %q", buf.String())
	}
	if !strings.HasPrefix(lines[0], "QUESTION") || !strings.Contains(lines[1], "* Name") || !strings.Contains(lines[2], "Apple, Banana") {
		t.Fatalf("unexpected table:\n%s", buf.String())
	}
}

func TestHTML(t *testing.T) {
	var buf bytes.Buffer
	if err := HTML(&buf, "Sample", "en", buildRows()); err != nil {
		t.Fatalf("html: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"<title>Sample</title>",
		`data-name="fruit" data-columns="4"`,
		"<dd>Apple, Banana</dd>",
		"<dd>Ana &lt;3</dd>",
		"<dt>Fruit</dt>",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}
