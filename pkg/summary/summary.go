// Package summary lays out formatted answers as a plain-text table or an HTML
// answer sheet.
package summary

import (
	_ "embed"
	"fmt"
	"html/template"
	"io"
	"strconv"
	"sync"
	"text/tabwriter"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-answerfmt/pkg/answer"
	"github.com/goliatone/go-answerfmt/pkg/format"
	"github.com/goliatone/go-answerfmt/pkg/layout"
)

// Row is one formatted question.
type Row struct {
	Name      string
	Label     string
	Required  bool
	LabelHTML template.HTML
	Answer    string
	Columns   int
}

//go:embed summary.tpl
var sheetTemplate string

var (
	sheetOnce sync.Once
	sheetTpl  *pongo2.Template
	sheetErr  error
)

// Build formats every question in order. Column counts are only resolved for
// choice questions; other rows report a single column.
func Build(questions []answer.Question, form format.FormContext, f *format.Formatter, r *layout.Resolver, size layout.ScreenSize) []Row {
	rows := make([]Row, 0, len(questions))
	for _, q := range questions {
		columns := layout.DefaultColumns
		if isChoice(q.DataType) {
			columns = r.Columns(q.Appearance, size)
		}
		rows = append(rows, Row{
			Name:      q.Name,
			Label:     q.Label,
			Required:  q.Required,
			LabelHTML: f.LabelText(q.Label, q.Required),
			Answer:    f.Format(q, form),
			Columns:   columns,
		})
	}
	return rows
}

func isChoice(dt answer.DataType) bool {
	switch dt {
	case answer.DataTypeSelectOne, answer.DataTypeSelectMulti, answer.DataTypeRank:
		return true
	default:
		return false
	}
}

// Text writes rows as an aligned table.
func Text(w io.Writer, rows []Row) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, "QUESTION\tLABEL\tANSWER\tCOLUMNS"); err != nil {
		return err
	}
	for _, row := range rows {
		label := row.Label
		if row.Required {
			label = "* " + label
		}
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", row.Name, label, row.Answer, strconv.Itoa(row.Columns)); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// HTML writes rows as an answer sheet document. Answers are escaped; labels
// are already sanitized rich text.
func HTML(w io.Writer, title, lang string, rows []Row) error {
	tpl, err := compiledSheet()
	if err != nil {
		return err
	}
	ctx := pongo2.Context{
		"title": title,
		"lang":  lang,
		"rows":  rows,
	}
	if err := tpl.ExecuteWriter(ctx, w); err != nil {
		return fmt.Errorf("summary: render sheet: %w", err)
	}
	return nil
}

func compiledSheet() (*pongo2.Template, error) {
	sheetOnce.Do(func() {
		sheetTpl, sheetErr = pongo2.FromString(sheetTemplate)
		if sheetErr != nil {
			sheetErr = fmt.Errorf("summary: compile sheet template: %w", sheetErr)
		}
	})
	return sheetTpl, sheetErr
}
