// Package fixture loads YAML answer sheets: a form context plus a list of
// questions with their declared types, appearances, choices and answers. The
// declared type decides which answer variant each raw answer becomes.
package fixture

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-answerfmt/pkg/answer"
	"github.com/goliatone/go-answerfmt/pkg/appearance"
)

// Sheet is a decoded answer sheet.
type Sheet struct {
	Form      answer.Form
	Questions []answer.Question
}

type sheetFile struct {
	Title       string         `yaml:"title"`
	Languages   []string       `yaml:"languages"`
	Language    string         `yaml:"language"`
	MediaFolder string         `yaml:"media_folder"`
	Questions   []questionFile `yaml:"questions"`
}

type questionFile struct {
	Name       string            `yaml:"name"`
	Label      string            `yaml:"label"`
	Required   bool              `yaml:"required"`
	Type       string            `yaml:"type"`
	Appearance string            `yaml:"appearance"`
	Attributes map[string]string `yaml:"attributes"`
	Choices    []choiceFile      `yaml:"choices"`
	Answer     yaml.Node         `yaml:"answer"`
}

type choiceFile struct {
	Value string  `yaml:"value"`
	Label *string `yaml:"label"`
}

// Load reads the sheet at path.
func Load(path string) (Sheet, error) {
	if strings.TrimSpace(path) == "" {
		return Sheet{}, errors.New("fixture: sheet path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Sheet{}, fmt.Errorf("fixture: read sheet: %w", err)
	}
	return Parse(data, path)
}

// Decode reads a sheet from r. source names the input in error messages.
func Decode(r io.Reader, source string) (Sheet, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Sheet{}, fmt.Errorf("fixture: read %s: %w", source, err)
	}
	return Parse(data, source)
}

// Parse decodes sheet YAML.
func Parse(data []byte, source string) (Sheet, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Sheet{}, fmt.Errorf("fixture: sheet %s is empty", source)
	}
	var raw sheetFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Sheet{}, fmt.Errorf("fixture: parse %s: %w", source, err)
	}

	sheet := Sheet{
		Form: answer.Form{
			Title:       strings.TrimSpace(raw.Title),
			Languages:   raw.Languages,
			Language:    strings.TrimSpace(raw.Language),
			MediaFolder: strings.TrimSpace(raw.MediaFolder),
		},
		Questions: make([]answer.Question, 0, len(raw.Questions)),
	}

	seen := make(map[string]struct{}, len(raw.Questions))
	for i, rq := range raw.Questions {
		q, err := buildQuestion(rq)
		if err != nil {
			return Sheet{}, fmt.Errorf("fixture: %s question %d: %w", source, i, err)
		}
		if _, dup := seen[q.Name]; dup {
			return Sheet{}, fmt.Errorf("fixture: %s defines duplicate question %q", source, q.Name)
		}
		seen[q.Name] = struct{}{}
		sheet.Questions = append(sheet.Questions, q)
	}
	return sheet, nil
}

func buildQuestion(raw questionFile) (answer.Question, error) {
	name := strings.TrimSpace(raw.Name)
	if name == "" {
		return answer.Question{}, errors.New("name is required")
	}
	dataType := answer.DataTypeText
	if strings.TrimSpace(raw.Type) != "" {
		parsed, err := answer.ParseDataType(raw.Type)
		if err != nil {
			return answer.Question{}, fmt.Errorf("%s: %w", name, err)
		}
		dataType = parsed
	}

	q := answer.Question{
		Name:       name,
		Label:      raw.Label,
		Required:   raw.Required,
		Appearance: appearance.Hint(raw.Appearance),
		DataType:   dataType,
		Attributes: raw.Attributes,
	}
	for _, choice := range raw.Choices {
		q.Choices = append(q.Choices, answer.Selection{Value: choice.Value, Label: choice.Label})
	}

	value, err := buildValue(q, &raw.Answer)
	if err != nil {
		return answer.Question{}, fmt.Errorf("%s: %w", name, err)
	}
	q.Value = value
	return q, nil
}

func buildValue(q answer.Question, node *yaml.Node) (answer.Value, error) {
	if node.Kind == 0 || (node.Kind == yaml.ScalarNode && node.Tag == "!!null") {
		return nil, nil
	}

	switch q.DataType {
	case answer.DataTypeSelectOne, answer.DataTypeSelectMulti, answer.DataTypeRank:
		values, err := selectedValues(node)
		if err != nil {
			return nil, err
		}
		list := answer.SelectionList{Ranked: q.DataType == answer.DataTypeRank}
		for _, v := range values {
			list.Items = append(list.Items, resolveChoice(q.Choices, v))
		}
		return list, nil
	}

	if node.Kind != yaml.ScalarNode {
		return nil, fmt.Errorf("answer for %s must be a scalar", q.DataType)
	}
	text := node.Value

	switch q.DataType {
	case answer.DataTypeDate:
		date, err := time.Parse(time.DateOnly, strings.TrimSpace(text))
		if err != nil {
			return nil, fmt.Errorf("parse date answer: %w", err)
		}
		return answer.DateValue{Date: date}, nil
	case answer.DataTypeDateTime:
		instant, err := time.Parse(time.RFC3339, strings.TrimSpace(text))
		if err != nil {
			return nil, fmt.Errorf("parse datetime answer: %w", err)
		}
		return answer.DateTimeValue{Time: instant}, nil
	case answer.DataTypeInteger, answer.DataTypeDecimal:
		return answer.NumericText{Raw: text}, nil
	case answer.DataTypeText:
		if q.HasItemsetQuery() {
			return answer.CodedText{Code: text}, nil
		}
	}
	return answer.PlainText{Raw: text}, nil
}

func selectedValues(node *yaml.Node) ([]string, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		return strings.Fields(node.Value), nil
	case yaml.SequenceNode:
		var values []string
		if err := node.Decode(&values); err != nil {
			return nil, fmt.Errorf("decode selections: %w", err)
		}
		return values, nil
	default:
		return nil, errors.New("selections must be a list or space-separated string")
	}
}

func resolveChoice(choices []answer.Selection, value string) answer.Selection {
	for _, choice := range choices {
		if choice.Value == value {
			return choice
		}
	}
	return answer.Selection{Value: value}
}
