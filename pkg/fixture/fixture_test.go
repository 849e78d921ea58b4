package fixture

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-answerfmt/pkg/answer"
)

func TestLoadHousehold(t *testing.T) {
	sheet, err := Load("testdata/household.yaml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	wantForm := answer.Form{
		Title:       "Household survey",
		Languages:   []string{"English", "Swahili"},
		Language:    "Swahili",
		MediaFolder: "/forms/household-media",
	}
	if diff := cmp.Diff(wantForm, sheet.Form); diff != "" {
		t.Fatalf("form mismatch (-want +got):\n%s", diff)
	}

	if len(sheet.Questions) != 8 {
		t.Fatalf("expected 8 questions, got %d", len(sheet.Questions))
	}
	byName := make(map[string]answer.Question, len(sheet.Questions))
	for _, q := range sheet.Questions {
		byName[q.Name] = q
	}

	crops := byName["crops"].Value.(answer.SelectionList)
	wantCrops := answer.SelectionList{Items: []answer.Selection{
		{Value: "beans", Label: answer.LabelOf("**Beans**")},
		{Value: "maize", Label: answer.LabelOf("Maize")},
		{Value: "rice"},
	}}
	if diff := cmp.Diff(wantCrops, crops); diff != "" {
		t.Fatalf("crops mismatch (-want +got):\n%s", diff)
	}

	priorities := byName["priorities"].Value.(answer.SelectionList)
	if !priorities.Ranked || priorities.Text() != "school water" {
		t.Fatalf("unexpected priorities %+v", priorities)
	}

	if v, ok := byName["income"].Value.(answer.NumericText); !ok || v.Raw != "1234567.89" {
		t.Fatalf("unexpected income %#v", byName["income"].Value)
	}
	if v, ok := byName["visited"].Value.(answer.DateValue); !ok || !v.Date.Equal(time.Date(2024, time.May, 17, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected visited %#v", byName["visited"].Value)
	}
	if v, ok := byName["submitted"].Value.(answer.DateTimeValue); !ok || v.Time.Hour() != 10 {
		t.Fatalf("unexpected submitted %#v", byName["submitted"].Value)
	}
	if v, ok := byName["county"].Value.(answer.CodedText); !ok || v.Code != "king" {
		t.Fatalf("unexpected county %#v", byName["county"].Value)
	}
	if v, ok := byName["head_name"].Value.(answer.PlainText); !ok || v.Raw != "Amina Otieno" || !byName["head_name"].Required {
		t.Fatalf("unexpected head_name %#v", byName["head_name"])
	}
	if byName["notes"].Answered() {
		t.Fatalf("expected notes to be unanswered")
	}
}

func TestParseErrors(t *testing.T) {
	cases := map[string]string{
		"empty":          "   ",
		"missing name":   "questions:\n  - type: text\n",
		"unknown type":   "questions:\n  - name: a\n    type: hologram\n",
		"bad date":       "questions:\n  - name: a\n    type: date\n    answer: yesterday\n",
		"duplicate name": "questions:\n  - name: a\n  - name: a\n",
		"list for text":  "questions:\n  - name: a\n    answer: [x]\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := Decode(strings.NewReader(doc), name); err == nil {
				t.Fatalf("expected error for %q", doc)
			}
		})
	}
}

func TestNullAnswerIsUnanswered(t *testing.T) {
	sheet, err := Parse([]byte("questions:\n  - name: a\n    type: integer\n    answer: null\n"), "inline")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if sheet.Questions[0].Answered() {
		t.Fatalf("expected null answer to be unanswered")
	}
}
