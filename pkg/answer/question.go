package answer

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-answerfmt/pkg/appearance"
)

// DataType is the declared data type of a question.
type DataType string

const (
	DataTypeText        DataType = "text"
	DataTypeInteger     DataType = "integer"
	DataTypeDecimal     DataType = "decimal"
	DataTypeDate        DataType = "date"
	DataTypeTime        DataType = "time"
	DataTypeDateTime    DataType = "datetime"
	DataTypeSelectOne   DataType = "select-one"
	DataTypeSelectMulti DataType = "select-multi"
	DataTypeRank        DataType = "rank"
	DataTypeGeopoint    DataType = "geopoint"
	DataTypeBarcode     DataType = "barcode"
	DataTypeUnsupported DataType = "unsupported"
)

var dataTypeAliases = map[string]DataType{
	"text":            DataTypeText,
	"string":          DataTypeText,
	"integer":         DataTypeInteger,
	"int":             DataTypeInteger,
	"decimal":         DataTypeDecimal,
	"date":            DataTypeDate,
	"time":            DataTypeTime,
	"datetime":        DataTypeDateTime,
	"datetime-local":  DataTypeDateTime,
	"select-one":      DataTypeSelectOne,
	"select_one":      DataTypeSelectOne,
	"select1":         DataTypeSelectOne,
	"select-multi":    DataTypeSelectMulti,
	"select_multiple": DataTypeSelectMulti,
	"select":          DataTypeSelectMulti,
	"rank":            DataTypeRank,
	"odk:rank":        DataTypeRank,
	"geopoint":        DataTypeGeopoint,
	"barcode":         DataTypeBarcode,
}

// ParseDataType maps a declared type name onto a DataType. Names are matched
// case-insensitively; unknown names return DataTypeUnsupported and an error.
func ParseDataType(raw string) (DataType, error) {
	key := strings.ToLower(strings.TrimSpace(raw))
	if dt, ok := dataTypeAliases[key]; ok {
		return dt, nil
	}
	return DataTypeUnsupported, fmt.Errorf("answer: unknown data type %q", raw)
}

// AttributeQuery marks a question whose answer is an itemset code.
const AttributeQuery = "query"

// Question is the per-render view of a form question and its answer.
type Question struct {
	Name       string
	Label      string
	Required   bool
	Appearance appearance.Hint
	DataType   DataType
	Attributes map[string]string
	Value      Value
	Choices    []Selection
}

// Answered reports whether the question holds a value.
func (q Question) Answered() bool {
	return q.Value != nil
}

// AnswerText returns the raw answer text, or "" when unanswered.
func (q Question) AnswerText() string {
	if q.Value == nil {
		return ""
	}
	return q.Value.Text()
}

// HasItemsetQuery reports whether the question carries an item lookup
// directive.
func (q Question) HasItemsetQuery() bool {
	if len(q.Attributes) == 0 {
		return false
	}
	_, ok := q.Attributes[AttributeQuery]
	return ok
}
