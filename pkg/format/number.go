package format

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	decimalMarker    = "."
	defaultSeparator = ","
	groupSize        = 3
)

// groupResult carries the rendered text and, on the fallback path, the parse
// error that caused the raw text to be returned.
type groupResult struct {
	Text string
	Err  error
}

// groupingSeparator returns the locale's natural grouping separator, swapped
// for a space when it would collide with the `.` decimal marker.
func groupingSeparator(tag language.Tag) string {
	sep := naturalSeparator(tag)
	if sep == decimalMarker {
		return " "
	}
	return sep
}

func naturalSeparator(tag language.Tag) string {
	sample := message.NewPrinter(tag).Sprintf("%v", 1234567)
	for _, r := range sample {
		if unicode.IsDigit(r) {
			continue
		}
		return string(r)
	}
	return defaultSeparator
}

// groupDecimal renders raw with the given grouping separator. Fractional
// digits are kept in full; trailing fractional zeros are dropped.
func groupDecimal(raw, separator string) groupResult {
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return groupResult{Text: raw, Err: fmt.Errorf("format: parse decimal %q: %w", raw, err)}
	}

	plain := value.String()
	sign := ""
	if strings.HasPrefix(plain, "-") {
		sign = "-"
		plain = plain[1:]
	}
	integer, fraction, hasFraction := strings.Cut(plain, decimalMarker)

	var b strings.Builder
	b.WriteString(sign)
	b.WriteString(groupDigits(integer, separator))
	if hasFraction && fraction != "" {
		b.WriteString(decimalMarker)
		b.WriteString(fraction)
	}
	return groupResult{Text: b.String()}
}

func groupDigits(digits, separator string) string {
	if len(digits) <= groupSize {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % groupSize
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += groupSize {
		if b.Len() > 0 {
			b.WriteString(separator)
		}
		b.WriteString(digits[i : i+groupSize])
	}
	return b.String()
}
