package layout

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/goliatone/go-answerfmt/pkg/appearance"
)

// DefaultColumns is used when no column token applies.
const DefaultColumns = 1

// ErrInvalidColumns reports a `columns-N` token whose N is not a positive
// integer.
var ErrInvalidColumns = errors.New("layout: invalid columns appearance")

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger routes parse failures to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// Resolver computes column counts. It holds no mutable state and is safe for
// concurrent use.
type Resolver struct {
	logger *slog.Logger
}

// New constructs a Resolver.
func New(options ...Option) *Resolver {
	r := &Resolver{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

var defaultResolver = New()

// Columns resolves a column count with the default resolver.
func Columns(hint appearance.Hint, size ScreenSize) int {
	return defaultResolver.Columns(hint, size)
}

// Columns returns the number of grid columns for a question with the supplied
// appearance on a screen of the given size. The result is always >= 1.
func (r *Resolver) Columns(hint appearance.Hint, size ScreenSize) int {
	normalized := hint.Normalized()

	if normalized.Contains(appearance.TokenColumns) && !normalized.Contains(appearance.TokenColumnsN) {
		return columnsForScreen(size)
	}
	if normalized.Contains(appearance.TokenColumnsN) {
		count, err := parseColumns(normalized)
		if err != nil {
			r.log().Warn("layout: parse columns appearance",
				slog.String("appearance", hint.String()),
				slog.Any("error", err),
			)
			return DefaultColumns
		}
		return count
	}
	return DefaultColumns
}

func (r *Resolver) log() *slog.Logger {
	if r == nil || r.logger == nil {
		return slog.Default()
	}
	return r.logger
}

func columnsForScreen(size ScreenSize) int {
	switch size {
	case ScreenSmall:
		return 2
	case ScreenNormal:
		return 3
	case ScreenLarge:
		return 4
	case ScreenXLarge:
		return 5
	default:
		return 3
	}
}

// parseColumns reads N from the first `columns-N` token, up to the next space
// or the end of the hint.
func parseColumns(hint appearance.Hint) (int, error) {
	raw := hint.String()
	idx := strings.Index(raw, appearance.TokenColumnsN)
	if idx < 0 {
		return DefaultColumns, fmt.Errorf("%w: %q has no %s token", ErrInvalidColumns, raw, appearance.TokenColumnsN)
	}

	rest := raw[idx+len(appearance.TokenColumnsN):]
	if space := strings.IndexByte(rest, ' '); space >= 0 {
		rest = rest[:space]
	}

	count, err := strconv.Atoi(rest)
	if err != nil {
		return DefaultColumns, fmt.Errorf("%w: %q: %v", ErrInvalidColumns, rest, err)
	}
	if count < 1 {
		return DefaultColumns, fmt.Errorf("%w: %d is not positive", ErrInvalidColumns, count)
	}
	return count, nil
}
