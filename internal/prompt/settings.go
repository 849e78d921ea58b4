package prompt

import (
	"context"
	"fmt"

	"golang.org/x/text/language"

	"github.com/goliatone/go-answerfmt/pkg/layout"
)

// Settings are the preview parameters the user may adjust interactively.
type Settings struct {
	Locale language.Tag
	Screen layout.ScreenSize
}

var screenChoices = []layout.ScreenSize{
	layout.ScreenSmall,
	layout.ScreenNormal,
	layout.ScreenLarge,
	layout.ScreenXLarge,
}

// AskSettings prompts for a locale and a screen size, starting from current.
func AskSettings(ctx context.Context, d Driver, current Settings) (Settings, error) {
	raw, err := d.Input(ctx, InputConfig{
		Message: "Locale",
		Default: current.Locale.String(),
		Help:    "BCP 47 tag used for dates and digit grouping, e.g. en-US or de-DE",
		Validator: func(s string) error {
			_, err := language.Parse(s)
			return err
		},
	})
	if err != nil {
		return Settings{}, err
	}
	tag, err := language.Parse(raw)
	if err != nil {
		return Settings{}, fmt.Errorf("prompt: locale %q: %w", raw, err)
	}

	options := make([]string, len(screenChoices))
	defaultIdx := 1
	for i, size := range screenChoices {
		options[i] = size.String()
		if size == current.Screen {
			defaultIdx = i
		}
	}
	idx, err := d.Select(ctx, SelectConfig{
		Message:      "Screen size",
		Options:      options,
		DefaultIndex: defaultIdx,
	})
	if err != nil {
		return Settings{}, err
	}
	if idx < 0 || idx >= len(screenChoices) {
		return Settings{}, fmt.Errorf("prompt: screen selection %d out of range", idx)
	}

	return Settings{Locale: tag, Screen: screenChoices[idx]}, nil
}
