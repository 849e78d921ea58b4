package layout

import (
	"fmt"
	"strings"
)

// ScreenSize is the coarse device display bucket.
type ScreenSize int

const (
	ScreenUnknown ScreenSize = iota
	ScreenSmall
	ScreenNormal
	ScreenLarge
	ScreenXLarge
)

var screenNames = map[ScreenSize]string{
	ScreenUnknown: "unknown",
	ScreenSmall:   "small",
	ScreenNormal:  "normal",
	ScreenLarge:   "large",
	ScreenXLarge:  "xlarge",
}

func (s ScreenSize) String() string {
	if name, ok := screenNames[s]; ok {
		return name
	}
	return fmt.Sprintf("ScreenSize(%d)", int(s))
}

// ParseScreenSize maps a name such as "large" onto a ScreenSize.
func ParseScreenSize(raw string) (ScreenSize, error) {
	key := strings.ToLower(strings.TrimSpace(raw))
	for size, name := range screenNames {
		if name == key {
			return size, nil
		}
	}
	return ScreenUnknown, fmt.Errorf("layout: unknown screen size %q", raw)
}

// UnmarshalText lets ScreenSize load from env vars and flags.
func (s *ScreenSize) UnmarshalText(text []byte) error {
	size, err := ParseScreenSize(string(text))
	if err != nil {
		return err
	}
	*s = size
	return nil
}

// MarshalText renders the screen size name.
func (s ScreenSize) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
