package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ColorProfile maps a --color value to a termenv profile. ok is false for
// "auto", which leaves detection to lipgloss.
func ColorProfile(value string) (profile termenv.Profile, ok bool, err error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "auto":
		return termenv.Ascii, false, nil
	case "truecolor", "24bit":
		return termenv.TrueColor, true, nil
	case "256", "ansi256":
		return termenv.ANSI256, true, nil
	case "16", "ansi":
		return termenv.ANSI, true, nil
	case "none", "off", "ascii":
		return termenv.Ascii, true, nil
	}
	return termenv.Ascii, false, fmt.Errorf("unknown color mode %q", value)
}

// ApplyColor forces the lipgloss colour profile unless value is "auto".
func ApplyColor(value string) error {
	profile, ok, err := ColorProfile(value)
	if err != nil {
		return err
	}
	if ok {
		lipgloss.SetColorProfile(profile)
	}
	return nil
}
