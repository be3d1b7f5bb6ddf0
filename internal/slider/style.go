// Package slider implements the interaction core of a parameter slider:
// the fill geometry derived from a parameter's value and the drag, step and
// text-entry controllers that turn input into parameter gestures.
package slider

import (
	"fmt"
	"strings"
)

// StyleKind selects how the filled segment of the bar is derived.
type StyleKind int

const (
	// Centered fills from the default value when it sits near the middle of
	// a continuous range, otherwise from the left.
	Centered StyleKind = iota
	// FromLeft always fills from zero.
	FromLeft
	// FromMidPoint fills from 0.5 towards the value.
	FromMidPoint
	// CurrentStep highlights only the current step.
	CurrentStep
	// CurrentStepLabeled highlights the current step and labels each step.
	CurrentStepLabeled
)

var styleNames = map[StyleKind]string{
	Centered:           "centered",
	FromLeft:           "from-left",
	FromMidPoint:       "from-midpoint",
	CurrentStep:        "current-step",
	CurrentStepLabeled: "current-step-labeled",
}

func (k StyleKind) String() string {
	if name, ok := styleNames[k]; ok {
		return name
	}

	return fmt.Sprintf("StyleKind(%d)", int(k))
}

// Style is fixed for the lifetime of a slider. Even only applies to the
// step styles and divides the bar into equally sized slots.
type Style struct {
	Kind StyleKind
	Even bool
}

func (s Style) String() string {
	if s.Even && s.stepStyle() {
		return s.Kind.String() + "(even)"
	}

	return s.Kind.String()
}

func (s Style) stepStyle() bool {
	return s.Kind == CurrentStep || s.Kind == CurrentStepLabeled
}

// Labeled reports whether the style draws a label per step.
func (s Style) Labeled() bool { return s.Kind == CurrentStepLabeled }

// ParseStyle parses a style name as printed by StyleKind.String.
func ParseStyle(name string, even bool) (Style, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for kind, n := range styleNames {
		if n == name {
			return Style{Kind: kind, Even: even}, nil
		}
	}

	return Style{}, fmt.Errorf("unknown slider style %q", name)
}

// StyleNames lists the accepted style names in declaration order.
func StyleNames() []string {
	names := make([]string, 0, len(styleNames))
	for k := Centered; k <= CurrentStepLabeled; k++ {
		names = append(names, styleNames[k])
	}

	return names
}
