package sim

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-maze/internal/core"
)

// Heading is one of the four axis-aligned movement directions.
type Heading uint8

const (
	HeadingRight Heading = iota
	HeadingLeft
	HeadingUp
	HeadingDown
)

// Headings lists every heading in the order the adversary policy draws from.
var Headings = [4]Heading{HeadingRight, HeadingLeft, HeadingUp, HeadingDown}

// Vec returns the per-tick step for the heading at the given speed.
// World y grows upward.
func (h Heading) Vec(speed int) core.Vec {
	switch h {
	case HeadingRight:
		return core.V(speed, 0)
	case HeadingLeft:
		return core.V(-speed, 0)
	case HeadingUp:
		return core.V(0, speed)
	case HeadingDown:
		return core.V(0, -speed)
	}
	return core.Vec{}
}

// Opposite returns the reverse heading.
func (h Heading) Opposite() Heading {
	switch h {
	case HeadingRight:
		return HeadingLeft
	case HeadingLeft:
		return HeadingRight
	case HeadingUp:
		return HeadingDown
	default:
		return HeadingUp
	}
}

func (h Heading) String() string {
	switch h {
	case HeadingRight:
		return "right"
	case HeadingLeft:
		return "left"
	case HeadingUp:
		return "up"
	case HeadingDown:
		return "down"
	default:
		return "unknown"
	}
}

// ParseHeading parses a heading name as written in maze files.
func ParseHeading(s string) (Heading, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "right":
		return HeadingRight, nil
	case "left":
		return HeadingLeft, nil
	case "up":
		return HeadingUp, nil
	case "down":
		return HeadingDown, nil
	}
	return 0, fmt.Errorf("sim: unknown heading %q", s)
}

// HeadingOf returns the heading of an axis-aligned step, or false for
// zero and diagonal vectors.
func HeadingOf(v core.Vec) (Heading, bool) {
	switch {
	case v.X > 0 && v.Y == 0:
		return HeadingRight, true
	case v.X < 0 && v.Y == 0:
		return HeadingLeft, true
	case v.Y > 0 && v.X == 0:
		return HeadingUp, true
	case v.Y < 0 && v.X == 0:
		return HeadingDown, true
	}
	return 0, false
}
