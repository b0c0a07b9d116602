package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Equilibrio22/Vorb/pkg/verrors"
)

// Unit tags a Length value with its measurement basis.
type Unit int

const (
	// Pixel values pass through resolution unchanged.
	Pixel Unit = iota
	// Percent values resolve against the parent's extent on the same axis.
	// 50 means half the parent extent.
	Percent
	// FormWidthPercent values resolve against the form viewport width
	// regardless of axis.
	FormWidthPercent
	// FormHeightPercent values resolve against the form viewport height
	// regardless of axis.
	FormHeightPercent
)

// String returns a human-readable representation of the unit.
func (u Unit) String() string {
	switch u {
	case Pixel:
		return "px"
	case Percent:
		return "%"
	case FormWidthPercent:
		return "fw%"
	case FormHeightPercent:
		return "fh%"
	default:
		return fmt.Sprintf("Unit(%d)", int(u))
	}
}

// Length is a scalar tagged with its unit. Values may be negative;
// negative lengths are legal offsets.
type Length struct {
	Value float64
	Unit  Unit
}

// Length2 is a two-axis length. Each axis carries its own unit.
type Length2 struct {
	X Length
	Y Length
}

// Px returns a pixel length.
func Px(v float64) Length {
	return Length{Value: v, Unit: Pixel}
}

// Pct returns a percent length; 100 is the full parent extent.
func Pct(v float64) Length {
	return Length{Value: v, Unit: Percent}
}

// Px2 returns a pixel length pair.
func Px2(x, y float64) Length2 {
	return Length2{X: Px(x), Y: Px(y)}
}

// Pct2 returns a percent length pair.
func Pct2(x, y float64) Length2 {
	return Length2{X: Pct(x), Y: Pct(y)}
}

// ParseLength parses a textual length: a bare number is pixels, and the
// suffixes "px", "%", "fw%", "fh%" select the unit explicitly.
func ParseLength(s string) (Length, error) {
	text := strings.TrimSpace(s)
	unit := Pixel
	switch {
	case strings.HasSuffix(text, "fw%"):
		unit = FormWidthPercent
		text = strings.TrimSuffix(text, "fw%")
	case strings.HasSuffix(text, "fh%"):
		unit = FormHeightPercent
		text = strings.TrimSuffix(text, "fh%")
	case strings.HasSuffix(text, "%"):
		unit = Percent
		text = strings.TrimSuffix(text, "%")
	case strings.HasSuffix(text, "px"):
		text = strings.TrimSuffix(text, "px")
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return Length{}, verrors.Errorf("ui.ParseLength", verrors.KindParse, "invalid length %q", s)
	}
	return Length{Value: value, Unit: unit}, nil
}

// String renders the length with its unit suffix.
func (l Length) String() string {
	return strconv.FormatFloat(l.Value, 'g', -1, 64) + l.Unit.String()
}
