package graphics

import (
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Font is the opaque font collaborator handed to widgets.
//
// The layout core never draws with a Font; it stores the handle and
// forwards it to the renderer, which owns rasterization. Pixel metrics
// are exposed so renderers can size text drawables without reaching
// into the underlying face.
type Font struct {
	face font.Face
}

// NewFont wraps a font face. The face is borrowed, not owned: closing
// it remains the caller's responsibility.
func NewFont(face font.Face) *Font {
	return &Font{face: face}
}

// Face returns the underlying face, or nil for a nil font.
func (f *Font) Face() font.Face {
	if f == nil {
		return nil
	}
	return f.face
}

// LineHeight returns the recommended line spacing in pixels.
func (f *Font) LineHeight() float64 {
	if f == nil || f.face == nil {
		return 0
	}
	return fixedToPixels(f.face.Metrics().Height)
}

// Ascent returns the distance from the baseline to the top of a line
// in pixels.
func (f *Font) Ascent() float64 {
	if f == nil || f.face == nil {
		return 0
	}
	return fixedToPixels(f.face.Metrics().Ascent)
}

// MeasureString returns the advance width of s in pixels.
func (f *Font) MeasureString(s string) float64 {
	if f == nil || f.face == nil {
		return 0
	}
	return fixedToPixels(font.MeasureString(f.face, s))
}

func fixedToPixels(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
