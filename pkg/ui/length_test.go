package ui

import (
	"testing"

	"github.com/Equilibrio22/Vorb/pkg/graphics"
)

func TestPixelPassesThrough(t *testing.T) {
	w := NewWidget("w")
	w.SetRawDimensions(Px2(120, -8))
	if w.Width() != 120 {
		t.Fatalf("expected width 120, got %.1f", w.Width())
	}
	// Negative lengths are legal offsets; dimensions clamp at min 0 only
	// because the default min size is 0.
	if w.Height() != 0 {
		t.Fatalf("expected height clamped to 0, got %.1f", w.Height())
	}
	w.SetRawPosition(Px2(-30, 40))
	if w.X() != -30 || w.Y() != 40 {
		t.Fatalf("expected position (-30,40), got (%.1f,%.1f)", w.X(), w.Y())
	}
}

func TestPercentResolvesAgainstParent(t *testing.T) {
	form := NewForm("root", graphics.Size{Width: 800, Height: 600})
	child := NewWidget("child")
	if !form.AddWidget(child) {
		t.Fatal("expected AddWidget to succeed")
	}
	child.SetRawDimensions(Pct2(50, 25))

	if child.Width() != 400 || child.Height() != 150 {
		t.Fatalf("expected 400x150, got %.1fx%.1f", child.Width(), child.Height())
	}
}

func TestParentResizeReResolvesChildWithoutRawChange(t *testing.T) {
	form := NewForm("root", graphics.Size{Width: 800, Height: 600})
	child := NewWidget("child")
	form.AddWidget(child)
	child.SetRawDimensions(Pct2(50, 50))
	rawBefore := child.RawDimensions()

	form.SetViewport(graphics.Size{Width: 400, Height: 300})

	if child.RawDimensions() != rawBefore {
		t.Fatal("raw dimensions must stay stable across parent resizes")
	}
	if child.Width() != 200 || child.Height() != 150 {
		t.Fatalf("expected 200x150 after resize, got %.1fx%.1f", child.Width(), child.Height())
	}
}

func TestRootPercentFallsBackToZero(t *testing.T) {
	w := NewWidget("orphan")
	w.SetRawDimensions(Pct2(50, 50))
	if w.Width() != 0 || w.Height() != 0 {
		t.Fatalf("detached root percent must resolve to 0, got %.1fx%.1f", w.Width(), w.Height())
	}
}

func TestFormUnitsResolveAgainstViewport(t *testing.T) {
	form := NewForm("root", graphics.Size{Width: 1000, Height: 500})
	panel := NewWidget("panel")
	form.AddWidget(panel)
	inner := NewWidget("inner")
	panel.AddWidget(inner)
	panel.SetRawDimensions(Px2(100, 100))

	// Form units ignore both the axis and the immediate parent.
	inner.SetRawDimensions(Length2{
		X: Length{Value: 10, Unit: FormWidthPercent},
		Y: Length{Value: 10, Unit: FormHeightPercent},
	})
	if inner.Width() != 100 || inner.Height() != 50 {
		t.Fatalf("expected 100x50 from form units, got %.1fx%.1f", inner.Width(), inner.Height())
	}
}

func TestParseLength(t *testing.T) {
	cases := []struct {
		in   string
		want Length
	}{
		{"120", Px(120)},
		{"-8px", Px(-8)},
		{"33.5%", Pct(33.5)},
		{" 50 % ", Pct(50)},
		{"10fw%", Length{Value: 10, Unit: FormWidthPercent}},
		{"10fh%", Length{Value: 10, Unit: FormHeightPercent}},
	}
	for _, c := range cases {
		got, err := ParseLength(c.in)
		if err != nil {
			t.Fatalf("ParseLength(%q): %v", c.in, err)
		}
		if got != c.want {
			t.Errorf("ParseLength(%q) = %v, want %v", c.in, got, c.want)
		}
	}

	if _, err := ParseLength("wide"); err == nil {
		t.Fatal("expected an error for a non-numeric length")
	}
}
