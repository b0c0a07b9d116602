package ui

import (
	"errors"
	"testing"

	"github.com/Equilibrio22/Vorb/pkg/graphics"
	"github.com/Equilibrio22/Vorb/pkg/verrors"
)

const sceneDoc = `
name: main
dimensions: [100%, 100%]
children:
  - name: sidebar
    dock: {style: left, size: 240px}
    zIndex: 2
    children:
      - name: header
        position: [0, 8]
        dimensions: [100%, 32]
        anchor: [left, right]
  - name: content
    dock: {style: fill}
    enabled: true
  - name: badge
    dimensions: [48, 16]
    align: bottom-right
    positionType: relative
`

func TestLoadSceneBuildsTree(t *testing.T) {
	root, err := LoadScene([]byte(sceneDoc))
	if err != nil {
		t.Fatalf("LoadScene: %v", err)
	}
	if root.Name() != "main" || len(root.Children()) != 3 {
		t.Fatalf("unexpected root: %s with %d children", root.Name(), len(root.Children()))
	}

	sidebar := root.Children()[0].Base()
	if sidebar.Docking().Style != DockLeft || sidebar.Docking().Size != Px(240) {
		t.Fatalf("unexpected sidebar docking: %+v", sidebar.Docking())
	}
	if sidebar.ZIndex() != 2 {
		t.Fatalf("expected zIndex 2, got %d", sidebar.ZIndex())
	}

	header := sidebar.Children()[0].Base()
	if header.Anchor() != (AnchorStyle{Left: true, Right: true}) {
		t.Fatalf("unexpected header anchor: %+v", header.Anchor())
	}
	if header.RawDimensions().X != Pct(100) || header.RawDimensions().Y != Px(32) {
		t.Fatalf("unexpected header raw dimensions: %v", header.RawDimensions())
	}

	content := root.Children()[1].Base()
	if !content.IsEnabled() {
		t.Fatal("expected content enabled")
	}

	badge := root.Children()[2].Base()
	if badge.Align() != AlignBottomRight || badge.PositionType() != PositionRelative {
		t.Fatalf("unexpected badge styling: %v %v", badge.Align(), badge.PositionType())
	}
}

func TestLoadSceneIntoResolvesAgainstForm(t *testing.T) {
	form := NewForm("root", graphics.Size{Width: 800, Height: 600})
	root, err := LoadSceneInto(form, []byte(sceneDoc))
	if err != nil {
		t.Fatalf("LoadSceneInto: %v", err)
	}

	if root.Width() != 800 || root.Height() != 600 {
		t.Fatalf("expected the scene root to fill the form, got %.0fx%.0f", root.Width(), root.Height())
	}
	sidebar := root.Children()[0].Base()
	if sidebar.Width() != 240 || sidebar.Height() != 600 {
		t.Fatalf("expected sidebar 240x600, got %.0fx%.0f", sidebar.Width(), sidebar.Height())
	}
	content := root.Children()[1].Base()
	if content.X() != 240 || content.Width() != 560 {
		t.Fatalf("expected content from 240 to 800, got x=%.0f width=%.0f", content.X(), content.Width())
	}
}

func TestLoadSceneRejectsMalformedYAML(t *testing.T) {
	_, err := LoadScene([]byte("name: [unclosed"))
	var verr *verrors.Error
	if !errors.As(err, &verr) || verr.Kind != verrors.KindParse {
		t.Fatalf("expected a parse error, got %v", err)
	}
}

func TestLoadSceneRejectsUnknownNames(t *testing.T) {
	cases := []string{
		"name: w\nalign: sideways",
		"name: w\nanchor: [diagonal]",
		"name: w\npositionType: floating",
		"name: w\ndock: {style: center}",
	}
	for _, doc := range cases {
		_, err := LoadScene([]byte(doc))
		var verr *verrors.Error
		if !errors.As(err, &verr) || verr.Kind != verrors.KindConfig {
			t.Errorf("doc %q: expected a config error, got %v", doc, err)
		}
	}
}

func TestLoadSceneRejectsBadLength(t *testing.T) {
	_, err := LoadScene([]byte("name: w\ndimensions: [wide, 10]"))
	if err == nil {
		t.Fatal("expected an error for a malformed length")
	}
}

func TestLoadSceneIntoNilParent(t *testing.T) {
	if _, err := LoadSceneInto(nil, []byte(sceneDoc)); err == nil {
		t.Fatal("expected an error for a nil parent")
	}
}
