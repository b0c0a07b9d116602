package ui

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/Equilibrio22/Vorb/pkg/verrors"
)

// Declarative scene loader. A YAML document describes a widget subtree:
//
//	name: main
//	dimensions: [100%, 100%]
//	children:
//	  - name: sidebar
//	    dock: {style: left, size: 240px}
//	    children:
//	      - name: header
//	        position: [0, 8]
//	        dimensions: [100%, 32]
//	        anchor: [left, right]
//	  - name: content
//	    dock: {style: fill}
//
// Lengths are written as bare numbers (pixels) or with the px, %, fw%,
// fh% suffixes. All loader failures are structured verrors values.

type sceneNode struct {
	Name         string       `yaml:"name"`
	Position     *lengthPair  `yaml:"position"`
	Dimensions   *lengthPair  `yaml:"dimensions"`
	MinSize      *lengthPair  `yaml:"minSize"`
	MaxSize      *lengthPair  `yaml:"maxSize"`
	Align        string       `yaml:"align"`
	Anchor       []string     `yaml:"anchor"`
	PositionType string       `yaml:"positionType"`
	Dock         *dockSpec    `yaml:"dock"`
	ZIndex       int          `yaml:"zIndex"`
	Enabled      bool         `yaml:"enabled"`
	Children     []sceneNode  `yaml:"children"`
}

type dockSpec struct {
	Style string      `yaml:"style"`
	Size  lengthValue `yaml:"size"`
}

type lengthValue Length

func (l *lengthValue) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: length must be a scalar", node.Line)
	}
	parsed, err := ParseLength(node.Value)
	if err != nil {
		return err
	}
	*l = lengthValue(parsed)
	return nil
}

type lengthPair Length2

func (l *lengthPair) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode || len(node.Content) != 2 {
		return fmt.Errorf("line %d: length pair must be a two-element sequence", node.Line)
	}
	var x, y lengthValue
	if err := x.UnmarshalYAML(node.Content[0]); err != nil {
		return err
	}
	if err := y.UnmarshalYAML(node.Content[1]); err != nil {
		return err
	}
	l.X = Length(x)
	l.Y = Length(y)
	return nil
}

// LoadScene parses a YAML document into a detached widget tree and
// returns its root.
func LoadScene(data []byte) (*Widget, error) {
	var root sceneNode
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, verrors.E("ui.LoadScene", verrors.KindParse, err)
	}
	return buildSceneNode(&root)
}

// LoadSceneInto parses a YAML document and attaches the declared tree to
// parent.
func LoadSceneInto(parent Node, data []byte) (*Widget, error) {
	w, err := LoadScene(data)
	if err != nil {
		return nil, err
	}
	if parent == nil || parent.Base() == nil || !parent.Base().AddWidget(w) {
		return nil, verrors.Errorf("ui.LoadSceneInto", verrors.KindConfig,
			"cannot attach scene root %q to parent", w.Name())
	}
	return w, nil
}

func buildSceneNode(n *sceneNode) (*Widget, error) {
	w := NewWidget(n.Name)

	if n.Position != nil {
		w.SetRawPosition(Length2(*n.Position))
	}
	if n.Dimensions != nil {
		w.SetRawDimensions(Length2(*n.Dimensions))
	}
	if n.MinSize != nil {
		w.SetRawMinSize(Length2(*n.MinSize))
	}
	if n.MaxSize != nil {
		w.SetRawMaxSize(Length2(*n.MaxSize))
	}
	if n.Align != "" {
		align, err := parseAlign(n.Align)
		if err != nil {
			return nil, err
		}
		w.SetAlign(align)
	}
	if len(n.Anchor) > 0 {
		anchor, err := parseAnchor(n.Anchor)
		if err != nil {
			return nil, err
		}
		w.SetAnchor(anchor)
	}
	if n.PositionType != "" {
		pt, err := parsePositionType(n.PositionType)
		if err != nil {
			return nil, err
		}
		w.SetPositionType(pt)
	}
	if n.Dock != nil {
		style, err := parseDockStyle(n.Dock.Style)
		if err != nil {
			return nil, err
		}
		w.SetDockingOptions(DockingOptions{Style: style, Size: Length(n.Dock.Size)})
	}
	if n.ZIndex != 0 {
		w.SetZIndex(n.ZIndex)
	}
	if n.Enabled {
		w.Enable()
	}

	for i := range n.Children {
		child, err := buildSceneNode(&n.Children[i])
		if err != nil {
			return nil, err
		}
		if !w.AddWidget(child) {
			return nil, verrors.Errorf("ui.LoadScene", verrors.KindConfig,
				"cannot attach child %q to %q", child.Name(), w.Name())
		}
	}
	return w, nil
}

func parseAlign(s string) (Align, error) {
	for a, name := range alignNames {
		if name == s {
			return a, nil
		}
	}
	return 0, verrors.Errorf("ui.LoadScene", verrors.KindConfig, "unknown align %q", s)
}

func parseAnchor(edges []string) (AnchorStyle, error) {
	var a AnchorStyle
	for _, edge := range edges {
		switch edge {
		case "left":
			a.Left = true
		case "right":
			a.Right = true
		case "top":
			a.Top = true
		case "bottom":
			a.Bottom = true
		default:
			return AnchorStyle{}, verrors.Errorf("ui.LoadScene", verrors.KindConfig, "unknown anchor edge %q", edge)
		}
	}
	return a, nil
}

func parsePositionType(s string) (PositionType, error) {
	switch s {
	case "static":
		return PositionStatic, nil
	case "relative":
		return PositionRelative, nil
	case "absolute":
		return PositionAbsolute, nil
	case "fixed":
		return PositionFixed, nil
	default:
		return 0, verrors.Errorf("ui.LoadScene", verrors.KindConfig, "unknown position type %q", s)
	}
}

func parseDockStyle(s string) (DockStyle, error) {
	switch s {
	case "", "none":
		return DockNone, nil
	case "left":
		return DockLeft, nil
	case "top":
		return DockTop, nil
	case "right":
		return DockRight, nil
	case "bottom":
		return DockBottom, nil
	case "fill":
		return DockFill, nil
	default:
		return 0, verrors.Errorf("ui.LoadScene", verrors.KindConfig, "unknown dock style %q", s)
	}
}
