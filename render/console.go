package render

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/arbor"
	"golang.org/x/term"
)

// NodeClass classifies tree nodes for display purposes.
type NodeClass int

const (
	// InnerClass marks nodes with at least one child.
	InnerClass NodeClass = iota
	// LeafClass marks nodes without children.
	LeafClass
)

// Config represents a set of configuration parameters for rendering.
type Config struct {
	LineWidth int
	Indent    string
}

// ConsoleTree is a type for outputting trees to a console with a fixed
// width font. It uses colors to visualize node classes.
type ConsoleTree struct {
	colors map[NodeClass]*color.Color
}

// NewConsoleTreeFormat creates a new console formatter.
//
// colors is a map from node classes to colors, used for display. It may
// contain just a subset of the classes; missing classes are printed
// unstyled. Passing nil selects a default palette.
func NewConsoleTreeFormat(colors map[NodeClass]*color.Color) *ConsoleTree {
	fw := &ConsoleTree{}
	if colors == nil {
		fw.colors = makeDefaultPalette()
	} else {
		fw.colors = colors
	}
	return fw
}

func makeDefaultPalette() map[NodeClass]*color.Color {
	palette := map[NodeClass]*color.Color{
		InnerClass: color.New(color.FgBlue),
		LeafClass:  color.New(color.FgRed),
	}
	return palette
}

// styledLabel outputs a node label, colored according to its class.
func (fw *ConsoleTree) styledLabel(s string, class NodeClass, w io.Writer) {
	if c, ok := fw.colors[class]; ok {
		c.Fprint(w, s)
		return
	}
	w.Write([]byte(s))
}

// Print outputs a tree to stdout.
//
// If parameter config is nil, a heuristic will create a config from the
// current terminal's properties (if stdout is interactive).
func Print[T any](t *arbor.Tree[T], fw *ConsoleTree) error {
	return Output(t, os.Stdout, ConfigFromTerminal(), fw)
}

// Output renders a tree to a writer as a sideways, indented view: the
// right subtree on top, the left subtree below, one node per line.
//
// Neither of the arguments may be nil, except config.
func Output[T any](t *arbor.Tree[T], out io.Writer, config *Config, fw *ConsoleTree) error {
	if t == nil || out == nil || fw == nil {
		return errors.New("illegal argument: nil")
	}
	if config == nil {
		config = ConfigFromTerminal()
	}
	indent := config.Indent
	if indent == "" {
		indent = "   "
	}
	return t.Each(arbor.Descending, func(n *arbor.Node[T]) error {
		line := strings.Repeat(indent, n.Level())
		if _, err := io.WriteString(out, line); err != nil {
			return err
		}
		label := fmt.Sprintf("%v", n.Data())
		if max := config.LineWidth - len(line); max > 0 && len(label) > max {
			label = label[:max]
		}
		class := InnerClass
		if n.IsLeaf() {
			class = LeafClass
		}
		fw.styledLabel(label, class, out)
		_, err := io.WriteString(out, "\n")
		return err
	})
}

// --- Config for terminals --------------------------------------------------

// ConfigFromTerminal is a simple helper for creating a rendering Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's
// width and sets the Config.LineWidth parameter accordingly.
func ConfigFromTerminal() *Config {
	config := &Config{}
	if term.IsTerminal(0) {
		w, _, err := term.GetSize(0)
		if err != nil {
			config.LineWidth = 65
		} else {
			if w > 65 {
				config.LineWidth = w - 10
			} else if w > 30 {
				config.LineWidth = w - 5
			} else if w > 10 {
				config.LineWidth = w
			} else {
				config.LineWidth = 10
			}
		}
	} else {
		config.LineWidth = 65
	}
	T().P("render", "console").Infof("setting line length to %d en", config.LineWidth)
	return config
}
