// Package layout builds a menu tree from a YAML description, so hosts can
// change their overlay without recompiling. Widgets reach host state through
// named Bindings.
//
// A layout looks like:
//
//	root:
//	  menu: Main
//	  items:
//	    - menu: Video
//	      items:
//	        - select: Resolution
//	          options: [720p, 1080p]
//	          bind: resolution
//	        - toggle: VSync
//	          on: true
//	          bind: vsync
//	    - number: Volume
//	      value: 5
//	      step: 1
//	      min: 0
//	      max: 10
//	      bind: volume
//	    - text: fps
//	    - button: Quit
//	      bind: quit
package layout

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/riordanpawley/padmenu/internal/menu"
	"gopkg.in/yaml.v3"
)

// File is the top level of a layout document.
type File struct {
	Root Node `yaml:"root"`
}

// Node describes one widget. Exactly one of the kind fields (Menu, Button,
// Text, Number, Select, Toggle) must be set; its value is the label, or for
// Text the name of the producer binding.
type Node struct {
	Menu   string `yaml:"menu,omitempty"`
	Button string `yaml:"button,omitempty"`
	Text   string `yaml:"text,omitempty"`
	Number string `yaml:"number,omitempty"`
	Select string `yaml:"select,omitempty"`
	Toggle string `yaml:"toggle,omitempty"`

	Items []Node `yaml:"items,omitempty"`

	// Number
	Kind  string  `yaml:"kind,omitempty"` // "int" (default) or "float"
	Value float64 `yaml:"value,omitempty"`
	Step  float64 `yaml:"step,omitempty"` // > 0; 0 uses the kind's default
	Min   float64 `yaml:"min,omitempty"`
	Max   float64 `yaml:"max,omitempty"`

	// Select
	Options []string `yaml:"options,omitempty"`
	Index   int      `yaml:"index,omitempty"`

	// Toggle
	On bool `yaml:"on,omitempty"`

	Bind string `yaml:"bind,omitempty"`
}

// Bindings connects layout names to host callbacks. A bind name that is not
// present in the map for the widget's kind is an error.
type Bindings struct {
	Actions   map[string]func()
	Producers map[string]func() string
	Ints      map[string]func(int)
	Floats    map[string]func(float64)
	Choices   map[string]func(index int, name string)
	Switches  map[string]func(bool)
}

// ErrInvalid marks layouts that decode but cannot be built.
var ErrInvalid = errors.New("invalid layout")

// Error locates a layout problem.
type Error struct {
	Path string // e.g. "root/Video/items[1]"
	Err  error
}

func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("layout: %v", e.Err)
	}
	return fmt.Sprintf("layout %s: %v", e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Load reads and builds the layout at path.
func Load(path string, glyphs menu.Glyphs, b Bindings) (*menu.Tree, menu.ID, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read layout: %w", err)
	}
	return Parse(data, glyphs, b)
}

// Parse builds a layout from YAML.
func Parse(data []byte, glyphs menu.Glyphs, b Bindings) (*menu.Tree, menu.ID, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		return nil, 0, &Error{Err: fmt.Errorf("failed to parse YAML: %w", err)}
	}
	return Build(f, glyphs, b)
}

// Build turns a decoded File into a tree. The root must be a menu.
func Build(f File, glyphs menu.Glyphs, b Bindings) (*menu.Tree, menu.ID, error) {
	if f.Root.Menu == "" {
		return nil, 0, &Error{Path: "root", Err: fmt.Errorf("%w: root must be a menu", ErrInvalid)}
	}
	bld := &builder{tree: menu.NewTree(glyphs), b: b}
	root, err := bld.node(f.Root, "root")
	if err != nil {
		return nil, 0, err
	}
	return bld.tree, root, nil
}

type builder struct {
	tree *menu.Tree
	b    Bindings
}

func (bld *builder) fail(path, format string, args ...any) error {
	return &Error{Path: path, Err: fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...)}
}

func (bld *builder) node(n Node, path string) (menu.ID, error) {
	kinds := 0
	for _, v := range []string{n.Menu, n.Button, n.Text, n.Number, n.Select, n.Toggle} {
		if v != "" {
			kinds++
		}
	}
	if kinds != 1 {
		return 0, bld.fail(path, "node must set exactly one of menu, button, text, number, select, toggle")
	}

	switch {
	case n.Menu != "":
		return bld.menu(n, path+"/"+n.Menu)
	case n.Button != "":
		return bld.button(n, path)
	case n.Text != "":
		return bld.text(n, path)
	case n.Number != "":
		return bld.number(n, path)
	case n.Select != "":
		return bld.sel(n, path)
	default:
		return bld.toggle(n, path)
	}
}

func (bld *builder) menu(n Node, path string) (menu.ID, error) {
	if len(n.Items) == 0 {
		return 0, bld.fail(path, "menu %q has no items", n.Menu)
	}
	items := make([]menu.ID, 0, len(n.Items))
	for i, child := range n.Items {
		id, err := bld.node(child, fmt.Sprintf("%s/items[%d]", path, i))
		if err != nil {
			return 0, err
		}
		items = append(items, id)
	}
	return bld.tree.Add(menu.NewMenu(n.Menu, items...)), nil
}

func (bld *builder) button(n Node, path string) (menu.ID, error) {
	var action func()
	if n.Bind != "" {
		fn, ok := bld.b.Actions[n.Bind]
		if !ok {
			return 0, bld.fail(path, "unknown action %q", n.Bind)
		}
		action = fn
	}
	return bld.tree.Add(menu.NewButton(n.Button, action)), nil
}

func (bld *builder) text(n Node, path string) (menu.ID, error) {
	fn, ok := bld.b.Producers[n.Text]
	if !ok {
		return 0, bld.fail(path, "unknown producer %q", n.Text)
	}
	return bld.tree.Add(menu.NewText(fn)), nil
}

func (bld *builder) number(n Node, path string) (menu.ID, error) {
	if n.Min > n.Max {
		return 0, bld.fail(path, "number %q has min %v > max %v", n.Number, n.Min, n.Max)
	}
	if n.Step < 0 {
		return 0, bld.fail(path, "number %q has negative step %v", n.Number, n.Step)
	}

	switch n.Kind {
	case "", "int":
		for _, v := range []float64{n.Value, n.Step, n.Min, n.Max} {
			if v != math.Trunc(v) {
				return 0, bld.fail(path, "number %q is int but %v is not whole", n.Number, v)
			}
		}
		step := n.Step
		if step == 0 {
			step = 1
		}
		var action func(*int)
		if n.Bind != "" {
			fn, ok := bld.b.Ints[n.Bind]
			if !ok {
				return 0, bld.fail(path, "unknown int binding %q", n.Bind)
			}
			action = func(v *int) { fn(*v) }
		}
		return bld.tree.Add(menu.NewNumber(n.Number, int(n.Value), int(step), int(n.Min), int(n.Max), action)), nil

	case "float":
		step := n.Step
		if step == 0 {
			step = 0.1
		}
		var action func(*float64)
		if n.Bind != "" {
			fn, ok := bld.b.Floats[n.Bind]
			if !ok {
				return 0, bld.fail(path, "unknown float binding %q", n.Bind)
			}
			action = func(v *float64) { fn(*v) }
		}
		return bld.tree.Add(menu.NewNumber(n.Number, n.Value, step, n.Min, n.Max, action)), nil

	default:
		return 0, bld.fail(path, "number %q has unknown kind %q", n.Number, n.Kind)
	}
}

func (bld *builder) sel(n Node, path string) (menu.ID, error) {
	if len(n.Options) == 0 {
		return 0, bld.fail(path, "select %q has no options", n.Select)
	}
	var action func(int, *menu.Option[string])
	if n.Bind != "" {
		fn, ok := bld.b.Choices[n.Bind]
		if !ok {
			return 0, bld.fail(path, "unknown choice binding %q", n.Bind)
		}
		action = func(i int, o *menu.Option[string]) { fn(i, o.Name) }
	}
	s := menu.NewSelect(n.Select, menu.Options(n.Options...), action)
	if !s.SetIndex(n.Index) {
		return 0, bld.fail(path, "select %q index %d out of range", n.Select, n.Index)
	}
	return bld.tree.Add(s), nil
}

func (bld *builder) toggle(n Node, path string) (menu.ID, error) {
	var action func(bool)
	if n.Bind != "" {
		fn, ok := bld.b.Switches[n.Bind]
		if !ok {
			return 0, bld.fail(path, "unknown switch %q", n.Bind)
		}
		action = fn
	}
	return bld.tree.Add(menu.NewToggle(n.Toggle, n.On, action)), nil
}
