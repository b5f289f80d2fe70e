package schema

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Decoding errors
var (
	ErrDecode = errors.New("invalid schema module")
	ErrCycle  = errors.New("schema reference cycle")
)

var formatAliases = map[string]string{
	"url":      "uri",
	"datetime": "date-time",
}

// DecodeModule parses a YAML (or JSON) schema module. The document must
// hold an "exports" mapping of export name to schema node. References
// between exports ("ref: Name") are inlined.
func DecodeModule(path string, data []byte) (*Module, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrDecode)
	}

	root := resolveAlias(doc.Content[0])
	if root.Kind != yaml.MappingNode {
		return nil, decodeErr(root, "module must be a mapping")
	}

	var exports *yaml.Node
	for i := 0; i+1 < len(root.Content); i += 2 {
		switch key := root.Content[i]; key.Value {
		case "exports":
			exports = resolveAlias(root.Content[i+1])
		case "description":
		default:
			return nil, decodeErr(key, "unknown module key %q", key.Value)
		}
	}
	if exports == nil {
		return nil, fmt.Errorf("%w: missing exports", ErrDecode)
	}
	if exports.Kind != yaml.MappingNode {
		return nil, decodeErr(exports, "exports must be a mapping")
	}

	d := &decoder{
		raw:      make(map[string]*yaml.Node),
		done:     make(map[string]*Node),
		visiting: make(map[string]bool),
	}
	var names []string
	for i := 0; i+1 < len(exports.Content); i += 2 {
		name := exports.Content[i].Value
		if _, dup := d.raw[name]; dup {
			return nil, decodeErr(exports.Content[i], "duplicate export %q", name)
		}
		d.raw[name] = exports.Content[i+1]
		names = append(names, name)
	}

	mod := NewModule(path)
	for _, name := range names {
		n, err := d.export(name)
		if err != nil {
			return nil, fmt.Errorf("export %s: %w", name, err)
		}
		mod.Add(name, n)
	}
	return mod, nil
}

// DecodeValue decodes exports given as plain Go values (maps, slices and
// scalars), such as those produced by evaluating a Go schema file.
func DecodeValue(path string, exports map[string]any) (*Module, error) {
	data, err := yaml.Marshal(map[string]any{"exports": exports})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return DecodeModule(path, data)
}

type decoder struct {
	raw      map[string]*yaml.Node
	done     map[string]*Node
	visiting map[string]bool
}

func (d *decoder) export(name string) (*Node, error) {
	if n, ok := d.done[name]; ok {
		return n, nil
	}
	if d.visiting[name] {
		return nil, fmt.Errorf("%w: %s", ErrCycle, name)
	}
	raw, ok := d.raw[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown reference %q", ErrDecode, name)
	}

	d.visiting[name] = true
	n, err := d.node(raw)
	delete(d.visiting, name)
	if err != nil {
		return nil, err
	}
	d.done[name] = n
	return n, nil
}

func (d *decoder) node(y *yaml.Node) (*Node, error) {
	y = resolveAlias(y)

	// Scalar shorthand: "isbn: string"
	if y.Kind == yaml.ScalarNode {
		switch k := Kind(y.Value); k {
		case KindString, KindNumber, KindInteger, KindBoolean, KindAny, KindNull:
			return &Node{Kind: k}, nil
		}
		return nil, decodeErr(y, "%q is not a scalar type", y.Value)
	}
	if y.Kind != yaml.MappingNode {
		return nil, decodeErr(y, "schema node must be a mapping")
	}

	keys := make(map[string]*yaml.Node, len(y.Content)/2)
	for i := 0; i+1 < len(y.Content); i += 2 {
		key := y.Content[i]
		if _, dup := keys[key.Value]; dup {
			return nil, decodeErr(key, "duplicate key %q", key.Value)
		}
		keys[key.Value] = resolveAlias(y.Content[i+1])
	}

	n, err := d.base(y, keys)
	if err != nil {
		return nil, err
	}

	for i := 0; i+1 < len(y.Content); i += 2 {
		key, val := y.Content[i].Value, resolveAlias(y.Content[i+1])
		if err := d.keyword(n, key, val); err != nil {
			return nil, err
		}
	}

	return n, d.check(y, n)
}

// base determines the kind of a mapping node, either from its type keyword
// or by cloning a referenced export.
func (d *decoder) base(y *yaml.Node, keys map[string]*yaml.Node) (*Node, error) {
	if ref, ok := keys["ref"]; ok {
		if _, typed := keys["type"]; typed {
			return nil, decodeErr(ref, "ref and type are mutually exclusive")
		}
		var name string
		if err := ref.Decode(&name); err != nil {
			return nil, decodeErr(ref, "ref: %v", err)
		}
		target, err := d.export(name)
		if err != nil {
			return nil, err
		}
		n := target.Clone()
		n.Optional, n.Nullable = false, false
		return n, nil
	}

	if t, ok := keys["type"]; ok {
		k := Kind(t.Value)
		if !k.Valid() {
			return nil, decodeErr(t, "unknown type %q", t.Value)
		}
		return &Node{Kind: k}, nil
	}

	switch {
	case keys["enum"] != nil:
		return &Node{Kind: KindEnum}, nil
	case keys["const"] != nil:
		return &Node{Kind: KindLiteral}, nil
	case keys["properties"] != nil:
		return &Node{Kind: KindObject}, nil
	}
	return nil, decodeErr(y, "schema node needs a type")
}

func (d *decoder) keyword(n *Node, key string, val *yaml.Node) error {
	var err error
	switch key {
	case "type", "ref":
	case "description":
		err = val.Decode(&n.Description)
	case "optional":
		err = val.Decode(&n.Optional)
	case "nullable":
		err = val.Decode(&n.Nullable)
	case "default":
		err = val.Decode(&n.Default)
	case "length":
		var v int
		if err = val.Decode(&v); err != nil {
			break
		}
		switch n.Kind {
		case KindString:
			n.MinLength, n.MaxLength = Ptr(v), Ptr(v)
		case KindArray:
			n.MinItems, n.MaxItems = Ptr(v), Ptr(v)
		default:
			return keywordErr(val, key, n.Kind)
		}
	case "min", "max":
		err = d.bound(n, key, val)
	case "gt", "lt":
		if !n.numeric() {
			return keywordErr(val, key, n.Kind)
		}
		var v float64
		if err = val.Decode(&v); err != nil {
			break
		}
		if key == "gt" {
			n.ExclusiveMinimum = Ptr(v)
		} else {
			n.ExclusiveMaximum = Ptr(v)
		}
	case "positive", "nonnegative", "negative":
		if !n.numeric() {
			return keywordErr(val, key, n.Kind)
		}
		var on bool
		if err = val.Decode(&on); err != nil || !on {
			break
		}
		switch key {
		case "positive":
			n.ExclusiveMinimum = Ptr(0.0)
		case "nonnegative":
			n.Minimum = Ptr(0.0)
		case "negative":
			n.ExclusiveMaximum = Ptr(0.0)
		}
	case "pattern":
		if n.Kind != KindString {
			return keywordErr(val, key, n.Kind)
		}
		err = val.Decode(&n.Pattern)
	case "format":
		if n.Kind != KindString {
			return keywordErr(val, key, n.Kind)
		}
		if err = val.Decode(&n.Format); err == nil {
			if alias, ok := formatAliases[n.Format]; ok {
				n.Format = alias
			}
		}
	case "items":
		if n.Kind != KindArray {
			return keywordErr(val, key, n.Kind)
		}
		n.Items, err = d.node(val)
	case "values":
		if n.Kind != KindRecord {
			return keywordErr(val, key, n.Kind)
		}
		n.Values, err = d.node(val)
	case "enum":
		if n.Kind != KindEnum {
			return keywordErr(val, key, n.Kind)
		}
		err = val.Decode(&n.Enum)
	case "const":
		if n.Kind != KindLiteral {
			return keywordErr(val, key, n.Kind)
		}
		err = val.Decode(&n.Literal)
	case "properties":
		if n.Kind != KindObject {
			return keywordErr(val, key, n.Kind)
		}
		n.Fields, err = d.fields(val)
	default:
		return decodeErr(val, "unknown keyword %q", key)
	}

	if err != nil {
		if errors.Is(err, ErrDecode) || errors.Is(err, ErrCycle) {
			return err
		}
		return decodeErr(val, "%s: %v", key, err)
	}
	return nil
}

func (d *decoder) bound(n *Node, key string, val *yaml.Node) error {
	switch n.Kind {
	case KindString, KindArray:
		var v int
		if err := val.Decode(&v); err != nil {
			return err
		}
		switch {
		case n.Kind == KindString && key == "min":
			n.MinLength = Ptr(v)
		case n.Kind == KindString:
			n.MaxLength = Ptr(v)
		case key == "min":
			n.MinItems = Ptr(v)
		default:
			n.MaxItems = Ptr(v)
		}
	case KindNumber, KindInteger:
		var v float64
		if err := val.Decode(&v); err != nil {
			return err
		}
		if key == "min" {
			n.Minimum = Ptr(v)
		} else {
			n.Maximum = Ptr(v)
		}
	default:
		return keywordErr(val, key, n.Kind)
	}
	return nil
}

// fields decodes object properties given either as an ordered mapping or
// as a sequence of entries carrying a name.
func (d *decoder) fields(y *yaml.Node) ([]Field, error) {
	var out []Field
	seen := make(map[string]bool)
	add := func(at *yaml.Node, name string, raw *yaml.Node) error {
		if name == "" {
			return decodeErr(at, "property without a name")
		}
		if seen[name] {
			return decodeErr(at, "duplicate property %q", name)
		}
		seen[name] = true
		s, err := d.node(raw)
		if err != nil {
			return fmt.Errorf("property %s: %w", name, err)
		}
		out = append(out, Field{Name: name, Schema: s})
		return nil
	}

	switch y.Kind {
	case yaml.MappingNode:
		for i := 0; i+1 < len(y.Content); i += 2 {
			if err := add(y.Content[i], y.Content[i].Value, y.Content[i+1]); err != nil {
				return nil, err
			}
		}
	case yaml.SequenceNode:
		for _, item := range y.Content {
			item = resolveAlias(item)
			if item.Kind != yaml.MappingNode {
				return nil, decodeErr(item, "property entry must be a mapping")
			}
			var name string
			rest := &yaml.Node{Kind: yaml.MappingNode, Line: item.Line, Column: item.Column}
			for j := 0; j+1 < len(item.Content); j += 2 {
				if item.Content[j].Value == "name" {
					if err := item.Content[j+1].Decode(&name); err != nil {
						return nil, decodeErr(item.Content[j+1], "name: %v", err)
					}
					continue
				}
				rest.Content = append(rest.Content, item.Content[j], item.Content[j+1])
			}
			if err := add(item, name, rest); err != nil {
				return nil, err
			}
		}
	default:
		return nil, decodeErr(y, "properties must be a mapping or a sequence")
	}
	return out, nil
}

func (d *decoder) check(y *yaml.Node, n *Node) error {
	switch n.Kind {
	case KindArray:
		if n.Items == nil {
			return decodeErr(y, "array needs items")
		}
	case KindEnum:
		if len(n.Enum) == 0 {
			return decodeErr(y, "enum needs at least one value")
		}
	case KindLiteral:
		if n.Literal == nil {
			return decodeErr(y, "literal needs a const value")
		}
	}
	return nil
}

func (n *Node) numeric() bool {
	return n.Kind == KindNumber || n.Kind == KindInteger
}

func resolveAlias(y *yaml.Node) *yaml.Node {
	for y != nil && y.Kind == yaml.AliasNode {
		y = y.Alias
	}
	return y
}

func decodeErr(y *yaml.Node, format string, args ...any) error {
	return fmt.Errorf("%w: line %d: %s", ErrDecode, y.Line, fmt.Sprintf(format, args...))
}

func keywordErr(y *yaml.Node, key string, k Kind) error {
	return decodeErr(y, "keyword %q does not apply to %s", key, k)
}
