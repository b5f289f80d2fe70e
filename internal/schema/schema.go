// Package schema holds the structural description of upstream BendV3 schema
// exports, independent of how they were loaded.
package schema

// Kind is the structural type of a schema node
type Kind string

const (
	KindObject  Kind = "object"
	KindString  Kind = "string"
	KindNumber  Kind = "number"
	KindInteger Kind = "integer"
	KindBoolean Kind = "boolean"
	KindArray   Kind = "array"
	KindEnum    Kind = "enum"
	KindLiteral Kind = "literal"
	KindRecord  Kind = "record"
	KindAny     Kind = "any"
	KindNull    Kind = "null"
)

// Valid reports whether k is a known kind
func (k Kind) Valid() bool {
	switch k {
	case KindObject, KindString, KindNumber, KindInteger, KindBoolean,
		KindArray, KindEnum, KindLiteral, KindRecord, KindAny, KindNull:
		return true
	}
	return false
}

// Node describes one value in an upstream schema: its kind, the
// constraints attached to it, and for composite kinds its children.
type Node struct {
	Kind        Kind
	Description string
	Optional    bool
	Nullable    bool
	Default     any

	// String constraints
	MinLength *int
	MaxLength *int
	Pattern   string
	Format    string

	// Number constraints
	Minimum          *float64
	Maximum          *float64
	ExclusiveMinimum *float64
	ExclusiveMaximum *float64

	// Array
	Items    *Node
	MinItems *int
	MaxItems *int

	// Record value type; nil means any value
	Values *Node

	Enum    []string
	Literal any

	// Object fields in declaration order
	Fields []Field
}

// Field is a named property of an object node
type Field struct {
	Name   string
	Schema *Node
}

// Field returns the named field of an object node
func (n *Node) Field(name string) (*Node, bool) {
	for _, f := range n.Fields {
		if f.Name == name {
			return f.Schema, true
		}
	}
	return nil, false
}

// Clone returns a deep copy of n
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	c := *n
	c.MinLength = clonePtr(n.MinLength)
	c.MaxLength = clonePtr(n.MaxLength)
	c.Minimum = clonePtr(n.Minimum)
	c.Maximum = clonePtr(n.Maximum)
	c.ExclusiveMinimum = clonePtr(n.ExclusiveMinimum)
	c.ExclusiveMaximum = clonePtr(n.ExclusiveMaximum)
	c.MinItems = clonePtr(n.MinItems)
	c.MaxItems = clonePtr(n.MaxItems)
	c.Items = n.Items.Clone()
	c.Values = n.Values.Clone()
	if n.Enum != nil {
		c.Enum = append([]string(nil), n.Enum...)
	}
	if n.Fields != nil {
		c.Fields = make([]Field, len(n.Fields))
		for i, f := range n.Fields {
			c.Fields[i] = Field{Name: f.Name, Schema: f.Schema.Clone()}
		}
	}
	return &c
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// Ptr returns a pointer to v
func Ptr[T any](v T) *T {
	return &v
}

// Module is a loaded upstream schema module and its named exports
type Module struct {
	// Path is the resolved location the module was loaded from
	Path string

	names   []string
	exports map[string]*Node
}

// NewModule creates an empty module for path
func NewModule(path string) *Module {
	return &Module{
		Path:    path,
		exports: make(map[string]*Node),
	}
}

// Add registers an export, replacing any previous export of the same name
func (m *Module) Add(name string, n *Node) {
	if _, exists := m.exports[name]; !exists {
		m.names = append(m.names, name)
	}
	m.exports[name] = n
}

// Lookup returns the named export
func (m *Module) Lookup(name string) (*Node, bool) {
	n, ok := m.exports[name]
	return n, ok
}

// Names returns export names in declaration order
func (m *Module) Names() []string {
	return append([]string(nil), m.names...)
}
