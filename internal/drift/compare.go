package drift

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/google/go-cmp/cmp"
)

// Kind classifies a finding
type Kind string

const (
	// KindAdded marks a path upstream has and the mirror lacks
	KindAdded    Kind = "added"
	KindRemoved  Kind = "removed"
	KindRetyped  Kind = "retyped"
	KindRequired Kind = "required"
	KindEnum     Kind = "enum"
	KindNullable Kind = "nullable"
)

// Finding is one structural difference at a path
type Finding struct {
	Entity   string
	Path     string
	Kind     Kind
	Mirror   string
	Upstream string
}

func (f Finding) String() string {
	switch f.Kind {
	case KindAdded:
		return fmt.Sprintf("%s.%s: added upstream (%s)", f.Entity, f.Path, f.Upstream)
	case KindRemoved:
		return fmt.Sprintf("%s.%s: removed upstream (mirror has %s)", f.Entity, f.Path, f.Mirror)
	default:
		return fmt.Sprintf("%s.%s: %s differs (mirror %s, upstream %s)", f.Entity, f.Path, f.Kind, f.Mirror, f.Upstream)
	}
}

// Report is the result of comparing mirror and upstream shapes
type Report struct {
	Compared     []string
	Findings     []Finding
	OnlyMirror   []string
	OnlyUpstream []string
	// Diffs holds a go-cmp diff per entity with findings
	Diffs map[string]string
}

// Compare diffs every entity present on both sides. Entities present on
// only one side are listed but produce no findings.
func Compare(mirror, upstream map[string]Shape) *Report {
	r := &Report{Diffs: make(map[string]string)}

	for _, name := range slices.Sorted(maps.Keys(mirror)) {
		up, ok := upstream[name]
		if !ok {
			r.OnlyMirror = append(r.OnlyMirror, name)
			continue
		}
		r.Compared = append(r.Compared, name)

		findings := compareShape(name, mirror[name], up)
		if len(findings) > 0 {
			r.Findings = append(r.Findings, findings...)
			r.Diffs[name] = cmp.Diff(mirror[name], up)
		}
	}
	for _, name := range slices.Sorted(maps.Keys(upstream)) {
		if _, ok := mirror[name]; !ok {
			r.OnlyUpstream = append(r.OnlyUpstream, name)
		}
	}
	return r
}

func compareShape(entity string, mirror, upstream Shape) []Finding {
	var out []Finding
	paths := make(map[string]struct{})
	for p := range mirror {
		paths[p] = struct{}{}
	}
	for p := range upstream {
		paths[p] = struct{}{}
	}

	for _, p := range slices.Sorted(maps.Keys(paths)) {
		m, inMirror := mirror[p]
		u, inUpstream := upstream[p]
		switch {
		case !inMirror:
			out = append(out, Finding{Entity: entity, Path: p, Kind: KindAdded, Upstream: u.Type})
		case !inUpstream:
			out = append(out, Finding{Entity: entity, Path: p, Kind: KindRemoved, Mirror: m.Type})
		default:
			out = append(out, compareField(entity, p, m, u)...)
		}
	}
	return out
}

func compareField(entity, path string, m, u Field) []Finding {
	var out []Finding
	add := func(kind Kind, mv, uv string) {
		out = append(out, Finding{Entity: entity, Path: path, Kind: kind, Mirror: mv, Upstream: uv})
	}

	if m.Type != u.Type {
		add(KindRetyped, m.Type, u.Type)
	}
	if m.Required != u.Required {
		add(KindRequired, fmt.Sprint(m.Required), fmt.Sprint(u.Required))
	}
	if m.Nullable != u.Nullable {
		add(KindNullable, fmt.Sprint(m.Nullable), fmt.Sprint(u.Nullable))
	}
	if !slices.Equal(m.Enum, u.Enum) {
		add(KindEnum, strings.Join(m.Enum, "|"), strings.Join(u.Enum, "|"))
	}
	return out
}

// HasDrift reports whether the comparison should fail. In strict mode
// entities present on only one side count as drift.
func (r *Report) HasDrift(strict bool) bool {
	if len(r.Findings) > 0 {
		return true
	}
	return strict && (len(r.OnlyMirror) > 0 || len(r.OnlyUpstream) > 0)
}

func (r *Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "compared %d entities: %s\n", len(r.Compared), strings.Join(r.Compared, ", "))
	if len(r.OnlyMirror) > 0 {
		fmt.Fprintf(&b, "only in mirror: %s\n", strings.Join(r.OnlyMirror, ", "))
	}
	if len(r.OnlyUpstream) > 0 {
		fmt.Fprintf(&b, "only upstream: %s\n", strings.Join(r.OnlyUpstream, ", "))
	}
	if len(r.Findings) == 0 {
		b.WriteString("no drift\n")
		return b.String()
	}

	fmt.Fprintf(&b, "%d findings:\n", len(r.Findings))
	for _, f := range r.Findings {
		fmt.Fprintf(&b, "  %s\n", f)
	}
	for _, name := range slices.Sorted(maps.Keys(r.Diffs)) {
		fmt.Fprintf(&b, "\n%s (-mirror +upstream):\n%s", name, r.Diffs[name])
	}
	return b.String()
}
