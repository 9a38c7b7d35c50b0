// Package tsgen writes TypeScript type declarations for the figma schema.
// It walks the schema through reflection, so the declarations cannot drift
// from the Go types that define the wire format.
package tsgen

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/kataras/fig-types/pkg/figma"
)

// Header is written at the top of every generated file.
const Header = "// Code generated by fig-types tsgen. DO NOT EDIT."

// ErrUnmapped is returned when a reachable type has no output directory.
var ErrUnmapped = errors.New("tsgen: type has no output directory")

var schemaPkg = reflect.TypeFor[figma.Node]().PkgPath()

// File is one generated declaration file.
type File struct {
	Path    string // slash-separated, relative to the output root
	Content []byte
}

// Generator turns schema types into declaration files.
type Generator struct {
	// Layout maps a type name to its output directory.
	Layout map[string]string
}

// New returns a Generator using DefaultLayout.
func New() *Generator {
	return &Generator{Layout: DefaultLayout()}
}

type decl struct {
	name   string
	dir    string
	params string
	body   string
	deps   map[string]bool
}

type state struct {
	layout map[string]string
	decls  map[string]*decl
	errs   []error
}

// Generate declares every named schema type reachable from roots, or from
// figma.Roots when none are given, plus an index.ts re-exporting them all.
// The files are sorted by path.
func (g *Generator) Generate(roots ...reflect.Type) ([]File, error) {
	if len(roots) == 0 {
		roots = figma.Roots()
	}

	st := &state{layout: g.Layout, decls: make(map[string]*decl)}
	for _, r := range roots {
		st.ref(r, make(map[string]bool))
	}
	if len(st.errs) > 0 {
		return nil, errors.Join(st.errs...)
	}

	files := make([]File, 0, len(st.decls)+1)
	var index strings.Builder
	index.WriteString(Header + "\n")
	for _, d := range st.decls {
		files = append(files, File{Path: d.path(), Content: st.render(d)})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	for _, f := range files {
		name := strings.TrimSuffix(path.Base(f.Path), ".ts")
		fmt.Fprintf(&index, "export type { %s } from \"./%s\";\n", name, strings.TrimSuffix(f.Path, ".ts"))
	}
	files = append(files, File{Path: "index.ts", Content: []byte(index.String())})
	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })

	return files, nil
}

// WriteDir writes files under dir, creating directories as needed.
func WriteDir(dir string, files []File) error {
	for _, f := range files {
		dest := filepath.Join(dir, filepath.FromSlash(f.Path))
		if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
			return fmt.Errorf("create directory for %s: %w", f.Path, err)
		}
		if err := os.WriteFile(dest, f.Content, 0644); err != nil {
			return fmt.Errorf("write %s: %w", f.Path, err)
		}
	}
	return nil
}

func (d *decl) path() string {
	return path.Join(d.dir, d.name+".ts")
}

// tsName strips the type arguments from a generic instantiation name.
func tsName(t reflect.Type) string {
	name, _, _ := strings.Cut(t.Name(), "[")
	return name
}

func isSchema(t reflect.Type) bool {
	return t.Name() != "" && t.PkgPath() == schemaPkg
}

// typeArg returns the flattened field type named as the type argument of
// a generic instantiation, or nil for non-generic types.
func typeArg(t reflect.Type) reflect.Type {
	_, arg, ok := strings.Cut(t.Name(), "[")
	if !ok || t.Kind() != reflect.Struct {
		return nil
	}
	arg = strings.TrimSuffix(arg, "]")
	for _, f := range figma.Fields(t) {
		if f.Flatten && f.Type.PkgPath()+"."+f.Type.Name() == arg {
			return f.Type
		}
	}
	return nil
}

// ref returns the TypeScript expression for t, declaring t when it is a
// named schema type and recording the declarations it depends on.
func (st *state) ref(t reflect.Type, deps map[string]bool) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if !isSchema(t) {
		return st.shape(t, deps)
	}

	name := tsName(t)
	st.declare(t)
	deps[name] = true
	if arg := typeArg(t); arg != nil {
		return name + "<" + st.ref(arg, deps) + ">"
	}
	return name
}

// shape returns the structural TypeScript expression of an unnamed type.
func (st *state) shape(t reflect.Type, deps map[string]bool) string {
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Slice:
		return "Array<" + st.ref(t.Elem(), deps) + ">"
	case reflect.Array:
		elem := st.ref(t.Elem(), deps)
		elems := make([]string, t.Len())
		for i := range elems {
			elems[i] = elem
		}
		return "[" + strings.Join(elems, ", ") + "]"
	case reflect.Map:
		key := "string"
		switch t.Key().Kind() {
		case reflect.String:
			if _, ok := figma.LookupEnum(t.Key()); ok {
				return "Partial<Record<" + st.ref(t.Key(), deps) + ", " + st.ref(t.Elem(), deps) + ">>"
			}
		case reflect.Int, reflect.Int64:
			key = "number"
		}
		return "Record<" + key + ", " + st.ref(t.Elem(), deps) + ">"
	default:
		st.errs = append(st.errs, fmt.Errorf("tsgen: cannot express %s", t))
		return "unknown"
	}
}

func (st *state) declare(t reflect.Type) {
	name := tsName(t)
	if _, ok := st.decls[name]; ok {
		return
	}
	dir, ok := st.layout[name]
	if !ok {
		st.errs = append(st.errs, fmt.Errorf("%w: %s", ErrUnmapped, name))
	}

	d := &decl{name: name, dir: dir, deps: make(map[string]bool)}
	st.decls[name] = d // before the body, for recursive types

	if u, ok := figma.LookupUnion(t); ok {
		d.body = st.union(u, d.deps)
		return
	}
	if vals, ok := figma.LookupEnum(t); ok {
		d.body = enum(vals)
		return
	}
	if t.Kind() == reflect.Struct {
		arg := typeArg(t)
		if arg != nil {
			d.params = "<D>"
		}
		d.body = st.object(t, arg, d.deps)
		return
	}
	d.body = st.shape(t, d.deps)
}

func enum(vals []string) string {
	quoted := make([]string, len(vals))
	for i, v := range vals {
		quoted[i] = strconv.Quote(v)
	}
	return strings.Join(quoted, " | ")
}

func (st *state) union(u figma.UnionInfo, deps map[string]bool) string {
	var alts []string
	for _, v := range u.Variants {
		payload := st.ref(v.Type, deps)
		for _, tag := range v.Tags {
			switch u.Encoding {
			case figma.Envelope:
				alts = append(alts, fmt.Sprintf("{ %s: %q; %s: %s }", u.TagKey, tag, u.ContentKey, payload))
			default:
				alts = append(alts, fmt.Sprintf("({ %s: %q } & %s)", v.Key, tag, payload))
			}
		}
	}
	return "\n  | " + strings.Join(alts, "\n  | ")
}

// object renders a struct as the intersection of its flattened members and
// an object literal of its own fields. param, when set, is rendered as D.
func (st *state) object(t, param reflect.Type, deps map[string]bool) string {
	var (
		parts []string
		b     strings.Builder
		n     int
	)
	b.WriteString("{\n")
	for _, f := range figma.Fields(t) {
		if f.Flatten {
			if param != nil && f.Type == param {
				parts = append(parts, "D")
			} else {
				parts = append(parts, st.ref(f.Type, deps))
			}
			continue
		}
		if f.HasDefault {
			def := f.Default
			if f.Type.Kind() == reflect.String {
				def = strconv.Quote(def)
			}
			fmt.Fprintf(&b, "  /** default: %s */\n", def)
		}
		opt := ""
		if !f.Required {
			opt = "?"
		}
		fmt.Fprintf(&b, "  %s%s: %s;\n", f.Name, opt, st.ref(f.Type, deps))
		n++
	}
	b.WriteString("}")

	switch {
	case n > 0:
		parts = append(parts, b.String())
	case len(parts) == 0:
		// Same as {}; intersecting it keeps every member.
		parts = append(parts, "Record<never, never>")
	}
	return strings.Join(parts, " & ")
}

func (st *state) render(d *decl) []byte {
	var b strings.Builder
	b.WriteString(Header + "\n")

	names := make([]string, 0, len(d.deps))
	for name := range d.deps {
		if name != d.name {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(&b, "import type { %s } from %q;\n", name, importPath(d.dir, st.decls[name]))
	}

	sep := " "
	if strings.HasPrefix(d.body, "\n") {
		sep = ""
	}
	fmt.Fprintf(&b, "\nexport type %s%s =%s%s;\n", d.name, d.params, sep, d.body)
	return []byte(b.String())
}

// importPath returns the module specifier of dep as seen from fromDir.
func importPath(fromDir string, dep *decl) string {
	rel, err := filepath.Rel(filepath.FromSlash("/"+fromDir), filepath.FromSlash("/"+dep.dir))
	if err != nil {
		rel = dep.dir
	}
	rel = filepath.ToSlash(rel)
	switch {
	case rel == ".":
		return "./" + dep.name
	case strings.HasPrefix(rel, ".."):
		return rel + "/" + dep.name
	default:
		return "./" + rel + "/" + dep.name
	}
}
