package figma

import (
	"fmt"
	"reflect"
	"slices"
	"strings"
)

// UnionEncoding selects how a closed union is laid out on the wire.
type UnionEncoding int

const (
	// Envelope wraps the payload: {"type": "<tag>", "data": <payload>}.
	Envelope UnionEncoding = iota + 1
	// Inline places a discriminator key directly in the payload object,
	// e.g. {"type": "SOLID", "color": {...}} or the literal sentinel
	// {"OPEN_URL_ACTION_TYPE": "URL", "url": "..."}.
	Inline
)

func (e UnionEncoding) String() string {
	switch e {
	case Envelope:
		return "envelope"
	case Inline:
		return "inline"
	default:
		return "unknown"
	}
}

type unionInfo struct {
	name       string
	iface      reflect.Type
	encoding   UnionEncoding
	tagKey     string
	contentKey string
	keys       []string // distinct discriminator keys, declaration order
	variants   []*variantInfo
}

type variantInfo struct {
	union    *unionInfo
	key      string
	tags     []string
	typ      reflect.Type
	tagField []int // nil when the variant has a single fixed tag
}

type enumInfo struct {
	values []string
	set    map[string]struct{}
}

var (
	unions   = make(map[reflect.Type]*unionInfo)
	variants = make(map[reflect.Type]*variantInfo)
	enums    = make(map[reflect.Type]*enumInfo)
)

func (u *unionInfo) byTag(key, tag string) *variantInfo {
	for _, vi := range u.variants {
		if vi.key == key && slices.Contains(vi.tags, tag) {
			return vi
		}
	}
	return nil
}

func (vi *variantInfo) setTag(v reflect.Value, tag string) {
	if vi.tagField != nil {
		v.FieldByIndex(vi.tagField).SetString(tag)
	}
}

func (vi *variantInfo) tagOf(v reflect.Value) (string, *EncodeError) {
	if vi.tagField == nil {
		return vi.tags[0], nil
	}
	tag := v.FieldByIndex(vi.tagField).String()
	if !slices.Contains(vi.tags, tag) {
		return "", &EncodeError{Detail: fmt.Sprintf("%s carries %q, want one of %s", vi.typ.Name(), tag, strings.Join(vi.tags, ", "))}
	}
	return tag, nil
}

func variantOf(t reflect.Type) (*unionInfo, *variantInfo) {
	vi, ok := variants[t]
	if !ok {
		return nil, nil
	}
	return vi.union, vi
}

type variantSpec struct {
	key  string
	tags []string
	typ  reflect.Type
}

// variant declares T as the payload for tags. When more than one tag maps
// to T, T must carry a string field tagged `figma:"tag"`.
func variant[T any](tags ...string) variantSpec {
	return variantSpec{tags: tags, typ: reflect.TypeFor[T]()}
}

// sentinel declares T as discriminated by the literal key/value pair
// instead of the union's usual tag key.
func sentinel[T any](key, tag string) variantSpec {
	return variantSpec{key: key, tags: []string{tag}, typ: reflect.TypeFor[T]()}
}

func registerUnion[U any](enc UnionEncoding, tagKey, contentKey string, specs ...variantSpec) {
	iface := reflect.TypeFor[U]()
	u := &unionInfo{
		name:       iface.Name(),
		iface:      iface,
		encoding:   enc,
		tagKey:     tagKey,
		contentKey: contentKey,
	}
	for _, s := range specs {
		if !s.typ.Implements(iface) {
			panic(fmt.Sprintf("figma: %s does not implement %s", s.typ, u.name))
		}
		key := s.key
		if key == "" {
			key = tagKey
		}
		vi := &variantInfo{union: u, key: key, tags: s.tags, typ: s.typ}
		if len(s.tags) > 1 {
			vi.tagField = tagFieldIndex(s.typ)
		}
		if !slices.Contains(u.keys, key) {
			u.keys = append(u.keys, key)
		}
		u.variants = append(u.variants, vi)
		variants[s.typ] = vi
	}
	unions[iface] = u
}

func tagFieldIndex(t reflect.Type) []int {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Tag.Get("figma") == "tag" && f.Type.Kind() == reflect.String {
			return f.Index
		}
	}
	panic(fmt.Sprintf("figma: %s maps several tags but has no `figma:\"tag\"` field", t))
}

func registerEnum[T ~string](vals ...T) {
	info := &enumInfo{set: make(map[string]struct{}, len(vals))}
	for _, v := range vals {
		info.values = append(info.values, string(v))
		info.set[string(v)] = struct{}{}
	}
	enums[reflect.TypeFor[T]()] = info
}

// UnionInfo describes a closed union for generators.
type UnionInfo struct {
	Name       string
	Encoding   UnionEncoding
	TagKey     string
	ContentKey string
	Variants   []VariantInfo
}

// VariantInfo describes one alternative of a union. Key is the
// discriminator key; it differs from the union's TagKey for sentinel
// variants.
type VariantInfo struct {
	Key  string
	Tags []string
	Type reflect.Type
}

// LookupUnion reports the union declared for interface type t.
func LookupUnion(t reflect.Type) (UnionInfo, bool) {
	u, ok := unions[t]
	if !ok {
		return UnionInfo{}, false
	}
	info := UnionInfo{
		Name:       u.name,
		Encoding:   u.encoding,
		TagKey:     u.tagKey,
		ContentKey: u.contentKey,
	}
	for _, vi := range u.variants {
		info.Variants = append(info.Variants, VariantInfo{Key: vi.key, Tags: slices.Clone(vi.tags), Type: vi.typ})
	}
	return info, true
}

// LookupEnum returns the declared values of enum type t.
func LookupEnum(t reflect.Type) ([]string, bool) {
	e, ok := enums[t]
	if !ok {
		return nil, false
	}
	return slices.Clone(e.values), true
}

// FieldInfo describes a direct field of a schema struct.
type FieldInfo struct {
	Name      string // wire name; empty for flattened fields
	GoName    string
	Type      reflect.Type
	OmitEmpty bool
	Required  bool
	Default   string
	// HasDefault reports whether an absent key decodes to Default.
	HasDefault bool
	// Flatten means the members of Type sit directly in the parent object.
	Flatten bool
}

// Fields lists the wire fields declared directly on struct type t.
// Embedded and flattened members are reported as single Flatten entries.
func Fields(t reflect.Type) []FieldInfo {
	var out []FieldInfo
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		tag := f.Tag.Get("json")
		opts := f.Tag.Get("figma")
		if tag == "-" || opts == "tag" || (!f.IsExported() && !f.Anonymous) {
			continue
		}
		if (f.Anonymous && tag == "") || opts == "flatten" {
			out = append(out, FieldInfo{GoName: f.Name, Type: f.Type, Flatten: true, Required: true})
			continue
		}
		name, rest, _ := strings.Cut(tag, ",")
		if name == "" {
			name = f.Name
		}
		fi := FieldInfo{
			Name:      name,
			GoName:    f.Name,
			Type:      f.Type,
			OmitEmpty: omits(rest),
		}
		fi.Default, fi.HasDefault = f.Tag.Lookup("default")
		fi.Required = !fi.OmitEmpty && !fi.HasDefault
		out = append(out, fi)
	}
	return out
}

// Roots returns the top-level document types. Every other schema type is
// reachable from them.
func Roots() []reflect.Type {
	return []reflect.Type{reflect.TypeFor[File](), reflect.TypeFor[Node]()}
}

// Tag returns the wire discriminant of a union variant value, such as
// "canvas" for a CanvasNode or "GRADIENT_LINEAR" for a linear GradientPaint.
// It returns "" when v is not a registered variant or carries a tag outside
// its declared set.
func Tag(v any) string {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && !rv.IsNil() {
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return ""
	}
	_, vi := variantOf(rv.Type())
	if vi == nil {
		return ""
	}
	tag, err := vi.tagOf(rv)
	if err != nil {
		return ""
	}
	return tag
}
