package figma

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// ErrorKind classifies a structural decode failure.
type ErrorKind int

const (
	// ErrUnknownField means the object carries a key the schema does not declare.
	ErrUnknownField ErrorKind = iota + 1
	// ErrMissingField means a required key is absent.
	ErrMissingField
	// ErrUnknownVariant means a discriminant is outside the declared set.
	ErrUnknownVariant
	// ErrInvalidValue means an enum value is outside the declared set.
	ErrInvalidValue
	// ErrWrongType means the JSON value has the wrong shape for the field.
	ErrWrongType
)

func (k ErrorKind) String() string {
	switch k {
	case ErrUnknownField:
		return "unknown field"
	case ErrMissingField:
		return "missing field"
	case ErrUnknownVariant:
		return "unknown variant"
	case ErrInvalidValue:
		return "invalid value"
	case ErrWrongType:
		return "wrong type"
	default:
		return "decode error"
	}
}

// DecodeError reports a structural decode failure at a wire path such as
// "variant.data.children[0].name".
type DecodeError struct {
	Kind   ErrorKind
	Path   string
	Detail string
}

func (e *DecodeError) Error() string {
	path := e.Path
	if path == "" {
		path = "$"
	}
	if e.Detail == "" {
		return fmt.Sprintf("figma: decode %s: %s", path, e.Kind)
	}
	return fmt.Sprintf("figma: decode %s: %s: %s", path, e.Kind, e.Detail)
}

// EncodeError reports an in-memory value that cannot be written without
// breaking a union invariant.
type EncodeError struct {
	Path   string
	Detail string
}

func (e *EncodeError) Error() string {
	path := e.Path
	if path == "" {
		path = "$"
	}
	return fmt.Sprintf("figma: encode %s: %s", path, e.Detail)
}

// Unmarshal decodes a wire document into v, which must be a non-nil pointer.
// Unknown keys are rejected. On failure v is left untouched.
func Unmarshal(data []byte, v any) error {
	st := &decodeState{}
	return st.decodeRoot(data, v)
}

// Decoder reads a single wire document from a stream.
type Decoder struct {
	r     io.Reader
	state decodeState
}

// NewDecoder returns a strict decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r}
}

// AllowUnknownFields makes the decoder skip undeclared keys instead of
// failing. The skipped paths are available from Ignored after Decode.
func (d *Decoder) AllowUnknownFields() {
	d.state.allowUnknown = true
}

// Ignored returns the wire paths skipped by the last Decode call.
func (d *Decoder) Ignored() []string {
	return d.state.ignored
}

// Decode reads the next JSON value from the stream and decodes it into v.
func (d *Decoder) Decode(v any) error {
	var raw json.RawMessage
	if err := json.NewDecoder(d.r).Decode(&raw); err != nil {
		return fmt.Errorf("figma: read document: %w", err)
	}
	d.state.ignored = nil
	return d.state.decodeRoot(raw, v)
}

// Marshal encodes v into its wire form.
func Marshal(v any) ([]byte, error) {
	if err := checkEncodable(reflect.ValueOf(v), ""); err != nil {
		return nil, err
	}
	return json.Marshal(v)
}

// Encoder writes wire documents to a stream.
type Encoder struct {
	w      io.Writer
	indent string
}

// NewEncoder returns an encoder writing compact JSON to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// SetIndent makes the encoder indent nested values with indent.
func (e *Encoder) SetIndent(indent string) {
	e.indent = indent
}

// Encode writes v followed by a newline.
func (e *Encoder) Encode(v any) error {
	data, err := Marshal(v)
	if err != nil {
		return err
	}
	if e.indent != "" {
		var buf bytes.Buffer
		if err := json.Indent(&buf, data, "", e.indent); err != nil {
			return err
		}
		data = buf.Bytes()
	}
	data = append(data, '\n')
	_, err = e.w.Write(data)
	return err
}

type decodeState struct {
	allowUnknown bool
	ignored      []string
}

func (st *decodeState) decodeRoot(data []byte, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("figma: decode target must be a non-nil pointer, got %T", v)
	}

	// Decode into a scratch value so a failure never leaves a partial tree.
	tmp := reflect.New(rv.Elem().Type())
	if err := st.decodeValue(data, tmp.Elem(), ""); err != nil {
		return err
	}
	rv.Elem().Set(tmp.Elem())
	return nil
}

func isNull(raw []byte) bool {
	return string(bytes.TrimSpace(raw)) == "null"
}

func jsonKind(raw []byte) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return "nothing"
	}
	switch raw[0] {
	case '{':
		return "object"
	case '[':
		return "array"
	case '"':
		return "string"
	case 't', 'f':
		return "boolean"
	case 'n':
		return "null"
	default:
		return "number"
	}
}

func joinPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

func indexPath(path string, i int) string {
	return fmt.Sprintf("%s[%d]", path, i)
}

func (st *decodeState) decodeValue(raw []byte, v reflect.Value, path string) error {
	t := v.Type()

	if u, ok := unions[t]; ok {
		return st.decodeUnion(u, raw, v, path)
	}

	switch t.Kind() {
	case reflect.Pointer:
		if isNull(raw) {
			v.Set(reflect.Zero(t))
			return nil
		}
		p := reflect.New(t.Elem())
		if err := st.decodeValue(raw, p.Elem(), path); err != nil {
			return err
		}
		v.Set(p)
		return nil

	case reflect.Struct:
		if isNull(raw) {
			return &DecodeError{Kind: ErrWrongType, Path: path, Detail: "expected object, got null"}
		}
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(raw, &obj); err != nil {
			return &DecodeError{Kind: ErrWrongType, Path: path, Detail: "expected object, got " + jsonKind(raw)}
		}
		return st.decodeObject(obj, v, path)

	case reflect.Slice:
		if isNull(raw) {
			v.Set(reflect.Zero(t))
			return nil
		}
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return &DecodeError{Kind: ErrWrongType, Path: path, Detail: "expected array, got " + jsonKind(raw)}
		}
		s := reflect.MakeSlice(t, len(items), len(items))
		for i, item := range items {
			if err := st.decodeValue(item, s.Index(i), indexPath(path, i)); err != nil {
				return err
			}
		}
		v.Set(s)
		return nil

	case reflect.Array:
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil || len(items) != t.Len() {
			return &DecodeError{Kind: ErrWrongType, Path: path, Detail: fmt.Sprintf("expected array of length %d", t.Len())}
		}
		for i, item := range items {
			if err := st.decodeValue(item, v.Index(i), indexPath(path, i)); err != nil {
				return err
			}
		}
		return nil

	case reflect.Map:
		if isNull(raw) {
			v.Set(reflect.Zero(t))
			return nil
		}
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(raw, &obj); err != nil {
			return &DecodeError{Kind: ErrWrongType, Path: path, Detail: "expected object, got " + jsonKind(raw)}
		}
		m := reflect.MakeMapWithSize(t, len(obj))
		for _, key := range sortedKeys(obj) {
			kv, err := decodeMapKey(key, t.Key(), joinPath(path, key))
			if err != nil {
				return err
			}
			ev := reflect.New(t.Elem()).Elem()
			if err := st.decodeValue(obj[key], ev, joinPath(path, key)); err != nil {
				return err
			}
			m.SetMapIndex(kv, ev)
		}
		v.Set(m)
		return nil
	}

	// null leaves a scalar untouched in encoding/json.
	if isNull(raw) {
		return &DecodeError{Kind: ErrWrongType, Path: path, Detail: fmt.Sprintf("expected %s, got null", wireKindOf(t))}
	}
	if err := json.Unmarshal(raw, v.Addr().Interface()); err != nil {
		return &DecodeError{Kind: ErrWrongType, Path: path, Detail: fmt.Sprintf("expected %s, got %s", wireKindOf(t), jsonKind(raw))}
	}
	if t.Kind() == reflect.String {
		return checkEnum(t, v.String(), path)
	}
	return nil
}

func wireKindOf(t reflect.Type) string {
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	default:
		return t.Kind().String()
	}
}

func decodeMapKey(key string, t reflect.Type, path string) (reflect.Value, error) {
	kv := reflect.New(t).Elem()
	switch t.Kind() {
	case reflect.String:
		kv.SetString(key)
		if err := checkEnum(t, key, path); err != nil {
			return kv, err
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(key, 10, t.Bits())
		if err != nil {
			return kv, &DecodeError{Kind: ErrWrongType, Path: path, Detail: "expected integer key"}
		}
		kv.SetInt(n)
	default:
		return kv, &DecodeError{Kind: ErrWrongType, Path: path, Detail: "unsupported key type " + t.String()}
	}
	return kv, nil
}

func checkEnum(t reflect.Type, s string, path string) error {
	vals, ok := enums[t]
	if !ok {
		return nil
	}
	if _, ok := vals.set[s]; !ok {
		return &DecodeError{Kind: ErrInvalidValue, Path: path, Detail: fmt.Sprintf("%q is not a %s", s, t.Name())}
	}
	return nil
}

func sortedKeys(m map[string]json.RawMessage) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (st *decodeState) decodeObject(obj map[string]json.RawMessage, v reflect.Value, path string) error {
	fields := cachedFields(v.Type())

	for _, key := range sortedKeys(obj) {
		if _, ok := fields.byName[key]; ok {
			continue
		}
		if fields.envelope != nil && (key == fields.envelope.tagKey || key == fields.envelope.contentKey) {
			continue
		}
		if !st.allowUnknown {
			return &DecodeError{Kind: ErrUnknownField, Path: joinPath(path, key)}
		}
		st.ignored = append(st.ignored, joinPath(path, key))
	}

	for _, f := range fields.list {
		fv := v.FieldByIndex(f.index)
		if f.envelope != nil {
			if err := st.decodeFlatEnvelope(f.envelope, obj, fv, path); err != nil {
				return err
			}
			continue
		}

		raw, ok := obj[f.name]
		if ok && f.omitEmpty && isNull(raw) && nillable(fv.Kind()) {
			fv.Set(reflect.Zero(fv.Type()))
			continue
		}
		if !ok {
			if f.hasDefault {
				if err := applyDefault(f, fv); err != nil {
					return &DecodeError{Kind: ErrInvalidValue, Path: joinPath(path, f.name), Detail: err.Error()}
				}
				continue
			}
			if f.required {
				return &DecodeError{Kind: ErrMissingField, Path: joinPath(path, f.name)}
			}
			continue
		}

		if err := st.decodeValue(raw, fv, joinPath(path, f.name)); err != nil {
			return err
		}
	}
	return nil
}

func nillable(k reflect.Kind) bool {
	switch k {
	case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map:
		return true
	}
	return false
}

// decodeFlatEnvelope decodes an envelope union whose tag and content keys
// sit directly in the parent object.
func (st *decodeState) decodeFlatEnvelope(u *unionInfo, obj map[string]json.RawMessage, v reflect.Value, path string) error {
	env := make(map[string]json.RawMessage, 2)
	for _, k := range []string{u.tagKey, u.contentKey} {
		if raw, ok := obj[k]; ok {
			env[k] = raw
		}
	}
	return st.decodeEnvelope(u, env, v, path)
}

func applyDefault(f *fieldInfo, v reflect.Value) error {
	if v.Kind() == reflect.String {
		v.SetString(f.def)
		return nil
	}
	p := reflect.New(v.Type())
	if err := json.Unmarshal([]byte(f.def), p.Interface()); err != nil {
		return fmt.Errorf("bad default %q: %w", f.def, err)
	}
	// An empty collection default is the nil collection.
	if k := v.Kind(); (k == reflect.Map || k == reflect.Slice) && p.Elem().Len() == 0 {
		v.Set(reflect.Zero(v.Type()))
		return nil
	}
	v.Set(p.Elem())
	return nil
}

// Defaults returns a T whose default-tagged fields, including those of
// embedded and flattened structs, hold their documented wire defaults.
// Every other field is left at its zero value.
func Defaults[T any]() T {
	var v T
	rv := reflect.ValueOf(&v).Elem()
	if rv.Kind() == reflect.Struct {
		setDefaults(rv)
	}
	return v
}

func setDefaults(v reflect.Value) {
	for _, f := range cachedFields(v.Type()).list {
		if !f.hasDefault {
			continue
		}
		if err := applyDefault(f, v.FieldByIndex(f.index)); err != nil {
			panic(fmt.Sprintf("figma: %s.%s: %v", v.Type(), f.goName, err))
		}
	}
}

func (st *decodeState) decodeUnion(u *unionInfo, raw []byte, v reflect.Value, path string) error {
	if isNull(raw) {
		return &DecodeError{Kind: ErrWrongType, Path: path, Detail: fmt.Sprintf("expected %s object, got null", u.name)}
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return &DecodeError{Kind: ErrWrongType, Path: path, Detail: fmt.Sprintf("expected %s object, got %s", u.name, jsonKind(raw))}
	}
	if u.encoding == Envelope {
		for _, key := range sortedKeys(obj) {
			if key == u.tagKey || key == u.contentKey {
				continue
			}
			if !st.allowUnknown {
				return &DecodeError{Kind: ErrUnknownField, Path: joinPath(path, key)}
			}
			st.ignored = append(st.ignored, joinPath(path, key))
		}
		return st.decodeEnvelope(u, obj, v, path)
	}
	return st.decodeInline(u, obj, v, path)
}

func (st *decodeState) decodeEnvelope(u *unionInfo, obj map[string]json.RawMessage, v reflect.Value, path string) error {
	rawTag, ok := obj[u.tagKey]
	if !ok {
		return &DecodeError{Kind: ErrMissingField, Path: joinPath(path, u.tagKey)}
	}
	var tag string
	if err := json.Unmarshal(rawTag, &tag); err != nil {
		return &DecodeError{Kind: ErrWrongType, Path: joinPath(path, u.tagKey), Detail: "expected string discriminant"}
	}
	vi := u.byTag(u.tagKey, tag)
	if vi == nil {
		return &DecodeError{Kind: ErrUnknownVariant, Path: joinPath(path, u.tagKey), Detail: fmt.Sprintf("%q is not a %s", tag, u.name)}
	}
	content, ok := obj[u.contentKey]
	if !ok {
		return &DecodeError{Kind: ErrMissingField, Path: joinPath(path, u.contentKey)}
	}
	p := reflect.New(vi.typ)
	vi.setTag(p.Elem(), tag)
	if err := st.decodeValue(content, p.Elem(), joinPath(path, u.contentKey)); err != nil {
		return err
	}
	v.Set(p.Elem())
	return nil
}

func (st *decodeState) decodeInline(u *unionInfo, obj map[string]json.RawMessage, v reflect.Value, path string) error {
	var (
		vi     *variantInfo
		tagKey string
		tag    string
	)
	for _, key := range u.keys {
		rawTag, ok := obj[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(rawTag, &tag); err != nil {
			return &DecodeError{Kind: ErrWrongType, Path: joinPath(path, key), Detail: "expected string discriminant"}
		}
		tagKey = key
		if vi = u.byTag(key, tag); vi == nil {
			return &DecodeError{Kind: ErrUnknownVariant, Path: joinPath(path, key), Detail: fmt.Sprintf("%q is not a %s", tag, u.name)}
		}
		break
	}
	if vi == nil {
		return &DecodeError{Kind: ErrMissingField, Path: joinPath(path, u.tagKey), Detail: u.name + " discriminant"}
	}

	rest := make(map[string]json.RawMessage, len(obj))
	for k, raw := range obj {
		if k != tagKey {
			rest[k] = raw
		}
	}
	p := reflect.New(vi.typ)
	vi.setTag(p.Elem(), tag)
	if err := st.decodeObject(rest, p.Elem(), path); err != nil {
		return err
	}
	v.Set(p.Elem())
	return nil
}

// marshalVariant writes payload wrapped in the wire form of v's union.
// Every variant type's MarshalJSON funnels through here.
func marshalVariant(v any, payload any) ([]byte, error) {
	rv := reflect.ValueOf(v)
	u, vi := variantOf(rv.Type())
	if vi == nil {
		return nil, &EncodeError{Detail: fmt.Sprintf("%T is not a registered union variant", v)}
	}
	tag, eerr := vi.tagOf(rv)
	if eerr != nil {
		return nil, eerr
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	key, _ := json.Marshal(vi.key)
	val, _ := json.Marshal(tag)
	head := fmt.Sprintf("{%s:%s}", key, val)

	if u.encoding == Envelope {
		ckey, _ := json.Marshal(u.contentKey)
		var buf bytes.Buffer
		buf.WriteString(head[:len(head)-1])
		buf.WriteByte(',')
		buf.Write(ckey)
		buf.WriteByte(':')
		buf.Write(body)
		buf.WriteByte('}')
		return buf.Bytes(), nil
	}
	return mergeObjects([]byte(head), body)
}

// mergeObjects concatenates the members of JSON objects into one object.
func mergeObjects(objs ...[]byte) ([]byte, error) {
	out := []byte{'{'}
	for _, o := range objs {
		o = bytes.TrimSpace(o)
		if len(o) < 2 || o[0] != '{' || o[len(o)-1] != '}' {
			return nil, &EncodeError{Detail: "payload is not an object"}
		}
		inner := bytes.TrimSpace(o[1 : len(o)-1])
		if len(inner) == 0 {
			continue
		}
		if len(out) > 1 {
			out = append(out, ',')
		}
		out = append(out, inner...)
	}
	return append(out, '}'), nil
}

// checkEncodable walks v and rejects states the wire format cannot carry:
// nil required union slots, and tags or enum values outside their declared set.
func checkEncodable(v reflect.Value, path string) error {
	if !v.IsValid() {
		return nil
	}
	t := v.Type()
	if u, ok := unions[t]; ok {
		if v.IsNil() {
			return &EncodeError{Path: path, Detail: "nil " + u.name}
		}
		inner := v.Elem()
		if inner.Kind() == reflect.Pointer && !inner.IsNil() {
			inner = inner.Elem()
		}
		_, vi := variantOf(inner.Type())
		if vi == nil || vi.union != u {
			return &EncodeError{Path: path, Detail: fmt.Sprintf("%s is not a %s variant", inner.Type(), u.name)}
		}
		if _, err := vi.tagOf(inner); err != nil {
			err.Path = path
			return err
		}
		if u.encoding == Envelope {
			return checkEncodable(inner, joinPath(path, u.contentKey))
		}
		return checkEncodable(inner, path)
	}

	switch t.Kind() {
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return nil
		}
		return checkEncodable(v.Elem(), path)
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			if err := checkEncodable(v.Index(i), indexPath(path, i)); err != nil {
				return err
			}
		}
	case reflect.Map:
		iter := v.MapRange()
		for iter.Next() {
			keyPath := joinPath(path, fmt.Sprint(iter.Key().Interface()))
			if err := checkEncodable(iter.Key(), keyPath); err != nil {
				return err
			}
			if err := checkEncodable(iter.Value(), keyPath); err != nil {
				return err
			}
		}
	case reflect.String:
		if e, ok := enums[t]; ok {
			if _, ok := e.set[v.String()]; !ok {
				return &EncodeError{Path: path, Detail: fmt.Sprintf("%q is not a %s", v.String(), t.Name())}
			}
		}
	case reflect.Struct:
		for _, f := range cachedFields(t).list {
			fv := v.FieldByIndex(f.index)
			if f.omitEmpty && fv.IsZero() {
				continue
			}
			name := f.name
			if f.envelope != nil {
				name = f.envelope.contentKey
			}
			if err := checkEncodable(fv, joinPath(path, name)); err != nil {
				return err
			}
		}
	}
	return nil
}

// fieldInfo describes one wire field of a struct, with embedded and
// flattened members already expanded.
type fieldInfo struct {
	name       string
	goName     string
	index      []int
	typ        reflect.Type
	omitEmpty  bool
	required   bool
	hasDefault bool
	def        string
	envelope   *unionInfo
}

type structFields struct {
	list     []*fieldInfo
	byName   map[string]*fieldInfo
	envelope *unionInfo
}

var fieldCache sync.Map // map[reflect.Type]*structFields

func cachedFields(t reflect.Type) *structFields {
	if f, ok := fieldCache.Load(t); ok {
		return f.(*structFields)
	}
	f, _ := fieldCache.LoadOrStore(t, typeFields(t))
	return f.(*structFields)
}

func typeFields(t reflect.Type) *structFields {
	sf := &structFields{byName: make(map[string]*fieldInfo)}
	collectFields(t, nil, sf)
	return sf
}

func collectFields(t reflect.Type, index []int, sf *structFields) {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		idx := append(append([]int(nil), index...), i)
		tag := f.Tag.Get("json")
		opts := f.Tag.Get("figma")
		if tag == "-" || opts == "tag" {
			continue
		}
		if !f.IsExported() && !f.Anonymous {
			continue
		}
		if (f.Anonymous && tag == "") || opts == "flatten" {
			if u, ok := unions[f.Type]; ok {
				if u.encoding != Envelope {
					panic(fmt.Sprintf("figma: %s.%s: only envelope unions can be flattened", t, f.Name))
				}
				fi := &fieldInfo{goName: f.Name, index: idx, typ: f.Type, envelope: u}
				sf.list = append(sf.list, fi)
				sf.envelope = u
				continue
			}
			if f.Type.Kind() == reflect.Struct {
				collectFields(f.Type, idx, sf)
				continue
			}
		}

		name, rest, _ := strings.Cut(tag, ",")
		if name == "" {
			name = f.Name
		}
		fi := &fieldInfo{
			name:      name,
			goName:    f.Name,
			index:     idx,
			typ:       f.Type,
			omitEmpty: omits(rest),
		}
		fi.def, fi.hasDefault = f.Tag.Lookup("default")
		fi.required = !fi.omitEmpty && !fi.hasDefault
		if _, dup := sf.byName[name]; dup {
			panic(fmt.Sprintf("figma: %s: duplicate wire field %q", t, name))
		}
		sf.byName[name] = fi
		sf.list = append(sf.list, fi)
	}
}

// omits reports whether the json tag options let the encoder drop the field.
func omits(opts string) bool {
	return strings.Contains(opts, "omitempty") || strings.Contains(opts, "omitzero")
}
