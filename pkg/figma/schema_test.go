package figma

import (
	"encoding/json"
	"reflect"
	"testing"
)

// reachable returns every named struct type and union interface reachable
// from the document roots.
func reachable() (structs []reflect.Type, unionTypes []reflect.Type) {
	seen := make(map[reflect.Type]bool)
	var walk func(t reflect.Type)
	walk = func(t reflect.Type) {
		for t.Kind() == reflect.Pointer || t.Kind() == reflect.Slice || t.Kind() == reflect.Array {
			t = t.Elem()
		}
		if t.Kind() == reflect.Map {
			walk(t.Key())
			walk(t.Elem())
			return
		}
		if seen[t] {
			return
		}
		seen[t] = true
		if u, ok := LookupUnion(t); ok {
			unionTypes = append(unionTypes, t)
			for _, v := range u.Variants {
				walk(v.Type)
			}
			return
		}
		if t.Kind() != reflect.Struct {
			return
		}
		structs = append(structs, t)
		for _, f := range Fields(t) {
			walk(f.Type)
		}
	}
	for _, r := range Roots() {
		walk(r)
	}
	return structs, unionTypes
}

func TestOmittedFieldsDefaultToZero(t *testing.T) {
	structs, _ := reachable()
	if len(structs) < 40 {
		t.Fatalf("only %d struct types reachable from the roots", len(structs))
	}

	for _, st := range structs {
		for _, f := range Fields(st) {
			if !f.HasDefault {
				continue
			}
			v := reflect.New(f.Type)
			if f.Type.Kind() == reflect.String {
				v.Elem().SetString(f.Default)
			} else if err := json.Unmarshal([]byte(f.Default), v.Interface()); err != nil {
				t.Errorf("%s.%s: default %q does not parse: %v", st, f.GoName, f.Default, err)
				continue
			}
			if !f.OmitEmpty {
				continue
			}
			// An omitted field must decode back to the value that was omitted.
			d := v.Elem()
			empty := d.IsZero() || ((d.Kind() == reflect.Map || d.Kind() == reflect.Slice) && d.Len() == 0)
			if !empty {
				t.Errorf("%s.%s is omitempty with non-zero default %q", st, f.GoName, f.Default)
			}
		}
	}
}

func TestEnumDefaultsAreDeclared(t *testing.T) {
	structs, _ := reachable()
	for _, st := range structs {
		for _, f := range Fields(st) {
			if !f.HasDefault || f.Type.Kind() != reflect.String {
				continue
			}
			vals, ok := LookupEnum(f.Type)
			if !ok {
				continue
			}
			found := false
			for _, v := range vals {
				found = found || v == f.Default
			}
			if !found {
				t.Errorf("%s.%s default %q is not a %s", st, f.GoName, f.Default, f.Type.Name())
			}
		}
	}
}

func TestUnionRegistry(t *testing.T) {
	_, unionTypes := reachable()

	want := map[string]UnionEncoding{
		"NodeVariant":   Envelope,
		"VariableValue": Envelope,
		"Paint":         Inline,
		"Effect":        Inline,
		"Trigger":       Inline,
		"Action":        Inline,
		"Transition":    Inline,
		"Hyperlink":     Inline,
	}
	if len(unionTypes) != len(want) {
		t.Errorf("reachable unions = %v, want %d", unionTypes, len(want))
	}
	for _, ut := range unionTypes {
		u, _ := LookupUnion(ut)
		enc, ok := want[u.Name]
		if !ok {
			t.Errorf("unexpected union %s", u.Name)
			continue
		}
		if u.Encoding != enc {
			t.Errorf("%s encoding = %v, want %v", u.Name, u.Encoding, enc)
		}

		tags := make(map[string]bool)
		for _, v := range u.Variants {
			for _, tag := range v.Tags {
				key := v.Key + "=" + tag
				if tags[key] {
					t.Errorf("%s declares %s twice", u.Name, key)
				}
				tags[key] = true
			}
		}
	}

	action, _ := LookupUnion(reflect.TypeFor[Action]())
	var sentinels int
	for _, v := range action.Variants {
		if v.Key != action.TagKey {
			sentinels++
			if v.Key != OpenURLSentinelKey || v.Type != reflect.TypeFor[OpenURLAction]() {
				t.Errorf("unexpected sentinel variant %+v", v)
			}
		}
	}
	if sentinels != 1 {
		t.Errorf("Action has %d sentinel variants, want 1", sentinels)
	}
}

func TestFields(t *testing.T) {
	fields := Fields(reflect.TypeFor[RectangleNode]())
	if len(fields) != 2 || !fields[0].Flatten || !fields[1].Flatten {
		t.Fatalf("Fields(RectangleNode) = %+v, want two flattened members", fields)
	}
	if fields[0].Type != reflect.TypeFor[ShapeAttributes]() || fields[1].Type != reflect.TypeFor[RectangleData]() {
		t.Errorf("Fields(RectangleNode) types = %v, %v", fields[0].Type, fields[1].Type)
	}

	byName := make(map[string]FieldInfo)
	for _, f := range Fields(reflect.TypeFor[ShadowEffect]()) {
		byName[f.Name] = f
	}
	if _, ok := byName["Type"]; ok {
		t.Error("tag slot is reported as a wire field")
	}
	if f := byName["spread"]; !f.OmitEmpty || f.Required || f.Default != "0" {
		t.Errorf("spread = %+v", f)
	}
	if f := byName["radius"]; !f.Required {
		t.Errorf("radius = %+v, want required", f)
	}
	if f := byName["visible"]; f.Required || f.OmitEmpty || f.Default != "true" {
		t.Errorf("visible = %+v", f)
	}
}
