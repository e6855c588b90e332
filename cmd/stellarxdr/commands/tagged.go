// Copyright 2020 Erin Shepherd
// SPDX-License-Identifier: ISC

package commands

import (
	"fmt"
	"reflect"
)

// taggedArm is how a union is written in the json and cbor formats. The
// arm payload alone cannot tell apart arms of the same Go kind.
type taggedArm struct {
	Type  string
	Value any
}

var anyType = reflect.TypeOf((*any)(nil)).Elem()

// tagUnions returns a copy of v where every union wrapper (a struct whose
// only field is an interface named Arm) is replaced by a taggedArm. Struct
// field order is kept so the output reads like the type definition.
func tagUnions(v any) any {
	if v == nil {
		return nil
	}
	return tagValue(reflect.ValueOf(v))
}

func tagValue(rv reflect.Value) any {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return nil
		}
		return tagValue(rv.Elem())

	case reflect.Slice:
		if rv.IsNil() || rv.Type().Elem().Kind() == reflect.Uint8 {
			return rv.Interface()
		}
		fallthrough
	case reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return rv.Interface()
		}
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = tagValue(rv.Index(i))
		}
		return out

	case reflect.Struct:
		if arm, ok := unionArm(rv); ok {
			if arm.IsNil() {
				return nil
			}
			return taggedArm{
				Type:  armName(rv, arm.Elem()),
				Value: tagValue(arm.Elem()),
			}
		}
		return tagStruct(rv)

	default:
		if !rv.CanInterface() {
			return nil
		}
		return rv.Interface()
	}
}

func unionArm(rv reflect.Value) (reflect.Value, bool) {
	t := rv.Type()
	if t.NumField() != 1 {
		return reflect.Value{}, false
	}
	f := t.Field(0)
	if f.Name != "Arm" || f.Type.Kind() != reflect.Interface {
		return reflect.Value{}, false
	}
	return rv.Field(0), true
}

// armName prefers the union's discriminant name, falling back to the Go
// type of the arm for unions without a Type method.
func armName(union, arm reflect.Value) string {
	if m := union.MethodByName("Type"); m.IsValid() && m.Type().NumIn() == 0 && m.Type().NumOut() == 1 {
		if s, ok := m.Call(nil)[0].Interface().(fmt.Stringer); ok {
			return s.String()
		}
	}
	return arm.Type().Name()
}

func tagStruct(rv reflect.Value) any {
	t := rv.Type()

	var (
		fields []reflect.StructField
		values []any
	)
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		fields = append(fields, reflect.StructField{
			Name: f.Name,
			Type: anyType,
			Tag:  f.Tag,
		})
		values = append(values, tagValue(rv.Field(i)))
	}

	out := reflect.New(reflect.StructOf(fields)).Elem()
	for i, v := range values {
		if v != nil {
			out.Field(i).Set(reflect.ValueOf(v))
		}
	}
	return out.Interface()
}
