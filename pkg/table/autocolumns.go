package table

import (
	"fmt"
	"reflect"
	"sort"
)

// AutoColumnSample is how many records are scanned when columns are
// inferred.
const AutoColumnSample = 100

// FieldSource is implemented by records that expose named fields in a
// meaningful order.
type FieldSource interface {
	Fields() []string
	Field(name string) (any, bool)
}

// inferColumns builds one column per primitive-valued field found in the
// first AutoColumnSample items. Items with no usable fields get a single
// column showing the whole item.
func inferColumns[T any](items []T) []Column[T] {
	seen := make(map[string]bool)
	var names []string
	for i, item := range items {
		if i == AutoColumnSample {
			break
		}
		for _, name := range fieldNames(item) {
			if seen[name] {
				continue
			}
			if v, ok := lookupField(item, name); ok && isPrimitive(v) {
				seen[name] = true
				names = append(names, name)
			}
		}
	}

	if len(names) == 0 {
		return []Column[T]{{
			Value: func(item T) any { return item },
		}}
	}

	cols := make([]Column[T], len(names))
	for i, name := range names {
		cols[i] = Column[T]{Key: name, Header: name}
	}
	return cols
}

// fieldNames lists the names an item exposes, in the order the item's own
// type defines: FieldSource order, sorted map keys, or struct declaration
// order.
func fieldNames(item any) []string {
	if fs, ok := item.(FieldSource); ok {
		return fs.Fields()
	}
	v := indirect(reflect.ValueOf(item))
	switch v.Kind() {
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return nil
		}
		names := make([]string, 0, v.Len())
		for _, k := range v.MapKeys() {
			names = append(names, k.String())
		}
		sort.Strings(names)
		return names
	case reflect.Struct:
		t := v.Type()
		var names []string
		for i := 0; i < t.NumField(); i++ {
			if f := t.Field(i); f.IsExported() {
				names = append(names, f.Name)
			}
		}
		return names
	default:
		return nil
	}
}

// lookupField reads a named value from a FieldSource, string-keyed map or
// struct.
func lookupField(item any, name string) (any, bool) {
	if fs, ok := item.(FieldSource); ok {
		return fs.Field(name)
	}
	v := indirect(reflect.ValueOf(item))
	switch v.Kind() {
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		mv := v.MapIndex(reflect.ValueOf(name).Convert(v.Type().Key()))
		if !mv.IsValid() {
			return nil, false
		}
		return mv.Interface(), true
	case reflect.Struct:
		f, ok := v.Type().FieldByName(name)
		if !ok || !f.IsExported() {
			return nil, false
		}
		return v.FieldByIndex(f.Index).Interface(), true
	default:
		return nil, false
	}
}

func indirect(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

func isPrimitive(v any) bool {
	if v == nil {
		return false
	}
	if _, ok := v.(fmt.Stringer); ok {
		return true
	}
	rv := indirect(reflect.ValueOf(v))
	switch rv.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

// formatValue renders a cell value. Missing and nil values are empty.
func formatValue(v any) string {
	if v == nil {
		return ""
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice:
		if rv.IsNil() {
			return ""
		}
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(indirectValue(v))
}

func indirectValue(v any) any {
	if _, ok := v.(fmt.Stringer); ok {
		return v
	}
	rv := indirect(reflect.ValueOf(v))
	if !rv.IsValid() {
		return nil
	}
	return rv.Interface()
}
