package debugui

import "reflect"

// FieldInfo describes one inspectable exported field of a component struct.
type FieldInfo struct {
	Name      string
	Index     int
	IsPointer bool
}

// fieldCache memoizes the inspectable fields per component type. Panels run on
// the single render goroutine, so a plain map suffices.
type fieldCache struct {
	fields map[reflect.Type][]FieldInfo
}

func newFieldCache() *fieldCache {
	return &fieldCache{fields: make(map[reflect.Type][]FieldInfo)}
}

// GetFields returns the exported, non-embedded fields of a struct type.
// Embedded fields are skipped: the component base carries only internal
// wiring, and promoted fields would render twice.
func (fc *fieldCache) GetFields(t reflect.Type) []FieldInfo {
	if cached, ok := fc.fields[t]; ok {
		return cached
	}

	var fields []FieldInfo
	if t.Kind() == reflect.Struct {
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if !field.IsExported() || field.Anonymous {
				continue
			}
			fields = append(fields, FieldInfo{
				Name:      field.Name,
				Index:     i,
				IsPointer: field.Type.Kind() == reflect.Ptr,
			})
		}
	}

	fc.fields[t] = fields
	return fields
}

var globalFieldCache = newFieldCache()
