package utils

import "reflect"

// ColumnList returns the "db" tags of T's fields, in declaration order.
// Embedded structs are flattened.
func ColumnList[T any]() []string {
	var dbModel T
	return columnsOf(reflect.TypeOf(dbModel))
}

func columnsOf(t reflect.Type) []string {
	columns := make([]string, 0, t.NumField())
	for i := range t.NumField() {
		field := t.Field(i)
		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			columns = append(columns, columnsOf(field.Type)...)
			continue
		}
		if tag, ok := field.Tag.Lookup("db"); ok && tag != "-" {
			columns = append(columns, tag)
		}
	}
	return columns
}
