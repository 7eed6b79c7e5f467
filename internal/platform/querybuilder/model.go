package querybuilder

import (
	"fmt"
	"reflect"
	"sort"
)

// InsertModel builds an INSERT for a db-tagged struct. Fields tagged "-"
// or left untagged are skipped.
func InsertModel(table string, model any, suffix string) (string, []any, error) {
	columns, rows, err := modelRows(reflect.ValueOf(model))
	if err != nil {
		return "", nil, err
	}

	builder := InsertInto(table).Columns(columns...)
	for _, row := range rows {
		builder = builder.Values(row...)
	}
	if suffix != "" {
		builder = builder.Suffix(suffix)
	}
	return builder.ToSQL()
}

// InsertModels builds one multi-row INSERT from a slice of db-tagged structs.
// All elements must share the same type.
func InsertModels[T any](table string, models []T, suffix string) (string, []any, error) {
	if len(models) == 0 {
		return "", nil, fmt.Errorf("insert models are required")
	}

	builder := InsertInto(table)
	for i, model := range models {
		columns, rows, err := modelRows(reflect.ValueOf(model))
		if err != nil {
			return "", nil, fmt.Errorf("model %d: %w", i, err)
		}
		if i == 0 {
			builder = builder.Columns(columns...)
		}
		for _, row := range rows {
			builder = builder.Values(row...)
		}
	}
	if suffix != "" {
		builder = builder.Suffix(suffix)
	}
	return builder.ToSQL()
}

func modelRows(v reflect.Value) ([]string, [][]any, error) {
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil, nil, fmt.Errorf("model must not be nil")
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil, nil, fmt.Errorf("model must be a struct, got %s", v.Kind())
	}

	byColumn := map[string]any{}
	collectFields(v, byColumn)
	if len(byColumn) == 0 {
		return nil, nil, fmt.Errorf("model has no db-tagged fields")
	}

	columns := make([]string, 0, len(byColumn))
	for column := range byColumn {
		columns = append(columns, column)
	}
	sort.Strings(columns)

	row := make([]any, 0, len(columns))
	for _, column := range columns {
		row = append(row, byColumn[column])
	}
	return columns, [][]any{row}, nil
}

func collectFields(v reflect.Value, out map[string]any) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			collectFields(v.Field(i), out)
			continue
		}

		column, ok := field.Tag.Lookup("db")
		if !ok || column == "" || column == "-" {
			continue
		}
		out[column] = v.Field(i).Interface()
	}
}
