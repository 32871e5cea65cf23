package stattable

import (
	"errors"
	"fmt"
	"slices"
)

// Validate checks every registered schema against the catalog: referenced
// keys exist, keys are unique within a schema and group bands flatten to the
// column list.
func Validate() error {
	var errs []error
	for _, s := range schemas {
		if err := validateSchema(s); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func validateSchema(s TableSchema) error {
	if len(s.Columns) == 0 {
		return fmt.Errorf("table %s: no columns", s.ID)
	}

	seen := make(map[ColumnKey]struct{}, len(s.Columns))
	for _, k := range s.Columns {
		if _, ok := columnIndex[k]; !ok {
			return fmt.Errorf("table %s: column %q is not in the catalog", s.ID, k)
		}
		if _, dup := seen[k]; dup {
			return fmt.Errorf("table %s: column %q listed twice", s.ID, k)
		}
		seen[k] = struct{}{}
	}

	if !s.Grouped() {
		return nil
	}
	var flat []ColumnKey
	for _, g := range s.Groups {
		if len(g.Columns) == 0 {
			return fmt.Errorf("table %s: group %q is empty", s.ID, g.Title)
		}
		flat = append(flat, g.Columns...)
	}
	if !slices.Equal(flat, s.Columns) {
		return fmt.Errorf("table %s: grouped columns do not match column list", s.ID)
	}
	return nil
}
