package validation

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// One rules table for every create operation. Handlers and services check
// required fields here instead of repeating per-field guards per route.
var required = map[string][]string{
	"projectType":          {"name", "displayName"},
	"surface":              {"name", "displayName", "projectTypeId"},
	"scenario":             {"name", "displayName", "surfaceId"},
	"output":               {"scenarioId", "outputValue", "outputUnit"},
	"material":             {"name", "displayName", "unit"},
	"estimateItem":         {"estimateId", "projectTypeId", "surfaceId", "scenarioId", "size"},
	"estimateItemMaterial": {"estimateItemId", "materialId", "quantity"},
}

type Error struct {
	Entity string
	Fields []string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: missing required fields: %s", e.Entity, strings.Join(e.Fields, ", "))
}

// Required reports the entity's required fields whose value is empty. The
// caller stringifies its inputs; a nil uuid or absent number maps to "".
func Required(entity string, fields map[string]string) error {
	rules, ok := required[entity]
	if !ok {
		return fmt.Errorf("no validation rules for entity %q", entity)
	}
	var missing []string
	for _, name := range rules {
		if strings.TrimSpace(fields[name]) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	sort.Strings(missing)
	return &Error{Entity: entity, Fields: missing}
}

func IsValidation(err error) bool {
	var ve *Error
	return errors.As(err, &ve)
}
