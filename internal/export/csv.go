package export

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/brushline/estimator-backend/internal/types"
)

// Column order expected by the Builder Trend import.
const header = "Item,Project Type,Surface,Scenario,Size,Output Value,Output Unit,Cost Code,Materials"

// Filename names the CSV attachment for an estimate download.
func Filename(estimateID string) string {
	return fmt.Sprintf("builder-trend-%s.csv", estimateID)
}

// EstimateCSV renders a deep-fetched estimate as a CSV document: the fixed
// header plus one row per item in store order, rows joined by a single
// newline with no trailing newline. Every field is quoted and inner quotes
// are doubled; with all fields quoted no other escaping is needed.
func EstimateCSV(estimate *types.EstimateWithItems) string {
	rows := make([]string, 0, len(estimate.Items)+1)
	rows = append(rows, header)
	for _, item := range estimate.Items {
		rows = append(rows, itemRow(item))
	}
	return strings.Join(rows, "\n")
}

func itemRow(item *types.EstimateItem) string {
	fields := []string{
		item.ID.String(),
		displayName(item.ProjectType),
		surfaceDisplayName(item.Surface),
		scenarioDisplayName(item.Scenario),
		formatNumber(item.Size),
		formatOptionalNumber(item.OutputValue),
		optionalString(item.OutputUnit),
		optionalString(item.CostCode),
		materialsCell(item.Materials),
	}
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = quote(f)
	}
	return strings.Join(quoted, ",")
}

func materialsCell(materials []*types.EstimateItemMaterial) string {
	parts := make([]string, 0, len(materials))
	for _, m := range materials {
		name, unit := "", ""
		if m.Material != nil {
			name = m.Material.DisplayName
			unit = m.Material.Unit
		}
		parts = append(parts, fmt.Sprintf("%s (%s %s)", name, formatNumber(m.Quantity), unit))
	}
	return strings.Join(parts, "; ")
}

func quote(field string) string {
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}

// formatNumber matches the original export's number rendering: minimal
// decimal form, so 250 stays "250" and 2.5 stays "2.5".
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func formatOptionalNumber(f *float64) string {
	if f == nil {
		return ""
	}
	return formatNumber(*f)
}

func optionalString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func displayName(pt *types.ProjectType) string {
	if pt == nil {
		return ""
	}
	return pt.DisplayName
}

func surfaceDisplayName(s *types.Surface) string {
	if s == nil {
		return ""
	}
	return s.DisplayName
}

func scenarioDisplayName(sc *types.Scenario) string {
	if sc == nil {
		return ""
	}
	return sc.DisplayName
}
