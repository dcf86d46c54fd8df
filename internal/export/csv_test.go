package export

import (
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/brushline/estimator-backend/internal/types"
)

func floatPtr(f float64) *float64 { return &f }
func strPtr(s string) *string     { return &s }

func TestEstimateCSVHeaderOnlyWhenNoItems(t *testing.T) {
	t.Parallel()
	got := EstimateCSV(&types.EstimateWithItems{})
	want := "Item,Project Type,Surface,Scenario,Size,Output Value,Output Unit,Cost Code,Materials"
	if got != want {
		t.Fatalf("unexpected document: got=%q want=%q", got, want)
	}
}

func TestEstimateCSVFullRow(t *testing.T) {
	t.Parallel()

	itemID := uuid.New()
	estimate := &types.EstimateWithItems{
		Items: []*types.EstimateItem{
			{
				ID:          itemID,
				Size:        250,
				OutputValue: floatPtr(2.5),
				OutputUnit:  strPtr(types.OutputUnitSqFt),
				CostCode:    strPtr("PT-100"),
				ProjectType: &types.ProjectType{DisplayName: "Interior Repaint"},
				Surface:     &types.Surface{DisplayName: "Ceilings Repaint"},
				Scenario:    &types.Scenario{DisplayName: "Low Volume"},
				Materials: []*types.EstimateItemMaterial{
					{
						Quantity: 3,
						Material: &types.Material{DisplayName: "Paint (Gallon)", Unit: "gallon"},
					},
					{
						Quantity: 1.5,
						Material: &types.Material{DisplayName: "Caulk (Tube)", Unit: "tube"},
					},
				},
			},
		},
	}

	got := EstimateCSV(estimate)
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("unexpected line count: got=%d want=2", len(lines))
	}
	wantRow := `"` + itemID.String() + `","Interior Repaint","Ceilings Repaint","Low Volume","250","2.5","sq_ft","PT-100","Paint (Gallon) (3 gallon); Caulk (Tube) (1.5 tube)"`
	if lines[1] != wantRow {
		t.Fatalf("unexpected row:\n got=%s\nwant=%s", lines[1], wantRow)
	}
	if strings.HasSuffix(got, "\n") {
		t.Fatalf("document must not end with a trailing newline")
	}
}

func TestEstimateCSVQuoteEscaping(t *testing.T) {
	t.Parallel()

	estimate := &types.EstimateWithItems{
		Items: []*types.EstimateItem{
			{
				ID:   uuid.New(),
				Size: 10,
				Materials: []*types.EstimateItemMaterial{
					{
						Quantity: 2,
						Material: &types.Material{DisplayName: `Bob's "Premium" Paint`, Unit: "gallon"},
					},
				},
			},
		},
	}

	got := EstimateCSV(estimate)
	want := `"Bob's ""Premium"" Paint (2 gallon)"`
	if !strings.Contains(got, want) {
		t.Fatalf("escaped material cell not found:\n doc=%s\nwant substring=%s", got, want)
	}
}

func TestEstimateCSVMissingJoinsRenderEmpty(t *testing.T) {
	t.Parallel()

	itemID := uuid.New()
	estimate := &types.EstimateWithItems{
		Items: []*types.EstimateItem{
			{ID: itemID, Size: 42},
		},
	}

	got := EstimateCSV(estimate)
	wantRow := `"` + itemID.String() + `","","","","42","","","",""`
	if !strings.HasSuffix(got, wantRow) {
		t.Fatalf("unexpected row for item with no joins:\n doc=%s\nwant suffix=%s", got, wantRow)
	}
}

func TestFilename(t *testing.T) {
	t.Parallel()
	if got := Filename("abc"); got != "builder-trend-abc.csv" {
		t.Fatalf("unexpected filename: %s", got)
	}
}
