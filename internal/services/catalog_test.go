package services

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/brushline/estimator-backend/internal/validation"
)

func TestCreateProjectTypeRequiresFields(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.catalog.CreateProjectType(ctx, nil, "", "Interior Repaint")
	if !validation.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	_, err = env.catalog.CreateSurface(ctx, nil, uuid.Nil, "CeilingsRepaint", "Ceilings Repaint")
	if !validation.IsValidation(err) {
		t.Fatalf("expected validation error for missing parent, got %v", err)
	}
}

func TestListProjectTypesOrderedByDisplayName(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()

	for _, name := range []string{"New Construction", "Exterior Repaint", "Interior Repaint"} {
		if _, err := env.catalog.CreateProjectType(ctx, nil, name, name); err != nil {
			t.Fatalf("create project type: %v", err)
		}
	}

	listed, err := env.catalog.ListProjectTypes(ctx, nil)
	if err != nil {
		t.Fatalf("list project types: %v", err)
	}
	want := []string{"Exterior Repaint", "Interior Repaint", "New Construction"}
	if len(listed) != len(want) {
		t.Fatalf("unexpected count: got=%d want=%d", len(listed), len(want))
	}
	for i, pt := range listed {
		if pt.DisplayName != want[i] {
			t.Fatalf("unexpected order at %d: got=%q want=%q", i, pt.DisplayName, want[i])
		}
	}
}

func TestDeleteReturnsFalseForUnknownID(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()

	deleted, err := env.catalog.DeleteProjectType(ctx, nil, uuid.New())
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if deleted {
		t.Fatal("delete of unknown id must report false, not true")
	}
}

func TestDeleteProjectTypeCascades(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()

	pt, err := env.catalog.CreateProjectType(ctx, nil, "InteriorRepaint", "Interior Repaint")
	if err != nil {
		t.Fatalf("create project type: %v", err)
	}
	surface, err := env.catalog.CreateSurface(ctx, nil, pt.ID, "CeilingsRepaint", "Ceilings Repaint")
	if err != nil {
		t.Fatalf("create surface: %v", err)
	}
	scenario, err := env.catalog.CreateScenario(ctx, nil, surface.ID, "LowVolume", "Low Volume")
	if err != nil {
		t.Fatalf("create scenario: %v", err)
	}
	if _, err := env.outputs.CreateOrUpdate(ctx, nil, scenario.ID, 100, "sq_ft"); err != nil {
		t.Fatalf("create output: %v", err)
	}

	deleted, err := env.catalog.DeleteProjectType(ctx, nil, pt.ID)
	if err != nil {
		t.Fatalf("delete project type: %v", err)
	}
	if !deleted {
		t.Fatal("expected delete to report true")
	}

	surfaces, err := env.catalog.ListSurfaces(ctx, nil, pt.ID)
	if err != nil {
		t.Fatalf("list surfaces: %v", err)
	}
	if len(surfaces) != 0 {
		t.Fatalf("surfaces survived the cascade: %d", len(surfaces))
	}
	scenarios, err := env.catalog.ListScenarios(ctx, nil, surface.ID)
	if err != nil {
		t.Fatalf("list scenarios: %v", err)
	}
	if len(scenarios) != 0 {
		t.Fatalf("scenarios survived the cascade: %d", len(scenarios))
	}
	output, err := env.outputs.Resolve(ctx, nil, scenario.ID)
	if err != nil {
		t.Fatalf("resolve output: %v", err)
	}
	if output != nil {
		t.Fatal("output survived the cascade")
	}
}

func TestCreateMaterialWithNullableCost(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()

	material, err := env.catalog.CreateMaterial(ctx, nil, "PaintGallon", "Paint (Gallon)", "gallon", nil)
	if err != nil {
		t.Fatalf("create material: %v", err)
	}
	if material.CostPerUnit != nil {
		t.Fatalf("expected nil cost, got %v", *material.CostPerUnit)
	}

	listed, err := env.catalog.ListMaterials(ctx, nil)
	if err != nil {
		t.Fatalf("list materials: %v", err)
	}
	if len(listed) != 1 || listed[0].ID != material.ID {
		t.Fatalf("unexpected materials listing: %+v", listed)
	}
}
