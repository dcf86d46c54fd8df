package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/brushline/estimator-backend/internal/db"
	"github.com/brushline/estimator-backend/internal/logger"
	"github.com/brushline/estimator-backend/internal/repos"
	"github.com/brushline/estimator-backend/internal/services"
	"github.com/brushline/estimator-backend/internal/types"
)

// Catalog taken from the estimating template spreadsheet. Output values are
// production rates: amount completed per crew-day.
var seedProjectTypes = []struct {
	name        string
	displayName string
}{
	{"InteriorRepaint", "Interior Repaint"},
	{"NewConstruction", "New Construction"},
	{"ExteriorRepaint", "Exterior Repaint"},
}

var seedSurfaces = []struct {
	projectType string
	name        string
	displayName string
}{
	{"InteriorRepaint", "CeilingsRepaint", "Ceilings Repaint"},
	{"NewConstruction", "NewWalls", "New Walls"},
	{"ExteriorRepaint", "VerticalSidingRefinish", "Vertical Siding Refinish"},
}

var seedScenarios = []struct {
	surface     string
	name        string
	displayName string
}{
	{"CeilingsRepaint", "LowVolumeNineOrTenFoot", "Low Volume Nine or Ten Foot Ceiling Repaint"},
	{"NewWalls", "TapeCaulkTwoCoatDetailedTrim", "Tape, Caulk, and Two Coat 8-10ft Walls with Detailed Trim"},
	{"NewWalls", "TapeCaulkTwoCoatSimpleTrim", "Tape, Caulk, and Two Coat 8-10ft Walls with Simple Trim"},
	{"NewWalls", "StainAndClearSingleLightWindows", "Stain and Clear New Single Light Windows"},
	{"VerticalSidingRefinish", "PrimeAndPaintVerticalLapSiding", "Prime and Paint Vertical Lap Siding"},
}

var seedOutputs = []struct {
	scenario    string
	outputValue float64
	outputUnit  string
}{
	{"LowVolumeNineOrTenFoot", 100, types.OutputUnitSqFt},
	{"TapeCaulkTwoCoatDetailedTrim", 80, types.OutputUnitSqFt},
	{"TapeCaulkTwoCoatSimpleTrim", 100, types.OutputUnitSqFt},
	{"StainAndClearSingleLightWindows", 10, types.OutputUnitUnits},
	{"PrimeAndPaintVerticalLapSiding", 150, types.OutputUnitSqFt},
}

var seedMaterials = []struct {
	name        string
	displayName string
	unit        string
	costPerUnit float64
}{
	{"PaintGallon", "Paint (Gallon)", "gallon", 50.0},
	{"PrimerGallon", "Primer (Gallon)", "gallon", 35.0},
	{"CaulkTube", "Caulk (Tube)", "tube", 8.0},
	{"TapeRoll", "Painter's Tape (Roll)", "roll", 6.0},
}

func main() {
	reset := flag.Bool("reset", false, "delete all catalog rows before seeding")
	flag.Parse()

	_ = godotenv.Load()

	log, err := logger.New(os.Getenv("LOG_MODE"))
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	dbService, err := db.New(log)
	if err != nil {
		log.Fatal("Database init failed", "error", err)
	}
	if err := dbService.AutoMigrateAll(); err != nil {
		log.Fatal("Auto migration failed", "error", err)
	}
	theDB := dbService.DB()

	projectTypeRepo := repos.NewProjectTypeRepo(theDB, log)
	surfaceRepo := repos.NewSurfaceRepo(theDB, log)
	scenarioRepo := repos.NewScenarioRepo(theDB, log)
	outputRepo := repos.NewOutputRepo(theDB, log)
	materialRepo := repos.NewMaterialRepo(theDB, log)

	catalog := services.NewCatalogService(theDB, log, projectTypeRepo, surfaceRepo, scenarioRepo, materialRepo)
	outputs := services.NewOutputService(theDB, log, outputRepo)

	ctx := context.Background()

	if *reset {
		log.Warn("Resetting catalog tables...")
		for _, table := range []string{"outputs", "scenarios", "surfaces", "project_types", "materials"} {
			if err := theDB.Exec("DELETE FROM " + table).Error; err != nil {
				log.Fatal("Reset failed", "table", table, "error", err)
			}
		}
	}

	projectTypeIDs := map[string]*types.ProjectType{}
	for _, pt := range seedProjectTypes {
		created, err := catalog.CreateProjectType(ctx, nil, pt.name, pt.displayName)
		if err != nil {
			log.Fatal("Seed project type failed", "name", pt.name, "error", err)
		}
		projectTypeIDs[pt.name] = created
	}

	surfaceIDs := map[string]*types.Surface{}
	for _, s := range seedSurfaces {
		parent, ok := projectTypeIDs[s.projectType]
		if !ok {
			log.Fatal("Seed surface references unknown project type", "surface", s.name, "projectType", s.projectType)
		}
		created, err := catalog.CreateSurface(ctx, nil, parent.ID, s.name, s.displayName)
		if err != nil {
			log.Fatal("Seed surface failed", "name", s.name, "error", err)
		}
		surfaceIDs[s.name] = created
	}

	scenarioIDs := map[string]*types.Scenario{}
	for _, sc := range seedScenarios {
		parent, ok := surfaceIDs[sc.surface]
		if !ok {
			log.Fatal("Seed scenario references unknown surface", "scenario", sc.name, "surface", sc.surface)
		}
		created, err := catalog.CreateScenario(ctx, nil, parent.ID, sc.name, sc.displayName)
		if err != nil {
			log.Fatal("Seed scenario failed", "name", sc.name, "error", err)
		}
		scenarioIDs[sc.name] = created
	}

	for _, o := range seedOutputs {
		scenario, ok := scenarioIDs[o.scenario]
		if !ok {
			log.Fatal("Seed output references unknown scenario", "scenario", o.scenario)
		}
		if _, err := outputs.CreateOrUpdate(ctx, nil, scenario.ID, o.outputValue, o.outputUnit); err != nil {
			log.Fatal("Seed output failed", "scenario", o.scenario, "error", err)
		}
	}

	for _, m := range seedMaterials {
		cost := m.costPerUnit
		if _, err := catalog.CreateMaterial(ctx, nil, m.name, m.displayName, m.unit, &cost); err != nil {
			log.Fatal("Seed material failed", "name", m.name, "error", err)
		}
	}

	log.Info("Seed complete",
		"project_types", len(seedProjectTypes),
		"surfaces", len(seedSurfaces),
		"scenarios", len(seedScenarios),
		"outputs", len(seedOutputs),
		"materials", len(seedMaterials),
	)
}
