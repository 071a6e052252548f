package engine

import (
	"fmt"

	"github.com/lpauloin/nameclip/internal/model"
)

// ComparisonScenario defines a named set of bed settings to compare.
type ComparisonScenario struct {
	Name     string
	Settings model.BedSettings
}

// ComparisonResult holds the packing result and computed statistics for a
// single scenario. Err is set when the scenario failed (item too large for
// that bed); the statistics are zero in that case.
type ComparisonResult struct {
	Scenario     ComparisonScenario
	Result       model.PackResult
	PlatesUsed   int
	TagsPlaced   int
	WastePercent float64
	Err          error
}

// CompareScenarios packs the same item set under each scenario and returns
// the results in scenario order. This enables side-by-side comparison of
// different beds and spacing values before committing to a print run.
func CompareScenarios(scenarios []ComparisonScenario, items []model.Item) []ComparisonResult {
	results := make([]ComparisonResult, 0, len(scenarios))

	for _, scenario := range scenarios {
		packer := New(scenario.Settings)
		result, err := packer.Pack(items)
		if err != nil {
			results = append(results, ComparisonResult{Scenario: scenario, Err: err})
			continue
		}

		results = append(results, ComparisonResult{
			Scenario:     scenario,
			Result:       result,
			PlatesUsed:   len(result.Plates),
			TagsPlaced:   result.PlacementCount(),
			WastePercent: 100.0 - result.TotalEfficiency(),
		})
	}

	return results
}

// BuildDefaultScenarios generates a set of comparison scenarios based on the
// current settings, varying bed and spacing to show what-if alternatives.
func BuildDefaultScenarios(base model.BedSettings) []ComparisonScenario {
	scenarios := []ComparisonScenario{
		{
			Name:     "Current Settings",
			Settings: base,
		},
	}

	// Scenario: tighter spacing (riskier part separation, denser plates)
	if base.Spacing > 1.0 {
		tight := base
		tight.Spacing = base.Spacing * 0.5
		scenarios = append(scenarios, ComparisonScenario{
			Name:     fmt.Sprintf("Spacing %.1fmm (half)", tight.Spacing),
			Settings: tight,
		})
	}

	// Scenario: each built-in bed that differs from the current one
	for _, preset := range model.BuiltinBedPresets {
		s := preset.ToSettings()
		s.Spacing = base.Spacing
		if s.BedWidth == base.BedWidth && s.BedHeight == base.BedHeight {
			continue
		}
		scenarios = append(scenarios, ComparisonScenario{
			Name:     preset.Name,
			Settings: s,
		})
	}

	return scenarios
}
