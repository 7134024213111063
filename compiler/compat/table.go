package compat

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/Masterminds/semver/v3"
)

//go:embed data/prefixes.json
var prefixesJSON []byte

// FeatureRange is one table row: the inclusive version window in which a
// browser needs the prefixed form. A missing high boundary means the
// window is still open.
type FeatureRange struct {
	Low  Versions
	High Versions
}

var (
	tableOnce sync.Once
	table     map[string]FeatureRange
	tableErr  error
)

// Table returns the process-wide compatibility table, loading it on first
// use. The table is immutable after loading.
func Table() map[string]FeatureRange {
	tableOnce.Do(loadTable)
	if tableErr != nil {
		panic(fmt.Sprintf("compat: corrupt embedded prefix data: %v", tableErr))
	}
	return table
}

func loadTable() {
	var raw map[string][2]map[string]string
	if err := json.Unmarshal(prefixesJSON, &raw); err != nil {
		tableErr = err
		return
	}

	table = make(map[string]FeatureRange, len(raw))
	for feature, bounds := range raw {
		low, err := ParseVersions(bounds[0])
		if err != nil {
			tableErr = fmt.Errorf("feature %s: %w", feature, err)
			return
		}
		high, err := ParseVersions(bounds[1])
		if err != nil {
			tableErr = fmt.Errorf("feature %s: %w", feature, err)
			return
		}
		table[feature] = FeatureRange{Low: low, High: high}
	}
}

// ShouldPrefix reports whether feature must be emitted in prefixed form
// for target. An empty target assumes the worst and always prefixes; a
// feature missing from the table yields def.
func ShouldPrefix(feature string, target Versions, def bool) bool {
	if target.IsAnyTarget() {
		return true
	}

	rng, ok := Table()[feature]
	if !ok {
		return def
	}

	return shouldEnable(target, rng.Low, rng.High, def)
}

// shouldEnable is the boundary check: some targeted browser's version must
// fall inside [low, high], with the Android slots falling back to Chrome
// boundaries when absent from the data.
func shouldEnable(target, low, high Versions, def bool) bool {
	allEmpty := true
	for _, name := range BrowserNames {
		if target.Get(name) != nil || low.Get(name) != nil || high.Get(name) != nil {
			allEmpty = false
			break
		}
	}
	if allEmpty {
		return def
	}

	for _, name := range BrowserNames {
		targetVersion := target.Get(name)
		if targetVersion == nil {
			continue
		}

		lowVersion := low.Get(name)
		if lowVersion == nil && name == "android" {
			// The Android browser aligned its versioning with Chrome;
			// use Chrome boundaries when Android data is missing.
			lowVersion = low.Get("chrome")
		}
		if lowVersion == nil {
			continue
		}

		if targetVersion.LessThan(lowVersion) {
			continue
		}

		highVersion := high.Get(name)
		if highVersion == nil && name == "android" {
			highVersion = high.Get("chrome")
		}

		if highVersion == nil || !targetVersion.GreaterThan(highVersion) {
			return true
		}
	}

	return false
}

// CompareVersions orders two semantic versions; exposed for tests that
// assert table consistency.
func CompareVersions(a, b *semver.Version) int {
	return a.Compare(b)
}
