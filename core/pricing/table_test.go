package pricing

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
)

func writeRatesFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rates.hcl")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadTableOverridesBasePair(t *testing.T) {
	path := writeRatesFile(t, `
base "individual" "standard" {
  min = 2800
  max = 3300
}
`)

	table, err := LoadTable(path)
	if err != nil {
		t.Fatalf("LoadTable: %v", err)
	}

	got := table.Base(FormatIndividual, IntensityStandard)
	if !got.Min.Equal(decimal.NewFromInt(2800)) || !got.Max.Equal(decimal.NewFromInt(3300)) {
		t.Errorf("overridden pair = %s–%s, want 2800–3300", got.Min, got.Max)
	}

	// Pairs not listed in the file keep the built-in values.
	untouched := table.Base(FormatPair, IntensityLight)
	if !untouched.Min.Equal(decimal.NewFromInt(1500)) || !untouched.Max.Equal(decimal.NewFromInt(2000)) {
		t.Errorf("untouched pair = %s–%s, want 1500–2000", untouched.Min, untouched.Max)
	}
}

func TestLoadTableReplacesAdjustments(t *testing.T) {
	path := writeRatesFile(t, `
adjustments {
  duration_90 = 600
  goal_ege    = 250
  urgency     = 350
  discount_2x = 75
  discount_3x = 150
}
`)

	table, err := LoadTable(path)
	if err != nil {
		t.Fatalf("LoadTable: %v", err)
	}

	adj := table.Adjustments()
	if adj.Duration90 != 600 || adj.GoalEGE != 250 || adj.Urgency != 350 {
		t.Errorf("surcharges = %+v", adj)
	}
	if adj.DiscountTwice != 75 || adj.DiscountThrice != 150 {
		t.Errorf("discounts = %+v", adj)
	}
}

func TestLoadTableRejectsUnknownFormat(t *testing.T) {
	path := writeRatesFile(t, `
base "group-of-ten" "standard" {
  min = 1000
  max = 1500
}
`)

	if _, err := LoadTable(path); err == nil {
		t.Fatal("LoadTable accepted an unknown format label")
	}
}

func TestLoadTableRejectsInvertedRange(t *testing.T) {
	path := writeRatesFile(t, `
base "individual" "light" {
  min = 3000
  max = 2000
}
`)

	if _, err := LoadTable(path); err == nil {
		t.Fatal("LoadTable accepted min > max")
	}
}

func TestLoadTableMissingFile(t *testing.T) {
	if _, err := LoadTable(filepath.Join(t.TempDir(), "nope.hcl")); err == nil {
		t.Fatal("LoadTable succeeded on a missing file")
	}
}

func TestBasePanicsOutsideClosedSets(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Base did not panic on an unknown format")
		}
	}()
	DefaultTable().Base("webinar", IntensityStandard)
}
