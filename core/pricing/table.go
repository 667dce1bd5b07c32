// Price table: base per-lesson price pairs and the additive adjustments.
// The built-in values are the published rates; a deployment can override
// them with an HCL rates file.
package pricing

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/shopspring/decimal"
)

// Adjustments are the additive corrections applied on top of the base pair.
// All values are whole rubles per lesson.
type Adjustments struct {
	// Duration90 is added when a lesson is 90 minutes instead of 60.
	Duration90 int64 `hcl:"duration_90,optional" json:"duration_90"`

	// GoalEGE is added for EGE preparation.
	GoalEGE int64 `hcl:"goal_ege,optional" json:"goal_ege"`

	// Urgency is added when the exam is close.
	Urgency int64 `hcl:"urgency,optional" json:"urgency"`

	// DiscountTwice is subtracted at two lessons per week.
	DiscountTwice int64 `hcl:"discount_2x,optional" json:"discount_2x"`

	// DiscountThrice is subtracted at three lessons per week.
	DiscountThrice int64 `hcl:"discount_3x,optional" json:"discount_3x"`
}

// Table is the static pricing configuration: fifteen base pairs keyed by
// format and intensity, plus the adjustments.
type Table struct {
	base        map[Format]map[Intensity][2]int64
	adjustments Adjustments
}

// DefaultTable returns the built-in price table.
func DefaultTable() *Table {
	return &Table{
		base: map[Format]map[Intensity][2]int64{
			FormatIndividual: {
				IntensityLight:     {2000, 2500},
				IntensityStandard:  {2500, 3000},
				IntensityIntensive: {3000, 3500},
			},
			FormatPair: {
				IntensityLight:     {1500, 2000},
				IntensityStandard:  {1800, 2300},
				IntensityIntensive: {2200, 2700},
			},
			FormatMiniGroup: {
				IntensityLight:     {1000, 1500},
				IntensityStandard:  {1300, 1800},
				IntensityIntensive: {1600, 2100},
			},
		},
		adjustments: Adjustments{
			Duration90:     500,
			GoalEGE:        200,
			Urgency:        300,
			DiscountTwice:  50,
			DiscountThrice: 100,
		},
	}
}

// Adjustments returns a copy of the table's adjustments.
func (t *Table) Adjustments() Adjustments {
	return t.adjustments
}

// Base returns the base pair for the given format and intensity.
// Panics on a value outside the closed sets: the table covers every
// constructible combination, so a miss is a programming error.
func (t *Table) Base(f Format, i Intensity) Range {
	row, ok := t.base[f]
	if !ok {
		panic(fmt.Sprintf("pricing: no base row for format %q", f))
	}
	pair, ok := row[i]
	if !ok {
		panic(fmt.Sprintf("pricing: no base pair for format %q intensity %q", f, i))
	}
	return Range{
		Min: decimal.NewFromInt(pair[0]),
		Max: decimal.NewFromInt(pair[1]),
	}
}

// HCL rates file schema.

type tableFile struct {
	Base        []baseBlock  `hcl:"base,block"`
	Adjustments *Adjustments `hcl:"adjustments,block"`
}

type baseBlock struct {
	Format    string `hcl:"format,label"`
	Intensity string `hcl:"intensity,label"`
	Min       int64  `hcl:"min"`
	Max       int64  `hcl:"max"`
}

// LoadTable reads a rates file and returns a table with the built-in
// values replaced by those in the file. Base blocks override the listed
// pair only; an adjustments block replaces all adjustments at once.
//
// Example:
//
//	base "individual" "standard" {
//	  min = 2500
//	  max = 3000
//	}
//
//	adjustments {
//	  duration_90 = 500
//	  goal_ege    = 200
//	  urgency     = 300
//	  discount_2x = 50
//	  discount_3x = 100
//	}
func LoadTable(path string) (*Table, error) {
	var file tableFile
	if err := hclsimple.DecodeFile(path, nil, &file); err != nil {
		return nil, fmt.Errorf("failed to parse rates file %s: %w", path, err)
	}

	table := DefaultTable()

	for _, block := range file.Base {
		format, err := ParseFormat(block.Format)
		if err != nil {
			return nil, fmt.Errorf("rates file %s: %w", path, err)
		}
		intensity, err := ParseIntensity(block.Intensity)
		if err != nil {
			return nil, fmt.Errorf("rates file %s: %w", path, err)
		}
		if block.Min < 0 || block.Max < block.Min {
			return nil, fmt.Errorf("rates file %s: base %q %q must satisfy 0 <= min <= max",
				path, block.Format, block.Intensity)
		}
		table.base[format][intensity] = [2]int64{block.Min, block.Max}
	}

	if file.Adjustments != nil {
		table.adjustments = *file.Adjustments
	}

	return table, nil
}
