// Price calculation. Every adjustment is applied identically to both
// bounds, which is what keeps min <= max across the whole option space.
package pricing

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Config is one full set of configurator choices.
type Config struct {
	Format    Format    `json:"format"`
	Intensity Intensity `json:"intensity"`
	Frequency Frequency `json:"frequency"`
	Goal      Goal      `json:"goal"`
	Duration  Duration  `json:"duration"`
	Urgency   Urgency   `json:"urgency"`
}

// Validate reports the first field holding a value outside its closed set.
func (c Config) Validate() error {
	if _, err := ParseFormat(string(c.Format)); err != nil {
		return err
	}
	if _, err := ParseIntensity(string(c.Intensity)); err != nil {
		return err
	}
	if _, err := ParseFrequency(string(c.Frequency)); err != nil {
		return err
	}
	if _, err := ParseGoal(string(c.Goal)); err != nil {
		return err
	}
	if _, err := ParseDuration(int(c.Duration)); err != nil {
		return err
	}
	if _, err := ParseUrgency(string(c.Urgency)); err != nil {
		return err
	}
	return nil
}

// Range is a per-lesson price interval in rubles.
type Range struct {
	Min decimal.Decimal `json:"min"`
	Max decimal.Decimal `json:"max"`
}

func (r Range) add(n int64) Range {
	d := decimal.NewFromInt(n)
	return Range{Min: r.Min.Add(d), Max: r.Max.Add(d)}
}

func (r Range) sub(n int64) Range {
	d := decimal.NewFromInt(n)
	return Range{Min: r.Min.Sub(d), Max: r.Max.Sub(d)}
}

// Calculate computes the per-lesson price range for a config:
// base pair by format and intensity, plus duration, goal and urgency
// surcharges, minus the frequency discount. The adjustments commute, so
// the application order is immaterial.
func (t *Table) Calculate(c Config) Range {
	r := t.Base(c.Format, c.Intensity)

	if c.Duration == Duration90 {
		r = r.add(t.adjustments.Duration90)
	}
	if c.Goal == GoalEGE {
		r = r.add(t.adjustments.GoalEGE)
	}
	if c.Urgency == UrgencySoon {
		r = r.add(t.adjustments.Urgency)
	}

	switch c.Frequency {
	case FrequencyThrice:
		r = r.sub(t.adjustments.DiscountThrice)
	case FrequencyTwice:
		r = r.sub(t.adjustments.DiscountTwice)
	}

	return r
}

// lessonsPerMonth converts a weekly frequency into billed lessons per month.
var lessonsPerMonth = map[Frequency]int64{
	FrequencyOnce:   4,
	FrequencyTwice:  8,
	FrequencyThrice: 12,
}

// LessonsPerMonth returns the number of lessons billed per month.
func (f Frequency) LessonsPerMonth() int64 {
	return lessonsPerMonth[f]
}

// MonthlyEstimate scales a per-lesson range to a monthly one.
func MonthlyEstimate(r Range, f Frequency) Range {
	count := decimal.NewFromInt(f.LessonsPerMonth())
	return Range{Min: r.Min.Mul(count), Max: r.Max.Mul(count)}
}

// thinSpace separates thousands groups in displayed prices.
const thinSpace = "\u2009"

// FormatPrice renders a whole-ruble amount with thousands separated by a
// thin space: 2450 -> "2 450". Purely presentational; the value itself is
// never altered.
func FormatPrice(d decimal.Decimal) string {
	s := d.StringFixed(0)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteString(thinSpace)
		}
		b.WriteString(s[i : i+3])
	}

	if neg {
		return "-" + b.String()
	}
	return b.String()
}
