package pricing

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/MaRkS1234567/MySite-web/core/locale"
)

// Selection is a quote frozen at the moment the user applied the
// configurator: the config plus the estimate computed at apply time.
// The estimate is never recomputed afterward, even if the table changes.
type Selection struct {
	Config

	EstimatedMin decimal.Decimal `json:"estimated_min"`
	EstimatedMax decimal.Decimal `json:"estimated_max"`
}

// summarySeparator joins the parts of the prefill banner.
const summarySeparator = " · "

// Summary renders the one-line banner written into the contact draft:
// format, intensity, frequency and the frozen price range.
func (s Selection) Summary(lang locale.Lang) string {
	parts := []string{
		s.Format.Label(lang),
		s.Intensity.Label(lang),
		s.Frequency.Label(lang),
		FormatPrice(s.EstimatedMin) + "–" + FormatPrice(s.EstimatedMax) + " ₽",
	}
	return strings.Join(parts, summarySeparator)
}
