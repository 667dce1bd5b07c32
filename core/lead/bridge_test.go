package lead

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/MaRkS1234567/MySite-web/core/directions"
	"github.com/MaRkS1234567/MySite-web/core/locale"
	"github.com/MaRkS1234567/MySite-web/core/pricing"
)

func TestBridgeAppliesLatestSelection(t *testing.T) {
	draft := NewDraft(KindTutor)
	bridge := NewBridge(draft, locale.RU)

	if _, ok := bridge.Current(); ok {
		t.Fatal("fresh bridge reports a selection")
	}

	// A direction selection prefills the goal label.
	bridge.Apply(directions.Selection{
		Direction: directions.EGE,
		Intensity: pricing.IntensityStandard,
	})
	if draft.Format != "Подготовка к ЕГЭ" {
		t.Errorf("Format = %q after direction apply", draft.Format)
	}

	// A configurator selection replaces it wholesale.
	bridge.Apply(pricing.Selection{
		Config: pricing.Config{
			Format:    pricing.FormatIndividual,
			Intensity: pricing.IntensityStandard,
			Frequency: pricing.FrequencyTwice,
			Goal:      pricing.GoalOGE,
			Duration:  pricing.Duration60,
			Urgency:   pricing.UrgencyLater,
		},
		EstimatedMin: decimal.NewFromInt(2450),
		EstimatedMax: decimal.NewFromInt(2950),
	})
	want := "Индивидуально · Стандарт · 2 раза/нед · 2 450–2 950 ₽"
	if draft.Format != want {
		t.Errorf("Format = %q, want %q", draft.Format, want)
	}

	if _, ok := bridge.Current(); !ok {
		t.Error("bridge lost its selection")
	}
}

func TestBridgeClear(t *testing.T) {
	draft := NewDraft(KindTutor)
	bridge := NewBridge(draft, locale.RU)

	bridge.Apply(directions.Selection{
		Direction: directions.OGE,
		Intensity: pricing.IntensityStandard,
	})
	bridge.Clear()

	if draft.Format != "" {
		t.Errorf("Format = %q after clear, want empty", draft.Format)
	}
	if _, ok := bridge.Current(); ok {
		t.Error("bridge still reports a selection after clear")
	}
}

func TestDraftValidate(t *testing.T) {
	draft := NewDraft(KindDev)
	if draft.ID == "" {
		t.Error("draft has no ID")
	}

	empty := draft.Validate()
	if len(empty) != 3 {
		t.Fatalf("Validate() flagged %d fields, want 3", len(empty))
	}

	draft.Name = "Анна"
	draft.Contact = "   "
	draft.Description = "Нужен лендинг"
	empty = draft.Validate()
	if len(empty) != 1 || empty[0] != FieldContact {
		t.Errorf("Validate() = %v, want [contact]", empty)
	}

	// The prefill is optional; a fully filled draft passes.
	draft.Contact = "@anna"
	if empty := draft.Validate(); len(empty) != 0 {
		t.Errorf("Validate() = %v, want none", empty)
	}
}
