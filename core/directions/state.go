package directions

import (
	"fmt"

	"github.com/MaRkS1234567/MySite-web/core/locale"
	"github.com/MaRkS1234567/MySite-web/core/pricing"
)

// Selection is the snapshot emitted when the user applies a direction
// card: the direction plus the intensity chosen on that card.
type Selection struct {
	Direction ID                `json:"direction"`
	Intensity pricing.Intensity `json:"intensity"`
}

// Summary renders the prefill text for a direction selection: the
// direction's localized goal label.
func (s Selection) Summary(lang locale.Lang) string {
	dir, ok := Lookup(s.Direction)
	if !ok {
		panic(fmt.Sprintf("directions: selection holds unknown direction %q", s.Direction))
	}
	return dir.Goal.Get(lang)
}

// State tracks which card is expanded and the per-direction intensity
// choices. Zero or one card is expanded at a time; intensities persist
// even while their card is collapsed. Owned by a single page session.
type State struct {
	expanded    ID
	intensities map[ID]pricing.Intensity
}

// NewState returns the initial state: nothing expanded, every direction
// at the standard intensity.
func NewState() *State {
	intensities := make(map[ID]pricing.Intensity, len(IDs))
	for _, id := range IDs {
		intensities[id] = pricing.IntensityStandard
	}
	return &State{intensities: intensities}
}

// Toggle expands the card, collapses it if it was already expanded, or
// moves the expansion from another card. Stored intensities are untouched.
func (s *State) Toggle(id ID) {
	if !id.Valid() {
		return
	}
	if s.expanded == id {
		s.expanded = ""
		return
	}
	s.expanded = id
}

// Expanded returns the currently expanded card, if any.
func (s *State) Expanded() (ID, bool) {
	return s.expanded, s.expanded != ""
}

// SetIntensity records the intensity choice for one direction.
func (s *State) SetIntensity(id ID, intensity pricing.Intensity) {
	if !id.Valid() || !intensity.Valid() {
		return
	}
	s.intensities[id] = intensity
}

// Intensity returns the stored intensity for a direction.
func (s *State) Intensity(id ID) pricing.Intensity {
	return s.intensities[id]
}

// Apply emits the selection snapshot for one direction, reading that
// direction's stored intensity.
func (s *State) Apply(id ID) (Selection, error) {
	if !id.Valid() {
		return Selection{}, fmt.Errorf("invalid direction: %q", id)
	}
	return Selection{
		Direction: id,
		Intensity: s.intensities[id],
	}, nil
}
