package lead

import (
	"github.com/MaRkS1234567/MySite-web/core/locale"
)

// Selection is a frozen configurator or direction snapshot able to render
// its one-line prefill summary. Exactly one selection is authoritative at
// a time.
type Selection interface {
	Summary(lang locale.Lang) string
}

// Bridge is the single prefill handler: it consumes "selection applied"
// events and writes the summary into the draft's format field,
// last-write-wins with no merging of stale snapshots.
type Bridge struct {
	lang    locale.Lang
	draft   *Draft
	current Selection
}

// NewBridge attaches a bridge to a draft.
func NewBridge(draft *Draft, lang locale.Lang) *Bridge {
	return &Bridge{lang: lang, draft: draft}
}

// Apply accepts a new snapshot, replacing whatever summary came before.
func (b *Bridge) Apply(sel Selection) {
	b.current = sel
	b.draft.Format = sel.Summary(b.lang)
}

// Clear discards the current snapshot, the "change" affordance that lets
// the user scroll back and choose again. The format field becomes empty.
func (b *Bridge) Clear() {
	b.current = nil
	b.draft.Format = ""
}

// Current returns the authoritative snapshot, if any.
func (b *Bridge) Current() (Selection, bool) {
	return b.current, b.current != nil
}
