package stats

import (
	"sort"
	"time"

	"github.com/verte-zerg/mecano/internal/typing"
)

// Snapshot is the speed and accuracy after a finalized word.
type Snapshot struct {
	WPM      float64
	Raw      float64
	Accuracy float64
}

// Totals are the cumulative counters over finalized words.
type Totals struct {
	Right        int
	Wrong        int
	Extra        int
	Missed       int
	Elapsed      time.Duration
	Words        int
	CorrectWords int
}

// KeyStat tallies the final state of every slot of one target character.
type KeyStat struct {
	Char   rune
	Right  int
	Wrong  int
	Missed int
}

// Accuracy is right over reached slots; untouched keys count as accurate.
func (k KeyStat) Accuracy() float64 {
	total := k.Right + k.Wrong
	if total == 0 {
		return 1.0
	}
	return float64(k.Right) / float64(total)
}

// Aggregator folds finalized words into running totals and a snapshot series.
// It holds no reference to the words themselves.
type Aggregator struct {
	totals Totals
	series []Snapshot
	keys   map[rune]*KeyStat
}

// NewAggregator returns an empty aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{keys: map[rune]*KeyStat{}}
}

// Add folds one word result and appends a snapshot when the metrics are defined.
func (a *Aggregator) Add(r typing.Result) (Snapshot, bool) {
	a.totals.Right += r.Right
	a.totals.Wrong += r.Wrong
	a.totals.Extra += r.Extra
	a.totals.Missed += r.Missed
	a.totals.Elapsed += r.Elapsed()
	a.totals.Words++
	if r.Correct {
		a.totals.CorrectWords++
	}
	for _, slot := range r.Slots {
		entry := a.keyEntry(slot.Char)
		switch slot.Status {
		case typing.Right:
			entry.Right++
		case typing.Wrong:
			entry.Wrong++
		default:
			entry.Missed++
		}
	}

	snap, ok := Metrics(a.totals.Right, a.totals.Wrong, a.totals.Elapsed)
	if !ok {
		return Snapshot{}, false
	}
	a.series = append(a.series, snap)
	return snap, true
}

func (a *Aggregator) keyEntry(c rune) *KeyStat {
	entry, ok := a.keys[c]
	if !ok {
		entry = &KeyStat{Char: c}
		a.keys[c] = entry
	}
	return entry
}

// Totals returns the cumulative counters.
func (a *Aggregator) Totals() Totals {
	return a.totals
}

// Last returns the most recent snapshot.
func (a *Aggregator) Last() (Snapshot, bool) {
	if len(a.series) == 0 {
		return Snapshot{}, false
	}
	return a.series[len(a.series)-1], true
}

// Series returns a copy of the snapshot time series.
func (a *Aggregator) Series() []Snapshot {
	return append([]Snapshot(nil), a.series...)
}

// Keys returns the per-key tallies ordered by character.
func (a *Aggregator) Keys() []KeyStat {
	out := make([]KeyStat, 0, len(a.keys))
	for _, k := range a.keys {
		out = append(out, *k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Char < out[j].Char })
	return out
}

// Summary freezes the aggregator state.
func (a *Aggregator) Summary() Summary {
	last, ok := a.Last()
	return Summary{
		Totals:  a.totals,
		Last:    last,
		HasLast: ok,
		Series:  a.Series(),
		Keys:    a.Keys(),
	}
}

// Summary is the outcome of a whole session.
type Summary struct {
	Totals
	Last    Snapshot
	HasLast bool
	Series  []Snapshot
	Keys    []KeyStat
}
