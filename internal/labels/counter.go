package labels

import (
	"sort"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"gonum.org/v1/gonum/floats"
)

// Frequency is one retained term with its raw count and normalized score.
type Frequency struct {
	Term  string
	Count int
	Score float64
}

// Counter is a multiset of terms that remembers first-insertion order.
// Ties in MostCommon are broken by that order.
type Counter struct {
	m *linkedhashmap.Map
}

func NewCounter() *Counter {
	return &Counter{m: linkedhashmap.New()}
}

// Add counts one occurrence of term.
func (c *Counter) Add(term string) {
	n := 0
	if v, ok := c.m.Get(term); ok {
		n = v.(int)
	}
	c.m.Put(term, n+1)
}

// Len is the number of distinct terms.
func (c *Counter) Len() int { return c.m.Size() }

// Entries returns all terms in first-seen order. Scores are zero.
func (c *Counter) Entries() []Frequency {
	out := make([]Frequency, 0, c.m.Size())
	it := c.m.Iterator()
	for it.Next() {
		out = append(out, Frequency{Term: it.Key().(string), Count: it.Value().(int)})
	}
	return out
}

// MostCommon returns the k most frequent terms, count descending, equal
// counts in first-seen order. k larger than Len returns every term.
// Scores are left zero; see Normalize.
func (c *Counter) MostCommon(k int) []Frequency {
	all := c.Entries()
	sort.SliceStable(all, func(i, j int) bool { return all[i].Count > all[j].Count })
	if k < len(all) {
		all = all[:k:k]
	}
	return all
}

// Normalize sets each Score to Count divided by the sum of counts in freqs.
func Normalize(freqs []Frequency) {
	counts := make([]float64, len(freqs))
	for i, f := range freqs {
		counts[i] = float64(f.Count)
	}
	total := floats.Sum(counts)
	if total == 0 {
		return
	}
	for i := range freqs {
		freqs[i].Score = counts[i] / total
	}
}
