package source

// Cyclic replays a fixed word list in order, wrapping at the end.
type Cyclic struct {
	words []string
	next  int
}

// NewCyclic returns a Cyclic source over a copy of words.
func NewCyclic(words []string) (*Cyclic, error) {
	if len(words) == 0 {
		return nil, ErrEmpty
	}
	return &Cyclic{words: append([]string(nil), words...)}, nil
}

// Next returns the next word of the list.
func (c *Cyclic) Next() string {
	word := c.words[c.next]
	c.next = (c.next + 1) % len(c.words)
	return word
}
