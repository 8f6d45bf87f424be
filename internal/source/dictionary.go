package source

import (
	"math/rand"
	"time"
)

// Dictionary samples words uniformly with replacement.
type Dictionary struct {
	words []string
	rnd   *rand.Rand
}

// NewDictionary returns a Dictionary seeded with the current time.
func NewDictionary(words []string) (*Dictionary, error) {
	return NewDictionaryWithRand(words, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewDictionaryWithRand returns a Dictionary drawing from rnd.
func NewDictionaryWithRand(words []string, rnd *rand.Rand) (*Dictionary, error) {
	if len(words) == 0 {
		return nil, ErrEmpty
	}
	return &Dictionary{words: append([]string(nil), words...), rnd: rnd}, nil
}

// Next returns a uniformly chosen word.
func (d *Dictionary) Next() string {
	return d.words[d.rnd.Intn(len(d.words))]
}
