// Package source produces the endless stream of practice words.
package source

import (
	"errors"
	"fmt"

	"github.com/verte-zerg/mecano/internal/model"
)

// ErrEmpty is returned when a source is built from an empty word list.
var ErrEmpty = errors.New("word source is empty")

// WordSource yields practice words forever.
type WordSource interface {
	Next() string
}

// New builds the source for the given mode.
func New(mode model.Mode, words []string) (WordSource, error) {
	switch mode {
	case model.ModeFile:
		src, err := NewCyclic(words)
		if err != nil {
			return nil, err
		}
		return src, nil
	case model.ModeDictionary:
		src, err := NewDictionary(words)
		if err != nil {
			return nil, err
		}
		return src, nil
	default:
		return nil, fmt.Errorf("%w: %v", model.ErrInvalidMode, mode)
	}
}
