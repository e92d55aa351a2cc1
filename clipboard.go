package main

import (
	"github.com/atotto/clipboard"
	"github.com/pkg/errors"
)

// clipboardCandidate reads the system clipboard and interprets its
// contents as a bare hash.
func clipboardCandidate() (candidate, error) {
	text, err := clipboard.ReadAll()
	if err != nil {
		return candidate{}, errors.Wrap(err, "reading system clipboard")
	}
	c, err := bareCandidate(text)
	if err != nil {
		return candidate{}, errors.Wrap(err, "clipboard contents")
	}
	return c, nil
}
