package org

import (
	"fmt"
	"strings"
)

// MissingContentError is returned when a required part of a link is empty.
type MissingContentError struct {
	Field string
}

func (e *MissingContentError) Error() string {
	return fmt.Sprintf("org link is missing its %s", e.Field)
}

var bracketStripper = strings.NewReplacer("[", "", "]", "")

// Link builds [[url][title]]. Square brackets are dropped from both parts
// since org has no escape for them inside a link.
func Link(url, title string) (string, error) {
	if url == "" {
		return "", &MissingContentError{Field: "url"}
	}
	if title == "" {
		return "", &MissingContentError{Field: "title"}
	}

	return "[[" + bracketStripper.Replace(url) + "][" + bracketStripper.Replace(title) + "]]", nil
}
