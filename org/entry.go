// Package org renders org-mode outline text: single entries with TODO
// keywords, tags, scheduling, property drawers and bodies, and trees of
// such entries.
package org

import (
	"regexp"
	"strings"
)

var (
	whitespaceRun = regexp.MustCompile(`[\s\v\p{Z}\x{85}]+`)

	// org tags are words made of letters, numbers, '_' and '@'
	invalidTagChar = regexp.MustCompile(`[^@_\p{L}\p{N}]`)
)

// Property is a single line of a properties drawer.
type Property struct {
	Name  string
	Value string
}

// Entry holds the fields of a single outline heading.
type Entry struct {
	Heading    string
	Todo       string
	Tags       []string
	Scheduled  *Timestamp
	Properties []Property
	// Body is nil when the entry has no body. A pointer to "" still
	// contributes an (empty) body line.
	Body  *string
	Level int
}

// Text returns a pointer to s, for use as an Entry or Node body.
func Text(s string) *string {
	return &s
}

// Format renders the entry. The result never ends with a newline unless the
// body does.
func (e Entry) Format() string {
	lines := []string{e.headerLine()}

	if e.Scheduled != nil {
		lines = append(lines, "SCHEDULED: "+FormatTimestamp(*e.Scheduled, Active))
	}

	if len(e.Properties) > 0 {
		lines = append(lines, ":PROPERTIES:")
		for _, p := range e.Properties {
			lines = append(lines, ":"+p.Name+": "+p.Value)
		}
		lines = append(lines, ":END:")
	}

	if e.Body != nil {
		lines = append(lines, SanitizeBody(*e.Body))
	}

	return strings.Join(lines, "\n")
}

func (e Entry) headerLine() string {
	var parts []string

	if e.Level > 0 {
		parts = append(parts, strings.Repeat("*", e.Level))
	}
	if e.Todo != "" {
		parts = append(parts, e.Todo)
	}
	if heading := SanitizeHeading(e.Heading); heading != "" {
		parts = append(parts, heading)
	}
	tags := make([]string, len(e.Tags))
	for i, tag := range e.Tags {
		tags[i] = SanitizeTag(tag)
	}
	if joined := strings.Join(tags, ":"); joined != "" {
		parts = append(parts, ":"+joined+":")
	}

	// "**" alone is not a heading, "** " is
	if e.Level > 0 && len(parts) == 1 {
		parts = append(parts, "")
	}

	return strings.Join(parts, " ")
}

// AsOrg formats e without heading markers, for callers that prefix the
// stars themselves.
func AsOrg(e Entry) string {
	e.Level = 0
	return e.Format()
}

// SanitizeHeading collapses every whitespace run, newlines included, into a
// single space. Leading and trailing whitespace is dropped.
func SanitizeHeading(heading string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(heading, " "))
}

// SanitizeTag replaces every character that is not allowed in a tag with
// an underscore.
func SanitizeTag(tag string) string {
	return invalidTagChar.ReplaceAllString(tag, "_")
}

// SanitizeBody indents every line of body by one space so that nothing in it
// can be read as a heading. Line endings are kept as they are.
func SanitizeBody(body string) string {
	var b strings.Builder
	b.Grow(len(body) + strings.Count(body, "\n") + 1)

	for len(body) > 0 {
		end := lineEnd(body)
		b.WriteByte(' ')
		b.WriteString(body[:end])
		body = body[end:]
	}

	return b.String()
}

// lineEnd returns the length of the first line of s including its
// terminator (\n, \r\n or \r).
func lineEnd(s string) int {
	i := strings.IndexAny(s, "\r\n")
	if i < 0 {
		return len(s)
	}
	if s[i] == '\r' && i+1 < len(s) && s[i+1] == '\n' {
		return i + 2
	}
	return i + 1
}
