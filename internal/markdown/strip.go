// Package markdown removes common markdown syntax before PDF layout.
//
// The stripper is deliberately not a parser. It applies a fixed, ordered list
// of minimal-match regular expression steps; nested or malformed markup may
// come out partially stripped.
package markdown

import "regexp"

// Step is one pure text transform.
type Step struct {
	Name string
	re   *regexp.Regexp
	repl string
}

// Apply returns a new string with the step applied to every match.
func (s Step) Apply(text string) string {
	return s.re.ReplaceAllString(text, s.repl)
}

// space matches one Unicode whitespace rune. RE2's \s is ASCII only, so the
// vertical tab, the separator categories and the remaining C0/C1 space
// controls are listed explicitly.
const space = `[\s\v\x1c-\x1f\x85\p{Z}]`

// Order matters: bold must run before italic so "**x**" is not read as two
// empty italic spans.
//
//nolint:gochecknoglobals // compiled once
var steps = []Step{
	{Name: "bold", re: regexp.MustCompile(`\*\*(.*?)\*\*`), repl: "$1"},
	{Name: "italic", re: regexp.MustCompile(`\*(.*?)\*`), repl: "$1"},
	{Name: "inline-code", re: regexp.MustCompile("`(.*?)`"), repl: "$1"},
	{Name: "heading", re: regexp.MustCompile(`(?m)^#+` + space + `?`), repl: ""},
	{Name: "list", re: regexp.MustCompile(`(?m)^-` + space + `?`), repl: ""},
	{Name: "link", re: regexp.MustCompile(`\[(.*?)\]\(.*?\)`), repl: "$1"},
}

// Steps returns the ordered step names.
func Steps() []string {
	names := make([]string, len(steps))
	for i, s := range steps {
		names[i] = s.Name
	}
	return names
}

// Strip runs every step in order, each on the output of the previous one.
func Strip(text string) string {
	for _, s := range steps {
		text = s.Apply(text)
	}
	return text
}
