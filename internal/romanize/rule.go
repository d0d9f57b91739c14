// Package romanize converts single syllables between the PM chord spelling
// and standard toneless Pinyin.
//
// Both directions are ordered rewrite chains. Each rule rewrites the first
// match of its pattern only, and its output feeds the next rule. Rule order
// decides every collision between spellings, so rules must not be reordered.
package romanize

import "regexp"

// Rule is one named rewrite step.
type Rule struct {
	Name  string
	apply func(string) string
}

// Apply runs the rule on s.
func (r Rule) Apply(s string) string {
	return r.apply(s)
}

// sub builds a rule that replaces the first match of pattern. The
// replacement uses regexp.Expand syntax (${1}).
func sub(name, pattern, replacement string) Rule {
	re := regexp.MustCompile(pattern)
	return Rule{
		Name: name,
		apply: func(s string) string {
			return replaceFirst(re, s, replacement)
		},
	}
}

func replaceFirst(re *regexp.Regexp, s, replacement string) string {
	loc := re.FindStringSubmatchIndex(s)
	if loc == nil {
		return s
	}
	out := re.ExpandString(nil, replacement, s, loc)
	return s[:loc[0]] + string(out) + s[loc[1]:]
}

// Step records a rule that changed the string.
type Step struct {
	Rule   string
	Before string
	After  string
}

// Chain is an ordered list of rules.
type Chain []Rule

// Convert reduces s through every rule in order.
func (c Chain) Convert(s string) string {
	for _, r := range c {
		s = r.Apply(s)
	}
	return s
}

// Trace is Convert that also reports each rule that changed the string.
func (c Chain) Trace(s string) (string, []Step) {
	var steps []Step
	for _, r := range c {
		next := r.Apply(s)
		if next != s {
			steps = append(steps, Step{Rule: r.Name, Before: s, After: next})
		}
		s = next
	}
	return s, steps
}

func concat(groups ...[]Rule) Chain {
	var c Chain
	for _, g := range groups {
		c = append(c, g...)
	}
	return c
}
