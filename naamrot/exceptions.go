package naamrot

import (
	"fmt"
	"regexp"
	"strings"
)

// An ExceptionRule replaces an entire word-part before any of the spelling
// stages run. Rules are tried in table order and the first match wins.
//
// Exactly one matcher must be set: Literal compares case-insensitively
// against the whole part, Pattern must match the whole part. Exactly one
// output must be set: Output is used verbatim, Compute is called with the
// pattern submatches and the original part. A rule missing a matcher or an
// output never matches.
type ExceptionRule struct {
	Literal string
	Pattern *regexp.Regexp

	Output  string
	Compute func(match []string, part string) string
}

// CompilePattern compiles expr anchored to the whole word-part and
// case-insensitive, the form Pattern fields are expected to hold.
func CompilePattern(expr string) (*regexp.Regexp, error) {
	return regexp.Compile(`(?i)\A(?:` + expr + `)\z`)
}

func mustPattern(expr string) *regexp.Regexp {
	re, err := CompilePattern(expr)
	if err != nil {
		panic(err)
	}
	return re
}

func (r *ExceptionRule) valid() bool {
	if r.Literal == "" && r.Pattern == nil {
		return false
	}
	return r.Output != "" || r.Compute != nil
}

func (r *ExceptionRule) match(part string) (string, bool) {
	if !r.valid() {
		return "", false
	}
	var m []string
	if r.Literal != "" {
		if !strings.EqualFold(r.Literal, part) {
			return "", false
		}
	} else {
		m = r.Pattern.FindStringSubmatch(part)
		if m == nil {
			return "", false
		}
	}
	if r.Compute != nil {
		return r.Compute(m, part), true
	}
	return r.Output, true
}

func (r *ExceptionRule) String() string {
	matcher := "(none)"
	if r.Literal != "" {
		matcher = fmt.Sprintf("%q", r.Literal)
	} else if r.Pattern != nil {
		matcher = r.Pattern.String()
	}
	output := "(none)"
	if r.Output != "" {
		output = fmt.Sprintf("%q", r.Output)
	} else if r.Compute != nil {
		output = "(computed)"
	}
	return fmt.Sprintf("%s -> %s", matcher, output)
}

// matchException runs the converter's exception table against one
// word-part.
func (c *Converter) matchException(part string) (string, bool) {
	for i := range c.exceptions {
		if out, ok := c.exceptions[i].match(part); ok {
			return out, true
		}
	}
	return "", false
}
