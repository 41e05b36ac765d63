package naamrot

import "testing"

func TestExceptionLiteral(t *testing.T) {
	rule := ExceptionRule{Literal: "the", Output: "tha"}
	if out, ok := rule.match("THE"); !ok || out != "tha" {
		t.Errorf("match(THE) = %q, %v; wanted tha, true", out, ok)
	}
	if _, ok := rule.match("they"); ok {
		t.Error("literal rule must not match a longer word")
	}
}

func TestExceptionPatternAnchored(t *testing.T) {
	rule := ExceptionRule{Pattern: mustPattern(`do`), Output: "x"}
	if _, ok := rule.match("don"); ok {
		t.Error("pattern must be anchored to the whole part")
	}
	if _, ok := rule.match("DO"); !ok {
		t.Error("pattern must be case-insensitive")
	}
}

func TestExceptionComputed(t *testing.T) {
	rule := ExceptionRule{
		Pattern: mustPattern(`(a+)(b+)`),
		Compute: func(m []string, _ string) string { return m[1] + "-" + m[2] },
	}
	if out, ok := rule.match("aabb"); !ok || out != "aa-bb" {
		t.Errorf("match(aabb) = %q, %v; wanted aa-bb, true", out, ok)
	}
}

func TestExceptionFirstMatchWins(t *testing.T) {
	c := NewConverter([]ExceptionRule{
		{Literal: "x", Output: "first"},
		{Literal: "x", Output: "second"},
	}, nil)
	if out, ok := c.matchException("x"); !ok || out != "first" {
		t.Errorf("matchException(x) = %q, %v; wanted first, true", out, ok)
	}
}

func TestExceptionMalformedSkipped(t *testing.T) {
	c := NewConverter([]ExceptionRule{
		{Literal: "x"}, // no output
		{Output: "y"},  // no matcher
		{Literal: "x", Output: "z"},
	}, nil)
	if out, ok := c.matchException("x"); !ok || out != "z" {
		t.Errorf("matchException(x) = %q, %v; wanted z, true", out, ok)
	}
}

func TestExceptionShortCircuitsPipeline(t *testing.T) {
	// "snaker" would otherwise hit the SN prefix and the ER ending.
	c := NewConverter([]ExceptionRule{{Literal: "snaker", Output: "nope"}}, nil)
	if got := c.Convert("snaker"); got != "NOPE" {
		t.Errorf("Convert(snaker) = %q, wanted NOPE", got)
	}
}

func TestExceptionString(t *testing.T) {
	rule := ExceptionRule{Literal: "the", Output: "tha"}
	if got := rule.String(); got != `"the" -> "tha"` {
		t.Errorf("String() = %q", got)
	}
}
