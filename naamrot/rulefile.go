package naamrot

import (
	"io/ioutil"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/naamrot/naamrot.com/util"
)

// Rule files hold replacement tables so the exception list and protected
// suffixes can be edited without a rebuild:
//
//	exceptions:
//	  - word: the
//	    output: tha
//	  - pattern: ([^aeiou]*)o([^aeiou]+)
//	    template: $1a$2
//	protected_suffixes:
//	  - ake
//	  - ase
//
// Entry order is table order. An entry with no usable matcher or output is
// skipped with a warning and never aborts the rest of the file.

type ruleFile struct {
	Exceptions        []ruleFileException `yaml:"exceptions"`
	ProtectedSuffixes []string            `yaml:"protected_suffixes"`
}

type ruleFileException struct {
	Word     string `yaml:"word"`
	Pattern  string `yaml:"pattern"`
	Output   string `yaml:"output"`
	Template string `yaml:"template"`
}

// LoadRuleFile reads a YAML rule file and builds a Converter from it.
func LoadRuleFile(path string) (*Converter, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read rule file")
	}
	conv, err := ParseRuleFile(data)
	return conv, errors.Wrap(err, path)
}

// ParseRuleFile builds a Converter from rule-file bytes.
func ParseRuleFile(data []byte) (*Converter, error) {
	var rf ruleFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, errors.Wrap(err, "parse rule file")
	}

	var exceptions []ExceptionRule
	for i, e := range rf.Exceptions {
		rule, ok := e.compile(i)
		if !ok {
			continue
		}
		exceptions = append(exceptions, rule)
	}
	return NewConverter(exceptions, rf.ProtectedSuffixes), nil
}

func (e ruleFileException) compile(idx int) (ExceptionRule, bool) {
	rule := ExceptionRule{Literal: e.Word, Output: e.Output}
	if e.Pattern != "" {
		re, err := CompilePattern(e.Pattern)
		if err != nil {
			util.LogWarnf("rule file: exception %d: bad pattern %q: %v", idx, e.Pattern, err)
			return ExceptionRule{}, false
		}
		rule.Literal = ""
		rule.Pattern = re
	}
	if e.Template != "" {
		tmpl := e.Template
		rule.Output = ""
		rule.Compute = func(m []string, part string) string {
			return expandTemplate(tmpl, m, part)
		}
	}
	if !rule.valid() {
		util.LogWarnf("rule file: exception %d has no matcher or no output, skipped", idx)
		return ExceptionRule{}, false
	}
	return rule, true
}

// expandTemplate substitutes $1..$n with the pattern's capture groups and
// $0 with the whole word-part.
func expandTemplate(tmpl string, m []string, part string) string {
	return os.Expand(tmpl, func(name string) string {
		n, err := strconv.Atoi(name)
		if err != nil || n < 0 {
			return ""
		}
		if n == 0 {
			return part
		}
		if n >= len(m) {
			return ""
		}
		return m[n]
	})
}
