// Package rules maps URLs to profile names using an ordered, declarative
// rule file. The first matching rule wins.
package rules

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Rule maps URLs to a profile. Exactly one of Prefix, Host or Pattern is set.
type Rule struct {
	Prefix  string `yaml:"prefix,omitempty"`
	Host    string `yaml:"host,omitempty"`
	Pattern string `yaml:"pattern,omitempty"`
	Profile string `yaml:"profile"`

	re *regexp.Regexp
}

// File is the on-disk document.
type File struct {
	Rules []Rule `yaml:"rules"`
}

// RuleSet is a validated, ordered list of rules.
type RuleSet struct {
	rules []Rule
}

// Load reads the rule file at path. A missing file yields an empty set.
var Load = func(path string) (*RuleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &RuleSet{}, nil
		}
		return nil, fmt.Errorf("failed to read rule file %s: %w", path, err)
	}
	rs, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("invalid rule file %s: %w", path, err)
	}
	return rs, nil
}

// Parse decodes and validates a rule document.
func Parse(r io.Reader) (*RuleSet, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return &RuleSet{}, nil
		}
		return nil, err
	}

	for i := range f.Rules {
		if err := f.Rules[i].compile(); err != nil {
			return nil, fmt.Errorf("rule %d: %w", i+1, err)
		}
	}
	return &RuleSet{rules: f.Rules}, nil
}

func (r *Rule) compile() error {
	set := 0
	for _, v := range []string{r.Prefix, r.Host, r.Pattern} {
		if v != "" {
			set++
		}
	}
	if set != 1 {
		return fmt.Errorf("exactly one of prefix, host or pattern must be set")
	}
	r.Profile = strings.TrimSpace(r.Profile)
	if r.Profile == "" {
		return fmt.Errorf("profile is required")
	}
	if r.Pattern != "" {
		re, err := regexp.Compile(r.Pattern)
		if err != nil {
			return fmt.Errorf("bad pattern: %w", err)
		}
		r.re = re
	}
	r.Host = strings.ToLower(r.Host)
	return nil
}

// Matches reports whether rawURL is selected by the rule.
func (r *Rule) Matches(rawURL string) bool {
	switch {
	case r.Prefix != "":
		return strings.HasPrefix(rawURL, r.Prefix)
	case r.Pattern != "":
		return r.re != nil && r.re.MatchString(rawURL)
	case r.Host != "":
		u, err := url.Parse(rawURL)
		if err != nil {
			return false
		}
		host := strings.ToLower(u.Hostname())
		return host == r.Host || strings.HasSuffix(host, "."+r.Host)
	}
	return false
}

// Kind names the matcher used by the rule.
func (r *Rule) Kind() string {
	switch {
	case r.Prefix != "":
		return "prefix"
	case r.Host != "":
		return "host"
	default:
		return "pattern"
	}
}

// Value returns the matcher's operand.
func (r *Rule) Value() string {
	switch {
	case r.Prefix != "":
		return r.Prefix
	case r.Host != "":
		return r.Host
	default:
		return r.Pattern
	}
}

// Match returns the profile of the first rule matching rawURL.
func (rs *RuleSet) Match(rawURL string) (string, bool) {
	for i := range rs.rules {
		if rs.rules[i].Matches(rawURL) {
			return rs.rules[i].Profile, true
		}
	}
	return "", false
}

// Rules returns the rules in evaluation order.
func (rs *RuleSet) Rules() []Rule {
	return rs.rules
}

// Len returns the number of rules.
func (rs *RuleSet) Len() int {
	return len(rs.rules)
}
