package ui

import (
	"fmt"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
)

// ParseCSS parses a stylesheet. Each selector of a comma group becomes its own rule, in
// source order, so later rules override earlier ones. At-rules are skipped.
// Supported selectors: compound .class, #id and type parts (e.g. "button.active"),
// optionally preceded by one ancestor part matched against the engine's root classes
// (e.g. ".dark .navbar").
func ParseCSS(content string) (*Stylesheet, error) {
	parsed, err := parser.Parse(content)
	if err != nil {
		return nil, fmt.Errorf("ui: parse css: %w", err)
	}
	sheet := &Stylesheet{}
	for _, r := range parsed.Rules {
		if r.Kind == css.AtRule {
			continue
		}
		props := make(map[string]string, len(r.Declarations))
		for _, de := range r.Declarations {
			props[strings.ToLower(strings.TrimSpace(de.Property))] = strings.TrimSpace(de.Value)
		}
		for _, sel := range r.Selectors {
			s, ok := parseSelector(sel)
			if !ok {
				continue
			}
			sheet.Rules = append(sheet.Rules, Rule{Selector: strings.TrimSpace(sel), Props: props, sel: s})
		}
	}
	return sheet, nil
}

// compound is one selector part: an optional type and any number of classes and ids.
type compound struct {
	typ     string
	classes []string
	id      string
}

type selector struct {
	ancestor *compound
	subject  compound
	valid    bool
}

func parseSelector(s string) (selector, bool) {
	parts := strings.Fields(s)
	switch len(parts) {
	case 1:
		c, ok := parseCompound(parts[0])
		return selector{subject: c, valid: ok}, ok
	case 2:
		a, ok := parseCompound(parts[0])
		if !ok {
			return selector{}, false
		}
		c, ok := parseCompound(parts[1])
		return selector{ancestor: &a, subject: c, valid: ok}, ok
	}
	return selector{}, false
}

func parseCompound(s string) (compound, bool) {
	var c compound
	if s == "" || s == "*" {
		return c, s == "*"
	}
	i := 0
	for i < len(s) && s[i] != '.' && s[i] != '#' {
		i++
	}
	c.typ = strings.ToLower(s[:i])
	for i < len(s) {
		marker := s[i]
		j := i + 1
		for j < len(s) && s[j] != '.' && s[j] != '#' {
			j++
		}
		name := s[i+1 : j]
		if name == "" || strings.ContainsAny(name, ":[>+~") {
			return c, false
		}
		if marker == '.' {
			c.classes = append(c.classes, name)
		} else {
			c.id = name
		}
		i = j
	}
	if strings.ContainsAny(c.typ, ":[>+~") {
		return c, false
	}
	return c, true
}

func (c compound) matches(typ string, classes []string, id string) bool {
	if c.typ != "" && c.typ != typ {
		return false
	}
	if c.id != "" && c.id != id {
		return false
	}
	for _, want := range c.classes {
		if !hasString(classes, want) {
			return false
		}
	}
	return true
}

func hasString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
