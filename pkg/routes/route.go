package routes

import (
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
)

// Route is a named chi pattern that can be rendered back into a URL.
type Route struct {
	name    string
	method  string
	pattern string
	base    string
	handler http.Handler
	parts   []part
}

type part struct {
	literal string
	param   string
	re      *regexp.Regexp
}

// Name returns the route name.
func (r *Route) Name() string { return r.name }

// Method returns the bound HTTP method, "" when the route accepts any method.
func (r *Route) Method() string { return r.method }

// Pattern returns the chi pattern.
func (r *Route) Pattern() string { return r.pattern }

// URL renders the pattern with params. Every placeholder must have a value;
// params that fill no placeholder are appended as the query string. The "*"
// param fills a trailing wildcard verbatim.
func (r *Route) URL(params url.Values) (string, string, error) {
	used := make(map[string]bool, len(r.parts))

	var b strings.Builder
	for _, p := range r.parts {
		if p.param == "" {
			b.WriteString(p.literal)
			continue
		}
		value := params.Get(p.param)
		if value == "" && p.param != "*" {
			return "", "", fmt.Errorf("%w: %q in route %q", ErrMissingParam, p.param, r.name)
		}
		if p.re != nil && !p.re.MatchString(value) {
			return "", "", fmt.Errorf("%w: %q=%q in route %q", ErrInvalidParam, p.param, value, r.name)
		}
		used[p.param] = true
		if p.param == "*" {
			b.WriteString(value)
		} else {
			b.WriteString(url.PathEscape(value))
		}
	}

	path := b.String()
	if path == "" {
		path = "/"
	}

	rest := make(url.Values, len(params))
	for k, v := range params {
		if !used[k] {
			rest[k] = v
		}
	}
	if enc := rest.Encode(); enc != "" {
		path += "?" + enc
	}
	return r.base, path, nil
}

// compile splits a chi pattern into literals and placeholders. Placeholder
// regexps may contain braces, e.g. {code:[a-z]{2}}.
func compile(pattern string) ([]part, error) {
	var parts []part
	lit := strings.Builder{}
	flush := func() {
		if lit.Len() > 0 {
			parts = append(parts, part{literal: lit.String()})
			lit.Reset()
		}
	}

	for i := 0; i < len(pattern); i++ {
		switch c := pattern[i]; c {
		case '{':
			depth, end := 0, -1
			for j := i; j < len(pattern); j++ {
				if pattern[j] == '{' {
					depth++
				} else if pattern[j] == '}' {
					depth--
					if depth == 0 {
						end = j
						break
					}
				}
			}
			if end < 0 {
				return nil, fmt.Errorf("routes: unclosed placeholder in %q", pattern)
			}
			name, expr, hasExpr := strings.Cut(pattern[i+1:end], ":")
			if name == "" {
				return nil, fmt.Errorf("routes: empty placeholder in %q", pattern)
			}
			p := part{param: name}
			if hasExpr {
				re, err := regexp.Compile("^(?:" + expr + ")$")
				if err != nil {
					return nil, fmt.Errorf("routes: placeholder %q in %q: %w", name, pattern, err)
				}
				p.re = re
			}
			flush()
			parts = append(parts, p)
			i = end
		case '*':
			if i != len(pattern)-1 {
				return nil, fmt.Errorf("routes: wildcard must be last in %q", pattern)
			}
			flush()
			parts = append(parts, part{param: "*"})
		default:
			lit.WriteByte(c)
		}
	}
	flush()
	return parts, nil
}
