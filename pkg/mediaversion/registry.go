package mediaversion

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"gopkg.in/yaml.v3"
)

// Built-in version keys
const (
	VersionFull   = "full"
	VersionTablet = "tablet"
	VersionMobile = "mobile"
)

// Entry maps a version key to the token that marks it in a URL.
type Entry struct {
	Key   string
	Token string
}

// Registry is the ordered, immutable set of allowed versions.
type Registry struct {
	entries []Entry
	keys    map[string]int
	tokens  map[string]int
	// indices of entries with non-empty tokens, longest token first
	prefixes []int
	def      int
}

// NewRegistry validates entries and builds a registry. Order is preserved and
// matters: it is the scan order for device classes and ambiguous paths.
func NewRegistry(entries ...Entry) (*Registry, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyRegistry
	}

	r := &Registry{
		entries: make([]Entry, 0, len(entries)),
		keys:    make(map[string]int, len(entries)),
		tokens:  make(map[string]int, len(entries)),
		def:     -1,
	}

	emptyTokens := 0
	for i, e := range entries {
		key := strings.TrimSpace(e.Key)
		if key == "" {
			return nil, fmt.Errorf("%w: entry %d has an empty key", ErrInvalidEntry, i)
		}
		fk := fold(key)
		if _, dup := r.keys[fk]; dup {
			return nil, fmt.Errorf("%w: duplicate key %q", ErrInvalidEntry, key)
		}

		token := normalizeToken(e.Token)
		if token == "" {
			emptyTokens++
			if emptyTokens > 1 {
				return nil, fmt.Errorf("%w: more than one entry without token", ErrDuplicateToken)
			}
			r.def = i
		} else {
			ft := fold(token)
			if _, dup := r.tokens[ft]; dup {
				return nil, fmt.Errorf("%w: %q", ErrDuplicateToken, token)
			}
			r.tokens[ft] = i
		}

		r.keys[fk] = i
		r.entries = append(r.entries, Entry{Key: key, Token: token})
	}

	for ft, i := range r.tokens {
		for other, j := range r.tokens {
			if i != j && strings.HasPrefix(other, ft+"/") {
				return nil, fmt.Errorf("%w: %q and %q", ErrOverlappingTokens, r.entries[i].Token, r.entries[j].Token)
			}
		}
		r.prefixes = append(r.prefixes, i)
	}
	slices.SortStableFunc(r.prefixes, func(a, b int) int {
		if d := len(r.entries[b].Token) - len(r.entries[a].Token); d != 0 {
			return d
		}
		return a - b
	})

	if r.def < 0 {
		if i, ok := r.keys[fold(VersionFull)]; ok {
			r.def = i
		} else {
			r.def = len(r.entries) - 1
		}
	}

	return r, nil
}

// MustRegistry is like NewRegistry but panics on invalid entries.
func MustRegistry(entries ...Entry) *Registry {
	r, err := NewRegistry(entries...)
	if err != nil {
		panic(fmt.Sprintf("mediaversion: %v", err))
	}
	return r
}

// DefaultRegistry returns the classic mobile/tablet/full setup.
func DefaultRegistry() *Registry {
	return MustRegistry(
		Entry{Key: VersionMobile, Token: "m"},
		Entry{Key: VersionTablet, Token: "t"},
		Entry{Key: VersionFull, Token: ""},
	)
}

// ParseRegistry builds a registry from a comma separated list of key=token
// pairs, e.g. "mobile=m,tablet=t,full=". A bare key gets an empty token.
func ParseRegistry(s string) (*Registry, error) {
	var entries []Entry
	for part := range strings.SplitSeq(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, token, _ := strings.Cut(part, "=")
		entries = append(entries, Entry{Key: key, Token: token})
	}
	return NewRegistry(entries...)
}

// ParseRegistryYAML builds a registry from a YAML mapping of key to token.
// Mapping order is kept.
//
//	mobile: m
//	tablet: t
//	full: ""
func ParseRegistryYAML(data []byte) (*Registry, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEntry, err)
	}
	if len(doc.Content) == 0 {
		return nil, ErrEmptyRegistry
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: versions must be a mapping", ErrInvalidEntry)
	}

	entries := make([]Entry, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		entries = append(entries, Entry{
			Key:   root.Content[i].Value,
			Token: root.Content[i+1].Value,
		})
	}
	return NewRegistry(entries...)
}

// Lookup returns the URL token of a key.
func (r *Registry) Lookup(key string) (string, bool) {
	i, ok := r.keys[fold(key)]
	if !ok {
		return "", false
	}
	return r.entries[i].Token, true
}

// ReverseLookup returns the key marked by a URL token. The empty token
// resolves to the unprefixed entry, if any.
func (r *Registry) ReverseLookup(token string) (string, bool) {
	token = normalizeToken(token)
	if token == "" {
		if r.entries[r.def].Token == "" {
			return r.entries[r.def].Key, true
		}
		return "", false
	}
	i, ok := r.tokens[fold(token)]
	if !ok {
		return "", false
	}
	return r.entries[i].Key, true
}

// Canonical returns the registered spelling of key.
func (r *Registry) Canonical(key string) (string, bool) {
	i, ok := r.keys[fold(key)]
	if !ok {
		return "", false
	}
	return r.entries[i].Key, true
}

// Has reports whether key is registered.
func (r *Registry) Has(key string) bool {
	_, ok := r.keys[fold(key)]
	return ok
}

// Match resolves a raw URL value that may be either a key or a token.
// Blank values never match, not even the unprefixed entry.
func (r *Registry) Match(value string) (string, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", false
	}
	if key, ok := r.Canonical(value); ok {
		return key, true
	}
	if token := normalizeToken(value); token != "" {
		if i, ok := r.tokens[fold(token)]; ok {
			return r.entries[i].Key, true
		}
	}
	return "", false
}

// Keys returns registered keys in declaration order.
func (r *Registry) Keys() []string {
	keys := make([]string, len(r.entries))
	for i, e := range r.entries {
		keys[i] = e.Key
	}
	return keys
}

// Entries returns a copy of the registry entries in declaration order.
func (r *Registry) Entries() []Entry {
	return slices.Clone(r.entries)
}

// Default returns the key used when nothing else applies.
func (r *Registry) Default() string {
	return r.entries[r.def].Key
}

// IsMultiVersion reports whether more than one version is registered.
func (r *Registry) IsMultiVersion() bool {
	return len(r.entries) > 1
}

// hasUnprefixed reports whether some entry has an empty token.
func (r *Registry) hasUnprefixed() bool {
	return r.entries[r.def].Token == ""
}

// matchPath finds the longest token that prefixes path on a segment boundary
// and returns its key with the remaining path.
func (r *Registry) matchPath(path string) (key, rest string, ok bool) {
	trimmed := strings.TrimPrefix(path, "/")
	if trimmed == "" {
		return "", path, false
	}
	folded := fold(trimmed)
	for _, i := range r.prefixes {
		ft := fold(r.entries[i].Token)
		if folded != ft && !strings.HasPrefix(folded, ft+"/") {
			continue
		}
		rest = stripSegments(trimmed, strings.Count(r.entries[i].Token, "/")+1)
		return r.entries[i].Key, rest, true
	}
	return "", path, false
}

// stripSegments removes n leading segments from a path without its leading
// slash and returns the remainder as an absolute path.
func stripSegments(p string, n int) string {
	for ; n > 0; n-- {
		idx := strings.IndexByte(p, '/')
		if idx < 0 {
			return "/"
		}
		p = p[idx+1:]
	}
	return "/" + p
}

func normalizeToken(token string) string {
	return strings.Trim(strings.TrimSpace(token), "/")
}

// fold returns a caseless form of s. A Caser is stateful, so one is created per call.
func fold(s string) string {
	return cases.Fold().String(s)
}
