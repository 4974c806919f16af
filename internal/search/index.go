// Package search provides a small, deterministic, concurrency-safe in-memory
// index over print titles.
//
//   - No logging in the library (callers decide how/what to log)
//   - Polish-aware lower-casing and Unicode tokenization
//   - Optional stop-word removal (Polish function words by default)
//   - Immutable after construction, so safe for concurrent use
//
// A document matches a query when every query token is a prefix of some
// document token. Prefix matching lets "podatk" find both "podatku" and
// "podatkowej", which matters for an inflected language.
package search

import (
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Index is implemented by all title indices.
type Index interface {
	// Match returns the positions of matching documents in insertion order.
	// A query without usable tokens matches every document.
	Match(query string) []int
	// Len is the number of indexed documents.
	Len() int
}

// DefaultStopwords are Polish function words that carry no search value.
var DefaultStopwords = []string{
	"a", "do", "dla", "i", "na", "o", "od", "oraz", "po", "się", "w", "we", "z", "ze",
}

// ----------------------------------------------------------------------------
// Options

type Option func(*config)

type config struct {
	stopwords map[string]struct{}
}

func defaultConfig() config {
	return config{stopwords: toSet(DefaultStopwords)}
}

// WithStopwords replaces the stop-word list. An empty list disables
// stop-word removal.
func WithStopwords(words []string) Option {
	return func(c *config) {
		c.stopwords = toSet(words)
	}
}

// ----------------------------------------------------------------------------
// Implementation

type index struct {
	cfg  config
	docs [][]string
}

// NewIndex builds an Index from titles. Document i is titles[i].
func NewIndex(titles []string, opts ...Option) Index {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	docs := make([][]string, len(titles))
	for i, t := range titles {
		docs[i] = tokenize(t, cfg.stopwords)
	}
	return &index{cfg: cfg, docs: docs}
}

func (i *index) Len() int { return len(i.docs) }

func (i *index) Match(q string) []int {
	qTokens := tokenize(q, i.cfg.stopwords)
	out := make([]int, 0, len(i.docs))
	for id, d := range i.docs {
		if containsAll(d, qTokens) {
			out = append(out, id)
		}
	}
	return out
}

// ----------------------------------------------------------------------------
// Helpers

var wordRE = regexp.MustCompile(`[\p{L}\p{N}]+`)

// tokenize returns the sorted, de-duplicated tokens of s.
func tokenize(s string, stop map[string]struct{}) []string {
	s = cases.Lower(language.Polish).String(s)
	words := wordRE.FindAllString(s, -1)
	if len(words) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		if _, skip := stop[w]; skip {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

func containsAll(doc, query []string) bool {
	for _, q := range query {
		if !hasPrefixToken(doc, q) {
			return false
		}
	}
	return true
}

// hasPrefixToken reports whether any token in the sorted slice doc starts
// with p. Tokens sharing a prefix are contiguous once sorted.
func hasPrefixToken(doc []string, p string) bool {
	j := sort.SearchStrings(doc, p)
	return j < len(doc) && strings.HasPrefix(doc[j], p)
}

func toSet(words []string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			m[w] = struct{}{}
		}
	}
	if len(m) == 0 {
		return nil
	}
	return m
}
