package terminology

import (
	"fmt"
	"sort"
	"strings"
)

// Store is the immutable in-memory catalog for both vocabularies, built
// once at startup. Concurrent reads need no locking after construction.
type Store struct {
	bySystem map[System][]Concept // sorted by ascending code
	byCode   map[System]map[string]int
	tokens   map[System]map[string][]int
}

// NewStore builds the catalog and its token index from the loaded
// concepts. Duplicate (system, code) pairs and incomplete rows fail the
// build; seed problems should stop startup, not surface at query time.
func NewStore(concepts []Concept) (*Store, error) {
	s := &Store{
		bySystem: make(map[System][]Concept),
		byCode:   make(map[System]map[string]int),
		tokens:   make(map[System]map[string][]int),
	}

	for _, c := range concepts {
		if c.System != SystemNAMASTE && c.System != SystemICD11TM2 {
			return nil, fmt.Errorf("concept %q: unknown system %q", c.Code, c.System)
		}
		if c.Code == "" || c.Display == "" {
			return nil, fmt.Errorf("concept in %s: code and display are required", c.System)
		}
		s.bySystem[c.System] = append(s.bySystem[c.System], c)
	}

	for sys, list := range s.bySystem {
		sort.Slice(list, func(i, j int) bool { return list[i].Code < list[j].Code })

		s.byCode[sys] = make(map[string]int, len(list))
		s.tokens[sys] = make(map[string][]int)
		for i, c := range list {
			key := strings.ToLower(c.Code)
			if _, dup := s.byCode[sys][key]; dup {
				return nil, fmt.Errorf("duplicate concept %s in %s", c.Code, sys)
			}
			s.byCode[sys][key] = i
			s.indexTokens(sys, i, c)
		}
	}

	return s, nil
}

func (s *Store) indexTokens(sys System, pos int, c Concept) {
	seen := make(map[string]bool)
	for _, text := range []string{c.Code, c.Display, c.Definition} {
		for _, tok := range tokenize(text) {
			if seen[tok] {
				continue
			}
			seen[tok] = true
			s.tokens[sys][tok] = append(s.tokens[sys][tok], pos)
		}
	}
}

// tokenize splits text into maximal lowercase alphanumeric runs. Any
// alphanumeric substring of the text lies entirely within one such run,
// which is what makes the token index a safe pre-filter.
func tokenize(text string) []string {
	var toks []string
	var cur strings.Builder
	for _, r := range strings.ToLower(text) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			cur.WriteRune(r)
			continue
		}
		if cur.Len() > 0 {
			toks = append(toks, cur.String())
			cur.Reset()
		}
	}
	if cur.Len() > 0 {
		toks = append(toks, cur.String())
	}
	return toks
}

func isAlphanumeric(s string) bool {
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return false
		}
	}
	return len(s) > 0
}

// Match ranks, lowest first.
const (
	rankExactCode     = 0
	rankDisplayPrefix = 1
	rankSubstring     = 2
	rankNone          = -1
)

func matchRank(c *Concept, query string) int {
	code := strings.ToLower(c.Code)
	if code == query {
		return rankExactCode
	}
	display := strings.ToLower(c.Display)
	if strings.HasPrefix(display, query) {
		return rankDisplayPrefix
	}
	if strings.Contains(code, query) || strings.Contains(display, query) ||
		strings.Contains(strings.ToLower(c.Definition), query) {
		return rankSubstring
	}
	return rankNone
}

// Search returns up to limit concepts matching query in the given system,
// ranked exact-code first, then display-prefix, then substring, ties by
// ascending code. An empty or whitespace query returns no results rather
// than the whole catalog.
func (s *Store) Search(system System, query string, limit int) []Concept {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []Concept{}
	}

	list := s.bySystem[system]
	candidates := s.candidates(system, q, list)

	type ranked struct {
		pos  int
		rank int
	}
	matches := make([]ranked, 0, len(candidates))
	for _, pos := range candidates {
		if r := matchRank(&list[pos], q); r != rankNone {
			matches = append(matches, ranked{pos: pos, rank: r})
		}
	}

	// Positions follow code order, so a stable sort on rank keeps the
	// ascending-code tie break.
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].rank < matches[j].rank })

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	out := make([]Concept, len(matches))
	for i, m := range matches {
		out[i] = list[m.pos]
	}
	return out
}

// candidates narrows the scan using the token index when the query is a
// bare alphanumeric run; otherwise every position is a candidate. Ranking
// always re-checks the full match policy, so the pre-filter only has to
// be complete, not exact.
func (s *Store) candidates(system System, q string, list []Concept) []int {
	if !isAlphanumeric(q) {
		all := make([]int, len(list))
		for i := range list {
			all[i] = i
		}
		return all
	}

	seen := make(map[int]bool)
	var out []int
	for tok, positions := range s.tokens[system] {
		if !strings.Contains(tok, q) {
			continue
		}
		for _, pos := range positions {
			if !seen[pos] {
				seen[pos] = true
				out = append(out, pos)
			}
		}
	}
	sort.Ints(out)
	return out
}

// Get looks up a single concept by its unique key.
func (s *Store) Get(system System, code string) (*Concept, bool) {
	pos, ok := s.byCode[system][strings.ToLower(strings.TrimSpace(code))]
	if !ok {
		return nil, false
	}
	c := s.bySystem[system][pos]
	return &c, true
}

// Count reports the catalog size for one system.
func (s *Store) Count(system System) int {
	return len(s.bySystem[system])
}
