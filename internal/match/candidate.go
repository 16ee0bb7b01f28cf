package match

import (
	"sort"
	"strings"
)

// MinSuggestionScore is the lowest similarity a known key needs to be offered
// as a suggestion for an unknown one.
const MinSuggestionScore = 0.6

// Candidate is a known key scored against an unknown input.
type Candidate struct {
	Key string

	// Score is the similarity (0-1).
	Score float64

	// Prefix is set when the unknown input is a prefix of Key or vice versa.
	Prefix bool
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// RankCandidates scores every known key against input and returns the ones
// that clear MinSuggestionScore, best first.
func RankCandidates(input string, known []string) CandidateList {
	norm := NormalizeKey(input)
	if norm == "" {
		return nil
	}

	var candidates CandidateList

	for _, key := range known {
		score := Similarity(norm, key)
		prefix := strings.HasPrefix(key, norm) || strings.HasPrefix(norm, key)

		if score < MinSuggestionScore && !prefix {
			continue
		}

		candidates = append(candidates, Candidate{Key: key, Score: score, Prefix: prefix})
	}

	// Sort by score (descending), then by key for determinism
	sort.Sort(candidates)

	return candidates
}

// Suggest returns at most limit known keys closest to input.
func Suggest(input string, known []string, limit int) []string {
	ranked := RankCandidates(input, known)
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	out := make([]string, 0, len(ranked))
	for _, c := range ranked {
		out = append(out, c.Key)
	}

	return out
}

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Less implements sort.Interface: higher score first, exact prefix wins ties.
func (c CandidateList) Less(i, j int) bool {
	if c[i].Score != c[j].Score {
		return c[i].Score > c[j].Score
	}

	if c[i].Prefix != c[j].Prefix {
		return c[i].Prefix
	}

	return c[i].Key < c[j].Key
}

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }
