package normalize

import (
	"strings"

	"github.com/google/uuid"
)

// candidate is one entry of the fuzzy-match corpus: a catalog name or a
// registered alias pointing at a biomarker.
type candidate struct {
	name        string // normalized
	biomarkerID uuid.UUID
	code        string
}

// match is a scored fuzzy candidate.
type match struct {
	candidate
	score float64
}

// scoreNames scores two normalized analyte names in [0, 1]. The score is the
// better of token overlap (Dice) and normalized Levenshtein similarity, with
// a floor for exact substring containment of a reasonably long name.
func scoreNames(a, b string) float64 {
	if a == b {
		return 1.0
	}
	if a == "" || b == "" {
		return 0.0
	}

	score := tokenDice(a, b)
	if lev := levenshteinSimilarity(a, b); lev > score {
		score = lev
	}

	shorter := a
	if len(b) < len(shorter) {
		shorter = b
	}
	if len(shorter) >= 4 && (strings.Contains(a, b) || strings.Contains(b, a)) && score < 0.90 {
		score = 0.90
	}
	return score
}

// tokenDice computes the Dice coefficient over whitespace token sets.
func tokenDice(a, b string) float64 {
	ta := tokenSet(a)
	tb := tokenSet(b)
	if len(ta) == 0 || len(tb) == 0 {
		return 0.0
	}
	common := 0
	for tok := range ta {
		if tb[tok] {
			common++
		}
	}
	return 2.0 * float64(common) / float64(len(ta)+len(tb))
}

func tokenSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, tok := range strings.Fields(s) {
		tok = strings.Trim(tok, ",;:()")
		if tok != "" {
			set[tok] = true
		}
	}
	return set
}

// levenshteinSimilarity is 1 - editDistance/maxLen.
func levenshteinSimilarity(a, b string) float64 {
	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}
	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(levenshtein(a, b))/float64(maxLen)
}

// levenshtein computes edit distance with a two-row table.
func levenshtein(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := 0; j <= len(rb); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			del := prev[j] + 1
			ins := curr[j-1] + 1
			sub := prev[j-1] + cost

			min := del
			if ins < min {
				min = ins
			}
			if sub < min {
				min = sub
			}
			curr[j] = min
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

// bestMatch scores the query against every candidate and returns the best
// match plus the strongest score for a *different* biomarker. The runner-up
// score drives the ambiguity margin: two biomarkers scoring close together
// means the match is unsafe to auto-accept.
func bestMatch(query string, corpus []candidate) (best match, runnerUp float64) {
	for _, c := range corpus {
		s := scoreNames(query, c.name)
		if s > best.score {
			if best.code != "" && best.code != c.code && best.score > runnerUp {
				runnerUp = best.score
			}
			best = match{candidate: c, score: s}
		} else if c.code != best.code && s > runnerUp {
			runnerUp = s
		}
	}
	return best, runnerUp
}
