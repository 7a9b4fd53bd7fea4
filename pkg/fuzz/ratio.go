// Package fuzz implements the token-sort similarity ratio used to match
// complaint texts: both strings are lower-cased, whitespace-tokenized,
// their tokens sorted and rejoined, and the rejoined strings compared with
// a longest-common-subsequence ratio scaled to [0,100].
package fuzz

import (
	"math"
	"sort"
	"strings"
)

// TokenSortRatio scores the similarity of two strings independent of word
// order. 100 means the strings contain the same multiset of words.
func TokenSortRatio(a, b string) int {
	return Ratio(tokenSort(a), tokenSort(b))
}

// Ratio computes round(100 * 2*M / (len(a)+len(b))) where M is the length
// of the longest common subsequence of a and b. Two empty strings score 100.
func Ratio(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	total := len(ra) + len(rb)
	if total == 0 {
		return 100
	}
	m := lcsLength(ra, rb)
	return int(math.Round(200 * float64(m) / float64(total)))
}

func tokenSort(s string) string {
	tokens := strings.Fields(strings.ToLower(s))
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}

func lcsLength(a, b []rune) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1] + 1
			} else if prev[j] >= curr[j-1] {
				curr[j] = prev[j]
			} else {
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}
