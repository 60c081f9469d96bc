package embedding

import (
	"hash/fnv"
	"math"
	"strings"
	"unicode"
)

// FallbackVector derives a deterministic pseudo-embedding from word
// frequencies: each token hashes to a bucket and contributes its normalized
// frequency there. The result approximates bag-of-words similarity rather
// than semantic similarity, but satisfies the same contract as a provider
// vector, so callers never need to special-case the degraded path.
func FallbackVector(text string) []float32 {
	vec := make([]float32, Dimensions)

	tokens := tokenize(text)
	if len(tokens) == 0 {
		return vec
	}

	inc := 1 / float32(len(tokens))
	for _, tok := range tokens {
		h := fnv.New32a()
		h.Write([]byte(tok))
		vec[h.Sum32()%Dimensions] += inc
	}

	return l2Normalize(vec)
}

// tokenize splits on non-word runs and keeps lowercase tokens longer than
// two characters.
func tokenize(text string) []string {
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_'
	})
	tokens := words[:0]
	for _, w := range words {
		if len(w) > 2 {
			tokens = append(tokens, w)
		}
	}
	return tokens
}

func l2Normalize(vec []float32) []float32 {
	var sum float64
	for _, v := range vec {
		sum += float64(v) * float64(v)
	}
	if sum == 0 {
		return vec
	}
	norm := float32(1 / math.Sqrt(sum))
	for i := range vec {
		vec[i] *= norm
	}
	return vec
}
