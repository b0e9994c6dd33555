package prediction

import (
	"heartcare-web/enums"
	"strings"
)

var positiveTokens = map[string]struct{}{
	"heart disease": {},
	"positive":      {},
	"yes":           {},
}

// Classify maps the predictor's result text to a classification.
// Matching is case-insensitive and exact against the positive tokens.
func Classify(result string) enums.Classification {
	if _, ok := positiveTokens[strings.ToLower(result)]; ok {
		return enums.Positive
	}
	return enums.Negative
}
