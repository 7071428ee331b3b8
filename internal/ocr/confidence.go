package ocr

import (
	"regexp"
	"strings"
)

var (
	reEuro     = regexp.MustCompile(`€|\beur\b`)
	reAmount   = regexp.MustCompile(`\b\d+[,.]\d{1,2}\b`)
	reUnit     = regexp.MustCompile(`\b(kg|ml|cl|pièce|piece|unité|unite|botte|douzaine)\b`)
	reBoxNoise = regexp.MustCompile(`(?m)^[|_¦]+$`)
)

func hasCurrencyPattern(s string) bool { return reEuro.MatchString(s) }
func hasAmountPattern(s string) bool   { return reAmount.MatchString(s) }
func hasUnitPattern(s string) bool     { return reUnit.MatchString(s) }

// naive heuristic confidence based on decoded text characteristics
func heuristicConfidence(txt string) float32 {
	// very simple: boost if we see common mercuriale artifacts
	// (euro-ish, amount-ish, unit-ish). Each adds a fixed share.
	txtL := strings.ToLower(txt)
	score := float32(0.2) // base
	if hasCurrencyPattern(txtL) {
		score += 0.2
	}
	if hasAmountPattern(txtL) {
		score += 0.15
	}
	if hasUnitPattern(txtL) {
		score += 0.15
	}
	if len(txt) > 120 {
		score += 0.1
	} // enough content
	if score > 1.0 {
		score = 1.0
	}
	return score
}
