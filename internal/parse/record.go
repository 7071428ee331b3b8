package parse

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/cuisinehq/mercuriale/constants"
	"github.com/cuisinehq/mercuriale/internal/entity"
)

// Sanity bounds rejecting OCR noise.
const (
	maxUnitPrice  = 1000
	minNameLength = 2
)

var (
	// Column headers of a mercuriale table.
	reHeaderLine = regexp.MustCompile(`(?i)^(produit|unité|prix unitaire)`)
	// Invoice footer.
	reTotalLine = regexp.MustCompile(`(?i)^total\b`)
	// Vendor / invoice boilerplate that may still embed a product cell.
	reBoilerplate = regexp.MustCompile(`(?i)metro|cash|carry|facture|client|restaurant|date|avenue`)
	// Product fragment inside a boilerplate line. Case-insensitivity is scoped
	// to the unit token: the name class must stay case-sensitive so the match
	// starts at the product cell instead of absorbing capitalized vendor text.
	reEmbedded = regexp.MustCompile(`([A-ZÀ-Ÿ][a-zà-ÿ\s']+(?:\d+%)?)\s+(\d+(?:[,.]?\d+)?)\s*((?i:` + constants.UnitTokenPattern + `))\s+(\d+[,.]\d{1,2})\s*€`)

	// Pattern family 1: name + quantity + unit + unit price + trailing total.
	// The total is matched so the tail does not confuse the price group, then
	// discarded.
	reWithTotal = regexp.MustCompile(`(?i)^(.+?)\s+(\d+(?:[,.]?\d+)?)\s*(` + constants.UnitTokenPattern + `)\s+(\d+[,.]\d{1,2})\s*€?\s+[\d,.]+\s*€?\s*$`)
	// Pattern family 2: name + quantity + unit + unit price.
	reWithQty = regexp.MustCompile(`(?i)^(.+?)\s+(\d+(?:[,.]?\d+)?)\s*(` + constants.UnitTokenPattern + `)\s+(\d+[,.]\d{1,2})\s*€?\s*$`)
	// Pattern family 3: name + unit + unit price, no quantity (plain
	// mercuriale row). Quantity stays absent, which is not the same as zero.
	reNoQty = regexp.MustCompile(`(?i)^(.+?)\s+(` + constants.UnitTokenPattern + `)\s+(\d+[,.]\d{1,2})\s*€?\s*$`)

	reDigit      = regexp.MustCompile(`\d`)
	reWhitespace = regexp.MustCompile(`\s+`)
)

// parseDecimal accepts both comma and period separators.
func parseDecimal(s string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
}

// Matcher tries to extract a record from one candidate line. Extra matchers
// can be injected ahead of the built-in cascade by callers that know their
// supplier's layout.
type Matcher func(line string) (*entity.ParsedRecord, bool)

// RecordParser applies an ordered matcher cascade to candidate lines,
// most-specific pattern first.
type RecordParser struct {
	matchers []Matcher
}

func NewRecordParser(extra ...Matcher) *RecordParser {
	matchers := append([]Matcher{}, extra...)
	matchers = append(matchers, matchWithTotal, matchWithQty, matchNoQty)
	return &RecordParser{matchers: matchers}
}

// IsHeaderLine reports whether a line is a mercuriale column header.
func IsHeaderLine(line string) bool {
	return reHeaderLine.MatchString(line)
}

// ParseLine extracts a structured record from one candidate line.
// Returns false for lines that match no pattern; that is not an error, the
// caller tallies the miss and moves on.
func (p *RecordParser) ParseLine(line string) (*entity.ParsedRecord, bool) {
	line = strings.TrimSpace(reWhitespace.ReplaceAllString(line, " "))

	if reTotalLine.MatchString(line) {
		return nil, false
	}

	// Boilerplate lines are rejected unless a product cell can still be cut
	// out of them, in which case only that fragment is parsed.
	if reBoilerplate.MatchString(line) {
		m := reEmbedded.FindStringSubmatch(line)
		if m == nil {
			return nil, false
		}
		line = strings.TrimSpace(m[1]) + " " + m[2] + " " + m[3] + " " + m[4] + " €"
	}

	if len([]rune(line)) < 5 || !reDigit.MatchString(line) {
		return nil, false
	}

	for _, match := range p.matchers {
		if rec, ok := match(line); ok {
			return rec, true
		}
	}
	return nil, false
}

func buildRecord(name, qty, unit, price string) (*entity.ParsedRecord, bool) {
	p, err := parseDecimal(price)
	if err != nil || p <= 0 || p >= maxUnitPrice {
		return nil, false
	}
	name = strings.TrimSpace(name)
	if len([]rune(name)) < minNameLength {
		return nil, false
	}

	rec := &entity.ParsedRecord{
		Name:      name,
		Unit:      constants.NormalizeUnit(unit),
		UnitPrice: p,
	}
	if qty != "" {
		q, err := parseDecimal(qty)
		if err != nil {
			return nil, false
		}
		rec.Quantity = &q
	}
	return rec, true
}

func matchWithTotal(line string) (*entity.ParsedRecord, bool) {
	m := reWithTotal.FindStringSubmatch(line)
	if m == nil {
		return nil, false
	}
	// m[4] is the unit price; the trailing total was consumed by the anchor
	// and is dropped here.
	return buildRecord(m[1], m[2], m[3], m[4])
}

func matchWithQty(line string) (*entity.ParsedRecord, bool) {
	m := reWithQty.FindStringSubmatch(line)
	if m == nil {
		return nil, false
	}
	return buildRecord(m[1], m[2], m[3], m[4])
}

func matchNoQty(line string) (*entity.ParsedRecord, bool) {
	m := reNoQty.FindStringSubmatch(line)
	if m == nil {
		return nil, false
	}
	return buildRecord(m[1], "", m[2], m[3])
}
