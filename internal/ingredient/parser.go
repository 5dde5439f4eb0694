package ingredient

import (
	"strconv"
	"strings"

	"github.com/platefit/platefit-v2/backend/internal/models"
)

// Parsed is the structured form of one ingredient record. Key is the
// normalized merge key; Unit is the raw unit lowercased and trimmed.
type Parsed struct {
	Key      string
	Quantity float64
	Unit     string
}

// Words that look plural but are not; stripping the trailing "s" would
// create a false singular.
var singularExceptions = map[string]bool{
	"hummus":    true,
	"asparagus": true,
	"couscous":  true,
	"molasses":  true,
	"oats":      true,
	"grits":     true,
}

// Parse turns a raw ingredient record into a (key, quantity, unit)
// triple. ok is false when the amount is not a usable number; the caller
// keeps the record as a residual line rather than dropping it.
func Parse(rec models.IngredientRecord) (Parsed, bool) {
	qty, ok := ParseQuantity(rec.Amount)
	if !ok {
		return Parsed{Key: NormalizeName(rec.Name)}, false
	}
	return Parsed{
		Key:      NormalizeName(rec.Name),
		Quantity: qty,
		Unit:     strings.ToLower(strings.TrimSpace(rec.Unit)),
	}, true
}

// ParseQuantity parses a free-text amount. Supported forms: integers,
// decimals, simple fractions ("1/2") and mixed numbers ("1 1/2").
func ParseQuantity(raw string) (float64, bool) {
	fields := strings.Fields(strings.TrimSpace(raw))
	switch len(fields) {
	case 1:
		return parseNumber(fields[0])
	case 2:
		whole, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return 0, false
		}
		frac, ok := parseFraction(fields[1])
		if !ok {
			return 0, false
		}
		return whole + frac, true
	default:
		return 0, false
	}
}

func parseNumber(s string) (float64, bool) {
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f, true
	}
	return parseFraction(s)
}

func parseFraction(s string) (float64, bool) {
	num, den, found := strings.Cut(s, "/")
	if !found {
		return 0, false
	}
	n, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, false
	}
	d, err := strconv.ParseFloat(den, 64)
	if err != nil || d == 0 {
		return 0, false
	}
	return n / d, true
}

// NormalizeName produces the merge key for an ingredient name: lowercase,
// punctuation stripped, whitespace collapsed, last word singularized.
func NormalizeName(raw string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(raw) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}

	words := strings.Fields(b.String())
	if len(words) == 0 {
		return ""
	}
	words[len(words)-1] = singularize(words[len(words)-1])
	return strings.Join(words, " ")
}

func singularize(word string) string {
	if singularExceptions[word] || strings.HasSuffix(word, "ss") || len(word) < 3 {
		return word
	}
	if strings.HasSuffix(word, "oes") {
		return strings.TrimSuffix(word, "es")
	}
	if strings.HasSuffix(word, "s") {
		return strings.TrimSuffix(word, "s")
	}
	return word
}
