package catalog

import (
	"context"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/trottparts/garage-api/internal/domain"
)

// foldTransformer strips combining marks after NFD decomposition so accented
// and unaccented spellings compare equal.
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// fold lowercases and de-accents a string for matching. "Chambres à Air"
// folds to "chambres a air".
func fold(s string) string {
	folded, _, err := transform.String(foldTransformer, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return strings.ToLower(folded)
}

// SearchParts returns parts whose name or category matches the query,
// accent- and case-insensitively. An empty query returns the full list.
func (s *service) SearchParts(ctx context.Context, query string) ([]domain.Part, error) {
	parts, err := s.repo.ListParts(ctx)
	if err != nil {
		return nil, err
	}

	needle := fold(strings.TrimSpace(query))
	if needle == "" {
		return parts, nil
	}

	var matched []domain.Part
	for _, part := range parts {
		if strings.Contains(fold(part.Name), needle) || strings.Contains(fold(part.CategoryName), needle) {
			matched = append(matched, part)
		}
	}
	return matched, nil
}
