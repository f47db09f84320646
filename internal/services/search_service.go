package services

import (
	"context"
	"sort"
	"strings"

	"github.com/closetshare/backend/internal/models"
	"github.com/closetshare/backend/internal/store"
)

// maxMatchTier caps the match count used to pick the result set: once any
// item matches this many (word, attribute) pairs, all items at or above it win.
const maxMatchTier = 3

type SearchService struct {
	store store.Store
}

func NewSearchService(st store.Store) *SearchService {
	return &SearchService{store: st}
}

// Search matches each query word against item colour, brand and category and
// returns the best matching items, most matches first.
func (s *SearchService) Search(ctx context.Context, query string) ([]models.Item, error) {
	words := searchWords(query)
	if len(words) == 0 {
		return []models.Item{}, nil
	}

	candidates, err := s.store.FindItemsByAttributes(ctx, words)
	if err != nil {
		return nil, err
	}
	return rankMatches(candidates, words), nil
}

// searchWords keeps repeated words; each occurrence counts as its own match.
func searchWords(query string) []string {
	var words []string
	for _, w := range strings.Fields(strings.ReplaceAll(query, "-", "")) {
		if w = models.NormalizeWord(w); w != "" {
			words = append(words, w)
		}
	}
	return words
}

func rankMatches(items []models.Item, words []string) []models.Item {
	counts := make(map[int64]int, len(items))
	best := 0
	for _, item := range items {
		n := 0
		for _, w := range words {
			for _, attr := range []string{item.Colour, item.Brand, item.Category} {
				if attr == w {
					n++
				}
			}
		}
		counts[item.ID] = n
		if n > best {
			best = n
		}
	}

	threshold := min(best, maxMatchTier)
	result := make([]models.Item, 0, len(items))
	for _, item := range items {
		if counts[item.ID] > 0 && counts[item.ID] >= threshold {
			result = append(result, item)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		ci, cj := counts[result[i].ID], counts[result[j].ID]
		if ci != cj {
			return ci > cj
		}
		return result[i].ID < result[j].ID
	})
	return result
}
