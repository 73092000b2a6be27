package service

import (
	"context"
	"strings"

	"github.com/msomdec/medical-image-vault/internal/domain"
)

// SearchQuery holds the search page filters. Empty fields match everything.
type SearchQuery struct {
	Case        string
	Description string
	Tags        []string // A record must carry every listed tag.
}

// Search returns the stored images matching q, newest first.
func (s *ImageService) Search(ctx context.Context, q SearchQuery) ([]domain.ImageRecord, error) {
	records, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	searchesTotal.Inc()
	return FilterImages(records, q), nil
}

// FilterImages keeps the records matching q, preserving their order.
// Text clauses are case-insensitive substring matches.
func FilterImages(records []domain.ImageRecord, q SearchQuery) []domain.ImageRecord {
	caseQ := strings.ToLower(strings.TrimSpace(q.Case))
	descQ := strings.ToLower(strings.TrimSpace(q.Description))

	wanted := make(map[string]struct{}, len(q.Tags))
	for _, t := range q.Tags {
		if t = strings.TrimSpace(t); t != "" {
			wanted[t] = struct{}{}
		}
	}

	matched := []domain.ImageRecord{}
	for _, r := range records {
		if caseQ != "" && !strings.Contains(strings.ToLower(r.MedicalCase), caseQ) {
			continue
		}
		if descQ != "" && !strings.Contains(strings.ToLower(r.Description), descQ) {
			continue
		}
		if !containsAllTags(r.Tags, wanted) {
			continue
		}
		matched = append(matched, r)
	}
	return matched
}

func containsAllTags(have []string, wanted map[string]struct{}) bool {
	if len(wanted) == 0 {
		return true
	}
	found := 0
	seen := make(map[string]struct{}, len(have))
	for _, t := range have {
		if _, ok := wanted[t]; !ok {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		found++
	}
	return found == len(wanted)
}
