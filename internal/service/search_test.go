package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/msomdec/medical-image-vault/internal/domain"
	"github.com/msomdec/medical-image-vault/internal/service"
)

func seedSearchRecords(t *testing.T, svc *service.ImageService) {
	t.Helper()
	saveForTest(t, svc, service.Upload{
		Data:         []byte("a"),
		ContentType:  "image/jpeg",
		OriginalName: "a.jpg",
		MedicalCase:  "Stroke follow-up",
		Description:  "MRI of brain",
		Tags:         []string{"MRI", "Neurology"},
	})
	saveForTest(t, svc, service.Upload{
		Data:         []byte("b"),
		ContentType:  "image/jpeg",
		OriginalName: "b.jpg",
		MedicalCase:  "Chest pain",
		Description:  "X-ray shows mild infiltrate",
		Tags:         []string{"X-ray", "Emergency"},
	})
}

func TestImageService_Search(t *testing.T) {
	svc, _ := newTestImageService(t)
	ctx := context.Background()
	seedSearchRecords(t, svc)

	r, err := svc.Search(ctx, service.SearchQuery{Case: "stroke"})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(r) != 1 || !strings.Contains(r[0].MedicalCase, "Stroke") {
		t.Fatalf("case query: expected the stroke record, got %+v", r)
	}

	r, err = svc.Search(ctx, service.SearchQuery{Description: "INFILTRATE"})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(r) != 1 || !strings.Contains(strings.ToLower(r[0].Description), "infiltrate") {
		t.Fatalf("description query: expected the chest record, got %+v", r)
	}

	r, err = svc.Search(ctx, service.SearchQuery{Tags: []string{"MRI", "Neurology"}})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(r) != 1 || r[0].MedicalCase != "Stroke follow-up" {
		t.Fatalf("tag query: expected the stroke record, got %+v", r)
	}

	r, err = svc.Search(ctx, service.SearchQuery{Tags: []string{"MRI", "Emergency"}})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(r) != 0 {
		t.Fatalf("expected no records carrying both MRI and Emergency, got %d", len(r))
	}

	r, err = svc.Search(ctx, service.SearchQuery{})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(r) != 2 || r[0].MedicalCase != "Chest pain" {
		t.Fatalf("empty query: expected both records newest first, got %+v", r)
	}
}

func TestFilterImages(t *testing.T) {
	records := []domain.ImageRecord{
		{ID: 4, MedicalCase: "Pediatric fracture", Description: "Wrist X-ray", Tags: []string{"Pediatrics", "X-ray"}},
		{ID: 3, MedicalCase: "Fracture follow-up", Description: "CT of wrist", Tags: []string{"CT"}},
		{ID: 2, MedicalCase: "Rash", Description: "Dermatology photo", Tags: []string{"Dermatology"}},
		{ID: 1, MedicalCase: "Stroke", Description: "MRI", Tags: nil},
	}

	tests := []struct {
		name string
		q    service.SearchQuery
		want []int64
	}{
		{"empty query keeps all", service.SearchQuery{}, []int64{4, 3, 2, 1}},
		{"case substring", service.SearchQuery{Case: "FRACTURE"}, []int64{4, 3}},
		{"case trimmed", service.SearchQuery{Case: "  rash  "}, []int64{2}},
		{"whitespace-only case passes", service.SearchQuery{Case: "   "}, []int64{4, 3, 2, 1}},
		{"description substring", service.SearchQuery{Description: "wrist"}, []int64{4, 3}},
		{"case and description", service.SearchQuery{Case: "fracture", Description: "ct"}, []int64{3}},
		{"single tag", service.SearchQuery{Tags: []string{"X-ray"}}, []int64{4}},
		{"tags are and-ed", service.SearchQuery{Tags: []string{"X-ray", "CT"}}, nil},
		{"duplicate and blank tags ignored", service.SearchQuery{Tags: []string{" CT ", "CT", ""}}, []int64{3}},
		{"blank tags only", service.SearchQuery{Tags: []string{"", "  "}}, []int64{4, 3, 2, 1}},
		{"no match", service.SearchQuery{Case: "tumor"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := service.FilterImages(records, tt.q)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d records, got %d", len(tt.want), len(got))
			}
			for i, r := range got {
				if r.ID != tt.want[i] {
					t.Fatalf("position %d: expected id %d, got %d", i, tt.want[i], r.ID)
				}
			}
		})
	}
}
