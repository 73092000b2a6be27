package handler

import (
	"time"

	"github.com/msomdec/medical-image-vault/internal/domain"
)

// ImageDTO is the JSON representation of an image record.
type ImageDTO struct {
	ID           int64    `json:"id"`
	Filename     string   `json:"filename"`
	OriginalName string   `json:"originalName"`
	MedicalCase  string   `json:"medicalCase"`
	Description  string   `json:"description"`
	Tags         []string `json:"tags"`
	UploadedAt   string   `json:"uploadedAt"`
	URL          string   `json:"url"`
}

func toImageDTO(img domain.ImageRecord) ImageDTO {
	tags := img.Tags
	if tags == nil {
		tags = []string{}
	}
	return ImageDTO{
		ID:           img.ID,
		Filename:     img.Filename,
		OriginalName: img.OriginalName,
		MedicalCase:  img.MedicalCase,
		Description:  img.Description,
		Tags:         tags,
		UploadedAt:   img.UploadedAt.UTC().Format(time.RFC3339Nano),
		URL:          "/files/" + img.Filename,
	}
}

func toImageDTOs(images []domain.ImageRecord) []ImageDTO {
	dtos := make([]ImageDTO, len(images))
	for i, img := range images {
		dtos[i] = toImageDTO(img)
	}
	return dtos
}

// TagsDTO is the JSON representation of the controlled vocabulary.
type TagsDTO struct {
	Imaging []string `json:"imaging"`
	Other   []string `json:"other"`
	All     []string `json:"all"`
}
