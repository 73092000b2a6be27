package domain

import "slices"

var imagingTags = [...]string{
	"CT",
	"MRI",
	"Ultrasound",
	"X-ray",
}

var otherTags = [...]string{
	"Cardiology",
	"Dermatology",
	"Emergency",
	"Neurology",
	"Pathology",
	"Pediatrics",
}

// ImagingTags returns the imaging modality tags in display order.
func ImagingTags() []string {
	return slices.Clone(imagingTags[:])
}

// OtherTags returns the clinical category tags in display order.
func OtherTags() []string {
	return slices.Clone(otherTags[:])
}

// AllTags returns the imaging tags followed by the clinical category tags.
func AllTags() []string {
	return slices.Concat(imagingTags[:], otherTags[:])
}

// IsKnownTag reports whether tag belongs to the controlled vocabulary.
func IsKnownTag(tag string) bool {
	return slices.Contains(imagingTags[:], tag) || slices.Contains(otherTags[:], tag)
}
