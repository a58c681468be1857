package models

import "gorm.io/gorm"

// Content is an uploaded file attached to a course. Append-only.
type Content struct {
	gorm.Model
	CourseID uint   `json:"courseId" gorm:"index;not null"`
	Type     string `json:"type"` // MIME type
	URL      string `json:"url"`  // object-storage URL
}
