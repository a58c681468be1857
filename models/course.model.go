package models

import "gorm.io/gorm"

// Course represents a marketplace course
type Course struct {
	gorm.Model
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	ImageURL     string   `json:"imageUrl"`
	Duration     int      `json:"duration"` // duration in minutes
	Difficulty   string   `json:"difficulty"`
	InstructorID *uint    `json:"instructorId" gorm:"index"`
	Price        *float64 `json:"price"`
	// Enrolled is a legacy single-user marker kept for schema compatibility.
	// Per-user enrollment state lives in the enrollments table; nothing here
	// writes this column.
	Enrolled bool `json:"enrolled" gorm:"default:false"`
}
