package models

import "time"

// JobPosting represents one opening in the careers store. The gorm tags only
// matter when the store runs against MySQL; the flat-file store persists the
// JSON representation.
type JobPosting struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	Title        string    `gorm:"size:255;not null" json:"title"`
	Department   string    `gorm:"size:128" json:"department"`
	Location     string    `gorm:"size:128" json:"location"`
	Type         string    `gorm:"size:64" json:"type"`
	Experience   string    `gorm:"size:64" json:"experience"`
	Salary       string    `gorm:"size:128" json:"salary"`
	Description  string    `gorm:"type:text" json:"description"`
	Requirements []string  `gorm:"serializer:json" json:"requirements"`
	Benefits     []string  `gorm:"serializer:json" json:"benefits"`
	Deadline     string    `gorm:"size:32" json:"applicationDeadline,omitempty"`
	IsActive     bool      `json:"isActive"`
	PostedDate   time.Time `json:"postedDate"`
}

// JobPatch carries a partial update for a posting. Nil fields are left
// untouched; ID and PostedDate are never patchable.
type JobPatch struct {
	Title        *string   `json:"title"`
	Department   *string   `json:"department"`
	Location     *string   `json:"location"`
	Type         *string   `json:"type"`
	Experience   *string   `json:"experience"`
	Salary       *string   `json:"salary"`
	Description  *string   `json:"description"`
	Requirements *[]string `json:"requirements"`
	Benefits     *[]string `json:"benefits"`
	Deadline     *string   `json:"applicationDeadline"`
	IsActive     *bool     `json:"isActive"`
}
