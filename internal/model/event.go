package model

import "time"

// EventStatus distinguishes upcoming conferences from past ones.
type EventStatus string

const (
	EventStatusUpcoming EventStatus = "upcoming"
	EventStatusPast     EventStatus = "past"
)

// Event is a conference edition or related gathering.
type Event struct {
	ID          uint        `json:"id" gorm:"primaryKey"`
	Name        string      `json:"name" gorm:"size:255;not null"`
	Date        time.Time   `json:"date" gorm:"not null;index"`
	Location    string      `json:"location,omitempty" gorm:"size:255"`
	Description string      `json:"description,omitempty" gorm:"type:text"`
	Status      EventStatus `json:"status" gorm:"type:varchar(20);default:'upcoming'"`
	ImageURL    string      `json:"image_url,omitempty" gorm:"size:500"`
}
