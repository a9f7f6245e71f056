package model

import "time"

// GalleryImage is a photo shown on the gallery page, optionally tied to an
// event.
type GalleryImage struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	EventID   *uint     `json:"event_id,omitempty" gorm:"index"`
	URL       string    `json:"url" gorm:"size:500;not null"`
	Caption   string    `json:"caption,omitempty" gorm:"size:500"`
	Category  string    `json:"category,omitempty" gorm:"size:100"` // 'Opening Ceremony', 'Committee Sessions', ...
	CreatedAt time.Time `json:"created_at"`
}
