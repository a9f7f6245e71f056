package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// SocialLinks holds optional profile links, stored as a JSON column.
type SocialLinks struct {
	LinkedIn  string `json:"linkedin,omitempty"`
	Instagram string `json:"instagram,omitempty"`
}

// Value implements driver.Valuer for the JSON column.
func (s SocialLinks) Value() (driver.Value, error) {
	return json.Marshal(s)
}

// Scan implements sql.Scanner for the JSON column.
func (s *SocialLinks) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	case nil:
		*s = SocialLinks{}
		return nil
	default:
		return fmt.Errorf("unsupported social links column type %T", src)
	}
}

// TeamMember is an organizer profile shown on the team page. ParentID
// models the secretariat hierarchy (e.g. Secretariat under an HOD).
type TeamMember struct {
	ID           uint        `json:"id" gorm:"primaryKey"`
	Name         string      `json:"name" gorm:"size:255;not null"`
	Role         string      `json:"role" gorm:"size:50;not null"` // 'Founder', 'Executive', 'HOD', 'Secretariat'
	Title        string      `json:"title" gorm:"size:255;not null"`
	Bio          string      `json:"bio,omitempty" gorm:"type:text"`
	Department   string      `json:"department,omitempty" gorm:"size:255"`
	ImageURL     string      `json:"image_url,omitempty" gorm:"size:500"`
	SocialLinks  SocialLinks `json:"social_links" gorm:"type:json"`
	ParentID     *uint       `json:"parent_id,omitempty"`
	DisplayOrder int         `json:"display_order" gorm:"default:0"`
}
