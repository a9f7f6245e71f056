package model

// Committee is a simulated UN organ delegates can apply to.
type Committee struct {
	ID            uint   `json:"id" gorm:"primaryKey"`
	Name          string `json:"name" gorm:"size:255;not null"`
	Abbreviation  string `json:"abbreviation" gorm:"size:20;not null"`
	Description   string `json:"description" gorm:"type:text;not null"`
	Agenda        string `json:"agenda" gorm:"type:text;not null"`
	GuideURL      string `json:"guide_url,omitempty" gorm:"size:500"` // background guide PDF
	ChairName     string `json:"chair_name,omitempty" gorm:"size:255"`
	ChairBio      string `json:"chair_bio,omitempty" gorm:"type:text"`
	ChairImageURL string `json:"chair_image_url,omitempty" gorm:"size:500"`
	Capacity      int    `json:"capacity" gorm:"default:50"`
	ImageURL      string `json:"image_url,omitempty" gorm:"size:500"`
}
