package model

// Materi is an uploaded lesson material tied to a schedule slot. Video uploads
// additionally carry a probed duration and a generated thumbnail.
// swagger:model Materi
type Materi struct {
	BaseModel
	JadwalID    uint   `gorm:"index;not null" json:"jadwal_id"`
	Jadwal      Jadwal `gorm:"foreignKey:JadwalID" json:"jadwal"`
	Title       string `gorm:"size:255;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`

	DifficultyLevel int `gorm:"default:1" json:"difficulty_level"`

	FileName      *string  `gorm:"size:255" json:"file_name"`
	FilePath      *string  `gorm:"size:255" json:"file_path"`
	VideoDuration *float64 `json:"video_duration,omitempty"`
	ThumbnailPath *string  `gorm:"size:255" json:"thumbnail_path,omitempty"`
}

func (Materi) TableName() string {
	return "materis"
}
