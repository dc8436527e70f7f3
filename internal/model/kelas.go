package model

// Kelas is a homeroom class (e.g. "X IPA 1").
// swagger:model Kelas
type Kelas struct {
	BaseModel
	Name string `gorm:"size:100;not null;unique" json:"name"`
}

func (Kelas) TableName() string {
	return "kelas"
}
