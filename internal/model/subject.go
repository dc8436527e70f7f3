package model

// swagger:model Subject
type Subject struct {
	BaseModel
	Name      string `gorm:"size:100;not null" json:"name"`
	Code      string `gorm:"size:20;not null;unique" json:"code"`
	Singkatan string `gorm:"size:20" json:"singkatan"`
}

func (Subject) TableName() string {
	return "subjects"
}
