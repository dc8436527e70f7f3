package model

import "time"

// UserRole is the closed set of roles in the portal. Role names are never
// string-compared outside this type.
type UserRole string

const (
	Admin UserRole = "admin"
	Guru  UserRole = "guru"
	Siswa UserRole = "siswa"
)

func (r UserRole) Valid() bool {
	switch r {
	case Admin, Guru, Siswa:
		return true
	}
	return false
}

// AllRoles lists the roles in a stable order for listing endpoints.
func AllRoles() []UserRole {
	return []UserRole{Admin, Guru, Siswa}
}

// Menu returns the portal sections a role can navigate to. The login response
// ships this so clients render the right navigation without hardcoding roles.
func (r UserRole) Menu() []string {
	switch r {
	case Admin:
		return []string{"dashboard", "users", "kelas", "subjects", "jadwal", "enrollment", "quizzes", "absensi", "materi"}
	case Guru:
		return []string{"dashboard", "jadwal", "quizzes", "questions", "absensi", "materi"}
	case Siswa:
		return []string{"dashboard", "jadwal", "quizzes", "absensi", "materi"}
	}
	return nil
}

// swagger:model User
type User struct {
	BaseModel
	Name     string   `gorm:"size:100;not null" json:"name"`
	Email    string   `gorm:"size:100;unique;not null" json:"email"`
	Password string   `gorm:"size:100;not null" json:"-"`
	Role     UserRole `gorm:"type:enum('admin','guru','siswa');default:'siswa'" json:"role"`

	ProfileName *string    `gorm:"size:255" json:"profile_name"`
	ProfilePath *string    `gorm:"size:255" json:"profile_path"`
	Gender      *string    `gorm:"size:20" json:"gender"`
	BirthDate   *time.Time `gorm:"type:date" json:"tanggal_lahir"`
	EntryYear   *string    `gorm:"size:4" json:"tahun_masuk"`
	Address     *string    `gorm:"size:255" json:"address"`

	Enrollments []Enrollment `gorm:"foreignKey:UserID" json:"jadwal_user,omitempty"`
	Answers     []UserAnswer `gorm:"foreignKey:UserID" json:"answers,omitempty"`
}

func (User) TableName() string {
	return "users"
}
