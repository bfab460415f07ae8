package model

import "time"

// ProfileModel mirrors the 'profiles' table. The numeric primary key is
// assigned by the database; the unique expression index enforces
// case-insensitive email uniqueness as a storage-layer backstop.
type ProfileModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Email        string `gorm:"type:varchar(255);not null;uniqueIndex:udx_profiles_email_lower,expression:lower(email)"`
	PasswordHash string `gorm:"type:varchar(255);not null"`

	// Personal info
	FullName           string `gorm:"type:varchar(255)"`
	DateOfBirth        string `gorm:"type:varchar(64)"`
	ContactEmail       string `gorm:"type:varchar(255)"`
	Phone              string `gorm:"type:varchar(64)"`
	Location           string `gorm:"type:varchar(255)"`
	PreferredLanguages string `gorm:"type:varchar(255)"`

	// Education
	EducationLevel         string  `gorm:"type:varchar(128)"`
	InstitutionName        string  `gorm:"type:varchar(255)"`
	Major                  string  `gorm:"type:varchar(255)"`
	GraduationDate         string  `gorm:"type:varchar(64)"`
	GPA                    float64 `gorm:"type:numeric"`
	Achievements           string  `gorm:"type:text"`
	Coursework             string  `gorm:"type:text"`
	AcademicCertifications string  `gorm:"type:text"`

	// Aspirations
	CareerInterests string `gorm:"type:text"`
	IndustrySectors string `gorm:"type:text"`
	ShortTermGoals  string `gorm:"type:text"`
	LongTermGoals   string `gorm:"type:text"`
	DreamJob        string `gorm:"type:varchar(255)"`

	// Skills
	ProgrammingLanguages string `gorm:"type:text"`
	SoftwareSkills       string `gorm:"type:text"`
	TechCertifications   string `gorm:"type:text"`
	SkillLevels          string `gorm:"type:text"`
	SoftSkills           string `gorm:"type:text"`

	// Work experience
	WorkExperience string `gorm:"type:text"`

	// Networking
	Linkedin    string `gorm:"type:varchar(255)"`
	Github      string `gorm:"type:varchar(255)"`
	OtherSocial string `gorm:"type:varchar(255)"`
	Website     string `gorm:"type:varchar(255)"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}
