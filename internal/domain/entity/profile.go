// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Profile is the sole aggregate in the system: one account with its login
// credentials and six independently editable career-profile sections.
type Profile struct {
	ID           int64  // Server-assigned numeric identifier, immutable once set.
	Email        string // Login identifier, unique ignoring letter case.
	PasswordHash string // Bcrypt hash of the login password. Never serialized outward.

	Personal    Personal
	Education   Education
	Aspirations Aspirations
	Skills      Skills
	Experience  Experience
	Networking  Networking

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Personal groups basic identity and contact fields.
type Personal struct {
	FullName           string
	DateOfBirth        string
	ContactEmail       string
	Phone              string
	Location           string
	PreferredLanguages string
}

// Education groups academic background fields.
type Education struct {
	Level          string
	Institution    string
	Major          string
	GraduationDate string
	GPA            float64
	Achievements   string
	Coursework     string
	Certifications string
}

// Aspirations groups career-goal fields.
type Aspirations struct {
	CareerInterests string
	IndustrySectors string
	ShortTermGoals  string
	LongTermGoals   string
	DreamJob        string
}

// Skills groups technical and soft skill fields.
type Skills struct {
	ProgrammingLanguages string
	SoftwareSkills       string
	TechCertifications   string
	SkillLevels          string
	SoftSkills           string
}

// Experience holds the free-text work history blob.
type Experience struct {
	WorkExperience string
}

// Networking groups public profile links.
type Networking struct {
	LinkedIn    string
	GitHub      string
	OtherSocial string
	Website     string
}

// Sanitize clears credential material before the profile leaves the service.
func (p *Profile) Sanitize() {
	p.PasswordHash = ""
}
