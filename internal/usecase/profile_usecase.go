// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"compass/internal/domain/entity"
)

// --- Input DTOs ---

// SectionFields carries every profile section field in wire form. It is the
// shape of registration payloads and of section patches; the JSON names match
// the public API.
type SectionFields struct {
	// Personal info
	FullName           string `json:"fullName"`
	Dob                string `json:"dob"`
	ContactEmail       string `json:"contactEmail"`
	Phone              string `json:"phone"`
	Location           string `json:"location"`
	PreferredLanguages string `json:"preferredLanguages"`

	// Education
	EducationLevel         string  `json:"educationLevel"`
	InstitutionName        string  `json:"institutionName"`
	Major                  string  `json:"major"`
	GraduationDate         string  `json:"graduationDate"`
	GPA                    float64 `json:"gpa"`
	Achievements           string  `json:"achievements"`
	Coursework             string  `json:"coursework"`
	AcademicCertifications string  `json:"academicCertifications"`

	// Aspirations
	CareerInterests string `json:"careerInterests"`
	IndustrySectors string `json:"industrySectors"`
	ShortTermGoals  string `json:"shortTermGoals"`
	LongTermGoals   string `json:"longTermGoals"`
	DreamJob        string `json:"dreamJob"`

	// Skills
	ProgrammingLanguages string `json:"programmingLanguages"`
	SoftwareSkills       string `json:"softwareSkills"`
	TechCertifications   string `json:"techCertifications"`
	SkillLevels          string `json:"skillLevels"`
	SoftSkills           string `json:"softSkills"`

	// Work experience
	WorkExperience string `json:"workExperience"`

	// Networking
	Linkedin    string `json:"linkedin"`
	Github      string `json:"github"`
	OtherSocial string `json:"otherSocial"`
	Website     string `json:"website"`
}

// RegisterInput defines the data required to register a new account.
// Section fields are optional at registration time and are stored as given.
type RegisterInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
	SectionFields
}

// CredentialsInput defines the data required to authenticate.
type CredentialsInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// ProfileOutput is the sanitized wire representation of a profile.
// It carries no credential material by construction.
type ProfileOutput struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	SectionFields
}

// TokenOutput returns the signed login token after successful authentication.
type TokenOutput struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// ProfileUsecase defines the interface for account and profile operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type ProfileUsecase interface {
	// Register creates a new account, hashing the password and storing any
	// section fields supplied alongside the credentials.
	Register(ctx context.Context, input *RegisterInput) (*ProfileOutput, error)

	// Authenticate verifies credentials and returns a signed login token.
	Authenticate(ctx context.Context, input *CredentialsInput) (*TokenOutput, error)

	// FetchProfile verifies credentials and returns the full sanitized profile.
	FetchProfile(ctx context.Context, input *CredentialsInput) (*ProfileOutput, error)

	// UpdateSection overwrites one named section of the stored profile with
	// the matching fields of patch, leaving everything else untouched.
	UpdateSection(ctx context.Context, email string, section entity.Section, patch *SectionFields) error

	// GetByEmail returns the sanitized profile for an already-authenticated
	// subject. Credential checks happen at the token layer.
	GetByEmail(ctx context.Context, email string) (*ProfileOutput, error)
}

// ToEntity maps wire-form section fields onto a domain profile.
func (f *SectionFields) ToEntity() entity.Profile {
	return entity.Profile{
		Personal: entity.Personal{
			FullName:           f.FullName,
			DateOfBirth:        f.Dob,
			ContactEmail:       f.ContactEmail,
			Phone:              f.Phone,
			Location:           f.Location,
			PreferredLanguages: f.PreferredLanguages,
		},
		Education: entity.Education{
			Level:          f.EducationLevel,
			Institution:    f.InstitutionName,
			Major:          f.Major,
			GraduationDate: f.GraduationDate,
			GPA:            f.GPA,
			Achievements:   f.Achievements,
			Coursework:     f.Coursework,
			Certifications: f.AcademicCertifications,
		},
		Aspirations: entity.Aspirations{
			CareerInterests: f.CareerInterests,
			IndustrySectors: f.IndustrySectors,
			ShortTermGoals:  f.ShortTermGoals,
			LongTermGoals:   f.LongTermGoals,
			DreamJob:        f.DreamJob,
		},
		Skills: entity.Skills{
			ProgrammingLanguages: f.ProgrammingLanguages,
			SoftwareSkills:       f.SoftwareSkills,
			TechCertifications:   f.TechCertifications,
			SkillLevels:          f.SkillLevels,
			SoftSkills:           f.SoftSkills,
		},
		Experience: entity.Experience{
			WorkExperience: f.WorkExperience,
		},
		Networking: entity.Networking{
			LinkedIn:    f.Linkedin,
			GitHub:      f.Github,
			OtherSocial: f.OtherSocial,
			Website:     f.Website,
		},
	}
}

// NewProfileOutput maps a domain profile to its sanitized wire form.
func NewProfileOutput(p *entity.Profile) *ProfileOutput {
	return &ProfileOutput{
		ID:    p.ID,
		Email: p.Email,
		SectionFields: SectionFields{
			FullName:           p.Personal.FullName,
			Dob:                p.Personal.DateOfBirth,
			ContactEmail:       p.Personal.ContactEmail,
			Phone:              p.Personal.Phone,
			Location:           p.Personal.Location,
			PreferredLanguages: p.Personal.PreferredLanguages,

			EducationLevel:         p.Education.Level,
			InstitutionName:        p.Education.Institution,
			Major:                  p.Education.Major,
			GraduationDate:         p.Education.GraduationDate,
			GPA:                    p.Education.GPA,
			Achievements:           p.Education.Achievements,
			Coursework:             p.Education.Coursework,
			AcademicCertifications: p.Education.Certifications,

			CareerInterests: p.Aspirations.CareerInterests,
			IndustrySectors: p.Aspirations.IndustrySectors,
			ShortTermGoals:  p.Aspirations.ShortTermGoals,
			LongTermGoals:   p.Aspirations.LongTermGoals,
			DreamJob:        p.Aspirations.DreamJob,

			ProgrammingLanguages: p.Skills.ProgrammingLanguages,
			SoftwareSkills:       p.Skills.SoftwareSkills,
			TechCertifications:   p.Skills.TechCertifications,
			SkillLevels:          p.Skills.SkillLevels,
			SoftSkills:           p.Skills.SoftSkills,

			WorkExperience: p.Experience.WorkExperience,

			Linkedin:    p.Networking.LinkedIn,
			Github:      p.Networking.GitHub,
			OtherSocial: p.Networking.OtherSocial,
			Website:     p.Networking.Website,
		},
	}
}
