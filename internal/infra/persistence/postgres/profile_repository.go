// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"compass/internal/domain/entity"
	domainerrors "compass/internal/domain/errors"
	"compass/internal/domain/repository"
	"compass/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// profileRepository implements the domain.ProfileRepository interface using GORM.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
// It returns the repository as a domain interface, adhering to dependency inversion.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

// FindByEmail retrieves a single profile by email, matching ignoring letter case.
func (repo *profileRepository) FindByEmail(ctx context.Context, email string) (*entity.Profile, error) {
	var profileM model.ProfileModel

	err := repo.db.WithContext(ctx).
		Where("LOWER(email) = LOWER(?)", email).
		First(&profileM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by email")
	}

	// Map the persistence model back to a pure domain entity before returning.
	return toProfileDomain(&profileM), nil
}

// Create persists a new profile. The database assigns the numeric identifier,
// and the unique lower(email) index rejects duplicates as a backstop.
func (repo *profileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	profileM := fromProfileDomain(profile)

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmailTaken.WrapMessage("email already registered")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required profile fields")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create profile")
	}

	// Propagate the generated identifier and timestamps back to the entity.
	profile.ID = profileM.ID
	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// Update modifies an existing profile in the database.
func (repo *profileRepository) Update(ctx context.Context, profile *entity.Profile) error {
	profileM := fromProfileDomain(profile)

	if err := repo.db.WithContext(ctx).Save(profileM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmailTaken.WrapMessage("email already registered")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update profile")
	}

	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toProfileDomain converts a GORM ProfileModel to a domain Profile entity.
func toProfileDomain(data *model.ProfileModel) *entity.Profile {
	if data == nil {
		return nil
	}

	return &entity.Profile{
		ID:           data.ID,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		Personal: entity.Personal{
			FullName:           data.FullName,
			DateOfBirth:        data.DateOfBirth,
			ContactEmail:       data.ContactEmail,
			Phone:              data.Phone,
			Location:           data.Location,
			PreferredLanguages: data.PreferredLanguages,
		},
		Education: entity.Education{
			Level:          data.EducationLevel,
			Institution:    data.InstitutionName,
			Major:          data.Major,
			GraduationDate: data.GraduationDate,
			GPA:            data.GPA,
			Achievements:   data.Achievements,
			Coursework:     data.Coursework,
			Certifications: data.AcademicCertifications,
		},
		Aspirations: entity.Aspirations{
			CareerInterests: data.CareerInterests,
			IndustrySectors: data.IndustrySectors,
			ShortTermGoals:  data.ShortTermGoals,
			LongTermGoals:   data.LongTermGoals,
			DreamJob:        data.DreamJob,
		},
		Skills: entity.Skills{
			ProgrammingLanguages: data.ProgrammingLanguages,
			SoftwareSkills:       data.SoftwareSkills,
			TechCertifications:   data.TechCertifications,
			SkillLevels:          data.SkillLevels,
			SoftSkills:           data.SoftSkills,
		},
		Experience: entity.Experience{
			WorkExperience: data.WorkExperience,
		},
		Networking: entity.Networking{
			LinkedIn:    data.Linkedin,
			GitHub:      data.Github,
			OtherSocial: data.OtherSocial,
			Website:     data.Website,
		},
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromProfileDomain converts a domain Profile entity to a GORM ProfileModel for persistence.
func fromProfileDomain(data *entity.Profile) *model.ProfileModel {
	if data == nil {
		return nil
	}

	return &model.ProfileModel{
		ID:           data.ID,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,

		FullName:           data.Personal.FullName,
		DateOfBirth:        data.Personal.DateOfBirth,
		ContactEmail:       data.Personal.ContactEmail,
		Phone:              data.Personal.Phone,
		Location:           data.Personal.Location,
		PreferredLanguages: data.Personal.PreferredLanguages,

		EducationLevel:         data.Education.Level,
		InstitutionName:        data.Education.Institution,
		Major:                  data.Education.Major,
		GraduationDate:         data.Education.GraduationDate,
		GPA:                    data.Education.GPA,
		Achievements:           data.Education.Achievements,
		Coursework:             data.Education.Coursework,
		AcademicCertifications: data.Education.Certifications,

		CareerInterests: data.Aspirations.CareerInterests,
		IndustrySectors: data.Aspirations.IndustrySectors,
		ShortTermGoals:  data.Aspirations.ShortTermGoals,
		LongTermGoals:   data.Aspirations.LongTermGoals,
		DreamJob:        data.Aspirations.DreamJob,

		ProgrammingLanguages: data.Skills.ProgrammingLanguages,
		SoftwareSkills:       data.Skills.SoftwareSkills,
		TechCertifications:   data.Skills.TechCertifications,
		SkillLevels:          data.Skills.SkillLevels,
		SoftSkills:           data.Skills.SoftSkills,

		WorkExperience: data.Experience.WorkExperience,

		Linkedin:    data.Networking.LinkedIn,
		Github:      data.Networking.GitHub,
		OtherSocial: data.Networking.OtherSocial,
		Website:     data.Networking.Website,

		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
