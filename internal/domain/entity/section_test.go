package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSection(t *testing.T) {
	t.Parallel()

	t.Run("KnownNames", func(t *testing.T) {
		t.Parallel()

		cases := map[string]Section{
			"personal":    SectionPersonal,
			"education":   SectionEducation,
			"aspirations": SectionAspirations,
			"skills":      SectionSkills,
			"experience":  SectionExperience,
			"networking":  SectionNetworking,
		}

		for name, want := range cases {
			got, ok := ParseSection(name)
			require.True(t, ok, "section %q should parse", name)
			assert.Equal(t, want, got)
			assert.Equal(t, name, got.String())
		}
	})

	t.Run("CaseInsensitive", func(t *testing.T) {
		t.Parallel()

		for _, name := range []string{"Personal", "EDUCATION", "SkIlLs", "  networking  "} {
			_, ok := ParseSection(name)
			assert.True(t, ok, "section %q should parse", name)
		}
	})

	t.Run("UnknownNames", func(t *testing.T) {
		t.Parallel()

		for _, name := range []string{"", "hobbies", "personal-info", "Personal Info"} {
			got, ok := ParseSection(name)
			assert.False(t, ok, "section %q should not parse", name)
			assert.Equal(t, SectionUnknown, got)
			assert.False(t, got.Valid())
		}
	})
}

func TestApplySection(t *testing.T) {
	t.Parallel()

	base := func() *Profile {
		return &Profile{
			ID:           7,
			Email:        "alice@example.com",
			PasswordHash: "$2a$10$stored-hash",
			Personal:     Personal{FullName: "Alice", Phone: "555-0100"},
			Education:    Education{Level: "BSc", Institution: "State U", GPA: 3.4},
			Skills:       Skills{ProgrammingLanguages: "Go"},
		}
	}

	t.Run("OverwritesOnlyNamedSection", func(t *testing.T) {
		t.Parallel()

		profile := base()
		patch := &Profile{
			Personal:  Personal{FullName: "Should Not Apply"},
			Education: Education{Level: "PhD", Institution: "Tech U", GPA: 3.9},
		}

		require.True(t, profile.ApplySection(SectionEducation, patch))

		assert.Equal(t, "PhD", profile.Education.Level)
		assert.Equal(t, "Tech U", profile.Education.Institution)
		assert.Equal(t, 3.9, profile.Education.GPA)

		// Everything outside the named section stays untouched.
		assert.Equal(t, "Alice", profile.Personal.FullName)
		assert.Equal(t, "555-0100", profile.Personal.Phone)
		assert.Equal(t, "Go", profile.Skills.ProgrammingLanguages)
		assert.Equal(t, "alice@example.com", profile.Email)
		assert.Equal(t, "$2a$10$stored-hash", profile.PasswordHash)
	})

	t.Run("ZeroValuesOverwrite", func(t *testing.T) {
		t.Parallel()

		profile := base()
		require.True(t, profile.ApplySection(SectionEducation, &Profile{}))

		// The whole section is replaced, so omitted fields become empty.
		assert.Equal(t, Education{}, profile.Education)
		assert.Equal(t, "Alice", profile.Personal.FullName)
	})

	t.Run("AllSections", func(t *testing.T) {
		t.Parallel()

		patch := &Profile{
			Personal:    Personal{FullName: "Bob"},
			Education:   Education{Level: "MSc"},
			Aspirations: Aspirations{DreamJob: "Architect"},
			Skills:      Skills{SoftSkills: "Mentoring"},
			Experience:  Experience{WorkExperience: "5 years"},
			Networking:  Networking{LinkedIn: "in/bob"},
		}

		for _, section := range []Section{
			SectionPersonal, SectionEducation, SectionAspirations,
			SectionSkills, SectionExperience, SectionNetworking,
		} {
			profile := base()
			assert.True(t, profile.ApplySection(section, patch), "section %s", section)
		}
	})

	t.Run("UnknownSectionRejected", func(t *testing.T) {
		t.Parallel()

		profile := base()
		before := *profile

		assert.False(t, profile.ApplySection(SectionUnknown, &Profile{Personal: Personal{FullName: "X"}}))
		assert.False(t, profile.ApplySection(Section(99), &Profile{}))
		assert.Equal(t, before, *profile)
	})
}

func TestProfileSanitize(t *testing.T) {
	t.Parallel()

	profile := &Profile{Email: "alice@example.com", PasswordHash: "$2a$10$stored-hash"}
	profile.Sanitize()

	assert.Empty(t, profile.PasswordHash)
	assert.Equal(t, "alice@example.com", profile.Email)
}
