package entity

import "strings"

// Section is a closed enumeration of the six editable profile sections.
// The delivery layer parses incoming section names into this type, so the
// rest of the system never dispatches on raw strings.
type Section int

const (
	SectionUnknown Section = iota
	SectionPersonal
	SectionEducation
	SectionAspirations
	SectionSkills
	SectionExperience
	SectionNetworking
)

// ParseSection maps a section name to its enum value, ignoring letter case.
// The second return value is false for unrecognized names.
func ParseSection(name string) (Section, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "personal":
		return SectionPersonal, true
	case "education":
		return SectionEducation, true
	case "aspirations":
		return SectionAspirations, true
	case "skills":
		return SectionSkills, true
	case "experience":
		return SectionExperience, true
	case "networking":
		return SectionNetworking, true
	default:
		return SectionUnknown, false
	}
}

// String returns the canonical lowercase section name.
func (s Section) String() string {
	switch s {
	case SectionPersonal:
		return "personal"
	case SectionEducation:
		return "education"
	case SectionAspirations:
		return "aspirations"
	case SectionSkills:
		return "skills"
	case SectionExperience:
		return "experience"
	case SectionNetworking:
		return "networking"
	default:
		return "unknown"
	}
}

// Valid reports whether s is one of the six known sections.
func (s Section) Valid() bool {
	return s >= SectionPersonal && s <= SectionNetworking
}

// ApplySection overwrites the whole named section of p with the matching
// section of patch, zero values included. Callers submit complete sections;
// there is no per-field granularity. All other fields, the credentials
// included, stay untouched. It reports false for an invalid section.
func (p *Profile) ApplySection(section Section, patch *Profile) bool {
	switch section {
	case SectionPersonal:
		p.Personal = patch.Personal
	case SectionEducation:
		p.Education = patch.Education
	case SectionAspirations:
		p.Aspirations = patch.Aspirations
	case SectionSkills:
		p.Skills = patch.Skills
	case SectionExperience:
		p.Experience = patch.Experience
	case SectionNetworking:
		p.Networking = patch.Networking
	default:
		return false
	}

	return true
}
