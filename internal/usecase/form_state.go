package usecase

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"talent-sift/internal/domain"
)

// ClampExperience keeps the digits of raw and clamps them to [0,50].
// Input without any digit clears the field.
func ClampExperience(raw string) string {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return ""
	}
	d := strings.TrimLeft(digits.String(), "0")
	if d == "" {
		return strconv.Itoa(domain.MinExperienceYears)
	}
	// more than two significant digits is always above the maximum
	if len(d) > 2 {
		return strconv.Itoa(domain.MaxExperienceYears)
	}
	n, _ := strconv.Atoi(d)
	if n > domain.MaxExperienceYears {
		n = domain.MaxExperienceYears
	}
	if n < domain.MinExperienceYears {
		n = domain.MinExperienceYears
	}
	return strconv.Itoa(n)
}

// CoerceJobType returns v as a JobType, or "" when it is not one of the enumerated values
func CoerceJobType(v string) domain.JobType {
	t := domain.JobType(v)
	if t.Valid() {
		return t
	}
	return ""
}

// JobTypeFromLabel maps a label such as "Full time" to its internal value; unknown labels map to ""
func JobTypeFromLabel(label string) domain.JobType {
	return domain.JobTypeLabels[label]
}

// UpdateField returns a copy of form with exactly one field replaced
func UpdateField(form domain.JobRequestForm, field, value string) (domain.JobRequestForm, error) {
	switch field {
	case domain.FieldJobTitle:
		form.JobTitle = value
	case domain.FieldRequiredSkills:
		form.RequiredSkills = value
	case domain.FieldIndustry:
		form.Industry = value
	case domain.FieldMinExperience:
		form.MinExperience = ClampExperience(value)
	case domain.FieldMaxExperience:
		form.MaxExperience = ClampExperience(value)
	case domain.FieldYearsOfExperience:
		form.YearsOfExperience = ClampExperience(value)
	case domain.FieldJobType:
		form.JobType = CoerceJobType(value)
	default:
		return form, fmt.Errorf("unknown form field %q", field)
	}
	return form, nil
}

// ApplyFields runs UpdateField for every field of the form's mode present in values
func ApplyFields(form domain.JobRequestForm, values map[string]string) domain.JobRequestForm {
	for _, field := range form.Mode.FieldNames() {
		value, ok := values[field]
		if !ok {
			continue
		}
		// field names come from FieldNames, so UpdateField cannot fail here
		form, _ = UpdateField(form, field, value)
	}
	return form
}

// PrefillFromQuery builds the initial job-description form from link parameters
// jobtitle, skills, yoe and jobtype. Values that fail to decode are left empty.
func PrefillFromQuery(query url.Values) domain.JobRequestForm {
	form := domain.JobRequestForm{Mode: domain.ModeJobDescription}
	form.JobTitle = decodeParam(query.Get("jobtitle"))
	form.RequiredSkills = decodeParam(query.Get("skills"))
	form.YearsOfExperience = ClampExperience(decodeParam(query.Get("yoe")))
	form.JobType = JobTypeFromLabel(decodeParam(query.Get("jobtype")))
	return form
}

func decodeParam(v string) string {
	decoded, err := url.PathUnescape(v)
	if err != nil {
		return ""
	}
	return decoded
}

// ParseSkills splits a comma-separated skills field, trimming blanks
func ParseSkills(s string) []string {
	skills := []string{}
	for _, skill := range strings.Split(s, ",") {
		if skill = strings.TrimSpace(skill); skill != "" {
			skills = append(skills, skill)
		}
	}
	return skills
}
