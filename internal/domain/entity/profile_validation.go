package entity

import (
	"regexp"
)

var (
	contactPattern = regexp.MustCompile(`^[0-9]{10}$`)
	emailPattern   = regexp.MustCompile(`^[a-zA-Z0-9._-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,6}$`)
)

// ValidateProfile checks a profile's field contents and returns one message
// per violation. All required-field checks run, so a single submission can
// produce multiple messages. An empty slice means the profile is valid.
//
// The format checks only fire on non-empty values; an empty contact yields
// the required message alone, not both.
func ValidateProfile(p Profile) []string {
	var errs []string

	required := []struct {
		name  string
		value string
	}{
		{"name", p.Name},
		{"gender", p.Gender},
		{"dob", p.DOB},
		{"contact", p.Contact},
		{"email", p.Email},
		{"height", p.Height},
		{"education", p.Education},
		{"occupation", p.Occupation},
		{"location", p.Location},
		{"religion", p.Religion},
	}
	for _, f := range required {
		if f.value == "" {
			errs = append(errs, f.name+" is required.")
		}
	}

	if p.Contact != "" && !contactPattern.MatchString(p.Contact) {
		errs = append(errs, "Contact must be a 10-digit number.")
	}
	if p.Email != "" && !emailPattern.MatchString(p.Email) {
		errs = append(errs, "Invalid email address.")
	}

	return errs
}
