package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validProfile() Profile {
	return Profile{
		Name:       "Ananya Sharma",
		Gender:     "Female",
		DOB:        "1996-04-12",
		Contact:    "9876543210",
		Email:      "ananya@example.com",
		Height:     "5'4\"",
		Education:  "M.Sc.",
		Occupation: "Engineer",
		Location:   "Mumbai",
		Religion:   "Hindu",
	}
}

func TestValidateProfileValid(t *testing.T) {
	assert.Empty(t, ValidateProfile(validProfile()))
}

func TestValidateProfileAllFieldsMissing(t *testing.T) {
	msgs := ValidateProfile(Profile{})
	assert.Equal(t, []string{
		"name is required.",
		"gender is required.",
		"dob is required.",
		"contact is required.",
		"email is required.",
		"height is required.",
		"education is required.",
		"occupation is required.",
		"location is required.",
		"religion is required.",
	}, msgs)
}

func TestValidateProfileMissingContactAndBadEmail(t *testing.T) {
	p := validProfile()
	p.Contact = ""
	p.Email = "bad"

	msgs := ValidateProfile(p)
	assert.Equal(t, []string{"contact is required.", "Invalid email address."}, msgs)
}

func TestValidateProfileShortContact(t *testing.T) {
	p := validProfile()
	p.Contact = "12345"

	msgs := ValidateProfile(p)
	assert.Equal(t, []string{"Contact must be a 10-digit number."}, msgs)
}

func TestValidateProfileContactWithLetters(t *testing.T) {
	p := validProfile()
	p.Contact = "98765abc10"

	msgs := ValidateProfile(p)
	assert.Equal(t, []string{"Contact must be a 10-digit number."}, msgs)
}

func TestValidateProfileEmailFormats(t *testing.T) {
	tests := []struct {
		email string
		ok    bool
	}{
		{"a@x.com", true},
		{"first.last-name_1@sub.domain.co", true},
		{"no-at-sign", false},
		{"a@b", false},
		{"a@b.toolongtld", false},
	}
	for _, tt := range tests {
		p := validProfile()
		p.Email = tt.email
		msgs := ValidateProfile(p)
		if tt.ok {
			assert.Empty(t, msgs, "email %q", tt.email)
		} else {
			assert.Equal(t, []string{"Invalid email address."}, msgs, "email %q", tt.email)
		}
	}
}
