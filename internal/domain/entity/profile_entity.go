package entity

import (
	"time"
)

// Profile is a matrimonial biodata listing.
//
// OwnerEmail references the creating account's email. The reference is
// advisory: the HTTP layer restricts edit and delete to the owner, the
// store itself enforces nothing.
type Profile struct {
	ID         string    `json:"id"`
	OwnerEmail string    `json:"ownerEmail"`
	Name       string    `json:"name"`
	Gender     string    `json:"gender"`
	DOB        string    `json:"dob"`
	Contact    string    `json:"contact"`
	Email      string    `json:"email"`
	Height     string    `json:"height"`
	Education  string    `json:"education"`
	Occupation string    `json:"occupation"`
	Location   string    `json:"location"`
	Religion   string    `json:"religion"`
	CreatedAt  time.Time `json:"created_at"`
}

// SearchText is the haystack used by substring search over listings.
func (p Profile) SearchText() string {
	return p.Name + " " + p.Location + " " + p.Education
}
