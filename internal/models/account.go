package models

import "time"

// Communications captures the three opt-in contact channels a registrant
// can choose during signup. All default to false.
type Communications struct {
	ByEmail bool `json:"byEmail"`
	ByPost  bool `json:"byPost"`
	BySMS   bool `json:"bySMS"`
}

// Account is one registrant: credential, profile, and preferences.
// The password hash is never serialized.
type Account struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`

	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`

	DOB     string `json:"dob,omitempty"`
	Country string `json:"country,omitempty"`
	Street1 string `json:"street1,omitempty"`
	Street2 string `json:"street2,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	PinCode string `json:"pinCode,omitempty"`

	Centre      string `json:"centre,omitempty"`
	Level       string `json:"level,omitempty"`
	Stream      string `json:"stream,omitempty"`
	Scholarship bool   `json:"scholarship"`
	Comments    string `json:"comments,omitempty"`

	Communications Communications `json:"communications"`

	IsAdmin   bool      `json:"isAdmin"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
