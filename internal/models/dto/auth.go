package dto

import "github.com/lumenarts/school-be/internal/models"

type RegisterRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`

	DOB     string `json:"dob"`
	Country string `json:"country"`
	Street1 string `json:"street1"`
	Street2 string `json:"street2"`
	City    string `json:"city"`
	State   string `json:"state"`
	PinCode string `json:"pinCode"`

	Centre      string `json:"centre"`
	Level       string `json:"level"`
	Stream      string `json:"stream"`
	Scholarship bool   `json:"scholarship"`
	Comments    string `json:"comments"`

	// nil means the registrant left every channel unchecked.
	Communications *models.Communications `json:"communications"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token   string         `json:"token"`
	Account models.Account `json:"account"`
}
