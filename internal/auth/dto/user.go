package dto

import (
	"github.com/RadhepS/E-Commerce-Platform/internal/auth/domain"
)

// UserOutput is the outward-facing view of a user: profile fields merged
// with the linked address. The password hash is never part of it.
type UserOutput struct {
	Username     string `json:"username"`
	Email        string `json:"email"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	BrandName    string `json:"brand_name"`
	PhoneNumber  string `json:"phone_number"`
	Address      string `json:"address"`
	StreetName   string `json:"street_name,omitempty"`
	StreetNumber string `json:"street_number,omitempty"`
	UnitNumber   string `json:"unit_number,omitempty"`
	City         string `json:"city,omitempty"`
	Province     string `json:"province,omitempty"`
	PostalCode   string `json:"postal_code,omitempty"`
	Country      string `json:"country,omitempty"`
}

type LoginResult struct {
	Token string
	User  UserOutput
}

type StatusOutput struct {
	IsAuthenticated bool        `json:"isAuthenticated"`
	User            *UserOutput `json:"user,omitempty"`
}

// NewUserOutput merges a user and its address into the public view. The
// address may be nil (a partially-provisioned account); the address fields
// are simply left empty then.
func NewUserOutput(user *domain.User, address *domain.Address) UserOutput {
	out := UserOutput{
		Username:    user.Username,
		Email:       user.Email,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		BrandName:   user.BrandName,
		PhoneNumber: user.PhoneNumber,
		Address:     user.AddressID,
	}

	if address != nil {
		out.StreetName = address.StreetName
		out.StreetNumber = address.StreetNumber
		out.UnitNumber = address.UnitNumber
		out.City = address.City
		out.Province = address.Province
		out.PostalCode = address.PostalCode
		out.Country = address.Country
	}

	return out
}
