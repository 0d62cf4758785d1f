package dto

type RegisterInput struct {
	Username     string `json:"username"`
	Password     string `json:"password"`
	Email        string `json:"email"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	BrandName    string `json:"brand_name"`
	PhoneNumber  string `json:"phone_number"`
	StreetNumber string `json:"street_number" validate:"required"`
	StreetName   string `json:"street_name" validate:"required"`
	UnitNumber   string `json:"unit_number"`
	City         string `json:"city" validate:"required"`
	Province     string `json:"province" validate:"required"`
	PostalCode   string `json:"postal_code" validate:"required"`
	Country      string `json:"country" validate:"required"`
}
