package domain

import "time"

type User struct {
	ID           string
	Username     string
	PasswordHash string
	Email        string
	FirstName    string
	LastName     string
	BrandName    string
	PhoneNumber  string
	AddressID    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Address struct {
	ID           string
	StreetNumber string
	StreetName   string
	UnitNumber   string
	City         string
	Province     string
	PostalCode   string
	Country      string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
