package entity

import (
	"github.com/darkr4m/actually-star-k9/core/entity"

	"github.com/google/uuid"
)

// AddressType classifies a client address.
type AddressType string

const (
	AddressTypePhysical AddressType = "PHYSICAL"
	AddressTypeMailing  AddressType = "MAILING"
	AddressTypeBilling  AddressType = "BILLING"
	AddressTypeOther    AddressType = "OTHER"
)

func (t AddressType) Valid() bool {
	switch t {
	case AddressTypePhysical, AddressTypeMailing, AddressTypeBilling, AddressTypeOther:
		return true
	}
	return false
}

// Client is a dog owner. Dogs and addresses hang off the client record.
type Client struct {
	FirstName             string `db:"first_name" json:"first_name"`
	LastName              string `db:"last_name" json:"last_name"`
	Email                 string `db:"email" json:"email"`
	PhoneNumber           string `db:"phone_number" json:"phone_number"`
	EmergencyContactName  string `db:"emergency_contact_name" json:"emergency_contact_name"`
	EmergencyContactPhone string `db:"emergency_contact_phone" json:"emergency_contact_phone"`
	entity.BaseEntity

	Addresses []*Address `db:"-" json:"addresses,omitempty"`
}

type Address struct {
	ClientID       uuid.UUID   `db:"client_id" json:"client_id"`
	AddressType    AddressType `db:"address_type" json:"address_type"`
	StreetAddress1 string      `db:"street_address_1" json:"street_address_1"`
	StreetAddress2 string      `db:"street_address_2" json:"street_address_2"`
	City           string      `db:"city" json:"city"`
	StateProvince  string      `db:"state_province" json:"state_province"`
	PostalCode     string      `db:"postal_code" json:"postal_code"`
	Country        string      `db:"country" json:"country"`
	entity.BaseEntity
}
