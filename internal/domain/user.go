package domain

import "time"

type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleAdmin    UserRole = "admin"
	RoleDriver   UserRole = "driver"
)

type User struct {
	ID     string
	Name   string
	Phone  string
	Role   UserRole
	Active bool
	// Last known driver position, stored as-is from webhook payloads.
	LastLat   *float64
	LastLng   *float64
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Address struct {
	ID        string
	UserID    string
	Label     string
	Address   string
	Latitude  *float64
	Longitude *float64
	CreatedAt time.Time
}

// Actor identifies who is asking for an operation. Authorization decisions
// inside usecases key off the role.
type Actor struct {
	UserID string
	Role   UserRole
}

func (a Actor) IsAdmin() bool { return a.Role == RoleAdmin }

type UserRepository interface {
	GetUserByID(userID string) (*User, error)
	GetUsersByRole(role UserRole) ([]*User, error)
	UpdateDriverPosition(driverID string, lat, lng float64) error
}

type AddressRepository interface {
	GetAddressByID(addressID string) (*Address, error)
	GetAddressesByUserID(userID string) ([]*Address, error)
	CreateAddress(address *Address) error
}
