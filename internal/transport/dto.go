package transport

import "github.com/google/uuid"

// MessageOut is the detail envelope used by confirmation and soft-error
// responses.
type MessageOut struct {
	Detail string `json:"detail"`
}

type ItemCreate struct {
	ProductID uuid.UUID `json:"product_id"`
	ItemQty   uint      `json:"item_qty"`
}

type CheckOut struct {
	Note      string    `json:"note"`
	AddressID uuid.UUID `json:"address_id"`
}

type AddressCreate struct {
	WorkAddress bool       `json:"work_address"`
	Address1    string     `json:"address1"`
	Address2    string     `json:"address2"`
	CityID      *uuid.UUID `json:"city_id"`
	Phone       string     `json:"phone"`
}

type AddressUpdate struct {
	ID uuid.UUID `json:"id"`
	AddressCreate
}

type CitySchema struct {
	Name string `json:"name"`
}

type ProductCreate struct {
	Name            string     `json:"name"`
	Description     string     `json:"description"`
	Qty             uint       `json:"qty"`
	Price           float64    `json:"price"`
	DiscountedPrice float64    `json:"discounted_price"`
	IsActive        *bool      `json:"is_active"`
	VendorID        *uuid.UUID `json:"vendor_id"`
	CategoryID      *uuid.UUID `json:"category_id"`
}

type ProductPatch struct {
	Name            *string  `json:"name"`
	Description     *string  `json:"description"`
	Qty             *uint    `json:"qty"`
	Price           *float64 `json:"price"`
	DiscountedPrice *float64 `json:"discounted_price"`
	IsActive        *bool    `json:"is_active"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
