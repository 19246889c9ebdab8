package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID           uuid.UUID `gorm:"primaryKey"               json:"id"`
	Username     string    `gorm:"unique;not null"          json:"username"`
	PasswordHash string    `gorm:"not null"                 json:"-"`
	Role         string    `gorm:"not null;default:user"    json:"role"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

type RefreshToken struct {
	ID        uint      `gorm:"primaryKey"          json:"id"`
	Token     string    `gorm:"unique;not null"     json:"token"`
	UserID    uuid.UUID `gorm:"index;not null"      json:"user_id"`
	ExpiresAt time.Time `gorm:"not null"            json:"expires_at"`
	Revoked   bool      `gorm:"default:false"       json:"revoked"`
}

type Vendor struct {
	ID   uuid.UUID `gorm:"primaryKey"       json:"id"`
	Name string    `gorm:"not null"         json:"name"`
	Slug string    `gorm:"index"            json:"slug"`
}

func (v *Vendor) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}

type Category struct {
	ID       uuid.UUID `gorm:"primaryKey"          json:"id"`
	Name     string    `gorm:"not null"            json:"name"`
	IsActive bool      `gorm:"default:true"        json:"is_active"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

type Product struct {
	ID              uuid.UUID  `gorm:"primaryKey"       json:"id"`
	Name            string     `gorm:"not null;index"   json:"name"`
	Description     string     `gorm:"not null"         json:"description"`
	Qty             uint       `gorm:"not null"         json:"qty"`
	Price           float64    `gorm:"not null"         json:"price"`
	DiscountedPrice float64    `gorm:"not null;index"   json:"discounted_price"`
	IsActive        bool       `gorm:"default:true"     json:"is_active"`
	VendorID        *uuid.UUID `gorm:"index"            json:"vendor_id"`
	Vendor          *Vendor    `                        json:"vendor,omitempty"`
	CategoryID      *uuid.UUID `gorm:"index"            json:"category_id"`
	Category        *Category  `                        json:"category,omitempty"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

type City struct {
	ID   uuid.UUID `gorm:"primaryKey"      json:"id"`
	Name string    `gorm:"not null"        json:"name"`
}

func (c *City) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

type Address struct {
	ID          uuid.UUID  `gorm:"primaryKey"      json:"id"`
	UserID      uuid.UUID  `gorm:"index;not null"  json:"user_id"`
	WorkAddress bool       `gorm:"default:false"   json:"work_address"`
	Address1    string     `gorm:"not null"        json:"address1"`
	Address2    string     `                       json:"address2"`
	CityID      *uuid.UUID `gorm:"index"           json:"city_id"`
	City        *City      `                       json:"city,omitempty"`
	Phone       string     `                       json:"phone"`
}

func (a *Address) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// Item is a cart line while ordered=false and an order line once the
// order it belongs to is created. One unordered row per (user, product).
type Item struct {
	ID        uuid.UUID  `gorm:"primaryKey"                              json:"id"`
	UserID    uuid.UUID  `gorm:"index:idx_user_unordered;not null"       json:"user_id"`
	ProductID uuid.UUID  `gorm:"index;not null"                          json:"product_id"`
	Product   *Product   `                                               json:"product,omitempty"`
	ItemQty   uint       `gorm:"default:1;check:item_qty>0"              json:"item_qty"`
	Ordered   bool       `gorm:"index:idx_user_unordered;default:false"  json:"ordered"`
	OrderID   *uuid.UUID `gorm:"index"                                   json:"order_id"`
}

func (i *Item) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

const (
	StatusNew        = "NEW"
	StatusProcessing = "PROCESSING"
)

type OrderStatus struct {
	ID        uuid.UUID `gorm:"primaryKey"       json:"id"`
	Title     string    `gorm:"unique;not null"  json:"title"`
	IsDefault bool      `gorm:"default:false"    json:"is_default"`
}

func (s *OrderStatus) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

type Order struct {
	ID        uuid.UUID    `gorm:"primaryKey"          json:"id"`
	UserID    uuid.UUID    `gorm:"index;not null"      json:"user_id"`
	RefCode   string       `gorm:"index;not null"      json:"ref_code"`
	StatusID  uuid.UUID    `gorm:"not null"            json:"status_id"`
	Status    *OrderStatus `                           json:"status,omitempty"`
	Ordered   bool         `gorm:"index;default:false" json:"ordered"`
	Total     float64      `gorm:"not null;default:0"  json:"total"`
	Note      string       `                           json:"note"`
	AddressID *uuid.UUID   `gorm:"index"               json:"address_id"`
	Address   *Address     `                           json:"address,omitempty"`
	Items     []Item       `gorm:"foreignKey:OrderID"  json:"items,omitempty"`
	CreatedAt int64        `gorm:"autoCreateTime"      json:"created_at"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}
