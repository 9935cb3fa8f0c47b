package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

const (
	OrderStatusPending   = "pending"
	OrderStatusPaid      = "paid"
	OrderStatusShipped   = "shipped"
	OrderStatusCompleted = "completed"
	OrderStatusCanceled  = "canceled"
)

const (
	PaymentCard           = "card"
	PaymentCashOnDelivery = "cash-on-delivery"
)

const (
	AvailabilityInStock      = "In Stock"
	AvailabilityOutOfStock   = "Out of Stock"
	AvailabilityLimitedStock = "Limited Stock"
)

// ValidOrderStatus reports membership in the status set. Statuses are a
// flat label set, any status may move to any other.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusPaid, OrderStatusShipped, OrderStatusCompleted, OrderStatusCanceled:
		return true
	}
	return false
}

type User struct {
	ID           uuid.UUID `gorm:"primaryKey"       json:"id"`
	FullName     string    `gorm:"not null"         json:"full_name"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null"         json:"-"`
	Role         string    `gorm:"not null"         json:"role"`
	// Sha256 of the active refresh token. Single slot: a new login
	// replaces it, logout clears it.
	RefreshToken string    `gorm:"index"            json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

type Category struct {
	ID           uuid.UUID `gorm:"primaryKey"           json:"id"`
	Name         string    `gorm:"not null"             json:"name"`
	Slug         string    `gorm:"uniqueIndex;not null" json:"slug"`
	Image        string    `json:"image,omitempty"`
	Description  string    `json:"description,omitempty"`
	ProductCount int64     `gorm:"default:0"            json:"product_count"`
	CreatedAt    time.Time `json:"created_at"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

type Product struct {
	ID            uuid.UUID `gorm:"primaryKey"     json:"id"`
	Name          string    `gorm:"index;not null" json:"name"`
	CategoryID    uuid.UUID `gorm:"index;not null" json:"category_id"`
	Category      *Category `json:"category,omitempty"`
	Price         float64   `gorm:"not null"       json:"price"`
	OriginalPrice float64   `json:"original_price,omitempty"`
	MainImage     string    `json:"main_image,omitempty"`
	Images        []Image   `gorm:"foreignKey:ProductID" json:"images,omitempty"`
	Rating        float64   `gorm:"default:0"      json:"rating"`
	Reviews       int       `gorm:"default:0"      json:"reviews"`
	Availability  string    `gorm:"not null;default:'In Stock'" json:"availability"`
	Stock         int       `gorm:"default:0"      json:"stock"`
	Description   string    `json:"description,omitempty"`
	Brand         string    `json:"brand,omitempty"`
	IsNew         bool      `gorm:"default:false"  json:"is_new"`
	IsFeatured    bool      `gorm:"default:false"  json:"is_featured"`
	IsOnSale      bool      `gorm:"default:false"  json:"is_on_sale"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

type Image struct {
	ID         uuid.UUID `gorm:"primaryKey"     json:"id"`
	URL        string    `gorm:"not null"       json:"url"`
	AltText    string    `json:"alt_text,omitempty"`
	ProductID  uuid.UUID `gorm:"index"          json:"product_id"`
	UploadedAt time.Time `gorm:"autoCreateTime" json:"uploaded_at"`
}

func (i *Image) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

type Cart struct {
	ID        uuid.UUID  `gorm:"primaryKey"           json:"id"`
	UserID    uuid.UUID  `gorm:"uniqueIndex;not null" json:"user_id"`
	Items     []CartItem `gorm:"foreignKey:CartID"    json:"items"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"-"`
}

func (c *Cart) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

type CartItem struct {
	ID        uuid.UUID `gorm:"primaryKey"                           json:"id"`
	CartID    uuid.UUID `gorm:"uniqueIndex:idx_cart_product;not null" json:"cart_id"`
	ProductID uuid.UUID `gorm:"uniqueIndex:idx_cart_product;not null" json:"product_id"`
	Product   *Product  `json:"product,omitempty"`
	Quantity  uint      `gorm:"default:1;check:quantity>0"           json:"quantity"`
}

func (ci *CartItem) BeforeCreate(tx *gorm.DB) error {
	if ci.ID == uuid.Nil {
		ci.ID = uuid.New()
	}
	return nil
}

func (CartItem) TableName() string { return "cart_items" }

type Favorite struct {
	ID        uuid.UUID `gorm:"primaryKey"                           json:"id"`
	UserID    uuid.UUID `gorm:"uniqueIndex:idx_user_favorite;not null" json:"user_id"`
	ProductID uuid.UUID `gorm:"uniqueIndex:idx_user_favorite;not null" json:"product_id"`
	Product   *Product  `json:"product,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (f *Favorite) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}

type ShippingAddress struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
}

type Order struct {
	ID              uuid.UUID       `gorm:"primaryKey"         json:"id"`
	UserID          uuid.UUID       `gorm:"index;not null"     json:"user_id"`
	User            *User           `json:"user,omitempty"`
	Items           []OrderItem     `gorm:"foreignKey:OrderID" json:"items"`
	TotalPrice      float64         `gorm:"not null"           json:"total_price"`
	Status          string          `gorm:"not null"           json:"status"`
	PaymentMethod   string          `gorm:"not null"           json:"payment_method"`
	ShippingAddress ShippingAddress `gorm:"embedded;embeddedPrefix:shipping_" json:"shipping_address"`
	CreatedAt       time.Time       `json:"created_at"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// OrderItem is an immutable snapshot line: the price is captured at
// purchase time and never re-read from the live catalog.
type OrderItem struct {
	ID              uuid.UUID `gorm:"primaryKey"     json:"id"`
	OrderID         uuid.UUID `gorm:"index;not null" json:"order_id"`
	ProductID       uuid.UUID `gorm:"not null"       json:"product_id"`
	Product         *Product  `json:"product,omitempty"`
	Quantity        uint      `gorm:"check:quantity>0" json:"quantity"`
	PriceAtPurchase float64   `gorm:"not null"       json:"price_at_purchase"`
}

func (oi *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if oi.ID == uuid.Nil {
		oi.ID = uuid.New()
	}
	return nil
}

func (OrderItem) TableName() string { return "order_items" }

// All migratable entities, in dependency order.
func All() []any {
	return []any{
		&User{}, &Category{}, &Product{}, &Image{},
		&Cart{}, &CartItem{}, &Favorite{},
		&Order{}, &OrderItem{},
	}
}
