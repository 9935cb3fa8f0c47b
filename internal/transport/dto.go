package transport

import (
	"time"

	"github.com/google/uuid"

	"github.com/techmarket/storefront/internal/models"
)

type RegisterRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type PublicUser struct {
	ID       uuid.UUID `json:"id"`
	FullName string    `json:"full_name"`
	Email    string    `json:"email"`
}

type LoginResult struct {
	AccessToken  string
	RefreshToken string
	AccessExp    time.Time
	RefreshExp   time.Time
	Role         string
	User         PublicUser
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type UpdateUserRequest struct {
	FullName *string `json:"full_name"`
	Email    *string `json:"email"`
	Role     *string `json:"role"`
}

type CartEntry struct {
	ProductID uuid.UUID `json:"product_id"`
	Quantity  uint      `json:"quantity"`
}

type AddItemsRequest struct {
	Collection []CartEntry `json:"collection"`
}

type UpdateCartItemRequest struct {
	ProductID uuid.UUID `json:"product_id"`
	Quantity  uint      `json:"quantity"`
}

type OrderLine struct {
	ProductID       uuid.UUID `json:"product_id"`
	Quantity        uint      `json:"quantity"`
	PriceAtPurchase float64   `json:"price_at_purchase"`
}

type CreateOrderRequest struct {
	Products        []OrderLine            `json:"products"`
	ShippingAddress models.ShippingAddress `json:"shipping_address"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

type CreateProductRequest struct {
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	Price         float64 `json:"price"`
	OriginalPrice float64 `json:"original_price"`
	Description   string  `json:"description"`
	Brand         string  `json:"brand"`
	MainImage     string  `json:"main_image"`
	Stock         int     `json:"stock"`
	Availability  string  `json:"availability"`
}

type UpdateProductRequest struct {
	Name          *string  `json:"name"`
	Price         *float64 `json:"price"`
	OriginalPrice *float64 `json:"original_price"`
	Description   *string  `json:"description"`
	Brand         *string  `json:"brand"`
	MainImage     *string  `json:"main_image"`
	Stock         *int     `json:"stock"`
	Availability  *string  `json:"availability"`
	IsNew         *bool    `json:"is_new"`
	IsFeatured    *bool    `json:"is_featured"`
	IsOnSale      *bool    `json:"is_on_sale"`
}

type ProductPage struct {
	Products    []models.Product `json:"products"`
	TotalPages  int64            `json:"total_pages"`
	CurrentPage int              `json:"current_page"`
}
