package domain

import "strconv"

// MenuItem is a menu entry as the backend serves it. Price arrives as a
// decimal string ("180.00") and is parsed only when an item enters the cart.
type MenuItem struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Type        string  `json:"type"` // hot | cold | blended | dessert | seasonal | specialty
	Price       string  `json:"price"`
	Description string  `json:"description"`
	ImageURL    *string `json:"image_url"`
	IsAvailable int     `json:"is_available"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

// UnitPrice parses the backend's decimal price string.
func (m MenuItem) UnitPrice() (float64, error) {
	return strconv.ParseFloat(m.Price, 64)
}

// CartLineItem is one distinct menu item inside the cart. Price is the line
// total (unit price * quantity), not the per-unit price; the unit price is
// recovered as Price/Quantity when a mutation needs it.
type CartLineItem struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// UnitPrice derives the per-unit price from the stored pair.
func (li CartLineItem) UnitPrice() float64 {
	return li.Price / float64(li.Quantity)
}

// DeliveryDetails is collected at checkout and never persisted.
type DeliveryDetails struct {
	DeliveryAddress     string
	Phone               string
	SpecialInstructions string
}

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type User struct {
	UserID int    `json:"userId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Role   Role   `json:"role"`
}

// Order is a summary row from the order history listings.
type Order struct {
	ID                  int    `json:"id"`
	UserID              int    `json:"user_id"`
	TotalAmount         string `json:"total_amount"`
	Status              string `json:"status"` // pending | processing | completed | cancelled
	DeliveryAddress     string `json:"delivery_address"`
	Phone               string `json:"phone"`
	SpecialInstructions string `json:"special_instructions"`
	CreatedAt           string `json:"created_at"`
	UpdatedAt           string `json:"updated_at"`
}

// OrderItem is one line of a fetched order, as the backend recorded it.
type OrderItem struct {
	ID         int    `json:"id"`
	OrderID    int    `json:"order_id"`
	MenuItemID int    `json:"menu_item_id"`
	Quantity   int    `json:"quantity"`
	UnitPrice  string `json:"unit_price"`
	Subtotal   string `json:"subtotal"`
	ItemName   string `json:"item_name"`
	ItemType   string `json:"item_type"`
}

// OrderDetails is the full order view (customer identity + lines).
type OrderDetails struct {
	Order
	UserName  string      `json:"user_name"`
	UserEmail string      `json:"user_email"`
	Items     []OrderItem `json:"items"`
}
