package domain

// OrderRequestItem mirrors one cart line at submission time. UnitPrice is
// derived from the line total right before the request is built.
type OrderRequestItem struct {
	MenuItemID int     `json:"menuItemId"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unitPrice"`
}

// OrderRequest is the POST /orders/create body.
type OrderRequest struct {
	Items               []OrderRequestItem `json:"items"`
	TotalAmount         float64            `json:"totalAmount"`
	DeliveryAddress     string             `json:"deliveryAddress"`
	Phone               string             `json:"phone"`
	SpecialInstructions string             `json:"specialInstructions"`
}

// Envelope is the backend's common response wrapper.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type SigninRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// LoginData is the payload of a successful signin/signup.
type LoginData struct {
	UserID int    `json:"userId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Role   Role   `json:"role"`
	Token  string `json:"token"`
}

type LoginResponse struct {
	Envelope
	Data *LoginData `json:"data,omitempty"`
}

// MenuResponse groups menu items by category.
type MenuResponse struct {
	Envelope
	Data map[string][]MenuItem `json:"data"`
}

type Pagination struct {
	CurrentPage int `json:"currentPage"`
	TotalPages  int `json:"totalPages"`
	TotalItems  int `json:"totalItems"`
}

type OrdersResponse struct {
	Envelope
	Data       []Order    `json:"data"`
	Pagination Pagination `json:"pagination"`
}

type OrderDetailsResponse struct {
	Envelope
	Data OrderDetails `json:"data"`
}

// MenuItemForm is the admin menu-creation payload.
type MenuItemForm struct {
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	Price       string  `json:"price"`
	Description string  `json:"description"`
	ImageURL    *string `json:"image_url,omitempty"`
	IsAvailable int     `json:"is_available"`
}

// StatusUpdateRequest is the PUT /orders/status body (admin only).
type StatusUpdateRequest struct {
	OrderID int    `json:"orderId"`
	Status  string `json:"status"`
}

// DeleteMenuItemRequest is the DELETE /menu/delete body (admin only).
type DeleteMenuItemRequest struct {
	ID int `json:"id"`
}
