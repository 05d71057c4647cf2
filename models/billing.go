package models

// CheckoutRequest checkout session creation input
type CheckoutRequest struct {
	Amount   float64 `json:"amount" binding:"required"`
	Currency string  `json:"currency"`
}

// CheckoutResponse redirect target returned by the payment gateway
type CheckoutResponse struct {
	URL string `json:"url"`
}

// CheckoutConfirmRequest gateway confirmation callback input
type CheckoutConfirmRequest struct {
	UserID    string `json:"userId" binding:"required"`
	Reference string `json:"reference" binding:"required"`
	Secret    string `json:"secret" binding:"required"`
}
