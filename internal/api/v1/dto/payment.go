package dto

type PaymentCreateRequest struct {
	PackageID string `json:"package_id" validate:"required"`
}

type PaymentResponse struct {
	CheckoutURL string `json:"checkout_url"`
	OrderID     string `json:"order_id"`
}

// WebhookRequest is the gateway's server callback envelope. Fields beyond
// order_id and order_status are ignored.
type WebhookRequest struct {
	Response struct {
		OrderID     string `json:"order_id"`
		OrderStatus string `json:"order_status"`
	} `json:"response"`
}

// WebhookAck is always delivered with HTTP 200 so the gateway does not
// treat a logical mismatch as a delivery failure worth retrying.
type WebhookAck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

type DemoActivationResponse struct {
	Message string `json:"message"`
	Expires string `json:"expires"`
}
