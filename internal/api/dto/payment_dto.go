package dto

// CreatePaymentIntentRequest payload.
type CreatePaymentIntentRequest struct {
	Price Number `json:"price"`
}

// PaymentIntentResponse returns the provider-side client secret.
type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}
