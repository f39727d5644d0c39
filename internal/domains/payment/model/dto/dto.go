package dto

import (
	"paradasia/infras/paystack"
)

// InitializePaymentResponse hands the client the gateway checkout handle. No
// booking exists yet; one materializes only when the gateway confirms payment.
type InitializePaymentResponse struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

func (r *InitializePaymentResponse) FromData(data paystack.InitializeData) {
	r.AuthorizationURL = data.AuthorizationURL
	r.AccessCode = data.AccessCode
	r.Reference = data.Reference
}

// WebhookCustomer is the paying customer as reported by the gateway.
type WebhookCustomer struct {
	Email string `json:"email"`
}

// WebhookData is the charge payload inside a gateway webhook. Amount is in
// minor currency units, as the gateway reports it.
type WebhookData struct {
	Reference string            `json:"reference"`
	Amount    int64             `json:"amount"`
	Currency  string            `json:"currency"`
	Customer  WebhookCustomer   `json:"customer"`
	Metadata  paystack.Metadata `json:"metadata"`
}

// WebhookEvent is the envelope the gateway posts to the webhook endpoint.
type WebhookEvent struct {
	Event string      `json:"event"`
	Data  WebhookData `json:"data"`
}
