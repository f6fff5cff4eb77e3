package dto

// PlanResponse describes the single premium plan shown in the upgrade modal.
type PlanResponse struct {
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
	Currency string   `json:"currency"`
	Period   string   `json:"period"`
	Features []string `json:"features"`
}

type CheckoutResponse struct {
	OrderId     string `json:"order_id"`
	SnapToken   string `json:"snap_token"`
	RedirectURL string `json:"redirect_url"`
}

// MidtransWebhookRequest is the subset of the notification payload the
// upgrade flow cares about.
type MidtransWebhookRequest struct {
	OrderId           string `json:"order_id"`
	TransactionStatus string `json:"transaction_status"`
	FraudStatus       string `json:"fraud_status"`
	SignatureKey      string `json:"signature_key"`
	StatusCode        string `json:"status_code"`
	GrossAmount       string `json:"gross_amount"`
}

type UpgradeStatusResponse struct {
	IsPremium bool   `json:"is_premium"`
	OrderId   string `json:"order_id,omitempty"`
	Status    string `json:"status,omitempty"`
}
