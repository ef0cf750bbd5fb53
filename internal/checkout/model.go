package checkout

type Customer struct {
	Email   string
	Name    string
	Address string
}

type CreatePaymentParams struct {
	// Amount is the decimal total the client expects to pay, e.g. "897.00".
	Amount    string
	SessionID string
	Customer  Customer
}

type PaymentIntentResult struct {
	ClientSecret string `json:"clientSecret"`
	OrderID      string `json:"orderId"`
}
