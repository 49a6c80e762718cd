package domain

// PaymentSession points the browser into the gateway's hosted payment page.
// This system does not implement the payment protocol; the token is the only
// handle it holds on the gateway-side state machine.
type PaymentSession struct {
	OrderID   string `json:"orderID"`
	Token     string `json:"token"`
	IframeURL string `json:"iframeURL"`
}
