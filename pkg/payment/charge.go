package payment

import (
	"strings"
	"time"
)

// Charge is a single payment taken for a merchant.
type Charge struct {
	ChargeID            string   `json:"charge_id,omitempty"`
	Status              string   `json:"status,omitempty"`
	AmountCents         int64    `json:"amount_cents,omitempty"`
	AmountRefundedCents int64    `json:"amount_refunded_cents,omitempty"`
	Currency            string   `json:"currency,omitempty"`
	Captured            bool     `json:"captured,omitempty"`
	CustomerName        string   `json:"customer_name,omitempty"`
	CustomerAddress     string   `json:"customer_address,omitempty"`
	CustomerEmail       string   `json:"customer_email,omitempty"`
	CreditCardBrand     string   `json:"credit_card_brand,omitempty"`
	CreditCardLast4     string   `json:"credit_card_last4,omitempty"`
	Services            []string `json:"services,omitempty"`
	Description         string   `json:"description,omitempty"`
	CreatedAt           string   `json:"created_at,omitempty"`
}

// Compare orders charges by their identifier. It returns -1, 0 or 1 in the
// manner of strings.Compare.
func (c Charge) Compare(other Charge) int {
	return strings.Compare(c.ChargeID, other.ChargeID)
}

// CreatedDate parses created_at; zero time when unset or malformed.
func (c Charge) CreatedDate() time.Time {
	return parseDate(c.CreatedAt)
}
