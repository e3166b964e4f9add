package payment

// Merchant is the top-level resource of the payment service. Its processor
// state lives in the embedded connected account under "stripe".
type Merchant struct {
	ID                    string            `json:"id,omitempty"`
	Meta                  map[string]any    `json:"meta,omitempty"`
	Stripe                *ConnectedAccount `json:"stripe,omitempty"`
	StripePublishableKey  string            `json:"stripe_publishable_key,omitempty"`
	DailyChargeLimitCents int64             `json:"daily_charge_limit_cents,omitempty"`
}

// Country is an entry of the supported-countries reference list.
type Country struct {
	Code string `json:"code"`
	Name string `json:"name,omitempty"`
}

// VerificationFields lists the legal-entity fields a country requires before
// a connected account can charge and receive payouts.
type VerificationFields struct {
	Minimum    []string `json:"minimum,omitempty"`
	Additional []string `json:"additional,omitempty"`
}

// TaxCalculation is the service's answer to a tax query for a given amount
// and country.
type TaxCalculation struct {
	AmountCents int64   `json:"amount_cents"`
	TaxCents    int64   `json:"tax_cents"`
	TotalCents  int64   `json:"total_cents"`
	Rate        float64 `json:"rate"`
	Country     string  `json:"country,omitempty"`
	VatID       string  `json:"vat_id,omitempty"`
}
