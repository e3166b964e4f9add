package payment

import "time"

// Evidence is the flat bundle of counter-evidence a merchant can attach to a
// dispute. Every field is optional free text.
type Evidence struct {
	ProductDescription     string `json:"product_description,omitempty"`
	CustomerName           string `json:"customer_name,omitempty"`
	CustomerEmailAddress   string `json:"customer_email_address,omitempty"`
	BillingAddress         string `json:"billing_address,omitempty"`
	Receipt                string `json:"receipt,omitempty"`
	CustomerSignature      string `json:"customer_signature,omitempty"`
	CustomerCommunication  string `json:"customer_communication,omitempty"`
	UncategorizedFile      string `json:"uncategorized_file,omitempty"`
	UncategorizedText      string `json:"uncategorized_text,omitempty"`
	ServiceDate            string `json:"service_date,omitempty"`
	ServiceDocumentation   string `json:"service_documentation,omitempty"`
	ShippingAddress        string `json:"shipping_address,omitempty"`
	ShippingCarrier        string `json:"shipping_carrier,omitempty"`
	ShippingDate           string `json:"shipping_date,omitempty"`
	ShippingDocumentation  string `json:"shipping_documentation,omitempty"`
	ShippingTrackingNumber string `json:"shipping_tracking_number,omitempty"`
}

// Params renders the populated evidence fields as request parameters.
func (e Evidence) Params() (Params, error) {
	return structParams(e)
}

// Dispute is a chargeback raised against a merchant's charge.
type Dispute struct {
	ID              string    `json:"id,omitempty"`
	Status          string    `json:"status,omitempty"`
	Reason          string    `json:"reason,omitempty"`
	AmountCents     int64     `json:"amount_cents,omitempty"`
	Currency        string    `json:"currency,omitempty"`
	MerchantID      string    `json:"merchant_id,omitempty"`
	HasEvidence     bool      `json:"has_evidence,omitempty"`
	PastDue         bool      `json:"past_due,omitempty"`
	SubmissionCount int       `json:"submission_count,omitempty"`
	Evidence        *Evidence `json:"evidence,omitempty"`
	DueBy           string    `json:"due_by,omitempty"`
	CreatedAt       string    `json:"created_at,omitempty"`
	Charge          *Charge   `json:"charge,omitempty"`
}

// DueByDate parses due_by; zero time when unset or malformed.
func (d *Dispute) DueByDate() time.Time {
	return parseDate(d.DueBy)
}

// CreatedDate parses created_at; zero time when unset or malformed.
func (d *Dispute) CreatedDate() time.Time {
	return parseDate(d.CreatedAt)
}
