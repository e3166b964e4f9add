/**
 * @description
 * Connector bound to a single merchant. Covers the merchant resource itself,
 * its charges (create, capture, refund, update), bank accounts and the
 * connected (Stripe) account.
 *
 * Mutating calls thread a current_user identifier into the query so the
 * service can attribute the change.
 */
package payment

import (
	"context"
	"net/http"
)

// MerchantConnector exposes the merchant-scoped endpoints of the payment
// service. It is stateless apart from the bound merchant ID.
type MerchantConnector struct {
	client *Client
	mid    string
}

// NewMerchantConnector creates a connector bound to one merchant ID.
func NewMerchantConnector(client *Client, mid string) *MerchantConnector {
	return &MerchantConnector{client: client, mid: mid}
}

// MerchantID returns the bound merchant ID.
func (m *MerchantConnector) MerchantID() string {
	return m.mid
}

func (m *MerchantConnector) basePath() string {
	return "/v1/merchants/" + m.mid
}

// GetMerchant retrieves the bound merchant. Returns nil when it does not
// exist yet.
func (m *MerchantConnector) GetMerchant(ctx context.Context) (*Merchant, error) {
	path := m.basePath()
	resp, err := m.client.request(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	raw, err := handleResponse("get", path, resp, "merchant")
	if err != nil || emptyPayload(raw) {
		return nil, err
	}
	var merchant Merchant
	if err := decodePayload(raw, &merchant); err != nil {
		return nil, err
	}
	return &merchant, nil
}

// CreateMerchant creates the bound merchant with an initial metadata map.
func (m *MerchantConnector) CreateMerchant(ctx context.Context, currentUser string, meta Params) (*Merchant, error) {
	path := m.basePath()
	query := Params{"current_user": currentUser}
	if meta != nil {
		query["meta"] = meta
	}
	resp, err := m.client.request(ctx, http.MethodPost, path, query)
	if err != nil {
		return nil, err
	}
	return m.decodeMerchant("post", path, resp)
}

// UpdateMerchant partially updates non-processor attributes of the merchant.
func (m *MerchantConnector) UpdateMerchant(ctx context.Context, currentUser string, attributes Params) (*Merchant, error) {
	path := m.basePath()
	query := Params{"current_user": currentUser}
	for key, value := range attributes {
		query[key] = value
	}
	resp, err := m.client.request(ctx, http.MethodPut, path, query)
	if err != nil {
		return nil, err
	}
	return m.decodeMerchant("put", path, resp)
}

// GetOrCreateMerchant fetches the merchant, creating it with empty metadata
// when the service does not know it yet.
func (m *MerchantConnector) GetOrCreateMerchant(ctx context.Context, currentUser string) (*Merchant, error) {
	merchant, err := m.GetMerchant(ctx)
	if err != nil || merchant != nil {
		return merchant, err
	}
	return m.CreateMerchant(ctx, currentUser, nil)
}

// GetCharges retrieves the merchant's charges with filter and pagination
// parameters.
func (m *MerchantConnector) GetCharges(ctx context.Context, query Params) (*Collection[Charge], error) {
	path := m.basePath() + "/charges"
	resp, err := m.client.request(ctx, http.MethodGet, path, query)
	if err != nil {
		return nil, err
	}
	raw, err := handleResponse("get", path, resp, "")
	if err != nil {
		return nil, err
	}
	return parseCollection[Charge](raw, "charges")
}

// GetCharge retrieves one charge. Returns nil when it does not exist.
func (m *MerchantConnector) GetCharge(ctx context.Context, chargeID string) (*Charge, error) {
	path := m.basePath() + "/charges/" + chargeID
	resp, err := m.client.request(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	raw, err := handleResponse("get", path, resp, "charge")
	if err != nil || emptyPayload(raw) {
		return nil, err
	}
	var charge Charge
	if err := decodePayload(raw, &charge); err != nil {
		return nil, err
	}
	return &charge, nil
}

// CreateCharge submits a new charge. Parameters are validated locally before
// any network call; see verifyChargeParams.
func (m *MerchantConnector) CreateCharge(ctx context.Context, currentUser string, params Params) (*Charge, error) {
	if err := verifyChargeParams(params); err != nil {
		return nil, err
	}
	path := m.basePath() + "/charges"
	query := Params{"current_user": currentUser}
	for key, value := range params {
		query[key] = value
	}
	resp, err := m.client.request(ctx, http.MethodPost, path, query)
	if err != nil {
		return nil, err
	}
	return m.decodeCharge("post", path, resp)
}

// CaptureCharge captures a previously authorized, uncaptured charge.
func (m *MerchantConnector) CaptureCharge(ctx context.Context, currentUser, chargeID string) (*Charge, error) {
	path := m.basePath() + "/charges/" + chargeID + "/capture"
	query := Params{"current_user": currentUser}
	resp, err := m.client.request(ctx, http.MethodPost, path, query)
	if err != nil {
		return nil, err
	}
	return m.decodeCharge("post", path, resp)
}

// CreateRefund refunds part or all of a charge.
func (m *MerchantConnector) CreateRefund(ctx context.Context, currentUser, chargeID string, amountRefundedCents int64) (*Charge, error) {
	path := m.basePath() + "/charges/" + chargeID + "/refund"
	query := Params{
		"current_user":          currentUser,
		"amount_refunded_cents": amountRefundedCents,
	}
	resp, err := m.client.request(ctx, http.MethodPost, path, query)
	if err != nil {
		return nil, err
	}
	return m.decodeCharge("post", path, resp)
}

// UpdateCharge partially updates a charge's attributes.
func (m *MerchantConnector) UpdateCharge(ctx context.Context, currentUser, chargeID string, attributes Params) (*Charge, error) {
	path := m.basePath() + "/charges/" + chargeID
	query := Params{"current_user": currentUser}
	for key, value := range attributes {
		query[key] = value
	}
	resp, err := m.client.request(ctx, http.MethodPut, path, query)
	if err != nil {
		return nil, err
	}
	return m.decodeCharge("put", path, resp)
}

// AddBankAccount attaches a new bank account, identified by a token minted
// through the processor's API.
func (m *MerchantConnector) AddBankAccount(ctx context.Context, currentUser, bankToken string) (*BankAccount, error) {
	path := m.basePath() + "/bank_accounts"
	query := Params{
		"current_user": currentUser,
		"bank_token":   bankToken,
	}
	resp, err := m.client.request(ctx, http.MethodPost, path, query)
	if err != nil {
		return nil, err
	}
	raw, err := handleResponse("post", path, resp, "")
	if err != nil || emptyPayload(raw) {
		return nil, err
	}
	var account BankAccount
	if err := decodePayload(raw, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// AddStripeAccount creates or edits the merchant's connected account. The
// same endpoint serves both; payload carries the legal entity and any other
// processor attributes.
func (m *MerchantConnector) AddStripeAccount(ctx context.Context, currentUser string, payload Params) (*Merchant, error) {
	path := m.basePath() + "/stripe"
	query := Params{"current_user": currentUser}
	for key, value := range payload {
		query[key] = value
	}
	resp, err := m.client.request(ctx, http.MethodPut, path, query)
	if err != nil {
		return nil, err
	}
	return m.decodeMerchant("put", path, resp)
}

func (m *MerchantConnector) decodeMerchant(verb, path string, resp *http.Response) (*Merchant, error) {
	raw, err := handleResponse(verb, path, resp, "")
	if err != nil || emptyPayload(raw) {
		return nil, err
	}
	var merchant Merchant
	if err := decodePayload(raw, &merchant); err != nil {
		return nil, err
	}
	return &merchant, nil
}

func (m *MerchantConnector) decodeCharge(verb, path string, resp *http.Response) (*Charge, error) {
	raw, err := handleResponse(verb, path, resp, "")
	if err != nil || emptyPayload(raw) {
		return nil, err
	}
	var charge Charge
	if err := decodePayload(raw, &charge); err != nil {
		return nil, err
	}
	return &charge, nil
}
