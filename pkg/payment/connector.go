/**
 * @description
 * Top-level connector for resources that are not bound to a single merchant:
 * the merchant directory, disputes, and country/tax reference data.
 *
 * Each method builds a path and a query, performs one authenticated request
 * through the shared Client, and classifies the response. Absent resources
 * (HTTP 404) come back as nil without an error.
 */
package payment

import (
	"context"
	"net/http"
)

// Connector exposes the unscoped endpoints of the payment service.
type Connector struct {
	client *Client
}

// NewConnector creates a Connector on top of an existing Client.
func NewConnector(client *Client) *Connector {
	return &Connector{client: client}
}

// GetMerchants retrieves a filtered, paginated list of merchants. query
// carries filter and cursor parameters (limit, start, ...).
func (c *Connector) GetMerchants(ctx context.Context, query Params) (*Collection[Merchant], error) {
	path := "/v1/merchants/"
	resp, err := c.client.request(ctx, http.MethodGet, path, query)
	if err != nil {
		return nil, err
	}
	raw, err := handleResponse("get", path, resp, "")
	if err != nil {
		return nil, err
	}
	return parseCollection[Merchant](raw, "merchants")
}

// GetDisputes retrieves a filtered, paginated list of disputes.
func (c *Connector) GetDisputes(ctx context.Context, query Params) (*Collection[Dispute], error) {
	path := "/v1/disputes/"
	resp, err := c.client.request(ctx, http.MethodGet, path, query)
	if err != nil {
		return nil, err
	}
	raw, err := handleResponse("get", path, resp, "")
	if err != nil {
		return nil, err
	}
	return parseCollection[Dispute](raw, "disputes")
}

// GetDispute retrieves a single dispute. Returns nil when it does not exist.
func (c *Connector) GetDispute(ctx context.Context, disputeID string) (*Dispute, error) {
	path := "/v1/disputes/" + disputeID
	resp, err := c.client.request(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	raw, err := handleResponse("get", path, resp, "dispute")
	if err != nil || emptyPayload(raw) {
		return nil, err
	}
	var dispute Dispute
	if err := decodePayload(raw, &dispute); err != nil {
		return nil, err
	}
	return &dispute, nil
}

// UpdateDispute attaches new evidence to a dispute on behalf of currentUser.
func (c *Connector) UpdateDispute(ctx context.Context, currentUser, disputeID string, evidence Evidence) (*Dispute, error) {
	evidenceParams, err := evidence.Params()
	if err != nil {
		return nil, err
	}
	path := "/v1/disputes/" + disputeID
	query := Params{
		"current_user": currentUser,
		"evidence":     evidenceParams,
	}
	resp, err := c.client.request(ctx, http.MethodPut, path, query)
	if err != nil {
		return nil, err
	}
	raw, err := handleResponse("put", path, resp, "")
	if err != nil || emptyPayload(raw) {
		return nil, err
	}
	var dispute Dispute
	if err := decodePayload(raw, &dispute); err != nil {
		return nil, err
	}
	return &dispute, nil
}

// GetCountries lists the countries the payment service supports.
func (c *Connector) GetCountries(ctx context.Context) ([]Country, error) {
	path := "/v1/countries/"
	resp, err := c.client.request(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	raw, err := handleResponse("get", path, resp, "countries")
	if err != nil || emptyPayload(raw) {
		return nil, err
	}
	var countries []Country
	if err := decodePayload(raw, &countries); err != nil {
		return nil, err
	}
	return countries, nil
}

// GetVerificationFields retrieves the legal-entity fields a country requires
// for connected-account verification.
func (c *Connector) GetVerificationFields(ctx context.Context, countryCode string) (*VerificationFields, error) {
	path := "/v1/countries/" + countryCode + "/verification_fields"
	resp, err := c.client.request(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	raw, err := handleResponse("get", path, resp, "verification_fields")
	if err != nil || emptyPayload(raw) {
		return nil, err
	}
	var fields VerificationFields
	if err := decodePayload(raw, &fields); err != nil {
		return nil, err
	}
	return &fields, nil
}

// GetBankAccountCurrencies retrieves the currencies a country's bank accounts
// may be denominated in.
func (c *Connector) GetBankAccountCurrencies(ctx context.Context, countryCode string) ([]string, error) {
	path := "/v1/countries/" + countryCode + "/bank_account_currencies"
	resp, err := c.client.request(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	raw, err := handleResponse("get", path, resp, "currencies")
	if err != nil || emptyPayload(raw) {
		return nil, err
	}
	var currencies []string
	if err := decodePayload(raw, &currencies); err != nil {
		return nil, err
	}
	return currencies, nil
}

// CalculateTax asks the service for the tax due on an amount. query carries
// amount_cents, country and optionally vat_id.
func (c *Connector) CalculateTax(ctx context.Context, query Params) (*TaxCalculation, error) {
	path := "/v1/taxes/"
	resp, err := c.client.request(ctx, http.MethodGet, path, query)
	if err != nil {
		return nil, err
	}
	raw, err := handleResponse("get", path, resp, "tax")
	if err != nil || emptyPayload(raw) {
		return nil, err
	}
	var tax TaxCalculation
	if err := decodePayload(raw, &tax); err != nil {
		return nil, err
	}
	return &tax, nil
}
