/**
 * @description
 * Value objects for the connected (Stripe) account graph embedded in merchant
 * responses: legal entity, address, date of birth, additional owners,
 * verification state and bank accounts.
 *
 * @notes
 * - Fields are declared explicitly per object; unknown keys in a response are
 *   dropped during decoding.
 * - additional_owners is polymorphic on the wire (array, index-keyed object,
 *   or the "" sentinel meaning "delete all owners") and normalizes into the
 *   AdditionalOwners union type.
 */
package payment

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// ConnectedAccount is the payment-processor sub-account attached to a
// merchant: verification state, capabilities and payout targets.
type ConnectedAccount struct {
	AccountID                  string         `json:"account_id,omitempty"`
	ActiveBankAccounts         []BankAccount  `json:"active_bank_accounts,omitempty"`
	ChargesCount               int            `json:"charges_count,omitempty"`
	LastChargeCreatedAt        string         `json:"last_charge_created_at,omitempty"`
	LegalEntity                *LegalEntity   `json:"legal_entity,omitempty"`
	Meta                       map[string]any `json:"meta,omitempty"`
	PublishableKey             string         `json:"publishable_key,omitempty"`
	VerificationDisabledReason string         `json:"verification_disabled_reason,omitempty"`
	VerificationDueBy          string         `json:"verification_due_by,omitempty"`
	VerificationFieldsNeeded   []string       `json:"verification_fields_needed,omitempty"`
	TransfersEnabled           bool           `json:"transfers_enabled,omitempty"`
	ChargesEnabled             bool           `json:"charges_enabled,omitempty"`
	Country                    string         `json:"country,omitempty"`
}

// AccountExists reports whether a processor account has been created.
func (a *ConnectedAccount) AccountExists() bool {
	return a.AccountID != ""
}

// AccountActive reports whether the account exists and verification has not
// disabled it.
func (a *ConnectedAccount) AccountActive() bool {
	return a.AccountID != "" && a.VerificationDisabledReason == ""
}

// DisabledReason renders the verification_disabled_reason code for display,
// e.g. "fields_needed" -> "fields needed".
func (a *ConnectedAccount) DisabledReason() string {
	return strings.ReplaceAll(a.VerificationDisabledReason, "_", " ")
}

// FieldsNeeded renders the missing-field codes for display. Codes like
// "legal_entity.dob.day" become "Legal Entity Dob Day", joined by commas.
func (a *ConnectedAccount) FieldsNeeded() string {
	formatted := make([]string, 0, len(a.VerificationFieldsNeeded))
	for _, field := range a.VerificationFieldsNeeded {
		parts := strings.FieldsFunc(field, func(r rune) bool {
			return r == '.' || r == '_'
		})
		for i, part := range parts {
			parts[i] = capitalize(part)
		}
		formatted = append(formatted, strings.Join(parts, " "))
	}
	return strings.Join(formatted, ", ")
}

// UpdateUntil parses verification_due_by; zero time when unset or malformed.
func (a *ConnectedAccount) UpdateUntil() time.Time {
	return parseDate(a.VerificationDueBy)
}

// LastCharge parses last_charge_created_at; zero time when unset or malformed.
func (a *ConnectedAccount) LastCharge() time.Time {
	return parseDate(a.LastChargeCreatedAt)
}

// LegalEntity is the identity record required for processor verification.
type LegalEntity struct {
	AdditionalOwners      *AdditionalOwners `json:"additional_owners,omitempty"`
	Address               *Address          `json:"address,omitempty"`
	BusinessName          string            `json:"business_name,omitempty"`
	BusinessTaxID         string            `json:"business_tax_id,omitempty"`
	BusinessTaxIDProvided bool              `json:"business_tax_id_provided,omitempty"`
	DOB                   *DateOfBirth      `json:"dob,omitempty"`
	FirstName             string            `json:"first_name,omitempty"`
	LastName              string            `json:"last_name,omitempty"`
	Type                  string            `json:"type,omitempty"`
	Verification          *Verification     `json:"verification,omitempty"`
}

func (le *LegalEntity) UnmarshalJSON(data []byte) error {
	type alias LegalEntity
	var decoded alias
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*le = LegalEntity(decoded)
	le.normalizeOwners()
	return nil
}

// normalizeOwners enforces the owner invariant: an individual entity, or one
// with a single owner overall, carries the clear sentinel so the processor
// deletes any previously added additional owners instead of keeping them.
func (le *LegalEntity) normalizeOwners() {
	if le.Type == "individual" || le.NumberOfOwners() == 1 {
		le.AdditionalOwners = &AdditionalOwners{Clear: true}
	}
}

// NumberOfOwners counts the account owners. Every account has at least one
// owner; company accounts may list additional ones.
func (le *LegalEntity) NumberOfOwners() int {
	if le.AdditionalOwners == nil || le.AdditionalOwners.Clear {
		return 1
	}
	return len(le.AdditionalOwners.Owners) + 1
}

// ClearAdditionalOwners marks all previously added owners for deletion.
func (le *LegalEntity) ClearAdditionalOwners() {
	le.AdditionalOwners = &AdditionalOwners{Clear: true}
}

// SetAdditionalOwners replaces the owner list. There is no such thing as
// editing a single owner; the list is always rebuilt as a whole.
func (le *LegalEntity) SetAdditionalOwners(owners []AdditionalOwner) {
	le.AdditionalOwners = &AdditionalOwners{Owners: owners}
	le.normalizeOwners()
}

// Params renders the legal entity as request parameters for the
// connected-account endpoint.
func (le *LegalEntity) Params() (Params, error) {
	return structParams(le)
}

// AdditionalOwners is the three-way union carried by the additional_owners
// field: a list of owners, the "delete all owners" sentinel (Clear), or
// absent entirely (a nil *AdditionalOwners).
type AdditionalOwners struct {
	Owners []AdditionalOwner
	Clear  bool
}

func (ao *AdditionalOwners) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*ao = AdditionalOwners{}
		return nil
	}

	switch trimmed[0] {
	case '"':
		// The service signals "delete all owners" with an empty string.
		*ao = AdditionalOwners{Clear: true}
		return nil
	case '[':
		var owners []AdditionalOwner
		if err := json.Unmarshal(trimmed, &owners); err != nil {
			return err
		}
		*ao = AdditionalOwners{Owners: owners}
		return nil
	case '{':
		// Index-keyed form submissions arrive as {"0": {...}, "1": {...}}.
		var indexed map[string]AdditionalOwner
		if err := json.Unmarshal(trimmed, &indexed); err != nil {
			return err
		}
		keys := make([]string, 0, len(indexed))
		for key := range indexed {
			keys = append(keys, key)
		}
		sort.Slice(keys, func(i, j int) bool {
			a, errA := strconv.Atoi(keys[i])
			b, errB := strconv.Atoi(keys[j])
			if errA != nil || errB != nil {
				return keys[i] < keys[j]
			}
			return a < b
		})
		owners := make([]AdditionalOwner, 0, len(keys))
		for _, key := range keys {
			owners = append(owners, indexed[key])
		}
		*ao = AdditionalOwners{Owners: owners}
		return nil
	default:
		return fmt.Errorf("unsupported additional_owners payload: %s", trimmed)
	}
}

func (ao AdditionalOwners) MarshalJSON() ([]byte, error) {
	if ao.Clear {
		return json.Marshal("")
	}
	return json.Marshal(ao.Owners)
}

// AdditionalOwner is one extra owner of a company-type account.
type AdditionalOwner struct {
	FirstName    string        `json:"first_name,omitempty"`
	LastName     string        `json:"last_name,omitempty"`
	DOB          *DateOfBirth  `json:"dob,omitempty"`
	Address      *Address      `json:"address,omitempty"`
	Verification *Verification `json:"verification,omitempty"`
}

// DateOfBirth holds day, month and year as independently optional fields.
// The wire value of each may be a number, a numeric string, or empty.
type DateOfBirth struct {
	Day   *int `json:"day,omitempty"`
	Month *int `json:"month,omitempty"`
	Year  *int `json:"year,omitempty"`
}

func (d *DateOfBirth) UnmarshalJSON(data []byte) error {
	var fields struct {
		Day   json.RawMessage `json:"day"`
		Month json.RawMessage `json:"month"`
		Year  json.RawMessage `json:"year"`
	}
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	d.Day = coerceInt(fields.Day)
	d.Month = coerceInt(fields.Month)
	d.Year = coerceInt(fields.Year)
	return nil
}

// Date converts to a calendar date. The second return value is false unless
// day, month and year are all present.
func (d *DateOfBirth) Date() (time.Time, bool) {
	if d == nil || d.Day == nil || d.Month == nil || d.Year == nil {
		return time.Time{}, false
	}
	return time.Date(*d.Year, time.Month(*d.Month), *d.Day, 0, 0, 0, 0, time.UTC), true
}

// SetDate populates day, month and year from a calendar date. A zero date is
// ignored and leaves the stored fields untouched.
func (d *DateOfBirth) SetDate(date time.Time) {
	if date.IsZero() {
		return
	}
	year, month, day := date.Date()
	monthInt := int(month)
	d.Year = &year
	d.Month = &monthInt
	d.Day = &day
}

// coerceInt accepts a JSON number or a string of digits; anything else
// (null, "", garbage) yields nil rather than an error.
func coerceInt(raw json.RawMessage) *int {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	var n int
	if err := json.Unmarshal(trimmed, &n); err == nil {
		return &n
	}
	var s string
	if err := json.Unmarshal(trimmed, &s); err == nil {
		if parsed, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			return &parsed
		}
	}
	return nil
}

// Address is a postal address attached to a legal entity or owner.
type Address struct {
	City       string `json:"city,omitempty"`
	Country    string `json:"country,omitempty"`
	Line1      string `json:"line1,omitempty"`
	Line2      string `json:"line2,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
	State      string `json:"state,omitempty"`
}

// Verification is the document-verification state of an entity or owner.
type Verification struct {
	Details     string `json:"details,omitempty"`
	DetailsCode string `json:"details_code,omitempty"`
	Document    string `json:"document,omitempty"`
	Status      string `json:"status,omitempty"`
}

// BankAccount is an active payout bank account on a connected account.
type BankAccount struct {
	BankName  string `json:"bank_name,omitempty"`
	Currency  string `json:"currency,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
	Last4     string `json:"last4,omitempty"`
	Name      string `json:"name,omitempty"`
	Status    string `json:"status,omitempty"`
}

// DateCreated parses created_at; zero time when unset or malformed.
func (b *BankAccount) DateCreated() time.Time {
	return parseDate(b.CreatedAt)
}

// parseDate parses the ISO-ish timestamps the service emits. Empty and
// malformed values yield the zero time instead of an error.
func parseDate(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	for _, layout := range []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02",
	} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}

func capitalize(word string) string {
	if word == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(word)
	return string(unicode.ToUpper(r)) + strings.ToLower(word[size:])
}
