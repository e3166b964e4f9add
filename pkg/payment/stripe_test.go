package payment

import (
	"encoding/json"
	"testing"
	"time"
)

func TestLegalEntity_NumberOfOwners(t *testing.T) {
	var entity LegalEntity
	payload := `{
		"type": "company",
		"additional_owners": [
			{"first_name": "Ada"},
			{"first_name": "Grace"}
		]
	}`
	if err := json.Unmarshal([]byte(payload), &entity); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if got := entity.NumberOfOwners(); got != 3 {
		t.Fatalf("expected 3 owners, got %d", got)
	}

	entity.ClearAdditionalOwners()
	if got := entity.NumberOfOwners(); got != 1 {
		t.Fatalf("expected 1 owner after clearing, got %d", got)
	}
}

func TestLegalEntity_IndividualForcesClearSentinel(t *testing.T) {
	var entity LegalEntity
	payload := `{
		"type": "individual",
		"additional_owners": [{"first_name": "Ada"}]
	}`
	if err := json.Unmarshal([]byte(payload), &entity); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if entity.AdditionalOwners == nil || !entity.AdditionalOwners.Clear {
		t.Fatalf("expected the clear sentinel for an individual entity, got %+v", entity.AdditionalOwners)
	}
	if got := entity.NumberOfOwners(); got != 1 {
		t.Fatalf("expected 1 owner, got %d", got)
	}

	data, err := json.Marshal(&entity)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var roundTrip map[string]any
	if err := json.Unmarshal(data, &roundTrip); err != nil {
		t.Fatalf("round trip decode failed: %v", err)
	}
	if sentinel, ok := roundTrip["additional_owners"].(string); !ok || sentinel != "" {
		t.Fatalf(`expected additional_owners to serialize as "", got %v`, roundTrip["additional_owners"])
	}
}

func TestLegalEntity_EmptyOwnerListNormalizesToSentinel(t *testing.T) {
	var entity LegalEntity
	if err := json.Unmarshal([]byte(`{"type": "company", "additional_owners": []}`), &entity); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if entity.AdditionalOwners == nil || !entity.AdditionalOwners.Clear {
		t.Fatalf("expected the clear sentinel for an empty owner list, got %+v", entity.AdditionalOwners)
	}
}

func TestAdditionalOwners_SentinelString(t *testing.T) {
	var entity LegalEntity
	if err := json.Unmarshal([]byte(`{"additional_owners": ""}`), &entity); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if entity.AdditionalOwners == nil || !entity.AdditionalOwners.Clear {
		t.Fatalf("expected the clear sentinel, got %+v", entity.AdditionalOwners)
	}
}

func TestAdditionalOwners_IndexKeyedMapPreservesOrder(t *testing.T) {
	var owners AdditionalOwners
	payload := `{
		"2": {"first_name": "Edsger"},
		"0": {"first_name": "Ada"},
		"10": {"first_name": "Grace"},
		"1": {"first_name": "Alan"}
	}`
	if err := json.Unmarshal([]byte(payload), &owners); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	want := []string{"Ada", "Alan", "Edsger", "Grace"}
	if len(owners.Owners) != len(want) {
		t.Fatalf("expected %d owners, got %d", len(want), len(owners.Owners))
	}
	for i, name := range want {
		if owners.Owners[i].FirstName != name {
			t.Fatalf("owner %d: expected %q, got %q", i, name, owners.Owners[i].FirstName)
		}
	}
}

func TestDateOfBirth_RoundTrip(t *testing.T) {
	var dob DateOfBirth
	date := time.Date(1984, time.March, 28, 0, 0, 0, 0, time.UTC)
	dob.SetDate(date)

	got, ok := dob.Date()
	if !ok {
		t.Fatal("expected a convertible date of birth")
	}
	if !got.Equal(date) {
		t.Fatalf("expected %v, got %v", date, got)
	}
}

func TestDateOfBirth_IncompleteYieldsNoDate(t *testing.T) {
	var dob DateOfBirth
	if err := json.Unmarshal([]byte(`{"day": 28, "month": 3}`), &dob); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if _, ok := dob.Date(); ok {
		t.Fatal("expected no date when the year is missing")
	}
}

func TestDateOfBirth_EmptyStringsYieldNoDate(t *testing.T) {
	var dob DateOfBirth
	if err := json.Unmarshal([]byte(`{"day": "28", "month": "3", "year": ""}`), &dob); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if _, ok := dob.Date(); ok {
		t.Fatal("expected no date when the year is empty")
	}
	if dob.Day == nil || *dob.Day != 28 {
		t.Fatalf("expected day 28 from string digits, got %v", dob.Day)
	}
}

func TestDateOfBirth_ZeroDateDoesNotMutate(t *testing.T) {
	var dob DateOfBirth
	dob.SetDate(time.Date(1984, time.March, 28, 0, 0, 0, 0, time.UTC))
	dob.SetDate(time.Time{})

	got, ok := dob.Date()
	if !ok || got.Year() != 1984 {
		t.Fatalf("expected the stored date to survive a zero-date set, got %v (ok=%v)", got, ok)
	}
}

func TestConnectedAccount_AccountActive(t *testing.T) {
	account := ConnectedAccount{AccountID: "acct_1"}
	if !account.AccountActive() {
		t.Fatal("expected an account with an ID and no disabled reason to be active")
	}

	account.VerificationDisabledReason = "fields_needed"
	if account.AccountActive() {
		t.Fatal("expected a disabled account to be inactive")
	}

	var missing ConnectedAccount
	if missing.AccountActive() || missing.AccountExists() {
		t.Fatal("expected an account without an ID to be absent and inactive")
	}
}

func TestConnectedAccount_DisabledReasonFormatting(t *testing.T) {
	account := ConnectedAccount{VerificationDisabledReason: "rejected_fraud"}
	if got := account.DisabledReason(); got != "rejected fraud" {
		t.Fatalf("unexpected disabled reason %q", got)
	}

	var clean ConnectedAccount
	if got := clean.DisabledReason(); got != "" {
		t.Fatalf("expected empty reason, got %q", got)
	}
}

func TestConnectedAccount_FieldsNeededFormatting(t *testing.T) {
	account := ConnectedAccount{
		VerificationFieldsNeeded: []string{
			"legal_entity.dob.day",
			"bank_account",
		},
	}
	want := "Legal Entity Dob Day, Bank Account"
	if got := account.FieldsNeeded(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestConnectedAccount_DateAccessorsTolerateBadInput(t *testing.T) {
	account := ConnectedAccount{
		VerificationDueBy:   "2024-06-01T10:30:00Z",
		LastChargeCreatedAt: "not a date",
	}
	if account.UpdateUntil().IsZero() {
		t.Fatal("expected a parsed due-by date")
	}
	if !account.LastCharge().IsZero() {
		t.Fatal("expected the zero time for a malformed date")
	}
}

func TestBankAccount_DateCreated(t *testing.T) {
	account := BankAccount{CreatedAt: "2023-11-05"}
	if got := account.DateCreated(); got.Year() != 2023 || got.Month() != time.November {
		t.Fatalf("unexpected parsed date %v", got)
	}
}
