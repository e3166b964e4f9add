package payment

import (
	"encoding/json"
	"testing"
)

func TestParseCollection_EnvelopeWithMeta(t *testing.T) {
	payload := `{
		"merchants": [{"id": "m1"}, {"id": "m2"}],
		"meta": {"current_page": 1, "per_page": 20, "total_pages": 1, "total_count": 0}
	}`
	col, err := parseCollection[Merchant](json.RawMessage(payload), "merchants")
	if err != nil {
		t.Fatalf("parseCollection returned error: %v", err)
	}
	if col.CurrentPage != 1 || col.PerPage != 20 || col.TotalPages != 1 || col.TotalCount != 0 {
		t.Fatalf("unexpected pagination fields: %+v", col)
	}
	if len(col.Items) != 2 || col.Items[0].ID != "m1" {
		t.Fatalf("unexpected items: %+v", col.Items)
	}
}

func TestParseCollection_BareArray(t *testing.T) {
	col, err := parseCollection[Charge](json.RawMessage(`[{"charge_id": "c1"}]`), "charges")
	if err != nil {
		t.Fatalf("parseCollection returned error: %v", err)
	}
	if len(col.Items) != 1 || col.Items[0].ChargeID != "c1" {
		t.Fatalf("unexpected items: %+v", col.Items)
	}
	if col.TotalCount != 0 || col.CurrentPage != 0 {
		t.Fatalf("expected zero pagination for a bare array, got %+v", col)
	}
}

func TestParseCollection_NilPayload(t *testing.T) {
	col, err := parseCollection[Dispute](nil, "disputes")
	if err != nil {
		t.Fatalf("parseCollection returned error: %v", err)
	}
	if col.Items == nil || len(col.Items) != 0 {
		t.Fatalf("expected a non-nil empty item slice, got %+v", col.Items)
	}
}

func TestCharge_CompareOrdersByID(t *testing.T) {
	a := Charge{ChargeID: "charge_a"}
	b := Charge{ChargeID: "charge_b"}
	if a.Compare(b) >= 0 {
		t.Fatal("expected charge_a < charge_b")
	}
	if b.Compare(a) <= 0 {
		t.Fatal("expected charge_b > charge_a")
	}
	if a.Compare(a) != 0 {
		t.Fatal("expected a charge to equal itself")
	}
}
