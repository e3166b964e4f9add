package payment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(Config{BaseURL: server.URL, Secret: "secret", Password: ""})
}

func TestRequest_SendsBasicAuthWithEmptyPassword(t *testing.T) {
	var gotUser, gotPass string
	var gotOK bool
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser, gotPass, gotOK = r.BasicAuth()
		w.Write([]byte(`{}`))
	}))

	if _, err := NewMerchantConnector(client, "m1").GetMerchant(context.Background()); err != nil {
		t.Fatalf("GetMerchant returned error: %v", err)
	}
	if !gotOK {
		t.Fatal("expected basic auth credentials on the request")
	}
	if gotUser != "secret" || gotPass != "" {
		t.Fatalf("unexpected credentials: user=%q pass=%q", gotUser, gotPass)
	}
}

func TestRequest_MergesLocaleIntoEveryQuery(t *testing.T) {
	var gotLocale string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotLocale = r.URL.Query().Get("locale")
		w.Write([]byte(`{"charges": []}`))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL, Secret: "secret", Locale: "de"})
	connector := NewMerchantConnector(client, "m1")
	if _, err := connector.GetCharges(context.Background(), Params{"limit": 10}); err != nil {
		t.Fatalf("GetCharges returned error: %v", err)
	}
	if gotLocale != "de" {
		t.Fatalf("expected locale=de in query, got %q", gotLocale)
	}
}

func TestRequest_NoLocaleWhenUnconfigured(t *testing.T) {
	var hasLocale bool
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hasLocale = r.URL.Query().Has("locale")
		w.Write([]byte(`{"charges": []}`))
	}))

	connector := NewMerchantConnector(client, "m1")
	if _, err := connector.GetCharges(context.Background(), nil); err != nil {
		t.Fatalf("GetCharges returned error: %v", err)
	}
	if hasLocale {
		t.Fatal("expected no locale parameter when the client has none configured")
	}
}

func TestRequest_TrimsTrailingSlashFromBaseURL(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL + "/", Secret: "secret"})
	if _, err := NewMerchantConnector(client, "m1").GetMerchant(context.Background()); err != nil {
		t.Fatalf("GetMerchant returned error: %v", err)
	}
	if gotPath != "/v1/merchants/m1" {
		t.Fatalf("unexpected request path %q", gotPath)
	}
}

func TestEncodeParams_NestedMapsAndSlices(t *testing.T) {
	values := encodeParams(Params{
		"meta": Params{"name": "Salon", "city": "Berlin"},
		"legal_entity": Params{
			"address": Params{"city": "Munich"},
		},
		"services": []string{"cut", "wash"},
		"amount":   1000,
	})

	if got := values.Get("meta[name]"); got != "Salon" {
		t.Fatalf("meta[name] = %q", got)
	}
	if got := values.Get("meta[city]"); got != "Berlin" {
		t.Fatalf("meta[city] = %q", got)
	}
	if got := values.Get("legal_entity[address][city]"); got != "Munich" {
		t.Fatalf("legal_entity[address][city] = %q", got)
	}
	if got := values["services[]"]; len(got) != 2 || got[0] != "cut" || got[1] != "wash" {
		t.Fatalf("services[] = %v", got)
	}
	if got := values.Get("amount"); got != "1000" {
		t.Fatalf("amount = %q", got)
	}
}

func TestEncodeParams_IndexedOwnersViaSliceOfMaps(t *testing.T) {
	values := encodeParams(Params{
		"additional_owners": []any{
			Params{"first_name": "Ada"},
			Params{"first_name": "Grace"},
		},
	})

	got := values["additional_owners[][first_name]"]
	if len(got) != 2 || got[0] != "Ada" || got[1] != "Grace" {
		t.Fatalf("additional_owners[][first_name] = %v", got)
	}
}
