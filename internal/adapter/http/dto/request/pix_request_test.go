package request

import (
	"encoding/json"
	"testing"
)

func TestPaymentWebhookRequest_ResolveTxID(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		dataID  string
		queryID string
		want    string
	}{
		{name: "string id", body: `{"type":"payment","data":{"id":"123"}}`, want: "123"},
		{name: "numeric id", body: `{"type":"payment","data":{"id":456}}`, want: "456"},
		{name: "query data.id", body: `{}`, dataID: "789", want: "789"},
		{name: "legacy query id", body: `{"data":{"id":null}}`, queryID: "42", want: "42"},
		{name: "nothing", body: `{}`, want: ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var r PaymentWebhookRequest
			if err := json.Unmarshal([]byte(tc.body), &r); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := r.ResolveTxID(tc.dataID, tc.queryID); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestPaymentWebhookRequest_IsPayment(t *testing.T) {
	if !(PaymentWebhookRequest{Type: "payment"}).IsPayment("") {
		t.Fatalf("expected payment")
	}
	if !(PaymentWebhookRequest{}).IsPayment("payment") {
		t.Fatalf("expected payment from topic")
	}
	if (PaymentWebhookRequest{Type: "merchant_order"}).IsPayment("") {
		t.Fatalf("expected merchant_order to be ignored")
	}
}

func TestCreateServiceRequestRequest_Normalize(t *testing.T) {
	got := CreateServiceRequestRequest{Title: " Leak ", TypeID: " t1 ", Description: " kitchen "}.Normalize()
	if got.Title != "Leak" || got.TypeID != "t1" || got.Description != "kitchen" {
		t.Fatalf("unexpected normalize result: %+v", got)
	}
}
