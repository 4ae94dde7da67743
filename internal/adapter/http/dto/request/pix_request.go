package request

import (
	"bytes"
	"encoding/json"
	"strings"
)

type ValidatePixRequest struct {
	PayloadCode string `json:"payload_code" binding:"required"`
}

type MockSettlementRequest struct {
	TxID string `json:"txid" binding:"required"`
}

// PaymentWebhookRequest is the notification body posted by Mercado Pago.
// data.id arrives as a string or as a number depending on the topic.
type PaymentWebhookRequest struct {
	Type   string `json:"type"`
	Action string `json:"action"`
	Data   struct {
		ID json.RawMessage `json:"id"`
	} `json:"data"`
}

// ResolveTxID picks the charge id from the body, falling back to the query
// string forms (?data.id= and the legacy ?id=&topic=payment).
func (r PaymentWebhookRequest) ResolveTxID(queryDataID, queryID string) string {
	if raw := bytes.TrimSpace(r.Data.ID); len(raw) > 0 && !bytes.Equal(raw, []byte("null")) {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			if s = strings.TrimSpace(s); s != "" {
				return s
			}
		} else {
			var n json.Number
			if err := json.Unmarshal(raw, &n); err == nil && n.String() != "" {
				return n.String()
			}
		}
	}
	if v := strings.TrimSpace(queryDataID); v != "" {
		return v
	}
	return strings.TrimSpace(queryID)
}

// IsPayment reports whether the notification concerns a payment. Empty types
// are accepted for the legacy query-string form.
func (r PaymentWebhookRequest) IsPayment(queryTopic string) bool {
	t := strings.TrimSpace(r.Type)
	if t == "" {
		t = strings.TrimSpace(queryTopic)
	}
	return t == "" || t == "payment"
}
