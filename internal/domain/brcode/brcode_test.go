package brcode

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func samplePayload() Payload {
	return Payload{
		Key:          "financeiro@escritorio.com.br",
		MerchantName: "Escritorio Contabil Modelo Ltda",
		MerchantCity: "Sao Paulo",
		Amount:       decimal.RequireFromString("150.00"),
		TxID:         "REQ-2024-137-a1b2",
	}
}

func TestCRC16_CheckValue(t *testing.T) {
	if got := CRC16("123456789"); got != 0x29B1 {
		t.Fatalf("expected 0x29B1, got 0x%04X", got)
	}
}

func TestBuildAndValidate(t *testing.T) {
	code := Build(samplePayload())
	if !strings.HasPrefix(code, "000201") {
		t.Fatalf("unexpected prefix: %s", code)
	}
	if !strings.Contains(code, "5406150.00") {
		t.Fatalf("amount not rendered: %s", code)
	}
	if !strings.Contains(code, "0514REQ2024137a1b2") {
		t.Fatalf("txid not sanitized into additional data: %s", code)
	}
	if err := Validate(code); err != nil {
		t.Fatalf("expected valid code, got %v", err)
	}
	if err := Validate("  " + code + "\n"); err != nil {
		t.Fatalf("surrounding whitespace must be ignored, got %v", err)
	}
}

func TestBuild_TruncatesLongFields(t *testing.T) {
	p := samplePayload()
	p.MerchantCity = "Sao Jose dos Campos do Norte"
	p.TxID = ""
	code := Build(p)
	if !strings.Contains(code, "6015Sao Jose dos Ca") {
		t.Fatalf("city not truncated to 15 chars: %s", code)
	}
	if !strings.Contains(code, "0503***") {
		t.Fatalf("empty txid must render as ***: %s", code)
	}
	if err := Validate(code); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_Errors(t *testing.T) {
	good := Build(samplePayload())

	cases := []struct {
		name string
		code string
		want error
	}{
		{"empty", "", ErrMalformed},
		{"tampered amount", strings.Replace(good, "150.00", "151.00", 1), ErrChecksum},
		{"wrong crc", good[:len(good)-4] + "0000", ErrChecksum},
		{"missing crc", good[:len(good)-8], ErrMalformed},
		{"bad length", "00AB" + good[4:], ErrMalformed},
		{"overflowing field", "0002012699abc6304ABCD", ErrMalformed},
		{"not pix", rebuildWithout(t, "br.gov.bcb.pix", "br.gov.bcb.xyz"), ErrMalformed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.code)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

// rebuildWithout swaps a value inside a fresh code and recomputes the CRC, so
// that only the structural rule under test fails.
func rebuildWithout(t *testing.T, old, replacement string) string {
	t.Helper()
	code := Build(samplePayload())
	body := strings.Replace(code[:len(code)-4], old, replacement, 1)
	return body + fmt.Sprintf("%04X", CRC16(body))
}
