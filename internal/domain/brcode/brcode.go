// Package brcode builds and checks the EMV "BR Code" payloads used by PIX
// charges. Validation is purely structural: a valid code is well formed and
// carries a matching CRC, which says nothing about whether the processor has
// a live charge behind it.
package brcode

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	idPayloadFormat   = "00"
	idMerchantAccount = "26"
	idCategoryCode    = "52"
	idCurrency        = "53"
	idAmount          = "54"
	idCountry         = "58"
	idMerchantName    = "59"
	idMerchantCity    = "60"
	idAdditionalData  = "62"
	idCRC             = "63"

	subGUI  = "00"
	subKey  = "01"
	subTxID = "05"

	pixGUI       = "br.gov.bcb.pix"
	currencyBRL  = "986"
	maxNameLen   = 25
	maxCityLen   = 15
	maxTxIDLen   = 25
	crcFieldHead = idCRC + "04"
)

var (
	ErrMalformed = errors.New("malformed payload")
	ErrChecksum  = errors.New("payload checksum mismatch")
)

// Payload holds the fields needed to render a charge code.
type Payload struct {
	Key          string
	MerchantName string
	MerchantCity string
	Amount       decimal.Decimal
	TxID         string
}

// Build renders p as a BR Code string including its CRC.
func Build(p Payload) string {
	var b strings.Builder
	b.WriteString(field(idPayloadFormat, "01"))
	b.WriteString(field(idMerchantAccount, field(subGUI, pixGUI)+field(subKey, p.Key)))
	b.WriteString(field(idCategoryCode, "0000"))
	b.WriteString(field(idCurrency, currencyBRL))
	if p.Amount.IsPositive() {
		b.WriteString(field(idAmount, p.Amount.StringFixed(2)))
	}
	b.WriteString(field(idCountry, "BR"))
	b.WriteString(field(idMerchantName, truncate(p.MerchantName, maxNameLen)))
	b.WriteString(field(idMerchantCity, truncate(p.MerchantCity, maxCityLen)))
	txid := truncate(sanitizeTxID(p.TxID), maxTxIDLen)
	if txid == "" {
		txid = "***"
	}
	b.WriteString(field(idAdditionalData, field(subTxID, txid)))
	b.WriteString(crcFieldHead)
	body := b.String()
	return body + fmt.Sprintf("%04X", CRC16(body))
}

// Validate checks the TLV structure, the mandatory PIX fields and the CRC.
func Validate(code string) error {
	code = strings.TrimSpace(code)
	if len(code) < len(crcFieldHead)+4 {
		return fmt.Errorf("%w: too short", ErrMalformed)
	}

	fields, err := parse(code)
	if err != nil {
		return err
	}
	if len(fields) == 0 || fields[0].id != idPayloadFormat || fields[0].value != "01" {
		return fmt.Errorf("%w: payload format indicator must open the code", ErrMalformed)
	}
	last := fields[len(fields)-1]
	if last.id != idCRC || len(last.value) != 4 {
		return fmt.Errorf("%w: crc field must close the code", ErrMalformed)
	}

	byID := make(map[string]string, len(fields))
	for _, f := range fields {
		byID[f.id] = f.value
	}
	mai, ok := byID[idMerchantAccount]
	if !ok {
		return fmt.Errorf("%w: missing merchant account information", ErrMalformed)
	}
	sub, err := parse(mai)
	if err != nil {
		return fmt.Errorf("%w: merchant account information", err)
	}
	if len(sub) == 0 || sub[0].id != subGUI || !strings.EqualFold(sub[0].value, pixGUI) {
		return fmt.Errorf("%w: merchant account is not a pix arrangement", ErrMalformed)
	}
	if byID[idCurrency] != currencyBRL {
		return fmt.Errorf("%w: currency must be %s", ErrMalformed, currencyBRL)
	}
	if byID[idCountry] != "BR" {
		return fmt.Errorf("%w: country must be BR", ErrMalformed)
	}
	if byID[idMerchantName] == "" || byID[idMerchantCity] == "" {
		return fmt.Errorf("%w: merchant name and city are required", ErrMalformed)
	}
	if amt, ok := byID[idAmount]; ok {
		if _, err := decimal.NewFromString(amt); err != nil {
			return fmt.Errorf("%w: invalid amount %q", ErrMalformed, amt)
		}
	}

	body := code[:len(code)-4]
	want := fmt.Sprintf("%04X", CRC16(body))
	if !strings.EqualFold(want, last.value) {
		return fmt.Errorf("%w: expected %s, got %s", ErrChecksum, want, last.value)
	}
	return nil
}

// CRC16 computes CRC-16/CCITT-FALSE (poly 0x1021, init 0xFFFF).
func CRC16(s string) uint16 {
	crc := uint16(0xFFFF)
	for i := 0; i < len(s); i++ {
		crc ^= uint16(s[i]) << 8
		for bit := 0; bit < 8; bit++ {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ 0x1021
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}

type tlv struct {
	id    string
	value string
}

func parse(s string) ([]tlv, error) {
	var out []tlv
	for i := 0; i < len(s); {
		if i+4 > len(s) {
			return nil, fmt.Errorf("%w: truncated field header at %d", ErrMalformed, i)
		}
		id := s[i : i+2]
		n, err := strconv.Atoi(s[i+2 : i+4])
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%w: invalid length for field %s", ErrMalformed, id)
		}
		start := i + 4
		if start+n > len(s) {
			return nil, fmt.Errorf("%w: field %s overflows the payload", ErrMalformed, id)
		}
		out = append(out, tlv{id: id, value: s[start : start+n]})
		i = start + n
	}
	return out, nil
}

func field(id, value string) string {
	return fmt.Sprintf("%s%02d%s", id, len(value), value)
}

func truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) > n {
		return s[:n]
	}
	return s
}

func sanitizeTxID(s string) string {
	var b strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
