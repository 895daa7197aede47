// Package ordering builds the WhatsApp links customers use to place orders.
package ordering

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	hashids "github.com/speps/go-hashids/v2"
)

var (
	ErrNoPhone         = errors.New("whatsapp number is not configured")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
)

const refPrefix = "ORD-"

type Order struct {
	ProductID   int64
	ProductName string
	Variant     string // empty when ordering the base product
	Quantity    int
	UnitPrice   decimal.Decimal
}

type Link struct {
	URL       string          `json:"url"`
	Reference string          `json:"reference"`
	Message   string          `json:"message"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Total     decimal.Decimal `json:"total"`
}

type Linker struct {
	hid *hashids.HashID
	now func() time.Time
}

func NewLinker(salt string) (*Linker, error) {
	hd := hashids.NewData()
	hd.Salt = salt
	hd.MinLength = 8
	hd.Alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

	hid, err := hashids.NewWithData(hd)
	if err != nil {
		return nil, fmt.Errorf("hashids: %w", err)
	}
	return &Linker{hid: hid, now: time.Now}, nil
}

// Build returns the wa.me link for o, addressed to phone. Only the digits of
// phone are used.
func (l *Linker) Build(phone string, o Order) (*Link, error) {
	digits := NormalizePhone(phone)
	if digits == "" {
		return nil, ErrNoPhone
	}
	if o.Quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	ref, err := l.Reference(o.ProductID, o.Quantity)
	if err != nil {
		return nil, err
	}

	total := o.UnitPrice.Mul(decimal.NewFromInt(int64(o.Quantity)))
	msg := message(o, total, ref)

	return &Link{
		URL:       "https://wa.me/" + digits + "?text=" + encodeText(msg),
		Reference: ref,
		Message:   msg,
		UnitPrice: o.UnitPrice,
		Total:     total,
	}, nil
}

// Reference encodes product, quantity and the current second.
func (l *Linker) Reference(productID int64, quantity int) (string, error) {
	code, err := l.hid.EncodeInt64([]int64{productID, int64(quantity), l.now().Unix()})
	if err != nil {
		return "", fmt.Errorf("encode order reference: %w", err)
	}
	return refPrefix + code, nil
}

// DecodeReference returns the product id, quantity and unix time packed in ref.
func (l *Linker) DecodeReference(ref string) ([]int64, error) {
	code, ok := strings.CutPrefix(ref, refPrefix)
	if !ok {
		return nil, fmt.Errorf("order reference %q: missing prefix", ref)
	}
	return l.hid.DecodeInt64WithError(code)
}

func message(o Order, total decimal.Decimal, ref string) string {
	var b strings.Builder
	b.WriteString("Halo! Saya ingin memesan:\n\n")
	fmt.Fprintf(&b, "*%s*", o.ProductName)
	if o.Variant != "" {
		fmt.Fprintf(&b, "\nVarian: %s", o.Variant)
	}
	fmt.Fprintf(&b, "\nJumlah: %d pcs", o.Quantity)
	fmt.Fprintf(&b, "\nHarga per item: %s", FormatIDR(o.UnitPrice))
	fmt.Fprintf(&b, "\nTotal: %s", FormatIDR(total))
	fmt.Fprintf(&b, "\nRef: %s", ref)
	b.WriteString("\n\nApakah produk ini masih tersedia?")
	return b.String()
}

// encodeText percent-encodes like encodeURIComponent: spaces become %20.
func encodeText(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// NormalizePhone keeps only ASCII digits.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatIDR renders an amount the id-ID way: "Rp 12.500", "Rp 1.250,5".
func FormatIDR(d decimal.Decimal) string {
	d = d.Round(2)
	neg := d.IsNegative()
	d = d.Abs()

	intPart := d.Truncate(0).String()
	frac := d.Sub(d.Truncate(0)).StringFixed(2)[2:] // "0.50" -> "50"
	frac = strings.TrimRight(frac, "0")

	var b strings.Builder
	b.WriteString("Rp ")
	if neg {
		b.WriteString("-")
	}
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	if frac != "" {
		b.WriteString(",")
		b.WriteString(frac)
	}
	return b.String()
}
