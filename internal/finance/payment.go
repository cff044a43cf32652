package finance

import "strings"

// Method is the payment-method bucket used for the paid-order split.
type Method string

const (
	MethodPix    Method = "pix"
	MethodBoleto Method = "boleto"
	MethodCard   Method = "card"
)

// ResolveMethod maps a free-text payment method onto a Method bucket.
// Substring match, not exact: any value embedding "pix" or "boleto" lands in
// that bucket, everything else (including the "credit_card" default applied
// when the provider sent nothing) is card.
func ResolveMethod(raw *string) Method {
	method := "credit_card"
	if raw != nil && *raw != "" {
		method = *raw
	}
	method = strings.ToLower(method)

	switch {
	case strings.Contains(method, "pix"):
		return MethodPix
	case strings.Contains(method, "boleto"):
		return MethodBoleto
	}
	return MethodCard
}
