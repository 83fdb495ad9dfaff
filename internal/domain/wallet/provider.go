package wallet

import (
	"fmt"
	"strings"
)

// Provider identifies a Mozambican mobile-money wallet provider.
type Provider string

const (
	ProviderMpesa Provider = "mpesa"
	ProviderEmola Provider = "emola"
)

// countryCode is the Mozambican E.164 country code. Numbers submitted
// with it are normalized to the 9-digit national form.
const countryCode = "258"

// nationalNumberLen is the length of a Mozambican mobile number without
// the country code.
const nationalNumberLen = 9

// allowedPrefixes maps each provider to the MSISDN prefixes it owns.
// Single source of truth: checkout, withdrawal and disbursement all
// validate against this table.
var allowedPrefixes = map[Provider][]string{
	ProviderMpesa: {"84", "85"},
	ProviderEmola: {"86", "87"},
}

// Valid reports whether p is a known provider tag.
func (p Provider) Valid() bool {
	_, ok := allowedPrefixes[p]
	return ok
}

// Prefixes returns the MSISDN prefixes owned by the provider.
func (p Provider) Prefixes() []string {
	return allowedPrefixes[p]
}

// ValidatePhone cleans a raw phone string and checks it belongs to the
// given provider. It returns the normalized 9-digit number.
//
// Rules: strip non-digits; fewer than 9 digits is too short; more than
// 9 digits is accepted only with a leading 258 country code, which is
// dropped; the first two digits must be one of the provider's prefixes.
func ValidatePhone(raw string, p Provider) (string, error) {
	if !p.Valid() {
		return "", fmt.Errorf("unknown payment method %q", string(p))
	}

	clean := digitsOnly(raw)

	if len(clean) < nationalNumberLen {
		return "", fmt.Errorf("phone number too short: need %d digits", nationalNumberLen)
	}
	if len(clean) > nationalNumberLen {
		if !strings.HasPrefix(clean, countryCode) {
			return "", fmt.Errorf("phone number must have %d digits or start with %s", nationalNumberLen, countryCode)
		}
		clean = clean[len(countryCode):]
		if len(clean) != nationalNumberLen {
			return "", fmt.Errorf("phone number must have %d digits after country code", nationalNumberLen)
		}
	}

	prefix := clean[:2]
	for _, allowed := range allowedPrefixes[p] {
		if prefix == allowed {
			return clean, nil
		}
	}
	return "", fmt.Errorf("%s numbers must start with %s", p, strings.Join(allowedPrefixes[p], " or "))
}

func digitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
