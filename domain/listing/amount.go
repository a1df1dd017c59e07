package listing

import (
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/x-xyz/listingpage/domain"
	"golang.org/x/xerrors"
)

// ParseQuantity parses a user entered token quantity, a positive base-10 integer
func ParseQuantity(s string) (*big.Int, error) {
	q, ok := new(big.Int).SetString(strings.TrimSpace(s), 10)
	if !ok || q.Sign() <= 0 {
		return nil, xerrors.Errorf("quantity %q: %w", s, domain.ErrInvalidNumberFormat)
	}
	return q, nil
}

// ParsePrice parses a user entered display amount, e.g. "0.05", into base units of a
// currency with the given decimals. Precision finer than one base unit is rejected.
func ParsePrice(s string, decimals int32) (*big.Int, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return nil, xerrors.Errorf("price %q: %w", s, domain.ErrInvalidNumberFormat)
	}
	if d.Sign() <= 0 {
		return nil, xerrors.Errorf("price %q must be positive: %w", s, domain.ErrInvalidNumberFormat)
	}
	raw := d.Shift(decimals)
	if !raw.Equal(raw.Truncate(0)) {
		return nil, xerrors.Errorf("price %q exceeds %d decimals: %w", s, decimals, domain.ErrInvalidNumberFormat)
	}
	return raw.BigInt(), nil
}
