package listing

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"github.com/x-xyz/listingpage/base/ctx"
	"github.com/x-xyz/listingpage/domain"
)

var (
	ErrWrongListingType = errors.New("operation not supported for this listing type")
	ErrListingExpired   = errors.New("listing is not active")
)

// Type is the sale type of a marketplace listing, values follow the contract enum
type Type uint8

const (
	TypeDirect  Type = 0
	TypeAuction Type = 1
)

func (t Type) String() string {
	switch t {
	case TypeDirect:
		return "direct"
	case TypeAuction:
		return "auction"
	}
	return "unknown"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(b []byte) error {
	switch string(b) {
	case "direct":
		*t = TypeDirect
	case "auction":
		*t = TypeAuction
	default:
		return domain.ErrBadParamInput
	}
	return nil
}

// TokenType of the listed asset, values follow the contract enum
type TokenType uint8

const (
	TokenType721  TokenType = 0
	TokenType1155 TokenType = 1
)

type Asset struct {
	Id            domain.TokenId `json:"id"`
	AssetContract domain.Address `json:"assetContract"`
	TokenType     TokenType      `json:"tokenType"`
	Name          string         `json:"name"`
	Description   string         `json:"description"`
	Image         string         `json:"image"`
}

// Currency describes the token a listing is priced in
type Currency struct {
	Address  domain.Address `json:"address"`
	Symbol   string         `json:"symbol"`
	Decimals int32          `json:"decimals"`
}

type CurrencyValue struct {
	Currency
	// Value is the raw amount in base units, a base-10 integer string
	Value        string `json:"value"`
	DisplayValue string `json:"displayValue"`
}

// NewCurrencyValue formats a raw base-unit amount with the currency's decimals
func NewCurrencyValue(currency Currency, raw decimal.Decimal) CurrencyValue {
	return CurrencyValue{
		Currency:     currency,
		Value:        raw.String(),
		DisplayValue: raw.Shift(-currency.Decimals).String(),
	}
}

type Listing struct {
	Id                           string         `json:"id"`
	SellerAddress                domain.Address `json:"sellerAddress"`
	SellerName                   string         `json:"sellerName"`
	Type                         Type           `json:"type"`
	Quantity                     string         `json:"quantity"`
	StartTime                    time.Time      `json:"startTime"`
	EndTime                      time.Time      `json:"endTime"`
	Asset                        Asset          `json:"asset"`
	BuyoutCurrencyValuePerToken  CurrencyValue  `json:"buyoutCurrencyValuePerToken"`
	ReserveCurrencyValuePerToken CurrencyValue  `json:"reserveCurrencyValuePerToken"`
}

// IsActive reports whether now is inside the listing window
func (l *Listing) IsActive(now time.Time) bool {
	if now.Before(l.StartTime) {
		return false
	}
	return l.EndTime.IsZero() || now.Before(l.EndTime)
}

// MarketplaceRepo is the marketplace contract client the listing page dispatches to.
// Amounts are passed as the user typed them, the repo parses them against the currency.
type MarketplaceRepo interface {
	FindOne(c ctx.Ctx, listingId string) (*Listing, error)
	MakeOffer(c ctx.Ctx, listingId string, quantity string, currency domain.Address, pricePerToken string) (domain.TxHash, error)
	MakeBid(c ctx.Ctx, listingId string, amount string) (domain.TxHash, error)
	BuyoutListing(c ctx.Ctx, listingId string, quantity string) (domain.TxHash, error)
	Invalidate(c ctx.Ctx, listingId string) error
}
