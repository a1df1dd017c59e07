package notification

import (
	"time"

	"github.com/x-xyz/listingpage/base/ctx"
	"github.com/x-xyz/listingpage/domain"
	"github.com/x-xyz/listingpage/domain/listing"
)

type TradeKind string

const (
	TradeKindOffer  TradeKind = "offer"
	TradeKindBid    TradeKind = "bid"
	TradeKindBuyout TradeKind = "buyout"
)

type TradeEvent struct {
	Kind      TradeKind
	Listing   listing.Listing
	Account   domain.Address
	Quantity  string
	Amount    string
	TxHash    domain.TxHash
	CreatedAt time.Time
}

type Notifier interface {
	Notify(c ctx.Ctx, event TradeEvent) error
}
