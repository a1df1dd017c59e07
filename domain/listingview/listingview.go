package listingview

import (
	"errors"

	"github.com/x-xyz/listingpage/base/ctx"
	"github.com/x-xyz/listingpage/domain"
	"github.com/x-xyz/listingpage/domain/listing"
)

var ErrListingNotReady = errors.New("listing is not ready")

// DefaultAmount is the initial value of both form inputs
const DefaultAmount = "1"

type ViewState string

const (
	ViewStateLoading     ViewState = "loading"
	ViewStateNotFound    ViewState = "notFound"
	ViewStateError       ViewState = "error"
	ViewStateRedirecting ViewState = "redirecting"
	ViewStateReady       ViewState = "ready"
)

type RouteParams struct {
	ListingId string `json:"listingId" param:"listingId" validate:"required,uint256"`
	NftId     string `json:"nftId" param:"nftId" validate:"required,uint256"`
}

// ListingView is the render model of a ready listing
type ListingView struct {
	Id            string         `json:"id"`
	NftId         string         `json:"nftId"`
	Name          string         `json:"name"`
	Description   string         `json:"description"`
	Image         string         `json:"image"`
	Owner         string         `json:"owner"`
	SellerAddress domain.Address `json:"sellerAddress"`
	Price         string         `json:"price"`
	Symbol        string         `json:"symbol"`
	Type          listing.Type   `json:"type"`
	Quantity      string         `json:"quantity"`
	BidAmount     string         `json:"bidAmount"`
	BuyAmount     string         `json:"buyAmount"`
	CanBid        bool           `json:"canBid"`
}

type View struct {
	State      ViewState    `json:"state"`
	RedirectTo string       `json:"redirectTo,omitempty"`
	Error      string       `json:"error,omitempty"`
	Listing    *ListingView `json:"listing,omitempty"`
}

type OutcomeKind string

const (
	OutcomeSuccess       OutcomeKind = "success"
	OutcomeFailure       OutcomeKind = "failure"
	OutcomeNetworkSwitch OutcomeKind = "networkSwitch"
)

type Action string

const (
	ActionOffer  Action = "offer"
	ActionBid    Action = "bid"
	ActionBuyout Action = "buyout"
)

// Outcome is the user facing result of a write action
type Outcome struct {
	Kind    OutcomeKind   `json:"kind"`
	Action  Action        `json:"action"`
	Message string        `json:"message"`
	TxHash  domain.TxHash `json:"txHash,omitempty"`
	Err     error         `json:"-"`
}

// Navigator moves the host to another route
type Navigator interface {
	Redirect(path string)
}

type Page interface {
	Params() RouteParams
	State() ViewState
	Load(c ctx.Ctx) View
	View(c ctx.Ctx) View
	SetBidAmount(v string)
	SetBuyAmount(v string)
	CreateBidOrOffer(c ctx.Ctx) Outcome
	BuyNft(c ctx.Ctx) Outcome
}

type Usecase interface {
	Open(c ctx.Ctx, params RouteParams, nav Navigator) Page
}
