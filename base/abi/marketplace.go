package abi

import (
	"errors"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

var MarketplaceABI abi.ABI

var ErrUnexpectedOutput = errors.New("unexpected contract output")

var marketplaceABI = `[
{"type":"function","name":"listings","stateMutability":"view","inputs":[{"type":"uint256","name":""}],"outputs":[{"type":"uint256","name":"listingId"},{"type":"address","name":"tokenOwner"},{"type":"address","name":"assetContract"},{"type":"uint256","name":"tokenId"},{"type":"uint256","name":"startTime"},{"type":"uint256","name":"endTime"},{"type":"uint256","name":"quantity"},{"type":"address","name":"currency"},{"type":"uint256","name":"reservePricePerToken"},{"type":"uint256","name":"buyoutPricePerToken"},{"type":"uint8","name":"tokenType"},{"type":"uint8","name":"listingType"}]},
{"type":"function","name":"offer","stateMutability":"payable","inputs":[{"type":"uint256","name":"_listingId"},{"type":"uint256","name":"_quantityWanted"},{"type":"address","name":"_currency"},{"type":"uint256","name":"_pricePerToken"}],"outputs":[]},
{"type":"function","name":"buy","stateMutability":"payable","inputs":[{"type":"uint256","name":"_listingId"},{"type":"address","name":"_buyFor"},{"type":"uint256","name":"_quantityToBuy"},{"type":"address","name":"_currency"},{"type":"uint256","name":"_totalPrice"}],"outputs":[]},
{"type":"function","name":"winningBid","stateMutability":"view","inputs":[{"type":"uint256","name":""}],"outputs":[{"type":"uint256","name":"listingId"},{"type":"address","name":"offeror"},{"type":"uint256","name":"quantityWanted"},{"type":"address","name":"currency"},{"type":"uint256","name":"pricePerToken"}]},
{"type":"event","anonymous":false,"name":"NewOffer","inputs":[{"type":"uint256","name":"listingId","indexed":true},{"type":"address","name":"offeror","indexed":true},{"type":"uint8","name":"listingType","indexed":true},{"type":"uint256","name":"quantityWanted"},{"type":"uint256","name":"totalOfferAmount"},{"type":"address","name":"currency"}]},
{"type":"event","anonymous":false,"name":"NewSale","inputs":[{"type":"uint256","name":"listingId","indexed":true},{"type":"address","name":"assetContract","indexed":true},{"type":"address","name":"lister","indexed":true},{"type":"address","name":"buyer"},{"type":"uint256","name":"quantityBought"},{"type":"uint256","name":"totalPricePaid"}]}
]`

func init() {
	_abi, err := abi.JSON(strings.NewReader(marketplaceABI))
	if err != nil {
		panic("Failed to parse marketplace abi")
	}
	MarketplaceABI = _abi
}

// MarketplaceListing is the decoded output of listings(uint256)
type MarketplaceListing struct {
	ListingId            *big.Int
	TokenOwner           common.Address
	AssetContract        common.Address
	TokenId              *big.Int
	StartTime            *big.Int
	EndTime              *big.Int
	Quantity             *big.Int
	Currency             common.Address
	ReservePricePerToken *big.Int
	BuyoutPricePerToken  *big.Int
	TokenType            uint8
	ListingType          uint8
}

// ParseMarketplaceListing converts unpacked listings(uint256) outputs
func ParseMarketplaceListing(out []interface{}) (*MarketplaceListing, error) {
	if len(out) != 12 {
		return nil, ErrUnexpectedOutput
	}
	l := &MarketplaceListing{}
	var ok [12]bool
	l.ListingId, ok[0] = out[0].(*big.Int)
	l.TokenOwner, ok[1] = out[1].(common.Address)
	l.AssetContract, ok[2] = out[2].(common.Address)
	l.TokenId, ok[3] = out[3].(*big.Int)
	l.StartTime, ok[4] = out[4].(*big.Int)
	l.EndTime, ok[5] = out[5].(*big.Int)
	l.Quantity, ok[6] = out[6].(*big.Int)
	l.Currency, ok[7] = out[7].(common.Address)
	l.ReservePricePerToken, ok[8] = out[8].(*big.Int)
	l.BuyoutPricePerToken, ok[9] = out[9].(*big.Int)
	l.TokenType, ok[10] = out[10].(uint8)
	l.ListingType, ok[11] = out[11].(uint8)
	for _, v := range ok {
		if !v {
			return nil, ErrUnexpectedOutput
		}
	}
	return l, nil
}
