package abi

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

func TestMarketplaceListingRoundTrip(t *testing.T) {
	req := require.New(t)
	want := MarketplaceListing{
		ListingId:            big.NewInt(7),
		TokenOwner:           common.HexToAddress("0x020ca66c30bec2c4fe3861a94e4db4a498a35872"),
		AssetContract:        common.HexToAddress("0xbc4ca0eda7647a8ab7c2061c2e118a18a936f13d"),
		TokenId:              big.NewInt(42),
		StartTime:            big.NewInt(1650000000),
		EndTime:              big.NewInt(1660000000),
		Quantity:             big.NewInt(1),
		Currency:             common.HexToAddress("0xEeeeeEeeeEeEeeEeEeEeeEEEeeeeEeeeeeeeEEeE"),
		ReservePricePerToken: big.NewInt(0),
		BuyoutPricePerToken:  big.NewInt(50000000000000000),
		TokenType:            0,
		ListingType:          1,
	}

	method := MarketplaceABI.Methods["listings"]
	data, err := method.Outputs.Pack(
		want.ListingId, want.TokenOwner, want.AssetContract, want.TokenId,
		want.StartTime, want.EndTime, want.Quantity, want.Currency,
		want.ReservePricePerToken, want.BuyoutPricePerToken, want.TokenType, want.ListingType,
	)
	req.NoError(err)

	out, err := MarketplaceABI.Unpack("listings", data)
	req.NoError(err)
	got, err := ParseMarketplaceListing(out)
	req.NoError(err)

	bigs := func(l *MarketplaceListing) []string {
		return []string{
			l.ListingId.String(), l.TokenId.String(), l.StartTime.String(), l.EndTime.String(),
			l.Quantity.String(), l.ReservePricePerToken.String(), l.BuyoutPricePerToken.String(),
		}
	}
	req.Equal(bigs(&want), bigs(got))
	req.Equal(want.TokenOwner, got.TokenOwner)
	req.Equal(want.AssetContract, got.AssetContract)
	req.Equal(want.Currency, got.Currency)
	req.Equal(want.TokenType, got.TokenType)
	req.Equal(want.ListingType, got.ListingType)
}

func TestParseMarketplaceListingBadOutput(t *testing.T) {
	_, err := ParseMarketplaceListing([]interface{}{big.NewInt(1)})
	require.Equal(t, ErrUnexpectedOutput, err)

	out := make([]interface{}, 12)
	_, err = ParseMarketplaceListing(out)
	require.Equal(t, ErrUnexpectedOutput, err)
}

func TestWriteMethods(t *testing.T) {
	req := require.New(t)
	_, err := MarketplaceABI.Pack("offer", big.NewInt(1), big.NewInt(1), common.Address{}, big.NewInt(10))
	req.NoError(err)
	_, err = MarketplaceABI.Pack("buy", big.NewInt(1), common.Address{}, big.NewInt(1), common.Address{}, big.NewInt(10))
	req.NoError(err)
	_, err = ERC20TokenABI.Pack("approve", common.Address{}, big.NewInt(10))
	req.NoError(err)
}
