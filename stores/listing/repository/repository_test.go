package repository

import (
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	baseabi "github.com/x-xyz/listingpage/base/abi"
	"github.com/x-xyz/listingpage/base/ctx"
	"github.com/x-xyz/listingpage/domain"
	"github.com/x-xyz/listingpage/domain/listing"
	domainMocks "github.com/x-xyz/listingpage/domain/mocks"
	"github.com/x-xyz/listingpage/domain/wallet"
	walletMocks "github.com/x-xyz/listingpage/domain/wallet/mocks"
	"github.com/x-xyz/listingpage/service/cache"
	"github.com/x-xyz/listingpage/service/cache/provider/primitive"
	contractMocks "github.com/x-xyz/listingpage/service/chain/contract/mocks"
	ensMocks "github.com/x-xyz/listingpage/service/ens/mocks"
)

var (
	chainId     = domain.ChainId(137)
	marketAddr  = domain.Address("0x0aBBBBbBbbBBbBbbBbbBBBBBbbbBBBbBbbBbbbBB")
	sellerAddr  = common.HexToAddress("0x020cA66C30beC2c4Fe3861a94E4DB4A498A35872")
	nftAddr     = common.HexToAddress("0xBC4CA0EdA7647A8aB7C2061c2E118A18a936f13D")
	erc20Addr   = common.HexToAddress("0x7ceB23fD6bC0adD59E62ac25578270cFf1b9f619")
	buyerAddr   = domain.Address("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	nativeToken = common.HexToAddress(domain.NativeTokenAddress.ToLowerStr())
)

func bigEq(s string) interface{} {
	return mock.MatchedBy(func(v *big.Int) bool { return v != nil && v.String() == s })
}

func mustBig(s string) *big.Int {
	v, _ := new(big.Int).SetString(s, 10)
	return v
}

type repoSuite struct {
	suite.Suite

	ctx         ctx.Ctx
	marketplace *contractMocks.MarketplaceContract
	erc721      *contractMocks.Erc721Contract
	erc1155     *contractMocks.Erc1155Contract
	erc20       *contractMocks.Erc20Contract
	wallet      *walletMocks.Provider
	webResource *domainMocks.WebResourceUseCase
	ens         *ensMocks.ENS
	repo        listing.MarketplaceRepo
}

func (s *repoSuite) SetupTest() {
	s.ctx = ctx.Background()
	s.marketplace = contractMocks.NewMarketplaceContract(s.T())
	s.erc721 = contractMocks.NewErc721Contract(s.T())
	s.erc1155 = contractMocks.NewErc1155Contract(s.T())
	s.erc20 = contractMocks.NewErc20Contract(s.T())
	s.wallet = walletMocks.NewProvider(s.T())
	s.webResource = domainMocks.NewWebResourceUseCase(s.T())
	s.ens = ensMocks.NewENS(s.T())

	s.marketplace.On("ChainId").Return(chainId).Maybe()
	s.marketplace.On("Address").Return(marketAddr).Maybe()
	s.wallet.On("Address").Return(buyerAddr).Maybe()

	s.repo = New(&Cfg{
		Marketplace: s.marketplace,
		Erc721:      s.erc721,
		Erc1155:     s.erc1155,
		Erc20:       s.erc20,
		Wallet:      s.wallet,
		WebResource: s.webResource,
		Ens:         s.ens,
		ListingCache: cache.New(cache.ServiceConfig{
			Ttl:   time.Minute,
			Pfx:   "listing",
			Cache: primitive.NewPrimitive("listing", 1),
		}),
		CurrencyCache: cache.New(cache.ServiceConfig{
			Ttl:   time.Hour,
			Pfx:   "currency",
			Cache: primitive.NewPrimitive("currency", 1),
		}),
	})
}

func TestRepoSuite(t *testing.T) {
	suite.Run(t, new(repoSuite))
}

func (s *repoSuite) rawListing(listingType listing.Type, currency common.Address) *baseabi.MarketplaceListing {
	return &baseabi.MarketplaceListing{
		ListingId:            big.NewInt(7),
		TokenOwner:           sellerAddr,
		AssetContract:        nftAddr,
		TokenId:              big.NewInt(42),
		StartTime:            big.NewInt(1650000000),
		EndTime:              big.NewInt(0),
		Quantity:             big.NewInt(5),
		Currency:             currency,
		ReservePricePerToken: mustBig("50000000000000000"),
		BuyoutPricePerToken:  mustBig("100000000000000000"),
		TokenType:            uint8(listing.TokenType721),
		ListingType:          uint8(listingType),
	}
}

// expectFetch sets up one uncached load of listing 7
func (s *repoSuite) expectFetch(raw *baseabi.MarketplaceListing) {
	s.marketplace.On("Listing", mock.Anything, bigEq("7")).Return(raw, nil).Once()
	s.erc721.On("TokenURI", mock.Anything, chainId, domain.Address(nftAddr.Hex()), bigEq("42")).Return("ipfs://QmMeta/42", nil).Once()
	s.webResource.On("GetJson", mock.Anything, "ipfs://QmMeta/42").Return([]byte(`{"name":"Ape #42","description":"an ape","image_url":"ipfs://QmImage"}`), nil).Once()
	s.ens.On("ReverseResolve", mock.Anything, domain.Address(sellerAddr.Hex())).Return("seller.eth", nil).Once()
}

func (s *repoSuite) expectTransactor(onChain domain.ChainId) *bind.TransactOpts {
	opts := &bind.TransactOpts{From: buyerAddr.ToCommon()}
	s.wallet.On("Transactor", mock.Anything).Return(opts, onChain, nil).Once()
	return opts
}

func (s *repoSuite) TestFindOne() {
	s.expectFetch(s.rawListing(listing.TypeDirect, nativeToken))

	l, err := s.repo.FindOne(s.ctx, "7")
	s.Require().NoError(err)
	s.Equal("7", l.Id)
	s.Equal(listing.TypeDirect, l.Type)
	s.Equal("5", l.Quantity)
	s.Equal("seller.eth", l.SellerName)
	s.True(l.SellerAddress.Equals(domain.Address(sellerAddr.Hex())))
	s.Equal("Ape #42", l.Asset.Name)
	s.Equal("an ape", l.Asset.Description)
	s.Equal("ipfs://QmImage", l.Asset.Image)
	s.Equal(domain.TokenId("42"), l.Asset.Id)
	s.Equal("MATIC", l.BuyoutCurrencyValuePerToken.Symbol)
	s.Equal(int32(18), l.BuyoutCurrencyValuePerToken.Decimals)
	s.Equal("100000000000000000", l.BuyoutCurrencyValuePerToken.Value)
	s.Equal("0.1", l.BuyoutCurrencyValuePerToken.DisplayValue)
	s.Equal("0.05", l.ReserveCurrencyValuePerToken.DisplayValue)
	s.True(l.EndTime.IsZero())
	s.Equal(int64(1650000000), l.StartTime.Unix())

	// served from cache, mocks are set up for a single load
	cached, err := s.repo.FindOne(s.ctx, "7")
	s.Require().NoError(err)
	s.Equal(l.Asset, cached.Asset)
	s.Equal(l.BuyoutCurrencyValuePerToken, cached.BuyoutCurrencyValuePerToken)
}

func (s *repoSuite) TestFindOneInvalidate() {
	raw := s.rawListing(listing.TypeDirect, nativeToken)
	s.expectFetch(raw)
	_, err := s.repo.FindOne(s.ctx, "7")
	s.Require().NoError(err)

	s.NoError(s.repo.Invalidate(s.ctx, "7"))

	s.expectFetch(raw)
	_, err = s.repo.FindOne(s.ctx, "7")
	s.NoError(err)
}

func (s *repoSuite) TestFindOneNotFound() {
	s.marketplace.On("Listing", mock.Anything, bigEq("9")).Return(&baseabi.MarketplaceListing{
		ListingId:            big.NewInt(0),
		TokenId:              big.NewInt(0),
		StartTime:            big.NewInt(0),
		EndTime:              big.NewInt(0),
		Quantity:             big.NewInt(0),
		ReservePricePerToken: big.NewInt(0),
		BuyoutPricePerToken:  big.NewInt(0),
	}, nil).Once()

	_, err := s.repo.FindOne(s.ctx, "9")
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *repoSuite) TestFindOneBadId() {
	_, err := s.repo.FindOne(s.ctx, "abc")
	s.ErrorIs(err, domain.ErrBadParamInput)
}

func (s *repoSuite) TestFindOneChainError() {
	chainErr := errors.New("rpc down")
	s.marketplace.On("Listing", mock.Anything, bigEq("7")).Return(nil, chainErr).Once()

	_, err := s.repo.FindOne(s.ctx, "7")
	s.ErrorIs(err, chainErr)
}

func (s *repoSuite) TestFindOneMetadataMissing() {
	raw := s.rawListing(listing.TypeDirect, nativeToken)
	raw.TokenType = uint8(listing.TokenType1155)
	s.marketplace.On("Listing", mock.Anything, bigEq("7")).Return(raw, nil).Once()
	s.erc1155.On("Uri", mock.Anything, chainId, domain.Address(nftAddr.Hex()), bigEq("42")).Return("", errors.New("execution reverted")).Once()
	s.ens.On("ReverseResolve", mock.Anything, mock.Anything).Return("", errors.New("timeout")).Once()

	l, err := s.repo.FindOne(s.ctx, "7")
	s.Require().NoError(err)
	s.Equal(listing.TokenType1155, l.Asset.TokenType)
	s.Empty(l.Asset.Name)
	s.Empty(l.Asset.Image)
	s.Empty(l.SellerName)
}

func (s *repoSuite) TestFindOneErc20Currency() {
	raw := s.rawListing(listing.TypeDirect, erc20Addr)
	raw.BuyoutPricePerToken = big.NewInt(2500000)
	s.expectFetch(raw)
	s.erc20.On("Symbol", mock.Anything, chainId, domain.Address(erc20Addr.Hex())).Return("USDC", nil).Once()
	s.erc20.On("Decimals", mock.Anything, chainId, domain.Address(erc20Addr.Hex())).Return(int32(6), nil).Once()

	l, err := s.repo.FindOne(s.ctx, "7")
	s.Require().NoError(err)
	s.Equal("USDC", l.BuyoutCurrencyValuePerToken.Symbol)
	s.Equal("2.5", l.BuyoutCurrencyValuePerToken.DisplayValue)
}

func (s *repoSuite) TestFindOneCurrencyError() {
	raw := s.rawListing(listing.TypeDirect, erc20Addr)
	s.expectFetch(raw)
	s.erc20.On("Symbol", mock.Anything, chainId, mock.Anything).Return("", errors.New("not a token")).Once()

	_, err := s.repo.FindOne(s.ctx, "7")
	s.Error(err)
}

func (s *repoSuite) TestMakeOfferNative() {
	s.expectFetch(s.rawListing(listing.TypeDirect, nativeToken))
	opts := s.expectTransactor(chainId)
	wrapped, err := domain.WrappedNative(chainId)
	s.Require().NoError(err)
	s.erc20.On("Allowance", mock.Anything, chainId, wrapped, buyerAddr, marketAddr).Return(big.NewInt(0), nil).Once()
	s.erc20.On("Approve", mock.Anything, chainId, opts, wrapped, marketAddr, bigEq("300000000000000000")).Return(domain.TxHash("0xapprove"), nil).Once()
	s.marketplace.On("Offer", mock.Anything, opts, bigEq("7"), bigEq("2"), domain.NativeTokenAddress, bigEq("150000000000000000")).
		Return(domain.TxHash("0xoffer"), nil).Once()

	hash, err := s.repo.MakeOffer(s.ctx, "7", "2", domain.NativeTokenAddress, "0.15")
	s.Require().NoError(err)
	s.Equal(domain.TxHash("0xoffer"), hash)
	// the marketplace rejects value on direct offers
	s.Nil(opts.Value)
}

func (s *repoSuite) TestMakeOfferNativeApproveFailed() {
	s.expectFetch(s.rawListing(listing.TypeDirect, nativeToken))
	opts := s.expectTransactor(chainId)
	wrapped, err := domain.WrappedNative(chainId)
	s.Require().NoError(err)
	s.erc20.On("Allowance", mock.Anything, chainId, wrapped, buyerAddr, marketAddr).Return(big.NewInt(0), nil).Once()
	approveErr := errors.New("insufficient funds for gas")
	s.erc20.On("Approve", mock.Anything, chainId, opts, wrapped, marketAddr, mock.Anything).Return(domain.TxHash(""), approveErr).Once()

	_, err = s.repo.MakeOffer(s.ctx, "7", "1", domain.NativeTokenAddress, "1")
	s.ErrorIs(err, approveErr)
	s.marketplace.AssertNotCalled(s.T(), "Offer", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *repoSuite) TestMakeOfferApprovesErc20() {
	raw := s.rawListing(listing.TypeDirect, erc20Addr)
	s.expectFetch(raw)
	currency := domain.Address(erc20Addr.Hex())
	s.erc20.On("Symbol", mock.Anything, chainId, currency).Return("WETH", nil).Once()
	s.erc20.On("Decimals", mock.Anything, chainId, currency).Return(int32(18), nil).Once()
	opts := s.expectTransactor(chainId)
	s.erc20.On("Allowance", mock.Anything, chainId, currency, buyerAddr, marketAddr).Return(big.NewInt(0), nil).Once()
	s.erc20.On("Approve", mock.Anything, chainId, opts, currency, marketAddr, bigEq("1000000000000000000")).Return(domain.TxHash("0xapprove"), nil).Once()
	s.marketplace.On("Offer", mock.Anything, opts, bigEq("7"), bigEq("1"), currency, bigEq("1000000000000000000")).
		Return(domain.TxHash("0xoffer"), nil).Once()

	hash, err := s.repo.MakeOffer(s.ctx, "7", "1", currency, "1")
	s.Require().NoError(err)
	s.Equal(domain.TxHash("0xoffer"), hash)
	s.Nil(opts.Value)
}

func (s *repoSuite) TestMakeOfferEnoughAllowance() {
	raw := s.rawListing(listing.TypeDirect, erc20Addr)
	s.expectFetch(raw)
	currency := domain.Address(erc20Addr.Hex())
	s.erc20.On("Symbol", mock.Anything, chainId, currency).Return("WETH", nil).Once()
	s.erc20.On("Decimals", mock.Anything, chainId, currency).Return(int32(18), nil).Once()
	opts := s.expectTransactor(chainId)
	s.erc20.On("Allowance", mock.Anything, chainId, currency, buyerAddr, marketAddr).Return(mustBig("5000000000000000000"), nil).Once()
	s.marketplace.On("Offer", mock.Anything, opts, bigEq("7"), bigEq("1"), currency, bigEq("1000000000000000000")).
		Return(domain.TxHash("0xoffer"), nil).Once()

	_, err := s.repo.MakeOffer(s.ctx, "7", "1", currency, "1")
	s.NoError(err)
}

func (s *repoSuite) TestMakeOfferRejections() {
	s.expectFetch(s.rawListing(listing.TypeAuction, nativeToken))

	_, err := s.repo.MakeOffer(s.ctx, "7", "1", domain.NativeTokenAddress, "1")
	s.ErrorIs(err, listing.ErrWrongListingType)

	s.Require().NoError(s.repo.Invalidate(s.ctx, "7"))
	s.expectFetch(s.rawListing(listing.TypeDirect, nativeToken))

	_, err = s.repo.MakeOffer(s.ctx, "7", "0", domain.NativeTokenAddress, "1")
	s.ErrorIs(err, domain.ErrInvalidNumberFormat)

	_, err = s.repo.MakeOffer(s.ctx, "7", "1", domain.NativeTokenAddress, "abc")
	s.ErrorIs(err, domain.ErrInvalidNumberFormat)
}

func (s *repoSuite) TestMakeOfferWrongNetwork() {
	s.expectFetch(s.rawListing(listing.TypeDirect, nativeToken))
	s.expectTransactor(domain.ChainId(4))

	_, err := s.repo.MakeOffer(s.ctx, "7", "1", domain.NativeTokenAddress, "1")
	s.ErrorIs(err, wallet.ErrUnsupportedNetwork)
}

func (s *repoSuite) TestMakeBid() {
	s.expectFetch(s.rawListing(listing.TypeAuction, nativeToken))
	opts := s.expectTransactor(chainId)
	s.marketplace.On("Offer", mock.Anything, opts, bigEq("7"), bigEq("5"), domain.Address(nativeToken.Hex()), bigEq("60000000000000000")).
		Return(domain.TxHash("0xbid"), nil).Once()

	hash, err := s.repo.MakeBid(s.ctx, "7", "0.06")
	s.Require().NoError(err)
	s.Equal(domain.TxHash("0xbid"), hash)
	s.Equal("300000000000000000", opts.Value.String())
}

func (s *repoSuite) TestMakeBidRejections() {
	s.expectFetch(s.rawListing(listing.TypeAuction, nativeToken))

	_, err := s.repo.MakeBid(s.ctx, "7", "0.01")
	s.ErrorIs(err, ErrBidTooLow)

	_, err = s.repo.MakeBid(s.ctx, "7", "-1")
	s.ErrorIs(err, domain.ErrInvalidNumberFormat)

	s.Require().NoError(s.repo.Invalidate(s.ctx, "7"))
	s.expectFetch(s.rawListing(listing.TypeDirect, nativeToken))

	_, err = s.repo.MakeBid(s.ctx, "7", "1")
	s.ErrorIs(err, listing.ErrWrongListingType)
}

func (s *repoSuite) TestBuyoutDirect() {
	s.expectFetch(s.rawListing(listing.TypeDirect, nativeToken))
	opts := s.expectTransactor(chainId)
	s.marketplace.On("Buy", mock.Anything, opts, bigEq("7"), buyerAddr, bigEq("3"), domain.Address(nativeToken.Hex()), bigEq("300000000000000000")).
		Return(domain.TxHash("0xbuy"), nil).Once()

	hash, err := s.repo.BuyoutListing(s.ctx, "7", "3")
	s.Require().NoError(err)
	s.Equal(domain.TxHash("0xbuy"), hash)
	s.Equal("300000000000000000", opts.Value.String())
}

func (s *repoSuite) TestBuyoutAuction() {
	s.expectFetch(s.rawListing(listing.TypeAuction, nativeToken))
	opts := s.expectTransactor(chainId)
	s.marketplace.On("Offer", mock.Anything, opts, bigEq("7"), bigEq("5"), domain.Address(nativeToken.Hex()), bigEq("100000000000000000")).
		Return(domain.TxHash("0xbuyout"), nil).Once()

	// quantity is ignored for auctions
	hash, err := s.repo.BuyoutListing(s.ctx, "7", "1")
	s.Require().NoError(err)
	s.Equal(domain.TxHash("0xbuyout"), hash)
}

func (s *repoSuite) TestBuyoutTxFailed() {
	s.expectFetch(s.rawListing(listing.TypeDirect, nativeToken))
	opts := s.expectTransactor(chainId)
	txErr := errors.New("insufficient funds")
	s.marketplace.On("Buy", mock.Anything, opts, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(domain.TxHash(""), txErr).Once()

	_, err := s.repo.BuyoutListing(s.ctx, "7", "1")
	s.ErrorIs(err, txErr)
}

func (s *repoSuite) TestWritesRefuseInactiveListing() {
	raw := s.rawListing(listing.TypeDirect, nativeToken)
	raw.EndTime = big.NewInt(1650000100)
	s.expectFetch(raw)

	s.repo.(*impl).now = func() time.Time { return time.Unix(1650000200, 0) }

	_, err := s.repo.MakeOffer(s.ctx, "7", "1", domain.NativeTokenAddress, "1")
	s.ErrorIs(err, listing.ErrListingExpired)
	_, err = s.repo.BuyoutListing(s.ctx, "7", "1")
	s.ErrorIs(err, listing.ErrListingExpired)

	s.repo.(*impl).now = func() time.Time { return time.Unix(1649999999, 0) }
	_, err = s.repo.BuyoutListing(s.ctx, "7", "1")
	s.ErrorIs(err, listing.ErrListingExpired)

	s.wallet.AssertNotCalled(s.T(), "Transactor", mock.Anything)
}

func (s *repoSuite) TestBidRefusesEndedAuction() {
	raw := s.rawListing(listing.TypeAuction, nativeToken)
	raw.EndTime = big.NewInt(1650000100)
	s.expectFetch(raw)
	s.repo.(*impl).now = func() time.Time { return time.Unix(1650000100, 0) }

	_, err := s.repo.MakeBid(s.ctx, "7", "1")
	s.ErrorIs(err, listing.ErrListingExpired)
	s.wallet.AssertNotCalled(s.T(), "Transactor", mock.Anything)
}
