package repository

import (
	"encoding/json"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/shopspring/decimal"
	"github.com/viney-shih/goroutines"
	"golang.org/x/xerrors"

	baseabi "github.com/x-xyz/listingpage/base/abi"
	"github.com/x-xyz/listingpage/base/ctx"
	"github.com/x-xyz/listingpage/base/log"
	"github.com/x-xyz/listingpage/base/metrics"
	"github.com/x-xyz/listingpage/domain"
	"github.com/x-xyz/listingpage/domain/chain"
	"github.com/x-xyz/listingpage/domain/keys"
	"github.com/x-xyz/listingpage/domain/listing"
	"github.com/x-xyz/listingpage/domain/wallet"
	"github.com/x-xyz/listingpage/service/cache"
	"github.com/x-xyz/listingpage/service/chain/contract"
	"github.com/x-xyz/listingpage/service/ens"
)

const defaultEnrichWorkers = 3

var ErrBidTooLow = xerrors.New("bid is below the reserve price")

type Cfg struct {
	Marketplace contract.MarketplaceContract
	Erc721      contract.Erc721Contract
	Erc1155     contract.Erc1155Contract
	Erc20       contract.Erc20Contract
	Wallet      wallet.Provider
	WebResource domain.WebResourceUseCase
	// Ens is optional, seller names stay empty without it
	Ens           ens.ENS
	ListingCache  cache.Service
	CurrencyCache cache.Service
	EnrichWorkers int
}

type impl struct {
	marketplace   contract.MarketplaceContract
	erc721        contract.Erc721Contract
	erc1155       contract.Erc1155Contract
	erc20         contract.Erc20Contract
	wallet        wallet.Provider
	webResource   domain.WebResourceUseCase
	ens           ens.ENS
	listingCache  cache.Service
	currencyCache cache.Service
	enrichWorkers int
	met           metrics.Service
	now           func() time.Time
}

func New(cfg *Cfg) listing.MarketplaceRepo {
	workers := cfg.EnrichWorkers
	if workers <= 0 {
		workers = defaultEnrichWorkers
	}
	return &impl{
		marketplace:   cfg.Marketplace,
		erc721:        cfg.Erc721,
		erc1155:       cfg.Erc1155,
		erc20:         cfg.Erc20,
		wallet:        cfg.Wallet,
		webResource:   cfg.WebResource,
		ens:           cfg.Ens,
		listingCache:  cfg.ListingCache,
		currencyCache: cfg.CurrencyCache,
		enrichWorkers: workers,
		met:           metrics.New("listing"),
		now:           time.Now,
	}
}

func (im *impl) listingKey(listingId string) string {
	return keys.RedisKey(keys.PfxListing, fmt.Sprint(im.marketplace.ChainId()), im.marketplace.Address().ToLowerStr(), listingId)
}

func (im *impl) FindOne(c ctx.Ctx, listingId string) (*listing.Listing, error) {
	res := listing.Listing{}
	err := im.listingCache.GetByFunc(c, im.listingKey(listingId), &res, func() (interface{}, error) {
		return im.fetch(c, listingId)
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (im *impl) Invalidate(c ctx.Ctx, listingId string) error {
	if err := im.listingCache.Del(c, im.listingKey(listingId)); err != nil {
		c.WithFields(log.Fields{
			"err":       err,
			"listingId": listingId,
		}).Error("listingCache.Del failed")
		return err
	}
	return nil
}

func (im *impl) fetch(c ctx.Ctx, listingId string) (*listing.Listing, error) {
	defer im.met.BumpTime("fetch.time").End()

	id, err := domain.TokenId(listingId).ToBigInt()
	if err != nil {
		return nil, xerrors.Errorf("listing id %q: %w", listingId, domain.ErrBadParamInput)
	}

	raw, err := im.marketplace.Listing(c, id)
	if err != nil {
		c.WithFields(log.Fields{
			"err":       err,
			"listingId": listingId,
		}).Error("marketplace.Listing failed")
		return nil, err
	}
	// the contract returns a zero struct for ids it never issued
	if domain.Address(raw.TokenOwner.Hex()).IsEmpty() || domain.Address(raw.AssetContract.Hex()).IsEmpty() {
		return nil, domain.ErrNotFound
	}

	return im.enrich(c, raw)
}

type metadata struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
	ImageUrl    string `json:"image_url"`
}

type enrichResult struct {
	metadata   *metadata
	currency   *listing.Currency
	sellerName *string
}

// enrich looks up token metadata, currency info and the seller's ENS name concurrently
func (im *impl) enrich(c ctx.Ctx, raw *baseabi.MarketplaceListing) (*listing.Listing, error) {
	seller := domain.Address(raw.TokenOwner.Hex())
	currencyAddr := domain.Address(raw.Currency.Hex())
	tokenType := listing.TokenType(raw.TokenType)

	b := goroutines.NewBatch(im.enrichWorkers, goroutines.WithBatchSize(3))
	defer b.Close()

	b.Queue(func() (interface{}, error) {
		md, err := im.metadata(c, domain.Address(raw.AssetContract.Hex()), tokenType, raw.TokenId)
		if err != nil {
			// listing still renders without media
			c.WithFields(log.Fields{
				"err":     err,
				"tokenId": raw.TokenId.String(),
			}).Warn("im.metadata failed")
			md = &metadata{}
		}
		return enrichResult{metadata: md}, nil
	})
	b.Queue(func() (interface{}, error) {
		cur, err := im.currency(c, currencyAddr)
		if err != nil {
			return nil, err
		}
		return enrichResult{currency: cur}, nil
	})
	b.Queue(func() (interface{}, error) {
		name := ""
		if im.ens != nil {
			n, err := im.ens.ReverseResolve(c, seller)
			if err != nil {
				c.WithFields(log.Fields{
					"err":    err,
					"seller": seller,
				}).Warn("ens.ReverseResolve failed")
			}
			name = n
		}
		return enrichResult{sellerName: &name}, nil
	})
	b.QueueComplete()

	var (
		md         = &metadata{}
		currency   *listing.Currency
		sellerName string
		firstErr   error
	)
	for ret := range b.Results() {
		if ret.Error() != nil {
			if firstErr == nil {
				firstErr = ret.Error()
			}
			continue
		}
		r := ret.Value().(enrichResult)
		switch {
		case r.metadata != nil:
			md = r.metadata
		case r.currency != nil:
			currency = r.currency
		case r.sellerName != nil:
			sellerName = *r.sellerName
		}
	}
	if firstErr != nil {
		c.WithField("err", firstErr).Error("currency lookup failed")
		return nil, firstErr
	}

	image := md.Image
	if image == "" {
		image = md.ImageUrl
	}

	l := &listing.Listing{
		Id:            raw.ListingId.String(),
		SellerAddress: seller,
		SellerName:    sellerName,
		Type:          listing.Type(raw.ListingType),
		Quantity:      raw.Quantity.String(),
		StartTime:     unixOrZero(raw.StartTime),
		EndTime:       unixOrZero(raw.EndTime),
		Asset: listing.Asset{
			Id:            domain.TokenId(raw.TokenId.String()),
			AssetContract: domain.Address(raw.AssetContract.Hex()),
			TokenType:     tokenType,
			Name:          md.Name,
			Description:   md.Description,
			Image:         image,
		},
		BuyoutCurrencyValuePerToken:  listing.NewCurrencyValue(*currency, decimal.NewFromBigInt(raw.BuyoutPricePerToken, 0)),
		ReserveCurrencyValuePerToken: listing.NewCurrencyValue(*currency, decimal.NewFromBigInt(raw.ReservePricePerToken, 0)),
	}
	return l, nil
}

func unixOrZero(v *big.Int) time.Time {
	if v == nil || v.Sign() == 0 {
		return time.Time{}
	}
	return time.Unix(v.Int64(), 0).UTC()
}

func (im *impl) metadata(c ctx.Ctx, assetContract domain.Address, tokenType listing.TokenType, tokenId *big.Int) (*metadata, error) {
	chainId := im.marketplace.ChainId()
	var (
		uri string
		err error
	)
	if tokenType == listing.TokenType1155 {
		uri, err = im.erc1155.Uri(c, chainId, assetContract, tokenId)
	} else {
		uri, err = im.erc721.TokenURI(c, chainId, assetContract, tokenId)
	}
	if err != nil {
		return nil, err
	}

	data, err := im.webResource.GetJson(c, uri)
	if err != nil {
		return nil, err
	}
	md := &metadata{}
	if err := json.Unmarshal(data, md); err != nil {
		return nil, err
	}
	return md, nil
}

func (im *impl) currency(c ctx.Ctx, address domain.Address) (*listing.Currency, error) {
	chainId := im.marketplace.ChainId()
	if address.IsNative() {
		return &listing.Currency{Address: address, Symbol: chain.NativeSymbol(chainId), Decimals: 18}, nil
	}

	res := listing.Currency{}
	key := keys.RedisKey(keys.PfxCurrency, fmt.Sprint(chainId), address.ToLowerStr())
	err := im.currencyCache.GetByFunc(c, key, &res, func() (interface{}, error) {
		symbol, err := im.erc20.Symbol(c, chainId, address)
		if err != nil {
			c.WithField("err", err).WithField("currency", address).Error("erc20.Symbol failed")
			return nil, err
		}
		decimals, err := im.erc20.Decimals(c, chainId, address)
		if err != nil {
			c.WithField("err", err).WithField("currency", address).Error("erc20.Decimals failed")
			return nil, err
		}
		return &listing.Currency{Address: address, Symbol: symbol, Decimals: decimals}, nil
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// transactor returns signing options, refusing to sign for another network
func (im *impl) transactor(c ctx.Ctx) (*bind.TransactOpts, error) {
	opts, chainId, err := im.wallet.Transactor(c)
	if err != nil {
		return nil, err
	}
	if chainId != im.marketplace.ChainId() {
		return nil, xerrors.Errorf("wallet on chain %d, marketplace on %d: %w", chainId, im.marketplace.ChainId(), wallet.ErrUnsupportedNetwork)
	}
	return opts, nil
}

// pay attaches value for native payments, otherwise makes sure the marketplace may pull total
func (im *impl) pay(c ctx.Ctx, opts *bind.TransactOpts, currency domain.Address, total *big.Int) error {
	if currency.IsNative() {
		opts.Value = total
		return nil
	}
	return im.approve(c, opts, currency, total)
}

// approve raises the marketplace allowance of token to total when it is short
func (im *impl) approve(c ctx.Ctx, opts *bind.TransactOpts, token domain.Address, total *big.Int) error {
	chainId := im.marketplace.ChainId()
	allowance, err := im.erc20.Allowance(c, chainId, token, im.wallet.Address(), im.marketplace.Address())
	if err != nil {
		c.WithField("err", err).Error("erc20.Allowance failed")
		return err
	}
	if allowance.Cmp(total) >= 0 {
		return nil
	}

	hash, err := im.erc20.Approve(c, chainId, opts, token, im.marketplace.Address(), total)
	if err != nil {
		c.WithFields(log.Fields{
			"err":      err,
			"currency": token,
			"txHash":   hash,
		}).Error("erc20.Approve failed")
		return err
	}
	c.WithFields(log.Fields{
		"currency": token,
		"amount":   total.String(),
		"txHash":   hash,
	}).Info("allowance approved")
	return nil
}

// activeListing loads the listing and refuses writes outside its start and end time
func (im *impl) activeListing(c ctx.Ctx, listingId string) (*listing.Listing, error) {
	l, err := im.FindOne(c, listingId)
	if err != nil {
		return nil, err
	}
	if !l.IsActive(im.now()) {
		c.WithFields(log.Fields{
			"listingId": listingId,
			"startTime": l.StartTime,
			"endTime":   l.EndTime,
		}).Warn("listing not active")
		return nil, listing.ErrListingExpired
	}
	return l, nil
}

func (im *impl) MakeOffer(c ctx.Ctx, listingId string, quantity string, currency domain.Address, pricePerToken string) (domain.TxHash, error) {
	defer im.met.BumpTime("offer.time").End()

	l, err := im.activeListing(c, listingId)
	if err != nil {
		return "", err
	}
	if l.Type != listing.TypeDirect {
		return "", listing.ErrWrongListingType
	}

	q, err := listing.ParseQuantity(quantity)
	if err != nil {
		return "", err
	}
	cur, err := im.currency(c, currency)
	if err != nil {
		return "", err
	}
	price, err := listing.ParsePrice(pricePerToken, cur.Decimals)
	if err != nil {
		return "", err
	}
	id, _ := domain.TokenId(l.Id).ToBigInt()

	opts, err := im.transactor(c)
	if err != nil {
		return "", err
	}
	// direct offers never carry value, the marketplace pulls the wrapped native token instead
	spend := currency
	if currency.IsNative() {
		if spend, err = domain.WrappedNative(im.marketplace.ChainId()); err != nil {
			c.WithField("err", err).Error("domain.WrappedNative failed")
			return "", err
		}
	}
	if err := im.approve(c, opts, spend, new(big.Int).Mul(q, price)); err != nil {
		return "", err
	}

	hash, err := im.marketplace.Offer(c, opts, id, q, currency, price)
	if err != nil {
		im.met.BumpSum("offer.err", 1)
		c.WithFields(log.Fields{
			"err":       err,
			"listingId": listingId,
			"txHash":    hash,
		}).Error("marketplace.Offer failed")
		return "", err
	}
	return hash, nil
}

// MakeBid bids amount per token for the whole auctioned quantity
func (im *impl) MakeBid(c ctx.Ctx, listingId string, amount string) (domain.TxHash, error) {
	defer im.met.BumpTime("bid.time").End()

	l, err := im.activeListing(c, listingId)
	if err != nil {
		return "", err
	}
	if l.Type != listing.TypeAuction {
		return "", listing.ErrWrongListingType
	}

	cur := l.BuyoutCurrencyValuePerToken.Currency
	price, err := listing.ParsePrice(amount, cur.Decimals)
	if err != nil {
		return "", err
	}
	if reserve, ok := new(big.Int).SetString(l.ReserveCurrencyValuePerToken.Value, 10); ok && price.Cmp(reserve) < 0 {
		return "", ErrBidTooLow
	}
	q, err := listing.ParseQuantity(l.Quantity)
	if err != nil {
		return "", err
	}
	id, _ := domain.TokenId(l.Id).ToBigInt()

	opts, err := im.transactor(c)
	if err != nil {
		return "", err
	}
	if err := im.pay(c, opts, cur.Address, new(big.Int).Mul(q, price)); err != nil {
		return "", err
	}

	hash, err := im.marketplace.Offer(c, opts, id, q, cur.Address, price)
	if err != nil {
		im.met.BumpSum("bid.err", 1)
		c.WithFields(log.Fields{
			"err":       err,
			"listingId": listingId,
			"txHash":    hash,
		}).Error("marketplace.Offer failed")
		return "", err
	}
	return hash, nil
}

// BuyoutListing buys quantity of a direct listing, or closes an auction at its buyout price
func (im *impl) BuyoutListing(c ctx.Ctx, listingId string, quantity string) (domain.TxHash, error) {
	defer im.met.BumpTime("buyout.time").End()

	l, err := im.activeListing(c, listingId)
	if err != nil {
		return "", err
	}

	cur := l.BuyoutCurrencyValuePerToken.Currency
	price, ok := new(big.Int).SetString(l.BuyoutCurrencyValuePerToken.Value, 10)
	if !ok {
		return "", xerrors.Errorf("buyout price %q: %w", l.BuyoutCurrencyValuePerToken.Value, domain.ErrInvalidNumberFormat)
	}
	if l.Type == listing.TypeAuction {
		// auctions are bought out whole
		quantity = l.Quantity
	}
	q, err := listing.ParseQuantity(quantity)
	if err != nil {
		return "", err
	}
	id, _ := domain.TokenId(l.Id).ToBigInt()
	total := new(big.Int).Mul(q, price)

	opts, err := im.transactor(c)
	if err != nil {
		return "", err
	}
	if err := im.pay(c, opts, cur.Address, total); err != nil {
		return "", err
	}

	var hash domain.TxHash
	if l.Type == listing.TypeAuction {
		hash, err = im.marketplace.Offer(c, opts, id, q, cur.Address, price)
	} else {
		hash, err = im.marketplace.Buy(c, opts, id, im.wallet.Address(), q, cur.Address, total)
	}
	if err != nil {
		im.met.BumpSum("buyout.err", 1)
		c.WithFields(log.Fields{
			"err":       err,
			"listingId": listingId,
			"txHash":    hash,
		}).Error("marketplace buyout failed")
		return "", err
	}
	return hash, nil
}
