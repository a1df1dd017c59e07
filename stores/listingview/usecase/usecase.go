package usecase

import (
	"sync"
	"time"

	"github.com/x-xyz/listingpage/base/ctx"
	"github.com/x-xyz/listingpage/base/metrics"
	"github.com/x-xyz/listingpage/domain"
	"github.com/x-xyz/listingpage/domain/listing"
	"github.com/x-xyz/listingpage/domain/listingview"
	"github.com/x-xyz/listingpage/domain/notification"
	"github.com/x-xyz/listingpage/domain/wallet"
)

const (
	// DefaultRequiredChainId is the network write actions are sent on, rinkeby
	DefaultRequiredChainId = domain.ChainId(4)

	defaultNotifyTimeout = 10 * time.Second
)

type Cfg struct {
	Marketplace listing.MarketplaceRepo
	Wallet      wallet.Provider
	Media       domain.WebResourceUseCase
	// Notifier is optional
	Notifier        notification.Notifier
	RequiredChainId domain.ChainId
	// OfferCurrency is the token offers on direct listings are made in
	OfferCurrency domain.Address
	NotifyTimeout time.Duration
}

type impl struct {
	marketplace     listing.MarketplaceRepo
	wallet          wallet.Provider
	media           domain.WebResourceUseCase
	notifier        notification.Notifier
	requiredChainId domain.ChainId
	offerCurrency   domain.Address
	notifyTimeout   time.Duration
	met             metrics.Service
	now             func() time.Time
}

func New(cfg *Cfg) listingview.Usecase {
	requiredChainId := cfg.RequiredChainId
	if requiredChainId == 0 {
		requiredChainId = DefaultRequiredChainId
	}
	notifyTimeout := cfg.NotifyTimeout
	if notifyTimeout <= 0 {
		notifyTimeout = defaultNotifyTimeout
	}
	return &impl{
		marketplace:     cfg.Marketplace,
		wallet:          cfg.Wallet,
		media:           cfg.Media,
		notifier:        cfg.Notifier,
		requiredChainId: requiredChainId,
		offerCurrency:   cfg.OfferCurrency,
		notifyTimeout:   notifyTimeout,
		met:             metrics.New("listingview"),
		now:             time.Now,
	}
}

func (im *impl) Open(c ctx.Ctx, params listingview.RouteParams, nav listingview.Navigator) listingview.Page {
	return &page{
		im:        im,
		params:    params,
		nav:       nav,
		state:     listingview.ViewStateLoading,
		bidAmount: listingview.DefaultAmount,
		buyAmount: listingview.DefaultAmount,
	}
}

type page struct {
	im     *impl
	params listingview.RouteParams
	nav    listingview.Navigator

	loadOnce sync.Once
	// writeMu keeps a single write action in flight
	writeMu sync.Mutex

	mu         sync.RWMutex
	state      listingview.ViewState
	listing    *listing.Listing
	loadErr    error
	redirected bool
	bidAmount  string
	buyAmount  string
}
