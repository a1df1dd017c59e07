package usecase

import (
	"errors"

	"github.com/x-xyz/listingpage/base/ctx"
	"github.com/x-xyz/listingpage/domain"
	"github.com/x-xyz/listingpage/domain/listingview"
)

func (p *page) Params() listingview.RouteParams {
	return p.params
}

func (p *page) State() listingview.ViewState {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.state
}

func (p *page) SetBidAmount(v string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.bidAmount = v
}

func (p *page) SetBuyAmount(v string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.buyAmount = v
}

// Load fetches the listing once per page and settles the view state
func (p *page) Load(c ctx.Ctx) listingview.View {
	p.loadOnce.Do(func() {
		defer p.im.met.BumpTime("load.time").End()

		l, err := p.im.marketplace.FindOne(c, p.params.ListingId)

		p.mu.Lock()
		switch {
		case errors.Is(err, domain.ErrNotFound), err == nil && l == nil:
			p.state = listingview.ViewStateNotFound
		case err != nil:
			c.WithField("err", err).WithField("listingId", p.params.ListingId).Error("marketplace.FindOne failed")
			p.state = listingview.ViewStateError
			p.loadErr = err
		default:
			p.listing = l
		}
		p.mu.Unlock()

		p.resolveVisibility()
		p.im.met.BumpSum("load", 1, "state", string(p.State()))
	})
	return p.View(c)
}

// resolveVisibility hides a listing that belongs to another nft and sends the host to that
// nft's page. It navigates at most once per page.
func (p *page) resolveVisibility() {
	p.mu.Lock()
	if p.listing == nil || p.redirected {
		p.mu.Unlock()
		return
	}
	if p.listing.Asset.Id.String() == p.params.NftId {
		p.state = listingview.ViewStateReady
		p.mu.Unlock()
		return
	}
	p.redirected = true
	p.state = listingview.ViewStateRedirecting
	p.mu.Unlock()

	p.nav.Redirect(p.redirectPath())
}

func (p *page) redirectPath() string {
	return "/" + p.params.NftId
}

func (p *page) View(c ctx.Ctx) listingview.View {
	p.mu.RLock()
	defer p.mu.RUnlock()

	v := listingview.View{State: p.state}
	switch p.state {
	case listingview.ViewStateRedirecting:
		v.RedirectTo = p.redirectPath()
	case listingview.ViewStateError:
		v.Error = p.loadErr.Error()
	case listingview.ViewStateReady:
		v.Listing = p.render()
	}
	return v
}

// render must be called with mu held
func (p *page) render() *listingview.ListingView {
	l := p.listing
	owner := l.SellerName
	if owner == "" {
		owner = l.SellerAddress.Short()
	}
	image := l.Asset.Image
	if p.im.media != nil {
		image = p.im.media.ResolveMediaUrl(image)
	}
	return &listingview.ListingView{
		Id:            l.Id,
		NftId:         l.Asset.Id.String(),
		Name:          l.Asset.Name,
		Description:   l.Asset.Description,
		Image:         image,
		Owner:         owner,
		SellerAddress: l.SellerAddress,
		Price:         l.BuyoutCurrencyValuePerToken.DisplayValue,
		Symbol:        l.BuyoutCurrencyValuePerToken.Symbol,
		Type:          l.Type,
		Quantity:      l.Quantity,
		BidAmount:     p.bidAmount,
		BuyAmount:     p.buyAmount,
		CanBid:        true,
	}
}
