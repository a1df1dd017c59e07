package usecase

import (
	"fmt"

	"github.com/x-xyz/listingpage/base/ctx"
	"github.com/x-xyz/listingpage/base/goroutine"
	"github.com/x-xyz/listingpage/base/log"
	"github.com/x-xyz/listingpage/domain"
	"github.com/x-xyz/listingpage/domain/chain"
	"github.com/x-xyz/listingpage/domain/listing"
	"github.com/x-xyz/listingpage/domain/listingview"
	"github.com/x-xyz/listingpage/domain/notification"
)

var successMessages = map[listingview.Action]string{
	listingview.ActionOffer:  "Offer created successfully!",
	listingview.ActionBid:    "Bid created successfully!",
	listingview.ActionBuyout: "NFT bought successfully!",
}

var tradeKinds = map[listingview.Action]notification.TradeKind{
	listingview.ActionOffer:  notification.TradeKindOffer,
	listingview.ActionBid:    notification.TradeKindBid,
	listingview.ActionBuyout: notification.TradeKindBuyout,
}

type formState struct {
	listing   listing.Listing
	bidAmount string
	buyAmount string
}

// snapshot copies what a write action needs, ok is false unless the page is ready
func (p *page) snapshot() (formState, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.state != listingview.ViewStateReady {
		return formState{}, false
	}
	return formState{
		listing:   *p.listing,
		bidAmount: p.bidAmount,
		buyAmount: p.buyAmount,
	}, true
}

func (p *page) CreateBidOrOffer(c ctx.Ctx) listingview.Outcome {
	p.writeMu.Lock()
	defer p.writeMu.Unlock()

	f, ok := p.snapshot()
	if !ok {
		return p.failure(c, listingview.ActionOffer, listingview.ErrListingNotReady)
	}
	action := listingview.ActionOffer
	if f.listing.Type == listing.TypeAuction {
		action = listingview.ActionBid
	}
	if out, switched := p.guardNetwork(c, action); switched {
		return out
	}

	var (
		hash domain.TxHash
		err  error
	)
	if action == listingview.ActionBid {
		hash, err = p.im.marketplace.MakeBid(c, p.params.ListingId, f.bidAmount)
	} else {
		hash, err = p.im.marketplace.MakeOffer(c, p.params.ListingId, f.buyAmount, p.im.offerCurrency, f.bidAmount)
	}
	if err != nil {
		c.WithFields(log.Fields{
			"err":       err,
			"listingId": p.params.ListingId,
			"action":    action,
		}).Error("marketplace write failed")
		return p.failure(c, action, err)
	}

	quantity := f.buyAmount
	if action == listingview.ActionBid {
		quantity = f.listing.Quantity
	}
	return p.success(c, action, hash, f.listing, quantity, f.bidAmount)
}

func (p *page) BuyNft(c ctx.Ctx) listingview.Outcome {
	p.writeMu.Lock()
	defer p.writeMu.Unlock()

	action := listingview.ActionBuyout
	f, ok := p.snapshot()
	if !ok {
		return p.failure(c, action, listingview.ErrListingNotReady)
	}
	if out, switched := p.guardNetwork(c, action); switched {
		return out
	}

	hash, err := p.im.marketplace.BuyoutListing(c, p.params.ListingId, f.buyAmount)
	if err != nil {
		c.WithFields(log.Fields{
			"err":       err,
			"listingId": p.params.ListingId,
			"action":    action,
		}).Error("marketplace.BuyoutListing failed")
		return p.failure(c, action, err)
	}

	quantity := f.buyAmount
	if f.listing.Type == listing.TypeAuction {
		quantity = f.listing.Quantity
	}
	return p.success(c, action, hash, f.listing, quantity, f.listing.BuyoutCurrencyValuePerToken.DisplayValue)
}

// guardNetwork asks the wallet to move to the required chain when it is elsewhere.
// switched reports that the action must stop here.
func (p *page) guardNetwork(c ctx.Ctx, action listingview.Action) (out listingview.Outcome, switched bool) {
	current, err := p.im.wallet.ChainId(c)
	if err != nil {
		c.WithField("err", err).Error("wallet.ChainId failed")
		return p.failure(c, action, err), true
	}
	if current == p.im.requiredChainId {
		return listingview.Outcome{}, false
	}

	if err := p.im.wallet.SwitchNetwork(c, p.im.requiredChainId); err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"from":    current,
			"chainId": p.im.requiredChainId,
		}).Error("wallet.SwitchNetwork failed")
		return p.failure(c, action, err), true
	}

	name, err := chain.GetChainDisplayName(p.im.requiredChainId)
	if err != nil {
		name = fmt.Sprintf("chain %d", p.im.requiredChainId)
	}
	p.im.met.BumpSum("outcome", 1, "action", string(action), "kind", string(listingview.OutcomeNetworkSwitch))
	return listingview.Outcome{
		Kind:    listingview.OutcomeNetworkSwitch,
		Action:  action,
		Message: fmt.Sprintf("Switched network to %s, please try again", name),
	}, true
}

func (p *page) failure(c ctx.Ctx, action listingview.Action, err error) listingview.Outcome {
	p.im.met.BumpSum("outcome", 1, "action", string(action), "kind", string(listingview.OutcomeFailure))
	return listingview.Outcome{
		Kind:    listingview.OutcomeFailure,
		Action:  action,
		Message: err.Error(),
		Err:     err,
	}
}

func (p *page) success(c ctx.Ctx, action listingview.Action, hash domain.TxHash, l listing.Listing, quantity, amount string) listingview.Outcome {
	p.im.met.BumpSum("outcome", 1, "action", string(action), "kind", string(listingview.OutcomeSuccess))

	if err := p.im.marketplace.Invalidate(c, p.params.ListingId); err != nil {
		c.WithField("err", err).Warn("marketplace.Invalidate failed")
	}
	p.notify(c, notification.TradeEvent{
		Kind:      tradeKinds[action],
		Listing:   l,
		Account:   p.im.wallet.Address(),
		Quantity:  quantity,
		Amount:    amount,
		TxHash:    hash,
		CreatedAt: p.im.now(),
	})

	return listingview.Outcome{
		Kind:    listingview.OutcomeSuccess,
		Action:  action,
		Message: successMessages[action],
		TxHash:  hash,
	}
}

// notify posts the trade in the background, the outcome never depends on it
func (p *page) notify(c ctx.Ctx, event notification.TradeEvent) {
	if p.im.notifier == nil {
		return
	}
	bg, cancel := ctx.WithTimeout(ctx.Detach(c), p.im.notifyTimeout)
	goroutine.RecoverableGo(func() {
		if err := p.im.notifier.Notify(bg, event); err != nil {
			bg.WithField("err", err).Warn("notifier.Notify failed")
		}
	}, goroutine.WithLogger(bg.Logger), goroutine.WithAfterEnded(cancel))
}
