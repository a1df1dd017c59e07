package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/x-xyz/listingpage/base/ctx"
	"github.com/x-xyz/listingpage/base/log"
	"github.com/x-xyz/listingpage/domain"
	"github.com/x-xyz/listingpage/domain/chain"
	"github.com/x-xyz/listingpage/domain/notification"
)

type Config struct {
	BotKey    string
	ChannelId string
	ChainId   domain.ChainId
	// SiteUrl is the base of listing page links, e.g. https://market.example
	SiteUrl string
	Media   domain.WebResourceUseCase
}

type messageSender interface {
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed) (*discordgo.Message, error)
}

type notifier struct {
	config  Config
	discord messageSender
}

// New posts trade events to a discord channel. Without a bot key it only logs them.
func New(config Config) (notification.Notifier, error) {
	if config.BotKey == "" || config.ChannelId == "" {
		return &logNotifier{}, nil
	}
	session, err := discordgo.New(fmt.Sprintf("Bot %s", config.BotKey))
	if err != nil {
		return nil, err
	}
	return &notifier{config, session}, nil
}

var titles = map[notification.TradeKind]string{
	notification.TradeKindOffer:  "New offer!",
	notification.TradeKindBid:    "New bid!",
	notification.TradeKindBuyout: "Item sold!",
}

func (n *notifier) Notify(c ctx.Ctx, event notification.TradeEvent) error {
	if _, err := n.discord.ChannelMessageSendEmbed(n.config.ChannelId, n.embed(event)); err != nil {
		c.WithFields(log.Fields{
			"err":       err,
			"listingId": event.Listing.Id,
		}).Error("discord.ChannelMessageSendEmbed failed")
		return err
	}
	return nil
}

func (n *notifier) embed(event notification.TradeEvent) *discordgo.MessageEmbed {
	chainName, err := chain.GetChainDisplayName(n.config.ChainId)
	if err != nil {
		chainName = fmt.Sprintf("chain %d", n.config.ChainId)
	}

	seller := string(event.Listing.SellerAddress)
	if event.Listing.SellerName != "" {
		seller = fmt.Sprintf("%s (%s)", seller, event.Listing.SellerName)
	}

	symbol := event.Listing.BuyoutCurrencyValuePerToken.Symbol
	msg := &discordgo.MessageEmbed{
		Title: titles[event.Kind],
		Description: fmt.Sprintf("%s/%s/listing/%s",
			strings.TrimSuffix(n.config.SiteUrl, "/"), event.Listing.Asset.Id, event.Listing.Id),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Item", Value: nonEmpty(event.Listing.Asset.Name)},
			{Name: "Seller", Value: seller},
			{Name: "From", Value: string(event.Account)},
			{Name: "Chain", Value: chainName},
			{Name: "Quantity", Value: nonEmpty(event.Quantity)},
		},
	}
	if event.Amount != "" {
		msg.Fields = append(msg.Fields, &discordgo.MessageEmbedField{Name: "Price", Value: fmt.Sprintf("%s %s", event.Amount, symbol)})
	}
	if event.TxHash != "" {
		msg.Fields = append(msg.Fields, &discordgo.MessageEmbedField{Name: "Tx", Value: string(event.TxHash)})
	}
	if img := event.Listing.Asset.Image; img != "" {
		if n.config.Media != nil {
			img = n.config.Media.ResolveMediaUrl(img)
		}
		msg.Image = &discordgo.MessageEmbedImage{URL: img}
	}
	return msg
}

func nonEmpty(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

type logNotifier struct{}

func (n *logNotifier) Notify(c ctx.Ctx, event notification.TradeEvent) error {
	c.WithFields(log.Fields{
		"kind":      event.Kind,
		"listingId": event.Listing.Id,
		"account":   event.Account,
		"quantity":  event.Quantity,
		"amount":    event.Amount,
		"txHash":    event.TxHash,
	}).Info("trade")
	return nil
}
