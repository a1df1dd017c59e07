package discord

import (
	"errors"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/suite"
	"github.com/x-xyz/listingpage/base/ctx"
	"github.com/x-xyz/listingpage/domain/listing"
	"github.com/x-xyz/listingpage/domain/notification"
)

type fakeSender struct {
	channel string
	embeds  []*discordgo.MessageEmbed
	err     error
}

func (f *fakeSender) ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed) (*discordgo.Message, error) {
	f.channel = channelID
	f.embeds = append(f.embeds, embed)
	return &discordgo.Message{}, f.err
}

type notifierSuite struct {
	suite.Suite
	sender *fakeSender
	n      *notifier
}

func TestNotifierSuite(t *testing.T) {
	suite.Run(t, new(notifierSuite))
}

func (s *notifierSuite) SetupTest() {
	s.sender = &fakeSender{}
	s.n = &notifier{
		config:  Config{ChannelId: "channel", ChainId: 4, SiteUrl: "https://market.example/"},
		discord: s.sender,
	}
}

func (s *notifierSuite) event() notification.TradeEvent {
	return notification.TradeEvent{
		Kind: notification.TradeKindBuyout,
		Listing: listing.Listing{
			Id:            "7",
			SellerAddress: "0x020cA66C30beC2c4Fe3861a94E4DB4A498A35872",
			SellerName:    "machibigbrother.eth",
			Asset:         listing.Asset{Id: "42", Name: "Ape #42", Image: "https://img.example/42.png"},
			BuyoutCurrencyValuePerToken: listing.CurrencyValue{
				Currency: listing.Currency{Symbol: "ETH", Decimals: 18},
			},
		},
		Account:  "0x94EaD797046c7b654cab82C1c27ad223b6501f1f",
		Quantity: "1",
		Amount:   "0.05",
		TxHash:   "0xabc",
	}
}

func (s *notifierSuite) TestNotify() {
	s.NoError(s.n.Notify(ctx.Background(), s.event()))
	s.Equal("channel", s.sender.channel)
	s.Require().Len(s.sender.embeds, 1)

	embed := s.sender.embeds[0]
	s.Equal("Item sold!", embed.Title)
	s.Equal("https://market.example/42/listing/7", embed.Description)
	s.Equal("https://img.example/42.png", embed.Image.URL)

	values := map[string]string{}
	for _, f := range embed.Fields {
		values[f.Name] = f.Value
	}
	s.Equal("0x020cA66C30beC2c4Fe3861a94E4DB4A498A35872 (machibigbrother.eth)", values["Seller"])
	s.Equal("Rinkeby", values["Chain"])
	s.Equal("0.05 ETH", values["Price"])
	s.Equal("0xabc", values["Tx"])
}

func (s *notifierSuite) TestNotifyFailed() {
	s.sender.err = errors.New("unauthorized")
	s.Error(s.n.Notify(ctx.Background(), s.event()))
}

func (s *notifierSuite) TestUnconfiguredLogsOnly() {
	n, err := New(Config{})
	s.NoError(err)
	s.IsType(&logNotifier{}, n)
	s.NoError(n.Notify(ctx.Background(), s.event()))
}
