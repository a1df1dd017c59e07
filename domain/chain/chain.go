package chain

import (
	"strings"

	"github.com/x-xyz/listingpage/domain"
)

type Info struct {
	DisplayName  string
	NativeSymbol string
}

var (
	chainIdToInfo = map[domain.ChainId]Info{
		domain.ChainId(1):     {"Ethereum", "ETH"},
		domain.ChainId(3):     {"Ropsten", "ETH"},
		domain.ChainId(4):     {"Rinkeby", "ETH"},
		domain.ChainId(5):     {"Goerli", "ETH"},
		domain.ChainId(56):    {"Binance Smart Chain", "BNB"},
		domain.ChainId(97):    {"Binance Smart Chain Testnet", "BNB"},
		domain.ChainId(137):   {"Polygon", "MATIC"},
		domain.ChainId(250):   {"Fantom", "FTM"},
		domain.ChainId(80001): {"Mumbai", "MATIC"},
	}
)

func GetInfo(chainId domain.ChainId) (Info, error) {
	if val, ok := chainIdToInfo[chainId]; !ok {
		return Info{}, domain.ErrNotFound
	} else {
		return val, nil
	}
}

func GetChainDisplayName(chainId domain.ChainId) (string, error) {
	info, err := GetInfo(chainId)
	if err != nil {
		return "", err
	}
	return info.DisplayName, nil
}

// GetChainUrlPart is the display name as a path segment, "Binance Smart Chain" -> "binance-smart-chain"
func GetChainUrlPart(chainId domain.ChainId) (string, error) {
	name, err := GetChainDisplayName(chainId)
	if err != nil {
		return "", err
	}
	return strings.ToLower(strings.ReplaceAll(name, " ", "-")), nil
}

// NativeSymbol falls back to ETH for unknown chains
func NativeSymbol(chainId domain.ChainId) string {
	if info, err := GetInfo(chainId); err == nil {
		return info.NativeSymbol
	}
	return "ETH"
}
