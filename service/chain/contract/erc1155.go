package contract

import (
	"encoding/hex"
	"math/big"
	"strings"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/math"
	baseabi "github.com/x-xyz/listingpage/base/abi"
	bCtx "github.com/x-xyz/listingpage/base/ctx"
	"github.com/x-xyz/listingpage/domain"
	"github.com/x-xyz/listingpage/service/chain"
)

type Erc1155Contract interface {
	// Uri returns the metadata uri with the {id} placeholder already substituted
	Uri(ctx bCtx.Ctx, chainId domain.ChainId, addr domain.Address, tokenId *big.Int) (string, error)
}

type Erc1155 struct {
	chainService chain.Client
	abi          ethabi.ABI
}

func NewErc1155(chainService chain.Client) Erc1155Contract {
	return &Erc1155{
		abi:          baseabi.ERC1155TokenABI,
		chainService: chainService,
	}
}

func (e *Erc1155) Uri(ctx bCtx.Ctx, chainId domain.ChainId, addr domain.Address, tokenId *big.Int) (string, error) {
	unpacked, err := e.chainService.Call(ctx, chainId, addr.ToCommon(), e.abi, "uri", tokenId)
	if err != nil {
		return "", err
	}
	uri, ok := unpacked[0].(string)
	if !ok {
		return "", baseabi.ErrUnexpectedOutput
	}
	return SubstituteTokenId(uri, tokenId), nil
}

// SubstituteTokenId fills the ERC1155 {id} placeholder with the 64 hex char token id
func SubstituteTokenId(uri string, tokenId *big.Int) string {
	if !strings.Contains(uri, "{id}") {
		return uri
	}
	id := hex.EncodeToString(math.U256Bytes(new(big.Int).Set(tokenId)))
	return strings.ReplaceAll(uri, "{id}", id)
}
