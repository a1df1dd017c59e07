package domain

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/xerrors"
)

type ChainId int32

type Address string

const EmptyAddress = Address("0x0000000000000000000000000000000000000000")

// NativeTokenAddress is the marketplace's sentinel for the chain's native currency
const NativeTokenAddress = Address("0xeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeee")

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

func (a Address) IsEmpty() bool {
	return len(a) == 0 || a.Equals(EmptyAddress)
}

func (a Address) IsNative() bool {
	return a.Equals(NativeTokenAddress)
}

func (a Address) Equals(b Address) bool {
	return a.ToLowerStr() == b.ToLowerStr()
}

func (a Address) ToCommon() common.Address {
	return common.HexToAddress(string(a))
}

// Short renders an address the way the listing page shows its owner, 0x1234...abcd
func (a Address) Short() string {
	s := string(a)
	if len(s) < 40 {
		return s
	}
	return s[0:6] + "..." + s[36:40]
}

type TokenId string

func (i TokenId) String() string {
	return string(i)
}

func (i TokenId) ToBigInt() (*big.Int, error) {
	id, ok := new(big.Int).SetString(i.String(), 10)
	if !ok {
		return nil, xerrors.Errorf("invalid id %s: %w", i, ErrInvalidNumberFormat)
	}
	return id, nil
}

type TxHash string

// ChainIdWrappedNativeMap holds the wrapped native token of each chain, used as the currency
// of direct listing offers
var ChainIdWrappedNativeMap map[ChainId]Address = map[ChainId]Address{
	// eth
	1: "0xc02aaa39b223fe8d0a0e5c4f27ead9083c756cc2",
	// ropsten
	3: "0x0a180a76e4466bf68a7f86fb029bed3cccfaaac5",
	// rinkeby
	4: "0xc778417e063141139fce010982780140aa0cd5ab",
	// goerli
	5: "0xb4fbf271143f4fbf7b91a5ded31805e42b2208d6",
	// bsc
	56: "0xbb4cdb9cbd36b01bd1cbaebf2de08d9173bc095c",
	// polygon
	137: "0x0d500b1d8e8ef31e21c99d1db9a6444d3adf1270",
	// fantom
	250: "0x21be370d5312f44cb42ce377bc9b8a0cef1a4c83",
	// mumbai
	80001: "0x9c3c9283d3e44854697cd22d3faa240cfb032889",
}

// WrappedNative returns the wrapped native token of the chain
func WrappedNative(chainId ChainId) (Address, error) {
	addr, ok := ChainIdWrappedNativeMap[chainId]
	if !ok {
		return "", xerrors.Errorf("no wrapped native token for chain %d: %w", chainId, ErrInvalidChainId)
	}
	return addr, nil
}
