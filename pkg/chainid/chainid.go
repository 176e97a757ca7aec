// Package chainid provides the network identifier used across the resolver:
// either a well-known chain from the chains registry or a raw numeric id.
//
// The type keeps itself in canonical form: any numeric id the registry
// recognises is stored as its named variant, so two identifiers for the same
// network always compare equal and can be used directly as map keys.
package chainid

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"

	"github.com/evmkit/chain-resolver/pkg/chains"
)

var (
	// ErrUnsupportedChain is returned by Named for numeric ids the registry
	// does not recognise.
	ErrUnsupportedChain = errors.New("unsupported chain")

	// ErrInvalidIdentifier is returned when textual input is neither a known
	// chain name nor a non-negative base-10 integer.
	ErrInvalidIdentifier = errors.New("invalid chain identifier")
)

// ID identifies a network by well-known chain or by raw numeric id. The zero
// value is Numeric(0); use Default for the conventional starting point.
//
// Constructors keep the value canonical, so plain == comparison is correct.
type ID struct {
	num   uint64
	named bool
}

// FromUint64 builds an ID from a raw chain id. Ids the registry recognises
// normalize to their named form. Every numeric entry point funnels through
// here.
func FromUint64(id uint64) ID {
	if _, ok := chains.FromID(id); ok {
		return ID{num: id, named: true}
	}
	return ID{num: id}
}

// FromChain builds an ID for a well-known chain.
func FromChain(c chains.Chain) ID {
	return ID{num: c.ID(), named: true}
}

// FromBig builds an ID from an arbitrary-width integer, keeping the low
// 64 bits. Values wider than 64 bits are truncated.
func FromBig(v *big.Int) ID {
	return FromUint64(v.Uint64())
}

// Default returns the identifier for Ethereum mainnet.
func Default() ID {
	return FromChain(chains.Mainnet)
}

// Parse converts text into an ID: a case-insensitive chain name first, then a
// non-negative base-10 integer. Numeric input is normalized the same way as
// FromUint64.
func Parse(text string) (ID, error) {
	if c, ok := chains.Parse(text); ok {
		return FromChain(c), nil
	}
	n, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		return ID{}, fmt.Errorf("%w: %q", ErrInvalidIdentifier, text)
	}
	return FromUint64(n), nil
}

// ID returns the numeric chain id. Total for every identifier.
func (id ID) ID() uint64 {
	return id.num
}

// IsNamed reports whether the identifier is a well-known chain.
func (id ID) IsNamed() bool {
	return id.named
}

// Named returns the well-known chain, trying a registry lookup for numeric
// identifiers that were constructed before the chain was registered.
func (id ID) Named() (chains.Chain, error) {
	if id.named {
		return chains.Chain(id.num), nil
	}
	if c, ok := chains.FromID(id.num); ok {
		return c, nil
	}
	return 0, fmt.Errorf("%w: %d", ErrUnsupportedChain, id.num)
}

// IsLegacy reports whether the chain uses pre-EIP-1559 fee pricing. Unknown
// chains are assumed to support dynamic fees.
func (id ID) IsLegacy() bool {
	c, err := id.Named()
	if err != nil {
		return false
	}
	return c.IsLegacy()
}

// ExplorerURLs returns the block explorer base and API URLs. ok is false for
// unknown chains and for known chains without a registered explorer.
func (id ID) ExplorerURLs() (baseURL, apiURL string, ok bool) {
	c, err := id.Named()
	if err != nil {
		return "", "", false
	}
	return c.ExplorerURLs()
}

// Big returns the chain id as an arbitrary-width integer.
func (id ID) Big() *big.Int {
	return new(big.Int).SetUint64(id.num)
}

// String prints the canonical chain name when the registry recognises the id,
// falling back to the decimal numeral. The lookup also covers numeric values,
// so a non-canonical identifier still prints its name.
func (id ID) String() string {
	if c, err := id.Named(); err == nil {
		return c.Name()
	}
	return strconv.FormatUint(id.num, 10)
}
