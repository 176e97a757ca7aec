package chains

import (
	"sort"
	"strconv"
	"strings"
)

// Chain is a well-known network. Its numeric value is the canonical chain id,
// so casting a Chain to uint64 always yields the id it is registered under.
type Chain uint64

const (
	Mainnet         Chain = 1
	Ropsten         Chain = 3
	Rinkeby         Chain = 4
	Goerli          Chain = 5
	Optimism        Chain = 10
	BinanceSmart    Chain = 56
	BinanceTestnet  Chain = 97
	Gnosis          Chain = 100
	Polygon         Chain = 137
	Fantom          Chain = 250
	FantomTestnet   Chain = 4002
	Base            Chain = 8453
	Holesky         Chain = 17000
	Arbitrum        Chain = 42161
	ArbitrumSepolia Chain = 421614
	Celo            Chain = 42220
	AvalancheFuji   Chain = 43113
	Avalanche       Chain = 43114
	Moonbeam        Chain = 1284
	Moonriver       Chain = 1285
	Dev             Chain = 1337
	Sepolia         Chain = 11155111
)

type chainInfo struct {
	name        string
	legacy      bool
	explorerURL string
	explorerAPI string
}

// registry is the fixed metadata table. It is populated here, indexed once in
// init, and never mutated afterwards, so lookups are safe from any goroutine.
var registry = map[Chain]chainInfo{
	Mainnet:         {name: "mainnet", explorerURL: "https://etherscan.io", explorerAPI: "https://api.etherscan.io/api"},
	Ropsten:         {name: "ropsten", explorerURL: "https://ropsten.etherscan.io", explorerAPI: "https://api-ropsten.etherscan.io/api"},
	Rinkeby:         {name: "rinkeby", explorerURL: "https://rinkeby.etherscan.io", explorerAPI: "https://api-rinkeby.etherscan.io/api"},
	Goerli:          {name: "goerli", explorerURL: "https://goerli.etherscan.io", explorerAPI: "https://api-goerli.etherscan.io/api"},
	Optimism:        {name: "optimism", explorerURL: "https://optimistic.etherscan.io", explorerAPI: "https://api-optimistic.etherscan.io/api"},
	BinanceSmart:    {name: "bsc", legacy: true, explorerURL: "https://bscscan.com", explorerAPI: "https://api.bscscan.com/api"},
	BinanceTestnet:  {name: "bsc-testnet", legacy: true, explorerURL: "https://testnet.bscscan.com", explorerAPI: "https://api-testnet.bscscan.com/api"},
	Gnosis:          {name: "gnosis", explorerURL: "https://gnosisscan.io", explorerAPI: "https://api.gnosisscan.io/api"},
	Polygon:         {name: "polygon", explorerURL: "https://polygonscan.com", explorerAPI: "https://api.polygonscan.com/api"},
	Fantom:          {name: "fantom", legacy: true, explorerURL: "https://ftmscan.com", explorerAPI: "https://api.ftmscan.com/api"},
	FantomTestnet:   {name: "fantom-testnet", legacy: true, explorerURL: "https://testnet.ftmscan.com", explorerAPI: "https://api-testnet.ftmscan.com/api"},
	Base:            {name: "base", explorerURL: "https://basescan.org", explorerAPI: "https://api.basescan.org/api"},
	Holesky:         {name: "holesky", explorerURL: "https://holesky.etherscan.io", explorerAPI: "https://api-holesky.etherscan.io/api"},
	Arbitrum:        {name: "arbitrum", explorerURL: "https://arbiscan.io", explorerAPI: "https://api.arbiscan.io/api"},
	ArbitrumSepolia: {name: "arbitrum-sepolia", explorerURL: "https://sepolia.arbiscan.io", explorerAPI: "https://api-sepolia.arbiscan.io/api"},
	Celo:            {name: "celo", legacy: true, explorerURL: "https://celoscan.io", explorerAPI: "https://api.celoscan.io/api"},
	AvalancheFuji:   {name: "avalanche-fuji", explorerURL: "https://testnet.snowtrace.io", explorerAPI: "https://api-testnet.snowtrace.io/api"},
	Avalanche:       {name: "avalanche", explorerURL: "https://snowtrace.io", explorerAPI: "https://api.snowtrace.io/api"},
	Moonbeam:        {name: "moonbeam", explorerURL: "https://moonbeam.moonscan.io", explorerAPI: "https://api-moonbeam.moonscan.io/api"},
	Moonriver:       {name: "moonriver", explorerURL: "https://moonriver.moonscan.io", explorerAPI: "https://api-moonriver.moonscan.io/api"},
	Dev:             {name: "dev", legacy: true},
	Sepolia:         {name: "sepolia", explorerURL: "https://sepolia.etherscan.io", explorerAPI: "https://api-sepolia.etherscan.io/api"},
}

var byName = make(map[string]Chain, len(registry))

func init() {
	for c, info := range registry {
		byName[info.name] = c
	}
}

// FromID returns the well-known chain registered under id.
func FromID(id uint64) (Chain, bool) {
	c := Chain(id)
	_, ok := registry[c]
	return c, ok
}

// Parse looks up a chain by its canonical name. Matching is case-insensitive.
func Parse(name string) (Chain, bool) {
	c, ok := byName[strings.ToLower(name)]
	return c, ok
}

// All returns every registered chain, ordered by chain id.
func All() []Chain {
	all := make([]Chain, 0, len(registry))
	for c := range registry {
		all = append(all, c)
	}
	sort.Slice(all, func(i, j int) bool { return all[i] < all[j] })
	return all
}

// ID returns the numeric chain id.
func (c Chain) ID() uint64 {
	return uint64(c)
}

// Name returns the canonical lowercase name, or the decimal id if the chain
// is somehow outside the registry.
func (c Chain) Name() string {
	if info, ok := registry[c]; ok {
		return info.name
	}
	return strconv.FormatUint(uint64(c), 10)
}

func (c Chain) String() string {
	return c.Name()
}

// IsLegacy reports whether the chain still uses pre-EIP-1559 fee pricing.
func (c Chain) IsLegacy() bool {
	return registry[c].legacy
}

// ExplorerURLs returns the block explorer base and API URLs. ok is false when
// the chain has no explorer registered.
func (c Chain) ExplorerURLs() (baseURL, apiURL string, ok bool) {
	info := registry[c]
	if info.explorerURL == "" {
		return "", "", false
	}
	return info.explorerURL, info.explorerAPI, true
}
