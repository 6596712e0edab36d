package trading

import (
	"regexp"
	"strings"
)

// Chain is the blockchain family a token address belongs to.
type Chain string

const (
	// ChainEVM marks EVM-style addresses (0x followed by 40 hex digits).
	ChainEVM Chain = "evm"
	// ChainSVM marks SVM-style addresses. This is the fallback family for
	// anything that does not match the EVM pattern, not a positive
	// validation of Solana address format.
	ChainSVM Chain = "svm"
)

// SpecificChain names the network within a blockchain family.
type SpecificChain string

const (
	SpecificEth       SpecificChain = "eth"
	SpecificPolygon   SpecificChain = "polygon"
	SpecificBSC       SpecificChain = "bsc"
	SpecificArbitrum  SpecificChain = "arbitrum"
	SpecificOptimism  SpecificChain = "optimism"
	SpecificAvalanche SpecificChain = "avalanche"
	SpecificBase      SpecificChain = "base"
	SpecificLinea     SpecificChain = "linea"
	SpecificSVM       SpecificChain = "svm"
)

var evmAddressPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)

// DetectChain classifies a token address by pattern. Addresses matching the
// EVM shape are ChainEVM; everything else falls back to ChainSVM.
func DetectChain(address string) Chain {
	if evmAddressPattern.MatchString(address) {
		return ChainEVM
	}
	return ChainSVM
}

// DefaultSpecificChain returns the default network for a chain family.
func DefaultSpecificChain(chain Chain) SpecificChain {
	if chain == ChainSVM {
		return SpecificSVM
	}
	return SpecificEth
}

// ResolveChain fills in the chain classification for a token address.
// Precedence per field: explicit caller value, then the known-token table,
// then pattern detection (family) or the family default (specific network).
func ResolveChain(address string, explicit Chain, explicitSpecific SpecificChain) (Chain, SpecificChain) {
	known, hasKnown := lookupKnownToken(address)

	chain := explicit
	if chain == "" {
		if hasKnown {
			chain = known.Chain
		} else {
			chain = DetectChain(address)
		}
	}

	specific := explicitSpecific
	if specific == "" {
		// The table's network only applies when it agrees with the
		// resolved family; an explicit family override wins outright.
		if hasKnown && known.Chain == chain {
			specific = known.SpecificChain
		} else {
			specific = DefaultSpecificChain(chain)
		}
	}

	return chain, specific
}

// lookupKnownToken finds a table entry for the address. EVM addresses are
// matched case-insensitively since checksummed and lowercase forms refer to
// the same token; SVM addresses are case-sensitive base58.
func lookupKnownToken(address string) (knownToken, bool) {
	key := address
	if strings.HasPrefix(address, "0x") {
		key = strings.ToLower(address)
	}
	token, ok := knownTokens[key]
	return token, ok
}
