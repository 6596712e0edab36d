package trading

// knownToken records the chain classification for a well-known token.
type knownToken struct {
	Symbol        string
	Chain         Chain
	SpecificChain SpecificChain
}

// knownTokens maps token addresses to their home network. EVM keys are
// stored lowercase; see lookupKnownToken. The table covers the majors the
// simulator seeds accounts with, so trades against them resolve to the
// right network without the caller spelling it out.
var knownTokens = map[string]knownToken{
	// Ethereum mainnet
	"0xc02aaa39b223fe8d0a0e5c4f27ead9083c756cc2": {Symbol: "WETH", Chain: ChainEVM, SpecificChain: SpecificEth},
	"0xa0b86991c6218b36c1d19d4a2e9eb0ce3606eb48": {Symbol: "USDC", Chain: ChainEVM, SpecificChain: SpecificEth},
	"0xdac17f958d2ee523a2206206994597c13d831ec7": {Symbol: "USDT", Chain: ChainEVM, SpecificChain: SpecificEth},
	"0x2260fac5e5542a773aa44fbcfedf7c193bc2c599": {Symbol: "WBTC", Chain: ChainEVM, SpecificChain: SpecificEth},
	"0x6b175474e89094c44da98b954eedeac495271d0f": {Symbol: "DAI", Chain: ChainEVM, SpecificChain: SpecificEth},

	// Polygon
	"0x0d500b1d8e8ef31e21c99d1db9a6444d3adf1270": {Symbol: "WMATIC", Chain: ChainEVM, SpecificChain: SpecificPolygon},
	"0x2791bca1f2de4661ed88a30c99a7a9449aa84174": {Symbol: "USDC.e", Chain: ChainEVM, SpecificChain: SpecificPolygon},

	// Base
	"0x833589fcd6edb6e08f4c7c32d4f71b54bda02913": {Symbol: "USDC", Chain: ChainEVM, SpecificChain: SpecificBase},

	// Arbitrum
	"0xaf88d065e77c8cc2239327c5edb3a432268e5831": {Symbol: "USDC", Chain: ChainEVM, SpecificChain: SpecificArbitrum},

	// Optimism
	"0x4200000000000000000000000000000000000042": {Symbol: "OP", Chain: ChainEVM, SpecificChain: SpecificOptimism},

	// Solana
	"So11111111111111111111111111111111111111112":  {Symbol: "SOL", Chain: ChainSVM, SpecificChain: SpecificSVM},
	"EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v": {Symbol: "USDC", Chain: ChainSVM, SpecificChain: SpecificSVM},
	"Es9vMFrzaCERmJfrF4H2FYD4KCoNkY11McCe8BenwNYB": {Symbol: "USDT", Chain: ChainSVM, SpecificChain: SpecificSVM},
}
