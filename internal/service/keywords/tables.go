package keywords

// projectAliases maps a lowercase alias (project name, organization or ticker
// spelling) to the labels it stands for.
var projectAliases = map[string][]string{
	// Stellar ecosystem
	"stellar":                        {"XLM", "Stellar"},
	"xlm":                            {"XLM", "Stellar"},
	"soroban":                        {"XLM", "Soroban"},
	"stellar development foundation": {"SDF", "Stellar"},

	"bitcoin": {"BTC", "Bitcoin"},
	"btc":     {"BTC", "Bitcoin"},

	"ethereum": {"ETH", "Ethereum"},
	"eth":      {"ETH", "Ethereum"},

	"solana": {"SOL", "Solana"},
	"sol":    {"SOL", "Solana"},

	"usdc":     {"USDC", "USDC"},
	"usd coin": {"USDC", "USDC"},

	"ripple": {"XRP", "Ripple"},
	"xrp":    {"XRP", "XRP"},

	"cardano": {"ADA", "Cardano"},
	"ada":     {"ADA", "ADA"},

	"polkadot": {"DOT", "Polkadot"},
	"dot":      {"DOT", "DOT"},

	"dogecoin": {"DOGE", "Dogecoin"},
	"doge":     {"DOGE", "DOGE"},

	"litecoin": {"LTC", "Litecoin"},
	"ltc":      {"LTC", "LTC"},

	"chainlink": {"LINK", "Chainlink"},
	"link":      {"LINK", "LINK"},

	"avalanche": {"AVAX", "Avalanche"},
	"avax":      {"AVAX", "AVAX"},

	"polygon": {"MATIC", "Polygon"},
	"matic":   {"MATIC", "MATIC"},

	"algorand": {"ALGO", "Algorand"},
	"algo":     {"ALGO", "ALGO"},

	"cosmos": {"ATOM", "Cosmos"},
	"atom":   {"ATOM", "ATOM"},

	"univ3":   {"UNI", "Uniswap"},
	"uniswap": {"UNI", "Uniswap"},

	"defi": {"DeFi", "DeFi"},

	"nft":  {"NFT", "NFT"},
	"nfts": {"NFT", "NFT"},
}

// "Tether" can never match the ticker pattern.
var knownTickers = []string{
	"XLM", "BTC", "ETH", "SOL", "USDC", "XRP", "ADA", "DOT", "DOGE", "LTC",
	"LINK", "AVAX", "MATIC", "ALGO", "ATOM", "UNI", "USDT", "Tether", "BUSD",
	"BNB", "SDF",
}

var tickerNames = map[string][]string{
	"XLM":   {"Stellar"},
	"BTC":   {"Bitcoin"},
	"ETH":   {"Ethereum"},
	"SOL":   {"Solana"},
	"XRP":   {"Ripple"},
	"ADA":   {"Cardano"},
	"DOT":   {"Polkadot"},
	"DOGE":  {"Dogecoin"},
	"LTC":   {"Litecoin"},
	"LINK":  {"Chainlink"},
	"AVAX":  {"Avalanche"},
	"MATIC": {"Polygon"},
	"ALGO":  {"Algorand"},
	"ATOM":  {"Cosmos"},
	"UNI":   {"Uniswap"},
	"USDC":  {"USDC"},
	"USDT":  {"Tether"},
}

// tickerExclusions are common uppercase words that look like tickers.
var tickerExclusions = []string{
	"THE", "AND", "FOR", "ARE", "BUT", "NOT", "YOU", "ALL", "CAN", "HER",
	"WAS", "ONE", "OUR", "OUT", "DAY", "GET", "HAS", "HIM", "HIS", "HOW",
	"ITS", "LET", "MAY", "NEW", "NOW", "OLD", "SEE", "TWO", "WAY", "WHO",
	"BOY", "DID", "SAY", "SHE", "TOO", "USE",
	"FROM", "THIS", "THAT", "WITH", "HAVE", "WILL", "YOUR", "THEY", "BEEN",
	"WHAT", "WHEN", "WEVE", "MORE", "VERY", "JUST", "ONLY", "OVER", "SUCH",
	"THEN", "THEM", "THESE", "SOME", "INTO", "YEAR", "MADE", "MAKE", "ALSO",
	"MOST", "EVEN", "BACK", "LIKE", "TIME", "AFTER", "USED",
	"TWITTER", "POST", "DATA", "COIN", "COINS", "NODE", "NODES",
}
