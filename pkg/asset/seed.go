package asset

// Seed returns the built-in catalog in load order. The stock list repeats a
// few symbols (NFLX, CRM, V, ADBE, INTC); search results collapse them.
func Seed() []Asset {
	return []Asset{
		// cryptocurrencies
		{Name: "Bitcoin", Symbol: "BTC", Category: "layer1", Type: Crypto, Price: 107772.53, Change: -0.14, MarketCap: 2150000000000, BaseScore: 92},
		{Name: "Ethereum", Symbol: "ETH", Category: "layer1", Type: Crypto, Price: 3874.64, Change: -0.30, MarketCap: 468410000000, BaseScore: 88},
		{Name: "Tether", Symbol: "USDT", Category: "stablecoin", Type: Crypto, Price: 1.00, Change: 0.0, MarketCap: 182000000000, BaseScore: 85},
		{Name: "Binance Coin", Symbol: "BNB", Category: "layer1", Type: Crypto, Price: 1068.77, Change: -0.23, MarketCap: 148860000000, BaseScore: 84},
		{Name: "XRP", Symbol: "XRP", Category: "crypto", Type: Crypto, Price: 2.41, Change: -0.79, MarketCap: 144660000000, BaseScore: 80},
		{Name: "Solana", Symbol: "SOL", Category: "layer1", Type: Crypto, Price: 184.46, Change: -0.13, MarketCap: 100820000000, BaseScore: 86},
		{Name: "USD Coin", Symbol: "USDC", Category: "stablecoin", Type: Crypto, Price: 1.00, Change: 0.02, MarketCap: 76270000000, BaseScore: 83},
		{Name: "TRON", Symbol: "TRX", Category: "crypto", Type: Crypto, Price: 0.3206, Change: 0.04, MarketCap: 30350000000, BaseScore: 78},
		{Name: "Dogecoin", Symbol: "DOGE", Category: "meme", Type: Crypto, Price: 0.1932, Change: -0.43, MarketCap: 29270000000, BaseScore: 78},
		{Name: "Cardano", Symbol: "ADA", Category: "layer1", Type: Crypto, Price: 0.64, Change: -0.44, MarketCap: 22940000000, BaseScore: 77},
		{Name: "Chainlink", Symbol: "LINK", Category: "defi", Type: Crypto, Price: 17.98, Change: 0.49, MarketCap: 12200000000, BaseScore: 78},
		{Name: "Hypersign", Symbol: "HYPE", Category: "crypto", Type: Crypto, Price: 35.67, Change: -0.55, MarketCap: 12010000000, BaseScore: 77},
		{Name: "Stellar", Symbol: "XLM", Category: "layer1", Type: Crypto, Price: 0.3148, Change: -0.38, MarketCap: 10080000000, BaseScore: 75},
		{Name: "Bitcoin Cash", Symbol: "BCH", Category: "layer1", Type: Crypto, Price: 465.86, Change: -0.53, MarketCap: 9290000000, BaseScore: 75},
		{Name: "Sui", Symbol: "SUI", Category: "layer1", Type: Crypto, Price: 2.48, Change: -0.58, MarketCap: 9019000000, BaseScore: 75},
		{Name: "Avalanche", Symbol: "AVAX", Category: "defi", Type: Crypto, Price: 19.70, Change: -0.04, MarketCap: 8400000000, BaseScore: 76},
		{Name: "LEO Token", Symbol: "LEO", Category: "crypto", Type: Crypto, Price: 8.97, Change: -0.01, MarketCap: 8200000000, BaseScore: 75},
		{Name: "Hedera", Symbol: "HBAR", Category: "crypto", Type: Crypto, Price: 0.1701, Change: -0.20, MarketCap: 7200000000, BaseScore: 74},
		{Name: "Litecoin", Symbol: "LTC", Category: "layer1", Type: Crypto, Price: 92.32, Change: -0.64, MarketCap: 7050000000, BaseScore: 76},
		{Name: "Shiba Inu", Symbol: "SHIB", Category: "meme", Type: Crypto, Price: 0.00001, Change: 1.2, MarketCap: 6000000000, BaseScore: 72},
		{Name: "Polygon", Symbol: "MATIC", Category: "layer1", Type: Crypto, Price: 0.87, Change: 3.45, MarketCap: 8100000000, BaseScore: 80},
		{Name: "Uniswap", Symbol: "UNI", Category: "defi", Type: Crypto, Price: 8.34, Change: 6.78, MarketCap: 5100000000, BaseScore: 82},
		{Name: "Aave", Symbol: "AAVE", Category: "defi", Type: Crypto, Price: 78.90, Change: -0.56, MarketCap: 1100000000, BaseScore: 83},
		{Name: "Render", Symbol: "RNDR", Category: "ai", Type: Crypto, Price: 7.89, Change: 8.45, MarketCap: 2900000000, BaseScore: 85},
		{Name: "Sandbox", Symbol: "SAND", Category: "gaming", Type: Crypto, Price: 0.45, Change: 12.34, MarketCap: 1200000000, BaseScore: 76},
		{Name: "Basic Attention Token", Symbol: "BAT", Category: "defi", Type: Crypto, Price: 0.28, Change: -1.2, MarketCap: 1500000000, BaseScore: 75},
		{Name: "Theta Network", Symbol: "THETA", Category: "media", Type: Crypto, Price: 1.89, Change: -0.9, MarketCap: 3000000000, BaseScore: 74},
		{Name: "VeChain", Symbol: "VET", Category: "layer1", Type: Crypto, Price: 0.11, Change: -0.5, MarketCap: 6800000000, BaseScore: 73},
		{Name: "Filecoin", Symbol: "FIL", Category: "storage", Type: Crypto, Price: 4.01, Change: -0.3, MarketCap: 1700000000, BaseScore: 75},
		{Name: "Algorand", Symbol: "ALGO", Category: "layer1", Type: Crypto, Price: 1.23, Change: -0.7, MarketCap: 2500000000, BaseScore: 75},
		{Name: "Cosmos", Symbol: "ATOM", Category: "layer1", Type: Crypto, Price: 12.34, Change: -0.9, MarketCap: 3300000000, BaseScore: 74},
		{Name: "Internet Computer", Symbol: "ICP", Category: "layer1", Type: Crypto, Price: 6.78, Change: -1.1, MarketCap: 1500000000, BaseScore: 73},
		{Name: "Kusama", Symbol: "KSM", Category: "layer1", Type: Crypto, Price: 180.00, Change: -0.8, MarketCap: 1000000000, BaseScore: 74},
		{Name: "Zcash", Symbol: "ZEC", Category: "privacy", Type: Crypto, Price: 60.00, Change: -0.4, MarketCap: 900000000, BaseScore: 75},
		{Name: "Dash", Symbol: "DASH", Category: "privacy", Type: Crypto, Price: 130.00, Change: -0.6, MarketCap: 800000000, BaseScore: 73},
		{Name: "PancakeSwap", Symbol: "CAKE", Category: "defi", Type: Crypto, Price: 4.50, Change: -1.5, MarketCap: 700000000, BaseScore: 70},
		{Name: "Gala", Symbol: "GALA", Category: "gaming", Type: Crypto, Price: 0.15, Change: -0.7, MarketCap: 600000000, BaseScore: 72},
		{Name: "Axie Infinity", Symbol: "AXS", Category: "gaming", Type: Crypto, Price: 10.50, Change: -0.9, MarketCap: 500000000, BaseScore: 73},
		{Name: "Compound", Symbol: "COMP", Category: "defi", Type: Crypto, Price: 90.00, Change: -1.3, MarketCap: 250000000, BaseScore: 74},
		{Name: "Maker", Symbol: "MKR", Category: "defi", Type: Crypto, Price: 1500.00, Change: -0.7, MarketCap: 100000000, BaseScore: 75},
		{Name: "Synthetix", Symbol: "SNX", Category: "defi", Type: Crypto, Price: 3.20, Change: -1.0, MarketCap: 300000000, BaseScore: 70},
		{Name: "Ocean Protocol", Symbol: "OCEAN", Category: "defi", Type: Crypto, Price: 0.60, Change: -0.5, MarketCap: 250000000, BaseScore: 72},
		{Name: "Storj", Symbol: "STORJ", Category: "storage", Type: Crypto, Price: 0.95, Change: -0.9, MarketCap: 200000000, BaseScore: 70},
		{Name: "Enjin Coin", Symbol: "ENJ", Category: "gaming", Type: Crypto, Price: 1.45, Change: -0.9, MarketCap: 250000000, BaseScore: 71},
		{Name: "Celo", Symbol: "CELO", Category: "layer1", Type: Crypto, Price: 2.50, Change: -1.1, MarketCap: 150000000, BaseScore: 72},
		{Name: "Ren", Symbol: "REN", Category: "defi", Type: Crypto, Price: 0.90, Change: -1.4, MarketCap: 120000000, BaseScore: 70},
		// stocks
		{Name: "Apple Inc", Symbol: "AAPL", Category: "tech", Type: Stock, Price: 178.25, Change: 1.85, MarketCap: 2800000000000, BaseScore: 90},
		{Name: "Microsoft Corp", Symbol: "MSFT", Category: "tech", Type: Stock, Price: 412.30, Change: 2.14, MarketCap: 3100000000000, BaseScore: 92},
		{Name: "NVIDIA Corp", Symbol: "NVDA", Category: "tech", Type: Stock, Price: 495.80, Change: 5.67, MarketCap: 1230000000000, BaseScore: 95},
		{Name: "Amazon.com Inc", Symbol: "AMZN", Category: "tech", Type: Stock, Price: 145.60, Change: 1.23, MarketCap: 1510000000000, BaseScore: 88},
		{Name: "Tesla Inc", Symbol: "TSLA", Category: "auto", Type: Stock, Price: 242.50, Change: 3.45, MarketCap: 770000000000, BaseScore: 82},
		{Name: "Alphabet Inc", Symbol: "GOOGL", Category: "tech", Type: Stock, Price: 139.80, Change: 1.89, MarketCap: 1750000000000, BaseScore: 89},
		{Name: "Meta Platforms", Symbol: "META", Category: "tech", Type: Stock, Price: 485.20, Change: 2.67, MarketCap: 1240000000000, BaseScore: 87},
		{Name: "Netflix Inc", Symbol: "NFLX", Category: "media", Type: Stock, Price: 478.30, Change: 3.12, MarketCap: 210000000000, BaseScore: 81},
		{Name: "Adobe Inc", Symbol: "ADBE", Category: "tech", Type: Stock, Price: 567.90, Change: 2.89, MarketCap: 260000000000, BaseScore: 88},
		{Name: "Salesforce Inc", Symbol: "CRM", Category: "tech", Type: Stock, Price: 267.40, Change: 2.45, MarketCap: 260000000000, BaseScore: 84},
		{Name: "Visa Inc", Symbol: "V", Category: "financial", Type: Stock, Price: 220.50, Change: 1.30, MarketCap: 487000000000, BaseScore: 87},
		{Name: "Johnson & Johnson", Symbol: "JNJ", Category: "healthcare", Type: Stock, Price: 165.30, Change: 0.75, MarketCap: 435000000000, BaseScore: 83},
		{Name: "Walmart Inc", Symbol: "WMT", Category: "retail", Type: Stock, Price: 140.20, Change: 0.58, MarketCap: 395000000000, BaseScore: 80},
		{Name: "Procter & Gamble", Symbol: "PG", Category: "consumer", Type: Stock, Price: 150.55, Change: 1.10, MarketCap: 345000000000, BaseScore: 82},
		{Name: "Mastercard Inc", Symbol: "MA", Category: "financial", Type: Stock, Price: 370.10, Change: 1.50, MarketCap: 390000000000, BaseScore: 85},
		{Name: "Intel Corp", Symbol: "INTC", Category: "tech", Type: Stock, Price: 60.35, Change: 0.80, MarketCap: 250000000000, BaseScore: 75},
		{Name: "Cisco Systems", Symbol: "CSCO", Category: "tech", Type: Stock, Price: 50.20, Change: 0.45, MarketCap: 210000000000, BaseScore: 76},
		{Name: "PepsiCo Inc", Symbol: "PEP", Category: "consumer", Type: Stock, Price: 180.25, Change: 0.90, MarketCap: 230000000000, BaseScore: 78},
		{Name: "Coca-Cola Co", Symbol: "KO", Category: "consumer", Type: Stock, Price: 60.10, Change: 0.60, MarketCap: 260000000000, BaseScore: 77},
		{Name: "Netflix Inc", Symbol: "NFLX", Category: "media", Type: Stock, Price: 478.30, Change: 3.12, MarketCap: 210000000000, BaseScore: 81},
		{Name: "Berkshire Hathaway", Symbol: "BRK.B", Category: "financial", Type: Stock, Price: 540.15, Change: 1.05, MarketCap: 650000000000, BaseScore: 88},
		{Name: "Home Depot", Symbol: "HD", Category: "retail", Type: Stock, Price: 300.40, Change: 2.00, MarketCap: 350000000000, BaseScore: 84},
		{Name: "Pfizer Inc", Symbol: "PFE", Category: "healthcare", Type: Stock, Price: 40.10, Change: 0.30, MarketCap: 230000000000, BaseScore: 79},
		{Name: "Abbott Laboratories", Symbol: "ABT", Category: "healthcare", Type: Stock, Price: 115.20, Change: 1.10, MarketCap: 200000000000, BaseScore: 79},
		{Name: "Nike Inc", Symbol: "NKE", Category: "consumer", Type: Stock, Price: 115.00, Change: 1.50, MarketCap: 220000000000, BaseScore: 80},
		{Name: "Walt Disney Co", Symbol: "DIS", Category: "media", Type: Stock, Price: 135.60, Change: 1.20, MarketCap: 330000000000, BaseScore: 81},
		{Name: "Salesforce", Symbol: "CRM", Category: "tech", Type: Stock, Price: 267.40, Change: 2.45, MarketCap: 260000000000, BaseScore: 84},
		{Name: "ExxonMobil", Symbol: "XOM", Category: "energy", Type: Stock, Price: 70.10, Change: 0.55, MarketCap: 400000000000, BaseScore: 80},
		{Name: "Chevron Corp", Symbol: "CVX", Category: "energy", Type: Stock, Price: 105.20, Change: 0.65, MarketCap: 300000000000, BaseScore: 79},
		{Name: "IBM Corp", Symbol: "IBM", Category: "tech", Type: Stock, Price: 135.00, Change: 0.40, MarketCap: 120000000000, BaseScore: 74},
		{Name: "Boeing Co", Symbol: "BA", Category: "industrial", Type: Stock, Price: 145.00, Change: 1.10, MarketCap: 140000000000, BaseScore: 77},
		{Name: "Qualcomm Inc", Symbol: "QCOM", Category: "tech", Type: Stock, Price: 140.00, Change: 1.25, MarketCap: 160000000000, BaseScore: 78},
		{Name: "McDonald's Corp", Symbol: "MCD", Category: "consumer", Type: Stock, Price: 230.00, Change: 0.90, MarketCap: 190000000000, BaseScore: 79},
		{Name: "American Airlines", Symbol: "AAL", Category: "industrial", Type: Stock, Price: 18.50, Change: 1.40, MarketCap: 13000000000, BaseScore: 65},
		{Name: "General Electric", Symbol: "GE", Category: "industrial", Type: Stock, Price: 100.00, Change: 0.75, MarketCap: 120000000000, BaseScore: 74},
		{Name: "Ford Motor Co", Symbol: "F", Category: "auto", Type: Stock, Price: 15.00, Change: 1.10, MarketCap: 44000000000, BaseScore: 70},
		{Name: "Caterpillar Inc", Symbol: "CAT", Category: "industrial", Type: Stock, Price: 190.00, Change: 1.20, MarketCap: 110000000000, BaseScore: 76},
		{Name: "Visa Inc", Symbol: "V", Category: "financial", Type: Stock, Price: 220.50, Change: 1.30, MarketCap: 487000000000, BaseScore: 87},
		{Name: "Oracle Corp", Symbol: "ORCL", Category: "tech", Type: Stock, Price: 90.00, Change: 0.85, MarketCap: 200000000000, BaseScore: 75},
		{Name: "Adobe Inc", Symbol: "ADBE", Category: "tech", Type: Stock, Price: 567.90, Change: 2.89, MarketCap: 260000000000, BaseScore: 88},
		{Name: "Netflix Inc", Symbol: "NFLX", Category: "media", Type: Stock, Price: 478.30, Change: 3.12, MarketCap: 210000000000, BaseScore: 81},
		{Name: "Salesforce Inc", Symbol: "CRM", Category: "tech", Type: Stock, Price: 267.40, Change: 2.45, MarketCap: 260000000000, BaseScore: 84},
		{Name: "Intel Corp", Symbol: "INTC", Category: "tech", Type: Stock, Price: 60.35, Change: 0.80, MarketCap: 250000000000, BaseScore: 75},
	}
}
