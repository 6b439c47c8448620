package universe

// Constituent lists are ordered by market capitalization, descending, and
// are refreshed quarterly. Tickers are raw exchange symbols; suffix
// normalization happens in the data-retrieval layer.

// nifty100 holds the National Stock Exchange of India's top 100 names.
var nifty100 = []string{
	"RELIANCE", "TCS", "HDFCBANK", "INFY", "HINDUNILVR",
	"ICICIBANK", "BHARTIARTL", "ITC", "SBIN", "LT",
	"BAJFINANCE", "KOTAKBANK", "HCLTECH", "ASIANPAINT", "AXISBANK",
	"MARUTI", "TITAN", "SUNPHARMA", "ULTRACEMCO", "NESTLEIND",
	"WIPRO", "NTPC", "ONGC", "POWERGRID", "TATAMOTORS",
	"BAJAJFINSV", "TECHM", "ADANIENT", "JSWSTEEL", "DIVISLAB",
	"HINDALCO", "INDUSINDBK", "TATASTEEL", "COALINDIA", "M&M",
	"CIPLA", "DRREDDY", "EICHERMOT", "APOLLOHOSP", "TATACONSUM",
	"GRASIM", "ADANIPORTS", "BRITANNIA", "HEROMOTOCO", "SBILIFE",
	"BAJAJ-AUTO", "SHREECEM", "HDFCLIFE", "UPL", "BPCL",
	"ADANIGREEN", "ADANITRANS", "AMBUJACEM", "BANDHANBNK", "BEL",
	"BERGEPAINT", "BOSCHLTD", "CHOLAFIN", "COLPAL", "DABUR",
	"DLF", "GAIL", "GODREJCP", "HAVELLS", "HINDZINC",
	"ICICIPRULI", "INDIGO", "IOC", "JINDALSTEL", "LUPIN",
	"MARICO", "MCDOWELL-N", "MUTHOOTFIN", "NMDC", "NYKAA",
	"OFSS", "PAGEIND", "PETRONET", "PIDILITIND", "PNB",
	"RECLTD", "SAIL", "SBICARD", "SIEMENS", "TATAPOWER",
	"TORNTPHARM", "TRENT", "VEDL", "ZOMATO", "ABCAPITAL",
	"BANKBARODA", "CANBK", "IDEA", "PFC", "INDUSTOWER",
	"ICICIGI", "MOTHERSON", "PIIND", "TVSMOTOR", "VOLTAS",
}

// sp500Top100 holds the largest 100 S&P 500 names. NYSE and NASDAQ
// symbols carry no suffix.
var sp500Top100 = []string{
	"AAPL", "MSFT", "GOOGL", "AMZN", "NVDA",
	"META", "TSLA", "BRK.B", "V", "UNH",
	"JNJ", "WMT", "JPM", "MA", "PG",
	"XOM", "HD", "CVX", "MRK", "ABBV",
	"LLY", "AVGO", "COST", "PEP", "KO",
	"ADBE", "TMO", "MCD", "CSCO", "ACN",
	"NFLX", "ABT", "CRM", "DHR", "ORCL",
	"NKE", "VZ", "WFC", "BAC", "AMD",
	"CMCSA", "DIS", "TXN", "PM", "INTC",
	"NEE", "UNP", "RTX", "COP", "UPS",
	"QCOM", "HON", "T", "INTU", "LOW",
	"AMGN", "BMY", "SPGI", "SBUX", "GE",
	"CAT", "BLK", "MDLZ", "AXP", "DE",
	"IBM", "ISRG", "BA", "ADI", "LMT",
	"GS", "GILD", "MMM", "PLD", "ADP",
	"TJX", "VRTX", "BKNG", "SCHW", "CVS",
	"MO", "SYK", "CI", "AMT", "ZTS",
	"REGN", "EL", "PYPL", "CB", "NOW",
	"BDX", "TMUS", "SO", "DUK", "PGR",
	"MS", "CL", "BSX", "MMC", "SLB",
}

// ftse100 holds the London Stock Exchange's FTSE 100 names.
var ftse100 = []string{
	"AZN", "SHEL", "HSBA", "ULVR", "BP",
	"RIO", "GSK", "DGE", "REL", "BATS",
	"GLEN", "LSEG", "AAL", "NG", "CPG",
	"BA", "RR", "VOD", "PRU", "BARC",
	"LLOY", "EXPN", "TSCO", "NWG", "CRH",
	"ABF", "IMB", "SSE", "STAN", "AHT",
	"RKT", "III", "FERG", "ANTO", "BT-A",
	"SGRO", "NXT", "LGEN", "HLMA", "SN",
	"AV", "INF", "CNA", "BNZL", "SMT",
	"ITRK", "WTB", "IHG", "SPX", "WPP",
	"AUTO", "RTO", "PSON", "SGE", "MNDI",
	"CCH", "SVT", "UU", "ADM", "SKG",
	"JD", "BKG", "MRO", "DCC", "BRBY",
	"CRDA", "SMIN", "PHNX", "WEIR", "HL",
	"KGF", "TW", "STJ", "RMV", "EZJ",
	"SDR", "ICP", "MNG", "FRES", "HIK",
	"LAND", "SBRY", "PSN", "IAG", "BLND",
	"RS1", "OCDO", "ENT", "FLTR", "HWDN",
	"AVV", "BME", "DPH", "GVC", "ITV",
	"JMAT", "PNN", "RSW", "SSP", "VTY",
}
