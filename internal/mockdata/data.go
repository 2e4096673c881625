package mockdata

const usdtGreen = "#26A17B"

// Flags used by country lists.
const (
	FlagArgentina   = "🇦🇷"
	FlagBrazil      = "🇧🇷"
	FlagPhilippines = "🇵🇭"
	FlagVietnam     = "🇻🇳"
)

// HomeUser returns the token-centric home balance.
func HomeUser() User {
	return User{
		Balance:           125.00,
		Currency:          "USD",
		SecondaryCurrency: "VND",
		SecondaryBalance:  3293125.00,
	}
}

// HomeActivity returns the token-centric home activity rows.
func HomeActivity() []Activity {
	return []Activity{
		{
			ID:          "1",
			Kind:        ActivitySpend,
			Title:       "Spend",
			Timestamp:   "5 AUG 2025 • 17:35",
			AmountLocal: "-475,000 VND",
			AmountUSDT:  "18.03 USDT",
		},
	}
}

// Wallet returns the country-centric wallet.
func Wallet() CountryWallet {
	return CountryWallet{
		TotalBalance: 785.00,
		Active: Country{
			Name:             "Vietnam",
			Flag:             FlagVietnam,
			AvailableBalance: 350.00,
			QuickPay: QuickPay{
				TierLimits: TierLimits{PerTx: 200, PerDay: 500},
				Tokens: []TokenBalance{
					{ID: TokenUSDTArbitrum, Symbol: "USDT", Chain: "Arbitrum", Balance: 200.00, IconColor: usdtGreen},
					{ID: TokenUSDTBNB, Symbol: "USDT", Chain: "BNB Chain", Balance: 150.00, IconColor: usdtGreen},
				},
			},
			ProPay: ProPay{
				TierLimits: TierLimits{PerTx: 2000, PerDay: 5000},
				Unlocked:   false,
			},
		},
		OtherAssets: []Asset{
			{ID: "eth", Symbol: "ETH", Chain: "Arbitrum", Amount: 0.042, USDValue: 98.50, IconColor: "#627EEA"},
			{ID: "dai", Symbol: "DAI", Chain: "Arbitrum", Amount: 26.50, USDValue: 26.50, IconColor: "#F5AC37"},
		},
	}
}

func tokenDetails() map[TokenID]TokenDetail {
	return map[TokenID]TokenDetail{
		TokenUSDTArbitrum: {
			ID:        TokenUSDTArbitrum,
			Symbol:    "USDT",
			Chain:     "Arbitrum",
			Balance:   200.00,
			USDValue:  200.00,
			IconColor: usdtGreen,
			Network:   "Arbitrum One",
			Address:   "0x8968...ddD7E9",
			Transactions: []Transaction{
				{ID: "1", Direction: Received, Amount: 50, Date: "5 AUG", Time: "14:30"},
				{ID: "2", Direction: Sent, Amount: 25, Date: "3 AUG", Time: "09:15"},
				{ID: "3", Direction: Received, Amount: 100, Date: "1 AUG", Time: "18:45"},
			},
		},
		TokenUSDTBNB: {
			ID:        TokenUSDTBNB,
			Symbol:    "USDT",
			Chain:     "BNB Chain",
			Balance:   150.00,
			USDValue:  150.00,
			IconColor: usdtGreen,
			Network:   "BNB Smart Chain",
			Address:   "0x8968...ddD7E9",
			Transactions: []Transaction{
				{ID: "1", Direction: Received, Amount: 150, Date: "2 AUG", Time: "11:20"},
			},
		},
	}
}

// TokenWalletSummary returns the token-centric wallet totals.
func TokenWalletSummary() WalletSummary {
	return WalletSummary{TotalBalance: 625.00, SpendableBalance: 500.00, OtherBalance: 125.00}
}

// PaymentTokens returns the "For Payments" rows of the token-centric wallet.
func PaymentTokens() []WalletToken {
	return []WalletToken{
		{ID: AssetUSDT, Name: "USDT", Glyph: "₮", Balance: 350.00, Color: usdtGreen, Active: true},
		{ID: AssetUSDC, Name: "USDC", Glyph: "$", Balance: 150.00, Color: "#2775CA"},
	}
}

// OtherWalletTokens returns the "Other Assets" rows of the token-centric wallet.
// DAI carries a token amount and a USD value, ETH only a USD value.
func OtherWalletTokens() []WalletToken {
	return []WalletToken{
		{ID: AssetETH, Name: "ETH", Glyph: "◆", Balance: 98.50, Color: "#627EEA"},
		{ID: AssetDAI, Name: "DAI", Glyph: "◇", Balance: 26.50, BalanceUSD: 26.50, Color: "#F5AC37", Network: "Arbitrum"},
	}
}

func assetDetails() map[AssetID]AssetDetail {
	standard := AssetLimits{
		Quick: TierLimits{PerTx: 200, PerDay: 500},
		Pro:   ProLimits{TierLimits: TierLimits{PerTx: 2000, PerDay: 5000}},
	}

	return map[AssetID]AssetDetail{
		AssetUSDT: {
			ID:    AssetUSDT,
			Name:  "USDT",
			Glyph: "₮",
			Color: usdtGreen,
			Networks: []Network{
				{ID: "arbitrum", Name: "Arbitrum", Balance: 200.00, BalanceToken: 200.00, Active: true},
				{ID: "bnb", Name: "BNB Chain", Balance: 150.00, BalanceToken: 150.00},
			},
			SpendableIn: []string{FlagVietnam, FlagBrazil, FlagPhilippines},
			Limits:      standard,
			History: []HistoryEntry{
				{ID: "1", Kind: HistoryPayment, Title: "Payment", Date: "Dec 8, 09:21", Amount: "-30,000 đ", Negative: true},
				{ID: "2", Kind: HistoryTopUp, Title: "Top Up", Date: "Dec 7, 14:30", Amount: "+50 USDT"},
			},
		},
		AssetUSDC: {
			ID:    AssetUSDC,
			Name:  "USDC",
			Glyph: "$",
			Color: "#2775CA",
			Networks: []Network{
				{ID: "arbitrum", Name: "Arbitrum", Balance: 100.00, BalanceToken: 100.00, Active: true},
				{ID: "base", Name: "Base", Balance: 50.00, BalanceToken: 50.00},
			},
			SpendableIn: []string{FlagVietnam, FlagBrazil},
			Limits:      standard,
		},
		AssetETH: {
			ID:    AssetETH,
			Name:  "ETH",
			Glyph: "◆",
			Color: "#627EEA",
			Networks: []Network{
				{ID: "ethereum", Name: "Ethereum", Balance: 98.50, BalanceToken: 0.025, Active: true},
			},
		},
		AssetDAI: {
			ID:    AssetDAI,
			Name:  "DAI",
			Glyph: "◇",
			Color: "#F5AC37",
			Networks: []Network{
				{ID: "arbitrum", Name: "Arbitrum", Balance: 26.50, BalanceToken: 26.50, Active: true},
			},
		},
	}
}

// PaymentTiers returns the tier cards in display order.
func PaymentTiers() []PaymentTier {
	return []PaymentTier{
		{
			ID:        TierQuick,
			Name:      "Quick Pay",
			Subtitle:  "No verification required",
			Icon:      TierIconZap,
			Active:    true,
			Countries: []string{FlagBrazil, FlagPhilippines, FlagVietnam},
			Badge:     "Active",
		},
		{
			ID:        TierPro,
			Name:      "Pro Pay",
			Subtitle:  "Higher limits. More countries.",
			Icon:      TierIconShield,
			Locked:    true,
			Countries: []string{FlagArgentina, FlagVietnam},
		},
		{
			ID:        TierGlobal,
			Name:      "Global Pay",
			Subtitle:  "More countries and coverage.",
			Icon:      TierIconGlobe,
			Locked:    true,
			Countries: []string{FlagArgentina, FlagVietnam},
		},
	}
}

// QuickPayInfo returns the quick pay detail content.
func QuickPayInfo() QuickPayDetail {
	return QuickPayDetail{
		Flags:       []string{FlagBrazil, FlagPhilippines, FlagVietnam},
		Title:       "Quick Pay",
		Description: "Start paying now. Deposit USDT on Arbitrum and scan any supported QR code.",
		Limits: []LimitLine{
			{Label: "Per transaction:", Value: "$200 USD"},
			{Label: "Daily Limit:", Value: "$500 USD"},
			{Label: "Monthly Limit:", Value: "$5,000 USD"},
		},
		Tokens: []SupportedToken{
			{Name: "USDT", Network: "Arbitrum", IconColor: usdtGreen, Glyph: "₮"},
		},
	}
}

// SettingsMenu returns the token-centric settings content.
func SettingsMenu() Settings {
	daily, monthly := 230, 1200
	return Settings{
		QuickPayUsage: []UsageLimit{
			{Label: "Per transaction:", Max: 200, Color: "#22C55E"},
			{Label: "Daily usage", Current: &daily, Max: 500},
			{Label: "Monthly usage", Current: &monthly, Max: 5000},
		},
		Sections: []MenuSection{
			{Title: "Account", Items: []MenuItem{
				{ID: MenuPaymentNetworks, Label: "Payment Networks"},
				{ID: MenuCurrency, Label: "Currency"},
			}},
			{Title: "Settings", Items: []MenuItem{
				{ID: MenuTheme, Label: "Theme"},
				{ID: MenuAbout, Label: "About", ShowChevron: true},
			}},
			{Items: []MenuItem{
				{ID: MenuSupport, Label: "Support"},
				{ID: MenuLogout, Label: "Logout"},
			}},
		},
	}
}

// Settings menu item ids.
const (
	MenuPaymentNetworks = "payment-networks"
	MenuCurrency        = "currency"
	MenuTheme           = "theme"
	MenuAbout           = "about"
	MenuSupport         = "support"
	MenuLogout          = "logout"
)
