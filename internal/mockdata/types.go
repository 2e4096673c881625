// Package mockdata holds the compiled-in records that stand in for wallet, token,
// transaction and payment tier data. Records are never mutated; lookups return copies.
package mockdata

// TokenID keys the country-flow token detail table.
type TokenID string

const (
	TokenUSDTArbitrum TokenID = "usdt-arb"
	TokenUSDTBNB      TokenID = "usdt-bnb"
)

// DefaultTokenID is used when a token detail route carries no id.
const DefaultTokenID = TokenUSDTArbitrum

// AssetID keys the token-flow asset table.
type AssetID string

const (
	AssetUSDT AssetID = "usdt"
	AssetUSDC AssetID = "usdc"
	AssetETH  AssetID = "eth"
	AssetDAI  AssetID = "dai"
)

// DefaultAssetID is used when an asset route is empty or unknown.
const DefaultAssetID = AssetUSDT

// TierID keys payment tiers.
type TierID string

const (
	TierQuick  TierID = "quick"
	TierPro    TierID = "pro"
	TierGlobal TierID = "global"
)

// Direction of a token transfer.
type Direction string

const (
	Received Direction = "received"
	Sent     Direction = "sent"
)

// ActivityKind classifies home activity rows.
type ActivityKind string

const (
	ActivitySpend   ActivityKind = "spend"
	ActivityTopUp   ActivityKind = "topup"
	ActivityReceive ActivityKind = "receive"
)

// HistoryKind classifies asset history rows.
type HistoryKind string

const (
	HistoryPayment HistoryKind = "payment"
	HistoryTopUp   HistoryKind = "topup"
)

// TierIcon names the glyph shown on a tier card.
type TierIcon string

const (
	TierIconZap    TierIcon = "zap"
	TierIconShield TierIcon = "shield"
	TierIconGlobe  TierIcon = "globe"
)

// User is the home screen balance summary.
type User struct {
	Balance           float64 `validate:"gte=0"`
	Currency          string  `validate:"required,len=3"`
	SecondaryCurrency string  `validate:"required,len=3"`
	SecondaryBalance  float64 `validate:"gte=0"`
}

// Activity is one row of the home activity list.
type Activity struct {
	ID          string       `validate:"required"`
	Kind        ActivityKind `validate:"required,oneof=spend topup receive"`
	Title       string       `validate:"required"`
	Timestamp   string       `validate:"required"`
	AmountLocal string       `validate:"required"`
	AmountUSDT  string
}

// TokenBalance is a token held on one chain.
type TokenBalance struct {
	ID        TokenID `validate:"required"`
	Symbol    string  `validate:"required"`
	Chain     string  `validate:"required"`
	Balance   float64 `validate:"gte=0"`
	IconColor string  `validate:"required,hexcolor"`
}

// Asset is a non-payment holding.
type Asset struct {
	ID        string  `validate:"required"`
	Symbol    string  `validate:"required"`
	Chain     string  `validate:"required"`
	Amount    float64 `validate:"gte=0"`
	USDValue  float64 `validate:"gte=0"`
	IconColor string  `validate:"required,hexcolor"`
}

// TierLimits are the per transaction and per day caps of a payment tier.
type TierLimits struct {
	PerTx  int `validate:"gte=0"`
	PerDay int `validate:"gte=0"`
}

// QuickPay is the unverified tier of a country.
type QuickPay struct {
	TierLimits
	Tokens []TokenBalance `validate:"dive"`
}

// ProPay is the verified tier of a country.
type ProPay struct {
	TierLimits
	Unlocked bool
}

// Country is the active spending country.
type Country struct {
	Name             string  `validate:"required"`
	Flag             string  `validate:"required"`
	AvailableBalance float64 `validate:"gte=0"`
	QuickPay         QuickPay
	ProPay           ProPay
}

// CountryWallet backs the country-flow wallet screen.
type CountryWallet struct {
	TotalBalance float64 `validate:"gte=0"`
	Active       Country
	OtherAssets  []Asset `validate:"dive"`
}

// Transaction is one transfer on the token detail screen.
type Transaction struct {
	ID        string    `validate:"required"`
	Direction Direction `validate:"required,oneof=received sent"`
	Amount    float64   `validate:"gt=0"`
	Date      string    `validate:"required"`
	Time      string    `validate:"required"`
}

// TokenDetail backs the country-flow token detail screen.
type TokenDetail struct {
	ID           TokenID       `validate:"required"`
	Symbol       string        `validate:"required"`
	Chain        string        `validate:"required"`
	Balance      float64       `validate:"gte=0"`
	USDValue     float64       `validate:"gte=0"`
	IconColor    string        `validate:"required,hexcolor"`
	Network      string        `validate:"required"`
	Address      string        `validate:"required"`
	Transactions []Transaction `validate:"dive"`
}

// WalletSummary heads the token-flow wallet screen.
type WalletSummary struct {
	TotalBalance     float64 `validate:"gte=0"`
	SpendableBalance float64 `validate:"gte=0"`
	OtherBalance     float64 `validate:"gte=0"`
}

// WalletToken is one row of the token-flow wallet screen.
type WalletToken struct {
	ID         AssetID `validate:"required"`
	Name       string  `validate:"required"`
	Glyph      string  `validate:"required"`
	Balance    float64 `validate:"gte=0"`
	BalanceUSD float64 `validate:"gte=0"`
	Color      string  `validate:"required,hexcolor"`
	Network    string
	Active     bool
}

// Network is one chain an asset is held on.
type Network struct {
	ID           string  `validate:"required"`
	Name         string  `validate:"required"`
	Balance      float64 `validate:"gte=0"`
	BalanceToken float64 `validate:"gte=0"`
	Active       bool
}

// ProLimits extend TierLimits with the verification state.
type ProLimits struct {
	TierLimits
	Verified bool
}

// AssetLimits pairs the quick and pro tier caps of an asset.
type AssetLimits struct {
	Quick TierLimits
	Pro   ProLimits
}

// HistoryEntry is one row of the asset history list.
type HistoryEntry struct {
	ID       string      `validate:"required"`
	Kind     HistoryKind `validate:"required,oneof=payment topup"`
	Title    string      `validate:"required"`
	Date     string      `validate:"required"`
	Amount   string      `validate:"required"`
	Negative bool
}

// AssetDetail backs the token-flow asset detail screen.
type AssetDetail struct {
	ID          AssetID   `validate:"required"`
	Name        string    `validate:"required"`
	Glyph       string    `validate:"required"`
	Color       string    `validate:"required,hexcolor"`
	Networks    []Network `validate:"required,min=1,dive"`
	SpendableIn []string
	Limits      AssetLimits
	History     []HistoryEntry `validate:"dive"`
}

// ActiveNetwork returns the active network, or the first one when none is flagged.
func (a AssetDetail) ActiveNetwork() Network {
	for _, n := range a.Networks {
		if n.Active {
			return n
		}
	}
	if len(a.Networks) == 0 {
		return Network{}
	}
	return a.Networks[0]
}

// HasLimits reports whether any tier allows spending the asset.
func (a AssetDetail) HasLimits() bool {
	return a.Limits.Quick.PerTx > 0 || a.Limits.Pro.PerTx > 0
}

// PaymentTier is one card of the payment networks screen.
type PaymentTier struct {
	ID        TierID   `validate:"required,oneof=quick pro global"`
	Name      string   `validate:"required"`
	Subtitle  string   `validate:"required"`
	Icon      TierIcon `validate:"required,oneof=zap shield globe"`
	Active    bool
	Locked    bool
	Countries []string `validate:"required,min=1"`
	Badge     string
}

// LimitLine is a labelled value on the quick pay detail screen.
type LimitLine struct {
	Label string `validate:"required"`
	Value string `validate:"required"`
}

// SupportedToken is a token accepted by a tier.
type SupportedToken struct {
	Name      string `validate:"required"`
	Network   string `validate:"required"`
	IconColor string `validate:"required,hexcolor"`
	Glyph     string `validate:"required"`
}

// QuickPayDetail backs the quick pay settings screen.
type QuickPayDetail struct {
	Flags       []string         `validate:"required,min=1"`
	Title       string           `validate:"required"`
	Description string           `validate:"required"`
	Limits      []LimitLine      `validate:"required,dive"`
	Tokens      []SupportedToken `validate:"required,dive"`
}

// UsageLimit is a settings usage meter. Current is nil for caps without usage.
type UsageLimit struct {
	Label   string `validate:"required"`
	Current *int
	Max     int    `validate:"gt=0"`
	Color   string `validate:"omitempty,hexcolor"`
}

// MenuItem is one settings row.
type MenuItem struct {
	ID          string `validate:"required"`
	Label       string `validate:"required"`
	ShowChevron bool
}

// MenuSection groups settings rows under an optional heading.
type MenuSection struct {
	Title string
	Items []MenuItem `validate:"required,dive"`
}

// Settings backs the token-flow settings screen.
type Settings struct {
	QuickPayUsage []UsageLimit  `validate:"required,dive"`
	Sections      []MenuSection `validate:"required,dive"`
}
