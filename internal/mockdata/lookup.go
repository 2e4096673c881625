package mockdata

import (
	"sort"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
	"github.com/samber/mo"

	apperrors "github.com/alexisbeaulieu97/yodl/pkg/errors"
)

// Token resolves a country-flow token. An empty id resolves to DefaultTokenID;
// unknown ids yield None so the screen can show its not-found state.
func Token(id string) mo.Option[TokenDetail] {
	if id == "" {
		id = string(DefaultTokenID)
	}
	detail, ok := tokenDetails()[TokenID(id)]
	if !ok {
		return mo.None[TokenDetail]()
	}
	return mo.Some(detail)
}

// TokenIDs lists the known country-flow token ids in sorted order.
func TokenIDs() []TokenID {
	ids := lo.Keys(tokenDetails())
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// LookupAsset resolves a token-flow asset without falling back.
func LookupAsset(id string) mo.Option[AssetDetail] {
	detail, ok := assetDetails()[AssetID(id)]
	if !ok {
		return mo.None[AssetDetail]()
	}
	return mo.Some(detail)
}

// AssetOrDefault resolves a token-flow asset, falling back to DefaultAssetID for empty or
// unknown ids.
func AssetOrDefault(id string) AssetDetail {
	return LookupAsset(id).OrElse(assetDetails()[DefaultAssetID])
}

// AssetIDs lists the known token-flow asset ids in sorted order.
func AssetIDs() []AssetID {
	ids := lo.Keys(assetDetails())
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Tier resolves a payment tier by id.
func Tier(id TierID) mo.Option[PaymentTier] {
	tier, ok := lo.Find(PaymentTiers(), func(t PaymentTier) bool { return t.ID == id })
	if !ok {
		return mo.None[PaymentTier]()
	}
	return mo.Some(tier)
}

// OtherAssetsValue sums the USD value of the country wallet's other assets.
func OtherAssetsValue() float64 {
	return lo.SumBy(Wallet().OtherAssets, func(a Asset) float64 { return a.USDValue })
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func dataValidator() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New()
	})
	return validateInst
}

// Validate checks every table against its struct tags.
func Validate() error {
	v := dataValidator()

	check := func(field string, value any) error {
		if err := v.Struct(value); err != nil {
			return apperrors.NewValidationError(field, err.Error(), err)
		}
		return nil
	}

	if err := check("home.user", HomeUser()); err != nil {
		return err
	}
	for _, a := range HomeActivity() {
		if err := check("home.activity."+a.ID, a); err != nil {
			return err
		}
	}
	if err := check("wallet", Wallet()); err != nil {
		return err
	}
	for _, id := range TokenIDs() {
		if err := check("token."+string(id), tokenDetails()[id]); err != nil {
			return err
		}
	}
	if err := check("tokenWallet", TokenWalletSummary()); err != nil {
		return err
	}
	for _, t := range append(PaymentTokens(), OtherWalletTokens()...) {
		if err := check("tokenWallet."+string(t.ID), t); err != nil {
			return err
		}
	}
	for _, id := range AssetIDs() {
		if err := check("asset."+string(id), assetDetails()[id]); err != nil {
			return err
		}
	}
	for _, tier := range PaymentTiers() {
		if err := check("tier."+string(tier.ID), tier); err != nil {
			return err
		}
	}
	if err := check("quickPay", QuickPayInfo()); err != nil {
		return err
	}
	return check("settings", SettingsMenu())
}
