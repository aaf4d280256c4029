package sale

import (
	"github.com/fekuna/omnipos-tracker/internal/model"
	"github.com/shopspring/decimal"
)

const (
	DefaultChannel = "Walk-in"
	DefaultPayment = "Cash"
)

// ThinMarginRatio is the share of line cost a margin must reach to count as
// healthy.
var ThinMarginRatio = decimal.RequireFromString("0.1")

var channelRates = map[string]decimal.Decimal{
	"Walk-in":   decimal.Zero,
	"Shopee":    decimal.RequireFromString("0.11"),
	"Lazada":    decimal.RequireFromString("0.11"),
	"Facebook":  decimal.RequireFromString("0.03"),
	"Instagram": decimal.RequireFromString("0.03"),
}

var paymentRates = map[string]decimal.Decimal{
	"Cash":  decimal.Zero,
	"GCash": decimal.RequireFromString("0.025"),
	"Card":  decimal.RequireFromString("0.03"),
}

// ChannelRate is the marketplace commission. Unknown channels cost nothing.
func ChannelRate(channel string) decimal.Decimal {
	if r, ok := channelRates[channel]; ok {
		return r
	}
	return decimal.Zero
}

func PaymentRate(method string) decimal.Decimal {
	if r, ok := paymentRates[method]; ok {
		return r
	}
	return decimal.Zero
}

// SuggestedFee is price·qty times the combined channel and payment rates,
// rounded to centavos.
func SuggestedFee(price decimal.Decimal, qty int64, channel, payment string) decimal.Decimal {
	rate := ChannelRate(channel).Add(PaymentRate(payment))
	return price.Mul(decimal.NewFromInt(qty)).Mul(rate).Round(2)
}

// MarginWarning classifies a line margin against its cost.
func MarginWarning(margin, lineCost decimal.Decimal) model.QuoteWarning {
	switch {
	case margin.IsNegative():
		return model.QuoteUnderCost
	case margin.LessThan(lineCost.Mul(ThinMarginRatio)):
		return model.QuoteThinMargin
	}
	return ""
}
