package feed

// Margin tier labels emitted as custom_label_1 for campaign segmentation.
const (
	MarginUnknown = "Unknown Margin"
	MarginHigh    = "High Margin (>40%)"
	MarginMedium  = "Medium Margin (20-40%)"
	MarginLow     = "Low Margin (<20%)"
)

// ClassifyMargin buckets gross margin (price - cost) / price into a tier.
// Lower boundaries are inclusive: exactly 0.40 is High, exactly 0.20 is
// Medium. Missing or non-positive cost or price means the margin cannot
// be computed.
func ClassifyMargin(cost, price float64) string {
	if price <= 0 || cost <= 0 {
		return MarginUnknown
	}

	margin := (price - cost) / price

	switch {
	case margin >= 0.40:
		return MarginHigh
	case margin >= 0.20:
		return MarginMedium
	default:
		return MarginLow
	}
}
