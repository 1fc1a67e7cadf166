package domain

type ProductStatus int

const (
	StatusEnabled  ProductStatus = 1
	StatusDisabled ProductStatus = 2
)

type Visibility int

const (
	VisibilityNotVisible Visibility = 1
	VisibilityInCatalog  Visibility = 2
	VisibilityInSearch   Visibility = 3
	VisibilityBoth       Visibility = 4
)

// Product is the read-only catalog record consumed by the feed pipeline.
// Optional attributes are pointers; absence must degrade gracefully and
// never abort feed generation.
type Product struct {
	ID  uint64 `json:"entity_id"`
	SKU string `json:"sku"`

	Name             string  `json:"name"`
	MetaDescription  *string `json:"meta_description,omitempty"`
	ShortDescription *string `json:"short_description,omitempty"`

	FinalPrice float64  `json:"final_price"`
	Cost       *float64 `json:"cost,omitempty"`

	Manufacturer *string `json:"manufacturer,omitempty"`
	GTIN         *string `json:"gtin,omitempty"`

	URLKey string  `json:"url_key"`
	Image  *string `json:"image,omitempty"`

	Status     ProductStatus `json:"status"`
	Visibility Visibility    `json:"visibility"`
	InStock    bool          `json:"in_stock"`
}

// FeedEligible reports whether the product belongs in the channel feed:
// enabled, visible somewhere, positive final price.
func (p Product) FeedEligible() bool {
	if p.Status != StatusEnabled {
		return false
	}
	switch p.Visibility {
	case VisibilityInCatalog, VisibilityInSearch, VisibilityBoth:
	default:
		return false
	}
	return p.FinalPrice > 0
}
