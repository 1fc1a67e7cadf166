package feed

// Item is one product entry of the channel feed. Required fields are
// always populated by derivation; GTIN and CustomLabel0 are optional and
// an empty string means the element is omitted from the document, never
// emitted empty.
type Item struct {
	ID          string
	Title       string
	Description string

	Link      string
	ImageLink string

	Availability string
	Condition    string

	Price string // "20.00 USD"
	Brand string

	GTIN string
	MPN  string

	CustomLabel0 string // performance segment
	CustomLabel1 string // margin tier
}
