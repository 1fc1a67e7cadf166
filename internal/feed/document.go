package feed

import (
	"encoding/xml"
	"fmt"
)

// GoogleNamespace is bound to the g: prefix on the rss root.
const GoogleNamespace = "http://base.google.com/ns/1.0"

// Document is the assembled channel feed: store-level channel metadata
// plus items in catalog order. It is built fresh per request and holds no
// state beyond its fields.
type Document struct {
	Title       string
	Link        string
	Description string

	Items []Item
}

type rssElement struct {
	XMLName xml.Name       `xml:"rss"`
	Version string         `xml:"version,attr"`
	XmlnsG  string         `xml:"xmlns:g,attr"`
	Channel channelElement `xml:"channel"`
}

type channelElement struct {
	Title       string        `xml:"title"`
	Link        string        `xml:"link"`
	Description string        `xml:"description"`
	Items       []itemElement `xml:"item"`
}

type itemElement struct {
	ID           string `xml:"g:id"`
	Title        string `xml:"g:title"`
	Description  string `xml:"g:description"`
	Link         string `xml:"g:link"`
	ImageLink    string `xml:"g:image_link"`
	Availability string `xml:"g:availability"`
	Price        string `xml:"g:price"`
	Brand        string `xml:"g:brand"`
	GTIN         string `xml:"g:gtin,omitempty"`
	MPN          string `xml:"g:mpn"`
	Condition    string `xml:"g:condition"`
	CustomLabel0 string `xml:"g:custom_label_0,omitempty"`
	CustomLabel1 string `xml:"g:custom_label_1"`
}

// Encode serializes the whole document in memory: UTF-8 XML declaration
// followed by the indented rss tree. Control stripping is re-applied on
// every text node here; derivation already cleans its inputs but the
// document must never carry characters invalid for XML 1.0 regardless of
// where a value came from.
func (d *Document) Encode() ([]byte, error) {
	root := rssElement{
		Version: "2.0",
		XmlnsG:  GoogleNamespace,
		Channel: channelElement{
			Title:       StripControl(d.Title),
			Link:        StripControl(d.Link),
			Description: StripControl(d.Description),
			Items:       make([]itemElement, 0, len(d.Items)),
		},
	}

	for _, it := range d.Items {
		root.Channel.Items = append(root.Channel.Items, itemElement{
			ID:           StripControl(it.ID),
			Title:        StripControl(it.Title),
			Description:  StripControl(it.Description),
			Link:         StripControl(it.Link),
			ImageLink:    StripControl(it.ImageLink),
			Availability: StripControl(it.Availability),
			Price:        StripControl(it.Price),
			Brand:        StripControl(it.Brand),
			GTIN:         StripControl(it.GTIN),
			MPN:          StripControl(it.MPN),
			Condition:    StripControl(it.Condition),
			CustomLabel0: StripControl(it.CustomLabel0),
			CustomLabel1: StripControl(it.CustomLabel1),
		})
	}

	body, err := xml.MarshalIndent(root, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode feed document: %w", err)
	}

	out := make([]byte, 0, len(xml.Header)+len(body)+1)
	out = append(out, xml.Header...)
	out = append(out, body...)
	out = append(out, '\n')
	return out, nil
}
