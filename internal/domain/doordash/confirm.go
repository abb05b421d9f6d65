package doordash

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/dtchiong/order-printer/internal/domain/order"
)

// ParseConfirmURL extracts the order confirmation link from the HTML part of
// the notification email. A miss leaves the sentinel so the operator sees the
// failure instead of a dead button.
func (p *Parser) ParseConfirmURL(o *order.Order, doc *html.Node) {
	anchor := findAnchor(doc)
	if anchor == nil {
		o.ConfirmURL = "Failed to parse"
		return
	}
	for _, attr := range anchor.Attr {
		if attr.Key == "href" {
			o.ConfirmURL = correctConfirmURL(attr.Val)
			return
		}
	}
	o.ConfirmURL = "Failed to parse"
}

func findAnchor(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "a" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findAnchor(c); found != nil {
			return found
		}
	}
	return nil
}

// correctConfirmURL inserts the "www." host prefix the tracking redirect
// drops. Webhook-style confirmation links already resolve and pass through
// unchanged.
func correctConfirmURL(url string) string {
	if strings.Contains(url, "store-webhook") {
		return url
	}
	const scheme = "https://"
	if !strings.HasPrefix(url, scheme) {
		return url
	}
	return scheme + "www." + url[len(scheme):]
}
