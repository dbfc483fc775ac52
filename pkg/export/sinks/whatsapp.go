package sinks

import (
	"fmt"
	"net/url"

	"github.com/pkg/browser"
)

// MessageURL composes the wa.me deep link for recipient, percent-encoding
// the payload. Encoding happens here, at the sink boundary, never in the
// transform.
func MessageURL(recipient, payload string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", recipient, url.QueryEscape(payload))
}

// OpenMessage opens the composed deep link in the default browser.
func OpenMessage(recipient, payload string) error {
	return browser.OpenURL(MessageURL(recipient, payload))
}
