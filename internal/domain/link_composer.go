package domain

import (
	"errors"
	"fmt"
	"html"
	"net/url"
	"strings"
)

var ErrInvalidLink = errors.New("composed link is not a valid URL")

// Link is the web app URL built for a single start event
type Link struct {
	URL    string
	Params StartParams
}

// ComposeLink appends the start parameters and the premium flag to base.
// Values are appended verbatim; with no parameters the base URL is returned unchanged.
func ComposeLink(params StartParams, premium bool, base string) (Link, error) {
	all := make(StartParams, 0, len(params)+1)
	all = append(all, params...)
	if premium {
		all = append(all, Param{Key: ParamPremium, Value: "true"})
	}

	composed := base
	if len(all) > 0 {
		parts := make([]string, 0, len(all))
		for _, p := range all {
			parts = append(parts, p.String())
		}
		composed = base + "?" + strings.Join(parts, "&")
	}

	if _, err := url.Parse(composed); err != nil {
		return Link{}, fmt.Errorf("%w: %v", ErrInvalidLink, err)
	}

	return Link{URL: composed, Params: all}, nil
}

// HTML returns the URL escaped for an HTML formatted message.
// Use the same value for the visible text and the anchor target.
func (l Link) HTML() string {
	return html.EscapeString(l.URL)
}
