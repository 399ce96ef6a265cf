package domain

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/ad/startlink-bot/internal/encoding"
)

var (
	ErrEmptyStartPayload = errors.New("referral and query are both empty")
	ErrMarkerInValue     = errors.New("value contains a reserved marker")
	ErrNoStartParameter  = errors.New("link has no start parameter")
)

// DeepLinkService handles generation and parsing of Telegram deep-link URLs carrying start payloads
type DeepLinkService struct {
	botUsername string
}

// NewDeepLinkService creates a new DeepLinkService with the specified bot username
func NewDeepLinkService(botUsername string) *DeepLinkService {
	return &DeepLinkService{
		botUsername: strings.TrimPrefix(botUsername, "@"),
	}
}

// BuildStartPayload joins the referral and query into the plain payload DecodeStartParams understands.
// The values are concatenated without a separator so that the decoder's marker scan
// returns them unchanged.
func BuildStartPayload(referral, query string) (string, error) {
	for _, v := range []string{referral, query} {
		if strings.Contains(v, referralMarker) || strings.Contains(v, queryMarker) {
			return "", fmt.Errorf("%w: %q", ErrMarkerInValue, v)
		}
	}

	var payload strings.Builder
	if referral != "" {
		payload.WriteString(referralMarker + referral)
	}
	if query != "" {
		payload.WriteString(queryMarker + query)
	}

	if payload.Len() == 0 {
		return "", ErrEmptyStartPayload
	}

	return payload.String(), nil
}

// GenerateStartLink generates a Telegram deep-link URL that opens the bot with an encoded payload
// Format: https://t.me/{bot_username}?start={base64url(payload)}
func (s *DeepLinkService) GenerateStartLink(referral, query string) (string, error) {
	payload, err := BuildStartPayload(referral, query)
	if err != nil {
		return "", err
	}

	encoded, err := encoding.EncodeStartPayload(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode start payload: %w", err)
	}

	return fmt.Sprintf("https://t.me/%s?start=%s", s.botUsername, encoded), nil
}

// ParseStartLink extracts and decodes the start parameter of a deep-link URL.
// A bare start parameter is accepted as well.
func (s *DeepLinkService) ParseStartLink(link string) (StartParams, error) {
	startParam := link
	if strings.Contains(link, "://") {
		u, err := url.Parse(link)
		if err != nil {
			return nil, fmt.Errorf("invalid deep-link: %w", err)
		}
		startParam = u.Query().Get("start")
		if startParam == "" {
			return nil, ErrNoStartParameter
		}
	}

	return DecodeStartParams(startParam), nil
}
