package encoding

import (
	"encoding/base64"
	"errors"
	"unicode/utf8"
)

// MaxStartPayloadLength is the longest start parameter Telegram accepts in a deep link
const MaxStartPayloadLength = 64

var (
	ErrInvalidPayload = errors.New("payload is not valid base64url encoded UTF-8")
	ErrPayloadTooLong = errors.New("encoded payload exceeds the start parameter limit")
)

// DecodeStartPayload decodes a base64url start parameter into a UTF-8 string.
// Canonical padded input is accepted, and so is unpadded input, since Telegram
// strips '=' from start parameters.
func DecodeStartPayload(encoded string) (string, error) {
	data, err := base64.URLEncoding.DecodeString(encoded)
	if err != nil {
		data, err = base64.RawURLEncoding.DecodeString(encoded)
		if err != nil {
			return "", ErrInvalidPayload
		}
	}

	if !utf8.Valid(data) {
		return "", ErrInvalidPayload
	}

	return string(data), nil
}

// EncodeStartPayload encodes a plain payload for use as a start parameter.
// The result uses the unpadded URL-safe alphabet, which is the only form Telegram passes through unchanged.
func EncodeStartPayload(payload string) (string, error) {
	encoded := base64.RawURLEncoding.EncodeToString([]byte(payload))
	if len(encoded) > MaxStartPayloadLength {
		return "", ErrPayloadTooLong
	}

	return encoded, nil
}
