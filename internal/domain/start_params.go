package domain

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ad/startlink-bot/internal/encoding"
)

// Query parameter keys appended to the web app URL
const (
	ParamReferral = "ref"
	ParamQuery    = "q"
	ParamPremium  = "pr"
)

// Markers searched for in a decoded start payload
const (
	referralMarker = "r="
	queryMarker    = "q="
)

// Param is a single key=value pair of the composed URL
type Param struct {
	Key   string
	Value string
}

// String renders the pair as key=value without escaping
func (p Param) String() string {
	return p.Key + "=" + p.Value
}

// StartParams is the ordered list of parameters extracted from a start payload.
// The referral parameter, when present, always precedes the query parameter.
type StartParams []Param

// Get returns the value stored under key
func (p StartParams) Get(key string) (string, bool) {
	for _, param := range p {
		if param.Key == key {
			return param.Value, true
		}
	}
	return "", false
}

// CommandArgument returns everything after the first whitespace of a command text,
// or an empty string when the command has no argument
func CommandArgument(text string) string {
	i := strings.IndexFunc(text, unicode.IsSpace)
	if i < 0 {
		return ""
	}
	_, size := utf8.DecodeRuneInString(text[i:])
	return text[i+size:]
}

// DecodeStartParams extracts the referral and query identifiers from a base64url start argument.
// Undecodable input yields no parameters.
//
// Markers are located independently. The referral value stops at "q=" only when that
// marker comes after "r="; the query value always runs to the end of the payload.
func DecodeStartParams(rawArgument string) StartParams {
	payload, err := encoding.DecodeStartPayload(rawArgument)
	if err != nil {
		return StartParams{}
	}

	return extractParams(payload)
}

func extractParams(payload string) StartParams {
	params := make(StartParams, 0, 2)

	refIndex := strings.Index(payload, referralMarker)
	queryIndex := strings.Index(payload, queryMarker)

	if refIndex >= 0 {
		end := len(payload)
		if queryIndex > refIndex {
			end = queryIndex
		}
		params = append(params, Param{Key: ParamReferral, Value: payload[refIndex+len(referralMarker) : end]})
	}

	if queryIndex >= 0 {
		params = append(params, Param{Key: ParamQuery, Value: payload[queryIndex+len(queryMarker):]})
	}

	return params
}
