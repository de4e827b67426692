// Package audio converts between raw audio bytes and the data URI text stored
// in the message content column.
package audio

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

const (
	// DataURIPrefix is prepended to every encoded payload.
	DataURIPrefix = "data:audio/mpeg;base64,"
	// ContentType is served with decoded payloads.
	ContentType = "audio/mpeg"
)

var ErrEmptyPayload = errors.New("audio payload is empty")

func Encode(raw []byte) (string, error) {
	if len(raw) == 0 {
		return "", ErrEmptyPayload
	}
	return DataURIPrefix + base64.StdEncoding.EncodeToString(raw), nil
}

// Decode strips everything up to and including the first comma, when present,
// and base64-decodes the rest. Content stored without a prefix decodes as is.
func Decode(content string) ([]byte, error) {
	if idx := strings.IndexByte(content, ','); idx >= 0 {
		content = content[idx+1:]
	}
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(content))
	if err != nil {
		return nil, fmt.Errorf("decode audio payload failed: %w", err)
	}
	return raw, nil
}
