// Package imageconv converts image payloads between the wire formats used by
// the API and the representations used by the storage backends. Inbound images
// arrive as data URLs or bare base64 strings; stored images are either raw
// bytes (binary backend) or a hex-encoded bytea string (textual backend).
// All functions are pure.
package imageconv

import (
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidImageData is returned when a supplied image payload cannot be
// base64-decoded or decodes to zero bytes.
var ErrInvalidImageData = errors.New("invalid image data")

// Payload holds a decoded image and its declared MIME type.
// The zero value means "no image supplied".
type Payload struct {
	Data []byte
	Mime string
}

// Empty reports whether the payload carries no image.
func (p Payload) Empty() bool { return len(p.Data) == 0 }

// Decode parses an inbound image string. The input may be a full data URL
// ("data:image/png;base64,....") or a bare base64 string. An empty input is
// not an error: it yields the zero Payload, since images are optional on most
// endpoints. Malformed base64 or a zero-byte result yields ErrInvalidImageData.
func Decode(dataURLOrBase64, declaredMime string) (Payload, error) {
	if dataURLOrBase64 == "" {
		return Payload{}, nil
	}

	raw := dataURLOrBase64
	if idx := strings.LastIndexByte(raw, ','); idx != -1 {
		raw = raw[idx+1:]
	}

	data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(raw))
	if err != nil || len(data) == 0 {
		return Payload{}, ErrInvalidImageData
	}
	return Payload{Data: data, Mime: declaredMime}, nil
}

// DataURL re-encodes stored image bytes as a displayable data URL.
// Returns "" for empty input. A missing MIME type falls back to image/png,
// matching what browsers assume for site imagery.
func DataURL(data []byte, mime string) string {
	if len(data) == 0 {
		return ""
	}
	if mime == "" {
		mime = "image/png"
	}
	return fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(data))
}

// EncodeHex renders image bytes as a bytea-style hex string ("\x48656c6c6f")
// for backends that store binary as text.
func EncodeHex(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	return `\x` + hex.EncodeToString(data)
}

// DecodeHex reverses EncodeHex. Values without the bytea prefix are passed
// through as raw bytes so the binary and textual backends can share read paths.
func DecodeHex(stored string) ([]byte, error) {
	if stored == "" {
		return nil, nil
	}
	if !strings.HasPrefix(stored, `\x`) {
		return []byte(stored), nil
	}
	data, err := hex.DecodeString(stored[2:])
	if err != nil {
		return nil, fmt.Errorf("decode hex image: %w", err)
	}
	return data, nil
}
