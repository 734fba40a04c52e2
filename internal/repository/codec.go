package repository

import (
	"encoding/json"
	"fmt"

	"github.com/cardinalkit/surveybuilder/internal/domain"
	"github.com/klauspost/compress/zstd"
)

// Payload encodings stored in draft_snapshot.encoding.
const (
	EncodingJSON     = "json"
	EncodingZstdJSON = "zstd+json"
)

// EncodeAll and DecodeAll are safe for concurrent use, so one encoder and
// one decoder serve every repository.
var (
	zstdEncoder, _ = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	zstdDecoder, _ = zstd.NewReader(nil)
)

func encodeDraft(d *domain.Draft, compress bool) (payload []byte, encoding string, err error) {
	raw, err := json.Marshal(d)
	if err != nil {
		return nil, "", fmt.Errorf("marshaling draft: %w", err)
	}
	if !compress {
		return raw, EncodingJSON, nil
	}
	return zstdEncoder.EncodeAll(raw, nil), EncodingZstdJSON, nil
}

func decodeDraft(payload []byte, encoding string) (*domain.Draft, error) {
	raw := payload
	switch encoding {
	case EncodingJSON:
	case EncodingZstdJSON:
		var err error
		raw, err = zstdDecoder.DecodeAll(payload, nil)
		if err != nil {
			return nil, fmt.Errorf("decompressing draft: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown draft encoding %q", encoding)
	}

	var d domain.Draft
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("unmarshaling draft: %w", err)
	}
	d.Normalize()
	return &d, nil
}
