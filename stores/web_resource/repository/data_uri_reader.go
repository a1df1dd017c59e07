package repository

import (
	"encoding/base64"
	"net/url"
	"strings"

	"github.com/x-xyz/listingpage/base/ctx"
	"github.com/x-xyz/listingpage/domain"
	"golang.org/x/xerrors"
)

const dataUriSchema = "data:"

type dataUriReaderRepo struct{}

// NewDataUriReaderRepo decodes inline token metadata and media, e.g. on-chain svg art
func NewDataUriReaderRepo() domain.WebResourceReaderRepository {
	return &dataUriReaderRepo{}
}

// Get decodes data:[<mediatype>][;base64],<data>
func (r *dataUriReaderRepo) Get(_ ctx.Ctx, uri string) ([]byte, error) {
	if !strings.HasPrefix(uri, dataUriSchema) {
		return nil, xerrors.Errorf("invalid data uri: %w", domain.ErrUnsupportedSchema)
	}
	meta, data, ok := cut(strings.TrimPrefix(uri, dataUriSchema), ",")
	if !ok || data == "" {
		return nil, xerrors.Errorf("data uri without data: %w", domain.ErrBadParamInput)
	}

	if strings.HasSuffix(meta, ";base64") {
		return decodeBase64(data)
	}
	// percent-encoded text, fall back to raw when it is not valid escaping
	if s, err := url.PathUnescape(data); err == nil {
		return []byte(s), nil
	}
	return []byte(data), nil
}

// decodeBase64 accepts padded and unpadded payloads, minters emit both
func decodeBase64(data string) ([]byte, error) {
	if b, err := base64.StdEncoding.DecodeString(data); err == nil {
		return b, nil
	}
	b, err := base64.RawStdEncoding.DecodeString(strings.TrimRight(data, "="))
	if err != nil {
		return nil, xerrors.Errorf("decode data uri: %w", domain.ErrBadParamInput)
	}
	return b, nil
}

func cut(s, sep string) (before, after string, found bool) {
	if i := strings.Index(s, sep); i >= 0 {
		return s[:i], s[i+len(sep):], true
	}
	return s, "", false
}
