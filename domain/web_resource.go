package domain

import (
	"github.com/x-xyz/listingpage/base/ctx"
)

type WebResourceReaderRepository interface {
	Get(ctx.Ctx, string) ([]byte, error)
}

// WebResourceUseCase fetches token metadata and media, and resolves media uris for the
// hosting UI
type WebResourceUseCase interface {
	Get(ctx.Ctx, string) ([]byte, error)
	GetJson(ctx.Ctx, string) ([]byte, error)
	ResolveMediaUrl(string) string
}
