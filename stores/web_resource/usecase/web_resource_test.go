package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/x-xyz/listingpage/base/ctx"
	"github.com/x-xyz/listingpage/domain"
	"github.com/x-xyz/listingpage/domain/mocks"
)

func Test_getIpfsUrl(t *testing.T) {
	type args struct {
		url string
	}
	tests := []struct {
		name string
		args args
		want string
	}{
		{
			name: "pinata",
			args: args{
				url: "https://gateway.pinata.cloud/ipfs/QmVVutd4A4i1jCQnJXR49miQdXLNLVeGwyo5wWznpgRGeH",
			},
			want: "ipfs://QmVVutd4A4i1jCQnJXR49miQdXLNLVeGwyo5wWznpgRGeH",
		},
		{
			name: "pinata dedicated",
			args: args{
				url: "https://womenandweapons.mypinata.cloud/ipfs/QmTeTTMFgPYULCNkfxLcJSu5KByxDWh6JA4HFZY4CQnxdS",
			},
			want: "ipfs://QmTeTTMFgPYULCNkfxLcJSu5KByxDWh6JA4HFZY4CQnxdS",
		},
		{
			name: "ipfs.io",
			args: args{
				url: "https://ipfs.io/ipfs/QmRM6jM1Agru6fgm9aae1oFukwSi5d3Kk71Lue2rYznEYm/0.png",
			},
			want: "ipfs://QmRM6jM1Agru6fgm9aae1oFukwSi5d3Kk71Lue2rYznEYm/0.png",
		},
		{
			name: "cloudflare",
			args: args{
				url: "https://cloudflare-ipfs.com/ipfs/QmSddkqicov3HC1Urzv5AKPy2S7KqcnMQR5fjBnrFs2Z7A",
			},
			want: "ipfs://QmSddkqicov3HC1Urzv5AKPy2S7KqcnMQR5fjBnrFs2Z7A",
		},
		{
			name: "thirdweb",
			args: args{
				url: "https://ipfs.thirdweb.com/ipfs/QmMeta/42",
			},
			want: "ipfs://QmMeta/42",
		},
		{
			name: "noop",
			args: args{
				url: "https://some.url",
			},
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := getIpfsUrl(tt.args.url); got != tt.want {
				t.Errorf("getIpfsUrl() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolveMediaUrl(t *testing.T) {
	u := NewWebResourceUseCase(&WebResourceUseCaseCfg{IpfsGateway: "https://ipfs.io/ipfs/"})
	tests := map[string]string{
		"ipfs://QmImage/1.png":          "https://ipfs.io/ipfs/QmImage/1.png",
		"ipfs://ipfs/QmImage":           "https://ipfs.io/ipfs/QmImage",
		"ar://tx-id":                    "https://arweave.net/tx-id",
		"QmSddkqicov3HC1Urzv5AKPy2S7Kq": "https://ipfs.io/ipfs/QmSddkqicov3HC1Urzv5AKPy2S7Kq",
		"https://some.url/a.png":        "https://some.url/a.png",
		"data:image/png;base64,AAAA":    "data:image/png;base64,AAAA",
		" ipfs://QmTrim ":               "https://ipfs.io/ipfs/QmTrim",
	}
	for in, want := range tests {
		assert.Equal(t, want, u.ResolveMediaUrl(in), in)
	}
}

type readers struct {
	http, ipfs, data, ar *mocks.WebResourceReaderRepository
}

func newUseCase(t *testing.T) (domain.WebResourceUseCase, readers) {
	r := readers{
		http: mocks.NewWebResourceReaderRepository(t),
		ipfs: mocks.NewWebResourceReaderRepository(t),
		data: mocks.NewWebResourceReaderRepository(t),
		ar:   mocks.NewWebResourceReaderRepository(t),
	}
	return NewWebResourceUseCase(&WebResourceUseCaseCfg{
		HttpReader:    r.http,
		IpfsReader:    r.ipfs,
		DataUriReader: r.data,
		ArUriReader:   r.ar,
		IpfsGateway:   "https://ipfs.io/ipfs",
	}), r
}

func TestGetDispatch(t *testing.T) {
	u, r := newUseCase(t)
	c := ctx.Background()
	r.http.On("Get", mock.Anything, "https://some.url/meta.json").Return([]byte("http"), nil).Once()
	r.ipfs.On("Get", mock.Anything, "QmMeta/42").Return([]byte("ipfs"), nil).Once()
	r.data.On("Get", mock.Anything, "data:,hi").Return([]byte("data"), nil).Once()
	r.ar.On("Get", mock.Anything, "ar://tx-id").Return([]byte("ar"), nil).Once()

	for uri, want := range map[string]string{
		"https://some.url/meta.json": "http",
		"ipfs://QmMeta/42":           "ipfs",
		"data:,hi":                   "data",
		"ar://tx-id":                 "ar",
	} {
		got, err := u.Get(c, uri)
		assert.NoError(t, err, uri)
		assert.Equal(t, want, string(got), uri)
	}

	_, err := u.Get(c, "ftp://some.url/x")
	assert.ErrorIs(t, err, domain.ErrUnsupportedSchema)
}

func TestGetFallsBackToIpfs(t *testing.T) {
	u, r := newUseCase(t)
	c := ctx.Background()
	r.http.On("Get", mock.Anything, "https://gateway.pinata.cloud/ipfs/QmMeta").Return(nil, errors.New("429")).Once()
	r.ipfs.On("Get", mock.Anything, "QmMeta").Return([]byte(`{"name":"a"}`), nil).Once()

	got, err := u.GetJson(c, "https://gateway.pinata.cloud/ipfs/QmMeta")
	assert.NoError(t, err)
	assert.JSONEq(t, `{"name":"a"}`, string(got))

	r.http.On("Get", mock.Anything, "https://some.url/x").Return(nil, domain.ErrNotFound).Once()
	_, err = u.Get(c, "https://some.url/x")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetJsonInvalid(t *testing.T) {
	u, r := newUseCase(t)
	r.data.On("Get", mock.Anything, "data:,nope").Return([]byte("nope"), nil).Once()

	_, err := u.GetJson(ctx.Background(), "data:,nope")
	assert.ErrorIs(t, err, domain.ErrInvalidJsonFormat)
}
