package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KartikRyzen2006/Web3-Social-Media-sub000/internal/ipfs"
	"github.com/KartikRyzen2006/Web3-Social-Media-sub000/internal/livestats"
	livemock "github.com/KartikRyzen2006/Web3-Social-Media-sub000/internal/livestats/mock"
	"github.com/KartikRyzen2006/Web3-Social-Media-sub000/internal/market"
)

type uploader struct {
	name     string
	content  []byte
	metadata map[string]string
	v        interface{}
	err      error
}

func (u *uploader) UploadFile(_ context.Context, name string, r io.Reader, _ int64, metadata map[string]string) (*ipfs.Upload, error) {
	if u.err != nil {
		return nil, u.err
	}
	u.name, u.metadata = name, metadata
	u.content, _ = io.ReadAll(r)
	return &ipfs.Upload{IPFSHash: "QmFile", IPFSURL: "https://gw/ipfs/QmFile", Size: int64(len(u.content))}, nil
}

func (u *uploader) UploadJSON(_ context.Context, name string, v interface{}) (*ipfs.Upload, error) {
	if u.err != nil {
		return nil, u.err
	}
	u.name, u.v = name, v
	return &ipfs.Upload{IPFSHash: "QmJSON", IPFSURL: "https://gw/ipfs/QmJSON"}, nil
}

func multipartBody(t *testing.T, fields map[string]string, file []byte) (*bytes.Buffer, string) {
	var b bytes.Buffer
	mw := multipart.NewWriter(&b)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if file != nil {
		fw, err := mw.CreateFormFile("file", "cat.png")
		require.NoError(t, err)
		_, err = fw.Write(file)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return &b, mw.FormDataContentType()
}

func serve(d Dependencies, r *http.Request) *httptest.ResponseRecorder {
	router := chi.NewRouter()
	SetupRouter(d, router, time.Second)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	return w
}

func TestServer_uploadFile(t *testing.T) {
	u := &uploader{}

	body, ct := multipartBody(t, map[string]string{"type": "image"}, []byte("png"))
	r := httptest.NewRequest(http.MethodPost, "/v1/ipfs/file", body)
	r.Header.Set("Content-Type", ct)

	w := serve(Dependencies{IPFS: u}, r)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp Upload
	decode(t, w, &resp)
	assert.Equal(t, "QmFile", resp.IPFSHash)
	assert.EqualValues(t, 3, resp.Size)

	assert.Equal(t, "cat.png", u.name)
	assert.Equal(t, []byte("png"), u.content)
	assert.Equal(t, map[string]string{"type": "image"}, u.metadata)
}

func TestServer_uploadFile_Errors(t *testing.T) {
	tt := []struct {
		name string
		file []byte
		err  error
		code int
	}{
		{name: "no_file", code: http.StatusBadRequest},
		{name: "too_large", file: []byte("x"), err: fmt.Errorf("%w: limit", ipfs.ErrTooLarge), code: http.StatusBadRequest},
		{name: "not_configured", file: []byte("x"), err: ipfs.ErrNotConfigured, code: http.StatusInternalServerError},
		{name: "upstream", file: []byte("x"), err: errors.New("upload failed: 401"), code: http.StatusBadGateway},
	}

	for i := range tt {
		tc := tt[i]
		t.Run(tc.name, func(t *testing.T) {
			body, ct := multipartBody(t, nil, tc.file)
			r := httptest.NewRequest(http.MethodPost, "/v1/ipfs/file", body)
			r.Header.Set("Content-Type", ct)

			w := serve(Dependencies{IPFS: &uploader{err: tc.err}}, r)
			assert.Equal(t, tc.code, w.Code)
		})
	}
}

func TestServer_uploadJSON(t *testing.T) {
	u := &uploader{}

	r := httptest.NewRequest(http.MethodPost, "/v1/ipfs/json", bytes.NewBufferString(`{"name":"meta","content":{"a":1}}`))
	w := serve(Dependencies{IPFS: u}, r)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	assert.Equal(t, "meta", u.name)
	assert.Equal(t, map[string]interface{}{"a": float64(1)}, u.v)

	r = httptest.NewRequest(http.MethodPost, "/v1/ipfs/json", bytes.NewBufferString(`{"name":"meta"}`))
	assert.Equal(t, http.StatusBadRequest, serve(Dependencies{IPFS: u}, r).Code)
}

type marketFake struct {
	limit   int
	symbols []string
	err     error
}

func (m *marketFake) Listings(_ context.Context, limit int) ([]market.Coin, error) {
	m.limit = limit
	return []market.Coin{{ID: 1, Symbol: "BTC"}}, m.err
}

func (m *marketFake) Detail(_ context.Context, id int64) (*market.CoinDetail, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &market.CoinDetail{Coin: market.Coin{ID: id, Symbol: "ETH"}}, nil
}

func (m *marketFake) Chart(context.Context, string, int) ([]market.Point, error) {
	if m.err != nil {
		return nil, m.err
	}
	return []market.Point{{Time: 1, Price: 2}}, nil
}

func (m *marketFake) Stocks(_ context.Context, symbols []string) ([]market.Stock, error) {
	m.symbols = symbols
	return []market.Stock{}, m.err
}

func TestServer_market(t *testing.T) {
	m := &marketFake{}
	d := Dependencies{Market: m}

	w := serve(d, httptest.NewRequest(http.MethodGet, "/api/market?limit=10", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 10, m.limit)

	w = serve(d, httptest.NewRequest(http.MethodGet, "/api/market", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, market.DefaultListingsLimit, m.limit)

	assert.Equal(t, http.StatusBadRequest, serve(d, httptest.NewRequest(http.MethodGet, "/api/market?limit=x", nil)).Code)

	w = serve(d, httptest.NewRequest(http.MethodGet, "/api/market/detail?id=1027", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var detail market.CoinDetail
	decode(t, w, &detail)
	assert.EqualValues(t, 1027, detail.ID)

	assert.Equal(t, http.StatusBadRequest, serve(d, httptest.NewRequest(http.MethodGet, "/api/market/detail", nil)).Code)
	assert.Equal(t, http.StatusBadRequest, serve(d, httptest.NewRequest(http.MethodGet, "/api/market/detail?id=abc", nil)).Code)

	w = serve(d, httptest.NewRequest(http.MethodGet, "/api/market/stocks?symbols=aapl,%20msft,,", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"aapl", "msft"}, m.symbols)
}

func TestServer_market_Errors(t *testing.T) {
	tt := []struct {
		name string
		err  error
		code int
	}{
		{name: "not_found", err: market.ErrNotFound, code: http.StatusNotFound},
		{name: "not_configured", err: market.ErrNotConfigured, code: http.StatusInternalServerError},
		{name: "upstream", err: errors.New("unexpected status 500"), code: http.StatusBadGateway},
	}

	for i := range tt {
		tc := tt[i]
		t.Run(tc.name, func(t *testing.T) {
			d := Dependencies{Market: &marketFake{err: tc.err}}

			w := serve(d, httptest.NewRequest(http.MethodGet, "/api/market/detail?id=1", nil))
			assert.Equal(t, tc.code, w.Code)

			// chart never fails
			w = serve(d, httptest.NewRequest(http.MethodGet, "/api/market/chart?slug=bitcoin&days=30", nil))
			require.Equal(t, http.StatusOK, w.Code)
			assert.JSONEq(t, `[]`, w.Body.String())
		})
	}
}

func TestServer_liveStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := livemock.NewMockStore(ctrl)
	d := Dependencies{Live: s}

	s.EXPECT().Get(gomock.Any()).Return(&livestats.Stats{IsLive: true, Streamer: "alice", Viewers: 2, Chat: []livestats.ChatMessage{}}, nil)

	w := serve(d, httptest.NewRequest(http.MethodGet, "/api/live/stats", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var stats livestats.Stats
	decode(t, w, &stats)
	assert.True(t, stats.IsLive)
	assert.EqualValues(t, 2, stats.Viewers)

	s.EXPECT().Apply(gomock.Any(), livestats.Action{Action: livestats.Like}).Return(&livestats.Stats{Likes: 1}, nil)
	w = serve(d, httptest.NewRequest(http.MethodPost, "/api/live/stats", bytes.NewBufferString(`{"action":"like"}`)))
	require.Equal(t, http.StatusOK, w.Code)

	s.EXPECT().Apply(gomock.Any(), gomock.Any()).Return(nil, fmt.Errorf("%w: dance", livestats.ErrUnknownAction))
	w = serve(d, httptest.NewRequest(http.MethodPost, "/api/live/stats", bytes.NewBufferString(`{"action":"dance"}`)))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	s.EXPECT().Apply(gomock.Any(), gomock.Any()).Return(nil, errors.New("disk is full"))
	w = serve(d, httptest.NewRequest(http.MethodPost, "/api/live/stats", bytes.NewBufferString(`{"action":"view"}`)))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
