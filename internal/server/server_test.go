package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-chi/chi"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KartikRyzen2006/Web3-Social-Media-sub000/internal/entities"
	"github.com/KartikRyzen2006/Web3-Social-Media-sub000/internal/service"
	"github.com/KartikRyzen2006/Web3-Social-Media-sub000/internal/service/mock"
	"github.com/KartikRyzen2006/Web3-Social-Media-sub000/internal/storage"
	storagemock "github.com/KartikRyzen2006/Web3-Social-Media-sub000/internal/storage/mock"
)

var (
	alice = common.HexToAddress("0xa11ce00000000000000000000000000000000001")
	bob   = common.HexToAddress("0xb0b0000000000000000000000000000000000002")
)

type profileCache map[common.Address]*entities.Profile

func (c profileCache) Profiles(_ context.Context, addrs ...common.Address) (map[common.Address]*entities.Profile, error) {
	out := map[common.Address]*entities.Profile{}
	for _, a := range addrs {
		if p, ok := c[a]; ok {
			out[a] = p
		}
	}
	return out, nil
}

type env struct {
	srv *mock.MockService
	s   *storagemock.MockStorage
	d   Dependencies
}

func newEnv(t *testing.T) *env {
	ctrl := gomock.NewController(t)

	e := &env{
		srv: mock.NewMockService(ctrl),
		s:   storagemock.NewMockStorage(ctrl),
	}
	e.d = Dependencies{
		Service: e.srv,
		Storage: e.s,
		Profiles: profileCache{
			alice: {Owner: alice, Name: "alice", ID: 1, Exists: true},
		},
	}

	return e
}

func (e *env) do(t *testing.T, method, target string, body string, header ...string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}

	req, err := http.NewRequest(method, target, r)
	require.NoError(t, err)
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}

	router := chi.NewRouter()
	SetupRouter(e.d, router, time.Second)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

func TestServer_getProfile(t *testing.T) {
	e := newEnv(t)

	e.srv.EXPECT().GetProfile(gomock.Any(), alice).Return(&entities.Profile{
		Owner:         alice,
		Name:          "alice",
		ID:            1,
		PostCount:     2,
		FollowerCount: 3,
		CreatedAt:     time.Unix(100, 0),
		Exists:        true,
	}, nil)

	w := e.do(t, http.MethodGet, "/v1/profiles/"+alice.Hex(), "")
	require.Equal(t, http.StatusOK, w.Code)

	var p Profile
	decode(t, w, &p)
	assert.Equal(t, Profile{
		Address:       alice.Hex(),
		Name:          "alice",
		ID:            1,
		PostCount:     2,
		FollowerCount: 3,
		CreatedAt:     100,
		Exists:        true,
	}, p)
}

func TestServer_getProfile_NotFound(t *testing.T) {
	e := newEnv(t)

	e.srv.EXPECT().GetProfile(gomock.Any(), bob).Return(nil, service.ErrNotFound)

	w := e.do(t, http.MethodGet, "/v1/profiles/"+bob.Hex(), "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{
		"error": "profile not found",
		"address": "`+bob.Hex()+`",
		"name": "",
		"id": 0,
		"postCount": 0,
		"followerCount": 0,
		"followingCount": 0,
		"createdAt": 0,
		"exists": false
	}`, w.Body.String())
}

func TestServer_getProfile_InvalidAddress(t *testing.T) {
	e := newEnv(t)

	w := e.do(t, http.MethodGet, "/v1/profiles/0x123", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestServer_listPosts(t *testing.T) {
	e := newEnv(t)
	e.d.Gateway = "https://ipfs.example/ipfs/"

	e.srv.EXPECT().GetAllPosts(gomock.Any(), uint64(10), uint64(5)).Return(&entities.Page[entities.Post]{
		Items: []entities.Post{
			{ID: 2, Author: alice, Type: entities.ImagePost, ContentURL: "QmHash", CreatedAt: time.Unix(200, 0)},
			{ID: 1, Author: bob, Description: "hello", CreatedAt: time.Unix(100, 0)},
		},
		Total: 12,
	}, nil)

	w := e.do(t, http.MethodGet, "/v1/posts?offset=10&limit=5", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp ListPostsResponse
	decode(t, w, &resp)
	require.Len(t, resp.Posts, 2)
	assert.EqualValues(t, 12, resp.Total)
	assert.Equal(t, "image", resp.Posts[0].Type)
	assert.Equal(t, "https://ipfs.example/ipfs/QmHash", resp.Posts[0].MediaURL)
	assert.Equal(t, "text", resp.Posts[1].Type)
	assert.Equal(t, "hello", resp.Posts[1].Description)
	assert.Nil(t, resp.Posts[0].Liked)

	require.Len(t, resp.Profiles, 1)
	assert.Equal(t, "alice", resp.Profiles[alice.Hex()].Name)
}

func TestServer_listPosts_InvalidLimit(t *testing.T) {
	e := newEnv(t)

	for _, q := range []string{"limit=0", "limit=101", "limit=abc", "offset=-1"} {
		w := e.do(t, http.MethodGet, "/v1/posts?"+q, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, q)
	}
}

func TestServer_getPost(t *testing.T) {
	e := newEnv(t)

	e.srv.EXPECT().GetPost(gomock.Any(), uint64(7)).Return(&entities.Post{ID: 7, Author: alice, Likes: 3}, nil)
	e.srv.EXPECT().CheckIfLiked(gomock.Any(), uint64(7), bob).Return(true, nil)

	w := e.do(t, http.MethodGet, "/v1/posts/7?requestedBy="+bob.Hex(), "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp GetPostResponse
	decode(t, w, &resp)
	assert.EqualValues(t, 7, resp.Post.ID)
	assert.EqualValues(t, 3, resp.Post.Likes)
	require.NotNil(t, resp.Post.Liked)
	assert.True(t, *resp.Post.Liked)
	require.NotNil(t, resp.Profile)
	assert.Equal(t, "alice", resp.Profile.Name)
}

func TestServer_getPost_Errors(t *testing.T) {
	tt := []struct {
		name string
		err  error
		code int
	}{
		{name: "not_found", err: service.ErrNotFound, code: http.StatusNotFound},
		{name: "invalid", err: service.ErrInvalidArgument, code: http.StatusBadRequest},
		{name: "network", err: &service.TxError{Kind: service.Network, Message: "Network error"}, code: http.StatusBadGateway},
		{name: "unknown", err: errors.New("boom"), code: http.StatusInternalServerError},
	}

	for i := range tt {
		tc := tt[i]
		t.Run(tc.name, func(t *testing.T) {
			e := newEnv(t)
			e.srv.EXPECT().GetPost(gomock.Any(), uint64(1)).Return(nil, tc.err)

			w := e.do(t, http.MethodGet, "/v1/posts/1", "")
			assert.Equal(t, tc.code, w.Code)
		})
	}
}

func TestServer_getGroupMessages(t *testing.T) {
	msgs := []entities.Message{
		{Index: 0, Sender: alice, Content: "hi", Timestamp: time.Unix(100, 0), ReplyToIndex: entities.NoReply},
	}

	t.Run("chain", func(t *testing.T) {
		e := newEnv(t)
		e.srv.EXPECT().GetGroupMessages(gomock.Any(), uint64(3)).Return(msgs, nil)
		e.s.EXPECT().CacheGroupMessages(gomock.Any(), uint64(3), msgs).Return(nil)

		w := e.do(t, http.MethodGet, "/v1/groups/3/messages", "")
		require.Equal(t, http.StatusOK, w.Code)

		var resp ListMessagesResponse
		decode(t, w, &resp)
		require.Len(t, resp.Messages, 1)
		assert.Equal(t, "hi", resp.Messages[0].Content)
		assert.Equal(t, entities.NoReply, resp.Messages[0].ReplyTo)
		assert.False(t, resp.Cached)
	})

	t.Run("cache", func(t *testing.T) {
		e := newEnv(t)
		e.srv.EXPECT().GetGroupMessages(gomock.Any(), uint64(3)).Return(nil, &service.TxError{Kind: service.Network})
		e.s.EXPECT().GetCachedGroupMessages(gomock.Any(), uint64(3)).Return(&storage.CachedMessages{GroupID: 3, Messages: msgs}, nil)

		w := e.do(t, http.MethodGet, "/v1/groups/3/messages", "")
		require.Equal(t, http.StatusOK, w.Code)

		var resp ListMessagesResponse
		decode(t, w, &resp)
		require.Len(t, resp.Messages, 1)
		assert.True(t, resp.Cached)
	})

	t.Run("not_found", func(t *testing.T) {
		e := newEnv(t)
		e.srv.EXPECT().GetGroupMessages(gomock.Any(), uint64(3)).Return(nil, service.ErrNotFound)

		w := e.do(t, http.MethodGet, "/v1/groups/3/messages", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestServer_validateUsername(t *testing.T) {
	e := newEnv(t)

	w := e.do(t, http.MethodGet, "/v1/validate/username?name=alice", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"valid": true}`, w.Body.String())

	w = e.do(t, http.MethodGet, "/v1/validate/username?name=", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp ValidateResponse
	decode(t, w, &resp)
	assert.False(t, resp.Valid)
	assert.NotEmpty(t, resp.Error)
	assert.NotContains(t, resp.Error, "invalid argument")
}
