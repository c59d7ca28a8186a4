package server

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KartikRyzen2006/Web3-Social-Media-sub000/internal/entities"
	"github.com/KartikRyzen2006/Web3-Social-Media-sub000/internal/service/mock"
	"github.com/KartikRyzen2006/Web3-Social-Media-sub000/internal/storage"
)

func TestServer_listNotifications(t *testing.T) {
	e := newEnv(t)

	e.s.EXPECT().ListNotifications(gomock.Any(), alice, uint16(entities.DefaultPageSize)).Return([]*entities.Notification{
		{ID: 2, Address: alice, Kind: entities.FollowNotification, Title: "New follower", Actor: bob, CreatedAt: time.Unix(200, 0)},
		{ID: 1, Address: alice, Kind: entities.LikeNotification, Title: "New like", Actor: bob, RelatedID: "7", Read: true},
	}, nil)
	e.s.EXPECT().CountUnread(gomock.Any(), alice).Return(uint32(1), nil)

	w := e.do(t, http.MethodGet, "/v1/profiles/"+alice.Hex()+"/notifications", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp ListNotificationsResponse
	decode(t, w, &resp)
	require.Len(t, resp.Notifications, 2)
	assert.EqualValues(t, 1, resp.Unread)
	assert.EqualValues(t, 2, resp.Notifications[0].ID)
	assert.Equal(t, bob.Hex(), resp.Notifications[0].Actor)
	assert.True(t, resp.Notifications[1].Read)
}

func TestServer_markNotificationsRead(t *testing.T) {
	e := newEnv(t)

	e.s.EXPECT().MarkNotificationsRead(gomock.Any(), alice, int64(1), int64(3)).Return(nil)
	e.s.EXPECT().MarkNotificationsRead(gomock.Any(), alice).Return(nil)

	w := e.do(t, http.MethodPost, "/v1/profiles/"+alice.Hex()+"/notifications/read", `{"ids":[1,3]}`)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = e.do(t, http.MethodPost, "/v1/profiles/"+alice.Hex()+"/notifications/read", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestServer_getTx(t *testing.T) {
	e := newEnv(t)
	hash := common.HexToHash("0x01")

	e.s.EXPECT().GetTx(gomock.Any(), hash).Return(&entities.Tx{
		Hash: hash, Method: "likePost", From: alice, Status: entities.TxConfirmed, Block: 42,
	}, nil)
	e.s.EXPECT().GetTx(gomock.Any(), common.HexToHash("0x02")).Return(nil, storage.ErrNotFound)

	w := e.do(t, http.MethodGet, "/v1/tx/"+hash.Hex(), "")
	require.Equal(t, http.StatusOK, w.Code)

	var tx Tx
	decode(t, w, &tx)
	assert.Equal(t, "confirmed", tx.Status)
	assert.EqualValues(t, 42, tx.Block)
	assert.Equal(t, []string{}, tx.Args)

	w = e.do(t, http.MethodGet, "/v1/tx/"+common.HexToHash("0x02").Hex(), "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = e.do(t, http.MethodGet, "/v1/tx/0x01", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestServer_trackTx(t *testing.T) {
	e := newEnv(t)
	tracker := mock.NewMockTracker(gomock.NewController(t))
	e.d.Tracker = tracker

	hash := common.HexToHash("0x0102")

	tracker.EXPECT().Track(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, tx *entities.Tx) error {
		assert.Equal(t, hash, tx.Hash)
		assert.Equal(t, "followUser", tx.Method)
		assert.Equal(t, alice, tx.From)
		assert.Equal(t, []string{bob.Hex()}, tx.Args)
		assert.Equal(t, entities.TxSubmitted, tx.Status)
		return nil
	})

	w := e.do(t, http.MethodPost, "/v1/tx",
		`{"hash":"`+hash.Hex()+`","method":"followUser","from":"`+alice.Hex()+`","args":["`+bob.Hex()+`"]}`)
	require.Equal(t, http.StatusAccepted, w.Code, w.Body.String())

	for _, body := range []string{
		`{"hash":"0x01","method":"followUser","from":"` + alice.Hex() + `"}`,
		`{"hash":"` + hash.Hex() + `","method":"followUser","from":"alice"}`,
		`{"hash":"` + hash.Hex() + `","method":" ","from":"` + alice.Hex() + `"}`,
		`not json`,
	} {
		assert.Equal(t, http.StatusBadRequest, e.do(t, http.MethodPost, "/v1/tx", body).Code, body)
	}
}

func TestServer_trackTx_Error(t *testing.T) {
	e := newEnv(t)
	tracker := mock.NewMockTracker(gomock.NewController(t))
	e.d.Tracker = tracker

	tracker.EXPECT().Track(gomock.Any(), gomock.Any()).Return(errors.New("db is down"))

	w := e.do(t, http.MethodPost, "/v1/tx",
		`{"hash":"`+common.HexToHash("0x01").Hex()+`","method":"likePost","from":"`+alice.Hex()+`"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestServer_parseTxError(t *testing.T) {
	tt := []struct {
		name string
		body string
		kind string
	}{
		{name: "rejected", body: `{"code":4001,"message":"User denied transaction signature"}`, kind: "user_rejected"},
		{name: "reverted", body: `{"code":-32603,"message":"execution reverted","reason":"Already following"}`, kind: "reverted"},
		{name: "funds", body: `{"code":-32000,"message":"err","data":{"message":"insufficient funds for gas"}}`, kind: "insufficient_funds"},
	}

	for i := range tt {
		tc := tt[i]
		t.Run(tc.name, func(t *testing.T) {
			e := newEnv(t)

			w := e.do(t, http.MethodPost, "/v1/tx/errors", tc.body)
			require.Equal(t, http.StatusOK, w.Code)

			var resp TxError
			decode(t, w, &resp)
			assert.Equal(t, tc.kind, resp.Kind)
			assert.NotEmpty(t, resp.Message)
		})
	}
}
