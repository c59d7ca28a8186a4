package txwatch

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KartikRyzen2006/Web3-Social-Media-sub000/internal/chain"
	chainmock "github.com/KartikRyzen2006/Web3-Social-Media-sub000/internal/chain/mock"
	"github.com/KartikRyzen2006/Web3-Social-Media-sub000/internal/entities"
	"github.com/KartikRyzen2006/Web3-Social-Media-sub000/internal/storage"
	storagemock "github.com/KartikRyzen2006/Web3-Social-Media-sub000/internal/storage/mock"
)

var (
	alice = common.HexToAddress("0xa11ce00000000000000000000000000000000001")
	bob   = common.HexToAddress("0xb0b0000000000000000000000000000000000002")
	hash  = common.HexToHash("0x01")
)

type lookup struct {
	posts  map[uint64]*entities.Post
	groups map[uint64]*entities.Group
}

func (l lookup) GetPost(_ context.Context, id uint64) (*entities.Post, error) {
	if p, ok := l.posts[id]; ok {
		return p, nil
	}
	return nil, errors.New("not found")
}

func (l lookup) GetGroupDetails(_ context.Context, id uint64) (*entities.Group, error) {
	if g, ok := l.groups[id]; ok {
		return g, nil
	}
	return nil, errors.New("not found")
}

func inTx(s *storagemock.MockStorage) {
	s.EXPECT().InTx(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, f func(storage.Storage) error) error {
		return f(s)
	}).AnyTimes()
}

func newWatcher(t *testing.T) (*watcher, *chainmock.MockBackend, *storagemock.MockStorage) {
	ctrl := gomock.NewController(t)
	b, s := chainmock.NewMockBackend(ctrl), storagemock.NewMockStorage(ctrl)

	l := lookup{
		posts:  map[uint64]*entities.Post{7: {ID: 7, Author: bob}, 8: {ID: 8, Author: alice}},
		groups: map[uint64]*entities.Group{3: {ID: 3, Name: "gophers", Creator: bob}},
	}

	return New(b, s, l, time.Millisecond, time.Minute).(*watcher), b, s
}

func track(t *testing.T, w *watcher, s *storagemock.MockStorage, tx *entities.Tx) {
	s.EXPECT().CreateTx(gomock.Any(), tx).Return(true, nil)
	require.NoError(t, w.Track(context.Background(), tx))
}

// sent makes backend report the call of tx as it was mined.
func sent(b *chainmock.MockBackend, tx *entities.Tx, args ...interface{}) {
	b.EXPECT().Transaction(gomock.Any(), tx.Hash).Return(&chain.CallData{From: tx.From, Method: tx.Method, Args: args}, nil)
}

func tracked(w *watcher) int {
	m, _ := w.Ping(context.Background())
	return m.(map[string]int)["tracked"]
}

func TestWatcher_Confirmed(t *testing.T) {
	w, b, s := newWatcher(t)
	inTx(s)

	tx := &entities.Tx{Hash: hash, Method: "followUser", From: alice, Args: []string{bob.Hex()}}
	track(t, w, s, tx)
	require.Equal(t, 1, tracked(w))

	b.EXPECT().Receipt(gomock.Any(), hash).Return(&types.Receipt{Status: types.ReceiptStatusSuccessful, BlockNumber: big.NewInt(42)}, nil)
	sent(b, tx, bob)

	s.EXPECT().SaveTx(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, tx *entities.Tx) error {
		assert.Equal(t, entities.TxConfirmed, tx.Status)
		assert.EqualValues(t, 42, tx.Block)
		return nil
	})
	s.EXPECT().AddActivity(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, a *entities.Activity) error {
		assert.Equal(t, alice, a.Address)
		assert.Equal(t, "followUser", a.Kind)
		assert.Equal(t, bob.Hex(), a.Target)
		assert.Equal(t, hash, a.TxHash)
		return nil
	})
	s.EXPECT().AddNotification(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, n *entities.Notification) error {
		assert.Equal(t, bob, n.Address)
		assert.Equal(t, alice, n.Actor)
		assert.Equal(t, entities.FollowNotification, n.Kind)
		return nil
	})

	w.poll(context.Background())
	assert.Equal(t, 0, tracked(w))
}

func TestWatcher_Reverted(t *testing.T) {
	w, b, s := newWatcher(t)
	inTx(s)

	tx := &entities.Tx{Hash: hash, Method: "joinGroup", From: alice, Args: []string{"3"}}
	track(t, w, s, tx)

	b.EXPECT().Receipt(gomock.Any(), hash).Return(&types.Receipt{Status: types.ReceiptStatusFailed, BlockNumber: big.NewInt(1)}, nil)
	sent(b, tx, big.NewInt(3))
	s.EXPECT().SaveTx(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, tx *entities.Tx) error {
		assert.Equal(t, entities.TxReverted, tx.Status)
		assert.NotEmpty(t, tx.Error)
		return nil
	})

	w.poll(context.Background())
	assert.Equal(t, 0, tracked(w))
}

func TestWatcher_Pending(t *testing.T) {
	w, b, s := newWatcher(t)
	inTx(s)

	track(t, w, s, &entities.Tx{Hash: hash, Method: "likePost", From: alice, Args: []string{"7"}})

	b.EXPECT().Receipt(gomock.Any(), hash).Return(nil, chain.ErrPending).Times(2)
	s.EXPECT().SaveTx(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, tx *entities.Tx) error {
		assert.Equal(t, entities.TxPending, tx.Status)
		return nil
	})

	w.poll(context.Background())
	// status is unchanged, nothing to save
	w.poll(context.Background())

	assert.Equal(t, 1, tracked(w))
}

func TestWatcher_Timeout(t *testing.T) {
	w, b, s := newWatcher(t)
	inTx(s)

	track(t, w, s, &entities.Tx{Hash: hash, Method: "likePost", From: alice, Args: []string{"7"},
		SubmittedAt: time.Now().Add(-time.Hour)})

	b.EXPECT().Receipt(gomock.Any(), hash).Return(nil, chain.ErrUnknownTx)
	s.EXPECT().SaveTx(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, tx *entities.Tx) error {
		assert.Equal(t, entities.TxFailed, tx.Status)
		return nil
	})

	w.poll(context.Background())
	assert.Equal(t, 0, tracked(w))
}

func TestWatcher_ReceiptError(t *testing.T) {
	w, b, s := newWatcher(t)

	track(t, w, s, &entities.Tx{Hash: hash, Method: "likePost", From: alice, Args: []string{"7"}})

	b.EXPECT().Receipt(gomock.Any(), hash).Return(nil, errors.New("connection refused"))

	w.poll(context.Background())
	assert.Equal(t, 1, tracked(w))
}

func TestWatcher_notification(t *testing.T) {
	w, _, _ := newWatcher(t)

	tt := []struct {
		name string
		tx   entities.Tx
		to   common.Address
		kind entities.NotificationKind
	}{
		{name: "like", tx: entities.Tx{Method: "likePost", From: alice, Args: []string{"7"}}, to: bob, kind: entities.LikeNotification},
		{name: "comment", tx: entities.Tx{Method: "addComment", From: alice, Args: []string{"7", "nice", "false", "0"}}, to: bob, kind: entities.CommentNotification},
		{name: "message", tx: entities.Tx{Method: "sendDirectMessage", From: alice, Args: []string{bob.Hex(), "hi", "0"}}, to: bob, kind: entities.MessageNotification},
		{name: "join", tx: entities.Tx{Method: "joinGroup", From: alice, Args: []string{"3"}}, to: bob, kind: entities.GroupNotification},
		{name: "own_post", tx: entities.Tx{Method: "likePost", From: alice, Args: []string{"8"}}},
		{name: "unknown_post", tx: entities.Tx{Method: "likePost", From: alice, Args: []string{"9"}}},
		{name: "no_counterparty", tx: entities.Tx{Method: "createPost", From: alice, Args: []string{"0", "text", ""}}},
	}

	for i := range tt {
		tc := tt[i]
		t.Run(tc.name, func(t *testing.T) {
			n := w.notification(context.Background(), &tc.tx)
			if tc.to == (common.Address{}) {
				require.Nil(t, n)
				return
			}

			require.NotNil(t, n)
			assert.Equal(t, tc.to, n.Address)
			assert.Equal(t, tc.kind, n.Kind)
			assert.Equal(t, alice, n.Actor)
		})
	}
}

func TestWatcher_Run(t *testing.T) {
	w, b, s := newWatcher(t)
	inTx(s)

	restored := &entities.Tx{Hash: hash, Method: "deletePost", From: alice, Args: []string{"1"},
		Status: entities.TxPending, SubmittedAt: time.Now()}

	s.EXPECT().ListPendingTxs(gomock.Any(), uint16(restoreLimit)).Return([]*entities.Tx{restored}, nil)
	b.EXPECT().Receipt(gomock.Any(), hash).Return(&types.Receipt{Status: types.ReceiptStatusSuccessful, BlockNumber: big.NewInt(5)}, nil)
	sent(b, restored, big.NewInt(1))

	ctx, cancel := context.WithCancel(context.Background())

	s.EXPECT().SaveTx(gomock.Any(), gomock.Any()).Return(nil)
	s.EXPECT().AddActivity(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, *entities.Activity) error {
		cancel()
		return nil
	})

	require.NoError(t, w.Run(ctx))
	assert.Equal(t, 0, tracked(w))
}

type invalidator []common.Address

func (i *invalidator) Invalidate(addr common.Address) {
	*i = append(*i, addr)
}

func TestWatcher_Invalidate(t *testing.T) {
	ctrl := gomock.NewController(t)
	b, s := chainmock.NewMockBackend(ctrl), storagemock.NewMockStorage(ctrl)
	inTx(s)

	var inv invalidator
	w := New(b, s, lookup{}, time.Millisecond, time.Minute, WithInvalidator(&inv)).(*watcher)

	tx := &entities.Tx{Hash: hash, Method: "unfollowUser", From: alice, Args: []string{bob.Hex()}}
	track(t, w, s, tx)

	b.EXPECT().Receipt(gomock.Any(), hash).Return(&types.Receipt{Status: types.ReceiptStatusSuccessful, BlockNumber: big.NewInt(1)}, nil)
	sent(b, tx, bob)
	s.EXPECT().SaveTx(gomock.Any(), gomock.Any()).Return(nil)
	s.EXPECT().AddActivity(gomock.Any(), gomock.Any()).Return(nil)

	w.poll(context.Background())

	assert.Equal(t, invalidator{alice, bob}, inv)
}

func TestWatcher_Track_Known(t *testing.T) {
	w, _, s := newWatcher(t)

	confirmed := &entities.Tx{Hash: hash, Method: "followUser", From: alice, Args: []string{bob.Hex()},
		Status: entities.TxConfirmed, Block: 42}

	for i := 0; i < 3; i++ {
		tx := &entities.Tx{Hash: hash, Method: "followUser", From: alice, Args: []string{bob.Hex()}}

		s.EXPECT().CreateTx(gomock.Any(), tx).Return(false, nil)
		s.EXPECT().GetTx(gomock.Any(), hash).Return(confirmed, nil)

		require.NoError(t, w.Track(context.Background(), tx))
		assert.Equal(t, entities.TxConfirmed, tx.Status)
		assert.EqualValues(t, 42, tx.Block)
	}

	// nothing to follow, so no receipts, activities or notifications
	w.poll(context.Background())
	assert.Equal(t, 0, tracked(w))
}

func TestWatcher_Track_ResetsStatus(t *testing.T) {
	w, _, s := newWatcher(t)

	tx := &entities.Tx{Hash: hash, Method: "likePost", From: alice, Args: []string{"7"},
		Status: entities.TxConfirmed, Block: 9}
	s.EXPECT().CreateTx(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, tx *entities.Tx) (bool, error) {
		assert.Equal(t, entities.TxSubmitted, tx.Status)
		assert.Zero(t, tx.Block)
		return true, nil
	})

	require.NoError(t, w.Track(context.Background(), tx))
	assert.Equal(t, 1, tracked(w))
}

func TestWatcher_ChainDetails(t *testing.T) {
	w, b, s := newWatcher(t)
	inTx(s)

	// submitter claims to follow carol while the mined call follows bob
	carol := common.HexToAddress("0xca201000000000000000000000000000000000003")
	track(t, w, s, &entities.Tx{Hash: hash, Method: "followUser", From: bob, Args: []string{carol.Hex()}})

	b.EXPECT().Receipt(gomock.Any(), hash).Return(&types.Receipt{Status: types.ReceiptStatusSuccessful, BlockNumber: big.NewInt(3)}, nil)
	b.EXPECT().Transaction(gomock.Any(), hash).Return(&chain.CallData{From: alice, Method: "followUser", Args: []interface{}{bob}}, nil)

	s.EXPECT().SaveTx(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, tx *entities.Tx) error {
		assert.Equal(t, alice, tx.From)
		assert.Equal(t, []string{bob.Hex()}, tx.Args)
		return nil
	})
	s.EXPECT().AddActivity(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, a *entities.Activity) error {
		assert.Equal(t, alice, a.Address)
		assert.Equal(t, bob.Hex(), a.Target)
		return nil
	})
	s.EXPECT().AddNotification(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, n *entities.Notification) error {
		assert.Equal(t, bob, n.Address)
		assert.Equal(t, alice, n.Actor)
		return nil
	})

	w.poll(context.Background())
	assert.Equal(t, 0, tracked(w))
}

func TestWatcher_ForeignTx(t *testing.T) {
	w, b, s := newWatcher(t)
	inTx(s)

	track(t, w, s, &entities.Tx{Hash: hash, Method: "followUser", From: alice, Args: []string{bob.Hex()}})

	b.EXPECT().Receipt(gomock.Any(), hash).Return(&types.Receipt{Status: types.ReceiptStatusSuccessful, BlockNumber: big.NewInt(3)}, nil)
	b.EXPECT().Transaction(gomock.Any(), hash).Return(nil, chain.ErrForeignTx)

	// no activity and no notification expected
	s.EXPECT().SaveTx(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, tx *entities.Tx) error {
		assert.Equal(t, entities.TxFailed, tx.Status)
		assert.NotEmpty(t, tx.Error)
		return nil
	})

	w.poll(context.Background())
	assert.Equal(t, 0, tracked(w))
}

func TestWatcher_TransactionError(t *testing.T) {
	w, b, s := newWatcher(t)

	track(t, w, s, &entities.Tx{Hash: hash, Method: "followUser", From: alice, Args: []string{bob.Hex()}})

	b.EXPECT().Receipt(gomock.Any(), hash).Return(&types.Receipt{Status: types.ReceiptStatusSuccessful, BlockNumber: big.NewInt(3)}, nil)
	b.EXPECT().Transaction(gomock.Any(), hash).Return(nil, errors.New("connection refused"))

	w.poll(context.Background())
	assert.Equal(t, 1, tracked(w))
}
