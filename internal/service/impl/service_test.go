package impl

import (
	"context"
	"errors"
	"math/big"
	"strings"
	"sync"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KartikRyzen2006/Web3-Social-Media-sub000/internal/chain"
	chainmock "github.com/KartikRyzen2006/Web3-Social-Media-sub000/internal/chain/mock"
	"github.com/KartikRyzen2006/Web3-Social-Media-sub000/internal/entities"
	"github.com/KartikRyzen2006/Web3-Social-Media-sub000/internal/service"
)

var (
	alice = common.HexToAddress("0xa11ce00000000000000000000000000000000001")
	bob   = common.HexToAddress("0xb0b0000000000000000000000000000000000002")
	hash  = common.HexToHash("0x01")
)

type tracker struct {
	mu  sync.Mutex
	txs []*entities.Tx
}

func (t *tracker) Track(_ context.Context, tx *entities.Tx) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.txs = append(t.txs, tx)
	return nil
}

func positionalPost(id int64, author common.Address, deleted bool) []interface{} {
	return []interface{}{
		author, uint8(0), "post", "", big.NewInt(100), big.NewInt(id), big.NewInt(1), big.NewInt(0), deleted,
	}
}

func keyedPost(id int64, author common.Address, deleted bool) map[string]interface{} {
	return map[string]interface{}{
		"author": author, "postType": uint8(0), "description": "post", "url": "",
		"timestamp": big.NewInt(100), "id": big.NewInt(id), "likes": big.NewInt(1), "comments": big.NewInt(0),
		"isDeleted": deleted,
	}
}

func TestSrv_GetAllPosts(t *testing.T) {
	tt := []struct {
		name string
		out  []interface{}
	}{
		{
			name: "tuple_of_arrays",
			out: []interface{}{
				[]interface{}{
					positionalPost(1, alice, false),
					positionalPost(2, bob, true),
					positionalPost(3, common.Address{}, false),
					positionalPost(4, bob, false),
				},
				big.NewInt(4),
			},
		},
		{
			name: "named_fields",
			out: []interface{}{
				map[string]interface{}{
					"posts": []interface{}{
						keyedPost(1, alice, false),
						keyedPost(2, bob, true),
						keyedPost(3, common.Address{}, false),
						keyedPost(4, bob, false),
					},
					"total": big.NewInt(4),
				},
			},
		},
	}

	var results []*entities.Page[entities.Post]

	for i := range tt {
		tc := tt[i]
		t.Run(tc.name, func(t *testing.T) {
			b := chainmock.NewMockBackend(gomock.NewController(t))
			b.EXPECT().Call(gomock.Any(), "getAllPosts", big.NewInt(0), big.NewInt(20)).Return(tc.out, nil)

			page, err := New(b, nil, DefaultFees()).GetAllPosts(context.Background(), 0, 20)
			require.NoError(t, err)
			require.Len(t, page.Items, 2)
			assert.EqualValues(t, 4, page.Total)
			assert.EqualValues(t, 1, page.Items[0].ID)
			assert.EqualValues(t, 4, page.Items[1].ID)

			for _, p := range page.Items {
				assert.False(t, p.IsDeleted)
				assert.NotEqual(t, common.Address{}, p.Author)
			}

			results = append(results, page)
		})
	}

	require.Len(t, results, 2)
	assert.Equal(t, results[0], results[1])
}

func TestSrv_GetAllPosts_Errors(t *testing.T) {
	b := chainmock.NewMockBackend(gomock.NewController(t))
	s := New(b, nil, DefaultFees())

	_, err := s.GetAllPosts(context.Background(), 0, 0)
	require.ErrorIs(t, err, service.ErrInvalidArgument)

	_, err = s.GetAllPosts(context.Background(), 0, 101)
	require.ErrorIs(t, err, service.ErrInvalidArgument)

	b.EXPECT().Call(gomock.Any(), "getAllPosts", gomock.Any(), gomock.Any()).Return(nil, context.DeadlineExceeded)
	_, err = s.GetAllPosts(context.Background(), 0, 10)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestSrv_GetUserPosts(t *testing.T) {
	b := chainmock.NewMockBackend(gomock.NewController(t))
	b.EXPECT().Call(gomock.Any(), "getUserPosts", alice).Return([]interface{}{
		[]interface{}{positionalPost(5, alice, true), keyedPost(6, alice, false), positionalPost(7, alice, false)},
	}, nil)

	posts, err := New(b, nil, DefaultFees()).GetUserPosts(context.Background(), alice)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.EqualValues(t, 6, posts[0].ID)
	assert.EqualValues(t, 7, posts[1].ID)
}

func TestSrv_GetUserPosts_Single(t *testing.T) {
	tt := []struct {
		name string
		post interface{}
	}{
		{name: "positional", post: positionalPost(5, alice, false)},
		{name: "keyed", post: keyedPost(5, alice, false)},
	}

	for i := range tt {
		tc := tt[i]
		t.Run(tc.name, func(t *testing.T) {
			b := chainmock.NewMockBackend(gomock.NewController(t))
			b.EXPECT().Call(gomock.Any(), "getUserPosts", alice).Return([]interface{}{
				[]interface{}{tc.post},
			}, nil)

			posts, err := New(b, nil, DefaultFees()).GetUserPosts(context.Background(), alice)
			require.NoError(t, err)
			require.Len(t, posts, 1)
			assert.EqualValues(t, 5, posts[0].ID)
			assert.Equal(t, alice, posts[0].Author)
		})
	}
}

func TestSrv_GetProfile(t *testing.T) {
	b := chainmock.NewMockBackend(gomock.NewController(t))
	s := New(b, nil, DefaultFees())

	b.EXPECT().Call(gomock.Any(), "profiles", alice).Return([]interface{}{
		alice, "alice", big.NewInt(100), big.NewInt(1), big.NewInt(2), big.NewInt(3), big.NewInt(4),
	}, nil)

	p, err := s.GetProfile(context.Background(), alice)
	require.NoError(t, err)
	assert.Equal(t, "alice", p.Name)
	assert.True(t, p.Exists)
	assert.EqualValues(t, 3, p.FollowerCount)

	b.EXPECT().Call(gomock.Any(), "profiles", bob).Return([]interface{}{
		common.Address{}, "", big.NewInt(0), big.NewInt(0), big.NewInt(0), big.NewInt(0), big.NewInt(0),
	}, nil)

	_, err = s.GetProfile(context.Background(), bob)
	require.ErrorIs(t, err, service.ErrNotFound)
}

func TestSrv_GetGroupDetails_NotFound(t *testing.T) {
	b := chainmock.NewMockBackend(gomock.NewController(t))
	s := New(b, nil, DefaultFees())

	b.EXPECT().Call(gomock.Any(), "getGroupDetails", big.NewInt(404)).
		Return(nil, errors.New("execution reverted: Group does not exist"))

	g, err := s.GetGroupDetails(context.Background(), 404)
	require.ErrorIs(t, err, service.ErrNotFound)
	require.Nil(t, g)

	b.EXPECT().Call(gomock.Any(), "getGroupDetails", big.NewInt(405)).Return([]interface{}{
		[]common.Address{}, "", "", big.NewInt(0), common.Address{},
	}, nil)

	_, err = s.GetGroupDetails(context.Background(), 405)
	require.ErrorIs(t, err, service.ErrNotFound)

	b.EXPECT().Call(gomock.Any(), "getGroupDetails", big.NewInt(406)).Return(nil, errors.New("connection refused"))

	_, err = s.GetGroupDetails(context.Background(), 406)
	require.Error(t, err)
	require.False(t, errors.Is(err, service.ErrNotFound))
}

func TestSrv_GetAllGroups(t *testing.T) {
	b := chainmock.NewMockBackend(gomock.NewController(t))

	b.EXPECT().Call(gomock.Any(), "getAllGroupIds").Return([]interface{}{
		[]*big.Int{big.NewInt(1), big.NewInt(2), big.NewInt(3)},
	}, nil)
	b.EXPECT().Call(gomock.Any(), "getGroupDetails", big.NewInt(1)).Return([]interface{}{
		[]common.Address{alice}, "one", "", big.NewInt(1), alice,
	}, nil)
	b.EXPECT().Call(gomock.Any(), "getGroupDetails", big.NewInt(2)).
		Return(nil, errors.New("execution reverted: Group does not exist"))
	b.EXPECT().Call(gomock.Any(), "getGroupDetails", big.NewInt(3)).Return([]interface{}{
		[]common.Address{bob, alice}, "three", "desc", big.NewInt(2), bob,
	}, nil)

	groups, err := New(b, nil, DefaultFees()).GetAllGroups(context.Background())
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "one", groups[0].Name)
	assert.Equal(t, "three", groups[1].Name)
	assert.EqualValues(t, 3, groups[1].ID)
}

func TestSrv_GetDirectMessages(t *testing.T) {
	b := chainmock.NewMockBackend(gomock.NewController(t))

	b.EXPECT().Call(gomock.Any(), "getDirectMessages", alice, bob).Return([]interface{}{
		[]interface{}{
			[]interface{}{alice, big.NewInt(1), "deleted and quoted", true, big.NewInt(0)},
			[]interface{}{bob, big.NewInt(2), "deleted", true, big.NewInt(0)},
			[]interface{}{bob, big.NewInt(3), "reply", false, big.NewInt(1)},
		},
	}, nil)

	msgs, err := New(b, nil, DefaultFees()).GetDirectMessages(context.Background(), alice, bob)
	require.NoError(t, err)
	require.Len(t, msgs, 2)

	assert.Equal(t, 0, msgs[0].Index)
	assert.True(t, msgs[0].IsDeleted)
	assert.Empty(t, msgs[0].Content)

	assert.Equal(t, 2, msgs[1].Index)
	assert.Equal(t, 0, msgs[1].ReplyToIndex)
}

func TestSrv_GetAdminStatus(t *testing.T) {
	b := chainmock.NewMockBackend(gomock.NewController(t))

	b.EXPECT().Call(gomock.Any(), "owner").Return([]interface{}{alice}, nil)
	b.EXPECT().Call(gomock.Any(), "checkIsAdmin", bob).Return([]interface{}{true}, nil)
	b.EXPECT().Call(gomock.Any(), "paused").Return([]interface{}{false}, nil)
	b.EXPECT().Call(gomock.Any(), "getContractBalance").Return([]interface{}{big.NewInt(10)}, nil)

	st, err := New(b, nil, DefaultFees()).GetAdminStatus(context.Background(), bob)
	require.NoError(t, err)
	assert.Equal(t, &service.AdminStatus{Owner: alice, IsAdmin: true, Paused: false, Balance: big.NewInt(10)}, st)
}

func TestSrv_CreatePost(t *testing.T) {
	b := chainmock.NewMockBackend(gomock.NewController(t))
	tr := &tracker{}
	s := New(b, tr, DefaultFees())

	b.EXPECT().Transact(gomock.Any(), entities.DefaultPostFee(), "createPost", uint8(1), "sunset", "ipfs://Qm").Return(hash, nil)
	b.EXPECT().From().Return(alice)

	tx, err := s.CreatePost(context.Background(), entities.ImagePost, "sunset", "ipfs://Qm")
	require.NoError(t, err)
	assert.Equal(t, hash, tx.Hash)
	assert.Equal(t, entities.TxSubmitted, tx.Status)
	assert.Equal(t, alice, tx.From)
	assert.Equal(t, []string{"1", "sunset", "ipfs://Qm"}, tx.Args)

	require.Len(t, tr.txs, 1)
	assert.Same(t, tx, tr.txs[0])
}

func TestSrv_CreatePost_TooLongDescription(t *testing.T) {
	// no Transact expectation: any write would fail the test
	b := chainmock.NewMockBackend(gomock.NewController(t))

	_, err := New(b, nil, DefaultFees()).CreatePost(context.Background(), entities.TextPost, strings.Repeat("a", 1001), "")
	require.ErrorIs(t, err, service.ErrInvalidArgument)
}

func TestSrv_Execute_Errors(t *testing.T) {
	b := chainmock.NewMockBackend(gomock.NewController(t))
	s := New(b, nil, DefaultFees())

	b.EXPECT().From().Return(alice).AnyTimes()

	b.EXPECT().Transact(gomock.Any(), nil, "followUser", bob).Return(common.Hash{}, &chain.WalletError{Code: 4001})
	_, err := s.FollowUser(context.Background(), bob)

	var txErr *service.TxError
	require.True(t, errors.As(err, &txErr))
	assert.Equal(t, service.UserRejected, txErr.Kind)

	b.EXPECT().Transact(gomock.Any(), entities.DefaultGroupFee(), "createGroup", "gophers", "").
		Return(common.Hash{}, &chain.WalletError{Code: -32603, Reason: "Group full"})
	_, err = s.CreateGroup(context.Background(), "gophers", "")
	require.True(t, errors.As(err, &txErr))
	assert.Equal(t, "Group full", err.Error())

	_, err = s.FollowUser(context.Background(), alice)
	require.ErrorIs(t, err, service.ErrInvalidArgument)
}

func TestSrv_Replies(t *testing.T) {
	b := chainmock.NewMockBackend(gomock.NewController(t))
	s := New(b, nil, DefaultFees())

	b.EXPECT().From().Return(alice).AnyTimes()

	b.EXPECT().Transact(gomock.Any(), nil, "addComment", big.NewInt(7), "top", false, big.NewInt(0)).Return(hash, nil)
	_, err := s.AddComment(context.Background(), 7, "top", entities.NoReply)
	require.NoError(t, err)

	b.EXPECT().Transact(gomock.Any(), nil, "addComment", big.NewInt(7), "re", true, big.NewInt(0)).Return(hash, nil)
	_, err = s.AddComment(context.Background(), 7, "re", 0)
	require.NoError(t, err)

	b.EXPECT().Transact(gomock.Any(), nil, "sendDirectMessage", bob, "hi", big.NewInt(0)).Return(hash, nil)
	_, err = s.SendDirectMessage(context.Background(), bob, "hi", entities.NoReply)
	require.NoError(t, err)

	b.EXPECT().Transact(gomock.Any(), nil, "sendGroupMessage", big.NewInt(3), "hi", big.NewInt(5)).Return(hash, nil)
	_, err = s.SendGroupMessage(context.Background(), 3, "hi", 4)
	require.NoError(t, err)

	_, err = s.AddComment(context.Background(), 7, "bad", -2)
	require.ErrorIs(t, err, service.ErrInvalidArgument)

	_, err = s.SendDirectMessage(context.Background(), bob, "bad", -2)
	require.ErrorIs(t, err, service.ErrInvalidArgument)

	_, err = s.SendGroupMessage(context.Background(), 3, "bad", -2)
	require.ErrorIs(t, err, service.ErrInvalidArgument)
}

func TestVisibleMessages(t *testing.T) {
	in := []entities.Message{
		{Index: 0, Content: "a", ReplyToIndex: entities.NoReply},
		{Index: 1, Content: "b", IsDeleted: true, ReplyToIndex: entities.NoReply},
		{Index: 2, Content: "c", IsDeleted: true, ReplyToIndex: 0},
	}

	out := VisibleMessages(in)
	require.Len(t, out, 1)
	assert.Equal(t, "a", out[0].Content)
}
