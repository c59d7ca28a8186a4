// Package entities contains main entities of service.
package entities

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// PostType ...
type PostType uint8

const (
	// TextPost ...
	TextPost PostType = iota
	// ImagePost ...
	ImagePost
	// VideoPost ...
	VideoPost
)

// String returns the name the contract uses for the type.
func (t PostType) String() string {
	switch t {
	case TextPost:
		return "text"
	case ImagePost:
		return "image"
	case VideoPost:
		return "video"
	default:
		return "unknown"
	}
}

// ParsePostType parses post type name.
func ParsePostType(s string) (PostType, bool) {
	switch s {
	case "text", "":
		return TextPost, true
	case "image":
		return ImagePost, true
	case "video":
		return VideoPost, true
	default:
		return 0, false
	}
}

// NoReply is set as ReplyToIndex/ParentIndex when the record is not a reply.
const NoReply = -1

// Profile ...
type Profile struct {
	Owner          common.Address
	Name           string
	CreatedAt      time.Time
	ID             uint64
	PostCount      uint64
	FollowerCount  uint64
	FollowingCount uint64
	Exists         bool
}

// Post ...
type Post struct {
	ID          uint64
	Author      common.Address
	Type        PostType
	Description string
	ContentURL  string
	CreatedAt   time.Time
	Likes       uint64
	Comments    uint64
	IsDeleted   bool
}

// Visible reports whether the post may be shown in list views.
func (p Post) Visible() bool {
	return p.Author != (common.Address{}) && !p.IsDeleted
}

// Comment ...
// Comments are a flat list per post, replies point to ParentIndex.
type Comment struct {
	Index       int
	Author      common.Address
	Text        string
	CreatedAt   time.Time
	IsReply     bool
	ParentIndex int
}

// Group ...
type Group struct {
	ID          uint64
	Name        string
	Description string
	Creator     common.Address
	Members     []common.Address
	MemberCount uint64
}

// Message is a direct or group message.
type Message struct {
	Index        int
	Sender       common.Address
	Timestamp    time.Time
	Content      string
	IsDeleted    bool
	ReplyToIndex int
}

// Page is a slice of items with total count of the whole collection.
type Page[T any] struct {
	Items []T
	Total uint64
}

// NotificationKind ...
type NotificationKind string

const (
	// LikeNotification ...
	LikeNotification NotificationKind = "like"
	// CommentNotification ...
	CommentNotification NotificationKind = "comment"
	// FollowNotification ...
	FollowNotification NotificationKind = "follow"
	// MessageNotification ...
	MessageNotification NotificationKind = "message"
	// GroupNotification ...
	GroupNotification NotificationKind = "group"
)

// Notification ...
type Notification struct {
	ID        int64
	Address   common.Address
	Kind      NotificationKind
	Title     string
	Body      string
	Actor     common.Address
	RelatedID string
	Read      bool
	CreatedAt time.Time
}

// Activity is a record of an action made by Address.
type Activity struct {
	ID        int64
	Address   common.Address
	Kind      string
	Target    string
	TxHash    common.Hash
	CreatedAt time.Time
}

// TxStatus ...
type TxStatus string

const (
	// TxSubmitted means the transaction hash is known but nobody has seen it in the pool yet.
	TxSubmitted TxStatus = "submitted"
	// TxPending ...
	TxPending TxStatus = "pending"
	// TxConfirmed ...
	TxConfirmed TxStatus = "confirmed"
	// TxReverted ...
	TxReverted TxStatus = "reverted"
	// TxFailed means the transaction was never mined, e.g. dropped or timed out.
	TxFailed TxStatus = "failed"
)

// Final returns true if status won't change anymore.
func (s TxStatus) Final() bool {
	return s == TxConfirmed || s == TxReverted || s == TxFailed
}

// Tx is a tracked contract write.
type Tx struct {
	Hash        common.Hash
	Method      string
	From        common.Address
	Args        []string
	Status      TxStatus
	Block       uint64
	Error       string
	SubmittedAt time.Time
	UpdatedAt   time.Time
}
