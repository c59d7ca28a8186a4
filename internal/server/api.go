package server

import (
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/KartikRyzen2006/Web3-Social-Media-sub000/internal/entities"
	"github.com/KartikRyzen2006/Web3-Social-Media-sub000/internal/ipfs"
	"github.com/KartikRyzen2006/Web3-Social-Media-sub000/internal/service"
)

// Error ...
// swagger:model
type Error struct {
	Error string `json:"error"`
}

// Profile ...
// swagger:model
type Profile struct {
	Address        string `json:"address"`
	Name           string `json:"name"`
	ID             uint64 `json:"id"`
	PostCount      uint64 `json:"postCount"`
	FollowerCount  uint64 `json:"followerCount"`
	FollowingCount uint64 `json:"followingCount"`
	CreatedAt      int64  `json:"createdAt"`
	Exists         bool   `json:"exists"`
}

// Post ...
// MediaURL is ContentURL resolved onto the ipfs gateway. Liked is set when requestedBy is passed.
// swagger:model
type Post struct {
	ID          uint64 `json:"id"`
	Author      string `json:"author"`
	Type        string `json:"type"`
	Description string `json:"description"`
	ContentURL  string `json:"contentUrl"`
	MediaURL    string `json:"mediaUrl,omitempty"`
	Likes       uint64 `json:"likes"`
	Comments    uint64 `json:"comments"`
	IsDeleted   bool   `json:"isDeleted"`
	CreatedAt   int64  `json:"createdAt"`
	Liked       *bool  `json:"liked,omitempty"`
}

// ListPostsResponse ...
// Profiles dictionary where key is an address and value is a profile.
// swagger:model
type ListPostsResponse struct {
	Posts    []Post             `json:"posts"`
	Total    uint64             `json:"total"`
	Profiles map[string]Profile `json:"profiles"`
}

// GetPostResponse ...
// swagger:model
type GetPostResponse struct {
	Post    Post     `json:"post"`
	Profile *Profile `json:"profile,omitempty"`
}

// ListUsersResponse ...
// swagger:model
type ListUsersResponse struct {
	Users []Profile `json:"users"`
	Total uint64    `json:"total"`
}

// AddressesResponse is a list of addresses with their profiles.
// swagger:model
type AddressesResponse struct {
	Addresses []string           `json:"addresses"`
	Profiles  map[string]Profile `json:"profiles"`
}

// Comment ...
// swagger:model
type Comment struct {
	Index       int    `json:"index"`
	Author      string `json:"author"`
	Text        string `json:"text"`
	IsReply     bool   `json:"isReply"`
	ParentIndex int    `json:"parentIndex"`
	CreatedAt   int64  `json:"createdAt"`
}

// ListCommentsResponse ...
// swagger:model
type ListCommentsResponse struct {
	Comments []Comment          `json:"comments"`
	Profiles map[string]Profile `json:"profiles"`
}

// Group ...
// swagger:model
type Group struct {
	ID          uint64   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Creator     string   `json:"creator"`
	Members     []string `json:"members"`
	MemberCount uint64   `json:"memberCount"`
}

// Message ...
// ReplyTo is -1 when message is not a reply.
// swagger:model
type Message struct {
	Index     int    `json:"index"`
	Sender    string `json:"sender"`
	Content   string `json:"content"`
	IsDeleted bool   `json:"isDeleted"`
	ReplyTo   int    `json:"replyTo"`
	Timestamp int64  `json:"timestamp"`
}

// ListMessagesResponse ...
// Cached is true when messages are served from the local cache because the chain is unavailable.
// swagger:model
type ListMessagesResponse struct {
	Messages []Message          `json:"messages"`
	Profiles map[string]Profile `json:"profiles"`
	Cached   bool               `json:"cached"`
}

// AdminStatus ...
// Balance is contract balance in wei.
// swagger:model
type AdminStatus struct {
	Owner   string `json:"owner"`
	IsAdmin bool   `json:"isAdmin"`
	Paused  bool   `json:"paused"`
	Balance string `json:"balance"`
}

// BoolResponse ...
// swagger:model
type BoolResponse struct {
	Value bool `json:"value"`
}

// ValidateResponse ...
// swagger:model
type ValidateResponse struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

// Notification ...
// swagger:model
type Notification struct {
	ID        int64  `json:"id"`
	Kind      string `json:"kind"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	Actor     string `json:"actor"`
	RelatedID string `json:"relatedId"`
	Read      bool   `json:"read"`
	CreatedAt int64  `json:"createdAt"`
}

// ListNotificationsResponse ...
// swagger:model
type ListNotificationsResponse struct {
	Notifications []Notification `json:"notifications"`
	Unread        uint32         `json:"unread"`
}

// MarkReadRequest ...
// All notifications are marked if IDs is empty.
// swagger:model
type MarkReadRequest struct {
	IDs []int64 `json:"ids"`
}

// Activity ...
// swagger:model
type Activity struct {
	ID        int64  `json:"id"`
	Kind      string `json:"kind"`
	Target    string `json:"target"`
	TxHash    string `json:"txHash"`
	CreatedAt int64  `json:"createdAt"`
}

// Tx ...
// swagger:model
type Tx struct {
	Hash        string   `json:"hash"`
	Method      string   `json:"method"`
	From        string   `json:"from"`
	Args        []string `json:"args"`
	Status      string   `json:"status"`
	Block       uint64   `json:"block,omitempty"`
	Error       string   `json:"error,omitempty"`
	SubmittedAt int64    `json:"submittedAt"`
	UpdatedAt   int64    `json:"updatedAt"`
}

// TrackTxRequest registers transaction sent by a wallet.
// swagger:model
type TrackTxRequest struct {
	Hash   string   `json:"hash"`
	Method string   `json:"method"`
	From   string   `json:"from"`
	Args   []string `json:"args"`
}

// TxError is a classified transaction error.
// swagger:model
type TxError struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// NameRequest ...
// swagger:model
type NameRequest struct {
	Name string `json:"name"`
}

// CreatePostRequest ...
// swagger:model
type CreatePostRequest struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	ContentURL  string `json:"contentUrl"`
}

// EditPostRequest ...
// swagger:model
type EditPostRequest struct {
	Description string `json:"description"`
	ContentURL  string `json:"contentUrl"`
}

// CommentRequest ...
// ReplyTo is index of parent comment, omitted for top-level comments.
// swagger:model
type CommentRequest struct {
	Text    string `json:"text"`
	ReplyTo *int   `json:"replyTo"`
}

// GroupRequest ...
// swagger:model
type GroupRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// MessageRequest ...
// swagger:model
type MessageRequest struct {
	Content string `json:"content"`
	ReplyTo *int   `json:"replyTo"`
}

// JSONUploadRequest ...
// swagger:model
type JSONUploadRequest struct {
	Name    string      `json:"name"`
	Content interface{} `json:"content"`
}

func toAPIProfile(p *entities.Profile) Profile {
	return Profile{
		Address:        p.Owner.Hex(),
		Name:           p.Name,
		ID:             p.ID,
		PostCount:      p.PostCount,
		FollowerCount:  p.FollowerCount,
		FollowingCount: p.FollowingCount,
		CreatedAt:      p.CreatedAt.Unix(),
		Exists:         p.Exists,
	}
}

func toAPIProfiles(m map[common.Address]*entities.Profile) map[string]Profile {
	out := make(map[string]Profile, len(m))
	for k, v := range m {
		out[k.Hex()] = toAPIProfile(v)
	}
	return out
}

func toAPIPost(p entities.Post, gateway string) Post {
	out := Post{
		ID:          p.ID,
		Author:      p.Author.Hex(),
		Type:        p.Type.String(),
		Description: p.Description,
		ContentURL:  p.ContentURL,
		Likes:       p.Likes,
		Comments:    p.Comments,
		IsDeleted:   p.IsDeleted,
		CreatedAt:   p.CreatedAt.Unix(),
	}
	if strings.TrimSpace(p.ContentURL) != "" {
		out.MediaURL = ipfs.GetIPFSURL(gateway, p.ContentURL)
	}
	return out
}

func toAPIComment(c entities.Comment) Comment {
	return Comment{
		Index:       c.Index,
		Author:      c.Author.Hex(),
		Text:        c.Text,
		IsReply:     c.IsReply,
		ParentIndex: c.ParentIndex,
		CreatedAt:   c.CreatedAt.Unix(),
	}
}

func toAPIGroup(g entities.Group) Group {
	return Group{
		ID:          g.ID,
		Name:        g.Name,
		Description: g.Description,
		Creator:     g.Creator.Hex(),
		Members:     hexes(g.Members),
		MemberCount: g.MemberCount,
	}
}

func toAPIMessage(m entities.Message) Message {
	return Message{
		Index:     m.Index,
		Sender:    m.Sender.Hex(),
		Content:   m.Content,
		IsDeleted: m.IsDeleted,
		ReplyTo:   m.ReplyToIndex,
		Timestamp: m.Timestamp.Unix(),
	}
}

func toAPIAdminStatus(s *service.AdminStatus) AdminStatus {
	balance := s.Balance
	if balance == nil {
		balance = new(big.Int)
	}
	return AdminStatus{
		Owner:   s.Owner.Hex(),
		IsAdmin: s.IsAdmin,
		Paused:  s.Paused,
		Balance: balance.String(),
	}
}

func toAPINotification(n *entities.Notification) Notification {
	return Notification{
		ID:        n.ID,
		Kind:      string(n.Kind),
		Title:     n.Title,
		Body:      n.Body,
		Actor:     n.Actor.Hex(),
		RelatedID: n.RelatedID,
		Read:      n.Read,
		CreatedAt: n.CreatedAt.Unix(),
	}
}

func toAPIActivity(a *entities.Activity) Activity {
	return Activity{
		ID:        a.ID,
		Kind:      a.Kind,
		Target:    a.Target,
		TxHash:    a.TxHash.Hex(),
		CreatedAt: a.CreatedAt.Unix(),
	}
}

func toAPITx(tx *entities.Tx) Tx {
	args := tx.Args
	if args == nil {
		args = []string{}
	}
	return Tx{
		Hash:        tx.Hash.Hex(),
		Method:      tx.Method,
		From:        tx.From.Hex(),
		Args:        args,
		Status:      string(tx.Status),
		Block:       tx.Block,
		Error:       tx.Error,
		SubmittedAt: tx.SubmittedAt.Unix(),
		UpdatedAt:   tx.UpdatedAt.Unix(),
	}
}

func hexes(addrs []common.Address) []string {
	out := make([]string, len(addrs))
	for i, v := range addrs {
		out[i] = v.Hex()
	}
	return out
}

// Upload ...
// swagger:model
type Upload struct {
	IPFSHash  string    `json:"ipfsHash"`
	IPFSURL   string    `json:"ipfsUrl"`
	Size      int64     `json:"size"`
	Timestamp time.Time `json:"timestamp"`
}

func toAPIUpload(u *ipfs.Upload) Upload {
	return Upload{
		IPFSHash:  u.IPFSHash,
		IPFSURL:   u.IPFSURL,
		Size:      u.Size,
		Timestamp: u.Timestamp,
	}
}
