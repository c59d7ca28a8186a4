// Package service contains interface of the social contract façade.
package service

import (
	"context"
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/KartikRyzen2006/Web3-Social-Media-sub000/internal/entities"
)

//go:generate mockgen -destination=./mock/service.go -package=mock -source=service.go

var (
	// ErrNotFound is returned when contract has no such record.
	ErrNotFound = errors.New("not found")
	// ErrInvalidArgument is returned when input is rejected before reaching the contract.
	ErrInvalidArgument = errors.New("invalid argument")
)

// AdminStatus ...
type AdminStatus struct {
	Owner   common.Address
	IsAdmin bool
	Paused  bool
	Balance *big.Int
}

// Tracker follows submitted transactions until they are mined.
type Tracker interface {
	Track(ctx context.Context, tx *entities.Tx) error
}

// Reader is a read-only part of the façade.
type Reader interface {
	GetProfile(ctx context.Context, addr common.Address) (*entities.Profile, error)
	GetAllUsers(ctx context.Context, offset, limit uint64) (*entities.Page[entities.Profile], error)
	CheckIsFollowing(ctx context.Context, follower, followee common.Address) (bool, error)
	GetFollowers(ctx context.Context, addr common.Address) ([]common.Address, error)
	GetFollowing(ctx context.Context, addr common.Address) ([]common.Address, error)

	GetAllPosts(ctx context.Context, offset, limit uint64) (*entities.Page[entities.Post], error)
	GetUserPosts(ctx context.Context, addr common.Address) ([]entities.Post, error)
	GetPost(ctx context.Context, id uint64) (*entities.Post, error)
	CheckIfLiked(ctx context.Context, postID uint64, addr common.Address) (bool, error)
	GetPostComments(ctx context.Context, postID uint64) ([]entities.Comment, error)

	GetGroupDetails(ctx context.Context, id uint64) (*entities.Group, error)
	GetAllGroupIDs(ctx context.Context) ([]uint64, error)
	GetAllGroups(ctx context.Context) ([]entities.Group, error)

	GetDirectMessages(ctx context.Context, a, b common.Address) ([]entities.Message, error)
	GetGroupMessages(ctx context.Context, groupID uint64) ([]entities.Message, error)

	GetAdminStatus(ctx context.Context, addr common.Address) (*AdminStatus, error)
}

// Writer issues contract transactions. Every method validates input before sending anything
// and returns the submitted transaction.
type Writer interface {
	CreateProfile(ctx context.Context, name string) (*entities.Tx, error)
	SetProfileName(ctx context.Context, name string) (*entities.Tx, error)
	DeleteProfile(ctx context.Context) (*entities.Tx, error)
	FollowUser(ctx context.Context, addr common.Address) (*entities.Tx, error)
	UnfollowUser(ctx context.Context, addr common.Address) (*entities.Tx, error)

	CreatePost(ctx context.Context, t entities.PostType, description, url string) (*entities.Tx, error)
	EditPost(ctx context.Context, id uint64, description, url string) (*entities.Tx, error)
	DeletePost(ctx context.Context, id uint64) (*entities.Tx, error)
	LikePost(ctx context.Context, id uint64) (*entities.Tx, error)
	UnlikePost(ctx context.Context, id uint64) (*entities.Tx, error)
	AddComment(ctx context.Context, postID uint64, text string, replyTo int) (*entities.Tx, error)

	CreateGroup(ctx context.Context, name, description string) (*entities.Tx, error)
	JoinGroup(ctx context.Context, id uint64) (*entities.Tx, error)
	DeleteGroup(ctx context.Context, id uint64) (*entities.Tx, error)

	SendDirectMessage(ctx context.Context, to common.Address, content string, replyTo int) (*entities.Tx, error)
	DeleteDirectMessage(ctx context.Context, other common.Address, index int) (*entities.Tx, error)
	SendGroupMessage(ctx context.Context, groupID uint64, content string, replyTo int) (*entities.Tx, error)
	DeleteGroupMessage(ctx context.Context, groupID uint64, index int) (*entities.Tx, error)

	AddAdmin(ctx context.Context, addr common.Address) (*entities.Tx, error)
	RemoveAdmin(ctx context.Context, addr common.Address) (*entities.Tx, error)
	Pause(ctx context.Context) (*entities.Tx, error)
	Unpause(ctx context.Context) (*entities.Tx, error)
	EmergencyWithdraw(ctx context.Context) (*entities.Tx, error)
}

// Service is the social contract façade.
type Service interface {
	Reader
	Writer
}
