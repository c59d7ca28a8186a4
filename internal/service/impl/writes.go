package impl

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/KartikRyzen2006/Web3-Social-Media-sub000/internal/entities"
	"github.com/KartikRyzen2006/Web3-Social-Media-sub000/internal/service"
)

func validateReply(what string, replyTo int) error {
	if replyTo < entities.NoReply {
		return service.Invalidf("invalid %s index %d", what, replyTo)
	}
	return nil
}

// replyArg encodes validated reply index the way contract stores it: zero is "no reply".
func replyArg(replyTo int) *big.Int {
	return u256(uint64(replyTo) + 1)
}

func (s srv) CreateProfile(ctx context.Context, name string) (*entities.Tx, error) {
	if err := service.ValidateUsername(name); err != nil {
		return nil, err
	}
	return s.execute(ctx, nil, "createProfile", name)
}

func (s srv) SetProfileName(ctx context.Context, name string) (*entities.Tx, error) {
	if err := service.ValidateUsername(name); err != nil {
		return nil, err
	}
	return s.execute(ctx, nil, "setProfileName", name)
}

func (s srv) DeleteProfile(ctx context.Context) (*entities.Tx, error) {
	return s.execute(ctx, nil, "deleteProfile")
}

func (s srv) FollowUser(ctx context.Context, addr common.Address) (*entities.Tx, error) {
	if err := s.validateOther(addr); err != nil {
		return nil, err
	}
	return s.execute(ctx, nil, "followUser", addr)
}

func (s srv) UnfollowUser(ctx context.Context, addr common.Address) (*entities.Tx, error) {
	if err := s.validateOther(addr); err != nil {
		return nil, err
	}
	return s.execute(ctx, nil, "unfollowUser", addr)
}

func (s srv) CreatePost(ctx context.Context, t entities.PostType, description, url string) (*entities.Tx, error) {
	if err := service.ValidatePost(t, description, url); err != nil {
		return nil, err
	}
	return s.execute(ctx, s.fees.Post, "createPost", uint8(t), description, url)
}

func (s srv) EditPost(ctx context.Context, id uint64, description, url string) (*entities.Tx, error) {
	if err := service.ValidateText("description", description, entities.MaxPostDescription); err != nil {
		return nil, err
	}
	return s.execute(ctx, nil, "editPost", u256(id), description, url)
}

func (s srv) DeletePost(ctx context.Context, id uint64) (*entities.Tx, error) {
	return s.execute(ctx, nil, "deletePost", u256(id))
}

func (s srv) LikePost(ctx context.Context, id uint64) (*entities.Tx, error) {
	return s.execute(ctx, nil, "likePost", u256(id))
}

func (s srv) UnlikePost(ctx context.Context, id uint64) (*entities.Tx, error) {
	return s.execute(ctx, nil, "unlikePost", u256(id))
}

// AddComment adds comment, replyTo is index of parent comment or entities.NoReply.
func (s srv) AddComment(ctx context.Context, postID uint64, text string, replyTo int) (*entities.Tx, error) {
	if err := service.ValidateText("comment", text, entities.MaxCommentLength); err != nil {
		return nil, err
	}
	if err := validateReply("parent comment", replyTo); err != nil {
		return nil, err
	}

	isReply := replyTo != entities.NoReply
	parent := uint64(0)
	if isReply {
		parent = uint64(replyTo)
	}

	return s.execute(ctx, nil, "addComment", u256(postID), text, isReply, u256(parent))
}

func (s srv) CreateGroup(ctx context.Context, name, description string) (*entities.Tx, error) {
	if err := service.ValidateText("group name", name, entities.MaxGroupNameLength); err != nil {
		return nil, err
	}
	if len([]rune(description)) > entities.MaxGroupDescription {
		return nil, service.Invalidf("group description must be at most %d characters", entities.MaxGroupDescription)
	}
	return s.execute(ctx, s.fees.Group, "createGroup", name, description)
}

func (s srv) JoinGroup(ctx context.Context, id uint64) (*entities.Tx, error) {
	return s.execute(ctx, nil, "joinGroup", u256(id))
}

func (s srv) DeleteGroup(ctx context.Context, id uint64) (*entities.Tx, error) {
	return s.execute(ctx, nil, "deleteGroup", u256(id))
}

func (s srv) SendDirectMessage(ctx context.Context, to common.Address, content string, replyTo int) (*entities.Tx, error) {
	if err := s.validateOther(to); err != nil {
		return nil, err
	}
	if err := service.ValidateText("message", content, entities.MaxMessageLength); err != nil {
		return nil, err
	}
	if err := validateReply("reply", replyTo); err != nil {
		return nil, err
	}
	return s.execute(ctx, nil, "sendDirectMessage", to, content, replyArg(replyTo))
}

func (s srv) DeleteDirectMessage(ctx context.Context, other common.Address, index int) (*entities.Tx, error) {
	if err := service.ValidateIndex("message index", index); err != nil {
		return nil, err
	}
	return s.execute(ctx, nil, "deleteDirectMessage", other, u256(uint64(index)))
}

func (s srv) SendGroupMessage(ctx context.Context, groupID uint64, content string, replyTo int) (*entities.Tx, error) {
	if err := service.ValidateText("message", content, entities.MaxMessageLength); err != nil {
		return nil, err
	}
	if err := validateReply("reply", replyTo); err != nil {
		return nil, err
	}
	return s.execute(ctx, nil, "sendGroupMessage", u256(groupID), content, replyArg(replyTo))
}

func (s srv) DeleteGroupMessage(ctx context.Context, groupID uint64, index int) (*entities.Tx, error) {
	if err := service.ValidateIndex("message index", index); err != nil {
		return nil, err
	}
	return s.execute(ctx, nil, "deleteGroupMessage", u256(groupID), u256(uint64(index)))
}

func (s srv) AddAdmin(ctx context.Context, addr common.Address) (*entities.Tx, error) {
	if err := s.validateOther(addr); err != nil {
		return nil, err
	}
	return s.execute(ctx, nil, "addAdmin", addr)
}

func (s srv) RemoveAdmin(ctx context.Context, addr common.Address) (*entities.Tx, error) {
	if err := s.validateOther(addr); err != nil {
		return nil, err
	}
	return s.execute(ctx, nil, "removeAdmin", addr)
}

func (s srv) Pause(ctx context.Context) (*entities.Tx, error) {
	return s.execute(ctx, nil, "pause")
}

func (s srv) Unpause(ctx context.Context) (*entities.Tx, error) {
	return s.execute(ctx, nil, "unpause")
}

func (s srv) EmergencyWithdraw(ctx context.Context) (*entities.Tx, error) {
	return s.execute(ctx, nil, "emergencyWithdraw")
}

func (s srv) validateOther(addr common.Address) error {
	if err := service.ValidateAddress("address", addr); err != nil {
		return err
	}
	if addr == s.b.From() {
		return service.Invalidf("address must not be your own")
	}
	return nil
}
