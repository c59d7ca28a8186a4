package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jessevdk/go-flags"
	"github.com/sirupsen/logrus"

	"github.com/KartikRyzen2006/Web3-Social-Media-sub000/internal/entities"
	"github.com/KartikRyzen2006/Web3-Social-Media-sub000/internal/service"
	"github.com/KartikRyzen2006/Web3-Social-Media-sub000/internal/service/impl"
)

type noArgsCmd struct {
	send sender
}

func (c *noArgsCmd) Execute([]string) error {
	return send(c.send)
}

type nameCmd struct {
	Args struct {
		Name string `positional-arg-name:"name"`
	} `positional-args:"yes" required:"yes"`

	send func(ctx context.Context, s service.Service, name string) (*entities.Tx, error)
}

func (c *nameCmd) Execute([]string) error {
	return send(func(ctx context.Context, s service.Service) (*entities.Tx, error) {
		return c.send(ctx, s, c.Args.Name)
	})
}

type addressCmd struct {
	Args struct {
		Address string `positional-arg-name:"address"`
	} `positional-args:"yes" required:"yes"`

	send func(ctx context.Context, s service.Service, addr common.Address) (*entities.Tx, error)
}

func (c *addressCmd) Execute([]string) error {
	addr, err := parseAddress(c.Args.Address)
	if err != nil {
		return err
	}

	return send(func(ctx context.Context, s service.Service) (*entities.Tx, error) {
		return c.send(ctx, s, addr)
	})
}

type idCmd struct {
	Args struct {
		ID uint64 `positional-arg-name:"id"`
	} `positional-args:"yes" required:"yes"`

	send func(ctx context.Context, s service.Service, id uint64) (*entities.Tx, error)
}

func (c *idCmd) Execute([]string) error {
	return send(func(ctx context.Context, s service.Service) (*entities.Tx, error) {
		return c.send(ctx, s, c.Args.ID)
	})
}

type createPostCmd struct {
	Type string `long:"type" default:"text" choice:"text" choice:"image" choice:"video" description:"post type"`
	URL  string `long:"url" description:"content url or ipfs hash"`
	Args struct {
		Description string `positional-arg-name:"description"`
	} `positional-args:"yes" required:"yes"`
}

func (c *createPostCmd) Execute([]string) error {
	t, _ := entities.ParsePostType(c.Type) // choices are checked by parser
	return send(func(ctx context.Context, s service.Service) (*entities.Tx, error) {
		return s.CreatePost(ctx, t, c.Args.Description, c.URL)
	})
}

type editPostCmd struct {
	URL  string `long:"url" description:"content url or ipfs hash"`
	Args struct {
		ID          uint64 `positional-arg-name:"id"`
		Description string `positional-arg-name:"description"`
	} `positional-args:"yes" required:"yes"`
}

func (c *editPostCmd) Execute([]string) error {
	return send(func(ctx context.Context, s service.Service) (*entities.Tx, error) {
		return s.EditPost(ctx, c.Args.ID, c.Args.Description, c.URL)
	})
}

type commentCmd struct {
	ReplyTo int `long:"reply-to" default:"-1" description:"index of the comment to reply to"`
	Args    struct {
		PostID uint64 `positional-arg-name:"post-id"`
		Text   string `positional-arg-name:"text"`
	} `positional-args:"yes" required:"yes"`
}

func (c *commentCmd) Execute([]string) error {
	return send(func(ctx context.Context, s service.Service) (*entities.Tx, error) {
		return s.AddComment(ctx, c.Args.PostID, c.Args.Text, c.ReplyTo)
	})
}

type createGroupCmd struct {
	Args struct {
		Name        string `positional-arg-name:"name"`
		Description string `positional-arg-name:"description"`
	} `positional-args:"yes" required:"yes"`
}

func (c *createGroupCmd) Execute([]string) error {
	return send(func(ctx context.Context, s service.Service) (*entities.Tx, error) {
		return s.CreateGroup(ctx, c.Args.Name, c.Args.Description)
	})
}

type directMessageCmd struct {
	ReplyTo int `long:"reply-to" default:"-1" description:"index of the message to reply to"`
	Args    struct {
		To      string `positional-arg-name:"address"`
		Content string `positional-arg-name:"content"`
	} `positional-args:"yes" required:"yes"`
}

func (c *directMessageCmd) Execute([]string) error {
	to, err := parseAddress(c.Args.To)
	if err != nil {
		return err
	}

	return send(func(ctx context.Context, s service.Service) (*entities.Tx, error) {
		return s.SendDirectMessage(ctx, to, c.Args.Content, c.ReplyTo)
	})
}

type deleteDirectMessageCmd struct {
	Args struct {
		With  string `positional-arg-name:"address"`
		Index int    `positional-arg-name:"index"`
	} `positional-args:"yes" required:"yes"`
}

func (c *deleteDirectMessageCmd) Execute([]string) error {
	other, err := parseAddress(c.Args.With)
	if err != nil {
		return err
	}

	return send(func(ctx context.Context, s service.Service) (*entities.Tx, error) {
		return s.DeleteDirectMessage(ctx, other, c.Args.Index)
	})
}

type groupMessageCmd struct {
	ReplyTo int `long:"reply-to" default:"-1" description:"index of the message to reply to"`
	Args    struct {
		GroupID uint64 `positional-arg-name:"group-id"`
		Content string `positional-arg-name:"content"`
	} `positional-args:"yes" required:"yes"`
}

func (c *groupMessageCmd) Execute([]string) error {
	return send(func(ctx context.Context, s service.Service) (*entities.Tx, error) {
		return s.SendGroupMessage(ctx, c.Args.GroupID, c.Args.Content, c.ReplyTo)
	})
}

type deleteGroupMessageCmd struct {
	Args struct {
		GroupID uint64 `positional-arg-name:"group-id"`
		Index   int    `positional-arg-name:"index"`
	} `positional-args:"yes" required:"yes"`
}

func (c *deleteGroupMessageCmd) Execute([]string) error {
	return send(func(ctx context.Context, s service.Service) (*entities.Tx, error) {
		return s.DeleteGroupMessage(ctx, c.Args.GroupID, c.Args.Index)
	})
}

type statusCmd struct {
	Address string `long:"address" description:"account to check, defaults to the signing account"`
}

func (c *statusCmd) Execute([]string) error {
	ctx := context.Background()

	b, err := newBackend(ctx)
	if err != nil {
		return err
	}
	defer b.Close()

	account := b.From()
	if c.Address != "" {
		if account, err = parseAddress(c.Address); err != nil {
			return err
		}
	}
	if account == (common.Address{}) {
		return errors.New("either --address or --chain.private-key is required")
	}

	st, err := impl.New(b, nil, impl.DefaultFees()).GetAdminStatus(ctx, account)
	if err != nil {
		return fmt.Errorf("failed to get admin status: %w", err)
	}

	fmt.Fprintf(os.Stdout, "account:  %s\nowner:    %s\nadmin:    %t\npaused:   %t\nbalance:  %s wei\n",
		account.Hex(), st.Owner.Hex(), st.IsAdmin, st.Paused, st.Balance)

	return nil
}

func parseAddress(s string) (common.Address, error) {
	if !common.IsHexAddress(s) {
		return common.Address{}, fmt.Errorf("invalid address %q", s)
	}
	return common.HexToAddress(s), nil
}

func registerCommands(p *flags.Parser) {
	for _, c := range []struct {
		name, short string
		data        interface{}
	}{
		{"create-profile", "Create profile", &nameCmd{
			send: func(ctx context.Context, s service.Service, name string) (*entities.Tx, error) {
				return s.CreateProfile(ctx, name)
			},
		}},
		{"set-name", "Rename profile", &nameCmd{
			send: func(ctx context.Context, s service.Service, name string) (*entities.Tx, error) {
				return s.SetProfileName(ctx, name)
			},
		}},
		{"delete-profile", "Delete profile", &noArgsCmd{
			send: func(ctx context.Context, s service.Service) (*entities.Tx, error) {
				return s.DeleteProfile(ctx)
			},
		}},
		{"follow", "Follow user", &addressCmd{
			send: func(ctx context.Context, s service.Service, addr common.Address) (*entities.Tx, error) {
				return s.FollowUser(ctx, addr)
			},
		}},
		{"unfollow", "Unfollow user", &addressCmd{
			send: func(ctx context.Context, s service.Service, addr common.Address) (*entities.Tx, error) {
				return s.UnfollowUser(ctx, addr)
			},
		}},

		{"create-post", "Create post paying the post fee", &createPostCmd{}},
		{"edit-post", "Edit post", &editPostCmd{}},
		{"delete-post", "Delete post", &idCmd{
			send: func(ctx context.Context, s service.Service, id uint64) (*entities.Tx, error) {
				return s.DeletePost(ctx, id)
			},
		}},
		{"like", "Like post", &idCmd{
			send: func(ctx context.Context, s service.Service, id uint64) (*entities.Tx, error) {
				return s.LikePost(ctx, id)
			},
		}},
		{"unlike", "Unlike post", &idCmd{
			send: func(ctx context.Context, s service.Service, id uint64) (*entities.Tx, error) {
				return s.UnlikePost(ctx, id)
			},
		}},
		{"comment", "Comment post", &commentCmd{}},

		{"create-group", "Create group paying the group fee", &createGroupCmd{}},
		{"join-group", "Join group", &idCmd{
			send: func(ctx context.Context, s service.Service, id uint64) (*entities.Tx, error) {
				return s.JoinGroup(ctx, id)
			},
		}},
		{"delete-group", "Delete group", &idCmd{
			send: func(ctx context.Context, s service.Service, id uint64) (*entities.Tx, error) {
				return s.DeleteGroup(ctx, id)
			},
		}},
		{"send-group-message", "Send message to group", &groupMessageCmd{}},
		{"delete-group-message", "Delete own group message", &deleteGroupMessageCmd{}},

		{"send-message", "Send direct message", &directMessageCmd{}},
		{"delete-message", "Delete own direct message", &deleteDirectMessageCmd{}},

		{"add-admin", "Grant admin role", &addressCmd{
			send: func(ctx context.Context, s service.Service, addr common.Address) (*entities.Tx, error) {
				return s.AddAdmin(ctx, addr)
			},
		}},
		{"remove-admin", "Revoke admin role", &addressCmd{
			send: func(ctx context.Context, s service.Service, addr common.Address) (*entities.Tx, error) {
				return s.RemoveAdmin(ctx, addr)
			},
		}},
		{"pause", "Pause contract", &noArgsCmd{
			send: func(ctx context.Context, s service.Service) (*entities.Tx, error) {
				return s.Pause(ctx)
			},
		}},
		{"unpause", "Unpause contract", &noArgsCmd{
			send: func(ctx context.Context, s service.Service) (*entities.Tx, error) {
				return s.Unpause(ctx)
			},
		}},
		{"withdraw", "Withdraw contract balance to owner", &noArgsCmd{
			send: func(ctx context.Context, s service.Service) (*entities.Tx, error) {
				return s.EmergencyWithdraw(ctx)
			},
		}},

		{"status", "Print admin status of the configured account", &statusCmd{}},
	} {
		if _, err := p.AddCommand(c.name, c.short, c.short, c.data); err != nil {
			logrus.WithError(err).Fatalf("failed to add %s command", c.name)
		}
	}
}
