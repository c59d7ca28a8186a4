package main

import (
	"context"
	"testing"

	"github.com/jessevdk/go-flags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KartikRyzen2006/Web3-Social-Media-sub000/internal/entities"
	"github.com/KartikRyzen2006/Web3-Social-Media-sub000/internal/service"
)

func withOpts(t *testing.T) {
	prev := opts
	t.Cleanup(func() { opts = prev })

	opts.RPC = "http://127.0.0.1:1"
	opts.Contract = "0x1111111111111111111111111111111111111111"
	opts.PrivateKey = ""
}

func TestSend_RequiresKey(t *testing.T) {
	withOpts(t)

	called := false
	err := (&noArgsCmd{send: func(ctx context.Context, s service.Service) (*entities.Tx, error) {
		called = true
		return nil, nil
	}}).Execute(nil)

	require.ErrorIs(t, err, errNoKey)
	assert.False(t, called)
}

func TestStatus_RequiresAccount(t *testing.T) {
	withOpts(t)

	err := (&statusCmd{}).Execute(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--address")

	err = (&statusCmd{Address: "nope"}).Execute(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid address")
}

func TestRegisterCommands(t *testing.T) {
	p := flags.NewParser(&opts, flags.Default)
	registerCommands(p)

	for _, name := range []string{"create-profile", "follow", "create-post", "send-message", "withdraw", "status"} {
		assert.NotNil(t, p.Find(name), name)
	}
}
