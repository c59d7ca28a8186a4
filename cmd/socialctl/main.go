package main

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"os"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/KartikRyzen2006/Web3-Social-Media-sub000/internal/chain"
	"github.com/KartikRyzen2006/Web3-Social-Media-sub000/internal/chain/ethereum"
	"github.com/KartikRyzen2006/Web3-Social-Media-sub000/internal/entities"
	"github.com/KartikRyzen2006/Web3-Social-Media-sub000/internal/service"
	"github.com/KartikRyzen2006/Web3-Social-Media-sub000/internal/service/impl"
)

// nolint:lll,gochecknoglobals
var opts struct {
	RPC          string        `long:"chain.rpc" env:"NEXT_PUBLIC_RPC_URL" default:"http://localhost:8545" description:"ethereum json-rpc endpoint"`
	ChainID      int64         `long:"chain.id" env:"NEXT_PUBLIC_CHAIN_ID" default:"1337" description:"chain id used for signing"`
	Contract     string        `long:"chain.contract" env:"NEXT_PUBLIC_CONTRACT_ADDRESS" required:"yes" description:"social contract address"`
	PrivateKey   string        `long:"chain.private-key" env:"PRIVATE_KEY" description:"hex private key signing transactions, required by commands sending transactions"`
	Timeout      time.Duration `long:"chain.timeout" env:"CHAIN_TIMEOUT" default:"15s" description:"timeout for requests to the node"`
	PollInterval time.Duration `long:"tx.poll-interval" env:"TX_POLL_INTERVAL" default:"2s" description:"interval between receipt checks"`
	Wait         time.Duration `long:"tx.timeout" env:"TX_TIMEOUT" default:"5m" description:"how long to wait for the transaction to be mined"`
	PostFee      string        `long:"fees.post" env:"POST_FEE" default:"100000000000000" description:"wei attached to createPost"`
	GroupFee     string        `long:"fees.group" env:"GROUP_FEE" default:"1000000000000000" description:"wei attached to createGroup"`
	LogLevel     string        `long:"log.level" env:"LOG_LEVEL" default:"info" description:"Log level" choice:"debug" choice:"info" choice:"warning" choice:"error"`
}

var (
	errTimeout = errors.New("transaction was not mined in time")
	errNoKey   = errors.New("--chain.private-key is required to send transactions")
)

type sender func(ctx context.Context, s service.Service) (*entities.Tx, error)

// send signs transaction with configured key and waits until it is mined.
func send(f sender) error {
	if opts.PrivateKey == "" {
		return errNoKey
	}

	fees, err := getFees()
	if err != nil {
		return err
	}

	ctx := context.Background()

	b, err := newBackend(ctx)
	if err != nil {
		return err
	}
	defer b.Close()

	tx, err := f(ctx, impl.New(b, nil, fees))
	if err != nil {
		if txErr := service.ParseError(err); txErr != nil && !errors.Is(err, service.ErrInvalidArgument) {
			return fmt.Errorf("%s: %s", txErr.Kind, txErr.Message)
		}
		return err
	}

	l := logrus.WithFields(logrus.Fields{
		"hash":   tx.Hash.Hex(),
		"method": tx.Method,
		"from":   tx.From.Hex(),
	})
	l.Info("transaction submitted")

	block, err := wait(ctx, b, tx.Hash)
	if err != nil {
		return err
	}

	l.WithField("block", block).Info("transaction confirmed")
	return nil
}

func newBackend(ctx context.Context) (*ethereum.Backend, error) {
	b, err := ethereum.New(ctx, ethereum.Options{
		RPC:        opts.RPC,
		Contract:   common.HexToAddress(opts.Contract),
		ChainID:    opts.ChainID,
		PrivateKey: opts.PrivateKey,
		Timeout:    opts.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create ethereum backend: %w", err)
	}
	return b, nil
}

func wait(ctx context.Context, b chain.Backend, hash common.Hash) (uint64, error) {
	ctx, cancel := context.WithTimeout(ctx, opts.Wait)
	defer cancel()

	ticker := time.NewTicker(opts.PollInterval)
	defer ticker.Stop()

	for {
		r, err := b.Receipt(ctx, hash)
		switch {
		case err == nil:
			if r.Status != 1 {
				return 0, fmt.Errorf("transaction reverted in block %d", r.BlockNumber.Uint64())
			}
			return r.BlockNumber.Uint64(), nil
		case errors.Is(err, chain.ErrPending), errors.Is(err, chain.ErrUnknownTx):
			logrus.WithField("hash", hash.Hex()).Debug("waiting for receipt")
		default:
			logrus.WithError(err).Warn("failed to get receipt")
		}

		select {
		case <-ctx.Done():
			return 0, errTimeout
		case <-ticker.C:
		}
	}
}

func getFees() (impl.Fees, error) {
	fees := impl.DefaultFees()

	post, ok := new(big.Int).SetString(opts.PostFee, 10)
	if !ok {
		return fees, fmt.Errorf("invalid post fee %q", opts.PostFee)
	}
	group, ok := new(big.Int).SetString(opts.GroupFee, 10)
	if !ok {
		return fees, fmt.Errorf("invalid group fee %q", opts.GroupFee)
	}

	fees.Post, fees.Group = post, group
	return fees, nil
}

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logrus.WithError(err).Fatal("failed to load .env")
	}

	parser := flags.NewParser(&opts, flags.Default)
	parser.ShortDescription = "Social contract operator tool"
	parser.LongDescription = "Sends social contract transactions signed by the configured key and waits for them to be mined"
	parser.CommandHandler = func(cmd flags.Commander, args []string) error {
		lvl, _ := logrus.ParseLevel(opts.LogLevel) // err will always be nil
		logrus.SetLevel(lvl)

		if !common.IsHexAddress(opts.Contract) {
			return fmt.Errorf("invalid contract address %q", opts.Contract)
		}

		return cmd.Execute(args)
	}

	registerCommands(parser)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		logrus.WithError(err).Fatal("command failed")
	}
}
