package cmd

import (
	"context"
	"fmt"
	"math/big"

	"github.com/snowfork/substrate-go/calls"
	"github.com/snowfork/substrate-go/metadata"
	"github.com/spf13/cobra"
)

var (
	balanceTransferDest      string
	balanceTransferAmount    string
	balanceTransferKeepAlive bool
)

func balanceTransferCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance-transfer",
		Short: "Submit a Balances.transfer extrinsic",
		Args:  cobra.ExactArgs(0),
		RunE:  runBalanceTransfer,
	}

	cmd.Flags().StringVar(&balanceTransferDest, "dest", "", "Recipient account id, hex-encoded")
	cmd.Flags().StringVar(&balanceTransferAmount, "amount", "", "Amount to transfer, in the chain's base unit")
	cmd.Flags().BoolVar(&balanceTransferKeepAlive, "keep-alive", true, "Use transfer_keep_alive instead of transfer_allow_death")
	cmd.MarkFlagRequired("dest")
	cmd.MarkFlagRequired("amount")

	return cmd
}

func runBalanceTransfer(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig(configFile)
	if err != nil {
		return err
	}

	dest, err := parseAccountId(balanceTransferDest)
	if err != nil {
		return err
	}

	amount, ok := new(big.Int).SetString(balanceTransferAmount, 10)
	if !ok {
		return fmt.Errorf("cmd: invalid amount %q", balanceTransferAmount)
	}

	kind := calls.AllowDeath
	if balanceTransferKeepAlive {
		kind = calls.KeepAlive
	}

	return buildAndSubmit(context.Background(), cfg, func(md *metadata.Metadata) ([]byte, error) {
		return calls.BalancesTransfer(md, kind, calls.Recipient(dest), amount)
	})
}
