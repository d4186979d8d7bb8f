package cmd

import (
	"context"
	"fmt"
	"math/big"

	"github.com/snowfork/substrate-go/calls"
	"github.com/snowfork/substrate-go/metadata"
	"github.com/snowfork/substrate-go/xcm"
	"github.com/spf13/cobra"
)

var (
	xcmTeleportParaId      uint32
	xcmTeleportBeneficiary string
	xcmTeleportAmount      string
)

func xcmTeleportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "xcm-teleport",
		Short: "Submit a PolkadotXcm.limited_teleport_assets extrinsic to a sibling parachain",
		Args:  cobra.ExactArgs(0),
		RunE:  runXcmTeleport,
	}

	cmd.Flags().Uint32Var(&xcmTeleportParaId, "dest-parachain", 0, "Destination parachain id")
	cmd.Flags().StringVar(&xcmTeleportBeneficiary, "beneficiary", "", "Beneficiary account id on the destination chain, hex-encoded")
	cmd.Flags().StringVar(&xcmTeleportAmount, "amount", "", "Native asset amount to teleport")
	cmd.MarkFlagRequired("dest-parachain")
	cmd.MarkFlagRequired("beneficiary")
	cmd.MarkFlagRequired("amount")

	return cmd
}

func runXcmTeleport(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig(configFile)
	if err != nil {
		return err
	}

	beneficiary, err := parseAccountId(xcmTeleportBeneficiary)
	if err != nil {
		return err
	}

	amount, ok := new(big.Int).SetString(xcmTeleportAmount, 10)
	if !ok {
		return fmt.Errorf("cmd: invalid amount %q", xcmTeleportAmount)
	}

	dest := xcm.VersionedLocation{Location: xcm.Location{
		Parents:  1,
		Interior: xcm.X(xcm.Parachain(xcmTeleportParaId)),
	}}
	beneficiaryLoc := xcm.VersionedLocation{Location: xcm.Location{
		Parents:  0,
		Interior: xcm.X(xcm.AccountId32(nil, beneficiary)),
	}}
	assets := xcm.VersionedAssets{Assets: []xcm.Asset{{
		Id:  xcm.Location{Parents: 1, Interior: xcm.Here()},
		Fun: xcm.Fungible(amount),
	}}}

	return buildAndSubmit(context.Background(), cfg, func(md *metadata.Metadata) ([]byte, error) {
		return calls.XcmTransfer(md, xcm.LimitedTeleportAssets, dest, beneficiaryLoc, assets, 0, xcm.Unlimited())
	})
}
