package cmd

import (
	"context"

	"github.com/snowfork/substrate-go/calls"
	"github.com/snowfork/substrate-go/metadata"
	"github.com/snowfork/substrate-go/scale"
	"github.com/spf13/cobra"
)

var remarkPayload string

func remarkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remark",
		Short: "Submit a System.remark extrinsic",
		Args:  cobra.ExactArgs(0),
		RunE:  runRemark,
	}

	cmd.Flags().StringVar(&remarkPayload, "payload", "0x", "Hex-encoded remark payload")

	return cmd
}

func runRemark(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig(configFile)
	if err != nil {
		return err
	}

	payload, err := scale.HexDecode(remarkPayload)
	if err != nil {
		return err
	}

	return buildAndSubmit(context.Background(), cfg, func(md *metadata.Metadata) ([]byte, error) {
		return calls.SystemRemark(md, payload)
	})
}
