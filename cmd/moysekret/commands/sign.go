package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"moysekret/internal/domain"
)

func signCmd() *cobra.Command {
	var (
		filePath string
		override bool
	)
	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Write a detached signature for a file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if profileName == "" {
				return fmt.Errorf("--profile required")
			}

			pass, err := readPassphrase("Passphrase")
			if err != nil {
				return err
			}

			logger.Debug().Str("profile", profileName).Str("file", filePath).Msg("signing file")
			target, err := appCtx.Signatures.SignFile(
				domain.ProfileName(profileName), pass, filePath, override,
			)
			if err != nil {
				return fmt.Errorf("signing failed: %w", err)
			}

			fmt.Printf("Signature written to %s\n", target)
			return nil
		},
	}
	cmd.Flags().StringVarP(&filePath, "file", "f", "", "path to the file to be signed")
	cmd.Flags().BoolVarP(&override, "override", "o", false, "override existing signature file")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
