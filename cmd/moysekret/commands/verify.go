package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"moysekret/internal/domain"
)

func verifyCmd() *cobra.Command {
	var (
		filePath string
		sigPath  string
	)
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check a detached signature against the profile's public key",
		RunE: func(cmd *cobra.Command, args []string) error {
			if profileName == "" {
				return fmt.Errorf("--profile required")
			}

			logger.Debug().Str("profile", profileName).Str("file", filePath).Msg("verifying signature")
			if err := appCtx.Signatures.VerifyFile(
				domain.ProfileName(profileName), filePath, sigPath,
			); err != nil {
				return fmt.Errorf("verification failed: %w", err)
			}

			fmt.Println("Signature OK")
			return nil
		},
	}
	cmd.Flags().StringVarP(&filePath, "file", "f", "", "path to the signed file")
	cmd.Flags().StringVarP(&sigPath, "sig", "s", "", "path to the signature file (default <file>.sig)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
