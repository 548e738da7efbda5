package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"moysekret/internal/domain"
)

func encryptCmd() *cobra.Command {
	var (
		filePath string
		override bool
	)
	cmd := &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt a file into the profile's storage directory, keeping the original",
		RunE: func(cmd *cobra.Command, args []string) error {
			if profileName == "" {
				return fmt.Errorf("--profile required")
			}
			if override && !confirmOverride(
				"This operation will override the existing encrypted file.",
			) {
				fmt.Println("Okay. Safe move.")
				return nil
			}

			pass, err := readPassphrase("Passphrase")
			if err != nil {
				return err
			}

			logger.Debug().Str("profile", profileName).Str("file", filePath).Msg("encrypting file")
			target, err := appCtx.Seal.EncryptFile(
				domain.ProfileName(profileName), pass, filePath, override,
			)
			if err != nil {
				return fmt.Errorf("encryption failed: %w", err)
			}

			fmt.Printf("Encryption successfully done: %s\n", target)
			return nil
		},
	}
	cmd.Flags().StringVarP(&filePath, "file", "f", "", "path to the source file to be encrypted")
	cmd.Flags().BoolVarP(&override, "override", "o", false, "override existing encrypted file")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
