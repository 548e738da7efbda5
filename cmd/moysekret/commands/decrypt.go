package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"moysekret/internal/domain"
)

func decryptCmd() *cobra.Command {
	var (
		filePath string
		destDir  string
		override bool
	)
	cmd := &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt a .cz file into a destination directory, keeping the encrypted one",
		RunE: func(cmd *cobra.Command, args []string) error {
			if profileName == "" {
				return fmt.Errorf("--profile required")
			}
			if override && !confirmOverride(
				"This operation will override the existing plain file.",
			) {
				fmt.Println("Okay. Safe move.")
				return nil
			}

			pass, err := readPassphrase("Passphrase")
			if err != nil {
				return err
			}

			logger.Debug().Str("profile", profileName).Str("file", filePath).Str("dest", destDir).Msg("decrypting file")
			target, err := appCtx.Seal.DecryptFile(
				domain.ProfileName(profileName), pass, filePath, destDir, override,
			)
			if err != nil {
				return fmt.Errorf("decryption failed: %w", err)
			}

			fmt.Printf("Decryption successfully done: %s\n", target)
			return nil
		},
	}
	cmd.Flags().StringVarP(&filePath, "file", "f", "", "path to the source file to be decrypted")
	cmd.Flags().StringVarP(&destDir, "dest", "d", ".", "target directory to where save the decrypted file")
	cmd.Flags().BoolVarP(&override, "override", "o", false, "override existing plain file")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
