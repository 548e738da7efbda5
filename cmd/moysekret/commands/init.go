package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"moysekret/internal/domain"
)

func initCmd() *cobra.Command {
	var (
		storageDir string
		override   bool
	)
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a profile with fresh encryption and signing keys",
		RunE: func(cmd *cobra.Command, args []string) error {
			if profileName == "" {
				return fmt.Errorf("--profile required")
			}
			if override && !confirmOverride(
				"This operation will override any key you have got with this profile.",
			) {
				fmt.Println("Okay. Safe move.")
				return nil
			}

			pass, err := readPassphrase("Passphrase for new profile")
			if err != nil {
				return err
			}

			logger.Debug().Str("profile", profileName).Str("dir", storageDir).Msg("initialising profile")
			profile, fp, err := appCtx.Keyring.InitProfile(
				domain.ProfileName(profileName), storageDir, pass, override,
			)
			if err != nil {
				return fmt.Errorf("initialization failed: %w", err)
			}

			fmt.Printf("Key pair created with success at %s directory\n", profile.Storage)
			fmt.Printf("Fingerprint: %s\n", fp)
			return nil
		},
	}
	cmd.Flags().StringVarP(&storageDir, "dir", "d", "", "target directory where to store keys and encrypted files")
	cmd.Flags().BoolVarP(&override, "override", "o", false, "override existing profile and keys")
	_ = cmd.MarkFlagRequired("dir")
	return cmd
}
