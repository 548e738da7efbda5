package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"moysekret/internal/domain"
)

func fingerprintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fingerprint",
		Short: "Print the profile's public key fingerprint",
		RunE: func(cmd *cobra.Command, args []string) error {
			if profileName == "" {
				return fmt.Errorf("--profile required")
			}
			fp, err := appCtx.Keyring.FingerprintProfile(domain.ProfileName(profileName))
			if err != nil {
				return err
			}
			fmt.Printf("Fingerprint: %s\n", fp)
			return nil
		},
	}
}
