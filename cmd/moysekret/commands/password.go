package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"moysekret/internal/password"
)

func passwordCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "password",
		Short: "Hash and verify passwords with Argon2id",
	}
	cmd.AddCommand(passwordHashCmd(), passwordVerifyCmd())
	return cmd
}

func passwordHashCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash",
		Short: "Print an Argon2id hash of a password",
		RunE: func(cmd *cobra.Command, args []string) error {
			pw, err := readSecret("Password to hash")
			if err != nil {
				return err
			}
			encoded, err := appCtx.Passwords.HashPassword(pw)
			if err != nil {
				return err
			}
			fmt.Println(encoded)
			return nil
		},
	}
}

func passwordVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <hash>",
		Short: "Check a password against an Argon2id hash",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pw, err := readSecret("Password to verify")
			if err != nil {
				return err
			}
			if err := appCtx.Passwords.VerifyPassword(pw, args[0]); err != nil {
				if errors.Is(err, password.ErrMismatch) {
					return fmt.Errorf("password does not match")
				}
				return err
			}
			fmt.Println("Password OK")
			return nil
		},
	}
}
