package commands

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"moysekret/internal/app"
)

var (
	home        string
	profileName string
	passphrase  string
	verbose     bool

	appCtx *app.Wire
	logger zerolog.Logger
)

func Execute() error {
	root := &cobra.Command{
		Use:   "moysekret",
		Short: "You know, that is kind of... secret",
		Long: "A profile-based cryptographic toolkit on top of NaCl: file encryption " +
			"and decryption, detached signatures, and password hashing.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
				With().Timestamp().Logger().Level(zerolog.WarnLevel)
			if verbose {
				logger = logger.Level(zerolog.DebugLevel)
			}

			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = dir
			}

			var err error
			appCtx, err = app.NewWire(app.Config{Home: home})
			return err
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "directory holding profile files (default $HOME)")
	root.PersistentFlags().StringVarP(&profileName, "profile", "p", "", "name of the profile")
	root.PersistentFlags().StringVar(&passphrase, "passphrase", "", "passphrase protecting the profile keys (prompted when omitted)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		initCmd(),
		encryptCmd(),
		decryptCmd(),
		signCmd(),
		verifyCmd(),
		fingerprintCmd(),
		passwordCmd(),
	)
	return root.Execute()
}
