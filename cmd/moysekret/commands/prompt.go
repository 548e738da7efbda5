package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// readPassphrase returns the --passphrase flag value, or prompts on the
// terminal with echo disabled.
func readPassphrase(prompt string) (string, error) {
	if passphrase != "" {
		return passphrase, nil
	}
	fmt.Fprintf(os.Stderr, "%s: ", prompt)
	b, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("read passphrase: %w", err)
	}
	return string(b), nil
}

// readSecret prompts for an arbitrary secret with echo disabled, ignoring
// the --passphrase flag.
func readSecret(prompt string) (string, error) {
	fmt.Fprintf(os.Stderr, "%s: ", prompt)
	b, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("read secret: %w", err)
	}
	return string(b), nil
}

// confirmOverride warns that the operation replaces existing data and asks
// for an explicit yes.
func confirmOverride(warning string) bool {
	fmt.Println(warning)
	fmt.Println("This is unrecoverable, please be sure what you are about to do.")
	fmt.Print("Are you sure about that? [y/N] ")

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}
