package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bytorbix/agendo/internal/google"
)

func newAuthCmd() *cobra.Command {
	var account string

	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Authorize Google Calendar access for an account",
		Long: `Run the Google OAuth flow for a named account.

Prints the authorization URL, waits for the authorization code on stdin, and
stores the resulting token in the user cache directory. Tokens are refreshed
automatically afterwards; re-run this command only if access was revoked.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if google.HasTokenForAccount(account) {
				fmt.Printf("Account %q is already authorized. Re-authorizing replaces the stored token.\n\n", account)
			}

			fmt.Printf("Visit this URL in your browser and grant access:\n\n  %s\n\n", google.GetAuthURLForAccount(account))
			fmt.Print("Enter the authorization code: ")

			reader := bufio.NewReader(os.Stdin)
			code, err := reader.ReadString('\n')
			if err != nil {
				return fmt.Errorf("failed to read authorization code: %w", err)
			}
			code = strings.TrimSpace(code)
			if code == "" {
				return fmt.Errorf("no authorization code provided")
			}

			email, err := google.SaveTokenForAccount(cmd.Context(), account, code)
			if err != nil {
				return fmt.Errorf("failed to save token for account %s: %w", account, err)
			}

			if email != "" {
				fmt.Printf("Token saved for account %q (%s).\n", account, email)
			} else {
				fmt.Printf("Token saved for account %q.\n", account)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&account, "account", "default", "Google account name to authorize")
	return cmd
}
