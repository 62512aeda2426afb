// Package token issues access tokens for operators and local testing.
package token

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"bulletin/internal/infrastructure/auth"
	"bulletin/internal/infrastructure/config"
	"bulletin/internal/shared/authorization"
)

var (
	env    string
	userID uint
	role   string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Access token tools",
	}

	issue := &cobra.Command{
		Use:   "issue",
		Short: "Issue a signed access token",
		Long: `Sign an access token with the configured JWT secret.
When stdout is not a terminal only the raw token is printed, so the output can be captured in scripts.`,
		RunE: runIssue,
	}

	issue.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	issue.Flags().UintVar(&userID, "user-id", 0, "Subject user id (required)")
	issue.Flags().StringVar(&role, "role", authorization.RoleUser.String(), "Role claim (user, admin)")
	_ = issue.MarkFlagRequired("user-id")

	cmd.AddCommand(issue)
	return cmd
}

func runIssue(cmd *cobra.Command, args []string) error {
	r := authorization.UserRole(role)
	if !r.IsValid() {
		return fmt.Errorf("unknown role %q", role)
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	svc := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.Issuer, cfg.Auth.JWT.AccessExpMinutes)
	tok, expiresAt, err := svc.Generate(userID, r)
	if err != nil {
		return fmt.Errorf("failed to sign token: %w", err)
	}

	out := cmd.OutOrStdout()
	return printToken(out, tok, expiresAt, userID, r, isTerminal(out))
}

func printToken(w io.Writer, tok string, expiresAt time.Time, uid uint, r authorization.UserRole, pretty bool) error {
	if !pretty {
		_, err := fmt.Fprintln(w, tok)
		return err
	}
	_, err := fmt.Fprintf(w, "Authorization: Bearer %s\nexpires %s (user %d, role %s)\n",
		tok, expiresAt.UTC().Format(time.RFC3339), uid, r)
	return err
}

func isTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}
