package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/fitness-roadmap/internal/config"
	"github.com/jonathan/fitness-roadmap/internal/server"
)

var devTokenCmd = &cobra.Command{
	Use:   "dev-token",
	Short: "Issue a bearer token for a member",
	Long:  "Signs a member token with JWT_SECRET for calling the API during development. Tokens expire after JWT_EXPIRATION_HOURS.",
	RunE:  runDevToken,
}

var devTokenMemberID string

func init() {
	devTokenCmd.Flags().StringVar(&devTokenMemberID, "member-id", "", "Member ID (required)")
	if err := devTokenCmd.MarkFlagRequired("member-id"); err != nil {
		panic(fmt.Sprintf("failed to mark member-id flag as required: %v", err))
	}
	rootCmd.AddCommand(devTokenCmd)
}

func runDevToken(cmd *cobra.Command, _ []string) error {
	memberID, err := parseMemberID(devTokenMemberID)
	if err != nil {
		return err
	}

	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return fmt.Errorf("failed to create JWT config: %w", err)
	}

	token, err := server.NewJWTService(jwtConfig).GenerateToken(memberID)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
	return err
}
