package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/fitness-roadmap/internal/roadmap"
)

var personalizationCmd = &cobra.Command{
	Use:   "personalization",
	Short: "Turn roadmap personalization on or off for a member",
	Long:  "While personalization is off, roadmaps carry health metrics only: no weekly structure, objective or workouts. Repeating the current setting is a no-op.",
}

var personalizationEnableCmd = &cobra.Command{
	Use:   "enable",
	Short: "Enable personalization",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runSetPersonalization(cmd, true)
	},
}

var personalizationDisableCmd = &cobra.Command{
	Use:   "disable",
	Short: "Disable personalization",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runSetPersonalization(cmd, false)
	},
}

var (
	personalizationProfilePath string
	personalizationMemberID    string
)

func init() {
	for _, c := range []*cobra.Command{personalizationEnableCmd, personalizationDisableCmd} {
		c.Flags().StringVarP(&personalizationProfilePath, "profile", "p", "", "Profile JSON file to update in place")
		c.Flags().StringVar(&personalizationMemberID, "member-id", "", "Stored member ID")
	}

	personalizationCmd.AddCommand(personalizationEnableCmd, personalizationDisableCmd)
	rootCmd.AddCommand(personalizationCmd)
}

func personalizationState(enabled bool) string {
	if enabled {
		return "enabled"
	}
	return "disabled"
}

func runSetPersonalization(cmd *cobra.Command, enabled bool) error {
	target := memberTarget{profilePath: personalizationProfilePath, memberID: personalizationMemberID}
	if err := target.validate(); err != nil {
		return err
	}

	if target.profilePath != "" {
		profile, err := readProfile(target.profilePath)
		if err != nil {
			return err
		}
		if err := roadmap.SetPersonalizationEnabled(profile, enabled); err != nil {
			return err
		}
		if err := writeProfile(target.profilePath, profile); err != nil {
			return err
		}
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "Personalization %s\n", personalizationState(enabled))
		return err
	}

	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	memberID, err := parseMemberID(target.memberID)
	if err != nil {
		return err
	}

	ctx := context.Background()
	return withService(ctx, cmd, cfg, func(svc *roadmap.Service) error {
		if err := svc.SetPersonalizationEnabled(ctx, memberID, enabled); err != nil {
			return err
		}
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "Personalization %s\n", personalizationState(enabled))
		return err
	})
}
