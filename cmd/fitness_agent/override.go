package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/fitness-roadmap/internal/roadmap"
	"github.com/jonathan/fitness-roadmap/internal/types"
)

var overrideCmd = &cobra.Command{
	Use:   "override",
	Short: "Manage a member's manual weekly structure",
}

var overrideSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Replace the planned split with a manual weekly structure",
	Long:  "Stores a manual weekly structure. It must have exactly one day label per training day; labels are matched ignoring case, dashes and underscores. Nothing is stored when validation fails.",
	RunE:  runOverrideSet,
}

var overrideClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the manual weekly structure",
	RunE:  runOverrideClear,
}

var (
	overrideProfilePath string
	overrideMemberID    string
	overrideStructure   string
)

func init() {
	for _, c := range []*cobra.Command{overrideSetCmd, overrideClearCmd} {
		c.Flags().StringVarP(&overrideProfilePath, "profile", "p", "", "Profile JSON file to update in place")
		c.Flags().StringVar(&overrideMemberID, "member-id", "", "Stored member ID")
	}
	overrideSetCmd.Flags().StringVarP(&overrideStructure, "structure", "s", "", `Comma-separated day labels, e.g. "Push,Pull,Legs" (required)`)

	if err := overrideSetCmd.MarkFlagRequired("structure"); err != nil {
		panic(fmt.Sprintf("failed to mark structure flag as required: %v", err))
	}

	overrideCmd.AddCommand(overrideSetCmd, overrideClearCmd)
	rootCmd.AddCommand(overrideCmd)
}

// parseStructure splits a comma-separated label list. Labels are validated later.
func parseStructure(value string) types.WeeklyStructure {
	parts := strings.Split(value, ",")
	structure := make(types.WeeklyStructure, 0, len(parts))
	for _, part := range parts {
		if label := strings.TrimSpace(part); label != "" {
			structure = append(structure, types.DayLabel(label))
		}
	}
	return structure
}

func runOverrideSet(cmd *cobra.Command, _ []string) error {
	target := memberTarget{profilePath: overrideProfilePath, memberID: overrideMemberID}
	if err := target.validate(); err != nil {
		return err
	}
	structure := parseStructure(overrideStructure)

	if target.profilePath != "" {
		profile, err := readProfile(target.profilePath)
		if err != nil {
			return err
		}
		if err := roadmap.SetWeeklyStructureOverride(profile, structure); err != nil {
			return err
		}
		if err := writeProfile(target.profilePath, profile); err != nil {
			return err
		}
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "Weekly structure set: %s\n", profile.WeeklyStructureOverride)
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
		stored, err := svc.SetWeeklyStructureOverride(ctx, memberID, structure)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "Weekly structure set: %s\n", stored)
		return err
	})
}

func runOverrideClear(cmd *cobra.Command, _ []string) error {
	target := memberTarget{profilePath: overrideProfilePath, memberID: overrideMemberID}
	if err := target.validate(); err != nil {
		return err
	}

	if target.profilePath != "" {
		profile, err := readProfile(target.profilePath)
		if err != nil {
			return err
		}
		if err := roadmap.ClearOverride(profile); err != nil {
			return err
		}
		if err := writeProfile(target.profilePath, profile); err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), "Weekly structure override cleared")
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
		if err := svc.ClearOverride(ctx, memberID); err != nil {
			return err
		}
		_, err := fmt.Fprintln(cmd.OutOrStdout(), "Weekly structure override cleared")
		return err
	})
}
