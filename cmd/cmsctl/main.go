// Command cmsctl runs one-off maintenance against the CMS database: schema
// migration, admin-panel account creation and settings seeding.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/ahmetcoskunkizilkaya/consulting-cms/internal/config"
	"github.com/ahmetcoskunkizilkaya/consulting-cms/internal/database"
	"github.com/ahmetcoskunkizilkaya/consulting-cms/internal/dto"
	"github.com/ahmetcoskunkizilkaya/consulting-cms/internal/modules/all"
	"github.com/ahmetcoskunkizilkaya/consulting-cms/internal/modules/sitesettings"
	"github.com/ahmetcoskunkizilkaya/consulting-cms/internal/services"
)

func main() {
	open := func() (*gorm.DB, error) {
		if err := database.Connect(config.Load()); err != nil {
			return nil, err
		}
		return database.DB, nil
	}
	if err := newRootCmd(open).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(open func() (*gorm.DB, error)) *cobra.Command {
	var db *gorm.DB

	root := &cobra.Command{
		Use:           "cmsctl",
		Short:         "Consulting CMS maintenance commands",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			db, err = open()
			if err != nil {
				return fmt.Errorf("connect database: %w", err)
			}
			return nil
		},
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "migrate",
			Short: "Create or update every table",
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := database.MigrateShared(db); err != nil {
					return fmt.Errorf("shared migration: %w", err)
				}
				if err := database.MigrateModels(db, all.Models()); err != nil {
					return fmt.Errorf("module migration: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
				return nil
			},
		},
		newCreateUserCmd(func() *gorm.DB { return db }),
		&cobra.Command{
			Use:   "seed-settings",
			Short: "Write the default site settings unless they already exist",
			RunE: func(cmd *cobra.Command, args []string) error {
				s, err := sitesettings.NewService(db).Seed()
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "site settings: header portfolio=%t services portfolio=%t careers=%t team=%t\n",
					s.ShowPortfolioInHeader, s.ShowPortfolioInServices, s.ShowCareersInHeader, s.ShowTeamInAbout)
				return nil
			},
		},
	)
	return root
}

func newCreateUserCmd(db func() *gorm.DB) *cobra.Command {
	var req dto.CreateUserRequest

	cmd := &cobra.Command{
		Use:   "create-user",
		Short: "Create an admin panel account",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := services.NewUserService(db()).Create(&req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created %s (%s) id=%s\n", user.Email, user.Role, user.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&req.Email, "email", "", "login email (required)")
	cmd.Flags().StringVar(&req.Password, "password", "", "password, at least 8 characters (required)")
	cmd.Flags().StringVar(&req.Role, "role", "admin", "admin, editor or viewer")
	cmd.Flags().StringVar(&req.DisplayName, "name", "", "display name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}
