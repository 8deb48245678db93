package main

import (
	"github.com/spf13/cobra"

	"github.com/blink-new/study-saathi-app-dwaa98jh/core/planner"
)

func (cli *commandLine) profileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or edit the student profile",
		Args:  cobra.NoArgs,
		RunE:  func(cmd *cobra.Command, args []string) error { return cli.showProfile() },
	}

	var (
		form          planner.EditProfile
		hours, streak int
	)
	editCmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit the profile; omitted flags are left unchanged",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("study-hours") {
				form.StudyHours = &hours
			}
			if cmd.Flags().Changed("streak") {
				form.CurrentStreak = &streak
			}
			return cli.editProfile(form)
		},
	}
	editCmd.Flags().StringVar(&form.Name, "name", "", "student name")
	editCmd.Flags().StringVar(&form.Class, "class", "", "class or grade, eg. Class 12, Science Stream")
	editCmd.Flags().StringVar(&form.School, "school", "", "school name")
	editCmd.Flags().IntVar(&hours, "study-hours", 0, "total study hours")
	editCmd.Flags().IntVar(&streak, "streak", 0, "current study streak in days")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Show the profile",
			Args:  cobra.NoArgs,
			RunE:  func(cmd *cobra.Command, args []string) error { return cli.showProfile() },
		},
		editCmd,
	)
	return cmd
}

func (cli *commandLine) editProfile(form planner.EditProfile) error {
	if err := form.Validate(cli.validate); err != nil {
		return cli.invalid(err)
	}
	cli.store.UpdateProfile(form.Patch())
	cli.println(cli.render(okStyle, "profile updated"))
	return cli.showProfile()
}

func (cli *commandLine) showProfile() error {
	p := cli.store.Profile()
	cli.println(cli.render(titleStyle, p.Name))
	cli.printf("  %s\n", p.Class)
	cli.printf("  %s\n", p.School)
	cli.printf("  study hours: %d  streak: %d day(s)\n", p.StudyHours, p.CurrentStreak)
	return nil
}
