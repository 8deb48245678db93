package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/blink-new/study-saathi-app-dwaa98jh/core/planner"
)

type classFlags struct {
	subject, time, duration, room, day, color string
}

func (f *classFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.subject, "subject", "s", "", "subject, eg. Physics")
	cmd.Flags().StringVar(&f.time, "time", "", "start time, eg. 10:30 AM")
	cmd.Flags().StringVar(&f.duration, "duration", "", "duration, eg. 1h 30m (default 1h)")
	cmd.Flags().StringVarP(&f.room, "room", "r", "", "room or lab")
	cmd.Flags().StringVarP(&f.day, "day", "d", "", "Monday ... Sunday")
	cmd.Flags().StringVar(&f.color, "color", "", "hex color (defaults to the subject's color)")
}

func (cli *commandLine) classCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "class",
		Aliases: []string{"classes", "c"},
		Short:   "Manage the class schedule",
	}

	var addFlags classFlags
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a class",
		Args:  cobra.NoArgs,
		RunE:  func(cmd *cobra.Command, args []string) error { return cli.addClass(addFlags) },
	}
	addFlags.register(addCmd)

	var updateFlags classFlags
	updateCmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a class; omitted flags are left unchanged",
		Args:  cobra.ExactArgs(1),
		RunE:  func(cmd *cobra.Command, args []string) error { return cli.updateClass(args[0], updateFlags) },
	}
	updateFlags.register(updateCmd)

	var day string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List classes",
		Args:  cobra.NoArgs,
		RunE:  func(cmd *cobra.Command, args []string) error { return cli.listClasses(day) },
	}
	listCmd.Flags().StringVarP(&day, "day", "d", "", "only show this day")

	cmd.AddCommand(
		addCmd,
		listCmd,
		updateCmd,
		&cobra.Command{
			Use:   "delete ID",
			Short: "Delete a class",
			Args:  cobra.ExactArgs(1),
			RunE:  func(cmd *cobra.Command, args []string) error { return cli.deleteClass(args[0]) },
		},
		&cobra.Command{
			Use:   "today",
			Short: "Show today's classes",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				cli.printClasses("Today ("+cli.now().Weekday().String()+")", cli.store.ClassesOn(cli.now().Weekday().String()))
				return nil
			},
		},
		&cobra.Command{
			Use:   "week",
			Short: "Show the weekly schedule",
			Args:  cobra.NoArgs,
			RunE:  func(cmd *cobra.Command, args []string) error { return cli.weekSchedule() },
		},
	)
	return cmd
}

func (cli *commandLine) classID(ref string) (string, error) {
	return resolveID(idsOf(cli.store.Classes(), func(c planner.Class) string { return c.ID }), ref, "class")
}

func (cli *commandLine) addClass(f classFlags) error {
	nc := planner.NewClass{
		Subject:  f.subject,
		Time:     f.time,
		Duration: f.duration,
		Room:     f.room,
		Day:      f.day,
		Color:    f.color,
	}
	if err := nc.Validate(cli.validate); err != nil {
		return cli.invalid(err)
	}
	c := cli.store.AddClass(nc.Class())
	cli.printf("%s %s\n", cli.render(okStyle, "added class"), shortID(c.ID))
	cli.printClass(c)
	return nil
}

func (cli *commandLine) updateClass(ref string, f classFlags) error {
	id, err := cli.classID(ref)
	if err != nil {
		return err
	}
	uc := planner.UpdateClass{
		Subject:  f.subject,
		Time:     f.time,
		Duration: f.duration,
		Room:     f.room,
		Day:      f.day,
		Color:    f.color,
	}
	if err := uc.Validate(cli.validate); err != nil {
		return cli.invalid(err)
	}
	c, ok := cli.store.UpdateClass(id, uc.Patch())
	if !ok {
		return errors.Wrapf(errNotFound, "class %s", ref)
	}
	cli.printf("%s %s\n", cli.render(okStyle, "updated class"), shortID(c.ID))
	cli.printClass(c)
	return nil
}

func (cli *commandLine) deleteClass(ref string) error {
	id, err := cli.classID(ref)
	if err != nil {
		return err
	}
	if !cli.store.DeleteClass(id) {
		return errors.Wrapf(errNotFound, "class %s", ref)
	}
	cli.printf("%s %s\n", cli.render(okStyle, "deleted class"), shortID(id))
	return nil
}

func (cli *commandLine) listClasses(day string) error {
	if day == "" {
		cli.printClasses("Classes", cli.store.Classes())
		return nil
	}
	uc := planner.UpdateClass{Day: day}
	if err := uc.Validate(cli.validate); err != nil {
		return cli.invalid(err)
	}
	cli.printClasses(uc.Day, cli.store.ClassesOn(uc.Day))
	return nil
}

func (cli *commandLine) weekSchedule() error {
	for _, ds := range cli.store.WeekSchedule() {
		cli.printClasses(ds.Day, ds.Classes)
	}
	return nil
}

func (cli *commandLine) printClasses(title string, classes []planner.Class) {
	cli.println(cli.render(headStyle, title))
	if len(classes) == 0 {
		cli.println(cli.render(mutedStyle, "  no classes"))
		return
	}
	for _, c := range classes {
		cli.printClass(c)
	}
}

func (cli *commandLine) printClass(c planner.Class) {
	cli.printf("  %s  %-8s  %s  %s  %s  %s\n",
		cli.render(mutedStyle, shortID(c.ID)),
		c.Time,
		cli.subjectLabel(c.Subject, c.Color),
		c.Duration,
		c.Room,
		cli.render(mutedStyle, c.Day),
	)
}
