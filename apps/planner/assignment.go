package main

import (
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/blink-new/study-saathi-app-dwaa98jh/core"
	"github.com/blink-new/study-saathi-app-dwaa98jh/core/planner"
)

// accepted --due layouts; a date without time is due at the end of that day
var dueLayouts = []string{"2006-01-02 15:04", "2006-01-02T15:04", "2006-01-02"}

type assignmentFlags struct {
	title, subject, due, dueLabel, priority, status, description string

	clearDescription bool // update only
}

func (f *assignmentFlags) register(cmd *cobra.Command, withStatus bool) {
	cmd.Flags().StringVarP(&f.title, "title", "t", "", "assignment title")
	cmd.Flags().StringVarP(&f.subject, "subject", "s", "", "subject, eg. Mathematics")
	cmd.Flags().StringVarP(&f.due, "due", "d", "", "due date: YYYY-MM-DD [HH:MM]")
	cmd.Flags().StringVar(&f.dueLabel, "due-label", "", "display label of the due date (derived from --due when empty)")
	cmd.Flags().StringVarP(&f.priority, "priority", "p", "", "high, medium or low")
	cmd.Flags().StringVar(&f.description, "description", "", "free text")
	if withStatus {
		cmd.Flags().StringVar(&f.status, "status", "", "pending, in-progress or completed")
		cmd.Flags().BoolVar(&f.clearDescription, "clear-description", false, "remove the description")
	}
}

func (cli *commandLine) assignmentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "assignment",
		Aliases: []string{"assignments", "a"},
		Short:   "Manage assignments",
	}

	var addFlags assignmentFlags
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add an assignment",
		Args:  cobra.NoArgs,
		RunE:  func(cmd *cobra.Command, args []string) error { return cli.addAssignment(addFlags) },
	}
	addFlags.register(addCmd, false)

	var updateFlags assignmentFlags
	updateCmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update an assignment; omitted flags are left unchanged",
		Args:  cobra.ExactArgs(1),
		RunE:  func(cmd *cobra.Command, args []string) error { return cli.updateAssignment(args[0], updateFlags) },
	}
	updateFlags.register(updateCmd, true)

	var statuses []string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List assignments",
		Args:  cobra.NoArgs,
		RunE:  func(cmd *cobra.Command, args []string) error { return cli.listAssignments(statuses) },
	}
	listCmd.Flags().StringSliceVar(&statuses, "status", nil, "only show these statuses")

	var limit int
	upcomingCmd := &cobra.Command{
		Use:   "upcoming",
		Short: "List incomplete assignments, earliest due first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("limit") {
				limit = cli.conf.Planner.UpcomingLimit
			}
			return cli.upcomingAssignments(limit)
		},
	}
	upcomingCmd.Flags().IntVarP(&limit, "limit", "n", planner.DefaultLimit, "maximum number of assignments")

	cmd.AddCommand(
		addCmd,
		listCmd,
		updateCmd,
		&cobra.Command{
			Use:   "delete ID",
			Short: "Delete an assignment",
			Args:  cobra.ExactArgs(1),
			RunE:  func(cmd *cobra.Command, args []string) error { return cli.deleteAssignment(args[0]) },
		},
		&cobra.Command{
			Use:   "cycle ID",
			Short: "Advance the status: pending, in-progress, completed, pending...",
			Args:  cobra.ExactArgs(1),
			RunE:  func(cmd *cobra.Command, args []string) error { return cli.cycleAssignment(args[0]) },
		},
		upcomingCmd,
	)
	return cmd
}

// parseDue parses s in loc. It returns the zero time for an empty s.
func parseDue(s string, loc *time.Location) (time.Time, error) {
	s = core.CleanString(s)
	if s == "" {
		return time.Time{}, nil
	}
	for _, layout := range dueLayouts {
		t, err := time.ParseInLocation(layout, s, loc)
		if err != nil {
			continue
		}
		if layout == "2006-01-02" {
			t = t.Add(24*time.Hour - time.Minute)
		}
		return t, nil
	}
	return time.Time{}, core.NewValidationError(nil, core.FieldError{
		Field: "dueDateTime",
		Error: "must be YYYY-MM-DD or YYYY-MM-DD HH:MM",
	})
}

func (cli *commandLine) assignmentID(ref string) (string, error) {
	return resolveID(idsOf(cli.store.Assignments(), func(a planner.Assignment) string { return a.ID }), ref, "assignment")
}

func (cli *commandLine) addAssignment(f assignmentFlags) error {
	now := cli.now()
	due, err := parseDue(f.due, now.Location())
	if err != nil {
		return cli.invalid(err)
	}
	na := planner.NewAssignment{
		Title:       f.title,
		Subject:     f.subject,
		DueDate:     f.dueLabel,
		DueDateTime: due,
		Priority:    planner.Priority(f.priority),
		Description: f.description,
	}
	if err := na.Validate(cli.validate, now); err != nil {
		return cli.invalid(err)
	}
	a := cli.store.AddAssignment(na.Assignment())
	cli.printf("%s %s\n", cli.render(okStyle, "added assignment"), shortID(a.ID))
	cli.printAssignment(a)
	return nil
}

func (cli *commandLine) updateAssignment(ref string, f assignmentFlags) error {
	id, err := cli.assignmentID(ref)
	if err != nil {
		return err
	}
	now := cli.now()
	due, err := parseDue(f.due, now.Location())
	if err != nil {
		return cli.invalid(err)
	}
	ua := planner.UpdateAssignment{
		Title:            f.title,
		Subject:          f.subject,
		DueDate:          f.dueLabel,
		DueDateTime:      due,
		Priority:         planner.Priority(f.priority),
		Status:           planner.Status(f.status),
		Description:      f.description,
		ClearDescription: f.clearDescription,
	}
	if err := ua.Validate(cli.validate, now); err != nil {
		return cli.invalid(err)
	}
	a, ok := cli.store.UpdateAssignment(id, ua.Patch())
	if !ok {
		return errors.Wrapf(errNotFound, "assignment %s", ref)
	}
	cli.printf("%s %s\n", cli.render(okStyle, "updated assignment"), shortID(a.ID))
	cli.printAssignment(a)
	return nil
}

func (cli *commandLine) deleteAssignment(ref string) error {
	id, err := cli.assignmentID(ref)
	if err != nil {
		return err
	}
	if !cli.store.DeleteAssignment(id) {
		return errors.Wrapf(errNotFound, "assignment %s", ref)
	}
	cli.printf("%s %s\n", cli.render(okStyle, "deleted assignment"), shortID(id))
	return nil
}

func (cli *commandLine) cycleAssignment(ref string) error {
	id, err := cli.assignmentID(ref)
	if err != nil {
		return err
	}
	a, ok := cli.store.CycleAssignmentStatus(id)
	if !ok {
		return errors.Wrapf(errNotFound, "assignment %s", ref)
	}
	cli.printf("%s is now %s (%d%%)\n", a.Title, cli.statusLabel(a.Status), a.Progress())
	return nil
}

func (cli *commandLine) listAssignments(statuses []string) error {
	filter := make([]planner.Status, 0, len(statuses))
	for _, s := range statuses {
		status := planner.Status(core.CleanString(s, true /* lower */))
		switch status {
		case planner.StatusPending, planner.StatusInProgress, planner.StatusCompleted:
			filter = append(filter, status)
		default:
			return cli.invalid(core.NewValidationError(nil, core.FieldError{
				Field: "status",
				Error: "status must be one of [pending in-progress completed]",
			}))
		}
	}
	cli.printAssignments("Assignments", cli.store.FilterAssignments(filter...))
	return nil
}

func (cli *commandLine) upcomingAssignments(limit int) error {
	cli.printAssignments("Upcoming", cli.store.UpcomingAssignments(limit))
	return nil
}

func (cli *commandLine) printAssignments(title string, assignments []planner.Assignment) {
	cli.println(cli.render(headStyle, title))
	if len(assignments) == 0 {
		cli.println(cli.render(mutedStyle, "  no assignments"))
		return
	}
	for _, a := range assignments {
		cli.printAssignment(a)
	}
}

func (cli *commandLine) printAssignment(a planner.Assignment) {
	due := a.DueDate
	if !a.DueDateTime.IsZero() {
		due = planner.DueLabel(a.DueDateTime, cli.now())
	}
	cli.printf("  %s  %s  [%s]  %s  due %s  %s\n",
		cli.render(mutedStyle, shortID(a.ID)),
		a.Title,
		cli.subjectLabel(a.Subject, ""),
		cli.priorityLabel(a.Priority),
		due,
		cli.statusLabel(a.Status),
	)
	if a.Description != "" {
		cli.printf("      %s\n", cli.render(mutedStyle, a.Description))
	}
}

func idsOf[T any](items []T, id func(T) string) []string {
	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, id(item))
	}
	return ids
}
