package main

import (
	"github.com/spf13/cobra"

	"github.com/blink-new/study-saathi-app-dwaa98jh/core/planner"
)

const homeLimit = 3

func (cli *commandLine) home() error {
	p := cli.store.Profile()
	now := cli.now()
	cli.println(cli.render(titleStyle, "Hello, "+p.Name))
	cli.println(cli.render(mutedStyle, now.Format("Monday, Jan 2")))
	cli.println()

	cli.printClasses("Today's classes", cli.store.TodayClasses())
	cli.printAssignments("Upcoming assignments", cli.store.UpcomingAssignments(homeLimit))
	cli.printNotes("Recent notes", cli.store.RecentNotes(homeLimit))
	cli.println()
	return cli.stats()
}

func (cli *commandLine) stats() error {
	st := cli.store.RefreshStats()
	cli.println(cli.render(headStyle, "Stats"))
	cli.printf("  progress: %d%%  (%d of %d assignments completed)\n",
		st.OverallProgress, st.CompletedAssignments, st.TotalAssignments)
	cli.printf("  pending: %d  in progress: %d  due soon: %d  overdue: %d\n",
		st.PendingAssignments, st.InProgressAssignments, st.DueSoon, st.Overdue)
	cli.printf("  classes today: %d  notes: %d\n", st.ClassesToday, st.TotalNotes)
	cli.printf("  study hours: %d  streak: %d day(s)\n", st.StudyHours, st.CurrentStreak)
	return nil
}

// export is everything the planner holds, as written by the export command.
type export struct {
	Profile     planner.Profile      `json:"profile" yaml:"profile"`
	Assignments []planner.Assignment `json:"assignments" yaml:"assignments"`
	Classes     []planner.Class      `json:"classes" yaml:"classes"`
	Notes       []planner.Note       `json:"notes" yaml:"notes"`
	Stats       planner.Stats        `json:"stats" yaml:"stats"`
}

func (cli *commandLine) exportCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write all planner data to stdout",
		Args:  cobra.NoArgs,
		RunE:  func(cmd *cobra.Command, args []string) error { return cli.export(format) },
	}
	cmd.Flags().StringVarP(&format, "format", "f", "json", "json or yaml")
	return cmd
}

func (cli *commandLine) export(format string) error {
	codec, err := planner.CodecByName(format)
	if err != nil {
		return err
	}
	data, err := codec.Marshal(export{
		Profile:     cli.store.Profile(),
		Assignments: cli.store.Assignments(),
		Classes:     cli.store.Classes(),
		Notes:       cli.store.Notes(),
		Stats:       cli.store.RefreshStats(),
	})
	if err != nil {
		return err
	}
	_, err = cli.out.Write(append(data, '\n'))
	return err
}
