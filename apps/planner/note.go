package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/blink-new/study-saathi-app-dwaa98jh/core/planner"
)

type noteFlags struct {
	title, subject, content, typ string
}

func (f *noteFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.title, "title", "t", "", "note title")
	cmd.Flags().StringVarP(&f.subject, "subject", "s", "", "subject, eg. Chemistry")
	cmd.Flags().StringVarP(&f.content, "content", "c", "", "note body")
	cmd.Flags().StringVar(&f.typ, "type", "", "text, image or video (default text)")
}

func (cli *commandLine) noteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "note",
		Aliases: []string{"notes", "n"},
		Short:   "Manage notes",
	}

	var addFlags noteFlags
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a note",
		Args:  cobra.NoArgs,
		RunE:  func(cmd *cobra.Command, args []string) error { return cli.addNote(addFlags) },
	}
	addFlags.register(addCmd)

	var updateFlags noteFlags
	updateCmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a note; omitted flags are left unchanged",
		Args:  cobra.ExactArgs(1),
		RunE:  func(cmd *cobra.Command, args []string) error { return cli.updateNote(args[0], updateFlags) },
	}
	updateFlags.register(updateCmd)

	var limit int
	recentCmd := &cobra.Command{
		Use:   "recent",
		Short: "List the most recently updated notes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("limit") {
				limit = cli.conf.Planner.RecentLimit
			}
			cli.printNotes("Recent notes", cli.store.RecentNotes(limit))
			return nil
		},
	}
	recentCmd.Flags().IntVarP(&limit, "limit", "n", planner.DefaultLimit, "maximum number of notes")

	var subject string
	searchCmd := &cobra.Command{
		Use:   "search [QUERY]",
		Short: "Search notes by title, subject or content",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var query string
			if len(args) > 0 {
				query = args[0]
			}
			cli.printNotes("Results", cli.store.SearchNotes(query, subject))
			return nil
		},
	}
	searchCmd.Flags().StringVarP(&subject, "subject", "s", "", "only search this subject")

	cmd.AddCommand(
		addCmd,
		&cobra.Command{
			Use:   "list",
			Short: "List notes",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				cli.printNotes("Notes", cli.store.Notes())
				return nil
			},
		},
		updateCmd,
		&cobra.Command{
			Use:   "delete ID",
			Short: "Delete a note",
			Args:  cobra.ExactArgs(1),
			RunE:  func(cmd *cobra.Command, args []string) error { return cli.deleteNote(args[0]) },
		},
		recentCmd,
		searchCmd,
		&cobra.Command{
			Use:   "subjects",
			Short: "Count notes per subject",
			Args:  cobra.NoArgs,
			RunE:  func(cmd *cobra.Command, args []string) error { return cli.noteSubjects() },
		},
	)
	return cmd
}

func (cli *commandLine) noteID(ref string) (string, error) {
	return resolveID(idsOf(cli.store.Notes(), func(n planner.Note) string { return n.ID }), ref, "note")
}

func (cli *commandLine) addNote(f noteFlags) error {
	nn := planner.NewNote{
		Title:   f.title,
		Subject: f.subject,
		Content: f.content,
		Type:    planner.NoteType(f.typ),
	}
	if err := nn.Validate(cli.validate); err != nil {
		return cli.invalid(err)
	}
	n := cli.store.AddNote(nn.Note())
	cli.printf("%s %s\n", cli.render(okStyle, "added note"), shortID(n.ID))
	cli.printNote(n)
	return nil
}

func (cli *commandLine) updateNote(ref string, f noteFlags) error {
	id, err := cli.noteID(ref)
	if err != nil {
		return err
	}
	un := planner.UpdateNote{
		Title:   f.title,
		Subject: f.subject,
		Content: f.content,
		Type:    planner.NoteType(f.typ),
	}
	if err := un.Validate(cli.validate); err != nil {
		return cli.invalid(err)
	}
	n, ok := cli.store.UpdateNote(id, un.Patch())
	if !ok {
		return errors.Wrapf(errNotFound, "note %s", ref)
	}
	cli.printf("%s %s\n", cli.render(okStyle, "updated note"), shortID(n.ID))
	cli.printNote(n)
	return nil
}

func (cli *commandLine) deleteNote(ref string) error {
	id, err := cli.noteID(ref)
	if err != nil {
		return err
	}
	if !cli.store.DeleteNote(id) {
		return errors.Wrapf(errNotFound, "note %s", ref)
	}
	cli.printf("%s %s\n", cli.render(okStyle, "deleted note"), shortID(id))
	return nil
}

func (cli *commandLine) noteSubjects() error {
	cli.println(cli.render(headStyle, "Subjects"))
	subjects := cli.store.NoteSubjects()
	if len(subjects) == 0 {
		cli.println(cli.render(mutedStyle, "  no notes"))
		return nil
	}
	for _, sum := range subjects {
		cli.printf("  %s  %d note(s)  updated %s\n",
			cli.subjectLabel(sum.Subject, ""),
			sum.NoteCount,
			sum.LastUpdated.Format("Jan 2, 15:04"),
		)
	}
	return nil
}

func (cli *commandLine) printNotes(title string, notes []planner.Note) {
	cli.println(cli.render(headStyle, title))
	if len(notes) == 0 {
		cli.println(cli.render(mutedStyle, "  no notes"))
		return
	}
	for _, n := range notes {
		cli.printNote(n)
	}
}

func (cli *commandLine) printNote(n planner.Note) {
	cli.printf("  %s  %s  [%s]  %s  %s\n",
		cli.render(mutedStyle, shortID(n.ID)),
		n.Title,
		cli.subjectLabel(n.Subject, ""),
		n.Type,
		cli.render(mutedStyle, n.UpdatedAt.Format("Jan 2, 15:04")),
	)
	if n.Content != "" {
		cli.printf("      %s\n", n.Content)
	}
}
