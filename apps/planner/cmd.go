package main

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/go-playground/validator/v10"
	ut "github.com/go-playground/universal-translator"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/blink-new/study-saathi-app-dwaa98jh/core"
	"github.com/blink-new/study-saathi-app-dwaa98jh/core/planner"
	logsvc "github.com/blink-new/study-saathi-app-dwaa98jh/services/logger"
	"github.com/blink-new/study-saathi-app-dwaa98jh/storage"
)

const closeTimeout = 5 * time.Second

var (
	errNotFound     = errors.New("not found")
	errInvalidInput = errors.New("invalid input")
	errAmbiguousID  = errors.New("ambiguous id")
)

type commandLine struct {
	cfgFile string
	out     io.Writer

	conf       *core.Config
	logger     core.Logger
	kv         core.KVStore
	store      *planner.Store
	validate   *validator.Validate
	translator ut.Translator
	now        func() time.Time
	renderer   *lipgloss.Renderer

	owned   bool // store and kv were built by setup
	closers []func() error
}

// run executes the command line in args (program name included).
func (cli *commandLine) run(args []string) error {
	root := cli.rootCmd()
	root.SetArgs(args[1:])
	err := root.Execute()
	if terr := cli.teardown(); err == nil {
		err = terr
	}
	return err
}

func (cli *commandLine) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "saathi",
		Short:         "Study Saathi, a student planner for assignments, classes and notes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return cli.setup(cmd.Context())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.home()
		},
	}
	root.SetOut(cli.out)
	root.SetErr(cli.out)
	root.PersistentFlags().StringVar(&cli.cfgFile, "config", "", "config file (yaml, json or toml)")

	root.AddCommand(
		&cobra.Command{
			Use:   "home",
			Short: "Today's classes, upcoming assignments, recent notes and stats",
			Args:  cobra.NoArgs,
			RunE:  func(cmd *cobra.Command, args []string) error { return cli.home() },
		},
		cli.assignmentCmd(),
		cli.classCmd(),
		cli.noteCmd(),
		cli.profileCmd(),
		&cobra.Command{
			Use:   "stats",
			Short: "Show planner statistics",
			Args:  cobra.NoArgs,
			RunE:  func(cmd *cobra.Command, args []string) error { return cli.stats() },
		},
		cli.exportCmd(),
	)
	return root
}

// setup builds the application from the config unless dependencies were injected.
func (cli *commandLine) setup(ctx context.Context) error {
	if cli.now == nil {
		cli.now = time.Now
	}
	if cli.validate == nil {
		cli.validate, cli.translator = core.NewValidator()
		planner.RegisterValidators(cli.validate)
	}
	if cli.store != nil {
		if cli.conf == nil {
			cli.conf = &core.Config{}
		}
		return nil
	}

	conf, err := core.LoadConfig(cli.cfgFile)
	if err != nil {
		return err
	}
	cli.conf = conf

	zl, err := logsvc.NewZapLogger(conf)
	if err != nil {
		return err
	}
	cli.closers = append(cli.closers, func() error {
		_ = zl.Sync() // fails on terminals
		return nil
	})
	rl := logsvc.NewRollbarLogger(zl, conf)
	cli.closers = append(cli.closers, func() error {
		rl.Close()
		return nil
	})
	cli.logger = rl

	codec, err := planner.CodecByName(conf.Storage.Encoding)
	if err != nil {
		return err
	}
	kv, err := storage.Open(conf.Storage)
	if err != nil {
		return errors.Wrapf(err, "opening %s storage", conf.Storage.Driver)
	}
	cli.kv = kv

	cli.store = planner.NewStore(planner.Options{
		KV:     kv,
		Codec:  codec,
		Logger: cli.logger,
		Now:    cli.now,
		Async:  conf.Storage.Async,
		Seed:   conf.Planner.Seed,
	})
	cli.owned = true
	cli.store.Load(ctx)
	cli.logger.Debug("planner loaded", map[string]interface{}{
		"driver":   conf.Storage.Driver,
		"encoding": codec.Name(),
	})
	return nil
}

// teardown drains pending writes, then closes the storage and the loggers.
// Injected dependencies are left open.
func (cli *commandLine) teardown() error {
	if !cli.owned {
		return nil
	}
	var err error
	if cli.store != nil {
		ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
		err = cli.store.Close(ctx)
		cancel()
	}
	if cli.kv != nil {
		if cerr := cli.kv.Close(); cerr != nil && err == nil {
			err = errors.Wrap(cerr, "closing storage")
		}
	}
	for i := len(cli.closers) - 1; i >= 0; i-- {
		_ = cli.closers[i]()
	}
	cli.closers = nil
	cli.store, cli.kv, cli.owned = nil, nil, false
	return err
}

func (cli *commandLine) printf(format string, args ...interface{}) {
	fmt.Fprintf(cli.out, format, args...)
}

func (cli *commandLine) println(args ...interface{}) {
	fmt.Fprintln(cli.out, args...)
}

// invalid prints the field errors of a form and returns errInvalidInput.
func (cli *commandLine) invalid(err error) error {
	fields, ok := core.FieldErrors(err, cli.translator)
	if !ok {
		return err
	}
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		cli.println(cli.render(errStyle, fmt.Sprintf("%s: %s", name, fields[name])))
	}
	return errInvalidInput
}

// resolveID finds the id equal to ref, or else the only id starting with ref.
func resolveID(ids []string, ref, kind string) (string, error) {
	ref = core.CleanString(ref, true /* lower */)
	if slices.Contains(ids, ref) {
		return ref, nil
	}
	var match string
	for _, id := range ids {
		if ref != "" && strings.HasPrefix(id, ref) {
			if match != "" {
				return "", errors.Wrapf(errAmbiguousID, "%s %s", kind, ref)
			}
			match = id
		}
	}
	if match == "" {
		return "", errors.Wrapf(errNotFound, "%s %s", kind, ref)
	}
	return match, nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
