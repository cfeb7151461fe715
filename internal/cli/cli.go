package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/expenses/internal/config"
	"github.com/idilsaglam/expenses/internal/logging"
	"github.com/idilsaglam/expenses/internal/store"
	"github.com/idilsaglam/expenses/internal/tracker"
	"github.com/idilsaglam/expenses/internal/tui"
	"github.com/idilsaglam/expenses/internal/ui"
)

// Exit codes: 0 ok, 1 runtime or storage error, 2 usage or input error.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// usageError marks bad arguments so Execute can map them to exitUsage.
type usageError struct{ msg string }

func (e usageError) Error() string { return e.msg }

func usagef(format string, args ...any) error {
	return usageError{msg: fmt.Sprintf(format, args...)}
}

type flags struct {
	configPath string
	dataDir    string
	backend    string
}

// session is what every command needs once flags are parsed.
type session struct {
	cfg     *config.Config
	stores  *store.Stores
	tracker *tracker.Tracker
	log     zerolog.Logger
	logFile io.Closer
	state   tracker.State
}

func (s *session) Close() error {
	err := s.stores.Close()
	if s.logFile != nil {
		if cerr := s.logFile.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

func openSession(ctx context.Context, f *flags) (*session, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}
	if f.dataDir != "" {
		cfg.DataDir = f.dataDir
	}
	if f.backend != "" {
		cfg.Backend = strings.ToLower(f.backend)
	}
	if err := cfg.Validate(); err != nil {
		return nil, usagef("config: %v", err)
	}

	log, logFile, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	stores, err := store.Open(cfg)
	if err != nil {
		_ = logFile.Close()
		return nil, err
	}
	s := &session{
		cfg:     cfg,
		stores:  stores,
		tracker: tracker.New(stores.Records, stores.Prefs, log),
		log:     log,
		logFile: logFile,
	}
	s.state, err = s.tracker.Start(ctx)
	if err != nil {
		_ = s.Close()
		return nil, err
	}
	return s, nil
}

// NewRootCmd builds the command tree. Without a subcommand it opens the
// interactive tracker.
func NewRootCmd() *cobra.Command {
	f := &flags{}
	root := &cobra.Command{
		Use:   "expenses",
		Short: "Expense Tracker - keep a running list of expenses",
		Long: `Expense Tracker keeps a plain list of expenses in expenses.txt and the
display theme in settings.txt. Run without arguments for the interactive view.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, f, func(s *session) error {
				final, err := tui.Run(cmd.Context(), s.tracker, s.state)
				if err != nil {
					return err
				}
				log := logging.Component(s.log, "cli")
				log.Info().Int("entries", final.Len()).Msg("tui closed")
				return nil
			})
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&f.configPath, "config", "", "path to a YAML config file")
	pf.StringVar(&f.dataDir, "data-dir", "", "directory holding the record and settings files")
	pf.StringVar(&f.backend, "backend", "", "record backend: text or sqlite")

	root.AddCommand(
		newAddCmd(f),
		newListCmd(f),
		newRemoveCmd(f),
		newThemeCmd(f),
		newKeysCmd(f),
		newConfigCmd(f),
	)
	return root
}

func withSession(cmd *cobra.Command, f *flags, fn func(*session) error) error {
	s, err := openSession(cmd.Context(), f)
	if err != nil {
		return err
	}
	defer s.Close()
	return fn(s)
}

// Execute runs the command tree with args and returns the exit code.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return exitOK
	}
	return report(stderr, err)
}

func report(w io.Writer, err error) int {
	var ie *tracker.InputError
	if errors.As(err, &ie) {
		ui.Warn(w, ie.Title, ie.Message)
		return exitUsage
	}
	var ue usageError
	if errors.As(err, &ue) {
		ui.Fail(w, ue.Error())
		return exitUsage
	}
	if isCobraUsage(err) {
		ui.Fail(w, err.Error())
		return exitUsage
	}
	ui.Fail(w, err.Error())
	return exitError
}
