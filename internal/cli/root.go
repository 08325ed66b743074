package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/sandeepkv93/todod/internal/config"
	"github.com/sandeepkv93/todod/internal/ident"
	"github.com/sandeepkv93/todod/internal/logging"
	"github.com/sandeepkv93/todod/internal/storage"
	"github.com/sandeepkv93/todod/internal/tasklist"
	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands. Empty values leave the
// loaded configuration untouched.
type RootOptions struct {
	ConfigPath string
	Backend    string
	DBPath     string
	StateFile  string
	StorageKey string
	LogFile    string
	LogLevel   string
}

// NewRootCommand creates the todod command. Without a subcommand it runs the
// interactive list.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "todod",
		Short:         "todod - a terminal to-do list",
		Long:          "Keep a to-do list in a local store and edit it from an interactive terminal view or one-shot commands.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(opts, cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.ConfigPath, "config", "", "path to a TOML config file (default ./todod.toml)")
	flags.StringVar(&opts.Backend, "backend", "", "storage backend (sqlite|file|memory)")
	flags.StringVar(&opts.DBPath, "db", "", "SQLite database path")
	flags.StringVar(&opts.StateFile, "state-file", "", "JSON state file for the file backend")
	flags.StringVar(&opts.StorageKey, "key", "", "storage key holding the task list")
	flags.StringVar(&opts.LogFile, "log-file", "", "write logs to this file")
	flags.StringVar(&opts.LogLevel, "log-level", "", "log level (debug|info|warn|error)")

	cmd.AddCommand(NewAddCommand(opts))
	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewTargetCommand(opts, "done", "Mark a task completed"))
	cmd.AddCommand(NewTargetCommand(opts, "undone", "Mark a task not completed"))
	cmd.AddCommand(NewTargetCommand(opts, "toggle", "Flip the completion of a task"))
	cmd.AddCommand(NewTargetCommand(opts, "rm", "Delete a task"))
	cmd.AddCommand(NewRenameCommand(opts))
	cmd.AddCommand(NewClearCommand(opts))
	cmd.AddCommand(NewExportCommand(opts))

	return cmd
}

// Config returns the runtime configuration: defaults, then the config file,
// then TODOD_* variables, then flags.
func (o *RootOptions) Config() (config.RuntimeConfig, error) {
	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		return config.RuntimeConfig{}, err
	}
	override := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	override(&cfg.Backend, o.Backend)
	override(&cfg.DBPath, o.DBPath)
	override(&cfg.StateFile, o.StateFile)
	override(&cfg.StorageKey, o.StorageKey)
	override(&cfg.LogFile, o.LogFile)
	override(&cfg.LogLevel, o.LogLevel)
	return cfg, nil
}

// session is one opened store plus the service and logger built on it.
type session struct {
	cfg     config.RuntimeConfig
	log     *log.Logger
	store   *storage.TaskStore
	service *tasklist.Service
	closers []func() error
}

func (o *RootOptions) open() (*session, error) {
	cfg, err := o.Config()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	logger, closeLog, err := logging.New(logging.Options{Path: cfg.LogFile, Level: cfg.LogLevel})
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	kv, err := storage.Open(storage.Options{
		Backend:   cfg.Backend,
		DBPath:    cfg.DBPath,
		StateFile: cfg.StateFile,
	})
	if err != nil {
		_ = closeLog()
		return nil, fmt.Errorf("open storage: %w", err)
	}
	logger.Debug("storage opened", "backend", cfg.Backend, "key", cfg.StorageKey)

	store := storage.NewTaskStore(kv, cfg.StorageKey)
	return &session{
		cfg:     cfg,
		log:     logger,
		store:   store,
		service: tasklist.NewService(store, ident.UUIDGenerator{}, logger),
		closers: []func() error{kv.Close, closeLog},
	}, nil
}

func (s *session) Close() error {
	var first error
	for _, c := range s.closers {
		if err := c(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// withSession opens the store for the duration of fn.
func (o *RootOptions) withSession(cmd *cobra.Command, fn func(context.Context, *session) error) (err error) {
	sess, err := o.open()
	if err != nil {
		return err
	}
	defer func() {
		if cerr := sess.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return fn(ctx, sess)
}
