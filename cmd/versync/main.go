package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/david1155/versync/internal/project"
	"github.com/david1155/versync/internal/sync"
	"github.com/david1155/versync/pkg/config"
	"github.com/david1155/versync/pkg/version"
)

const longDesc = `versync keeps a semantic version and a build counter synchronized
across a source constants file, a package manifest, and a changelog
document.

The constants file is the source of truth. Bumping rewrites all three
files; a pure build-counter bump leaves the manifest untouched.`

type rootArgs struct {
	dir        string
	configFile string
	dryRun     bool
	logLevel   string
	logFormat  string
}

func newRootCmd() *cobra.Command {
	args := &rootArgs{}

	cmd := &cobra.Command{
		Use:           "versync",
		Short:         "Synchronize version and build numbers across project files.",
		Long:          longDesc,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cc *cobra.Command, _ []string) error {
			// Bare invocation shows usage but still exits non-zero.
			_ = cc.Help()
			return fmt.Errorf("a command is required: show or bump")
		},
	}

	cmd.PersistentFlags().StringVar(&args.dir, "dir", ".", "Directory to start project root discovery from")
	cmd.PersistentFlags().StringVar(&args.configFile, "config", "", "Path to a versync config file (YAML or JSON)")
	cmd.PersistentFlags().BoolVar(&args.dryRun, "dry-run", false, "Preview changes without modifying files")
	cmd.PersistentFlags().StringVar(&args.logLevel, "log-level", "warn", "Set the log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&args.logFormat, "log-format", "text", "Set the log format (text, logfmt, json)")

	cmd.PersistentPreRunE = func(_ *cobra.Command, _ []string) error {
		return setupLog(args.logLevel, args.logFormat)
	}

	cmd.AddCommand(newShowCmd(args), newBumpCmd(args))

	return cmd
}

func newShowCmd(args *rootArgs) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Display the current version and build",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			s, err := newSyncer(args)
			if err != nil {
				return err
			}
			return s.Show()
		},
	}
}

func newBumpCmd(args *rootArgs) *cobra.Command {
	return &cobra.Command{
		Use:       "bump <major|minor|patch|build>",
		Short:     "Bump the version or build counter and rewrite project files",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"major", "minor", "patch", "build"},
		RunE: func(_ *cobra.Command, cmdArgs []string) error {
			t, err := version.ParseBumpType(cmdArgs[0])
			if err != nil {
				return err
			}

			s, err := newSyncer(args)
			if err != nil {
				return err
			}
			return s.Bump(t)
		},
	}
}

// newSyncer discovers the project root and resolves the effective
// config. Root discovery needs the manifest name, which the config can
// override, so an explicit config file is loaded first and wins over
// anything probed at the root.
func newSyncer(args *rootArgs) (*sync.Syncer, error) {
	if args.configFile != "" {
		cfg, err := config.Load(args.configFile)
		if err != nil {
			return nil, err
		}
		root, err := project.FindRoot(args.dir, cfg.Manifest)
		if err != nil {
			return nil, err
		}
		return sync.New(cfg.Resolve(root), args.dryRun), nil
	}

	root, err := project.FindRoot(args.dir, config.Default().Manifest)
	if err != nil {
		return nil, err
	}

	cfg, err := config.LoadOrDefault(root)
	if err != nil {
		return nil, err
	}

	return sync.New(cfg, args.dryRun), nil
}

func setupLog(level, format string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("parsing log level: %w", err)
	}
	log.SetLevel(lvl)

	switch format {
	case "", "text":
		log.SetFormatter(log.TextFormatter)
	case "logfmt":
		log.SetFormatter(log.LogfmtFormatter)
	case "json":
		log.SetFormatter(log.JSONFormatter)
	default:
		return fmt.Errorf("unknown log format %q", format)
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\n❌ Error: %v\n", err)
		os.Exit(1)
	}
}
