package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"codedoc/pkg/convert"
	"codedoc/pkg/document"
	"codedoc/pkg/logging"
	"codedoc/pkg/version"
)

var rootLogger *zap.Logger

var (
	flagTOC        bool
	flagFilePaths  bool
	flagIgnoreDirs []string
	flagExts       []string
	flagConfig     string
	flagQuiet      bool
	flagVerbose    bool
)

// RootCmd is the base command; invoking it runs the conversion itself.
var RootCmd = &cobra.Command{
	Use:   "codedoc <codebase_path> <output_path>",
	Short: "codedoc converts a codebase into a single Markdown document",
	Long: `codedoc walks a codebase directory, filters its files by directory name and
extension, and assembles one Markdown document with a title page, an optional
table of contents, and one section per source file.`,
	Args:         cobra.ExactArgs(2),
	SilenceUsage: true,
	RunE:         runConvert,
}

func init() {
	RootCmd.Flags().BoolVar(&flagTOC, "toc", true, "include a table of contents")
	RootCmd.Flags().BoolVar(&flagFilePaths, "file-paths", true, "annotate each section with its relative path")
	RootCmd.Flags().StringArrayVar(&flagIgnoreDirs, "ignore-dir", nil, "additional directory name to prune (repeatable, merged with defaults)")
	RootCmd.Flags().StringArrayVar(&flagExts, "ext", nil, "file extension to include (repeatable, replaces defaults)")
	RootCmd.Flags().StringVar(&flagConfig, "config", "", "path to a YAML configuration file")
	RootCmd.Flags().BoolVarP(&flagQuiet, "quiet", "q", false, "suppress per-file progress output")
	RootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
}

// Execute runs the root command with the provided logger.
func Execute(logger *zap.Logger) error {
	rootLogger = logger
	return RootCmd.Execute()
}

func runConvert(cmd *cobra.Command, args []string) error {
	logger := rootLogger
	if logger == nil {
		logger = zap.NewNop()
	}
	if flagVerbose {
		if err := logging.Setup(true, "codedoc", version.Get().Version); err != nil {
			return fmt.Errorf("failed to initialize debug logger: %w", err)
		}
		logger = logging.Logger
	}

	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	var progress convert.ProgressFunc
	if !flagQuiet {
		progress = newProgressPrinter(os.Stderr, term.IsTerminal(int(os.Stderr.Fd())))
	}

	conv := convert.NewConverter(cfg, logger)
	if err := conv.Run(document.NewMarkdown(), progress); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Document saved: %s\n", cfg.OutputPath)
	return nil
}

// buildConfig layers the configuration sources: defaults, then the optional
// YAML file, then flags that were set explicitly on the command line.
func buildConfig(cmd *cobra.Command, args []string) (*convert.Config, error) {
	cfg := convert.DefaultConfig()
	if flagConfig != "" {
		loaded, err := convert.LoadConfigFile(flagConfig)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	cfg.CodebasePath = args[0]
	cfg.OutputPath = args[1]

	if cmd.Flags().Changed("toc") {
		cfg.IncludeTOC = flagTOC
	}
	if cmd.Flags().Changed("file-paths") {
		cfg.IncludeFilePaths = flagFilePaths
	}
	if len(flagIgnoreDirs) > 0 {
		cfg.IgnoreDirs = append(cfg.IgnoreDirs, flagIgnoreDirs...)
	}
	if len(flagExts) > 0 {
		cfg.IncludeExtensions = flagExts
	}
	return cfg, nil
}
