package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/pluqqy/cvbuilder/cmd/commands"
	"github.com/pluqqy/cvbuilder/internal/cli"
	"github.com/pluqqy/cvbuilder/pkg/files"
	"github.com/pluqqy/cvbuilder/pkg/logger"
	"github.com/pluqqy/cvbuilder/pkg/tui"
)

// Version is set during build with -ldflags
var version = "dev"

// DirEnv overrides the project directory
const DirEnv = "CVBUILDER_DIR"

var (
	quiet       bool
	noColor     bool
	skipConfirm bool
	verbose     bool
	projectDir  string

	flushLog = func() {}
)

var rootCmd = &cobra.Command{
	Use:   "cvbuilder",
	Short: "Terminal-based CV builder",
	Long: `cvbuilder edits a CV in the terminal. Pick one of four templates, fill in
your details, tune the accent color and font size, and export the result as
HTML or PDF. Everything is stored as plain files in the .cvbuilder folder.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if projectDir == "" {
			projectDir = os.Getenv(DirEnv)
		}
		files.SetProjectDir(projectDir)
		cli.SetGlobalFlags(quiet, noColor, skipConfirm)
		return initLogging()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cmdCtx, err := cli.NewCommandContext()
		if err != nil {
			return err
		}
		if err := cmdCtx.ValidateProject(); err != nil {
			return err
		}

		app, err := tui.NewApp(cmdCtx)
		if err != nil {
			return err
		}
		defer app.Close()

		p := tea.NewProgram(app, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("failed to start the terminal user interface: %w", err)
		}
		return nil
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new CV project",
	Long:  `Creates the .cvbuilder folder structure and default settings in the current directory`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to determine current directory: %w", err)
		}

		cli.PrintInfo("Initializing CV project in %s...", cwd)

		if err := files.InitProjectStructure(); err != nil {
			return fmt.Errorf("failed to initialize project structure: %w", err)
		}

		cli.PrintSuccess("Created %s folder structure", files.ProjectDir)
		cli.PrintSuccess("Pick a template with 'cvbuilder template <name>'")
		if !quiet {
			fmt.Println("\nRun 'cvbuilder' to start the interactive editor.")
		}
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of cvbuilder",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("cvbuilder version %s\n", version)
	},
}

// initLogging sends records to stderr with --verbose, otherwise to the
// configured file inside the project directory
func initLogging() error {
	opts := logger.Options{Level: "info"}
	if verbose {
		opts.Level = "debug"
	} else if files.ProjectExists() {
		settings, err := files.ReadSettings()
		if err == nil {
			opts.Level = settings.Log.Level
			if settings.Log.File != "" {
				opts.File = filepath.Join(files.ProjectDir, settings.Log.File)
			}
		}
		if opts.File == "" {
			return nil
		}
	} else {
		return nil
	}

	flush, err := logger.Init(opts)
	if err != nil {
		return err
	}
	flushLog = flush
	return nil
}

func init() {
	// a missing .env is fine
	_ = godotenv.Load()

	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&quiet, "quiet", "q", false, "Only print errors")
	flags.BoolVar(&noColor, "no-color", false, "Disable symbols and colors in output")
	flags.BoolVarP(&skipConfirm, "yes", "y", false, "Answer yes to every confirmation")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Log debug records to stderr")
	flags.StringVar(&projectDir, "dir", "", "Project directory (default .cvbuilder, or $"+DirEnv+")")
	flags.StringP("output", "o", "text", "Output format: text, json or yaml")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(commands.NewTemplatesCommand())
	rootCmd.AddCommand(commands.NewTemplateCommand())
	rootCmd.AddCommand(commands.NewSetCommand())
	rootCmd.AddCommand(commands.NewEditCommand())
	rootCmd.AddCommand(commands.NewAddCommand())
	rootCmd.AddCommand(commands.NewStyleCommand())
	rootCmd.AddCommand(commands.NewImportCommand())
	rootCmd.AddCommand(commands.NewResetCommand())
	rootCmd.AddCommand(commands.NewExportCommand())
	rootCmd.AddCommand(commands.NewShowCommand())
	rootCmd.AddCommand(commands.NewClipboardCommand())
	rootCmd.AddCommand(commands.NewStatusCommand())
}

func main() {
	err := rootCmd.Execute()
	flushLog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
