// Command commitsense suggests commit messages for the staged changes
// in a git repository.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pgebal/commitsense"
	"github.com/pgebal/commitsense/bubbletea"
	"github.com/pgebal/commitsense/chroma"
	"github.com/pgebal/commitsense/git"
	"github.com/pgebal/commitsense/lipgloss"
)

// Version is set at build time via ldflags.
var Version = "dev"

// App encapsulates the application logic for testing.
type App struct {
	Engine      *commitsense.Engine
	Renderer    *lipgloss.Renderer
	Picker      commitsense.Picker
	Highlighter commitsense.Highlighter
	Out         io.Writer
}

// Suggest generates suggestions and writes them in the requested form.
func (a *App) Suggest(ctx context.Context, req commitsense.Request, asJSON, pick bool) error {
	resp, err := a.Engine.Generate(ctx, req)
	if err != nil {
		return err
	}

	if pick {
		chosen, err := a.Picker.Pick(ctx, resp)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(a.Out, chosen.Message)
		return err
	}

	if asJSON {
		enc := json.NewEncoder(a.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	}

	_, err = fmt.Fprint(a.Out, a.Renderer.Render(resp))
	return err
}

// Diffs writes the per-file diff listing, optionally colorized.
func (a *App) Diffs(ctx context.Context, rootDir string, color bool) error {
	diffs, err := a.Engine.Diffs(ctx, rootDir)
	if err != nil {
		return err
	}
	if len(diffs) == 0 {
		_, err := fmt.Fprintln(a.Out, "No changed files.")
		return err
	}

	for _, fd := range diffs {
		text := fd.Diff
		if color {
			// Highlighting is best-effort; failures fall back to plain text.
			if highlighted, err := a.Highlighter.Highlight(text); err == nil {
				text = highlighted
			}
		}
		if _, err := fmt.Fprintf(a.Out, "=== %s ===\n%s\n", fd.File, text); err != nil {
			return err
		}
	}
	return nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}

func newApp(logger *zap.Logger) *App {
	theme := lipgloss.DefaultTheme()
	return &App{
		Engine:      commitsense.NewEngine(git.NewRunner(), logger),
		Renderer:    lipgloss.NewRenderer(theme, nil),
		Picker:      bubbletea.NewPicker(theme),
		Highlighter: chroma.NewHighlighter("monokai"),
		Out:         os.Stdout,
	}
}

func main() {
	var (
		dir     string
		style   string
		max     int
		noScope bool
		asJSON  bool
		pick    bool
		color   bool
		verbose bool
	)

	rootCmd := &cobra.Command{
		Use:           "commitsense",
		Short:         "Suggest commit messages for staged changes",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&dir, "dir", ".", "repository root directory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")

	suggestCmd := &cobra.Command{
		Use:   "suggest",
		Short: "Generate ranked commit-message suggestions",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(verbose)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			req := commitsense.Request{
				RootDir:        dir,
				Style:          commitsense.Style(viper.GetString("style")),
				MaxSuggestions: viper.GetInt("max"),
				IncludeScope:   !noScope,
			}
			return newApp(logger).Suggest(cmd.Context(), req, asJSON, pick)
		},
	}
	suggestCmd.Flags().StringVar(&style, "style", string(commitsense.DefaultStyle),
		"message style: conventional, semantic or descriptive")
	suggestCmd.Flags().IntVar(&max, "max", commitsense.DefaultMaxSuggestions,
		"number of suggestions to generate (1-5)")
	suggestCmd.Flags().BoolVar(&noScope, "no-scope", false, "omit the scope token")
	suggestCmd.Flags().BoolVar(&asJSON, "json", false, "emit the full response as JSON")
	suggestCmd.Flags().BoolVar(&pick, "pick", false, "select a suggestion interactively")

	diffsCmd := &cobra.Command{
		Use:   "diffs",
		Short: "List per-file diffs for the current change set",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(verbose)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			return newApp(logger).Diffs(cmd.Context(), dir, color)
		},
	}
	diffsCmd.Flags().BoolVar(&color, "color", false, "highlight diffs with ANSI colors")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("commitsense %s\n", Version)
		},
	}

	rootCmd.AddCommand(suggestCmd, diffsCmd, versionCmd)

	// COMMITSENSE_STYLE and COMMITSENSE_MAX override the flag defaults.
	viper.SetEnvPrefix("COMMITSENSE")
	viper.AutomaticEnv()
	_ = viper.BindPFlag("style", suggestCmd.Flags().Lookup("style"))
	_ = viper.BindPFlag("max", suggestCmd.Flags().Lookup("max"))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
