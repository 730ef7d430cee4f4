// Package cli wires the command-line surface to the release-notes pipeline.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"relnotes/internal/app"
	"relnotes/internal/config"
	"relnotes/internal/gitlog"
	"relnotes/internal/llm"
)

var flags app.FlagValues

var rootCmd = &cobra.Command{
	Use:   "relnotes",
	Short: "Generate release notes from the git history between two tags",
	Long: `relnotes diffs two tags, summarizes the commit log and file-change
statistics between them, and prints release notes to stdout: AI-generated
Japanese prose when GITHUB_TOKEN is set, a structured markdown listing
otherwise.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := app.OptionsFromEnv(flags, os.Getenv)
		if err != nil {
			return err
		}

		cfg, err := config.Load(opts.ConfigPath)
		if err != nil {
			return err
		}

		var source gitlog.Source
		if opts.NativeGit {
			source, err = gitlog.OpenNative(opts.RepoPath)
			if err != nil {
				return err
			}
		} else {
			source = gitlog.CLI{RepoPath: opts.RepoPath}
		}

		var generator app.Generator
		if opts.Token != "" {
			generator = llm.NewClient(opts.Token, cfg)
		}

		pipeline := app.Pipeline{
			Source:    source,
			Generator: generator,
			Out:       cmd.OutOrStdout(),
		}
		return pipeline.Run(opts)
	},
}

func init() {
	rootCmd.Flags().StringVar(&flags.CurrentTag, "current", "", "tag being released (defaults to $CURRENT_TAG)")
	rootCmd.Flags().StringVar(&flags.PreviousTag, "previous", "", "previous release tag (defaults to $PREVIOUS_TAG; empty means first release)")
	rootCmd.Flags().StringVar(&flags.RepoPath, "repo", "", "path to the repository (defaults to the working directory)")
	rootCmd.Flags().StringVar(&flags.ConfigPath, "config", "", "optional JSON prompt-config file")
	rootCmd.Flags().BoolVar(&flags.NativeGit, "native", false, "read history with go-git instead of the git executable")
}

func Execute() error {
	return rootCmd.Execute()
}
