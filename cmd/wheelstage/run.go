package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/conn-castle/wheelstage/internal/config"
	"github.com/conn-castle/wheelstage/internal/messages"
	"github.com/conn-castle/wheelstage/internal/pipeline"
	"github.com/conn-castle/wheelstage/internal/terminal"
	"github.com/conn-castle/wheelstage/internal/tui"
)

var (
	runPipelineFunc = pipeline.Run
	isTerminalFunc  = terminal.IsInteractive
)

const (
	flagStaging = "staging"
	flagPlain   = "plain"
	flagVerbose = "verbose"
)

func newRunCmd() *cobra.Command {
	var stagingOverride string
	var plainOutput bool
	var verbose bool

	cmd := &cobra.Command{
		Use:   messages.RunUse,
		Short: messages.RunShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			recipe, rootDir, err := loadRecipeFromRoot()
			if err != nil {
				return err
			}

			opts := pipeline.Options{
				StagingOverride: stagingOverride,
				Verbose:         verbose,
				Out:             cmd.OutOrStdout(),
				Err:             cmd.ErrOrStderr(),
			}

			var result *pipeline.Result
			if !plainOutput && !verbose && isTerminalFunc() {
				result, err = runWithMonitor(cmd, recipe, rootDir, opts)
			} else {
				opts.Progress = func(step int, total int, name string) {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), messages.PipelineStageFmt, step, total, name)
				}
				result, err = runPipelineFunc(recipe, rootDir, opts)
			}
			if result != nil {
				for _, w := range result.Warnings {
					_, _ = fmt.Fprintln(cmd.ErrOrStderr(), w.String())
				}
			}
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), messages.RunDoneFmt,
				result.Primary.Name, result.Primary.Version, result.StagingRoot)
			return nil
		},
	}

	cmd.Flags().StringVar(&stagingOverride, flagStaging, "", messages.RunFlagStaging)
	cmd.Flags().BoolVar(&plainOutput, flagPlain, false, messages.RunFlagPlain)
	cmd.Flags().BoolVar(&verbose, flagVerbose, false, messages.RunFlagVerbose)

	return cmd
}

// runWithMonitor executes the pipeline behind the TUI progress monitor.
// The monitor owns the terminal, so external tool stderr is routed into
// its log tail rather than written directly.
func runWithMonitor(cmd *cobra.Command, recipe *config.Recipe, rootDir string, opts pipeline.Options) (*pipeline.Result, error) {
	program := tea.NewProgram(tui.NewMonitor(), tea.WithOutput(cmd.ErrOrStderr()))
	logs := tui.NewLogWriter(program.Send)

	opts.Out = nil
	opts.Verbose = false
	opts.Err = logs
	opts.Progress = func(step int, total int, name string) {
		program.Send(tui.StageMsg{Step: step, Total: total, Name: name})
	}

	type outcome struct {
		result *pipeline.Result
		err    error
	}
	done := make(chan outcome, 1)
	go func() {
		result, err := runPipelineFunc(recipe, rootDir, opts)
		logs.Flush()
		done <- outcome{result: result, err: err}
		program.Send(tui.DoneMsg{Err: err})
	}()

	if _, err := program.Run(); err != nil {
		return nil, err
	}
	o := <-done
	return o.result, o.err
}
