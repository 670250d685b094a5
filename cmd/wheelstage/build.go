package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conn-castle/wheelstage/internal/messages"
	"github.com/conn-castle/wheelstage/internal/pipeline"
)

var buildArtifactsFunc = pipeline.Build

func newBuildCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   messages.BuildUse,
		Short: messages.BuildShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			recipe, rootDir, err := loadRecipeFromRoot()
			if err != nil {
				return err
			}

			result, err := buildArtifactsFunc(recipe, rootDir, pipeline.Options{
				Verbose: verbose,
				Out:     cmd.OutOrStdout(),
				Err:     cmd.ErrOrStderr(),
				Progress: func(step int, total int, name string) {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), messages.PipelineStageFmt, step, total, name)
				},
			})
			if result != nil {
				for _, w := range result.Warnings {
					_, _ = fmt.Fprintln(cmd.ErrOrStderr(), w.String())
				}
			}
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), messages.BuildBuiltFmt, result.Primary.Path)
			if result.Subproject != nil {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), messages.BuildBuiltFmt, result.Subproject.Path)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&verbose, flagVerbose, false, messages.RunFlagVerbose)

	return cmd
}
