package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/conn-castle/wheelstage/internal/messages"
	"github.com/conn-castle/wheelstage/internal/pipeline"
	"github.com/conn-castle/wheelstage/internal/plan"
)

var dryRunPlanFunc = pipeline.DryRunPlan

func newPlanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.PlanUse,
		Short: messages.PlanShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			recipe, rootDir, err := loadRecipeFromRoot()
			if err != nil {
				return err
			}

			installPlan, err := dryRunPlanFunc(recipe, rootDir)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, messages.PlanHeaderFmt, recipe.Package.Name, recipe.Package.Version)

			for _, dep := range installPlan.HostManaged() {
				_, _ = fmt.Fprint(out, color.GreenString(messages.PlanHostManagedFmt, dep.Name))
			}
			for _, action := range installPlan.Actions() {
				switch action.Channel {
				case plan.ChannelIndexInstall:
					spec := action.Dependency.Specifier()
					if action.NoDeps {
						spec += messages.PlanNoDepsNote
					}
					_, _ = fmt.Fprint(out, color.CyanString(messages.PlanIndexFmt, spec))
				case plan.ChannelLocalArtifactInstall:
					detail := action.Artifact.Path
					if !action.NoDeps {
						detail += messages.PlanDepsFullNote
					}
					_, _ = fmt.Fprint(out, color.YellowString(messages.PlanLocalFmt, action.Artifact.Name, detail))
				}
			}
			return nil
		},
	}
}
