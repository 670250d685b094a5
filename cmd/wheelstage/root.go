package main

import (
	"github.com/spf13/cobra"

	"github.com/conn-castle/wheelstage/internal/messages"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		Long:          messages.RootLong,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newRunCmd())
	cmd.AddCommand(newPlanCmd())
	cmd.AddCommand(newBuildCmd())
	cmd.AddCommand(newDoctorCmd())
	cmd.AddCommand(newInitCmd())

	return cmd
}
