package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/conn-castle/wheelstage/internal/fsutil"
	"github.com/conn-castle/wheelstage/internal/messages"
	"github.com/conn-castle/wheelstage/internal/root"
	"github.com/conn-castle/wheelstage/internal/templates"
	"github.com/conn-castle/wheelstage/internal/wizard"
)

var runWizardFunc = wizard.Run

const flagWizard = "wizard"

func newInitCmd() *cobra.Command {
	var useWizard bool

	cmd := &cobra.Command{
		Use:   messages.InitUse,
		Short: messages.InitShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := getwd()
			if err != nil {
				return err
			}

			if useWizard {
				return runWizardFunc(cwd, wizard.NewHuhUI(), cmd.OutOrStdout())
			}

			recipePath := filepath.Join(cwd, root.RecipeFileName)
			if _, err := os.Stat(recipePath); err == nil {
				return fmt.Errorf(messages.InitRecipeExistsFmt, recipePath)
			} else if !os.IsNotExist(err) {
				return err
			}

			starter, err := templates.Read(root.RecipeFileName)
			if err != nil {
				return err
			}
			if err := fsutil.WriteFileAtomic(recipePath, starter, 0o644); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), messages.InitWroteRecipeFmt, recipePath)
			return nil
		},
	}

	cmd.Flags().BoolVar(&useWizard, flagWizard, false, messages.InitFlagWizard)

	return cmd
}
