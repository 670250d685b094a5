package wizard

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/aymanbagabas/go-udiff"

	"github.com/conn-castle/wheelstage/internal/config"
	"github.com/conn-castle/wheelstage/internal/fsutil"
	"github.com/conn-castle/wheelstage/internal/messages"
	"github.com/conn-castle/wheelstage/internal/root"
	"github.com/conn-castle/wheelstage/internal/templates"
	"github.com/conn-castle/wheelstage/internal/wheel"
)

var (
	errWizardBack      = errors.New("wizard back requested")
	errWizardCancelled = errors.New("wizard cancelled")

	parseRecipeLenientFunc = config.ParseRecipeLenient
)

// Run starts the interactive recipe wizard rooted at rootDir and writes
// user-facing output to out.
func Run(rootDir string, ui UI, out io.Writer) error {
	if out == nil {
		out = os.Stdout
	}
	recipePath := filepath.Join(rootDir, root.RecipeFileName)

	content, fresh, err := loadOrStartRecipe(recipePath)
	if err != nil {
		return err
	}

	choices, err := initializeChoices(content, fresh)
	if err != nil {
		return err
	}

	if err := promptFlow(ui, choices); err != nil {
		if errors.Is(err, errWizardBack) || errors.Is(err, errWizardCancelled) {
			_, _ = fmt.Fprintln(out, messages.WizardExitWithoutChanges)
			return nil
		}
		return err
	}

	if err := confirmAndWrite(recipePath, content, ui, choices, out); err != nil {
		if errors.Is(err, errWizardBack) || errors.Is(err, errWizardCancelled) {
			_, _ = fmt.Fprintln(out, messages.WizardExitWithoutChanges)
			return nil
		}
		return err
	}
	return nil
}

// loadOrStartRecipe returns the current recipe content, falling back to the
// starter template when no recipe exists yet. fresh reports the fallback.
func loadOrStartRecipe(recipePath string) (content string, fresh bool, err error) {
	data, readErr := os.ReadFile(recipePath)
	if readErr == nil {
		return string(data), false, nil
	}
	if !os.IsNotExist(readErr) {
		return "", false, fmt.Errorf(messages.WizardReadRecipeFailedFmt, recipePath, readErr)
	}
	template, tmplErr := templates.Read(root.RecipeFileName)
	if tmplErr != nil {
		return "", false, fmt.Errorf(messages.WizardReadTemplateFailedFmt, tmplErr)
	}
	return string(template), true, nil
}

// initializeChoices prefills choices from the existing recipe so the wizard
// edits rather than resets. A fresh template keeps the built-in defaults.
func initializeChoices(content string, fresh bool) (*Choices, error) {
	choices := NewChoices()
	if fresh {
		return choices, nil
	}

	recipe, err := parseRecipeLenientFunc([]byte(content), root.RecipeFileName)
	if err != nil {
		return nil, fmt.Errorf(messages.WizardParseRecipeFailedFmt, err)
	}

	if recipe.Package.Name != "" {
		choices.PackageName = recipe.Package.Name
	}
	if recipe.Package.Version != "" {
		choices.PackageVersion = recipe.Package.Version
	}
	if recipe.Package.Source != "" {
		choices.SourceDir = recipe.Package.Source
	}
	choices.Prefix = recipe.Package.EffectivePrefix()
	if recipe.Package.Subproject != nil {
		choices.SubprojectDir = recipe.Package.Subproject.Path
	}
	choices.HostPackages = append([]string(nil), recipe.Channels.Host...)
	for _, dep := range recipe.Dependencies {
		choices.Dependencies = append(choices.Dependencies, DependencyEntry{
			Name:       dep.Name,
			MinVersion: dep.MinVersion,
		})
	}
	choices.DesktopAsset = recipe.Assets.Desktop
	choices.IconAsset = recipe.Assets.Icon
	return choices, nil
}

type flowStep int

const (
	stepPackageName flowStep = iota
	stepPackageVersion
	stepSourceDir
	stepSubprojectDir
	stepPrefix
	stepHostPackages
	stepIndexDeps
	stepAssets
)

func promptFlow(ui UI, choices *Choices) error {
	step := stepPackageName
	for {
		snapshot := choices.Clone()
		var err error

		switch step {
		case stepPackageName:
			err = promptRequired(ui, messages.WizardTitlePackageName, &choices.PackageName, messages.WizardNameRequired)
		case stepPackageVersion:
			err = promptRequired(ui, messages.WizardTitlePackageVersion, &choices.PackageVersion, messages.WizardVersionRequired)
		case stepSourceDir:
			err = promptRequired(ui, messages.WizardTitleSourceDir, &choices.SourceDir, messages.WizardSourceRequired)
		case stepSubprojectDir:
			err = ui.Input(messages.WizardTitleSubprojectDir, &choices.SubprojectDir)
		case stepPrefix:
			err = promptPrefix(ui, choices)
		case stepHostPackages:
			err = promptHostPackages(ui, choices)
		case stepIndexDeps:
			err = promptIndexDeps(ui, choices)
		case stepAssets:
			err = promptAssets(ui, choices)
		default:
			return nil
		}

		if err == nil {
			if step == stepAssets {
				return nil
			}
			step++
			continue
		}

		if !errors.Is(err, errWizardBack) {
			return err
		}

		if snapshot != nil {
			*choices = *snapshot
		}

		if step == stepPackageName {
			exit, confirmErr := confirmExitOnFirstStepEscape(ui)
			if confirmErr != nil {
				return confirmErr
			}
			if exit {
				return errWizardCancelled
			}
			continue
		}

		step--
	}
}

// promptRequired re-prompts until the answer is non-empty.
func promptRequired(ui UI, title string, value *string, requiredMsg string) error {
	for {
		if err := ui.Input(title, value); err != nil {
			return err
		}
		if *value != "" {
			return nil
		}
		if err := ui.Note(title, requiredMsg); err != nil {
			return err
		}
	}
}

func promptPrefix(ui UI, choices *Choices) error {
	options := []string{"/usr", "/usr/local", "/opt/" + choices.PackageName}
	current := choices.Prefix
	found := false
	for _, o := range options {
		if o == current {
			found = true
			break
		}
	}
	if !found {
		options = append(options, current)
	}
	if err := ui.Select(messages.WizardTitlePrefix, options, &current); err != nil {
		return err
	}
	choices.Prefix = current
	return nil
}

func promptHostPackages(ui UI, choices *Choices) error {
	answer := joinEntries(choices.HostPackages)
	if err := ui.Input(messages.WizardTitleHostPackages, &answer); err != nil {
		return err
	}
	choices.HostPackages = splitCSV(answer)
	return nil
}

func promptIndexDeps(ui UI, choices *Choices) error {
	for {
		answer := joinDependencies(choices.Dependencies)
		if err := ui.Input(messages.WizardTitleIndexDeps, &answer); err != nil {
			return err
		}
		deps, err := parseDependencies(answer, choices.HostPackages)
		if err == nil {
			choices.Dependencies = deps
			return nil
		}
		if noteErr := ui.Note(messages.WizardTitleIndexDeps, err.Error()); noteErr != nil {
			return noteErr
		}
	}
}

// parseDependencies parses the comma-separated answer and rejects names that
// are also listed as host-managed; that overlap is a policy conflict the run
// would refuse anyway, so the wizard catches it at entry time.
func parseDependencies(answer string, hostPackages []string) ([]DependencyEntry, error) {
	hostSet := make(map[string]struct{}, len(hostPackages))
	for _, name := range hostPackages {
		hostSet[wheel.NormalizeName(name)] = struct{}{}
	}

	var deps []DependencyEntry
	for _, entry := range splitCSV(answer) {
		dep, err := parseDependencyEntry(entry)
		if err != nil {
			return nil, err
		}
		if _, conflict := hostSet[wheel.NormalizeName(dep.Name)]; conflict {
			return nil, fmt.Errorf(messages.WizardHostAndIndexOverlapFmt, dep.Name)
		}
		deps = append(deps, dep)
	}
	return deps, nil
}

func promptAssets(ui UI, choices *Choices) error {
	if err := ui.Input(messages.WizardTitleDesktopAsset, &choices.DesktopAsset); err != nil {
		return err
	}
	return ui.Input(messages.WizardTitleIconAsset, &choices.IconAsset)
}

func confirmExitOnFirstStepEscape(ui UI) (bool, error) {
	exit := true
	if err := ui.Confirm(messages.WizardTitleConfirmExit, &exit); err != nil {
		if errors.Is(err, errWizardBack) {
			return false, nil
		}
		return false, err
	}
	return exit, nil
}

// confirmAndWrite renders the patched recipe, shows the diff, and writes the
// file after confirmation.
func confirmAndWrite(recipePath string, current string, ui UI, choices *Choices, out io.Writer) error {
	patched, err := PatchRecipe(current, choices)
	if err != nil {
		return err
	}

	if patched == current {
		_, _ = fmt.Fprintln(out, messages.WizardNoChanges)
		return nil
	}

	diff := udiff.Unified(root.RecipeFileName, root.RecipeFileName+" (updated)", current, patched)
	if err := ui.Note(messages.WizardTitleReview, diff); err != nil {
		return err
	}

	confirm := true
	if err := ui.Confirm(messages.WizardTitleConfirmWrite, &confirm); err != nil {
		return err
	}
	if !confirm {
		_, _ = fmt.Fprintln(out, messages.WizardExitWithoutChanges)
		return nil
	}

	if err := fsutil.WriteFileAtomic(recipePath, []byte(patched), 0o644); err != nil {
		return fmt.Errorf(messages.WizardWriteRecipeFailedFmt, recipePath, err)
	}
	_, _ = fmt.Fprintf(out, messages.WizardRecipeWrittenFmt, recipePath)
	return nil
}

func joinEntries(entries []string) string {
	answer := ""
	for i, e := range entries {
		if i > 0 {
			answer += ", "
		}
		answer += e
	}
	return answer
}

func joinDependencies(deps []DependencyEntry) string {
	answer := ""
	for i, d := range deps {
		if i > 0 {
			answer += ", "
		}
		answer += d.Name
		if d.MinVersion != "" {
			answer += ">=" + d.MinVersion
		}
	}
	return answer
}
