package messages

// Wizard messages for interactive recipe setup.
const (
	// WizardRequiresTerminal indicates the wizard was run without a TTY.
	WizardRequiresTerminal = "the recipe wizard requires an interactive terminal; run 'wheelstage init' without --wizard instead"

	WizardTitlePackageName    = "Package name"
	WizardTitlePackageVersion = "Package version"
	WizardTitleSourceDir      = "Source directory (must contain pyproject.toml)"
	WizardTitleSubprojectDir  = "Subproject directory (leave empty for none)"
	WizardTitlePrefix         = "Install prefix"
	WizardTitleHostPackages   = "Host-managed dependencies (comma separated, leave empty for none)"
	WizardTitleIndexDeps      = "Package-index dependencies, name or name>=version (comma separated, leave empty for none)"
	WizardTitleDesktopAsset   = "Desktop entry file (leave empty for none)"
	WizardTitleIconAsset      = "Icon file (leave empty for none)"
	WizardTitleConfirmWrite   = "Write wheelstage.toml?"
	WizardTitleReview         = "Review changes"
	WizardTitleConfirmExit    = "Exit the wizard without writing a recipe?"

	WizardNameRequired    = "package name is required"
	WizardVersionRequired = "package version is required"
	WizardSourceRequired  = "source directory is required"

	WizardExitWithoutChanges = "Exited without changes."
	WizardNoChanges          = "Recipe already matches your selections; nothing to write."
	WizardRecipeWrittenFmt   = "Wrote %s\n"

	WizardParseRecipeFailedFmt      = "existing recipe is not valid TOML: %w"
	WizardWriteRecipeFailedFmt      = "write recipe %s: %w"
	WizardReadRecipeFailedFmt       = "read recipe %s: %w"
	WizardReadTemplateFailedFmt     = "read starter recipe template: %w"
	WizardInvalidDependencyEntryFmt = "invalid dependency entry %q: use name or name>=version"
	WizardPatchedRecipeInvalidFmt   = "patched recipe is not valid TOML: %w"
	WizardHostAndIndexOverlapFmt    = "dependency %q listed as both host-managed and package-index"
)
