package messages

// CLI messages for user-facing commands.
const (
	// RootUse is the CLI command name.
	RootUse = "wheelstage"
	// RootShort is the short description for the root command.
	RootShort         = "Multi-channel dependency installer for wheel-based packaging"
	RootLong          = "wheelstage builds Python wheels, assigns each runtime dependency to exactly one\ninstallation channel (host package manager, package index, or locally built\nartifact), and installs the result into a filesystem staging root."
	RootMissingRecipe = "no wheelstage recipe found (missing wheelstage.toml); run 'wheelstage init' to create one"

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	// RunUse is the run command name.
	RunUse   = "run"
	RunShort = "Run the full packaging pipeline into a staging root"

	RunFlagStaging = "Override the staging root from the recipe"
	RunFlagPlain   = "Disable the progress monitor even on an interactive terminal"
	RunFlagVerbose = "Print external tool output and asset rewrite diffs"
	RunDoneFmt     = "Staged %s %s into %s\n"

	// PlanUse is the plan command name.
	PlanUse   = "plan"
	PlanShort = "Classify dependencies and print the install plan without installing"

	PlanHeaderFmt      = "Install plan for %s %s:\n"
	PlanHostManagedFmt = "  host-managed   %s (assumed pre-satisfied, no action)\n"
	PlanIndexFmt       = "  index-install  %s\n"
	PlanLocalFmt       = "  local-artifact %s (%s)\n"
	PlanDepsFullNote   = " [with dependencies]"
	PlanNoDepsNote     = " [no dependency resolution]"

	// BuildUse is the build command name.
	BuildUse   = "build"
	BuildShort = "Build the primary and subproject wheels only"

	BuildBuiltFmt = "Built %s\n"

	// DoctorUse is the doctor command name.
	DoctorUse   = "doctor"
	DoctorShort = "Check the recipe and build environment"

	// InitUse is the init command name.
	InitUse   = "init"
	InitShort = "Create a starter wheelstage.toml in the current directory"

	InitFlagWizard      = "Answer recipe questions interactively"
	InitRecipeExistsFmt = "recipe already exists at %s; edit it directly or re-run with --wizard to update values"
	InitWroteRecipeFmt  = "Wrote %s\n"
)
