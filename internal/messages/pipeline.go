package messages

// Build, classification, staging, and asset messages.
const (
	// WheelMissingManifestFmt indicates a source tree has no recognized manifest.
	WheelMissingManifestFmt = "source tree %s has no pyproject.toml; refusing to build"
	// WheelBuildFailedFmt wraps a build tool failure.
	WheelBuildFailedFmt     = "build wheel from %s: %w"
	WheelNoArtifactFmt      = "build tool reported success but produced no wheel in %s"
	WheelAmbiguousOutputFmt = "expected exactly one wheel in %s, found %d"
	WheelCreateOutputDirFmt = "create output directory %s: %w"
	WheelBadFilenameFmt     = "wheel filename %q is not in distribution-version-*.whl form"

	// PlanConflictFmt reports dependencies assigned to two channels at once.
	PlanConflictFmt = "dependency routing conflict: %s assigned to both the host-managed set and a local artifact; remove it from one channel in wheelstage.toml"
	// PlanDuplicateActionFmt reports a dependency scheduled twice across channels.
	PlanDuplicateActionFmt = "duplicate install action for %q: already scheduled via %s, requested again via %s"
	PlanDepsRoutedFmt      = "artifact %s is marked dependency-routed but the plan requests a full-dependency install; set install.%s = \"none\" or remove its declared dependencies"

	// StageStagingRootRequired indicates the orchestrator was built without a staging root.
	StageStagingRootRequired = "staging root is required"
	StageCreateStagingFmt    = "create staging root %s: %w"
	// StageInstallFailedFmt renders an external installer failure; the
	// underlying error is exposed via Unwrap, not wrapped here.
	StageInstallFailedFmt = "install %s: %v"
	StageAbortedFmt       = "aborting remaining plan after failure installing %s; partial staging root %s left for inspection"

	// AssetsCopyFailedFmt wraps a static asset copy failure.
	AssetsCopyFailedFmt  = "copy asset %s: %w"
	AssetsReadDesktopFmt = "read desktop entry %s: %w"
	AssetsCreateDirFmt   = "create asset directory %s: %w"
	AssetsWriteFmt       = "write %s: %w"
	AssetsDiffHeaderFmt  = "Rewrote icon reference in %s:\n"

	// PipelineStageBuildPrimary names the primary build stage in progress output.
	PipelineStageBuildPrimary    = "build primary wheel"
	PipelineStageBuildSubproject = "build subproject wheel"
	PipelineStageClassify        = "classify dependencies"
	PipelineStageInstall         = "install into staging root"
	PipelineStageAssets          = "place desktop assets"
	PipelineStageFmt             = "[%d/%d] %s\n"
	PipelineStageFailedFmt       = "stage %q failed: %w"
)
