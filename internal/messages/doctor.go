package messages

// Doctor messages.
const (
	DoctorCheckNameTools  = "tools"
	DoctorCheckNameRecipe = "recipe"
	DoctorCheckNameSource = "source"
	DoctorCheckNameAssets = "assets"

	DoctorToolFoundFmt            = "%s found at %s"
	DoctorToolMissingFmt          = "%s not found on PATH"
	DoctorToolMissingRecommendFmt = "install %s and re-run"

	DoctorRecipeOKFmt               = "recipe %s parses and validates"
	DoctorRecipeInvalidFmt          = "recipe does not validate: %v"
	DoctorRecipeInvalidRecommend    = "fix the reported fields in wheelstage.toml"
	DoctorRecipeUnreadableFmt       = "recipe could not be read: %v"
	DoctorRecipeUnreadableRecommend = "run 'wheelstage init' to create a recipe"

	DoctorManifestFoundFmt   = "manifest present in %s"
	DoctorManifestMissingFmt = "no pyproject.toml in %s"
	DoctorManifestRecommend  = "point package.source (or package.subproject.path) at a buildable source tree"

	DoctorAssetFoundFmt   = "asset present: %s"
	DoctorAssetMissingFmt = "asset missing: %s"
	DoctorAssetRecommend  = "fix the [assets] paths in wheelstage.toml"

	DoctorHealthCheckFmt       = "Checking recipe at %s\n\n"
	DoctorStatusOKLabel        = "[ OK ]"
	DoctorStatusWarnLabel      = "[WARN]"
	DoctorStatusFailLabel      = "[FAIL]"
	DoctorResultLineFmt        = "%s %s: %s\n"
	DoctorRecommendationPrefix = "       -> "
	DoctorRecommendationIndent = "          "
	DoctorSuccessSummary       = "\nAll checks passed."
	DoctorFailureSummary       = "\nSome checks failed."
	DoctorFailureError         = "doctor found problems"
)
