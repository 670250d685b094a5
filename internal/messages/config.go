package messages

// Recipe configuration messages.
const (
	// ConfigMissingFileFmt indicates the recipe file could not be read.
	ConfigMissingFileFmt = "missing recipe file %s: %w"
	// ConfigInvalidConfigFmt indicates the recipe failed to parse.
	ConfigInvalidConfigFmt          = "invalid recipe %s: %w"
	ConfigUnrecognizedKeysFmt       = "recipe %s contains unrecognized keys: %v;"
	ConfigValidationGuidance        = "fix wheelstage.toml and re-run (see 'wheelstage doctor')"
	ConfigPackageNameRequired       = "package.name is required"
	ConfigPackageNameInvalidFmt     = "package.name %q must contain only letters, digits, '.', '_' and '-'"
	ConfigPackageVersionRequired    = "package.version is required"
	ConfigSourceRequired            = "package.source is required"
	ConfigPrefixNotAbsoluteFmt      = "package.prefix %q must be an absolute path"
	ConfigStagingRootRequired       = "staging.root is required"
	ConfigDependencyNameRequiredFmt = "dependency #%d is missing a name"
	ConfigDuplicateDependencyFmt    = "dependency %q is declared more than once"
	ConfigInstallModeInvalidFmt     = "install.%s must be \"none\" or \"full\", got %q"
	ConfigExpandPathFmt             = "expand path %q: %w"

	// ConfigMissingEnvFileFmt indicates the .env overrides file could not be read.
	ConfigMissingEnvFileFmt = "missing env file %s: %w"
	ConfigInvalidEnvFileFmt = "invalid env file %s: %w"

	// EnvfileLineErrorFmt formats a parse error with its line number.
	EnvfileLineErrorFmt    = "line %d: %w"
	EnvfileReadFailedFmt   = "read env content: %w"
	EnvfileMissingKey      = "missing key before '='"
	EnvfileMissingEquals   = "expected KEY=VALUE"
	EnvfileUnbalancedQuote = "unbalanced quote in value"
)
