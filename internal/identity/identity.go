package identity

const (
	BrandName = "tps"
	// AppSlug is the canonical identifier for user-facing and on-disk state.
	// It matches the CLI binary name.
	AppSlug = "tps"
	CLIName = "tps"

	ConfigFileName = "config.toml"
	CacheFileName  = "access_cache.toml"
	LogFileName    = "tps.log"
)
