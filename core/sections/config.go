package sections

// Config holds the list engine settings.
type Config struct {
	// PreDataCount is the number of caller-owned items before level 0.
	PreDataCount int `mapstructure:"pre_data_count" default:"0"`
	// MinRandomID is the exclusive lower bound of placeholder ids.
	MinRandomID int64 `mapstructure:"min_random_id" default:"-9223372036854775808"`
	// MaxRandomID is the first placeholder id handed out.
	MaxRandomID int64 `mapstructure:"max_random_id" default:"-1"`
	// MaxDataCacheCount is the number of placeholder data lists kept.
	MaxDataCacheCount int `mapstructure:"max_data_cache_count" default:"12"`
	// MaxHeaderCacheCount is the number of placeholder headers kept.
	MaxHeaderCacheCount int `mapstructure:"max_header_cache_count" default:"6"`
	// UseStickyHeader enables header key lookups for sticky decorations.
	UseStickyHeader bool `mapstructure:"use_sticky_header" default:"false"`
	// DetectMoves reports moves instead of remove plus insert.
	DetectMoves bool `mapstructure:"detect_moves" default:"true"`
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		MinRandomID:         DefaultMinID,
		MaxRandomID:         DefaultMaxID,
		MaxDataCacheCount:   DefaultDataCacheSize,
		MaxHeaderCacheCount: DefaultHeaderCacheSize,
		DetectMoves:         true,
	}
}
