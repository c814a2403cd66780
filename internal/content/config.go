package content

import "github.com/qazprep/qazprep/internal/locale"

// Config controls content generation.
type Config struct {
	Lang       locale.Lang
	GradeLevel int // 0 when unknown

	// Video counts per band. Weak topics get the min count when the
	// classification confidence is low, the max count otherwise.
	VideoCountWeakMin    int
	VideoCountWeakMax    int
	VideoCountBorderline int
	VideoCountStrong     int
}

// DefaultConfig returns the standard generation settings.
func DefaultConfig() Config {
	return Config{
		Lang:                 locale.LangEN,
		VideoCountWeakMin:    2,
		VideoCountWeakMax:    3,
		VideoCountBorderline: 1,
		VideoCountStrong:     0,
	}
}
