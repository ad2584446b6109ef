package config

import (
	"strings"

	"github.com/spf13/viper"
)

const (
	featurePrefix = "FEATURE_"

	// FeatureEnhancedAnalysis switches the review prompt to the extended template.
	FeatureEnhancedAnalysis = "enhanced_analysis"
)

// Features holds the FEATURE_<NAME> toggles, keyed by lowercase name.
type Features map[string]bool

// Enabled reports whether the named toggle is on. Unknown toggles are off.
func (f Features) Enabled(name string) bool {
	return f[strings.ToLower(name)]
}

// EnhancedAnalysis reports whether the enhanced review prompt is selected.
func (f Features) EnhancedAnalysis() bool {
	return f.Enabled(FeatureEnhancedAnalysis)
}

// loadFeatures collects toggles from the .env file first and the process
// environment second, so the environment wins.
func loadFeatures(v *viper.Viper, environ []string) Features {
	features := make(Features)

	lowerPrefix := strings.ToLower(featurePrefix)
	for _, key := range v.AllKeys() {
		if name, ok := strings.CutPrefix(key, lowerPrefix); ok && name != "" {
			features[name] = isTruthy(v.GetString(key))
		}
	}

	for _, kv := range environ {
		key, value, found := strings.Cut(kv, "=")
		if !found {
			continue
		}
		name, ok := strings.CutPrefix(strings.ToUpper(key), featurePrefix)
		if !ok || name == "" {
			continue
		}
		features[strings.ToLower(name)] = isTruthy(value)
	}
	return features
}

func isTruthy(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "t", "true", "y", "yes", "on", "enabled":
		return true
	default:
		return false
	}
}
