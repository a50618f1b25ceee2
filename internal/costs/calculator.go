// Package costs estimates provider charges for gateway requests.
package costs

import (
	"os"
	"strconv"
	"unicode/utf8"
)

// Pricing constants in micro-dollars per unit. Defaults follow the public
// us-east-1 price list and can be overridden via environment variables.
var (
	// PollyStandardMicrosPerChar: $4.00 per 1M characters.
	PollyStandardMicrosPerChar = getEnvFloat("COST_POLLY_STANDARD_MICROS_PER_CHAR", 4)

	// PollyNeuralMicrosPerChar: $16.00 per 1M characters.
	PollyNeuralMicrosPerChar = getEnvFloat("COST_POLLY_NEURAL_MICROS_PER_CHAR", 16)

	// PollyLongFormMicrosPerChar: $100.00 per 1M characters.
	PollyLongFormMicrosPerChar = getEnvFloat("COST_POLLY_LONG_FORM_MICROS_PER_CHAR", 100)

	// PollyGenerativeMicrosPerChar: $30.00 per 1M characters.
	PollyGenerativeMicrosPerChar = getEnvFloat("COST_POLLY_GENERATIVE_MICROS_PER_CHAR", 30)

	// ComprehendPIIMicrosPerUnit: $0.0001 per 100-character unit.
	ComprehendPIIMicrosPerUnit = getEnvFloat("COST_COMPREHEND_PII_MICROS_PER_UNIT", 100)
)

const (
	comprehendUnitChars = 100
	comprehendMinUnits  = 3
)

// SpeechCost estimates the charge for synthesizing chars characters with
// the given engine. Unknown engines are priced as neural.
func SpeechCost(engine string, chars int) int64 {
	if chars <= 0 {
		return 0
	}
	var rate float64
	switch engine {
	case "standard":
		rate = PollyStandardMicrosPerChar
	case "long-form":
		rate = PollyLongFormMicrosPerChar
	case "generative":
		rate = PollyGenerativeMicrosPerChar
	default:
		rate = PollyNeuralMicrosPerChar
	}
	return roundToInt64(float64(chars) * rate)
}

// PIICost estimates the charge for one PII detection request on text.
// Comprehend bills in 100-character units with a 3 unit minimum.
func PIICost(text string) int64 {
	chars := utf8.RuneCountInString(text)
	if chars == 0 {
		return 0
	}
	units := (chars + comprehendUnitChars - 1) / comprehendUnitChars
	if units < comprehendMinUnits {
		units = comprehendMinUnits
	}
	return roundToInt64(float64(units) * ComprehendPIIMicrosPerUnit)
}

func roundToInt64(f float64) int64 {
	if f < 0 {
		return int64(f - 0.5)
	}
	return int64(f + 0.5)
}

// getEnvFloat returns an environment variable as float64, or the default if not set.
func getEnvFloat(key string, defaultVal float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return defaultVal
}
