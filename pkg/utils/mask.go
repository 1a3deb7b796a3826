package utils

// MaskSecret returns a redacted preview of a secret value that is safe to
// put in debug logs. Short values are fully masked so nothing trivially
// reversible leaks.
func MaskSecret(value string) string {
	if len(value) <= 8 {
		return "***"
	}
	return value[:4] + "***"
}
