package markdown

// utilityIcons maps general utility label keys onto the glyph shown in the
// icon comment at the top of a hazard document.
var utilityIcons = map[string]string{
	"1": "⚠️", // logged hazard
	"2": "🆕",  // new hazard for triage
	"3": "🚫",  // deprecated hazard
}

const (
	defaultIcon = "⚠️"
	unknownIcon = "❓"
)

func iconFor(key string, overrides map[string]string) string {
	if glyph, ok := overrides[key]; ok {
		return glyph
	}
	if glyph, ok := utilityIcons[key]; ok {
		return glyph
	}
	return unknownIcon
}
