package associations

import "strings"

// CategoryLabel turns a datatype identifier into a human-readable label:
// "known_drug" becomes "Known drug".
func CategoryLabel(id string) string {
	label := strings.ReplaceAll(id, "_", " ")
	if label == "" {
		return label
	}
	return strings.ToUpper(label[:1]) + label[1:]
}
