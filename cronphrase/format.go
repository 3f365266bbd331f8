package cronphrase

import "strings"

// formatField describes a whole field: every comma-separated section is
// classified and rendered, then joined as an English list. Fields that are
// not bare get their name in front unless the phrase already opens with
// "every <name>".
func formatField(k Kind, raw string) (string, error) {
	parts := strings.Split(raw, ",")
	rendered := make([]string, 0, len(parts))
	for _, part := range parts {
		sec, err := classifySection(k, part)
		if err != nil {
			return "", err
		}
		rendered = append(rendered, sec.render(k))
	}

	phrase := joinList(rendered)
	if k.spec().bare || strings.HasPrefix(phrase, "every ") {
		return phrase, nil
	}
	return k.Name() + " " + phrase, nil
}

func joinList(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + ", and " + items[len(items)-1]
	}
}
