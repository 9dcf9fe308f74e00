package nlp

import "strings"

// aliases maps a normalized token to the trade terms it should also match.
var aliases = map[string][]string{
	"plumber":     {"plumbing"},
	"plumbing":    {"plumber"},
	"electrician": {"electrical"},
	"electrical":  {"electrician"},
	"wiring":      {"wire"},
	"wire":        {"wiring"},
	"cleaner":     {"cleaning"},
	"cleaning":    {"cleaner"},
	"carpenter":   {"carpentry"},
	"carpentry":   {"carpenter"},
	"painter":     {"painting"},
	"painting":    {"painter"},
	"gardener":    {"gardening"},
	"gardening":   {"gardener"},
	"mover":       {"moving"},
	"moving":      {"mover"},
}

// SkillVariants returns the normalized query plus alias spellings. For
// multi-word phrases each token is expanded in place, one variant per alias.
func SkillVariants(skill string) []string {
	base := NormalizeText(skill)
	if base == "" {
		return []string{}
	}
	var out []string
	seen := map[string]struct{}{}
	add := func(s string) {
		if _, ok := seen[s]; ok {
			return
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}

	add(base)
	parts := strings.Split(base, " ")
	for i, p := range parts {
		for _, alt := range aliases[p] {
			variant := append(append(append([]string(nil), parts[:i]...), alt), parts[i+1:]...)
			add(strings.Join(variant, " "))
		}
	}
	return out
}

// MatchesAnySkill reports whether any skill contains the query, or one of its
// variants, as whole words.
func MatchesAnySkill(skills []string, query string) bool {
	variants := SkillVariants(query)
	for _, s := range skills {
		text := NormalizeText(s)
		for _, v := range variants {
			if ContainsPhrase(text, v) {
				return true
			}
		}
	}
	return false
}
