package listing

import "slices"

// Well-known config badges.
const (
	BadgeRecommended = "✅"
	BadgeStyle       = "🎨"
	BadgeFallback    = "💼"
)

// numberBadges are handed out to configs without a well-known badge or an
// override, in sorted name order.
var numberBadges = []string{"1️⃣", "2️⃣", "3️⃣", "4️⃣", "5️⃣", "6️⃣", "7️⃣", "8️⃣", "9️⃣", "🔟"}

// ConfigBadges assigns a badge to every config name. Overrides win, then
// well-known defaults, then numbers; once the numbers run out every further
// config shares the generic badge.
func ConfigBadges(names []string, overrides map[string]string) map[string]string {
	sorted := slices.Clone(names)
	slices.Sort(sorted)

	badges := make(map[string]string, len(sorted))
	next := 0
	for _, name := range sorted {
		if emoji, ok := overrides[name]; ok {
			badges[name] = emoji
			continue
		}
		switch name {
		case "recommended":
			badges[name] = BadgeRecommended
		case "style":
			badges[name] = BadgeStyle
		default:
			if next < len(numberBadges) {
				badges[name] = numberBadges[next]
				next++
			} else {
				badges[name] = BadgeFallback
			}
		}
	}
	return badges
}
