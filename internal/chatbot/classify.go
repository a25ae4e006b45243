package chatbot

import "codecraft-agent/internal/domain"

// Classify maps a normalized token set to a project category. Rules are
// evaluated in a fixed priority order and the first match wins; this is the
// tie-break policy, so a message that mentions both students and inventory is
// a student exam system because that rule is checked first. Order must not be
// reshuffled.
func Classify(tokens map[string]bool) domain.Category {
	switch {
	case hasAny(tokens, "student", "students") && hasAny(tokens, "exam", "test", "quiz"):
		return domain.CategoryStudentExam
	case hasAny(tokens, "inventory", "stock", "warehouse"):
		return domain.CategoryInventory
	case hasAny(tokens, "ecommerce", "shop", "store") || (tokens["online"] && tokens["sell"]):
		return domain.CategoryEcommerce
	case tokens["blog"] || (tokens["content"] && tokens["management"]):
		return domain.CategoryBlog
	default:
		return domain.CategoryGeneral
	}
}

func hasAny(tokens map[string]bool, words ...string) bool {
	for _, w := range words {
		if tokens[w] {
			return true
		}
	}
	return false
}
