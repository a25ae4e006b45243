package chatbot

import (
	"math/rand"
	"strings"

	"codecraft-agent/internal/domain"
)

// defaultFollowupWordLimit is the raw word count below which a message is
// treated as a continuation of the prior topic instead of a fresh request.
const defaultFollowupWordLimit = 5

// followupKeywords are matched as case-insensitive substrings against the raw
// message, deliberately looser than the token matching used for
// classification: "pricing" should count because of "price"-adjacent words
// like "cost" appearing inside longer strings.
var followupKeywords = []string{
	"more", "details", "how", "what", "when", "budget", "timeline",
	"features", "technology", "integration", "cost", "time", "mobile", "web",
}

// IsFollowup reports whether a message should bypass classification and be
// answered as a follow-up to the previous exchange. Only short messages in an
// ongoing conversation qualify.
func IsFollowup(message string, conversationNonEmpty bool, wordLimit int) bool {
	if !conversationNonEmpty {
		return false
	}
	if wordLimit <= 0 {
		wordLimit = defaultFollowupWordLimit
	}
	return wordCount(message) < wordLimit
}

// hasFollowupKeyword reports whether the raw message contains any follow-up
// keyword as a substring.
func hasFollowupKeyword(message string) bool {
	lower := strings.ToLower(message)
	for _, kw := range followupKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// followupPools holds the short continuation prompts offered per category.
// One entry is drawn at random per follow-up turn; the randomness is a
// freshness touch, so callers and tests should only rely on membership.
var followupPools = map[domain.Category][]string{
	domain.CategoryStudentExam: {
		"For the exam system, we can go deeper on question banks, auto-grading, or proctoring. Which area matters most?",
		"Happy to expand. Should we detail the teacher dashboards or the student-facing exam flow next?",
		"We can also cover how results and analytics are reported to administrators. Want the breakdown?",
	},
	domain.CategoryInventory: {
		"For inventory, the usual next step is deciding on barcode scanning and multi-warehouse support. Shall we?",
		"We can detail the stock alert thresholds and purchase order automation if that helps.",
		"Want me to expand on how the reporting and forecasting tools would work for your stock levels?",
	},
	domain.CategoryEcommerce: {
		"For the store, payment gateways and checkout flow are the big decisions. Want specifics?",
		"We can look closer at cart recovery, shipping integrations, or the product catalog next.",
	},
	domain.CategoryBlog: {
		"For the blog platform, we can detail the editorial workflow or the SEO tooling. Which first?",
		"Want me to expand on content scheduling and the commenting system?",
	},
}

// genericFollowupPool backs categories without a dedicated pool, including
// general projects.
var genericFollowupPool = []string{
	"Could you tell me more about which part of the recommendation you'd like expanded?",
	"I can go deeper on timeline, budget, or features. Which would help most?",
	"Happy to elaborate. What aspect of the project should we focus on?",
}

// randIntn is the injectable random source used when drawing from a pool.
// Overridden in tests for determinism.
var randIntn = rand.Intn

// pickFollowup draws one continuation prompt for the category, falling back
// to the generic pool.
func pickFollowup(category domain.Category) string {
	pool, ok := followupPools[category]
	if !ok || len(pool) == 0 {
		pool = genericFollowupPool
	}
	return pool[randIntn(len(pool))]
}
