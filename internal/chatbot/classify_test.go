package chatbot

import (
	"testing"

	"github.com/stretchr/testify/require"

	"codecraft-agent/internal/domain"
)

func classifyText(text string) domain.Category {
	return Classify(Normalize(text))
}

func TestClassify_StudentExam(t *testing.T) {
	require.Equal(t, domain.CategoryStudentExam, classifyText("students taking online exam"))
	require.Equal(t, domain.CategoryStudentExam, classifyText("student quiz platform"))
	require.Equal(t, domain.CategoryStudentExam, classifyText("student test results portal"))
	// "student" alone without an assessment word is not enough
	require.NotEqual(t, domain.CategoryStudentExam, classifyText("student housing portal"))
}

func TestClassify_PriorityOrderIsFixed(t *testing.T) {
	// First match wins: a message hitting both rule 1 and rule 2 keywords is
	// a student exam system because that rule is checked first.
	got := classifyText("student exam system with inventory of questions")
	require.Equal(t, domain.CategoryStudentExam, got)

	// Inventory beats ecommerce the same way.
	require.Equal(t, domain.CategoryInventory, classifyText("stock levels for my shop"))
}

func TestClassify_Inventory(t *testing.T) {
	require.Equal(t, domain.CategoryInventory, classifyText("track warehouse shipments"))
	require.Equal(t, domain.CategoryInventory, classifyText("monitor stock levels"))
}

func TestClassify_Ecommerce(t *testing.T) {
	require.Equal(t, domain.CategoryEcommerce, classifyText("launch an ecommerce site"))
	require.Equal(t, domain.CategoryEcommerce, classifyText("open my own shop"))
	// "online" only counts together with "sell"
	require.Equal(t, domain.CategoryEcommerce, classifyText("sell handmade goods online"))
	require.Equal(t, domain.CategoryGeneral, classifyText("online booking portal"))
}

func TestClassify_Blog(t *testing.T) {
	require.Equal(t, domain.CategoryBlog, classifyText("personal blog with comments"))
	require.Equal(t, domain.CategoryBlog, classifyText("content management platform"))
	// "content" without "management" is not enough
	require.Equal(t, domain.CategoryGeneral, classifyText("video content pipeline"))
}

func TestClassify_FallsBackToGeneral(t *testing.T) {
	require.Equal(t, domain.CategoryGeneral, classifyText("crm for my sales team"))
	require.Equal(t, domain.CategoryGeneral, Classify(map[string]bool{}))
}
