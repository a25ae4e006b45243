package domain

// Category is the project classification tag driving template selection.
type Category string

const (
	CategoryStudentExam Category = "student_exam_system"
	CategoryInventory   Category = "inventory_system"
	CategoryEcommerce   Category = "ecommerce_system"
	CategoryBlog        Category = "blog_system"
	CategoryGeneral     Category = "general_project"
)

// Label returns the human-readable name used in transition and clarification
// text shown to the user.
func (c Category) Label() string {
	switch c {
	case CategoryStudentExam:
		return "student exam system"
	case CategoryInventory:
		return "inventory system"
	case CategoryEcommerce:
		return "e-commerce system"
	case CategoryBlog:
		return "blog system"
	default:
		return "general project"
	}
}
