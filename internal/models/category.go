package models

type TaskCategory string

const (
	CategoryWebDevelopment     TaskCategory = "web-development"
	CategoryGraphicDesign      TaskCategory = "graphic-design"
	CategoryWritingTranslation TaskCategory = "writing-translation"
	CategoryDigitalMarketing   TaskCategory = "digital-marketing"
	CategoryVideoAnimation     TaskCategory = "video-animation"
	CategoryOther              TaskCategory = "other"
)

// CategoryInfo describes a category as presented to clients.
type CategoryInfo struct {
	Slug        TaskCategory `json:"slug"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
}

// Categories returns the closed set of task categories in display order.
func Categories() []CategoryInfo {
	return []CategoryInfo{
		{Slug: CategoryWebDevelopment, Name: "Web Development", Description: "Build and maintain websites and web apps."},
		{Slug: CategoryGraphicDesign, Name: "Graphic Design", Description: "Logos, branding, illustrations, and more."},
		{Slug: CategoryWritingTranslation, Name: "Writing & Translation", Description: "Content, copywriting, and translation services."},
		{Slug: CategoryDigitalMarketing, Name: "Digital Marketing", Description: "SEO, social media, and advertising campaigns."},
		{Slug: CategoryVideoAnimation, Name: "Video & Animation", Description: "Editing, animation, and video production."},
		{Slug: CategoryOther, Name: "Other", Description: "Various other tasks and services."},
	}
}

func ValidCategory(c TaskCategory) bool {
	switch c {
	case CategoryWebDevelopment, CategoryGraphicDesign, CategoryWritingTranslation,
		CategoryDigitalMarketing, CategoryVideoAnimation, CategoryOther:
		return true
	default:
		return false
	}
}
