package models

// Patch records carry partial updates. A nil field leaves the stored value
// untouched; a non-nil field replaces it. Optional entity fields use a
// double pointer so a patch can distinguish "leave alone" from "clear".

// UserPatch updates a User.
type UserPatch struct {
	Username *string
	Password *string
	IsAdmin  *bool
}

// ProjectPatch updates a Project.
type ProjectPatch struct {
	Title        *string
	Description  *string
	ImageURL     **string
	ProjectURL   **string
	GithubURL    **string
	Technologies *[]string
}

// ExperiencePatch updates an Experience.
type ExperiencePatch struct {
	Title        *string
	Company      *string
	Location     *string
	Period       *string
	Description  *[]string
	Technologies *[]string
	Achievements *[]string
	Category     *string
	Logo         **string
}

// TestimonialPatch updates a Testimonial.
type TestimonialPatch struct {
	Name    *string
	Role    *string
	Company *string
	Content *string
	Image   **string
}

// BlogPostPatch updates a BlogPost. ViewCount is deliberately absent;
// it only moves through the increment operation.
type BlogPostPatch struct {
	Title       *string
	Slug        *string
	Excerpt     **string
	Content     *string
	Tags        *[]string
	IsPublished *bool
}

// BlogCommentPatch updates a BlogComment.
type BlogCommentPatch struct {
	Author     *string
	Email      *string
	Content    *string
	IsApproved *bool
}

// SkillPatch updates a Skill.
type SkillPatch struct {
	Name     *string
	Category *string
	Icon     **string
	Years    **int
}

// NewsletterSubscriberPatch updates a subscriber. Setting IsActive false
// is the soft unsubscribe.
type NewsletterSubscriberPatch struct {
	Email    *string
	IsActive *bool
}

// LanguagePatch updates a Language.
type LanguagePatch struct {
	Code      *string
	Name      *string
	IsActive  *bool
	IsDefault *bool
}

// SocialProfilePatch updates a SocialProfile.
type SocialProfilePatch struct {
	Platform    *string
	Username    *string
	ProfileURL  *string
	Followers   *int
	IsConnected *bool
}
