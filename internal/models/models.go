package models

import "time"

// ContentType enumerates the kinds of values a site content entry may hold.
const (
	ContentTypeText  = "text"
	ContentTypeImage = "image"
)

// User represents an account that may administer the site.
type User struct {
	ID        int       `bson:"id" json:"id"`
	Username  string    `bson:"username" json:"username"`
	Password  string    `bson:"password" json:"-"`
	IsAdmin   bool      `bson:"isAdmin" json:"isAdmin"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// InsertUser carries the fields required to create a User.
type InsertUser struct {
	Username string `bson:"username" json:"username"`
	Password string `bson:"password" json:"password"`
	IsAdmin  bool   `bson:"isAdmin" json:"isAdmin"`
}

// Contact is a message left through the contact form. Append-only.
type Contact struct {
	ID        int       `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Subject   string    `bson:"subject" json:"subject"`
	Message   string    `bson:"message" json:"message"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// InsertContact carries the fields required to create a Contact.
type InsertContact struct {
	Name    string `bson:"name" json:"name"`
	Email   string `bson:"email" json:"email"`
	Subject string `bson:"subject" json:"subject"`
	Message string `bson:"message" json:"message"`
}

// SiteContent is a single editable content entry, addressed by (section, key).
type SiteContent struct {
	ID        int       `bson:"id" json:"id"`
	Section   string    `bson:"section" json:"section"`
	Key       string    `bson:"key" json:"key"`
	Value     string    `bson:"value" json:"value"`
	Type      string    `bson:"type" json:"type"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// InsertSiteContent carries the fields required to upsert a SiteContent entry.
type InsertSiteContent struct {
	Section string `bson:"section" json:"section"`
	Key     string `bson:"key" json:"key"`
	Value   string `bson:"value" json:"value"`
	Type    string `bson:"type" json:"type"`
}

// Project is a portfolio project entry.
type Project struct {
	ID           int       `bson:"id" json:"id"`
	Title        string    `bson:"title" json:"title"`
	Description  string    `bson:"description" json:"description"`
	ImageURL     *string   `bson:"imageUrl" json:"imageUrl"`
	ProjectURL   *string   `bson:"projectUrl" json:"projectUrl"`
	GithubURL    *string   `bson:"githubUrl" json:"githubUrl"`
	Technologies []string  `bson:"technologies" json:"technologies"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// InsertProject carries the fields required to create a Project.
type InsertProject struct {
	Title        string   `bson:"title" json:"title"`
	Description  string   `bson:"description" json:"description"`
	ImageURL     *string  `bson:"imageUrl" json:"imageUrl"`
	ProjectURL   *string  `bson:"projectUrl" json:"projectUrl"`
	GithubURL    *string  `bson:"githubUrl" json:"githubUrl"`
	Technologies []string `bson:"technologies" json:"technologies"`
}

// Experience is a work or education history entry.
type Experience struct {
	ID           int       `bson:"id" json:"id"`
	Title        string    `bson:"title" json:"title"`
	Company      string    `bson:"company" json:"company"`
	Location     string    `bson:"location" json:"location"`
	Period       string    `bson:"period" json:"period"`
	Description  []string  `bson:"description" json:"description"`
	Technologies []string  `bson:"technologies" json:"technologies"`
	Achievements []string  `bson:"achievements" json:"achievements"`
	Category     string    `bson:"category" json:"category"`
	Logo         *string   `bson:"logo" json:"logo"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// InsertExperience carries the fields required to create an Experience.
type InsertExperience struct {
	Title        string   `bson:"title" json:"title"`
	Company      string   `bson:"company" json:"company"`
	Location     string   `bson:"location" json:"location"`
	Period       string   `bson:"period" json:"period"`
	Description  []string `bson:"description" json:"description"`
	Technologies []string `bson:"technologies" json:"technologies"`
	Achievements []string `bson:"achievements" json:"achievements"`
	Category     string   `bson:"category" json:"category"`
	Logo         *string  `bson:"logo" json:"logo"`
}

// Testimonial is a quote from a colleague or client.
type Testimonial struct {
	ID        int       `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Role      string    `bson:"role" json:"role"`
	Company   string    `bson:"company" json:"company"`
	Content   string    `bson:"content" json:"content"`
	Image     *string   `bson:"image" json:"image"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// InsertTestimonial carries the fields required to create a Testimonial.
type InsertTestimonial struct {
	Name    string  `bson:"name" json:"name"`
	Role    string  `bson:"role" json:"role"`
	Company string  `bson:"company" json:"company"`
	Content string  `bson:"content" json:"content"`
	Image   *string `bson:"image" json:"image"`
}

// BlogPost is an article. Slug is unique within an adapter.
type BlogPost struct {
	ID          int       `bson:"id" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Slug        string    `bson:"slug" json:"slug"`
	Excerpt     *string   `bson:"excerpt" json:"excerpt"`
	Content     string    `bson:"content" json:"content"`
	Tags        []string  `bson:"tags" json:"tags"`
	IsPublished bool      `bson:"isPublished" json:"isPublished"`
	ViewCount   int       `bson:"viewCount" json:"viewCount"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

// InsertBlogPost carries the fields required to create a BlogPost.
type InsertBlogPost struct {
	Title       string   `bson:"title" json:"title"`
	Slug        string   `bson:"slug" json:"slug"`
	Excerpt     *string  `bson:"excerpt" json:"excerpt"`
	Content     string   `bson:"content" json:"content"`
	Tags        []string `bson:"tags" json:"tags"`
	IsPublished bool     `bson:"isPublished" json:"isPublished"`
}

// BlogComment belongs to a post by id. The reference is not enforced:
// deleting a post leaves its comments behind for the caller to handle.
type BlogComment struct {
	ID         int       `bson:"id" json:"id"`
	PostID     int       `bson:"postId" json:"postId"`
	Author     string    `bson:"author" json:"author"`
	Email      string    `bson:"email" json:"email"`
	Content    string    `bson:"content" json:"content"`
	IsApproved bool      `bson:"isApproved" json:"isApproved"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
}

// InsertBlogComment carries the fields required to create a BlogComment.
type InsertBlogComment struct {
	PostID  int    `bson:"postId" json:"postId"`
	Author  string `bson:"author" json:"author"`
	Email   string `bson:"email" json:"email"`
	Content string `bson:"content" json:"content"`
}

// Skill is a single skill entry grouped by category.
type Skill struct {
	ID        int       `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Category  string    `bson:"category" json:"category"`
	Icon      *string   `bson:"icon" json:"icon"`
	Years     *int      `bson:"years" json:"years"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// InsertSkill carries the fields required to create a Skill.
type InsertSkill struct {
	Name     string  `bson:"name" json:"name"`
	Category string  `bson:"category" json:"category"`
	Icon     *string `bson:"icon" json:"icon"`
	Years    *int    `bson:"years" json:"years"`
}

// NewsletterSubscriber is a mailing-list entry. Unsubscribing deactivates
// rather than deletes.
type NewsletterSubscriber struct {
	ID        int       `bson:"id" json:"id"`
	Email     string    `bson:"email" json:"email"`
	IsActive  bool      `bson:"isActive" json:"isActive"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// InsertNewsletterSubscriber carries the fields required to create a subscriber.
type InsertNewsletterSubscriber struct {
	Email    string `bson:"email" json:"email"`
	IsActive bool   `bson:"isActive" json:"isActive"`
}

// Language is a UI language the site can render in. At most one language
// is the default at a time.
type Language struct {
	ID        int       `bson:"id" json:"id"`
	Code      string    `bson:"code" json:"code"`
	Name      string    `bson:"name" json:"name"`
	IsActive  bool      `bson:"isActive" json:"isActive"`
	IsDefault bool      `bson:"isDefault" json:"isDefault"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// InsertLanguage carries the fields required to create a Language.
type InsertLanguage struct {
	Code      string `bson:"code" json:"code"`
	Name      string `bson:"name" json:"name"`
	IsActive  bool   `bson:"isActive" json:"isActive"`
	IsDefault bool   `bson:"isDefault" json:"isDefault"`
}

// Translation is a localized string, addressed by (languageCode, key).
type Translation struct {
	ID           int       `bson:"id" json:"id"`
	LanguageCode string    `bson:"languageCode" json:"languageCode"`
	Key          string    `bson:"key" json:"key"`
	Value        string    `bson:"value" json:"value"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// InsertTranslation carries the fields required to upsert a Translation.
type InsertTranslation struct {
	LanguageCode string `bson:"languageCode" json:"languageCode"`
	Key          string `bson:"key" json:"key"`
	Value        string `bson:"value" json:"value"`
}

// SocialProfile is a linked social account with cached follower metadata.
type SocialProfile struct {
	ID          int       `bson:"id" json:"id"`
	Platform    string    `bson:"platform" json:"platform"`
	Username    string    `bson:"username" json:"username"`
	ProfileURL  string    `bson:"profileUrl" json:"profileUrl"`
	Followers   int       `bson:"followers" json:"followers"`
	IsConnected bool      `bson:"isConnected" json:"isConnected"`
	LastSynced  time.Time `bson:"lastSynced" json:"lastSynced"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}

// InsertSocialProfile carries the fields required to create a SocialProfile.
type InsertSocialProfile struct {
	Platform    string `bson:"platform" json:"platform"`
	Username    string `bson:"username" json:"username"`
	ProfileURL  string `bson:"profileUrl" json:"profileUrl"`
	Followers   int    `bson:"followers" json:"followers"`
	IsConnected bool   `bson:"isConnected" json:"isConnected"`
}
