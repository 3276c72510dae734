package storage

import (
	"context"

	"gofolio/internal/models"
)

// Users

func (u *UnifiedStorage) GetUser(ctx context.Context, id int) (*models.User, error) {
	return withFallback(ctx, u, "GetUser", func(ctx context.Context, s Store) (*models.User, error) {
		return s.GetUser(ctx, id)
	})
}

func (u *UnifiedStorage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return withFallback(ctx, u, "GetUserByUsername", func(ctx context.Context, s Store) (*models.User, error) {
		return s.GetUserByUsername(ctx, username)
	})
}

func (u *UnifiedStorage) CreateUser(ctx context.Context, insert models.InsertUser) (*models.User, error) {
	return withFallback(ctx, u, "CreateUser", func(ctx context.Context, s Store) (*models.User, error) {
		return s.CreateUser(ctx, insert)
	})
}

func (u *UnifiedStorage) UpdateUser(ctx context.Context, id int, patch models.UserPatch) (*models.User, error) {
	return withFallback(ctx, u, "UpdateUser", func(ctx context.Context, s Store) (*models.User, error) {
		return s.UpdateUser(ctx, id, patch)
	})
}

func (u *UnifiedStorage) DeleteUser(ctx context.Context, id int) (bool, error) {
	return withFallback(ctx, u, "DeleteUser", func(ctx context.Context, s Store) (bool, error) {
		return s.DeleteUser(ctx, id)
	})
}

// Contacts

func (u *UnifiedStorage) GetContact(ctx context.Context, id int) (*models.Contact, error) {
	return withFallback(ctx, u, "GetContact", func(ctx context.Context, s Store) (*models.Contact, error) {
		return s.GetContact(ctx, id)
	})
}

func (u *UnifiedStorage) GetAllContacts(ctx context.Context) ([]models.Contact, error) {
	return withFallback(ctx, u, "GetAllContacts", func(ctx context.Context, s Store) ([]models.Contact, error) {
		return s.GetAllContacts(ctx)
	})
}

func (u *UnifiedStorage) CreateContact(ctx context.Context, insert models.InsertContact) (*models.Contact, error) {
	return withFallback(ctx, u, "CreateContact", func(ctx context.Context, s Store) (*models.Contact, error) {
		return s.CreateContact(ctx, insert)
	})
}

// Site content

func (u *UnifiedStorage) GetSiteContent(ctx context.Context, section, key string) (*models.SiteContent, error) {
	return withFallback(ctx, u, "GetSiteContent", func(ctx context.Context, s Store) (*models.SiteContent, error) {
		return s.GetSiteContent(ctx, section, key)
	})
}

func (u *UnifiedStorage) GetSiteContentBySection(ctx context.Context, section string) ([]models.SiteContent, error) {
	return withFallback(ctx, u, "GetSiteContentBySection", func(ctx context.Context, s Store) ([]models.SiteContent, error) {
		return s.GetSiteContentBySection(ctx, section)
	})
}

func (u *UnifiedStorage) GetAllSiteContent(ctx context.Context) ([]models.SiteContent, error) {
	return withFallback(ctx, u, "GetAllSiteContent", func(ctx context.Context, s Store) ([]models.SiteContent, error) {
		return s.GetAllSiteContent(ctx)
	})
}

func (u *UnifiedStorage) UpsertSiteContent(ctx context.Context, insert models.InsertSiteContent) (*models.SiteContent, error) {
	return withFallback(ctx, u, "UpsertSiteContent", func(ctx context.Context, s Store) (*models.SiteContent, error) {
		return s.UpsertSiteContent(ctx, insert)
	})
}

func (u *UnifiedStorage) DeleteSiteContent(ctx context.Context, section, key string) (bool, error) {
	return withFallback(ctx, u, "DeleteSiteContent", func(ctx context.Context, s Store) (bool, error) {
		return s.DeleteSiteContent(ctx, section, key)
	})
}

// Projects

func (u *UnifiedStorage) GetProject(ctx context.Context, id int) (*models.Project, error) {
	return withFallback(ctx, u, "GetProject", func(ctx context.Context, s Store) (*models.Project, error) {
		return s.GetProject(ctx, id)
	})
}

func (u *UnifiedStorage) GetAllProjects(ctx context.Context) ([]models.Project, error) {
	return withFallback(ctx, u, "GetAllProjects", func(ctx context.Context, s Store) ([]models.Project, error) {
		return s.GetAllProjects(ctx)
	})
}

func (u *UnifiedStorage) CreateProject(ctx context.Context, insert models.InsertProject) (*models.Project, error) {
	return withFallback(ctx, u, "CreateProject", func(ctx context.Context, s Store) (*models.Project, error) {
		return s.CreateProject(ctx, insert)
	})
}

func (u *UnifiedStorage) UpdateProject(ctx context.Context, id int, patch models.ProjectPatch) (*models.Project, error) {
	return withFallback(ctx, u, "UpdateProject", func(ctx context.Context, s Store) (*models.Project, error) {
		return s.UpdateProject(ctx, id, patch)
	})
}

func (u *UnifiedStorage) DeleteProject(ctx context.Context, id int) (bool, error) {
	return withFallback(ctx, u, "DeleteProject", func(ctx context.Context, s Store) (bool, error) {
		return s.DeleteProject(ctx, id)
	})
}

// Experiences

func (u *UnifiedStorage) GetExperience(ctx context.Context, id int) (*models.Experience, error) {
	return withFallback(ctx, u, "GetExperience", func(ctx context.Context, s Store) (*models.Experience, error) {
		return s.GetExperience(ctx, id)
	})
}

func (u *UnifiedStorage) GetAllExperiences(ctx context.Context) ([]models.Experience, error) {
	return withFallback(ctx, u, "GetAllExperiences", func(ctx context.Context, s Store) ([]models.Experience, error) {
		return s.GetAllExperiences(ctx)
	})
}

func (u *UnifiedStorage) CreateExperience(ctx context.Context, insert models.InsertExperience) (*models.Experience, error) {
	return withFallback(ctx, u, "CreateExperience", func(ctx context.Context, s Store) (*models.Experience, error) {
		return s.CreateExperience(ctx, insert)
	})
}

func (u *UnifiedStorage) UpdateExperience(ctx context.Context, id int, patch models.ExperiencePatch) (*models.Experience, error) {
	return withFallback(ctx, u, "UpdateExperience", func(ctx context.Context, s Store) (*models.Experience, error) {
		return s.UpdateExperience(ctx, id, patch)
	})
}

func (u *UnifiedStorage) DeleteExperience(ctx context.Context, id int) (bool, error) {
	return withFallback(ctx, u, "DeleteExperience", func(ctx context.Context, s Store) (bool, error) {
		return s.DeleteExperience(ctx, id)
	})
}

// Testimonials

func (u *UnifiedStorage) GetTestimonial(ctx context.Context, id int) (*models.Testimonial, error) {
	return withFallback(ctx, u, "GetTestimonial", func(ctx context.Context, s Store) (*models.Testimonial, error) {
		return s.GetTestimonial(ctx, id)
	})
}

func (u *UnifiedStorage) GetAllTestimonials(ctx context.Context) ([]models.Testimonial, error) {
	return withFallback(ctx, u, "GetAllTestimonials", func(ctx context.Context, s Store) ([]models.Testimonial, error) {
		return s.GetAllTestimonials(ctx)
	})
}

func (u *UnifiedStorage) CreateTestimonial(ctx context.Context, insert models.InsertTestimonial) (*models.Testimonial, error) {
	return withFallback(ctx, u, "CreateTestimonial", func(ctx context.Context, s Store) (*models.Testimonial, error) {
		return s.CreateTestimonial(ctx, insert)
	})
}

func (u *UnifiedStorage) UpdateTestimonial(ctx context.Context, id int, patch models.TestimonialPatch) (*models.Testimonial, error) {
	return withFallback(ctx, u, "UpdateTestimonial", func(ctx context.Context, s Store) (*models.Testimonial, error) {
		return s.UpdateTestimonial(ctx, id, patch)
	})
}

func (u *UnifiedStorage) DeleteTestimonial(ctx context.Context, id int) (bool, error) {
	return withFallback(ctx, u, "DeleteTestimonial", func(ctx context.Context, s Store) (bool, error) {
		return s.DeleteTestimonial(ctx, id)
	})
}

// Blog posts

func (u *UnifiedStorage) GetBlogPost(ctx context.Context, id int) (*models.BlogPost, error) {
	return withFallback(ctx, u, "GetBlogPost", func(ctx context.Context, s Store) (*models.BlogPost, error) {
		return s.GetBlogPost(ctx, id)
	})
}

func (u *UnifiedStorage) GetBlogPostBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	return withFallback(ctx, u, "GetBlogPostBySlug", func(ctx context.Context, s Store) (*models.BlogPost, error) {
		return s.GetBlogPostBySlug(ctx, slug)
	})
}

func (u *UnifiedStorage) GetAllBlogPosts(ctx context.Context) ([]models.BlogPost, error) {
	return withFallback(ctx, u, "GetAllBlogPosts", func(ctx context.Context, s Store) ([]models.BlogPost, error) {
		return s.GetAllBlogPosts(ctx)
	})
}

func (u *UnifiedStorage) GetPublishedBlogPosts(ctx context.Context) ([]models.BlogPost, error) {
	return withFallback(ctx, u, "GetPublishedBlogPosts", func(ctx context.Context, s Store) ([]models.BlogPost, error) {
		return s.GetPublishedBlogPosts(ctx)
	})
}

func (u *UnifiedStorage) CreateBlogPost(ctx context.Context, insert models.InsertBlogPost) (*models.BlogPost, error) {
	return withFallback(ctx, u, "CreateBlogPost", func(ctx context.Context, s Store) (*models.BlogPost, error) {
		return s.CreateBlogPost(ctx, insert)
	})
}

func (u *UnifiedStorage) UpdateBlogPost(ctx context.Context, id int, patch models.BlogPostPatch) (*models.BlogPost, error) {
	return withFallback(ctx, u, "UpdateBlogPost", func(ctx context.Context, s Store) (*models.BlogPost, error) {
		return s.UpdateBlogPost(ctx, id, patch)
	})
}

func (u *UnifiedStorage) DeleteBlogPost(ctx context.Context, id int) (bool, error) {
	return withFallback(ctx, u, "DeleteBlogPost", func(ctx context.Context, s Store) (bool, error) {
		return s.DeleteBlogPost(ctx, id)
	})
}

func (u *UnifiedStorage) IncrementBlogPostViewCount(ctx context.Context, id int) (*models.BlogPost, error) {
	return withFallback(ctx, u, "IncrementBlogPostViewCount", func(ctx context.Context, s Store) (*models.BlogPost, error) {
		return s.IncrementBlogPostViewCount(ctx, id)
	})
}

// Blog comments

func (u *UnifiedStorage) GetBlogComment(ctx context.Context, id int) (*models.BlogComment, error) {
	return withFallback(ctx, u, "GetBlogComment", func(ctx context.Context, s Store) (*models.BlogComment, error) {
		return s.GetBlogComment(ctx, id)
	})
}

func (u *UnifiedStorage) GetCommentsByPost(ctx context.Context, postID int) ([]models.BlogComment, error) {
	return withFallback(ctx, u, "GetCommentsByPost", func(ctx context.Context, s Store) ([]models.BlogComment, error) {
		return s.GetCommentsByPost(ctx, postID)
	})
}

func (u *UnifiedStorage) GetApprovedCommentsByPost(ctx context.Context, postID int) ([]models.BlogComment, error) {
	return withFallback(ctx, u, "GetApprovedCommentsByPost", func(ctx context.Context, s Store) ([]models.BlogComment, error) {
		return s.GetApprovedCommentsByPost(ctx, postID)
	})
}

func (u *UnifiedStorage) GetAllBlogComments(ctx context.Context) ([]models.BlogComment, error) {
	return withFallback(ctx, u, "GetAllBlogComments", func(ctx context.Context, s Store) ([]models.BlogComment, error) {
		return s.GetAllBlogComments(ctx)
	})
}

func (u *UnifiedStorage) CreateBlogComment(ctx context.Context, insert models.InsertBlogComment) (*models.BlogComment, error) {
	return withFallback(ctx, u, "CreateBlogComment", func(ctx context.Context, s Store) (*models.BlogComment, error) {
		return s.CreateBlogComment(ctx, insert)
	})
}

func (u *UnifiedStorage) UpdateBlogComment(ctx context.Context, id int, patch models.BlogCommentPatch) (*models.BlogComment, error) {
	return withFallback(ctx, u, "UpdateBlogComment", func(ctx context.Context, s Store) (*models.BlogComment, error) {
		return s.UpdateBlogComment(ctx, id, patch)
	})
}

func (u *UnifiedStorage) UpdateBlogCommentApproval(ctx context.Context, id int, approved bool) (*models.BlogComment, error) {
	return withFallback(ctx, u, "UpdateBlogCommentApproval", func(ctx context.Context, s Store) (*models.BlogComment, error) {
		return s.UpdateBlogCommentApproval(ctx, id, approved)
	})
}

func (u *UnifiedStorage) DeleteBlogComment(ctx context.Context, id int) (bool, error) {
	return withFallback(ctx, u, "DeleteBlogComment", func(ctx context.Context, s Store) (bool, error) {
		return s.DeleteBlogComment(ctx, id)
	})
}

// Skills

func (u *UnifiedStorage) GetSkill(ctx context.Context, id int) (*models.Skill, error) {
	return withFallback(ctx, u, "GetSkill", func(ctx context.Context, s Store) (*models.Skill, error) {
		return s.GetSkill(ctx, id)
	})
}

func (u *UnifiedStorage) GetAllSkills(ctx context.Context) ([]models.Skill, error) {
	return withFallback(ctx, u, "GetAllSkills", func(ctx context.Context, s Store) ([]models.Skill, error) {
		return s.GetAllSkills(ctx)
	})
}

func (u *UnifiedStorage) CreateSkill(ctx context.Context, insert models.InsertSkill) (*models.Skill, error) {
	return withFallback(ctx, u, "CreateSkill", func(ctx context.Context, s Store) (*models.Skill, error) {
		return s.CreateSkill(ctx, insert)
	})
}

func (u *UnifiedStorage) UpdateSkill(ctx context.Context, id int, patch models.SkillPatch) (*models.Skill, error) {
	return withFallback(ctx, u, "UpdateSkill", func(ctx context.Context, s Store) (*models.Skill, error) {
		return s.UpdateSkill(ctx, id, patch)
	})
}

func (u *UnifiedStorage) DeleteSkill(ctx context.Context, id int) (bool, error) {
	return withFallback(ctx, u, "DeleteSkill", func(ctx context.Context, s Store) (bool, error) {
		return s.DeleteSkill(ctx, id)
	})
}

// Newsletter subscribers

func (u *UnifiedStorage) GetSubscriber(ctx context.Context, id int) (*models.NewsletterSubscriber, error) {
	return withFallback(ctx, u, "GetSubscriber", func(ctx context.Context, s Store) (*models.NewsletterSubscriber, error) {
		return s.GetSubscriber(ctx, id)
	})
}

func (u *UnifiedStorage) GetSubscriberByEmail(ctx context.Context, email string) (*models.NewsletterSubscriber, error) {
	return withFallback(ctx, u, "GetSubscriberByEmail", func(ctx context.Context, s Store) (*models.NewsletterSubscriber, error) {
		return s.GetSubscriberByEmail(ctx, email)
	})
}

func (u *UnifiedStorage) GetAllSubscribers(ctx context.Context) ([]models.NewsletterSubscriber, error) {
	return withFallback(ctx, u, "GetAllSubscribers", func(ctx context.Context, s Store) ([]models.NewsletterSubscriber, error) {
		return s.GetAllSubscribers(ctx)
	})
}

func (u *UnifiedStorage) CreateSubscriber(ctx context.Context, insert models.InsertNewsletterSubscriber) (*models.NewsletterSubscriber, error) {
	return withFallback(ctx, u, "CreateSubscriber", func(ctx context.Context, s Store) (*models.NewsletterSubscriber, error) {
		return s.CreateSubscriber(ctx, insert)
	})
}

func (u *UnifiedStorage) UpdateSubscriber(ctx context.Context, id int, patch models.NewsletterSubscriberPatch) (*models.NewsletterSubscriber, error) {
	return withFallback(ctx, u, "UpdateSubscriber", func(ctx context.Context, s Store) (*models.NewsletterSubscriber, error) {
		return s.UpdateSubscriber(ctx, id, patch)
	})
}

func (u *UnifiedStorage) DeleteSubscriber(ctx context.Context, id int) (bool, error) {
	return withFallback(ctx, u, "DeleteSubscriber", func(ctx context.Context, s Store) (bool, error) {
		return s.DeleteSubscriber(ctx, id)
	})
}

// Languages

func (u *UnifiedStorage) GetLanguage(ctx context.Context, id int) (*models.Language, error) {
	return withFallback(ctx, u, "GetLanguage", func(ctx context.Context, s Store) (*models.Language, error) {
		return s.GetLanguage(ctx, id)
	})
}

func (u *UnifiedStorage) GetLanguageByCode(ctx context.Context, code string) (*models.Language, error) {
	return withFallback(ctx, u, "GetLanguageByCode", func(ctx context.Context, s Store) (*models.Language, error) {
		return s.GetLanguageByCode(ctx, code)
	})
}

func (u *UnifiedStorage) GetDefaultLanguage(ctx context.Context) (*models.Language, error) {
	return withFallback(ctx, u, "GetDefaultLanguage", func(ctx context.Context, s Store) (*models.Language, error) {
		return s.GetDefaultLanguage(ctx)
	})
}

func (u *UnifiedStorage) GetAllLanguages(ctx context.Context) ([]models.Language, error) {
	return withFallback(ctx, u, "GetAllLanguages", func(ctx context.Context, s Store) ([]models.Language, error) {
		return s.GetAllLanguages(ctx)
	})
}

func (u *UnifiedStorage) CreateLanguage(ctx context.Context, insert models.InsertLanguage) (*models.Language, error) {
	return withFallback(ctx, u, "CreateLanguage", func(ctx context.Context, s Store) (*models.Language, error) {
		return s.CreateLanguage(ctx, insert)
	})
}

func (u *UnifiedStorage) UpdateLanguage(ctx context.Context, id int, patch models.LanguagePatch) (*models.Language, error) {
	return withFallback(ctx, u, "UpdateLanguage", func(ctx context.Context, s Store) (*models.Language, error) {
		return s.UpdateLanguage(ctx, id, patch)
	})
}

func (u *UnifiedStorage) DeleteLanguage(ctx context.Context, id int) (bool, error) {
	return withFallback(ctx, u, "DeleteLanguage", func(ctx context.Context, s Store) (bool, error) {
		return s.DeleteLanguage(ctx, id)
	})
}

// Translations

func (u *UnifiedStorage) GetTranslation(ctx context.Context, languageCode, key string) (*models.Translation, error) {
	return withFallback(ctx, u, "GetTranslation", func(ctx context.Context, s Store) (*models.Translation, error) {
		return s.GetTranslation(ctx, languageCode, key)
	})
}

func (u *UnifiedStorage) GetTranslationsByLanguage(ctx context.Context, languageCode string) ([]models.Translation, error) {
	return withFallback(ctx, u, "GetTranslationsByLanguage", func(ctx context.Context, s Store) ([]models.Translation, error) {
		return s.GetTranslationsByLanguage(ctx, languageCode)
	})
}

func (u *UnifiedStorage) GetAllTranslations(ctx context.Context) ([]models.Translation, error) {
	return withFallback(ctx, u, "GetAllTranslations", func(ctx context.Context, s Store) ([]models.Translation, error) {
		return s.GetAllTranslations(ctx)
	})
}

func (u *UnifiedStorage) UpsertTranslation(ctx context.Context, insert models.InsertTranslation) (*models.Translation, error) {
	return withFallback(ctx, u, "UpsertTranslation", func(ctx context.Context, s Store) (*models.Translation, error) {
		return s.UpsertTranslation(ctx, insert)
	})
}

func (u *UnifiedStorage) DeleteTranslation(ctx context.Context, languageCode, key string) (bool, error) {
	return withFallback(ctx, u, "DeleteTranslation", func(ctx context.Context, s Store) (bool, error) {
		return s.DeleteTranslation(ctx, languageCode, key)
	})
}

// Social profiles

func (u *UnifiedStorage) GetSocialProfile(ctx context.Context, id int) (*models.SocialProfile, error) {
	return withFallback(ctx, u, "GetSocialProfile", func(ctx context.Context, s Store) (*models.SocialProfile, error) {
		return s.GetSocialProfile(ctx, id)
	})
}

func (u *UnifiedStorage) GetAllSocialProfiles(ctx context.Context) ([]models.SocialProfile, error) {
	return withFallback(ctx, u, "GetAllSocialProfiles", func(ctx context.Context, s Store) ([]models.SocialProfile, error) {
		return s.GetAllSocialProfiles(ctx)
	})
}

func (u *UnifiedStorage) CreateSocialProfile(ctx context.Context, insert models.InsertSocialProfile) (*models.SocialProfile, error) {
	return withFallback(ctx, u, "CreateSocialProfile", func(ctx context.Context, s Store) (*models.SocialProfile, error) {
		return s.CreateSocialProfile(ctx, insert)
	})
}

func (u *UnifiedStorage) UpdateSocialProfile(ctx context.Context, id int, patch models.SocialProfilePatch) (*models.SocialProfile, error) {
	return withFallback(ctx, u, "UpdateSocialProfile", func(ctx context.Context, s Store) (*models.SocialProfile, error) {
		return s.UpdateSocialProfile(ctx, id, patch)
	})
}

func (u *UnifiedStorage) DeleteSocialProfile(ctx context.Context, id int) (bool, error) {
	return withFallback(ctx, u, "DeleteSocialProfile", func(ctx context.Context, s Store) (bool, error) {
		return s.DeleteSocialProfile(ctx, id)
	})
}

func (u *UnifiedStorage) SyncSocialProfile(ctx context.Context, id int) (*models.SocialProfile, error) {
	return withFallback(ctx, u, "SyncSocialProfile", func(ctx context.Context, s Store) (*models.SocialProfile, error) {
		return s.SyncSocialProfile(ctx, id)
	})
}
