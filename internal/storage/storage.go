// Package storage provides the persistence layer for the portfolio site: a
// durable document-database adapter, an in-memory fallback adapter, and a
// unified facade that degrades gracefully between the two per call.
package storage

import (
	"context"
	"crypto/subtle"
	"log/slog"

	"gofolio/internal/metrics"
	"gofolio/internal/models"
)

// Store is the entity CRUD contract both adapters implement. Lookups that
// miss return a nil pointer (or false for deletes) with a nil error; errors
// are reserved for backend failures.
type Store interface {
	// Users
	GetUser(ctx context.Context, id int) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	CreateUser(ctx context.Context, insert models.InsertUser) (*models.User, error)
	UpdateUser(ctx context.Context, id int, patch models.UserPatch) (*models.User, error)
	DeleteUser(ctx context.Context, id int) (bool, error)

	// Contacts (append-only)
	GetContact(ctx context.Context, id int) (*models.Contact, error)
	GetAllContacts(ctx context.Context) ([]models.Contact, error)
	CreateContact(ctx context.Context, insert models.InsertContact) (*models.Contact, error)

	// Site content, addressed by (section, key)
	GetSiteContent(ctx context.Context, section, key string) (*models.SiteContent, error)
	GetSiteContentBySection(ctx context.Context, section string) ([]models.SiteContent, error)
	GetAllSiteContent(ctx context.Context) ([]models.SiteContent, error)
	UpsertSiteContent(ctx context.Context, insert models.InsertSiteContent) (*models.SiteContent, error)
	DeleteSiteContent(ctx context.Context, section, key string) (bool, error)

	// Projects
	GetProject(ctx context.Context, id int) (*models.Project, error)
	GetAllProjects(ctx context.Context) ([]models.Project, error)
	CreateProject(ctx context.Context, insert models.InsertProject) (*models.Project, error)
	UpdateProject(ctx context.Context, id int, patch models.ProjectPatch) (*models.Project, error)
	DeleteProject(ctx context.Context, id int) (bool, error)

	// Experiences
	GetExperience(ctx context.Context, id int) (*models.Experience, error)
	GetAllExperiences(ctx context.Context) ([]models.Experience, error)
	CreateExperience(ctx context.Context, insert models.InsertExperience) (*models.Experience, error)
	UpdateExperience(ctx context.Context, id int, patch models.ExperiencePatch) (*models.Experience, error)
	DeleteExperience(ctx context.Context, id int) (bool, error)

	// Testimonials
	GetTestimonial(ctx context.Context, id int) (*models.Testimonial, error)
	GetAllTestimonials(ctx context.Context) ([]models.Testimonial, error)
	CreateTestimonial(ctx context.Context, insert models.InsertTestimonial) (*models.Testimonial, error)
	UpdateTestimonial(ctx context.Context, id int, patch models.TestimonialPatch) (*models.Testimonial, error)
	DeleteTestimonial(ctx context.Context, id int) (bool, error)

	// Blog posts
	GetBlogPost(ctx context.Context, id int) (*models.BlogPost, error)
	GetBlogPostBySlug(ctx context.Context, slug string) (*models.BlogPost, error)
	GetAllBlogPosts(ctx context.Context) ([]models.BlogPost, error)
	GetPublishedBlogPosts(ctx context.Context) ([]models.BlogPost, error)
	CreateBlogPost(ctx context.Context, insert models.InsertBlogPost) (*models.BlogPost, error)
	UpdateBlogPost(ctx context.Context, id int, patch models.BlogPostPatch) (*models.BlogPost, error)
	DeleteBlogPost(ctx context.Context, id int) (bool, error)
	IncrementBlogPostViewCount(ctx context.Context, id int) (*models.BlogPost, error)

	// Blog comments
	GetBlogComment(ctx context.Context, id int) (*models.BlogComment, error)
	GetCommentsByPost(ctx context.Context, postID int) ([]models.BlogComment, error)
	GetApprovedCommentsByPost(ctx context.Context, postID int) ([]models.BlogComment, error)
	GetAllBlogComments(ctx context.Context) ([]models.BlogComment, error)
	CreateBlogComment(ctx context.Context, insert models.InsertBlogComment) (*models.BlogComment, error)
	UpdateBlogComment(ctx context.Context, id int, patch models.BlogCommentPatch) (*models.BlogComment, error)
	UpdateBlogCommentApproval(ctx context.Context, id int, approved bool) (*models.BlogComment, error)
	DeleteBlogComment(ctx context.Context, id int) (bool, error)

	// Skills
	GetSkill(ctx context.Context, id int) (*models.Skill, error)
	GetAllSkills(ctx context.Context) ([]models.Skill, error)
	CreateSkill(ctx context.Context, insert models.InsertSkill) (*models.Skill, error)
	UpdateSkill(ctx context.Context, id int, patch models.SkillPatch) (*models.Skill, error)
	DeleteSkill(ctx context.Context, id int) (bool, error)

	// Newsletter subscribers
	GetSubscriber(ctx context.Context, id int) (*models.NewsletterSubscriber, error)
	GetSubscriberByEmail(ctx context.Context, email string) (*models.NewsletterSubscriber, error)
	GetAllSubscribers(ctx context.Context) ([]models.NewsletterSubscriber, error)
	CreateSubscriber(ctx context.Context, insert models.InsertNewsletterSubscriber) (*models.NewsletterSubscriber, error)
	UpdateSubscriber(ctx context.Context, id int, patch models.NewsletterSubscriberPatch) (*models.NewsletterSubscriber, error)
	DeleteSubscriber(ctx context.Context, id int) (bool, error)

	// Languages
	GetLanguage(ctx context.Context, id int) (*models.Language, error)
	GetLanguageByCode(ctx context.Context, code string) (*models.Language, error)
	GetDefaultLanguage(ctx context.Context) (*models.Language, error)
	GetAllLanguages(ctx context.Context) ([]models.Language, error)
	CreateLanguage(ctx context.Context, insert models.InsertLanguage) (*models.Language, error)
	UpdateLanguage(ctx context.Context, id int, patch models.LanguagePatch) (*models.Language, error)
	DeleteLanguage(ctx context.Context, id int) (bool, error)

	// Translations, addressed by (languageCode, key)
	GetTranslation(ctx context.Context, languageCode, key string) (*models.Translation, error)
	GetTranslationsByLanguage(ctx context.Context, languageCode string) ([]models.Translation, error)
	GetAllTranslations(ctx context.Context) ([]models.Translation, error)
	UpsertTranslation(ctx context.Context, insert models.InsertTranslation) (*models.Translation, error)
	DeleteTranslation(ctx context.Context, languageCode, key string) (bool, error)

	// Social profiles
	GetSocialProfile(ctx context.Context, id int) (*models.SocialProfile, error)
	GetAllSocialProfiles(ctx context.Context) ([]models.SocialProfile, error)
	CreateSocialProfile(ctx context.Context, insert models.InsertSocialProfile) (*models.SocialProfile, error)
	UpdateSocialProfile(ctx context.Context, id int, patch models.SocialProfilePatch) (*models.SocialProfile, error)
	DeleteSocialProfile(ctx context.Context, id int) (bool, error)
	SyncSocialProfile(ctx context.Context, id int) (*models.SocialProfile, error)
}

// ConnStatus is the slice of the connection manager the facade consults when
// picking an adapter.
type ConnStatus interface {
	UsingFallback() bool
	HasActiveConnection() bool
}

const (
	backendMongo  = "mongo"
	backendMemory = "memory"
)

// UnifiedStorage is the single entry point callers use. Every call picks the
// durable adapter when a connection is live and the in-memory adapter
// otherwise; a durable failure mid-call is retried once in memory so the
// request still succeeds. Availability wins over durability here: a flapping
// connection can leave a session's records split across both adapters, and
// ids are never reconciled between them.
type UnifiedStorage struct {
	durable  Store
	volatile Store
	conn     ConnStatus
	logger   *slog.Logger

	// test seam, called once per fallback event
	onFallback func(op string, err error)
}

// NewUnifiedStorage wires the facade. All dependencies are injected; the
// facade holds no global state.
func NewUnifiedStorage(durable, volatile Store, conn ConnStatus, logger *slog.Logger) *UnifiedStorage {
	if logger == nil {
		logger = slog.Default()
	}
	return &UnifiedStorage{
		durable:  durable,
		volatile: volatile,
		conn:     conn,
		logger:   logger,
	}
}

// active returns the adapter the current connection state selects.
func (u *UnifiedStorage) active() (store Store, durable bool) {
	if u.conn.UsingFallback() {
		return u.volatile, false
	}
	if u.conn.HasActiveConnection() {
		return u.durable, true
	}
	return u.volatile, false
}

// withFallback runs op against the active adapter. A durable failure while
// the connection is nominally still up is retried once on the volatile
// adapter; volatile failures propagate, there is nothing left to fall to.
func withFallback[T any](ctx context.Context, u *UnifiedStorage, op string, fn func(ctx context.Context, s Store) (T, error)) (T, error) {
	store, durable := u.active()

	backend := backendMemory
	if durable {
		backend = backendMongo
	}
	metrics.RecordStorageOperation(op, backend)

	out, err := fn(ctx, store)
	if err == nil {
		return out, nil
	}

	if durable && u.conn.HasActiveConnection() {
		u.logger.Warn("durable storage operation failed, retrying on in-memory store",
			slog.String("op", op),
			slog.Bool("connectivity", IsConnectivityError(err)),
			slog.Any("error", err),
		)
		metrics.RecordStorageFallback(op)
		if u.onFallback != nil {
			u.onFallback(op, err)
		}
		return fn(ctx, u.volatile)
	}

	return out, err
}

// VerifyUser checks a username/password pair and returns the user on match,
// nil otherwise. Comparison is constant-time; credentials are stored as-is.
func (u *UnifiedStorage) VerifyUser(ctx context.Context, username, password string) (*models.User, error) {
	user, err := u.GetUserByUsername(ctx, username)
	if err != nil || user == nil {
		return nil, err
	}
	if subtle.ConstantTimeCompare([]byte(user.Password), []byte(password)) != 1 {
		return nil, nil
	}
	return user, nil
}
