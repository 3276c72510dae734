package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"gofolio/internal/models"
)

// Collection names, one per entity type plus the id counter collection.
const (
	collUsers          = "users"
	collContacts       = "contacts"
	collSiteContent    = "site_content"
	collProjects       = "projects"
	collExperiences    = "experiences"
	collTestimonials   = "testimonials"
	collBlogPosts      = "blog_posts"
	collBlogComments   = "blog_comments"
	collSkills         = "skills"
	collSubscribers    = "newsletter_subscribers"
	collLanguages      = "languages"
	collTranslations   = "translations"
	collSocialProfiles = "social_profiles"
	collCounters       = "counters"
)

// MongoStore implements the entity contract against document collections.
// Documents carry their own integer id field issued from a counter
// collection, so callers never see the backend's opaque object ids. The
// adapter does not retry or fall back; any backend error propagates for the
// facade to handle.
type MongoStore struct {
	conn *ConnManager
}

// NewMongoStore binds the adapter to a connection manager. Calls made before
// a connection exists fail with ErrNotConnected.
func NewMongoStore(conn *ConnManager) *MongoStore {
	return &MongoStore{conn: conn}
}

func (s *MongoStore) collection(name string) (*mongo.Collection, error) {
	db := s.conn.Database()
	if db == nil {
		return nil, ErrNotConnected
	}
	return db.Collection(name), nil
}

// nextID atomically issues the next integer id for an entity type.
func (s *MongoStore) nextID(ctx context.Context, entity string) (int, error) {
	coll, err := s.collection(collCounters)
	if err != nil {
		return 0, err
	}
	res := coll.FindOneAndUpdate(ctx,
		bson.M{"_id": entity},
		bson.M{"$inc": bson.M{"seq": 1}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	)
	var doc struct {
		Seq int `bson:"seq"`
	}
	if err := res.Decode(&doc); err != nil {
		return 0, fmt.Errorf("next id for %q: %w", entity, err)
	}
	return doc.Seq, nil
}

func findOne[T any](ctx context.Context, s *MongoStore, collName string, filter bson.M) (*T, error) {
	coll, err := s.collection(collName)
	if err != nil {
		return nil, err
	}
	var out T
	err = coll.FindOne(ctx, filter).Decode(&out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find in %q: %w", collName, err)
	}
	return &out, nil
}

func findAll[T any](ctx context.Context, s *MongoStore, collName string, filter bson.M, sortDoc bson.D) ([]T, error) {
	coll, err := s.collection(collName)
	if err != nil {
		return nil, err
	}
	opts := options.Find()
	if sortDoc != nil {
		opts.SetSort(sortDoc)
	}
	cur, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("query %q: %w", collName, err)
	}
	out := make([]T, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode %q results: %w", collName, err)
	}
	return out, nil
}

func insertOne[T any](ctx context.Context, s *MongoStore, collName string, doc T) (*T, error) {
	coll, err := s.collection(collName)
	if err != nil {
		return nil, err
	}
	if _, err := coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert into %q: %w", collName, err)
	}
	return &doc, nil
}

// updateByID applies a $set and returns the updated document; nil when the
// id does not exist.
func updateByID[T any](ctx context.Context, s *MongoStore, collName string, id int, set bson.M) (*T, error) {
	coll, err := s.collection(collName)
	if err != nil {
		return nil, err
	}
	res := coll.FindOneAndUpdate(ctx,
		bson.M{"id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	var out T
	err = res.Decode(&out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update in %q: %w", collName, err)
	}
	return &out, nil
}

func deleteWhere(ctx context.Context, s *MongoStore, collName string, filter bson.M) (bool, error) {
	coll, err := s.collection(collName)
	if err != nil {
		return false, err
	}
	res, err := coll.DeleteOne(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("delete from %q: %w", collName, err)
	}
	return res.DeletedCount > 0, nil
}

var byIDAsc = bson.D{{Key: "id", Value: 1}}

// Users

func (s *MongoStore) GetUser(ctx context.Context, id int) (*models.User, error) {
	return findOne[models.User](ctx, s, collUsers, bson.M{"id": id})
}

// GetUserByUsername is an exact, case-sensitive match.
func (s *MongoStore) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return findOne[models.User](ctx, s, collUsers, bson.M{"username": username})
}

func (s *MongoStore) CreateUser(ctx context.Context, insert models.InsertUser) (*models.User, error) {
	id, err := s.nextID(ctx, collUsers)
	if err != nil {
		return nil, err
	}
	return insertOne(ctx, s, collUsers, models.User{
		ID:        id,
		Username:  insert.Username,
		Password:  insert.Password,
		IsAdmin:   insert.IsAdmin,
		CreatedAt: time.Now().UTC(),
	})
}

func (s *MongoStore) UpdateUser(ctx context.Context, id int, patch models.UserPatch) (*models.User, error) {
	set := bson.M{}
	if patch.Username != nil {
		set["username"] = *patch.Username
	}
	if patch.Password != nil {
		set["password"] = *patch.Password
	}
	if patch.IsAdmin != nil {
		set["isAdmin"] = *patch.IsAdmin
	}
	if len(set) == 0 {
		return s.GetUser(ctx, id)
	}
	return updateByID[models.User](ctx, s, collUsers, id, set)
}

func (s *MongoStore) DeleteUser(ctx context.Context, id int) (bool, error) {
	return deleteWhere(ctx, s, collUsers, bson.M{"id": id})
}

// Contacts

func (s *MongoStore) GetContact(ctx context.Context, id int) (*models.Contact, error) {
	return findOne[models.Contact](ctx, s, collContacts, bson.M{"id": id})
}

func (s *MongoStore) GetAllContacts(ctx context.Context) ([]models.Contact, error) {
	return findAll[models.Contact](ctx, s, collContacts, bson.M{}, byIDAsc)
}

func (s *MongoStore) CreateContact(ctx context.Context, insert models.InsertContact) (*models.Contact, error) {
	id, err := s.nextID(ctx, collContacts)
	if err != nil {
		return nil, err
	}
	return insertOne(ctx, s, collContacts, models.Contact{
		ID:        id,
		Name:      insert.Name,
		Email:     insert.Email,
		Subject:   insert.Subject,
		Message:   insert.Message,
		CreatedAt: time.Now().UTC(),
	})
}

// Site content

func (s *MongoStore) GetSiteContent(ctx context.Context, section, key string) (*models.SiteContent, error) {
	return findOne[models.SiteContent](ctx, s, collSiteContent, bson.M{"section": section, "key": key})
}

func (s *MongoStore) GetSiteContentBySection(ctx context.Context, section string) ([]models.SiteContent, error) {
	return findAll[models.SiteContent](ctx, s, collSiteContent, bson.M{"section": section}, byIDAsc)
}

func (s *MongoStore) GetAllSiteContent(ctx context.Context) ([]models.SiteContent, error) {
	return findAll[models.SiteContent](ctx, s, collSiteContent, bson.M{}, byIDAsc)
}

// UpsertSiteContent updates the entry in place when (section, key) exists,
// inserting otherwise. updatedAt refreshes on every write.
func (s *MongoStore) UpsertSiteContent(ctx context.Context, insert models.InsertSiteContent) (*models.SiteContent, error) {
	coll, err := s.collection(collSiteContent)
	if err != nil {
		return nil, err
	}
	filter := bson.M{"section": insert.Section, "key": insert.Key}
	set := bson.M{"value": insert.Value, "type": insert.Type, "updatedAt": time.Now().UTC()}

	res := coll.FindOneAndUpdate(ctx, filter,
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	var existing models.SiteContent
	err = res.Decode(&existing)
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("upsert in %q: %w", collSiteContent, err)
	}

	id, err := s.nextID(ctx, collSiteContent)
	if err != nil {
		return nil, err
	}
	return insertOne(ctx, s, collSiteContent, models.SiteContent{
		ID:        id,
		Section:   insert.Section,
		Key:       insert.Key,
		Value:     insert.Value,
		Type:      insert.Type,
		UpdatedAt: time.Now().UTC(),
	})
}

func (s *MongoStore) DeleteSiteContent(ctx context.Context, section, key string) (bool, error) {
	return deleteWhere(ctx, s, collSiteContent, bson.M{"section": section, "key": key})
}

// Projects

func (s *MongoStore) GetProject(ctx context.Context, id int) (*models.Project, error) {
	return findOne[models.Project](ctx, s, collProjects, bson.M{"id": id})
}

func (s *MongoStore) GetAllProjects(ctx context.Context) ([]models.Project, error) {
	return findAll[models.Project](ctx, s, collProjects, bson.M{}, byIDAsc)
}

func (s *MongoStore) CreateProject(ctx context.Context, insert models.InsertProject) (*models.Project, error) {
	id, err := s.nextID(ctx, collProjects)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	return insertOne(ctx, s, collProjects, models.Project{
		ID:           id,
		Title:        insert.Title,
		Description:  insert.Description,
		ImageURL:     insert.ImageURL,
		ProjectURL:   insert.ProjectURL,
		GithubURL:    insert.GithubURL,
		Technologies: insert.Technologies,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
}

func (s *MongoStore) UpdateProject(ctx context.Context, id int, patch models.ProjectPatch) (*models.Project, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.ImageURL != nil {
		set["imageUrl"] = *patch.ImageURL
	}
	if patch.ProjectURL != nil {
		set["projectUrl"] = *patch.ProjectURL
	}
	if patch.GithubURL != nil {
		set["githubUrl"] = *patch.GithubURL
	}
	if patch.Technologies != nil {
		set["technologies"] = *patch.Technologies
	}
	return updateByID[models.Project](ctx, s, collProjects, id, set)
}

func (s *MongoStore) DeleteProject(ctx context.Context, id int) (bool, error) {
	return deleteWhere(ctx, s, collProjects, bson.M{"id": id})
}

// Experiences

func (s *MongoStore) GetExperience(ctx context.Context, id int) (*models.Experience, error) {
	return findOne[models.Experience](ctx, s, collExperiences, bson.M{"id": id})
}

func (s *MongoStore) GetAllExperiences(ctx context.Context) ([]models.Experience, error) {
	return findAll[models.Experience](ctx, s, collExperiences, bson.M{}, byIDAsc)
}

func (s *MongoStore) CreateExperience(ctx context.Context, insert models.InsertExperience) (*models.Experience, error) {
	id, err := s.nextID(ctx, collExperiences)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	return insertOne(ctx, s, collExperiences, models.Experience{
		ID:           id,
		Title:        insert.Title,
		Company:      insert.Company,
		Location:     insert.Location,
		Period:       insert.Period,
		Description:  insert.Description,
		Technologies: insert.Technologies,
		Achievements: insert.Achievements,
		Category:     insert.Category,
		Logo:         insert.Logo,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
}

func (s *MongoStore) UpdateExperience(ctx context.Context, id int, patch models.ExperiencePatch) (*models.Experience, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Company != nil {
		set["company"] = *patch.Company
	}
	if patch.Location != nil {
		set["location"] = *patch.Location
	}
	if patch.Period != nil {
		set["period"] = *patch.Period
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Technologies != nil {
		set["technologies"] = *patch.Technologies
	}
	if patch.Achievements != nil {
		set["achievements"] = *patch.Achievements
	}
	if patch.Category != nil {
		set["category"] = *patch.Category
	}
	if patch.Logo != nil {
		set["logo"] = *patch.Logo
	}
	return updateByID[models.Experience](ctx, s, collExperiences, id, set)
}

func (s *MongoStore) DeleteExperience(ctx context.Context, id int) (bool, error) {
	return deleteWhere(ctx, s, collExperiences, bson.M{"id": id})
}

// Testimonials

func (s *MongoStore) GetTestimonial(ctx context.Context, id int) (*models.Testimonial, error) {
	return findOne[models.Testimonial](ctx, s, collTestimonials, bson.M{"id": id})
}

func (s *MongoStore) GetAllTestimonials(ctx context.Context) ([]models.Testimonial, error) {
	return findAll[models.Testimonial](ctx, s, collTestimonials, bson.M{}, byIDAsc)
}

func (s *MongoStore) CreateTestimonial(ctx context.Context, insert models.InsertTestimonial) (*models.Testimonial, error) {
	id, err := s.nextID(ctx, collTestimonials)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	return insertOne(ctx, s, collTestimonials, models.Testimonial{
		ID:        id,
		Name:      insert.Name,
		Role:      insert.Role,
		Company:   insert.Company,
		Content:   insert.Content,
		Image:     insert.Image,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

func (s *MongoStore) UpdateTestimonial(ctx context.Context, id int, patch models.TestimonialPatch) (*models.Testimonial, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Role != nil {
		set["role"] = *patch.Role
	}
	if patch.Company != nil {
		set["company"] = *patch.Company
	}
	if patch.Content != nil {
		set["content"] = *patch.Content
	}
	if patch.Image != nil {
		set["image"] = *patch.Image
	}
	return updateByID[models.Testimonial](ctx, s, collTestimonials, id, set)
}

func (s *MongoStore) DeleteTestimonial(ctx context.Context, id int) (bool, error) {
	return deleteWhere(ctx, s, collTestimonials, bson.M{"id": id})
}

// Blog posts

func (s *MongoStore) GetBlogPost(ctx context.Context, id int) (*models.BlogPost, error) {
	return findOne[models.BlogPost](ctx, s, collBlogPosts, bson.M{"id": id})
}

func (s *MongoStore) GetBlogPostBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	return findOne[models.BlogPost](ctx, s, collBlogPosts, bson.M{"slug": slug})
}

// GetAllBlogPosts sorts published posts newest-first and places unpublished
// posts after them regardless of timestamp.
func (s *MongoStore) GetAllBlogPosts(ctx context.Context) ([]models.BlogPost, error) {
	sortDoc := bson.D{{Key: "isPublished", Value: -1}, {Key: "updatedAt", Value: -1}}
	return findAll[models.BlogPost](ctx, s, collBlogPosts, bson.M{}, sortDoc)
}

func (s *MongoStore) GetPublishedBlogPosts(ctx context.Context) ([]models.BlogPost, error) {
	sortDoc := bson.D{{Key: "updatedAt", Value: -1}}
	return findAll[models.BlogPost](ctx, s, collBlogPosts, bson.M{"isPublished": true}, sortDoc)
}

func (s *MongoStore) CreateBlogPost(ctx context.Context, insert models.InsertBlogPost) (*models.BlogPost, error) {
	id, err := s.nextID(ctx, collBlogPosts)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	return insertOne(ctx, s, collBlogPosts, models.BlogPost{
		ID:          id,
		Title:       insert.Title,
		Slug:        insert.Slug,
		Excerpt:     insert.Excerpt,
		Content:     insert.Content,
		Tags:        insert.Tags,
		IsPublished: insert.IsPublished,
		ViewCount:   0,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
}

func (s *MongoStore) UpdateBlogPost(ctx context.Context, id int, patch models.BlogPostPatch) (*models.BlogPost, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Slug != nil {
		set["slug"] = *patch.Slug
	}
	if patch.Excerpt != nil {
		set["excerpt"] = *patch.Excerpt
	}
	if patch.Content != nil {
		set["content"] = *patch.Content
	}
	if patch.Tags != nil {
		set["tags"] = *patch.Tags
	}
	if patch.IsPublished != nil {
		set["isPublished"] = *patch.IsPublished
	}
	return updateByID[models.BlogPost](ctx, s, collBlogPosts, id, set)
}

func (s *MongoStore) DeleteBlogPost(ctx context.Context, id int) (bool, error) {
	// comments are left behind; callers decide what to do with orphans
	return deleteWhere(ctx, s, collBlogPosts, bson.M{"id": id})
}

// IncrementBlogPostViewCount relies on the backend's single-document
// atomicity for the counter.
func (s *MongoStore) IncrementBlogPostViewCount(ctx context.Context, id int) (*models.BlogPost, error) {
	coll, err := s.collection(collBlogPosts)
	if err != nil {
		return nil, err
	}
	res := coll.FindOneAndUpdate(ctx,
		bson.M{"id": id},
		bson.M{"$inc": bson.M{"viewCount": 1}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	var out models.BlogPost
	err = res.Decode(&out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("increment view count: %w", err)
	}
	return &out, nil
}

// Blog comments

func (s *MongoStore) GetBlogComment(ctx context.Context, id int) (*models.BlogComment, error) {
	return findOne[models.BlogComment](ctx, s, collBlogComments, bson.M{"id": id})
}

func (s *MongoStore) GetCommentsByPost(ctx context.Context, postID int) ([]models.BlogComment, error) {
	return findAll[models.BlogComment](ctx, s, collBlogComments, bson.M{"postId": postID}, byIDAsc)
}

func (s *MongoStore) GetApprovedCommentsByPost(ctx context.Context, postID int) ([]models.BlogComment, error) {
	return findAll[models.BlogComment](ctx, s, collBlogComments, bson.M{"postId": postID, "isApproved": true}, byIDAsc)
}

func (s *MongoStore) GetAllBlogComments(ctx context.Context) ([]models.BlogComment, error) {
	return findAll[models.BlogComment](ctx, s, collBlogComments, bson.M{}, byIDAsc)
}

func (s *MongoStore) CreateBlogComment(ctx context.Context, insert models.InsertBlogComment) (*models.BlogComment, error) {
	id, err := s.nextID(ctx, collBlogComments)
	if err != nil {
		return nil, err
	}
	return insertOne(ctx, s, collBlogComments, models.BlogComment{
		ID:         id,
		PostID:     insert.PostID,
		Author:     insert.Author,
		Email:      insert.Email,
		Content:    insert.Content,
		IsApproved: false,
		CreatedAt:  time.Now().UTC(),
	})
}

func (s *MongoStore) UpdateBlogComment(ctx context.Context, id int, patch models.BlogCommentPatch) (*models.BlogComment, error) {
	set := bson.M{}
	if patch.Author != nil {
		set["author"] = *patch.Author
	}
	if patch.Email != nil {
		set["email"] = *patch.Email
	}
	if patch.Content != nil {
		set["content"] = *patch.Content
	}
	if patch.IsApproved != nil {
		set["isApproved"] = *patch.IsApproved
	}
	if len(set) == 0 {
		return s.GetBlogComment(ctx, id)
	}
	return updateByID[models.BlogComment](ctx, s, collBlogComments, id, set)
}

func (s *MongoStore) UpdateBlogCommentApproval(ctx context.Context, id int, approved bool) (*models.BlogComment, error) {
	return updateByID[models.BlogComment](ctx, s, collBlogComments, id, bson.M{"isApproved": approved})
}

func (s *MongoStore) DeleteBlogComment(ctx context.Context, id int) (bool, error) {
	return deleteWhere(ctx, s, collBlogComments, bson.M{"id": id})
}

// Skills

func (s *MongoStore) GetSkill(ctx context.Context, id int) (*models.Skill, error) {
	return findOne[models.Skill](ctx, s, collSkills, bson.M{"id": id})
}

func (s *MongoStore) GetAllSkills(ctx context.Context) ([]models.Skill, error) {
	return findAll[models.Skill](ctx, s, collSkills, bson.M{}, byIDAsc)
}

func (s *MongoStore) CreateSkill(ctx context.Context, insert models.InsertSkill) (*models.Skill, error) {
	id, err := s.nextID(ctx, collSkills)
	if err != nil {
		return nil, err
	}
	return insertOne(ctx, s, collSkills, models.Skill{
		ID:        id,
		Name:      insert.Name,
		Category:  insert.Category,
		Icon:      insert.Icon,
		Years:     insert.Years,
		CreatedAt: time.Now().UTC(),
	})
}

func (s *MongoStore) UpdateSkill(ctx context.Context, id int, patch models.SkillPatch) (*models.Skill, error) {
	set := bson.M{}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Category != nil {
		set["category"] = *patch.Category
	}
	if patch.Icon != nil {
		set["icon"] = *patch.Icon
	}
	if patch.Years != nil {
		set["years"] = *patch.Years
	}
	if len(set) == 0 {
		return s.GetSkill(ctx, id)
	}
	return updateByID[models.Skill](ctx, s, collSkills, id, set)
}

func (s *MongoStore) DeleteSkill(ctx context.Context, id int) (bool, error) {
	return deleteWhere(ctx, s, collSkills, bson.M{"id": id})
}

// Newsletter subscribers

func (s *MongoStore) GetSubscriber(ctx context.Context, id int) (*models.NewsletterSubscriber, error) {
	return findOne[models.NewsletterSubscriber](ctx, s, collSubscribers, bson.M{"id": id})
}

func (s *MongoStore) GetSubscriberByEmail(ctx context.Context, email string) (*models.NewsletterSubscriber, error) {
	return findOne[models.NewsletterSubscriber](ctx, s, collSubscribers, bson.M{"email": email})
}

func (s *MongoStore) GetAllSubscribers(ctx context.Context) ([]models.NewsletterSubscriber, error) {
	return findAll[models.NewsletterSubscriber](ctx, s, collSubscribers, bson.M{}, byIDAsc)
}

func (s *MongoStore) CreateSubscriber(ctx context.Context, insert models.InsertNewsletterSubscriber) (*models.NewsletterSubscriber, error) {
	id, err := s.nextID(ctx, collSubscribers)
	if err != nil {
		return nil, err
	}
	return insertOne(ctx, s, collSubscribers, models.NewsletterSubscriber{
		ID:        id,
		Email:     insert.Email,
		IsActive:  insert.IsActive,
		CreatedAt: time.Now().UTC(),
	})
}

func (s *MongoStore) UpdateSubscriber(ctx context.Context, id int, patch models.NewsletterSubscriberPatch) (*models.NewsletterSubscriber, error) {
	set := bson.M{}
	if patch.Email != nil {
		set["email"] = *patch.Email
	}
	if patch.IsActive != nil {
		set["isActive"] = *patch.IsActive
	}
	if len(set) == 0 {
		return s.GetSubscriber(ctx, id)
	}
	return updateByID[models.NewsletterSubscriber](ctx, s, collSubscribers, id, set)
}

func (s *MongoStore) DeleteSubscriber(ctx context.Context, id int) (bool, error) {
	return deleteWhere(ctx, s, collSubscribers, bson.M{"id": id})
}

// Languages

func (s *MongoStore) GetLanguage(ctx context.Context, id int) (*models.Language, error) {
	return findOne[models.Language](ctx, s, collLanguages, bson.M{"id": id})
}

func (s *MongoStore) GetLanguageByCode(ctx context.Context, code string) (*models.Language, error) {
	return findOne[models.Language](ctx, s, collLanguages, bson.M{"code": code})
}

func (s *MongoStore) GetDefaultLanguage(ctx context.Context) (*models.Language, error) {
	return findOne[models.Language](ctx, s, collLanguages, bson.M{"isDefault": true})
}

func (s *MongoStore) GetAllLanguages(ctx context.Context) ([]models.Language, error) {
	return findAll[models.Language](ctx, s, collLanguages, bson.M{}, byIDAsc)
}

// demoteDefaultLanguage keeps the at-most-one-default invariant by clearing
// the flag on every language except keep.
func (s *MongoStore) demoteDefaultLanguage(ctx context.Context, keep int) error {
	coll, err := s.collection(collLanguages)
	if err != nil {
		return err
	}
	_, err = coll.UpdateMany(ctx,
		bson.M{"isDefault": true, "id": bson.M{"$ne": keep}},
		bson.M{"$set": bson.M{"isDefault": false}},
	)
	if err != nil {
		return fmt.Errorf("demote default language: %w", err)
	}
	return nil
}

func (s *MongoStore) CreateLanguage(ctx context.Context, insert models.InsertLanguage) (*models.Language, error) {
	id, err := s.nextID(ctx, collLanguages)
	if err != nil {
		return nil, err
	}
	if insert.IsDefault {
		if err := s.demoteDefaultLanguage(ctx, id); err != nil {
			return nil, err
		}
	}
	return insertOne(ctx, s, collLanguages, models.Language{
		ID:        id,
		Code:      insert.Code,
		Name:      insert.Name,
		IsActive:  insert.IsActive,
		IsDefault: insert.IsDefault,
		CreatedAt: time.Now().UTC(),
	})
}

func (s *MongoStore) UpdateLanguage(ctx context.Context, id int, patch models.LanguagePatch) (*models.Language, error) {
	set := bson.M{}
	if patch.Code != nil {
		set["code"] = *patch.Code
	}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.IsActive != nil {
		set["isActive"] = *patch.IsActive
	}
	if patch.IsDefault != nil {
		if *patch.IsDefault {
			if err := s.demoteDefaultLanguage(ctx, id); err != nil {
				return nil, err
			}
		}
		set["isDefault"] = *patch.IsDefault
	}
	if len(set) == 0 {
		return s.GetLanguage(ctx, id)
	}
	return updateByID[models.Language](ctx, s, collLanguages, id, set)
}

func (s *MongoStore) DeleteLanguage(ctx context.Context, id int) (bool, error) {
	return deleteWhere(ctx, s, collLanguages, bson.M{"id": id})
}

// Translations

func (s *MongoStore) GetTranslation(ctx context.Context, languageCode, key string) (*models.Translation, error) {
	return findOne[models.Translation](ctx, s, collTranslations, bson.M{"languageCode": languageCode, "key": key})
}

func (s *MongoStore) GetTranslationsByLanguage(ctx context.Context, languageCode string) ([]models.Translation, error) {
	return findAll[models.Translation](ctx, s, collTranslations, bson.M{"languageCode": languageCode}, byIDAsc)
}

func (s *MongoStore) GetAllTranslations(ctx context.Context) ([]models.Translation, error) {
	return findAll[models.Translation](ctx, s, collTranslations, bson.M{}, byIDAsc)
}

// UpsertTranslation shares the in-place upsert semantics of site content.
func (s *MongoStore) UpsertTranslation(ctx context.Context, insert models.InsertTranslation) (*models.Translation, error) {
	coll, err := s.collection(collTranslations)
	if err != nil {
		return nil, err
	}
	filter := bson.M{"languageCode": insert.LanguageCode, "key": insert.Key}
	set := bson.M{"value": insert.Value, "updatedAt": time.Now().UTC()}

	res := coll.FindOneAndUpdate(ctx, filter,
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	var existing models.Translation
	err = res.Decode(&existing)
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("upsert in %q: %w", collTranslations, err)
	}

	id, err := s.nextID(ctx, collTranslations)
	if err != nil {
		return nil, err
	}
	return insertOne(ctx, s, collTranslations, models.Translation{
		ID:           id,
		LanguageCode: insert.LanguageCode,
		Key:          insert.Key,
		Value:        insert.Value,
		UpdatedAt:    time.Now().UTC(),
	})
}

func (s *MongoStore) DeleteTranslation(ctx context.Context, languageCode, key string) (bool, error) {
	return deleteWhere(ctx, s, collTranslations, bson.M{"languageCode": languageCode, "key": key})
}

// Social profiles

func (s *MongoStore) GetSocialProfile(ctx context.Context, id int) (*models.SocialProfile, error) {
	return findOne[models.SocialProfile](ctx, s, collSocialProfiles, bson.M{"id": id})
}

func (s *MongoStore) GetAllSocialProfiles(ctx context.Context) ([]models.SocialProfile, error) {
	return findAll[models.SocialProfile](ctx, s, collSocialProfiles, bson.M{}, byIDAsc)
}

func (s *MongoStore) CreateSocialProfile(ctx context.Context, insert models.InsertSocialProfile) (*models.SocialProfile, error) {
	id, err := s.nextID(ctx, collSocialProfiles)
	if err != nil {
		return nil, err
	}
	return insertOne(ctx, s, collSocialProfiles, models.SocialProfile{
		ID:          id,
		Platform:    insert.Platform,
		Username:    insert.Username,
		ProfileURL:  insert.ProfileURL,
		Followers:   insert.Followers,
		IsConnected: insert.IsConnected,
		CreatedAt:   time.Now().UTC(),
	})
}

func (s *MongoStore) UpdateSocialProfile(ctx context.Context, id int, patch models.SocialProfilePatch) (*models.SocialProfile, error) {
	set := bson.M{}
	if patch.Platform != nil {
		set["platform"] = *patch.Platform
	}
	if patch.Username != nil {
		set["username"] = *patch.Username
	}
	if patch.ProfileURL != nil {
		set["profileUrl"] = *patch.ProfileURL
	}
	if patch.Followers != nil {
		set["followers"] = *patch.Followers
	}
	if patch.IsConnected != nil {
		set["isConnected"] = *patch.IsConnected
	}
	if len(set) == 0 {
		return s.GetSocialProfile(ctx, id)
	}
	return updateByID[models.SocialProfile](ctx, s, collSocialProfiles, id, set)
}

func (s *MongoStore) DeleteSocialProfile(ctx context.Context, id int) (bool, error) {
	return deleteWhere(ctx, s, collSocialProfiles, bson.M{"id": id})
}

// SyncSocialProfile stamps lastSynced with the current time.
func (s *MongoStore) SyncSocialProfile(ctx context.Context, id int) (*models.SocialProfile, error) {
	return updateByID[models.SocialProfile](ctx, s, collSocialProfiles, id, bson.M{"lastSynced": time.Now().UTC()})
}

var (
	_ Store = (*MongoStore)(nil)
	_ Store = (*MemStore)(nil)
	_ Store = (*UnifiedStorage)(nil)
)
