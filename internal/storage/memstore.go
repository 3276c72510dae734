package storage

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"gofolio/internal/models"
)

// MemStore is the in-process fallback adapter. One map per entity type,
// composite-key entities keyed "{section}:{key}". A single lock guards every
// map together with its id counter; per-entity ids are monotonic and never
// reused, even across deletes. Ids are independent from the durable
// adapter's and are never reconciled with it.
type MemStore struct {
	mu       sync.RWMutex
	counters map[string]int

	users          map[int]models.User
	contacts       map[int]models.Contact
	siteContent    map[string]models.SiteContent
	projects       map[int]models.Project
	experiences    map[int]models.Experience
	testimonials   map[int]models.Testimonial
	blogPosts      map[int]models.BlogPost
	blogComments   map[int]models.BlogComment
	skills         map[int]models.Skill
	subscribers    map[int]models.NewsletterSubscriber
	languages      map[int]models.Language
	translations   map[string]models.Translation
	socialProfiles map[int]models.SocialProfile
}

// NewMemStore builds an empty adapter; pass seedDemo to pre-populate the
// default admin account and demo site content for first-run use.
func NewMemStore(seedDemo bool) *MemStore {
	s := &MemStore{
		counters:       map[string]int{},
		users:          map[int]models.User{},
		contacts:       map[int]models.Contact{},
		siteContent:    map[string]models.SiteContent{},
		projects:       map[int]models.Project{},
		experiences:    map[int]models.Experience{},
		testimonials:   map[int]models.Testimonial{},
		blogPosts:      map[int]models.BlogPost{},
		blogComments:   map[int]models.BlogComment{},
		skills:         map[int]models.Skill{},
		subscribers:    map[int]models.NewsletterSubscriber{},
		languages:      map[int]models.Language{},
		translations:   map[string]models.Translation{},
		socialProfiles: map[int]models.SocialProfile{},
	}
	if seedDemo {
		s.seed()
	}
	return s
}

// nextID issues the next id for an entity type. Caller must hold the lock.
func (s *MemStore) nextID(entity string) int {
	s.counters[entity]++
	return s.counters[entity]
}

func compositeKey(a, b string) string {
	return fmt.Sprintf("%s:%s", a, b)
}

func valuesSortedByID[T any](m map[int]T, id func(T) int) []T {
	out := make([]T, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return id(out[i]) < id(out[j]) })
	return out
}

// Users

func (s *MemStore) GetUser(_ context.Context, id int) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if u, ok := s.users[id]; ok {
		return &u, nil
	}
	return nil, nil
}

func (s *MemStore) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		// exact, case-sensitive match
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, nil
}

func (s *MemStore) CreateUser(_ context.Context, insert models.InsertUser) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := models.User{
		ID:        s.nextID("users"),
		Username:  insert.Username,
		Password:  insert.Password,
		IsAdmin:   insert.IsAdmin,
		CreatedAt: time.Now().UTC(),
	}
	s.users[u.ID] = u
	return &u, nil
}

func (s *MemStore) UpdateUser(_ context.Context, id int, patch models.UserPatch) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	if patch.Username != nil {
		u.Username = *patch.Username
	}
	if patch.Password != nil {
		u.Password = *patch.Password
	}
	if patch.IsAdmin != nil {
		u.IsAdmin = *patch.IsAdmin
	}
	s.users[id] = u
	return &u, nil
}

func (s *MemStore) DeleteUser(_ context.Context, id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[id]; !ok {
		return false, nil
	}
	delete(s.users, id)
	return true, nil
}

// Contacts

func (s *MemStore) GetContact(_ context.Context, id int) (*models.Contact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if c, ok := s.contacts[id]; ok {
		return &c, nil
	}
	return nil, nil
}

func (s *MemStore) GetAllContacts(_ context.Context) ([]models.Contact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return valuesSortedByID(s.contacts, func(c models.Contact) int { return c.ID }), nil
}

func (s *MemStore) CreateContact(_ context.Context, insert models.InsertContact) (*models.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := models.Contact{
		ID:        s.nextID("contacts"),
		Name:      insert.Name,
		Email:     insert.Email,
		Subject:   insert.Subject,
		Message:   insert.Message,
		CreatedAt: time.Now().UTC(),
	}
	s.contacts[c.ID] = c
	return &c, nil
}

// Site content

func (s *MemStore) GetSiteContent(_ context.Context, section, key string) (*models.SiteContent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if c, ok := s.siteContent[compositeKey(section, key)]; ok {
		return &c, nil
	}
	return nil, nil
}

func (s *MemStore) GetSiteContentBySection(_ context.Context, section string) ([]models.SiteContent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.SiteContent, 0)
	for _, c := range s.siteContent {
		if c.Section == section {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemStore) GetAllSiteContent(_ context.Context) ([]models.SiteContent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.SiteContent, 0, len(s.siteContent))
	for _, c := range s.siteContent {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemStore) UpsertSiteContent(_ context.Context, insert models.InsertSiteContent) (*models.SiteContent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := compositeKey(insert.Section, insert.Key)
	c, ok := s.siteContent[k]
	if !ok {
		c = models.SiteContent{
			ID:      s.nextID("siteContent"),
			Section: insert.Section,
			Key:     insert.Key,
		}
	}
	c.Value = insert.Value
	c.Type = insert.Type
	c.UpdatedAt = time.Now().UTC()
	s.siteContent[k] = c
	return &c, nil
}

func (s *MemStore) DeleteSiteContent(_ context.Context, section, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := compositeKey(section, key)
	if _, ok := s.siteContent[k]; !ok {
		return false, nil
	}
	delete(s.siteContent, k)
	return true, nil
}

// Projects

func (s *MemStore) GetProject(_ context.Context, id int) (*models.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if p, ok := s.projects[id]; ok {
		return &p, nil
	}
	return nil, nil
}

func (s *MemStore) GetAllProjects(_ context.Context) ([]models.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return valuesSortedByID(s.projects, func(p models.Project) int { return p.ID }), nil
}

func (s *MemStore) CreateProject(_ context.Context, insert models.InsertProject) (*models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now().UTC()
	p := models.Project{
		ID:           s.nextID("projects"),
		Title:        insert.Title,
		Description:  insert.Description,
		ImageURL:     insert.ImageURL,
		ProjectURL:   insert.ProjectURL,
		GithubURL:    insert.GithubURL,
		Technologies: insert.Technologies,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.projects[p.ID] = p
	return &p, nil
}

func (s *MemStore) UpdateProject(_ context.Context, id int, patch models.ProjectPatch) (*models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.projects[id]
	if !ok {
		return nil, nil
	}
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.ImageURL != nil {
		p.ImageURL = *patch.ImageURL
	}
	if patch.ProjectURL != nil {
		p.ProjectURL = *patch.ProjectURL
	}
	if patch.GithubURL != nil {
		p.GithubURL = *patch.GithubURL
	}
	if patch.Technologies != nil {
		p.Technologies = *patch.Technologies
	}
	p.UpdatedAt = time.Now().UTC()
	s.projects[id] = p
	return &p, nil
}

func (s *MemStore) DeleteProject(_ context.Context, id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.projects[id]; !ok {
		return false, nil
	}
	delete(s.projects, id)
	return true, nil
}

// Experiences

func (s *MemStore) GetExperience(_ context.Context, id int) (*models.Experience, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if e, ok := s.experiences[id]; ok {
		return &e, nil
	}
	return nil, nil
}

func (s *MemStore) GetAllExperiences(_ context.Context) ([]models.Experience, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return valuesSortedByID(s.experiences, func(e models.Experience) int { return e.ID }), nil
}

func (s *MemStore) CreateExperience(_ context.Context, insert models.InsertExperience) (*models.Experience, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now().UTC()
	e := models.Experience{
		ID:           s.nextID("experiences"),
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
	}
	s.experiences[e.ID] = e
	return &e, nil
}

func (s *MemStore) UpdateExperience(_ context.Context, id int, patch models.ExperiencePatch) (*models.Experience, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.experiences[id]
	if !ok {
		return nil, nil
	}
	if patch.Title != nil {
		e.Title = *patch.Title
	}
	if patch.Company != nil {
		e.Company = *patch.Company
	}
	if patch.Location != nil {
		e.Location = *patch.Location
	}
	if patch.Period != nil {
		e.Period = *patch.Period
	}
	if patch.Description != nil {
		e.Description = *patch.Description
	}
	if patch.Technologies != nil {
		e.Technologies = *patch.Technologies
	}
	if patch.Achievements != nil {
		e.Achievements = *patch.Achievements
	}
	if patch.Category != nil {
		e.Category = *patch.Category
	}
	if patch.Logo != nil {
		e.Logo = *patch.Logo
	}
	e.UpdatedAt = time.Now().UTC()
	s.experiences[id] = e
	return &e, nil
}

func (s *MemStore) DeleteExperience(_ context.Context, id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.experiences[id]; !ok {
		return false, nil
	}
	delete(s.experiences, id)
	return true, nil
}

// Testimonials

func (s *MemStore) GetTestimonial(_ context.Context, id int) (*models.Testimonial, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if t, ok := s.testimonials[id]; ok {
		return &t, nil
	}
	return nil, nil
}

func (s *MemStore) GetAllTestimonials(_ context.Context) ([]models.Testimonial, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return valuesSortedByID(s.testimonials, func(t models.Testimonial) int { return t.ID }), nil
}

func (s *MemStore) CreateTestimonial(_ context.Context, insert models.InsertTestimonial) (*models.Testimonial, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now().UTC()
	t := models.Testimonial{
		ID:        s.nextID("testimonials"),
		Name:      insert.Name,
		Role:      insert.Role,
		Company:   insert.Company,
		Content:   insert.Content,
		Image:     insert.Image,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.testimonials[t.ID] = t
	return &t, nil
}

func (s *MemStore) UpdateTestimonial(_ context.Context, id int, patch models.TestimonialPatch) (*models.Testimonial, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.testimonials[id]
	if !ok {
		return nil, nil
	}
	if patch.Name != nil {
		t.Name = *patch.Name
	}
	if patch.Role != nil {
		t.Role = *patch.Role
	}
	if patch.Company != nil {
		t.Company = *patch.Company
	}
	if patch.Content != nil {
		t.Content = *patch.Content
	}
	if patch.Image != nil {
		t.Image = *patch.Image
	}
	t.UpdatedAt = time.Now().UTC()
	s.testimonials[id] = t
	return &t, nil
}

func (s *MemStore) DeleteTestimonial(_ context.Context, id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.testimonials[id]; !ok {
		return false, nil
	}
	delete(s.testimonials, id)
	return true, nil
}

// Blog posts

func (s *MemStore) GetBlogPost(_ context.Context, id int) (*models.BlogPost, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if p, ok := s.blogPosts[id]; ok {
		return &p, nil
	}
	return nil, nil
}

func (s *MemStore) GetBlogPostBySlug(_ context.Context, slug string) (*models.BlogPost, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.blogPosts {
		if p.Slug == slug {
			return &p, nil
		}
	}
	return nil, nil
}

// GetAllBlogPosts returns published posts newest-first, then unpublished
// posts. Publication status dominates recency.
func (s *MemStore) GetAllBlogPosts(_ context.Context) ([]models.BlogPost, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.BlogPost, 0, len(s.blogPosts))
	for _, p := range s.blogPosts {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].IsPublished != out[j].IsPublished {
			return out[i].IsPublished
		}
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	return out, nil
}

func (s *MemStore) GetPublishedBlogPosts(ctx context.Context) ([]models.BlogPost, error) {
	all, err := s.GetAllBlogPosts(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.BlogPost, 0, len(all))
	for _, p := range all {
		if p.IsPublished {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *MemStore) CreateBlogPost(_ context.Context, insert models.InsertBlogPost) (*models.BlogPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now().UTC()
	p := models.BlogPost{
		ID:          s.nextID("blogPosts"),
		Title:       insert.Title,
		Slug:        insert.Slug,
		Excerpt:     insert.Excerpt,
		Content:     insert.Content,
		Tags:        insert.Tags,
		IsPublished: insert.IsPublished,
		ViewCount:   0,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.blogPosts[p.ID] = p
	return &p, nil
}

func (s *MemStore) UpdateBlogPost(_ context.Context, id int, patch models.BlogPostPatch) (*models.BlogPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.blogPosts[id]
	if !ok {
		return nil, nil
	}
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Slug != nil {
		p.Slug = *patch.Slug
	}
	if patch.Excerpt != nil {
		p.Excerpt = *patch.Excerpt
	}
	if patch.Content != nil {
		p.Content = *patch.Content
	}
	if patch.Tags != nil {
		p.Tags = *patch.Tags
	}
	if patch.IsPublished != nil {
		p.IsPublished = *patch.IsPublished
	}
	p.UpdatedAt = time.Now().UTC()
	s.blogPosts[id] = p
	return &p, nil
}

func (s *MemStore) DeleteBlogPost(_ context.Context, id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.blogPosts[id]; !ok {
		return false, nil
	}
	// comments intentionally survive; there are no cascading deletes
	delete(s.blogPosts, id)
	return true, nil
}

func (s *MemStore) IncrementBlogPostViewCount(_ context.Context, id int) (*models.BlogPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.blogPosts[id]
	if !ok {
		return nil, nil
	}
	p.ViewCount++
	s.blogPosts[id] = p
	return &p, nil
}

// Blog comments

func (s *MemStore) GetBlogComment(_ context.Context, id int) (*models.BlogComment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if c, ok := s.blogComments[id]; ok {
		return &c, nil
	}
	return nil, nil
}

func (s *MemStore) GetCommentsByPost(_ context.Context, postID int) ([]models.BlogComment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.BlogComment, 0)
	for _, c := range s.blogComments {
		if c.PostID == postID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemStore) GetApprovedCommentsByPost(_ context.Context, postID int) ([]models.BlogComment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.BlogComment, 0)
	for _, c := range s.blogComments {
		if c.PostID == postID && c.IsApproved {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemStore) GetAllBlogComments(_ context.Context) ([]models.BlogComment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return valuesSortedByID(s.blogComments, func(c models.BlogComment) int { return c.ID }), nil
}

func (s *MemStore) CreateBlogComment(_ context.Context, insert models.InsertBlogComment) (*models.BlogComment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := models.BlogComment{
		ID:         s.nextID("blogComments"),
		PostID:     insert.PostID,
		Author:     insert.Author,
		Email:      insert.Email,
		Content:    insert.Content,
		IsApproved: false,
		CreatedAt:  time.Now().UTC(),
	}
	s.blogComments[c.ID] = c
	return &c, nil
}

func (s *MemStore) UpdateBlogComment(_ context.Context, id int, patch models.BlogCommentPatch) (*models.BlogComment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.blogComments[id]
	if !ok {
		return nil, nil
	}
	if patch.Author != nil {
		c.Author = *patch.Author
	}
	if patch.Email != nil {
		c.Email = *patch.Email
	}
	if patch.Content != nil {
		c.Content = *patch.Content
	}
	if patch.IsApproved != nil {
		c.IsApproved = *patch.IsApproved
	}
	s.blogComments[id] = c
	return &c, nil
}

func (s *MemStore) UpdateBlogCommentApproval(_ context.Context, id int, approved bool) (*models.BlogComment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.blogComments[id]
	if !ok {
		return nil, nil
	}
	c.IsApproved = approved
	s.blogComments[id] = c
	return &c, nil
}

func (s *MemStore) DeleteBlogComment(_ context.Context, id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.blogComments[id]; !ok {
		return false, nil
	}
	delete(s.blogComments, id)
	return true, nil
}

// Skills

func (s *MemStore) GetSkill(_ context.Context, id int) (*models.Skill, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if sk, ok := s.skills[id]; ok {
		return &sk, nil
	}
	return nil, nil
}

func (s *MemStore) GetAllSkills(_ context.Context) ([]models.Skill, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return valuesSortedByID(s.skills, func(sk models.Skill) int { return sk.ID }), nil
}

func (s *MemStore) CreateSkill(_ context.Context, insert models.InsertSkill) (*models.Skill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sk := models.Skill{
		ID:        s.nextID("skills"),
		Name:      insert.Name,
		Category:  insert.Category,
		Icon:      insert.Icon,
		Years:     insert.Years,
		CreatedAt: time.Now().UTC(),
	}
	s.skills[sk.ID] = sk
	return &sk, nil
}

func (s *MemStore) UpdateSkill(_ context.Context, id int, patch models.SkillPatch) (*models.Skill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sk, ok := s.skills[id]
	if !ok {
		return nil, nil
	}
	if patch.Name != nil {
		sk.Name = *patch.Name
	}
	if patch.Category != nil {
		sk.Category = *patch.Category
	}
	if patch.Icon != nil {
		sk.Icon = *patch.Icon
	}
	if patch.Years != nil {
		sk.Years = *patch.Years
	}
	s.skills[id] = sk
	return &sk, nil
}

func (s *MemStore) DeleteSkill(_ context.Context, id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.skills[id]; !ok {
		return false, nil
	}
	delete(s.skills, id)
	return true, nil
}

// Newsletter subscribers

func (s *MemStore) GetSubscriber(_ context.Context, id int) (*models.NewsletterSubscriber, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if sub, ok := s.subscribers[id]; ok {
		return &sub, nil
	}
	return nil, nil
}

func (s *MemStore) GetSubscriberByEmail(_ context.Context, email string) (*models.NewsletterSubscriber, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, sub := range s.subscribers {
		if sub.Email == email {
			return &sub, nil
		}
	}
	return nil, nil
}

func (s *MemStore) GetAllSubscribers(_ context.Context) ([]models.NewsletterSubscriber, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return valuesSortedByID(s.subscribers, func(sub models.NewsletterSubscriber) int { return sub.ID }), nil
}

func (s *MemStore) CreateSubscriber(_ context.Context, insert models.InsertNewsletterSubscriber) (*models.NewsletterSubscriber, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sub := models.NewsletterSubscriber{
		ID:        s.nextID("subscribers"),
		Email:     insert.Email,
		IsActive:  insert.IsActive,
		CreatedAt: time.Now().UTC(),
	}
	s.subscribers[sub.ID] = sub
	return &sub, nil
}

func (s *MemStore) UpdateSubscriber(_ context.Context, id int, patch models.NewsletterSubscriberPatch) (*models.NewsletterSubscriber, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sub, ok := s.subscribers[id]
	if !ok {
		return nil, nil
	}
	if patch.Email != nil {
		sub.Email = *patch.Email
	}
	if patch.IsActive != nil {
		sub.IsActive = *patch.IsActive
	}
	s.subscribers[id] = sub
	return &sub, nil
}

func (s *MemStore) DeleteSubscriber(_ context.Context, id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.subscribers[id]; !ok {
		return false, nil
	}
	delete(s.subscribers, id)
	return true, nil
}

// Languages

func (s *MemStore) GetLanguage(_ context.Context, id int) (*models.Language, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if l, ok := s.languages[id]; ok {
		return &l, nil
	}
	return nil, nil
}

func (s *MemStore) GetLanguageByCode(_ context.Context, code string) (*models.Language, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, l := range s.languages {
		if l.Code == code {
			return &l, nil
		}
	}
	return nil, nil
}

func (s *MemStore) GetDefaultLanguage(_ context.Context) (*models.Language, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, l := range s.languages {
		if l.IsDefault {
			return &l, nil
		}
	}
	return nil, nil
}

func (s *MemStore) GetAllLanguages(_ context.Context) ([]models.Language, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return valuesSortedByID(s.languages, func(l models.Language) int { return l.ID }), nil
}

func (s *MemStore) CreateLanguage(_ context.Context, insert models.InsertLanguage) (*models.Language, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if insert.IsDefault {
		s.demoteDefaultLanguage(0)
	}
	l := models.Language{
		ID:        s.nextID("languages"),
		Code:      insert.Code,
		Name:      insert.Name,
		IsActive:  insert.IsActive,
		IsDefault: insert.IsDefault,
		CreatedAt: time.Now().UTC(),
	}
	s.languages[l.ID] = l
	return &l, nil
}

func (s *MemStore) UpdateLanguage(_ context.Context, id int, patch models.LanguagePatch) (*models.Language, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.languages[id]
	if !ok {
		return nil, nil
	}
	if patch.Code != nil {
		l.Code = *patch.Code
	}
	if patch.Name != nil {
		l.Name = *patch.Name
	}
	if patch.IsActive != nil {
		l.IsActive = *patch.IsActive
	}
	if patch.IsDefault != nil {
		if *patch.IsDefault {
			s.demoteDefaultLanguage(id)
		}
		l.IsDefault = *patch.IsDefault
	}
	s.languages[id] = l
	return &l, nil
}

// demoteDefaultLanguage clears the default flag everywhere except keep.
// At most one language is the default at a time. Caller holds the lock.
func (s *MemStore) demoteDefaultLanguage(keep int) {
	for id, l := range s.languages {
		if id != keep && l.IsDefault {
			l.IsDefault = false
			s.languages[id] = l
		}
	}
}

func (s *MemStore) DeleteLanguage(_ context.Context, id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.languages[id]; !ok {
		return false, nil
	}
	delete(s.languages, id)
	return true, nil
}

// Translations

func (s *MemStore) GetTranslation(_ context.Context, languageCode, key string) (*models.Translation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if t, ok := s.translations[compositeKey(languageCode, key)]; ok {
		return &t, nil
	}
	return nil, nil
}

func (s *MemStore) GetTranslationsByLanguage(_ context.Context, languageCode string) ([]models.Translation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Translation, 0)
	for _, t := range s.translations {
		if t.LanguageCode == languageCode {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemStore) GetAllTranslations(_ context.Context) ([]models.Translation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Translation, 0, len(s.translations))
	for _, t := range s.translations {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemStore) UpsertTranslation(_ context.Context, insert models.InsertTranslation) (*models.Translation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := compositeKey(insert.LanguageCode, insert.Key)
	t, ok := s.translations[k]
	if !ok {
		t = models.Translation{
			ID:           s.nextID("translations"),
			LanguageCode: insert.LanguageCode,
			Key:          insert.Key,
		}
	}
	t.Value = insert.Value
	t.UpdatedAt = time.Now().UTC()
	s.translations[k] = t
	return &t, nil
}

func (s *MemStore) DeleteTranslation(_ context.Context, languageCode, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := compositeKey(languageCode, key)
	if _, ok := s.translations[k]; !ok {
		return false, nil
	}
	delete(s.translations, k)
	return true, nil
}

// Social profiles

func (s *MemStore) GetSocialProfile(_ context.Context, id int) (*models.SocialProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if p, ok := s.socialProfiles[id]; ok {
		return &p, nil
	}
	return nil, nil
}

func (s *MemStore) GetAllSocialProfiles(_ context.Context) ([]models.SocialProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return valuesSortedByID(s.socialProfiles, func(p models.SocialProfile) int { return p.ID }), nil
}

func (s *MemStore) CreateSocialProfile(_ context.Context, insert models.InsertSocialProfile) (*models.SocialProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := models.SocialProfile{
		ID:          s.nextID("socialProfiles"),
		Platform:    insert.Platform,
		Username:    insert.Username,
		ProfileURL:  insert.ProfileURL,
		Followers:   insert.Followers,
		IsConnected: insert.IsConnected,
		CreatedAt:   time.Now().UTC(),
	}
	s.socialProfiles[p.ID] = p
	return &p, nil
}

func (s *MemStore) UpdateSocialProfile(_ context.Context, id int, patch models.SocialProfilePatch) (*models.SocialProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.socialProfiles[id]
	if !ok {
		return nil, nil
	}
	if patch.Platform != nil {
		p.Platform = *patch.Platform
	}
	if patch.Username != nil {
		p.Username = *patch.Username
	}
	if patch.ProfileURL != nil {
		p.ProfileURL = *patch.ProfileURL
	}
	if patch.Followers != nil {
		p.Followers = *patch.Followers
	}
	if patch.IsConnected != nil {
		p.IsConnected = *patch.IsConnected
	}
	s.socialProfiles[id] = p
	return &p, nil
}

func (s *MemStore) DeleteSocialProfile(_ context.Context, id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.socialProfiles[id]; !ok {
		return false, nil
	}
	delete(s.socialProfiles, id)
	return true, nil
}

func (s *MemStore) SyncSocialProfile(_ context.Context, id int) (*models.SocialProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.socialProfiles[id]
	if !ok {
		return nil, nil
	}
	p.LastSynced = time.Now().UTC()
	s.socialProfiles[id] = p
	return &p, nil
}
