package storage

import (
	"context"
	"sync"
	"testing"
	"time"

	"gofolio/internal/models"
)

func TestMemStoreIDsMonotonicAcrossDeletes(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore(false)

	var ids []int
	for i := 0; i < 3; i++ {
		p, err := s.CreateProject(ctx, models.InsertProject{Title: "p"})
		if err != nil {
			t.Fatalf("create project: %v", err)
		}
		ids = append(ids, p.ID)
	}
	for i := 1; i < len(ids); i++ {
		if ids[i] <= ids[i-1] {
			t.Fatalf("ids not strictly increasing: %v", ids)
		}
	}

	if ok, err := s.DeleteProject(ctx, ids[2]); err != nil || !ok {
		t.Fatalf("delete project: ok=%v err=%v", ok, err)
	}

	p, err := s.CreateProject(ctx, models.InsertProject{Title: "after delete"})
	if err != nil {
		t.Fatalf("create project: %v", err)
	}
	if p.ID <= ids[2] {
		t.Fatalf("id %d reused after delete of %d", p.ID, ids[2])
	}
}

func TestMemStoreUpsertSiteContentIdempotent(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore(false)

	first, err := s.UpsertSiteContent(ctx, models.InsertSiteContent{
		Section: "hero", Key: "name", Value: "v1", Type: models.ContentTypeText,
	})
	if err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	time.Sleep(2 * time.Millisecond)

	second, err := s.UpsertSiteContent(ctx, models.InsertSiteContent{
		Section: "hero", Key: "name", Value: "v2", Type: models.ContentTypeText,
	})
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	if second.ID != first.ID {
		t.Fatalf("upsert created a second record: ids %d and %d", first.ID, second.ID)
	}
	if second.Value != "v2" {
		t.Fatalf("expected latest value, got %q", second.Value)
	}
	if !second.UpdatedAt.After(first.UpdatedAt) {
		t.Fatalf("updatedAt did not advance: %v -> %v", first.UpdatedAt, second.UpdatedAt)
	}

	all, err := s.GetAllSiteContent(ctx)
	if err != nil {
		t.Fatalf("get all: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected exactly one record, got %d", len(all))
	}
}

func TestMemStoreCompositeKeyIsolation(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore(false)

	if _, err := s.UpsertSiteContent(ctx, models.InsertSiteContent{
		Section: "hero", Key: "name", Value: "hero name", Type: models.ContentTypeText,
	}); err != nil {
		t.Fatalf("upsert hero: %v", err)
	}
	if _, err := s.UpsertSiteContent(ctx, models.InsertSiteContent{
		Section: "about", Key: "name", Value: "about name", Type: models.ContentTypeText,
	}); err != nil {
		t.Fatalf("upsert about: %v", err)
	}

	hero, err := s.GetSiteContent(ctx, "hero", "name")
	if err != nil || hero == nil {
		t.Fatalf("get hero: %v %v", hero, err)
	}
	about, err := s.GetSiteContent(ctx, "about", "name")
	if err != nil || about == nil {
		t.Fatalf("get about: %v %v", about, err)
	}
	if hero.Value != "hero name" || about.Value != "about name" {
		t.Fatalf("composite keys collided: %q / %q", hero.Value, about.Value)
	}
}

func TestMemStoreBlogPostOrdering(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore(false)

	a, err := s.CreateBlogPost(ctx, models.InsertBlogPost{Title: "A", Slug: "a", IsPublished: true})
	if err != nil {
		t.Fatalf("create a: %v", err)
	}
	time.Sleep(2 * time.Millisecond)
	c, err := s.CreateBlogPost(ctx, models.InsertBlogPost{Title: "C", Slug: "c", IsPublished: true})
	if err != nil {
		t.Fatalf("create c: %v", err)
	}
	time.Sleep(2 * time.Millisecond)
	b, err := s.CreateBlogPost(ctx, models.InsertBlogPost{Title: "B", Slug: "b", IsPublished: false})
	if err != nil {
		t.Fatalf("create b: %v", err)
	}

	posts, err := s.GetAllBlogPosts(ctx)
	if err != nil {
		t.Fatalf("get all: %v", err)
	}
	if len(posts) != 3 {
		t.Fatalf("expected 3 posts, got %d", len(posts))
	}
	// published newest-first, unpublished last even though it is newest
	want := []int{c.ID, a.ID, b.ID}
	for i, post := range posts {
		if post.ID != want[i] {
			t.Fatalf("position %d: want post %d got %d (%s)", i, want[i], post.ID, post.Title)
		}
	}
}

func TestMemStoreViewCountConcurrentIncrements(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore(false)

	post, err := s.CreateBlogPost(ctx, models.InsertBlogPost{Title: "hot", Slug: "hot", IsPublished: true})
	if err != nil {
		t.Fatalf("create post: %v", err)
	}

	const n = 100
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			if _, err := s.IncrementBlogPostViewCount(ctx, post.ID); err != nil {
				t.Errorf("increment: %v", err)
			}
		}()
	}
	wg.Wait()

	got, err := s.GetBlogPost(ctx, post.ID)
	if err != nil || got == nil {
		t.Fatalf("get post: %v %v", got, err)
	}
	if got.ViewCount != n {
		t.Fatalf("expected view count %d, got %d", n, got.ViewCount)
	}
}

func TestMemStoreDefaultLanguageInvariant(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore(false)

	en, err := s.CreateLanguage(ctx, models.InsertLanguage{Code: "en", Name: "English", IsActive: true, IsDefault: true})
	if err != nil {
		t.Fatalf("create en: %v", err)
	}
	fr, err := s.CreateLanguage(ctx, models.InsertLanguage{Code: "fr", Name: "French", IsActive: true, IsDefault: true})
	if err != nil {
		t.Fatalf("create fr: %v", err)
	}

	def, err := s.GetDefaultLanguage(ctx)
	if err != nil || def == nil {
		t.Fatalf("get default: %v %v", def, err)
	}
	if def.ID != fr.ID {
		t.Fatalf("expected fr as default, got %s", def.Code)
	}
	enAfter, err := s.GetLanguage(ctx, en.ID)
	if err != nil || enAfter == nil {
		t.Fatalf("get en: %v %v", enAfter, err)
	}
	if enAfter.IsDefault {
		t.Fatal("en kept default flag after fr became default")
	}

	isDefault := true
	if _, err := s.UpdateLanguage(ctx, en.ID, models.LanguagePatch{IsDefault: &isDefault}); err != nil {
		t.Fatalf("update en: %v", err)
	}
	frAfter, err := s.GetLanguage(ctx, fr.ID)
	if err != nil || frAfter == nil {
		t.Fatalf("get fr: %v %v", frAfter, err)
	}
	if frAfter.IsDefault {
		t.Fatal("fr kept default flag after en became default")
	}
}

func TestMemStoreSeedData(t *testing.T) {
	ctx := context.Background()

	seeded := NewMemStore(true)
	admin, err := seeded.GetUserByUsername(ctx, "admin")
	if err != nil || admin == nil {
		t.Fatalf("seeded admin missing: %v %v", admin, err)
	}
	if !admin.IsAdmin {
		t.Fatal("seeded admin is not an admin")
	}
	name, err := seeded.GetSiteContent(ctx, "hero", "name")
	if err != nil || name == nil {
		t.Fatalf("seeded hero name missing: %v %v", name, err)
	}
	profiles, err := seeded.GetAllSocialProfiles(ctx)
	if err != nil || len(profiles) == 0 {
		t.Fatalf("seeded social profiles missing: %v %v", profiles, err)
	}

	empty := NewMemStore(false)
	users, err := empty.GetUserByUsername(ctx, "admin")
	if err != nil {
		t.Fatalf("lookup in empty store: %v", err)
	}
	if users != nil {
		t.Fatal("unseeded store contains an admin user")
	}
}

func TestMemStoreSubscriberSoftDeactivate(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore(false)

	sub, err := s.CreateSubscriber(ctx, models.InsertNewsletterSubscriber{Email: "a@b.c", IsActive: true})
	if err != nil {
		t.Fatalf("create subscriber: %v", err)
	}

	inactive := false
	updated, err := s.UpdateSubscriber(ctx, sub.ID, models.NewsletterSubscriberPatch{IsActive: &inactive})
	if err != nil || updated == nil {
		t.Fatalf("deactivate: %v %v", updated, err)
	}
	if updated.IsActive {
		t.Fatal("subscriber still active after deactivation")
	}

	byEmail, err := s.GetSubscriberByEmail(ctx, "a@b.c")
	if err != nil || byEmail == nil {
		t.Fatalf("lookup by email: %v %v", byEmail, err)
	}
	if byEmail.IsActive {
		t.Fatal("deactivation not visible through email lookup")
	}
}

func TestMemStoreDeleteBlogPostKeepsComments(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore(false)

	post, err := s.CreateBlogPost(ctx, models.InsertBlogPost{Title: "p", Slug: "p", IsPublished: true})
	if err != nil {
		t.Fatalf("create post: %v", err)
	}
	comment, err := s.CreateBlogComment(ctx, models.InsertBlogComment{PostID: post.ID, Author: "x", Content: "hi"})
	if err != nil {
		t.Fatalf("create comment: %v", err)
	}

	if ok, err := s.DeleteBlogPost(ctx, post.ID); err != nil || !ok {
		t.Fatalf("delete post: ok=%v err=%v", ok, err)
	}

	orphan, err := s.GetBlogComment(ctx, comment.ID)
	if err != nil || orphan == nil {
		t.Fatalf("comment should survive post deletion: %v %v", orphan, err)
	}
}

func TestMemStoreNotFoundIsNilNotError(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore(false)

	p, err := s.GetProject(ctx, 42)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p != nil {
		t.Fatal("expected nil for missing project")
	}

	title := "x"
	updated, err := s.UpdateProject(ctx, 42, models.ProjectPatch{Title: &title})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated != nil {
		t.Fatal("expected nil update result for missing project")
	}

	ok, err := s.DeleteProject(ctx, 42)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if ok {
		t.Fatal("expected false delete result for missing project")
	}
}

func TestMemStoreCommentApprovalToggle(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore(false)

	c, err := s.CreateBlogComment(ctx, models.InsertBlogComment{PostID: 1, Author: "x", Content: "hi"})
	if err != nil {
		t.Fatalf("create comment: %v", err)
	}
	if c.IsApproved {
		t.Fatal("new comments must start unapproved")
	}

	approved, err := s.UpdateBlogCommentApproval(ctx, c.ID, true)
	if err != nil || approved == nil {
		t.Fatalf("approve: %v %v", approved, err)
	}
	if !approved.IsApproved {
		t.Fatal("approval did not stick")
	}

	// a second, unapproved comment stays out of the public list
	if _, err := s.CreateBlogComment(ctx, models.InsertBlogComment{PostID: 1, Author: "y", Content: "spam"}); err != nil {
		t.Fatalf("create comment: %v", err)
	}
	public, err := s.GetApprovedCommentsByPost(ctx, 1)
	if err != nil {
		t.Fatalf("approved comments: %v", err)
	}
	if len(public) != 1 || public[0].ID != c.ID {
		t.Fatalf("approved list = %v", public)
	}
}

func TestMemStoreSyncSocialProfile(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore(false)

	p, err := s.CreateSocialProfile(ctx, models.InsertSocialProfile{Platform: "github", Username: "x"})
	if err != nil {
		t.Fatalf("create profile: %v", err)
	}
	if !p.LastSynced.IsZero() {
		t.Fatal("new profiles start unsynced")
	}

	synced, err := s.SyncSocialProfile(ctx, p.ID)
	if err != nil || synced == nil {
		t.Fatalf("sync: %v %v", synced, err)
	}
	if synced.LastSynced.IsZero() {
		t.Fatal("sync did not stamp lastSynced")
	}
}
