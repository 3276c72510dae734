package storage

import (
	"context"

	"gofolio/internal/models"
)

func strPtr(s string) *string { return &s }

// seed pre-populates the demo admin account and enough content for a first
// run without a durable backend. Convenience only, not relied on anywhere.
func (s *MemStore) seed() {
	ctx := context.Background()

	_, _ = s.CreateUser(ctx, models.InsertUser{
		Username: "admin",
		Password: "admin123",
		IsAdmin:  true,
	})

	for _, c := range []models.InsertSiteContent{
		{Section: "hero", Key: "name", Value: "Ritik Sharma", Type: models.ContentTypeText},
		{Section: "hero", Key: "role", Value: "Full Stack Developer", Type: models.ContentTypeText},
		{Section: "hero", Key: "tagline", Value: "Building things for the web", Type: models.ContentTypeText},
		{Section: "about", Key: "bio", Value: "Developer with a focus on resilient backend systems and clean interfaces.", Type: models.ContentTypeText},
		{Section: "about", Key: "photo", Value: "/images/profile.jpg", Type: models.ContentTypeImage},
	} {
		_, _ = s.UpsertSiteContent(ctx, c)
	}

	_, _ = s.CreateExperience(ctx, models.InsertExperience{
		Title:        "Senior Software Engineer",
		Company:      "Acme Cloud",
		Location:     "Remote",
		Period:       "2023 - Present",
		Description:  []string{"Own the storage and platform services behind the public site."},
		Technologies: []string{"Go", "MongoDB", "Redis"},
		Achievements: []string{"Cut p99 request latency by 40%"},
		Category:     "work",
	})
	_, _ = s.CreateExperience(ctx, models.InsertExperience{
		Title:        "Software Engineer",
		Company:      "Startup Labs",
		Location:     "Bangalore",
		Period:       "2020 - 2023",
		Description:  []string{"Built and operated customer-facing web services."},
		Technologies: []string{"TypeScript", "React", "PostgreSQL"},
		Achievements: []string{"Shipped the v1 product to 10k users"},
		Category:     "work",
		Logo:         strPtr("/images/startup-labs.png"),
	})

	_, _ = s.CreateSocialProfile(ctx, models.InsertSocialProfile{
		Platform:    "github",
		Username:    "ritiksharma",
		ProfileURL:  "https://github.com/ritiksharma",
		Followers:   128,
		IsConnected: true,
	})
	_, _ = s.CreateSocialProfile(ctx, models.InsertSocialProfile{
		Platform:    "linkedin",
		Username:    "ritik-sharma",
		ProfileURL:  "https://www.linkedin.com/in/ritik-sharma",
		Followers:   540,
		IsConnected: true,
	})

	_, _ = s.CreateLanguage(ctx, models.InsertLanguage{
		Code:      "en",
		Name:      "English",
		IsActive:  true,
		IsDefault: true,
	})
}
