package blog

import (
	"time"

	"github.com/jmorel/devfolio/internal/domain"
)

// SeedState builds the default state used when no durable state exists: one
// admin user and two sample posts authored by them.
func SeedState() *domain.BlogState {
	now := time.Now().UTC()
	admin := domain.User{
		ID:        "1",
		Username:  "admin",
		Email:     "admin@example.com",
		Role:      domain.RoleAdmin,
		CreatedAt: now,
	}

	posts := []domain.Post{
		{
			ID:    "1",
			Title: "Getting Started with React",
			Content: "<p>React is a powerful JavaScript library for building user interfaces.</p>\n" +
				"<p>This post will guide you through the basics of React and how to get started with your first React application.</p>\n" +
				"<h2>Why React?</h2>\n" +
				"<p>React makes it painless to create interactive UIs. Design simple views for each state in your application, and React will efficiently update and render just the right components when your data changes.</p>",
			Excerpt:    "Learn the basics of React and how to create your first application",
			Author:     admin,
			CoverImage: "https://images.unsplash.com/photo-1633356122102-3fe601e05bd2",
			Tags:       []string{"React", "JavaScript", "Frontend"},
			CreatedAt:  now,
			UpdatedAt:  now,
			Published:  true,
		},
		{
			ID:    "2",
			Title: "Advanced CSS Techniques",
			Content: "<p>CSS has evolved tremendously over the past few years.</p>\n" +
				"<p>In this post, we'll explore some advanced CSS techniques that can take your web design skills to the next level.</p>\n" +
				"<h2>CSS Grid Layout</h2>\n" +
				"<p>CSS Grid Layout is a two-dimensional layout system for the web. It lets you lay content out in rows and columns.</p>\n" +
				"<p>Check out this video tutorial:</p>",
			Excerpt:   "Discover modern CSS techniques to enhance your web designs",
			Author:    admin,
			VideoURL:  "https://www.youtube.com/embed/jV8B24rSN5o",
			Tags:      []string{"CSS", "Web Design", "Frontend"},
			CreatedAt: now.Add(-24 * time.Hour),
			UpdatedAt: now.Add(-24 * time.Hour),
			Published: true,
		},
	}

	return &domain.BlogState{
		Users:       []domain.User{admin},
		Posts:       posts,
		CurrentUser: nil,
	}
}
