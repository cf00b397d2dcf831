// Package site serves the portfolio content (profile, skills, projects) and
// takes in contact-form submissions.
package site

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"github.com/jmorel/devfolio/internal/domain"
	"github.com/jmorel/devfolio/internal/notify"
)

// Profile is the hero-section copy.
type Profile struct {
	Name     string `json:"name"`
	Headline string `json:"headline"`
	Summary  string `json:"summary"`
}

// Skill is a single skill with a proficiency level from 0 to 100.
type Skill struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
}

// SkillCategory groups related skills.
type SkillCategory struct {
	Category string  `json:"category"`
	Items    []Skill `json:"items"`
}

// Project is a portfolio entry.
type Project struct {
	ID           int      `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Image        string   `json:"image"`
	Technologies []string `json:"technologies"`
	LiveDemo     string   `json:"liveDemo"`
	GithubLink   string   `json:"githubLink"`
}

// Service exposes the portfolio content and handles contact submissions.
type Service struct {
	contacts domain.ContactRepository
	notifier notify.Notifier
}

// NewService creates a new Service.
func NewService(contacts domain.ContactRepository, notifier notify.Notifier) *Service {
	return &Service{contacts: contacts, notifier: notifier}
}

// Profile returns the hero-section copy.
func (s *Service) Profile() Profile {
	return profile
}

// Skills returns all skill categories in display order.
func (s *Service) Skills() []SkillCategory {
	out := make([]SkillCategory, len(skills))
	copy(out, skills)
	return out
}

// Projects returns the portfolio projects, optionally narrowed to those using
// the given technology (case-insensitive).
func (s *Service) Projects(technology string) []Project {
	if technology == "" || strings.EqualFold(technology, "all") {
		out := make([]Project, len(projects))
		copy(out, projects)
		return out
	}

	var out []Project
	for _, p := range projects {
		for _, tech := range p.Technologies {
			if strings.EqualFold(tech, technology) {
				out = append(out, p)
				break
			}
		}
	}
	return out
}

// SubmitContact validates and persists a contact-form submission.
func (s *Service) SubmitContact(ctx context.Context, msg *domain.ContactMessage) error {
	if strings.TrimSpace(msg.Name) == "" ||
		strings.TrimSpace(msg.Subject) == "" ||
		strings.TrimSpace(msg.Message) == "" {
		return fmt.Errorf("%w: name, subject, and message are required", domain.ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(msg.Email); err != nil {
		return fmt.Errorf("%w: invalid email address", domain.ErrInvalidInput)
	}

	if err := s.contacts.Create(ctx, msg); err != nil {
		s.notifier.Notify(notify.Notification{
			Title:       "Message failed",
			Description: "Your message could not be saved. Please try again.",
			Variant:     notify.VariantDestructive,
		})
		return fmt.Errorf("create contact message: %w", err)
	}

	s.notifier.Notify(notify.Notification{
		Title:       "Message sent",
		Description: fmt.Sprintf("Thanks %s, I'll get back to you soon!", msg.Name),
		Variant:     notify.VariantDefault,
	})
	return nil
}

// ListContacts returns every stored contact message, newest first. Only an
// admin may read the inbox.
func (s *Service) ListContacts(ctx context.Context, current *domain.User) ([]domain.ContactMessage, error) {
	if current == nil {
		return nil, fmt.Errorf("%w: you must be logged in", domain.ErrNotLoggedIn)
	}
	if current.Role != domain.RoleAdmin {
		return nil, fmt.Errorf("%w: admin role required", domain.ErrForbidden)
	}
	return s.contacts.List(ctx)
}
