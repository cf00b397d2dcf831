package site_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/jmorel/devfolio/internal/domain"
	"github.com/jmorel/devfolio/internal/notify"
	"github.com/jmorel/devfolio/internal/site"
)

// memContacts is an in-memory domain.ContactRepository.
type memContacts struct {
	mu     sync.Mutex
	msgs   []domain.ContactMessage
	nextID int64
	fail   bool
}

func (m *memContacts) Create(_ context.Context, msg *domain.ContactMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return errors.New("storage unavailable")
	}
	m.nextID++
	msg.ID = m.nextID
	m.msgs = append(m.msgs, *msg)
	return nil
}

func (m *memContacts) List(_ context.Context) ([]domain.ContactMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.ContactMessage, len(m.msgs))
	copy(out, m.msgs)
	return out, nil
}

type recorder struct {
	mu    sync.Mutex
	notes []notify.Notification
}

func (r *recorder) Notify(n notify.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notes = append(r.notes, n)
}

func (r *recorder) last() notify.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.notes) == 0 {
		return notify.Notification{}
	}
	return r.notes[len(r.notes)-1]
}

func newTestService(t *testing.T) (*site.Service, *memContacts, *recorder) {
	t.Helper()
	contacts := &memContacts{}
	rec := &recorder{}
	return site.NewService(contacts, rec), contacts, rec
}

func TestService_Profile(t *testing.T) {
	svc, _, _ := newTestService(t)

	p := svc.Profile()
	if p.Name == "" || p.Headline == "" {
		t.Fatalf("profile must be populated, got %+v", p)
	}
}

func TestService_Skills(t *testing.T) {
	svc, _, _ := newTestService(t)

	cats := svc.Skills()
	if len(cats) == 0 {
		t.Fatal("expected skill categories")
	}
	for _, c := range cats {
		if c.Category == "" || len(c.Items) == 0 {
			t.Fatalf("category must be named and non-empty: %+v", c)
		}
		for _, s := range c.Items {
			if s.Level < 0 || s.Level > 100 {
				t.Fatalf("skill level out of range: %+v", s)
			}
		}
	}
}

func TestService_Projects_Filter(t *testing.T) {
	svc, _, _ := newTestService(t)

	all := svc.Projects("")
	if len(all) == 0 {
		t.Fatal("expected projects")
	}
	if got := svc.Projects("all"); len(got) != len(all) {
		t.Fatalf("'all' must return everything: %d vs %d", len(got), len(all))
	}
	if got := svc.Projects("ALL"); len(got) != len(all) {
		t.Fatal("'all' filter must be case-insensitive")
	}

	react := svc.Projects("react")
	if len(react) == 0 {
		t.Fatal("expected at least one React project via case-insensitive match")
	}
	for _, p := range react {
		found := false
		for _, tech := range p.Technologies {
			if tech == "React" {
				found = true
			}
		}
		if !found {
			t.Fatalf("project %q does not use React", p.Title)
		}
	}

	if got := svc.Projects("COBOL"); len(got) != 0 {
		t.Fatalf("expected no COBOL projects, got %d", len(got))
	}
}

func TestService_SubmitContact(t *testing.T) {
	svc, contacts, rec := newTestService(t)
	ctx := context.Background()

	msg := &domain.ContactMessage{Name: "Alice", Email: "alice@example.com", Subject: "Hi", Message: "Hello"}
	if err := svc.SubmitContact(ctx, msg); err != nil {
		t.Fatalf("SubmitContact: %v", err)
	}
	if msg.ID == 0 {
		t.Fatal("expected ID assigned")
	}
	if len(contacts.msgs) != 1 {
		t.Fatalf("expected 1 stored message, got %d", len(contacts.msgs))
	}
	if n := rec.last(); n.Title != "Message sent" || n.Variant != notify.VariantDefault {
		t.Fatalf("unexpected notification: %+v", n)
	}
}

func TestService_SubmitContact_Validation(t *testing.T) {
	svc, contacts, _ := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name string
		msg  domain.ContactMessage
	}{
		{"blank name", domain.ContactMessage{Name: "  ", Email: "a@example.com", Subject: "s", Message: "m"}},
		{"blank subject", domain.ContactMessage{Name: "a", Email: "a@example.com", Subject: "", Message: "m"}},
		{"blank message", domain.ContactMessage{Name: "a", Email: "a@example.com", Subject: "s", Message: " "}},
		{"bad email", domain.ContactMessage{Name: "a", Email: "not-an-email", Subject: "s", Message: "m"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			msg := tc.msg
			err := svc.SubmitContact(ctx, &msg)
			if !errors.Is(err, domain.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}

	if len(contacts.msgs) != 0 {
		t.Fatalf("invalid submissions must not be stored, got %d", len(contacts.msgs))
	}
}

func TestService_SubmitContact_StorageFailure(t *testing.T) {
	svc, contacts, rec := newTestService(t)
	contacts.fail = true

	msg := &domain.ContactMessage{Name: "a", Email: "a@example.com", Subject: "s", Message: "m"}
	err := svc.SubmitContact(context.Background(), msg)
	if err == nil {
		t.Fatal("expected error when storage fails")
	}
	if n := rec.last(); n.Variant != notify.VariantDestructive {
		t.Fatalf("expected destructive notification, got %+v", n)
	}
}

func TestService_ListContacts_AdminOnly(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	if err := svc.SubmitContact(ctx, &domain.ContactMessage{Name: "a", Email: "a@example.com", Subject: "s", Message: "m"}); err != nil {
		t.Fatalf("SubmitContact: %v", err)
	}

	if _, err := svc.ListContacts(ctx, nil); !errors.Is(err, domain.ErrNotLoggedIn) {
		t.Fatalf("expected ErrNotLoggedIn, got %v", err)
	}

	reader := &domain.User{ID: "2", Role: domain.RoleReader}
	if _, err := svc.ListContacts(ctx, reader); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	admin := &domain.User{ID: "1", Role: domain.RoleAdmin}
	msgs, err := svc.ListContacts(ctx, admin)
	if err != nil {
		t.Fatalf("ListContacts as admin: %v", err)
	}
	if len(msgs) != 1 {
		t.Fatalf("expected 1 message, got %d", len(msgs))
	}
}
