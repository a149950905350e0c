package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/alimgiray/showcase/internal/form"
	"github.com/alimgiray/showcase/internal/models"
	"github.com/alimgiray/showcase/pkg/logger"
	"github.com/sirupsen/logrus"
)

const repositoryFetchTimeout = 15 * time.Second

// RepositoryLister lists a GitHub user's repositories
type RepositoryLister interface {
	ListUserRepositories(ctx context.Context, username string) ([]models.Repository, error)
}

// DraftView is a draft snapshot plus page state that lives outside the form
type DraftView struct {
	form.Snapshot
	LoadingRepositories bool `json:"loadingRepositories"`
}

// DraftService keeps one form session per logged-in user
type DraftService struct {
	repos   RepositoryLister
	creator form.Creator

	mu     sync.Mutex
	drafts map[string]*draftEntry

	fetches sync.WaitGroup
}

type draftEntry struct {
	mu      sync.Mutex
	session *form.Session
	loading bool
	// generation changes with the identity so a late fetch for a previous
	// identity does not overwrite the current list.
	generation int
}

func NewDraftService(repos RepositoryLister, creator form.Creator) *DraftService {
	return &DraftService{
		repos:   repos,
		creator: creator,
		drafts:  make(map[string]*draftEntry),
	}
}

// entry returns the user's draft, creating it and applying identity changes
func (s *DraftService) entry(identity form.Identity) *draftEntry {
	s.mu.Lock()
	entry, ok := s.drafts[identity.ID]
	if !ok {
		entry = &draftEntry{session: form.NewSession(nil)}
		s.drafts[identity.ID] = entry
	}
	s.mu.Unlock()

	entry.mu.Lock()
	changed := entry.session.SetIdentity(&identity)
	if changed {
		entry.generation++
		entry.loading = s.repos != nil && identity.GithubUsername != ""
		if entry.loading {
			s.fetches.Add(1)
			go s.fetchRepositories(entry, entry.generation, identity.GithubUsername)
		}
	}
	entry.mu.Unlock()

	return entry
}

func (s *DraftService) fetchRepositories(entry *draftEntry, generation int, username string) {
	defer s.fetches.Done()

	ctx, cancel := context.WithTimeout(context.Background(), repositoryFetchTimeout)
	defer cancel()

	repos, err := s.repos.ListUserRepositories(ctx, username)

	entry.mu.Lock()
	defer entry.mu.Unlock()
	if entry.generation != generation {
		return
	}
	entry.loading = false
	if err != nil {
		logger.WithError(err).WithField("username", username).Warn("Error fetching repositories")
		return
	}
	entry.session.Draft.SetRepositories(repos)
}

func (e *draftEntry) view() DraftView {
	return DraftView{
		Snapshot:            e.session.Snapshot(),
		LoadingRepositories: e.loading,
	}
}

// Get returns the user's draft
func (s *DraftService) Get(identity form.Identity) DraftView {
	entry := s.entry(identity)
	entry.mu.Lock()
	defer entry.mu.Unlock()
	return entry.view()
}

// Update applies fn to the user's session under its lock
func (s *DraftService) Update(identity form.Identity, fn func(session *form.Session) error) (DraftView, error) {
	entry := s.entry(identity)
	entry.mu.Lock()
	defer entry.mu.Unlock()

	err := fn(entry.session)
	return entry.view(), err
}

// Edit applies fn to the user's draft under its lock
func (s *DraftService) Edit(identity form.Identity, fn func(draft *form.Draft) error) (DraftView, error) {
	return s.Update(identity, func(session *form.Session) error {
		return fn(session.Draft)
	})
}

// Submit sends the user's draft to the creation endpoint. The session is not
// locked while the request is in flight.
func (s *DraftService) Submit(ctx context.Context, identity form.Identity) (DraftView, error) {
	entry := s.entry(identity)

	entry.mu.Lock()
	request, err := entry.session.Begin()
	if err != nil {
		view := entry.view()
		entry.mu.Unlock()
		return view, err
	}
	entry.mu.Unlock()

	created, err := s.creator.CreateProject(ctx, request)
	if err != nil {
		fields := logrus.Fields{"user_id": identity.ID, "project": request.Name}
		var responseErr *form.ResponseError
		if errors.As(err, &responseErr) {
			fields["status"] = responseErr.StatusCode
		}
		logger.WithError(err).WithFields(fields).Warn("Error creating project")
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	entry.session.Finish(created, err)
	return entry.view(), nil
}

// Wait blocks until every repository fetch started so far has finished
func (s *DraftService) Wait() {
	s.fetches.Wait()
}
