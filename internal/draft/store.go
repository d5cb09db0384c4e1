// Package draft owns the in-memory resume document for one editing
// session. The store is the single source of truth read by the editor
// and by the render projections; no consumer keeps a second copy.
package draft

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-builder/internal/types"
)

// Listener observes every document change. Listeners run synchronously
// on the mutating goroutine so the live preview never lags a patch.
type Listener func(*types.Document)

// Store holds exactly one current document. It is created when a user
// starts or resumes a resume and torn down on navigating away. It is
// an explicit session object, not ambient package state.
type Store struct {
	mu        sync.RWMutex
	doc       *types.Document
	listeners []Listener
	closed    bool
}

// NewStore creates a store around a document. A nil doc starts a fresh
// unsaved draft.
func NewStore(doc *types.Document) *Store {
	if doc == nil {
		doc = types.NewDocument()
	}
	return &Store{doc: doc}
}

// Subscribe registers a listener for document changes. The listener is
// invoked immediately with the current state so a new consumer starts
// in agreement with the store.
func (s *Store) Subscribe(fn Listener) {
	s.mu.Lock()
	s.listeners = append(s.listeners, fn)
	snapshot := s.doc.Clone()
	s.mu.Unlock()
	fn(snapshot)
}

// Document returns a deep copy of the current document.
func (s *Store) Document() *types.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc.Clone()
}

// ID returns the document identity, uuid.Nil for an unsaved draft.
func (s *Store) ID() uuid.UUID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc.ID
}

// Apply merges a section patch into the document and notifies
// listeners. Patches are never rejected here beyond structural index
// checks; schema validation happens at submission time.
func (s *Store) Apply(index int, p types.Patch) error {
	s.mu.Lock()
	if err := s.doc.PatchSection(index, p); err != nil {
		s.mu.Unlock()
		return err
	}
	s.notifyLocked()
	return nil
}

// Remove drops one instance from a repeatable section, keeping the
// editing floor of one addressable instance.
func (s *Store) Remove(section types.SectionType, index int) error {
	s.mu.Lock()
	if err := s.doc.RemoveInstance(section, index); err != nil {
		s.mu.Unlock()
		return err
	}
	s.notifyLocked()
	return nil
}

// Replace installs a whole document, e.g. after a full fetch of an
// existing resume.
func (s *Store) Replace(doc *types.Document) {
	s.mu.Lock()
	s.doc = doc.Clone()
	s.notifyLocked()
}

// ReplaceSection installs the server's canonical data for one section,
// leaving every other slot untouched. Canonical data is placeholder
// free, so the editing placeholders are re-seeded afterwards.
func (s *Store) ReplaceSection(section types.SectionType, canonical *types.Document) {
	s.mu.Lock()
	s.doc.CopySectionFrom(canonical, section)
	s.doc.EnsureEditable()
	s.notifyLocked()
}

// ApplyCanonical installs a save response as one atomic update:
// optional identity assignment (first save) plus the canonical section
// data. Responses are tagged with the document identity they were
// issued for; if the session has since moved to a different document
// the response is stale and nothing is applied.
func (s *Store) ApplyCanonical(issuedFor, id uuid.UUID, createdAt *time.Time, payload *types.SectionPayload) bool {
	s.mu.Lock()
	if s.doc.ID != issuedFor {
		s.mu.Unlock()
		return false
	}
	if id != uuid.Nil {
		s.doc.ID = id
	}
	if createdAt != nil {
		t := *createdAt
		s.doc.CreatedAt = &t
	}
	if payload != nil {
		payload.ApplyTo(s.doc)
		// The canonical list carries only filled instances; keep the
		// section addressable for continued editing.
		s.doc.EnsureEditable()
	}
	s.notifyLocked()
	return true
}

// ReplaceFor installs a whole fetched document, discarding the
// response when the session no longer matches the identity the fetch
// was issued for.
func (s *Store) ReplaceFor(issuedFor uuid.UUID, doc *types.Document) bool {
	s.mu.Lock()
	if s.doc.ID != issuedFor {
		s.mu.Unlock()
		return false
	}
	s.doc = doc.Clone()
	s.notifyLocked()
	return true
}

// Close tears the session down. Further notifications stop; the
// document remains readable for debugging.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.listeners = nil
}

// notifyLocked snapshots the document, releases the lock and invokes
// listeners in subscription order.
func (s *Store) notifyLocked() {
	if s.closed {
		s.mu.Unlock()
		return
	}
	snapshot := s.doc.Clone()
	listeners := make([]Listener, len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(snapshot)
	}
}
