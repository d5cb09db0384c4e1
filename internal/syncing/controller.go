// Package syncing reconciles the draft store with the remote
// persistence service: fetch on load, save on step advance, canonical
// responses back into the store, stale responses discarded.
package syncing

import (
	"context"
	"log"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/jonathan/resume-builder/internal/draft"
	"github.com/jonathan/resume-builder/internal/remote"
	"github.com/jonathan/resume-builder/internal/sections"
	"github.com/jonathan/resume-builder/internal/types"
)

// Controller drives persistence for one editing session. A save
// validates locally first, only then touches the network, and applies
// the server's canonical response rather than the sent payload. On any
// failure the draft store is left unchanged.
type Controller struct {
	store   *draft.Store
	service remote.Service
	saves   singleflight.Group // keyed by section, one in-flight save each
}

// NewController wires a draft store to a persistence service.
func NewController(store *draft.Store, service remote.Service) *Controller {
	return &Controller{store: store, service: service}
}

// SaveSection persists one section. Empty instances are dropped from
// the payload; a filled-but-invalid instance aborts before any network
// call. The first successful save of an unsaved draft creates the
// remote record and assigns its identity atomically with the canonical
// section data. A concurrent save of the same section waits for the
// in-flight one and shares its outcome.
func (c *Controller) SaveSection(ctx context.Context, section types.SectionType) error {
	if !section.Valid() {
		return &types.UnknownSectionError{Section: section}
	}
	_, err, _ := c.saves.Do(string(section), func() (any, error) {
		return nil, c.saveSection(ctx, section)
	})
	return err
}

func (c *Controller) saveSection(ctx context.Context, section types.SectionType) error {
	doc := c.store.Document()
	issuedFor := doc.ID

	if serr := sections.CheckSection(doc, section); serr != nil {
		return &ValidationFailedError{Section: section, Err: serr}
	}

	payload := buildPayload(doc, section)

	if !doc.Saved() {
		created, err := c.service.CreateResume(ctx, payload)
		if err != nil {
			return &SaveError{Section: section, Cause: err}
		}
		canonical := created.Canonical
		if !c.store.ApplyCanonical(issuedFor, created.ID, &created.CreatedAt, &canonical) {
			log.Printf("[sync] discarding stale create response for section %s", section)
			return &StaleResponseError{IssuedFor: issuedFor}
		}
		log.Printf("[sync] created resume %s via section %s", created.ID, section)
		return nil
	}

	canonical, err := c.service.UpdateSection(ctx, doc.ID, payload)
	if err != nil {
		return &SaveError{Section: section, Cause: err}
	}
	if !c.store.ApplyCanonical(issuedFor, uuid.Nil, nil, canonical) {
		log.Printf("[sync] discarding stale save response for section %s", section)
		return &StaleResponseError{IssuedFor: issuedFor}
	}
	return nil
}

// Load fetches an existing document and populates every section of the
// draft store at once. Sections absent from the payload come back as
// their empty defaults. A response for a document the session has
// since abandoned is discarded.
func (c *Controller) Load(ctx context.Context, id uuid.UUID) error {
	issuedFor := c.store.ID()

	doc, err := c.service.GetResume(ctx, id)
	if err != nil {
		return &LoadError{ID: id, Cause: err}
	}
	doc.EnsureEditable()

	if !c.store.ReplaceFor(issuedFor, doc) {
		log.Printf("[sync] discarding stale load response for resume %s", id)
		return &StaleResponseError{IssuedFor: issuedFor}
	}
	return nil
}

// buildPayload projects the section's persistable form: filled
// instances only, tag lists cleaned, empty slots sent as empty.
func buildPayload(doc *types.Document, section types.SectionType) types.SectionPayload {
	p := types.SectionPayload{Section: section}
	switch section {
	case types.SectionPersonalInfo:
		if sections.ClassifyPersonalInfo(doc.PersonalInfo) == sections.Filled {
			info := doc.PersonalInfo
			p.PersonalInfo = &info
		}
	case types.SectionAboutMe:
		if sections.ClassifyAboutMe(doc.AboutMe) == sections.Filled {
			about := doc.AboutMe
			p.AboutMe = &about
		}
	case types.SectionEducation:
		p.Education = sections.FilledEducation(doc.Education)
	case types.SectionExperience:
		p.Experience = sections.FilledExperience(doc.Experience)
	case types.SectionSkills:
		p.Skills = sections.CleanTags(doc.Skills)
	case types.SectionProjects:
		p.Projects = sections.FilledProjects(doc.Projects)
	case types.SectionCertifications:
		p.Certifications = sections.FilledCertifications(doc.Certifications)
	case types.SectionInterests:
		p.Interests = sections.CleanTags(doc.Interests)
	case types.SectionLanguages:
		p.Languages = sections.FilledLanguages(doc.Languages)
	}
	return p
}
