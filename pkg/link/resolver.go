package link

import (
	"fmt"
	"strings"
	"sync"

	"golang.org/x/text/cases"

	"github.com/grovetools/notelink/pkg/models"
)

// Prompter asks the user to choose one candidate from a list. A nil NoteFile
// with a nil error means the user cancelled.
type Prompter interface {
	Pick(title string, candidates []models.NoteFile) (*models.NoteFile, error)
}

// Resolver maps a short reference back to the file it designates when the
// host's own lookup found nothing. Absence of a match is a normal outcome,
// returned as nil; Resolve never fails.
//
// At most one disambiguation prompt is live at a time. A Resolve call that
// arrives while a prompt is open returns nil immediately rather than opening
// a second prompt or reusing another request's pick.
type Resolver struct {
	settings func() models.LinkSettings
	prompter Prompter

	mu        sync.Mutex
	prompting bool
}

// NewResolver creates a resolver. The settings function is called per
// resolution so updates through the settings store take effect immediately.
func NewResolver(settings func() models.LinkSettings, prompter Prompter) *Resolver {
	return &Resolver{
		settings: settings,
		prompter: prompter,
	}
}

// Resolve returns the file a reference designates, or nil for no resolution.
//
// An exact host-native match is never shadowed: when defaultResolution is
// non-nil it is returned unchanged. With partial matching disabled there is
// no fallback. Otherwise candidates whose basename (or alias) contains the
// reference, case-insensitively, are considered: one match wins outright,
// several suspend on a user prompt, and the pick or its cancellation becomes
// the result.
func (r *Resolver) Resolve(reference string, candidates []models.NoteFile, defaultResolution *models.NoteFile) *models.NoteFile {
	if defaultResolution != nil {
		return defaultResolution
	}

	s := r.settings()
	if !s.EnablePartialMatching {
		return nil
	}

	matches := partialMatches(reference, candidates)
	switch len(matches) {
	case 0:
		return nil
	case 1:
		m := matches[0]
		return &m
	}

	// Single-flight guard over the user's attention: the prompt is the one
	// logical resource, so overlapping requests are turned away.
	r.mu.Lock()
	if r.prompting {
		r.mu.Unlock()
		return nil
	}
	r.prompting = true
	r.mu.Unlock()
	defer func() {
		r.mu.Lock()
		r.prompting = false
		r.mu.Unlock()
	}()

	title := fmt.Sprintf("%d notes match %q", len(matches), reference)
	pick, err := r.prompter.Pick(title, matches)
	if err != nil || pick == nil {
		return nil
	}
	return pick
}

// partialMatches filters candidates whose basename or aliases contain the
// reference as a case-insensitive substring.
func partialMatches(reference string, candidates []models.NoteFile) []models.NoteFile {
	fold := cases.Fold()
	ref := fold.String(reference)

	var out []models.NoteFile
	for _, c := range candidates {
		if strings.Contains(fold.String(c.Basename), ref) {
			out = append(out, c)
			continue
		}
		for _, alias := range c.Aliases {
			if strings.Contains(fold.String(alias), ref) {
				out = append(out, c)
				break
			}
		}
	}
	return out
}
