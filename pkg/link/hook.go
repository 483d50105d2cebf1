package link

import "github.com/grovetools/notelink/pkg/models"

// ResolveFunc maps a reference typed inside double brackets to the note it
// designates, or nil when nothing matches. The host exposes its native
// resolution behavior through a slot of this type.
type ResolveFunc func(reference string) *models.NoteFile

// Hook wraps a host resolution slot with the resolver and can restore the
// original function on teardown. The host's own result is offered to the
// resolver as the default resolution, so exact matches pass through
// untouched.
type Hook struct {
	slot      *ResolveFunc
	original  ResolveFunc
	installed bool
}

// Install replaces the function at slot with the override and returns a hook
// whose Uninstall restores the original behavior.
func Install(slot *ResolveFunc, r *Resolver, candidates func() []models.NoteFile) *Hook {
	h := &Hook{
		slot:      slot,
		original:  *slot,
		installed: true,
	}

	*slot = func(reference string) *models.NoteFile {
		var def *models.NoteFile
		if h.original != nil {
			def = h.original(reference)
		}
		return r.Resolve(reference, candidates(), def)
	}
	return h
}

// Uninstall puts the original function back. Safe to call more than once.
func (h *Hook) Uninstall() {
	if !h.installed {
		return
	}
	*h.slot = h.original
	h.installed = false
}
