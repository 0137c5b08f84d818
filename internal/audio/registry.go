package audio

import (
	"errors"
	"sync"
)

// ErrNotFound is returned when no clip is registered under a label.
var ErrNotFound = errors.New("audio: clip not found")

// Clip is one registered audio prompt. The label is the human-chosen lookup
// key; Filename is the original upload name, kept because later display
// orderings sort by it. The blob itself lives in the disk store, keyed by
// StoredName.
type Clip struct {
	Label      string `json:"label"`
	Filename   string `json:"filename"`
	StoredName string `json:"-"`
	Size       int64  `json:"size"`
}

// Registry maps labels to clips for one session. Registering an existing
// label overwrites the entry but keeps its original display position under
// insertion ordering. Decoding and playback are wholly the host's media
// layer; the registry only hands back blob references.
type Registry struct {
	mu       sync.Mutex
	byLabel  map[string]Clip
	seq      []string
	ordering Ordering
}

func NewRegistry(ordering Ordering) *Registry {
	return &Registry{
		byLabel:  make(map[string]Clip),
		ordering: ordering,
	}
}

// Register stores clip under its label, overwriting any existing entry.
func (r *Registry) Register(clip Clip) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byLabel[clip.Label]; !exists {
		r.seq = append(r.seq, clip.Label)
	}
	r.byLabel[clip.Label] = clip
}

// Get looks a clip up by label.
func (r *Registry) Get(label string) (Clip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	clip, ok := r.byLabel[label]
	if !ok {
		return Clip{}, ErrNotFound
	}
	return clip, nil
}

// List returns every clip in the registry's display order.
func (r *Registry) List() []Clip {
	r.mu.Lock()
	out := make([]Clip, 0, len(r.seq))
	for _, label := range r.seq {
		out = append(out, r.byLabel[label])
	}
	r.mu.Unlock()

	sortClips(out, r.ordering)
	return out
}

// Len reports the number of registered clips.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.byLabel)
}
