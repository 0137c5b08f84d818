package audio

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

func clip(label, filename string) Clip {
	return Clip{Label: label, Filename: filename, StoredName: filename}
}

func TestRegistry_InsertionOrder(t *testing.T) {
	r := NewRegistry(OrderInsertion)
	r.Register(clip("Close", "close.mp3"))
	r.Register(clip("Pitch", "pitch.mp3"))
	r.Register(clip("Follow up", "follow.mp3"))

	got := r.List()
	want := []string{"Close", "Pitch", "Follow up"}
	for i, label := range want {
		if got[i].Label != label {
			t.Fatalf("position %d: expected %q, got %q", i, label, got[i].Label)
		}
	}
}

func TestRegistry_OverwriteKeepsPosition(t *testing.T) {
	r := NewRegistry(OrderInsertion)
	r.Register(Clip{Label: "Pitch", Filename: "v1.mp3", Size: 10})
	r.Register(clip("Close", "close.mp3"))
	r.Register(Clip{Label: "Pitch", Filename: "v2.mp3", Size: 20})

	if r.Len() != 2 {
		t.Fatalf("overwrite must not grow the registry, got %d", r.Len())
	}
	got := r.List()
	if got[0].Label != "Pitch" || got[0].Filename != "v2.mp3" {
		t.Fatalf("expected replaced clip in original position, got %+v", got[0])
	}
}

func TestRegistry_NumericOrdering(t *testing.T) {
	r := NewRegistry(OrderNumeric)
	r.Register(clip("c", "10_close.mp3"))
	r.Register(clip("a", "2_pitch.mp3"))
	r.Register(clip("z", "objections.mp3")) // no numeric prefix
	r.Register(clip("b", "1_intro.mp3"))
	r.Register(clip("y", "followup.mp3")) // no numeric prefix

	var names []string
	for _, c := range r.List() {
		names = append(names, c.Filename)
	}
	want := []string{"1_intro.mp3", "2_pitch.mp3", "10_close.mp3", "followup.mp3", "objections.mp3"}
	for i, n := range want {
		if names[i] != n {
			t.Fatalf("position %d: expected %q, got %q (all: %v)", i, n, names[i], names)
		}
	}
}

func TestRegistry_GetMissing(t *testing.T) {
	r := NewRegistry(OrderInsertion)
	if _, err := r.Get("nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDiskStore_SaveAndOpen(t *testing.T) {
	store, err := OpenDiskStore(t.TempDir())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}

	payload := []byte("not really mp3 bytes")
	name, size, err := store.Save("pitch.mp3", bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if size != int64(len(payload)) {
		t.Fatalf("expected size %d, got %d", len(payload), size)
	}

	rc, err := store.Open(name)
	if err != nil {
		t.Fatalf("open clip: %v", err)
	}
	defer rc.Close()
	got, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("read clip: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatalf("clip bytes changed on disk")
	}
}

func TestDiskStore_OpenMissing(t *testing.T) {
	store, err := OpenDiskStore(t.TempDir())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if _, err := store.Open("ghost.mp3"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDiskStore_RejectsPathTraversal(t *testing.T) {
	store, err := OpenDiskStore(t.TempDir())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if _, err := store.Open("../escape.mp3"); err == nil || errors.Is(err, ErrNotFound) {
		t.Fatalf("expected invalid-name error, got %v", err)
	}
}
