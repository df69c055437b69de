package ai

import (
	"strings"
	"testing"
)

func TestChunkSplitsAtWordBoundaries(t *testing.T) {
	got := Chunk("a b c d e", 3)
	want := []string{"a b", "c d", "e"}

	if len(got) != len(want) {
		t.Fatalf("expected %d chunks, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("chunk %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestChunkPreservesAllWords(t *testing.T) {
	text := strings.Repeat("lorem ipsum dolor sit amet consectetur ", 50)
	chunks := Chunk(text, 100)

	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}

	var rejoined []string
	for _, c := range chunks {
		rejoined = append(rejoined, strings.Fields(c)...)
	}
	original := strings.Fields(text)

	if len(rejoined) != len(original) {
		t.Fatalf("word count changed: %d != %d", len(rejoined), len(original))
	}
	for i := range original {
		if rejoined[i] != original[i] {
			t.Fatalf("word %d changed: %q != %q", i, rejoined[i], original[i])
		}
	}
}

func TestChunkNeverSplitsAWord(t *testing.T) {
	chunks := Chunk("short supercalifragilisticexpialidocious short", 10)
	for _, c := range chunks {
		for _, w := range strings.Fields(c) {
			if strings.Contains(w, " ") {
				t.Errorf("word split across chunks: %q", w)
			}
		}
	}

	// A single word longer than the limit must still appear whole.
	found := false
	for _, c := range chunks {
		if strings.Contains(c, "supercalifragilisticexpialidocious") {
			found = true
		}
	}
	if !found {
		t.Error("oversized word missing from output")
	}
}

func TestChunkEmptyInput(t *testing.T) {
	if got := Chunk("", 100); len(got) != 0 {
		t.Errorf("expected no chunks for empty input, got %v", got)
	}
	if got := Chunk("   \n\t  ", 100); len(got) != 0 {
		t.Errorf("expected no chunks for whitespace input, got %v", got)
	}
}
