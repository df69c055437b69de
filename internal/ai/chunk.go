package ai

import "strings"

// Chunk splits text into word-aligned segments of at most maxChunkChars
// characters. Words are never split; a single word longer than the limit is
// returned whole. Empty or all-whitespace input yields no chunks.
func Chunk(text string, maxChunkChars int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var chunks []string
	var current []string
	size := 0

	for _, word := range words {
		if size+len(word) > maxChunkChars && len(current) > 0 {
			chunks = append(chunks, strings.Join(current, " "))
			current = []string{word}
			size = len(word)
		} else {
			current = append(current, word)
			size += len(word) + 1
		}
	}

	if len(current) > 0 {
		chunks = append(chunks, strings.Join(current, " "))
	}

	return chunks
}
