package bank

import "sort"

// ChapterCount pairs a chapter name with its number of questions.
type ChapterCount struct {
	Name  string
	Count int
}

// Bank is an immutable, validated collection of questions.
type Bank struct {
	questions   []Question
	counts      map[string]int
	diagnostics []*MalformedRecordError
}

// newBank builds a Bank and derives its chapter counts.
func newBank(questions []Question, diags []*MalformedRecordError) *Bank {
	counts := make(map[string]int)
	for _, q := range questions {
		counts[q.Chapter]++
	}
	return &Bank{
		questions:   questions,
		counts:      counts,
		diagnostics: diags,
	}
}

// Len returns the number of questions in the bank.
func (b *Bank) Len() int {
	return len(b.questions)
}

// Questions returns a copy of all questions in source order.
func (b *Bank) Questions() []Question {
	out := make([]Question, len(b.questions))
	copy(out, b.questions)
	return out
}

// InChapter returns a copy of the questions whose chapter equals name.
func (b *Bank) InChapter(name string) []Question {
	var out []Question
	for _, q := range b.questions {
		if q.Chapter == name {
			out = append(out, q)
		}
	}
	return out
}

// HasChapter reports whether any question belongs to the named chapter.
func (b *Bank) HasChapter(name string) bool {
	_, ok := b.counts[name]
	return ok
}

// Count returns the number of questions in a chapter.
func (b *Bank) Count(chapter string) int {
	return b.counts[chapter]
}

// Chapters returns the distinct chapter names, sorted.
func (b *Bank) Chapters() []string {
	names := make([]string, 0, len(b.counts))
	for name := range b.counts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Diagnostics returns the records skipped while building the bank.
func (b *Bank) Diagnostics() []*MalformedRecordError {
	out := make([]*MalformedRecordError, len(b.diagnostics))
	copy(out, b.diagnostics)
	return out
}

// ListChapters returns every chapter with its question count, sorted by
// chapter name ascending.
func ListChapters(b *Bank) []ChapterCount {
	names := b.Chapters()
	out := make([]ChapterCount, 0, len(names))
	for _, name := range names {
		out = append(out, ChapterCount{Name: name, Count: b.counts[name]})
	}
	return out
}
