package main

import (
	"sort"
)

// Entry is one letter and how many times it occurred.
type Entry struct {
	Letter rune
	Count  int
}

// Tally maps a letter to its occurrence count. A letter is only present
// once it has been added, so every stored count is at least 1.
type Tally struct {
	counts map[rune]int
	total  int
}

func NewTally() *Tally {
	return &Tally{counts: make(map[rune]int)}
}

func (t *Tally) Add(r rune) {
	t.counts[r]++
	t.total++
}

func (t *Tally) Count(r rune) int {
	return t.counts[r]
}

// Len 返回不同字母的个数
func (t *Tally) Len() int {
	return len(t.counts)
}

func (t *Tally) Total() int {
	return t.total
}

// Entries returns the letters in ascending code-point order.
func (t *Tally) Entries() []Entry {
	letters := make([]rune, 0, len(t.counts))
	for r := range t.counts {
		letters = append(letters, r)
	}
	sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })

	entries := make([]Entry, 0, len(letters))
	for _, r := range letters {
		entries = append(entries, Entry{Letter: r, Count: t.counts[r]})
	}
	return entries
}
