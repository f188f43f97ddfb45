package game

// Score marks every position of guess against target with the two-pass
// Wordle algorithm.
//
// Pass 1 marks exact matches Correct and tallies the unmatched target letters.
// Pass 2 marks each remaining guess letter Present while the tally for that
// letter is positive (decrementing it), Absent otherwise. Correct positions
// therefore take priority, and a letter never gets more non-Absent marks than
// it has occurrences in target.
//
// Both words are compared rune by rune and are expected to be normalized and
// of equal length; guess positions past the end of target are Absent.
func Score(guess, target string) []Mark {
	g := []rune(guess)
	t := []rune(target)
	res := make([]Mark, len(g))

	remaining := make(map[rune]int, len(t))
	for i := range g {
		if i < len(t) && g[i] == t[i] {
			res[i] = MarkCorrect
		} else if i < len(t) {
			remaining[t[i]]++
		}
	}
	for i := len(g); i < len(t); i++ {
		remaining[t[i]]++
	}

	for i, r := range g {
		if res[i] == MarkCorrect {
			continue
		}
		if remaining[r] > 0 {
			res[i] = MarkPresent
			remaining[r]--
		} else {
			res[i] = MarkAbsent
		}
	}
	return res
}

// allCorrect reports whether every mark is MarkCorrect.
func allCorrect(m []Mark) bool {
	for _, x := range m {
		if x != MarkCorrect {
			return false
		}
	}
	return len(m) > 0
}
