package scramble

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// FakeWords produces count plausible decoys for real by dropping a letter
// from long words, inserting a vowel into short ones and shuffling. A decoy
// that collides with the answer or an earlier decoy is replaced with random
// letters of the same length.
func (s *Scrambler) FakeWords(real string, count int) []string {
	fakes := make([]string, 0, count)
	taken := map[string]bool{real: true}

	for len(fakes) < count {
		letters := []rune(real)
		if len(letters) > 4 {
			i := s.rng.Intn(len(letters))
			letters = append(letters[:i], letters[i+1:]...)
		}
		if len(letters) < 8 {
			i := s.rng.Intn(len(letters) + 1)
			v := rune("AEIOU"[s.rng.Intn(5)])
			letters = append(letters[:i], append([]rune{v}, letters[i:]...)...)
		}
		s.shuffle(letters)

		fake := string(letters)
		for taken[fake] {
			fake = s.randomLetters(len([]rune(real)))
		}
		taken[fake] = true
		fakes = append(fakes, fake)
	}

	return fakes
}

func (s *Scrambler) randomLetters(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[s.rng.Intn(len(alphabet))]
	}
	return string(b)
}
