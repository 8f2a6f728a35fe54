package judge

// extractObject returns the first balanced {...} substring of text, scanning
// left to right and tracking brace nesting depth; the span ends where depth
// first returns to zero. Implemented as an explicit character loop rather
// than leaning on a JSON decoder's tolerance for trailing garbage.
func extractObject(text string) (string, bool) {
	start := -1
	depth := 0
	for i, ch := range text {
		switch ch {
		case '{':
			if depth == 0 {
				start = i
			}
			depth++
		case '}':
			if depth == 0 {
				continue
			}
			depth--
			if depth == 0 {
				return text[start : i+1], true
			}
		}
	}
	return "", false
}
