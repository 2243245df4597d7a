package shell

// Tokenize splits a raw input line into shell-like tokens. It never
// fails: unterminated quotes and a trailing backslash are accepted
// silently, and the empty line yields no tokens.
//
// The scan is a three-state automaton (unquoted, quoted, closed) with
// an escape flag layered on top:
//
//	state    | input | action
//	---------+-------+-------------------------------------------
//	escaped  | any c | append c literally, clear escape
//	any      | \     | set escape, emit nothing
//	quoted   | "     | push current token (even empty), enter closed
//	unquoted | "     | enter quoted, emit nothing
//	closed   | space | already delimited by the closing quote; skip
//	unquoted | space | push current token (even empty)
//	any      | other | append c, leave closed
//
// Pushing on every bare delimiter means consecutive spaces produce
// empty tokens between them. A closing quote is itself the token
// boundary, so the space that follows one adds nothing; this is what
// lets a line built by joining tokens with single spaces (quoting the
// spaced ones) tokenize back to the original sequence. The final
// accumulation is dropped when empty, so terminal whitespace adds no
// trailing token.
func Tokenize(line string) []string {
	tokens := []string{}
	next := make([]rune, 0, len(line))
	quoted := false
	closed := false
	escaped := false

	for _, c := range line {
		switch {
		case escaped:
			escaped = false
			closed = false
			next = append(next, c)
		case c == '\\':
			escaped = true
		case quoted && c == '"':
			quoted = false
			closed = true
			tokens = append(tokens, string(next))
			next = next[:0]
		case c == '"':
			quoted = true
			closed = false
		case !quoted && c == ' ':
			if closed {
				closed = false
			} else {
				tokens = append(tokens, string(next))
				next = next[:0]
			}
		default:
			closed = false
			next = append(next, c)
		}
	}

	if len(next) > 0 {
		tokens = append(tokens, string(next))
	}

	return tokens
}
