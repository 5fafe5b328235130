package notation

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	sanRegex    = regexp.MustCompile(`^([PNBRQK]?)([a-h]?)([1-8]?)(x?)([a-h][1-8])(?:=?([NBRQ]))?(?:[+#]|[!?]+|e\.p\.)*$`)
	castleRegex = regexp.MustCompile(`^(O-O-O|O-O|0-0-0|0-0)(?:[+#]|[!?]+)*$`)
	numberRegex = regexp.MustCompile(`^(\d+)(\.+)(.*)$`)
	nagRegex    = regexp.MustCompile(`^\$\d+$`)
	glyphRegex  = regexp.MustCompile(`^[!?+#]+$`)
)

var results = map[string]bool{
	"1-0":     true,
	"0-1":     true,
	"1/2-1/2": true,
	"*":       true,
}

var errUnknownMove = errors.New("not a move in algebraic notation")

// ParseError reports malformed move text. Offset is a byte offset into the
// input.
type ParseError struct {
	Offset int
	Token  string
	Reason string
}

func (e *ParseError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("notation: %s at offset %d", e.Reason, e.Offset)
	}
	return fmt.Sprintf("notation: %s at offset %d (%q)", e.Reason, e.Offset, e.Token)
}

type token struct {
	text   string
	offset int
}

// ParseSequence turns movetext such as "1. e4 d5 2. exd5" into structured
// moves. Moves alternate colors starting with white; "N." marks a white move
// and "N..." a black one. Comments, variations and NAGs are skipped.
func ParseSequence(text string) (Sequence, error) {
	return ParseSequenceFrom(text, true)
}

// ParseSequenceFrom is ParseSequence for text that continues a game. Until a
// move number says otherwise, the first move belongs to the side given by
// white.
func ParseSequenceFrom(text string, white bool) (Sequence, error) {
	tokens, err := tokenize(text)
	if err != nil {
		return Sequence{}, err
	}

	var seq Sequence
	number := 0
	for _, tok := range tokens {
		word := tok.text
		offset := tok.offset

		if seq.Result != "" {
			return Sequence{}, &ParseError{Offset: offset, Token: word, Reason: "move text after game result"}
		}
		if results[word] {
			seq.Result = word
			continue
		}
		if nagRegex.MatchString(word) || glyphRegex.MatchString(word) {
			continue
		}

		if m := numberRegex.FindStringSubmatch(word); m != nil {
			n, err := strconv.Atoi(m[1])
			if err != nil || n == 0 {
				return Sequence{}, &ParseError{Offset: offset, Token: word, Reason: "invalid move number"}
			}
			number = n
			white = len(m[2]) == 1
			word = m[3]
			offset += len(m[1]) + len(m[2])
			if word == "" {
				continue
			}
		}

		move, err := parseMove(word)
		if err != nil {
			return Sequence{}, &ParseError{Offset: offset, Token: word, Reason: err.Error()}
		}
		move.Number = number
		move.White = white
		seq.Moves = append(seq.Moves, move)

		if !white && number > 0 {
			number++
		}
		white = !white
	}
	return seq, nil
}

// ParseMove reads a single SAN move. The returned move has no number and is
// attributed to white.
func ParseMove(text string) (Move, error) {
	move, err := parseMove(strings.TrimSpace(text))
	if err != nil {
		return Move{}, &ParseError{Token: text, Reason: err.Error()}
	}
	move.White = true
	return move, nil
}

func parseMove(word string) (Move, error) {
	if m := castleRegex.FindStringSubmatch(word); m != nil {
		kind := CastleKingside
		if m[1] == "O-O-O" || m[1] == "0-0-0" {
			kind = CastleQueenside
		}
		return Move{Kind: kind, To: NoSquare, From: UnknownOrigin, Text: word}, nil
	}

	m := sanRegex.FindStringSubmatch(word)
	if m == nil {
		return Move{}, errUnknownMove
	}
	to, err := ParseSquare(m[5])
	if err != nil {
		return Move{}, err
	}
	from := UnknownOrigin
	if m[2] != "" {
		from.File = File(m[2][0] - 'a')
	}
	if m[3] != "" {
		from.Rank = Rank(m[3][0] - '1')
	}
	promotion := NoPiece
	if m[6] != "" {
		promotion = pieceFromLetter(m[6])
	}
	return Move{
		Kind:      BasicMove,
		Piece:     pieceFromLetter(m[1]),
		To:        to,
		From:      from,
		Capture:   m[4] == "x",
		Promotion: promotion,
		Text:      word,
	}, nil
}

func tokenize(text string) ([]token, error) {
	var tokens []token
	depth := 0
	i := 0
	for i < len(text) {
		c := text[i]
		switch {
		case c == '{':
			end := strings.IndexByte(text[i:], '}')
			if end < 0 {
				return nil, &ParseError{Offset: i, Reason: "unterminated comment"}
			}
			i += end + 1
		case c == '}':
			return nil, &ParseError{Offset: i, Token: "}", Reason: "unbalanced comment"}
		case c == ';':
			end := strings.IndexByte(text[i:], '\n')
			if end < 0 {
				i = len(text)
			} else {
				i += end + 1
			}
		case c == '(':
			depth++
			i++
		case c == ')':
			if depth == 0 {
				return nil, &ParseError{Offset: i, Token: ")", Reason: "unbalanced variation"}
			}
			depth--
			i++
		case isSpace(c):
			i++
		default:
			start := i
			for i < len(text) && !isSpace(text[i]) && !isDelimiter(text[i]) {
				i++
			}
			if depth == 0 {
				tokens = append(tokens, token{text: text[start:i], offset: start})
			}
		}
	}
	if depth > 0 {
		return nil, &ParseError{Offset: len(text), Reason: "unterminated variation"}
	}
	return tokens, nil
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isDelimiter(c byte) bool {
	return c == '{' || c == '}' || c == '(' || c == ')' || c == ';'
}
