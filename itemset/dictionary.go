package itemset

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MalformedItem is returned for item tokens which can not be encoded: empty
// tokens, tokens containing white space, repeated tokens in the universe and
// tokens which are not part of the universe.
type MalformedItem struct {
	Token  string
	Reason string
}

func (m *MalformedItem) Error() string {
	return fmt.Sprintf("malformed item %q: %v", m.Token, m.Reason)
}

// Dictionary encodes item tokens as int32 ids. Ids are handed out in the
// code point order of the tokens so that sorting ids sorts tokens.
type Dictionary struct {
	tokens   []string
	ids      map[string]int32
	universe []int32
	runes    bool
}

func NewDictionary(tokens []string) (*Dictionary, error) {
	ids := make(map[string]int32, len(tokens))
	runes := true
	for _, tok := range tokens {
		if err := validToken(tok); err != nil {
			return nil, err
		}
		if _, has := ids[tok]; has {
			return nil, &MalformedItem{tok, "listed more than once"}
		}
		ids[tok] = -1
		if utf8.RuneCountInString(tok) != 1 {
			runes = false
		}
	}
	sorted := make([]string, len(tokens))
	copy(sorted, tokens)
	sort.Strings(sorted)
	for i, tok := range sorted {
		ids[tok] = int32(i)
	}
	universe := make([]int32, 0, len(tokens))
	for _, tok := range tokens {
		universe = append(universe, ids[tok])
	}
	d := &Dictionary{
		tokens:   sorted,
		ids:      ids,
		universe: universe,
		runes:    runes,
	}
	return d, nil
}

func validToken(tok string) error {
	if tok == "" {
		return &MalformedItem{tok, "empty"}
	}
	if strings.IndexFunc(tok, unicode.IsSpace) >= 0 {
		return &MalformedItem{tok, "contains white space"}
	}
	return nil
}

func (d *Dictionary) Len() int {
	return len(d.tokens)
}

// Universe is the ids of the items in the order they were given.
func (d *Dictionary) Universe() []int32 {
	return d.universe
}

func (d *Dictionary) Id(tok string) (int32, bool) {
	id, has := d.ids[tok]
	return id, has
}

func (d *Dictionary) Token(id int32) string {
	return d.tokens[id]
}

// SingleRune is true when every token is one rune long. Keys are then the
// plain concatenation of the tokens, otherwise tokens are separated by a
// space.
func (d *Dictionary) SingleRune() bool {
	return d.runes
}

func (d *Dictionary) Key(s ItemSet) string {
	sep := " "
	if d.SingleRune() {
		sep = ""
	}
	var b strings.Builder
	for i, id := range s {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(d.Token(id))
	}
	return b.String()
}

func (d *Dictionary) split(str string) []string {
	if !d.SingleRune() {
		return strings.Fields(str)
	}
	toks := make([]string, 0, len(str))
	for _, r := range str {
		if unicode.IsSpace(r) {
			continue
		}
		toks = append(toks, string(r))
	}
	return toks
}

// Parse decodes a key. Every token must be part of the universe.
func (d *Dictionary) Parse(key string) (ItemSet, error) {
	toks := d.split(key)
	s := make(ItemSet, 0, len(toks))
	for _, tok := range toks {
		id, has := d.Id(tok)
		if !has {
			return nil, &MalformedItem{tok, "not in the item universe"}
		}
		s = append(s, id)
	}
	if len(s) == 0 {
		return nil, &MalformedItem{key, "empty item set"}
	}
	return s.canonicalize(), nil
}

// Transaction decodes an encoded transaction as strictly as Parse, except
// that a transaction may be empty. In multi rune mode a concatenated
// transaction ("AB" for the items "A", "B", "CD") is a single unknown token
// and is rejected.
func (d *Dictionary) Transaction(str string) (ItemSet, error) {
	if strings.TrimFunc(str, unicode.IsSpace) == "" {
		return New(), nil
	}
	return d.Parse(str)
}

// TransactionTokens encodes an already tokenized transaction. Tokens outside
// of the universe are dropped: they can not change the support of any
// universe item set.
func (d *Dictionary) TransactionTokens(toks []string) ItemSet {
	s := make(ItemSet, 0, len(toks))
	for _, tok := range toks {
		if id, has := d.Id(tok); has {
			s = append(s, id)
		}
	}
	return s.canonicalize()
}
