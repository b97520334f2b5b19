package cmap

import (
	"strconv"

	tokenizer "github.com/benoitkugler/pstokenizer"
)

type tokenKind int8

const (
	tokEOF tokenKind = iota
	tokHex
	tokString
	tokName
	tokNumber
	tokKeyword
	tokArrayOpen
	tokArrayClose
	tokDictOpen
	tokDictClose
)

type token struct {
	kind  tokenKind
	text  string // name, keyword or number text
	bytes []byte // decoded hex or literal string
}

func (t token) number() (int, bool) {
	if t.kind != tokNumber {
		return 0, false
	}
	n, err := strconv.Atoi(t.text)
	return n, err == nil
}

// scanner splits CMap data into PostScript tokens.
type scanner struct {
	tk *tokenizer.Tokenizer
}

func newScanner(data []byte) *scanner {
	return &scanner{tk: tokenizer.NewTokenizer(data)}
}

func (s *scanner) next() (token, error) {
	t, err := s.tk.NextToken()
	if err != nil {
		return token{}, errCMapFormat(err.Error())
	}
	switch t.Kind {
	case tokenizer.EOF:
		return token{kind: tokEOF}, nil
	case tokenizer.StringHex:
		return token{kind: tokHex, bytes: t.Value}, nil
	case tokenizer.String:
		return token{kind: tokString, bytes: t.Value}, nil
	case tokenizer.Name:
		return token{kind: tokName, text: string(t.Value)}, nil
	case tokenizer.Integer, tokenizer.Float:
		return token{kind: tokNumber, text: string(t.Value)}, nil
	case tokenizer.StartArray:
		return token{kind: tokArrayOpen}, nil
	case tokenizer.EndArray:
		return token{kind: tokArrayClose}, nil
	case tokenizer.StartDic:
		return token{kind: tokDictOpen}, nil
	case tokenizer.EndDic:
		return token{kind: tokDictClose}, nil
	case tokenizer.StartProc: // procedures are skipped like keywords
		return token{kind: tokKeyword, text: "{"}, nil
	case tokenizer.EndProc:
		return token{kind: tokKeyword, text: "}"}, nil
	}
	return token{kind: tokKeyword, text: string(t.Value)}, nil
}
