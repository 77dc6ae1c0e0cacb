// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package jsonval

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ParseError reports malformed JSON text. Offset is the byte position within
// the (trimmed) input where decoding failed, when known.
type ParseError struct {
	Offset int64
	Reason string
}

func (e *ParseError) Error() string {
	if e.Offset > 0 {
		return fmt.Sprintf("invalid JSON at offset %d: %s", e.Offset, e.Reason)
	}
	return "invalid JSON: " + e.Reason
}

// Decode parses a JSON document from text. It returns (value, true, nil) on
// success and (zero, false, nil) when the text is empty or whitespace-only,
// which callers treat as "no value" rather than an error. Malformed input,
// including trailing content after the first value, yields a *ParseError.
func Decode(text string) (Value, bool, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Value{}, false, nil
	}

	dec := json.NewDecoder(strings.NewReader(trimmed))
	dec.UseNumber()

	v, err := decodeValue(dec)
	if err != nil {
		return Value{}, false, parseError(dec, err)
	}

	// A document is exactly one value.
	if dec.More() {
		return Value{}, false, &ParseError{
			Offset: dec.InputOffset(),
			Reason: "unexpected content after top-level value",
		}
	}

	return v, true, nil
}

// decodeValue consumes one complete value from the token stream.
func decodeValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, err
	}
	return valueFromToken(dec, tok)
}

func valueFromToken(dec *json.Decoder, tok json.Token) (Value, error) {
	switch t := tok.(type) {
	case nil:
		return NullValue(), nil
	case bool:
		return BoolValue(t), nil
	case json.Number:
		return NumberValue(t), nil
	case string:
		return StringValue(t), nil
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		default:
			return Value{}, fmt.Errorf("unexpected %q", t.String())
		}
	default:
		return Value{}, fmt.Errorf("unexpected token %v", tok)
	}
}

// decodeObject consumes members until the closing brace, preserving key
// order. Duplicate keys keep the last value, matching encoding/json.
func decodeObject(dec *json.Decoder) (Value, error) {
	v := Value{kind: Object, fields: map[string]Value{}}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return Value{}, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return Value{}, fmt.Errorf("object key is not a string: %v", keyTok)
		}
		member, err := decodeValue(dec)
		if err != nil {
			return Value{}, err
		}
		if _, dup := v.fields[key]; !dup {
			v.keys = append(v.keys, key)
		}
		v.fields[key] = member
	}
	// Consume the closing '}'.
	if _, err := dec.Token(); err != nil {
		return Value{}, err
	}
	return v, nil
}

func decodeArray(dec *json.Decoder) (Value, error) {
	v := Value{kind: Array}
	for dec.More() {
		elem, err := decodeValue(dec)
		if err != nil {
			return Value{}, err
		}
		v.arr = append(v.arr, elem)
	}
	// Consume the closing ']'.
	if _, err := dec.Token(); err != nil {
		return Value{}, err
	}
	return v, nil
}

// parseError normalizes decoder failures into *ParseError with a readable
// message and best-known offset.
func parseError(dec *json.Decoder, err error) *ParseError {
	var syn *json.SyntaxError
	if errors.As(err, &syn) {
		return &ParseError{Offset: syn.Offset, Reason: syn.Error()}
	}
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return &ParseError{Offset: dec.InputOffset(), Reason: "unexpected end of input"}
	}
	return &ParseError{Offset: dec.InputOffset(), Reason: err.Error()}
}
