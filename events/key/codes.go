// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package key defines the physical key codes used for responses.
package key

import (
	"fmt"
	"strconv"
	"strings"
)

// Codes are the physical key codes, independent of keyboard layout.
type Codes int32

const (
	CodeUnknown Codes = iota

	CodeA
	CodeB
	CodeC
	CodeD
	CodeE
	CodeF
	CodeG
	CodeH
	CodeI
	CodeJ
	CodeK
	CodeL
	CodeM
	CodeN
	CodeO
	CodeP
	CodeQ
	CodeR
	CodeS
	CodeT
	CodeU
	CodeV
	CodeW
	CodeX
	CodeY
	CodeZ

	Code0
	Code1
	Code2
	Code3
	Code4
	Code5
	Code6
	Code7
	Code8
	Code9

	CodeReturnEnter
	CodeEscape
	CodeBackspace
	CodeTab
	CodeSpacebar
	CodeLeftArrow
	CodeRightArrow
	CodeUpArrow
	CodeDownArrow
	CodeKeypadEnter
	CodeLeftShift
	CodeRightShift
)

var codeNames = map[Codes]string{
	CodeUnknown:     "Unknown",
	CodeReturnEnter: "ReturnEnter",
	CodeEscape:      "Escape",
	CodeBackspace:   "Backspace",
	CodeTab:         "Tab",
	CodeSpacebar:    "Spacebar",
	CodeLeftArrow:   "LeftArrow",
	CodeRightArrow:  "RightArrow",
	CodeUpArrow:     "UpArrow",
	CodeDownArrow:   "DownArrow",
	CodeKeypadEnter: "KeypadEnter",
	CodeLeftShift:   "LeftShift",
	CodeRightShift:  "RightShift",
}

// aliases are additional accepted names for [ParseCode].
var aliases = map[string]Codes{
	"enter":  CodeReturnEnter,
	"return": CodeReturnEnter,
	"space":  CodeSpacebar,
	"esc":    CodeEscape,
	"left":   CodeLeftArrow,
	"right":  CodeRightArrow,
	"up":     CodeUpArrow,
	"down":   CodeDownArrow,
}

func (c Codes) String() string {
	switch {
	case c >= CodeA && c <= CodeZ:
		return string(rune('A' + c - CodeA))
	case c >= Code0 && c <= Code9:
		return string(rune('0' + c - Code0))
	}
	if nm, ok := codeNames[c]; ok {
		return nm
	}
	return "Codes(" + strconv.Itoa(int(c)) + ")"
}

// Rune returns the character typed by the key without modifiers,
// or 0 if it does not type one.
func (c Codes) Rune() rune {
	switch {
	case c >= CodeA && c <= CodeZ:
		return rune('a' + c - CodeA)
	case c >= Code0 && c <= Code9:
		return rune('0' + c - Code0)
	case c == CodeSpacebar:
		return ' '
	}
	return 0
}

// CodeForRune returns the code of the key typing r.
func CodeForRune(r rune) Codes {
	switch {
	case r >= 'a' && r <= 'z':
		return CodeA + Codes(r-'a')
	case r >= 'A' && r <= 'Z':
		return CodeA + Codes(r-'A')
	case r >= '0' && r <= '9':
		return Code0 + Codes(r-'0')
	case r == ' ':
		return CodeSpacebar
	case r == '\r' || r == '\n':
		return CodeReturnEnter
	}
	return CodeUnknown
}

// ParseCode returns the code with the given name, case insensitive.
// Single characters name the key typing them.
func ParseCode(s string) (Codes, error) {
	s = strings.TrimSpace(s)
	if r := []rune(s); len(r) == 1 {
		if c := CodeForRune(r[0]); c != CodeUnknown {
			return c, nil
		}
	}
	ls := strings.ToLower(s)
	if c, ok := aliases[ls]; ok {
		return c, nil
	}
	for c, nm := range codeNames {
		if c != CodeUnknown && strings.ToLower(nm) == ls {
			return c, nil
		}
	}
	return CodeUnknown, fmt.Errorf("key.ParseCode: unknown key %q", s)
}

// ParseCodes parses a list of key names.
func ParseCodes(names []string) ([]Codes, error) {
	cs := make([]Codes, 0, len(names))
	for _, nm := range names {
		c, err := ParseCode(nm)
		if err != nil {
			return cs, err
		}
		cs = append(cs, c)
	}
	return cs, nil
}
