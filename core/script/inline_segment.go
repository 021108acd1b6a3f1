/*
 * Copyright 2021. Go-Sharding Author All Rights Reserved.
 *
 *  Licensed under the Apache License, Version 2.0 (the "License");
 *  you may not use this file except in compliance with the License.
 *  You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 *  Unless required by applicable law or agreed to in writing, software
 *  distributed under the License is distributed on an "AS IS" BASIS,
 *  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *  See the License for the specific language governing permissions and
 *  limitations under the License.
 *
 *  File author: Anders Xiao
 */

package script

import (
	"errors"
	"strings"

	"github.com/endink/sharding-rewrite/core"
)

type inlineSegment struct {
	literal string
	script  CompiledScript
}

// values of the segment, literal segment has only one value
func (seg *inlineSegment) values() ([]string, error) {
	if seg.script == nil {
		return []string{seg.literal}, nil
	}
	return seg.script.Run()
}

type inlineGroup struct {
	segments []*inlineSegment
}

func (g *inlineGroup) flat() ([]string, error) {
	current := []string{""}
	for _, seg := range g.segments {
		values, err := seg.values()
		if err != nil {
			return nil, err
		}
		next := make([]string, 0, len(current)*len(values))
		for _, prefix := range current {
			for _, v := range values {
				next = append(next, prefix+v)
			}
		}
		current = next
	}
	return current, nil
}

type splitter struct {
	expression string
	literal    strings.Builder
	script     strings.Builder
	segments   []*inlineSegment
	groups     []*inlineGroup
}

func (s *splitter) syntaxError(message string, index int) error {
	sb := core.NewStringBuilder()
	sb.WriteLine("inline expression syntax error")
	sb.WriteLine(message)
	sb.WriteLineF("expression: %s", s.expression)
	if index >= 0 {
		sb.WriteFormat("char index: %d", index)
	}
	return errors.New(sb.String())
}

func (s *splitter) flushLiteral() {
	if s.literal.Len() > 0 {
		s.segments = append(s.segments, &inlineSegment{literal: s.literal.String()})
		s.literal.Reset()
	}
}

func (s *splitter) flushScript(index int) error {
	raw := strings.TrimSpace(s.script.String())
	s.script.Reset()
	if raw == "" {
		return s.syntaxError("script can not be empty", index)
	}
	compiled, err := ParseScript(raw)
	if err != nil {
		return s.syntaxError(err.Error(), index)
	}
	s.segments = append(s.segments, &inlineSegment{script: compiled})
	return nil
}

func (s *splitter) flushGroup() {
	s.flushLiteral()
	if len(s.segments) > 0 {
		trimGroupEdges(s.segments)
		s.groups = append(s.groups, &inlineGroup{segments: s.segments})
	}
	s.segments = nil
}

func trimGroupEdges(segments []*inlineSegment) {
	first, last := segments[0], segments[len(segments)-1]
	if first.script == nil {
		first.literal = strings.TrimLeft(first.literal, " \t\r\n")
	}
	if last.script == nil {
		last.literal = strings.TrimRight(last.literal, " \t\r\n")
	}
}

// split expression into groups by ',' outside of scripts, each group is a sequence of literal and script segments.
func splitGroups(expression string) ([]*inlineGroup, error) {
	s := &splitter{expression: expression}
	depth := 0
	inScript := false
	for i := 0; i < len(expression); i++ {
		c := expression[i]
		if inScript {
			switch c {
			case '{':
				depth++
			case '}':
				if depth == 0 {
					inScript = false
					if err := s.flushScript(i); err != nil {
						return nil, err
					}
					continue
				}
				depth--
			}
			s.script.WriteByte(c)
			continue
		}
		switch c {
		case '$':
			if i+1 >= len(expression) || expression[i+1] != '{' {
				return nil, s.syntaxError("'{' symbol is missing after the symbol '$'", i)
			}
			s.flushLiteral()
			inScript = true
			i++
		case ',':
			s.flushGroup()
		default:
			s.literal.WriteByte(c)
		}
	}
	if inScript {
		return nil, s.syntaxError("symbol '}' used to end the script is missing", -1)
	}
	s.flushGroup()
	return s.groups, nil
}
