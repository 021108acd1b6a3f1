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
	"fmt"

	"github.com/d5/tengo/v2"
)

const resultVar = "_r"

// CompiledScript is a script can be run more than once, run result is always flatted to string list.
type CompiledScript interface {
	Run() ([]string, error)
	Raw() string
}

type tengoScript struct {
	raw      string
	compiled *tengo.Compiled
}

func (s *tengoScript) Raw() string {
	return s.raw
}

func (s *tengoScript) Run() ([]string, error) {
	c := s.compiled.Clone()
	if err := c.Run(); err != nil {
		return nil, err
	}
	v := c.Get(resultVar)
	switch value := v.Value().(type) {
	case []interface{}:
		list := make([]string, len(value))
		for i, item := range value {
			switch item.(type) {
			case int64, float64, string, bool:
				list[i] = fmt.Sprint(item)
			default:
				return nil, invalidReturnTypeError(s.raw, v)
			}
		}
		return list, nil
	case int64, float64, string:
		return []string{fmt.Sprint(value)}, nil
	default:
		return nil, invalidReturnTypeError(s.raw, v)
	}
}

func invalidReturnTypeError(raw string, v *tengo.Variable) error {
	return fmt.Errorf("script return invalid type, excepted number, string or an array of them\nscript: %s\nreturn type: %s", raw, v.ValueType())
}

// ParseScript compile script, the value of the last expression is the result.
func ParseScript(script string) (CompiledScript, error) {
	s := tengo.NewScript([]byte(fmt.Sprintf("%s:=%s", resultVar, script)))
	if err := s.Add("range", RangeFunction); err != nil {
		return nil, err
	}
	c, err := s.Compile()
	if err != nil {
		return nil, fmt.Errorf("compile script '%s' fault: %v", script, err)
	}
	return &tengoScript{raw: script, compiled: c}, nil
}
