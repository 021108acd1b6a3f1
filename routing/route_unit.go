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

package routing

import (
	"fmt"
	"strings"

	"github.com/endink/sharding-rewrite/core"
	"github.com/pingcap/errors"
)

// RouteMapper maps a logic name to an actual name, it is used for data sources and tables.
type RouteMapper struct {
	LogicName  string
	ActualName string
}

func NewRouteMapper(logicName string, actualName string) RouteMapper {
	return RouteMapper{
		LogicName:  strings.TrimSpace(logicName),
		ActualName: strings.TrimSpace(actualName),
	}
}

func (m RouteMapper) String() string {
	if m.LogicName == m.ActualName {
		return m.LogicName
	}
	return m.LogicName + "=" + m.ActualName
}

// RouteUnit is one physical target of a statement.
type RouteUnit struct {
	DataSourceMapper RouteMapper
	TableMappers     []RouteMapper
}

func NewRouteUnit(dataSource RouteMapper, tables ...RouteMapper) *RouteUnit {
	return &RouteUnit{
		DataSourceMapper: dataSource,
		TableMappers:     tables,
	}
}

// Key identifies the route unit, two units with same mappers have the same key.
func (u *RouteUnit) Key() string {
	sb := core.NewStringBuilder()
	sb.WriteString(strings.ToLower(u.DataSourceMapper.LogicName))
	sb.WriteString("=")
	sb.WriteString(strings.ToLower(u.DataSourceMapper.ActualName))
	for _, m := range u.TableMappers {
		sb.WriteString("|")
		sb.WriteString(strings.ToLower(m.LogicName))
		sb.WriteString("=")
		sb.WriteString(strings.ToLower(m.ActualName))
	}
	return sb.String()
}

// PhysicalKey identifies the physical target: actual data source and actual tables in order.
func (u *RouteUnit) PhysicalKey() string {
	sb := core.NewStringBuilder(u.DataSourceMapper.ActualName)
	for _, name := range u.ActualTableNames() {
		sb.WriteString("|")
		sb.WriteString(name)
	}
	return strings.ToLower(sb.String())
}

// FindTableMapper finds the table mapper whose actual table is actualTable when the logic data source of the unit is logicDataSource.
func (u *RouteUnit) FindTableMapper(logicDataSource string, actualTable string) (RouteMapper, bool) {
	if !strings.EqualFold(u.DataSourceMapper.LogicName, logicDataSource) {
		return RouteMapper{}, false
	}
	for _, m := range u.TableMappers {
		if strings.EqualFold(m.ActualName, actualTable) {
			return m, true
		}
	}
	return RouteMapper{}, false
}

func (u *RouteUnit) ActualTableNames() []string {
	names := make([]string, len(u.TableMappers))
	for i, m := range u.TableMappers {
		names[i] = m.ActualName
	}
	return names
}

// TableMap returns lower-cased logic table to actual table.
func (u *RouteUnit) TableMap() map[string]string {
	tables := make(map[string]string, len(u.TableMappers))
	for _, m := range u.TableMappers {
		tables[strings.ToLower(m.LogicName)] = m.ActualName
	}
	return tables
}

func (u *RouteUnit) String() string {
	tables := make([]string, len(u.TableMappers))
	for i, m := range u.TableMappers {
		tables[i] = m.String()
	}
	return fmt.Sprintf("%s/%s", u.DataSourceMapper, strings.Join(tables, ","))
}

// ParseRouteUnit parse text like "ds=ds_0/t_order=t_order_0,t_item=t_item_0".
// Logic name is used as actual name when the '=' part is omitted.
func ParseRouteUnit(text string) (*RouteUnit, error) {
	parts := strings.SplitN(strings.TrimSpace(text), "/", 2)
	ds, err := parseMapper(parts[0])
	if err != nil {
		return nil, errors.Errorf("invalid route unit '%s': %v", text, err)
	}
	unit := NewRouteUnit(ds)
	if len(parts) == 2 {
		for _, seg := range strings.Split(parts[1], ",") {
			if strings.TrimSpace(seg) == "" {
				continue
			}
			m, err := parseMapper(seg)
			if err != nil {
				return nil, errors.Errorf("invalid route unit '%s': %v", text, err)
			}
			unit.TableMappers = append(unit.TableMappers, m)
		}
	}
	return unit, nil
}

func parseMapper(text string) (RouteMapper, error) {
	kv := strings.SplitN(text, "=", 2)
	logic := strings.TrimSpace(kv[0])
	if logic == "" {
		return RouteMapper{}, errors.Errorf("blank name in '%s'", text)
	}
	actual := logic
	if len(kv) == 2 {
		actual = core.IfBlankAndTrim(kv[1], logic)
	}
	return NewRouteMapper(logic, actual), nil
}
