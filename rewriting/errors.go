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

package rewriting

import (
	"github.com/endink/sharding-rewrite/rewriting/parameter"
	"github.com/pingcap/errors"
)

var (
	ErrTokenOutOfRange      = errors.New("sql token is out of range of the sql")
	ErrUnionRewriteRequired = errors.New("route units share the same physical target but aggregation union rewrite is not allowed")
	ErrNoDefaultDataSource  = errors.New("no default data source configured")
	ErrDataNodesMismatch    = parameter.ErrDataNodesMismatch
)
