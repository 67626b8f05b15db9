/*
 * @license
 * Copyright 2024 WebInsights
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package idutils

import (
	uuidLib "github.com/google/uuid"
)

// UUID v3 (MD5 hash based) namespace for "webinsights.io" in the "URL" namespace
var reportNamespaceUUID = uuidLib.NewMD5(uuidLib.NameSpaceURL, []byte("webinsights.io"))

// GenerateReportID generates a fixed UUID for the researched domain.
// The same domain always yields the same report ID, so repeated renders of
// the same research target can be correlated across runs.
func GenerateReportID(domain string) string {
	return uuidLib.NewMD5(reportNamespaceUUID, []byte(domain)).String()
}

// IsUUID tests whether a given string is a valid UUID
func IsUUID(id string) bool {
	if _, err := uuidLib.Parse(id); err != nil {
		return false
	}
	return true
}
