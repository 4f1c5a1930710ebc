// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package status

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// 🎨 Display configuration
const (
	fileIndent  = 4  // spaces to indent file entries
	nameWidth   = 35 // Base width for filename
	statusWidth = 12 // Width for status text
	sumWidth    = 12 // Checksum hex digits shown
)

// 🎯 FormatFile formats one tracked file for display
func FormatFile(info FileInfo) string {
	var prefix string
	switch info.Status {
	case StatusUpdated:
		prefix = color.YellowString("⟳")
	case StatusUnchanged:
		prefix = color.GreenString("✓")
	case StatusMissing:
		prefix = color.HiBlackString("-")
	default:
		prefix = color.RedString("?")
	}

	namePart := fmt.Sprintf("%-*s", nameWidth, info.Path)
	statusPart := fmt.Sprintf("%-*s", statusWidth, info.Status)

	var details []string
	if info.Status == StatusUpdated {
		details = append(details, fmt.Sprintf("%d replaced", info.Replacements))
	}
	if info.Checksum != "" {
		details = append(details, color.HiBlackString("sha256:%.*s", sumWidth, info.Checksum))
	}
	detail := strings.Join(details, " ")

	return strings.TrimRight(fmt.Sprintf("%s%s %s %s %s",
		strings.Repeat(" ", fileIndent),
		prefix,
		namePart,
		statusPart,
		detail,
	), " ")
}

// 📋 FormatFiles formats every tracked file, one per line
func FormatFiles(files []FileInfo) string {
	lines := make([]string, 0, len(files))
	for _, info := range files {
		lines = append(lines, FormatFile(info))
	}
	return strings.Join(lines, "\n")
}

// FormatTotals counts files per outcome.
func FormatTotals(files []FileInfo) string {
	counts := map[FileStatus]int{}
	for _, info := range files {
		counts[info.Status]++
	}
	return fmt.Sprintf("%d updated, %d unchanged, %d missing",
		counts[StatusUpdated],
		counts[StatusUnchanged],
		counts[StatusMissing],
	)
}
