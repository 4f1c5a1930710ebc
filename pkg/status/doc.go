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

/*
Package status owns file access under one base directory and records what a
rewrite run did to each target file.

	            +-------------+
	            |   Manager   |
	            |  (baseDir)  |
	            +------+------+
	                   |
	      +-----------+-----------+
	      |                       |
	+-----+-----+           +----+----+
	|   Files   |           | Tracked |
	| (os I/O)  |           | status  |
	+-----------+           +---------+

🎯 Purpose:
- Resolves relative target names against the base directory
- Distinguishes "missing" from other stat failures
- Rewrites files in place (truncate and write, no temp file)
- Keeps per-file outcomes in first-seen order for the summary

Writes are not atomic. A rewrite that fails half way can leave a
truncated file behind.
*/
package status
