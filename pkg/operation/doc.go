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
Package operation rewrites target files in place.

	+-------------+
	|   Runner    |
	| (in order)  |
	+------+------+
	       |
	+------+------+
	|   Rewrite   |
	| (one file)  |
	+------+------+

🎯 Purpose:
- Builds one rewrite operation per configured file
- Runs them strictly one after another
- Stops at the first error

🔄 Flow (per file):
1. Missing file: record it and move on, nothing is printed
2. Read the whole file
3. Apply the replacement rules in order
4. Unchanged: record it and move on
5. Changed: truncate and write, then print "Updated <name>"

⚡ Failure handling:
A missing file is not an error. Any read or write failure aborts the run;
files already rewritten stay rewritten.

🤝 Interfaces:
- status.FileManager: file access under the base directory
- status.StatusReporter: per-file outcomes
- log.Logger (from context): the "Updated" notice
*/
package operation
