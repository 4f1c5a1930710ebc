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
Package config describes what a rewrite run touches: a base directory, the
ordered file names under it, and the ordered replacement pairs.

🎯 Purpose:
- Ships the built-in PromptForge to CommandCenter migration (Default)
- Parses alternative replacement sets from disk
- Validates paths and pairs before anything is written

🔄 Flow:
1. Default() or Parse() produces a Config
2. Validate() cleans the directory and rejects unusable files or pairs
3. Rules() hands the pairs to the text package in order

⚡ Formats (picked by extension through the parser registry):
- .yaml / .yml
- .hcl
- .json
- .toml

Unknown fields are rejected in every format.

🔍 Example:

	directory: /srv/app
	files:
	  - index.html
	  - script.js
	replacements:
	  - old: PromptForge
	    new: CommandCenter
	  - old: fa-hammer
	    new: fa-terminal
	    file: index.html
*/
package config
