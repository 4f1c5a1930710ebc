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

package config

// DefaultDirectory is where the CommandCenter app lives.
const DefaultDirectory = "/home/dustin/Projects/CommandCenter"

var defaultFiles = []string{
	"index.html",
	"script.js",
}

// order matters: every pair runs on the output of the pairs above it
var defaultReplacements = []Replacement{
	// general UI text
	{Old: "PromptForge", New: "CommandCenter"},
	{Old: "promptForge", New: "commandCenter"},
	{Old: "AI Prompt Lab", New: "AI Command Lab"},
	{Old: "AI Prompt Management System", New: "AI Command Management System"},
	{Old: "AI Enhancement Settings", New: "AI Recommendation Settings"},
	{Old: "Enhancement Prompt", New: "Recommendation Prompt"},
	{Old: "Enter system prompt for enhancement...", New: "Enter system prompt for recommendation..."},
	{Old: "Describe the prompt you want to create or enhance...", New: "Describe the command you want to create or fix..."},
	{Old: "New Prompt", New: "New Command"},
	{Old: "Search prompts...", New: "Search commands..."},
	{Old: "No Prompts Found", New: "No Commands Found"},
	{Old: "no prompts matching", New: "no commands matching"},
	{Old: "Prompt Details", New: "Command Details"},
	{Old: "Copy Prompt", New: "Copy Command"},
	{Old: "Export All Prompts", New: "Export All Commands"},
	{Old: "Keeps your current prompts", New: "Keeps your current commands"},
	{Old: "prompt content to enhance", New: "command content to fix"},
	{Old: "Prompt Content", New: "Command"},
	{Old: "e.g., Creative Writing Assistant", New: "e.g., Start Node.js server"},
	{Old: "e.g., You are a creative writing assistant...", New: "e.g., node server.js"},
	{Old: "fa-hammer", New: "fa-terminal"},

	// AI system prompt
	{
		Old: "You are an expert prompt engineer. Improve the prompt for clarity and effectiveness while preserving intent. Return only the improved prompt text.",
		New: "You are an expert Linux sysadmin. Suggest or fix the command described by the user to achieve their goal. Return only the command text, without markdown formatting or code blocks.",
	},

	// script UI strings
	{Old: "Enhancing...", New: "Processing..."},
	{Old: "Enhance with AI", New: "Suggest/Fix Command"},
	{Old: "Prompt enhanced successfully!", New: "Command fixed successfully!"},
	{Old: "Enhance prompt", New: "Suggest/Fix command"},
	{Old: "No prompt content to enhance", New: "No command content to suggest/fix"},
}

// 🏭 Default returns the built-in PromptForge to CommandCenter migration.
// The returned config is a fresh copy and safe to modify.
func Default() *Config {
	cfg := &Config{
		Directory:    DefaultDirectory,
		Files:        make([]string, len(defaultFiles)),
		Replacements: make([]Replacement, len(defaultReplacements)),
	}
	copy(cfg.Files, defaultFiles)
	copy(cfg.Replacements, defaultReplacements)
	return cfg
}
