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

package text_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/walteh/rebrand/pkg/text"
)

func ExampleReplacer_ReplaceText() {
	replacer := text.NewReplacer()

	rules := []text.Rule{
		{Old: "PromptForge", New: "CommandCenter"},
		{Old: "Enhance prompt", New: "Suggest/Fix command"},
	}

	result, err := replacer.ReplaceText(context.Background(), strings.NewReader("PromptForge: Enhance prompt"), rules)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Printf("Original: %s\n", result.OriginalContent)
	fmt.Printf("Modified: %s\n", result.ModifiedContent)
	fmt.Printf("Changes: %d\n", result.ReplacementCount)
	fmt.Printf("Was Modified: %v\n", result.WasModified)

	// Output:
	// Original: PromptForge: Enhance prompt
	// Modified: CommandCenter: Suggest/Fix command
	// Changes: 2
	// Was Modified: true
}

func ExampleApply() {
	out, n := text.Apply("x", []text.Rule{
		{Old: "x", New: "y"},
		{Old: "y", New: "z"},
	})
	fmt.Println(out, n)

	// Output:
	// z 2
}
