// --------------------------------------------------------------------------------
// Author: Thomas F McGeehan V
//
// This file is part of a software project developed by Thomas F McGeehan V.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//
// For more information about the MIT License, please visit:
// https://opensource.org/licenses/MIT
//
// Acknowledgment appreciated but not required.
// --------------------------------------------------------------------------------

package main

import (
	"testing"

	"github.com/docopt/docopt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsageTargetFormats(t *testing.T) {
	parser := &docopt.Parser{HelpHandler: docopt.NoHelpHandler}

	tests := []struct {
		argv        []string
		expected    []string
		description string
	}{
		{
			argv:        []string{"data-1-1-normal-1.csv"},
			expected:    []string{},
			description: "No target formats",
		},
		{
			argv:        []string{"data-1-1-normal-1.csv", "--target_formats=Parquet", "--target_formats=Arrow", "--overwrite"},
			expected:    []string{"Parquet", "Arrow"},
			description: "Repeated flag",
		},
	}

	for _, test := range tests {
		t.Run(test.description, func(t *testing.T) {
			opts, err := parser.ParseArgs(usage, test.argv, "")
			require.NoError(t, err)
			targets, _ := opts["--target_formats"].([]string)
			assert.ElementsMatch(t, test.expected, targets)
		})
	}

	_, err := parser.ParseArgs(usage, []string{"data-1-1-normal-1.csv", "--target_formats", "Parquet", "Arrow"}, "")
	assert.Error(t, err, "Space-separated values after a single flag are not accepted")
}
