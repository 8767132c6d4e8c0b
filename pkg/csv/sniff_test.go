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

package csv

import (
	"testing"

	"github.com/arrowarc/benchprep/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSniff(t *testing.T) {
	tests := []struct {
		content     string
		delimiter   rune
		sample      int
		expected    Profile
		description string
	}{
		{
			content:     "",
			delimiter:   ',',
			sample:      10,
			expected:    Profile{},
			description: "Empty file",
		},
		{
			content:     "a,b,c\n1,2,3\n4.5,-6,7e3\n",
			delimiter:   ',',
			sample:      10,
			expected:    Profile{Fields: 3, Sampled: 2, Numeric: []bool{true, true, true}},
			description: "Numeric columns",
		},
		{
			content:     "a|b\n1|x\n2|3\n",
			delimiter:   '|',
			sample:      10,
			expected:    Profile{Fields: 2, Sampled: 2, Numeric: []bool{true, false}},
			description: "Pipe delimiter with text column",
		},
		{
			content:     "a,b\n1,2\n3,4\nx,y\n",
			delimiter:   ',',
			sample:      2,
			expected:    Profile{Fields: 2, Sampled: 2, Numeric: []bool{true, true}},
			description: "Sample limit",
		},
	}

	for _, test := range tests {
		t.Run(test.description, func(t *testing.T) {
			path := testutil.WriteFile(t, t.TempDir(), "in.csv", test.content)
			profile, err := Sniff(path, test.delimiter, test.sample)
			require.NoError(t, err)
			if diff := testutil.Diff(test.expected, *profile); diff != "" {
				t.Errorf("profile mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNonNumeric(t *testing.T) {
	p := Profile{Fields: 3, Numeric: []bool{true, false, false}}
	assert.Equal(t, []int{1, 2}, p.NonNumeric())
}
