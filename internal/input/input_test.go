package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSelection(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantOK  bool
		wantIdx []int
	}{
		{name: "comma separated", raw: "1,2,3", wantOK: true, wantIdx: []int{0, 1, 2}},
		{name: "space separated", raw: "1 2 3", wantOK: true, wantIdx: []int{0, 1, 2}},
		{name: "mixed separators", raw: " 1, 2 ,5 ", wantOK: true, wantIdx: []int{0, 1, 4}},
		{name: "no separators", raw: "145", wantOK: true, wantIdx: []int{0, 3, 4}},
		{name: "duplicates preserved", raw: "2,2,2", wantOK: true, wantIdx: []int{1, 1, 1}},
		{name: "empty means no replacement", raw: "", wantOK: true, wantIdx: []int{}},
		{name: "only separators", raw: " , , ", wantOK: true, wantIdx: []int{}},
		{name: "out of range digit", raw: "6", wantOK: false},
		{name: "zero is out of range", raw: "0", wantOK: false},
		{name: "multi-digit positions are checked per character", raw: "10", wantOK: false},
		{name: "letters", raw: "one,two", wantOK: false},
		{name: "valid digits with one bad token", raw: "1,2,x", wantOK: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ok, idx := ParseSelection(tc.raw)
			assert.Equal(t, tc.wantOK, ok)
			if tc.wantOK {
				assert.Equal(t, tc.wantIdx, idx)
			} else {
				assert.Empty(t, idx)
			}
		})
	}
}
