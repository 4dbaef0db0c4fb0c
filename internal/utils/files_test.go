package utils

import (
	"reflect"
	"testing"
)

func TestNormalizeFileList(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected []string
	}{
		{
			name:     "single value with newlines",
			args:     []string{"file1.txt\nfile2.txt\n"},
			expected: []string{"file1.txt", "file2.txt"},
		},
		{
			name:     "whitespace and blank lines trimmed",
			args:     []string{"  a \n \n b "},
			expected: []string{"a", "b"},
		},
		{
			name:     "empty value yields nothing",
			args:     []string{""},
			expected: []string{},
		},
		{
			name:     "carriage return line endings",
			args:     []string{"file1.txt\r\nfile2.txt\r\n"},
			expected: []string{"file1.txt", "file2.txt"},
		},
		{
			name:     "order preserved across values",
			args:     []string{"b.txt\na.txt", "c.txt"},
			expected: []string{"b.txt", "a.txt", "c.txt"},
		},
		{
			name:     "interior whitespace kept",
			args:     []string{"  my file.txt  "},
			expected: []string{"my file.txt"},
		},
		{
			name:     "duplicates kept",
			args:     []string{"a.txt\na.txt"},
			expected: []string{"a.txt", "a.txt"},
		},
		{
			name:     "no values",
			args:     nil,
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NormalizeFileList(tt.args)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("NormalizeFileList(%q) = %q, want %q", tt.args, result, tt.expected)
			}
		})
	}
}
