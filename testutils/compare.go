package testutils

import (
	"reflect"
	"strings"
	"testing"
)

func Compare(t *testing.T, got, want []string) {
	t.Helper()
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
		t.Errorf("difference %+v", Difference(got, want))
	}
}

// Difference between two slices
func Difference(slice1, slice2 []string) []string {
	diff := []string{}
	m := map[string]int{}

	for _, v := range slice1 {
		m[v] = 1
	}
	for _, v := range slice2 {
		m[v] = m[v] + 1
	}

	for k, v := range m {
		if v == 1 {
			diff = append(diff, k)
		}
	}

	return diff
}

// StringDifference returns the first line where s1 and s2 differ, from each
// string. Both are empty if the strings are equal.
func StringDifference(s1, s2 string) (string, string) {
	lines1 := strings.Split(s1, "\n")
	lines2 := strings.Split(s2, "\n")
	for i := 0; i < len(lines1) || i < len(lines2); i++ {
		var l1, l2 string
		if i < len(lines1) {
			l1 = lines1[i]
		}
		if i < len(lines2) {
			l2 = lines2[i]
		}
		if l1 != l2 || i >= len(lines1) || i >= len(lines2) {
			return l1, l2
		}
	}
	return "", ""
}
