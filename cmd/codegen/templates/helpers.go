package templates

import (
	"strconv"
	"strings"
)

func prefixedStrings(prefix string, count int) string {
	var sb strings.Builder
	for i := 0; i < count; i++ {
		sb.WriteString(prefix)
		sb.WriteString(strconv.Itoa(i))
		if i < count-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}

// v0 T0, v1 T1, ...
func valueParams(count int) string {
	var sb strings.Builder
	for i := 0; i < count; i++ {
		sb.WriteString("v")
		sb.WriteString(strconv.Itoa(i))
		sb.WriteString(" T")
		sb.WriteString(strconv.Itoa(i))
		if i < count-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}

// s0 Signal[T0], s1 Signal[T1], ...
func signalParams(count int) string {
	var sb strings.Builder
	for i := 0; i < count; i++ {
		sb.WriteString("s")
		sb.WriteString(strconv.Itoa(i))
		sb.WriteString(" Signal[T")
		sb.WriteString(strconv.Itoa(i))
		sb.WriteString("]")
		if i < count-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}
