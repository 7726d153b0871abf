package conffile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// FindAssignment reports whether r contains an uncommented assignment of
// name to value. A line matches when, after stripping leading whitespace,
// it reads `name = value` with spaces or tabs allowed around the `=`.
// Matching is case-sensitive. Lines whose first significant character is
// `#` never match. Trailing content after the value is permitted when it is
// whitespace or an inline `#` comment, so `name = value # note` matches but
// `name = value_extra` does not.
//
// Scanning stops at the first match; this is an existence test, not an
// enumeration.
func FindAssignment(r io.Reader, name, value string) (bool, error) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if lineAssigns(scanner.Text(), name, value) {
			return true, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return false, fmt.Errorf("scan lines: %w", err)
	}
	return false, nil
}

// ScanFile opens path read-only and applies FindAssignment. A missing file
// is reported through the returned error so callers can distinguish "absent"
// from "unreadable" with errors.Is(err, fs.ErrNotExist).
func ScanFile(path, name, value string) (bool, error) {
	file, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer file.Close()
	return FindAssignment(file, name, value)
}

func lineAssigns(line, name, value string) bool {
	rest := strings.TrimLeft(line, " \t")
	if rest == "" || strings.HasPrefix(rest, "#") {
		return false
	}
	if !strings.HasPrefix(rest, name) {
		return false
	}
	rest = rest[len(name):]

	// The name must be a complete token: the next character has to be
	// whitespace or the assignment itself.
	if rest == "" || (rest[0] != ' ' && rest[0] != '\t' && rest[0] != '=') {
		return false
	}
	rest = strings.TrimLeft(rest, " \t")
	if !strings.HasPrefix(rest, "=") {
		return false
	}
	rest = strings.TrimLeft(rest[1:], " \t")

	token := rest
	if idx := strings.IndexAny(token, " \t#"); idx >= 0 {
		token = token[:idx]
	}
	return token == value
}
