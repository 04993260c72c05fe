package bot

import "strings"

// Parse splits an input line into a lowercased command verb and its
// arguments. Argument case is preserved; contact names are case-sensitive.
// A blank line yields an empty command.
func Parse(line string) (string, []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	return strings.ToLower(fields[0]), fields[1:]
}

// IsExit reports whether the verb ends an assistant session.
func IsExit(command string) bool {
	return command == "close" || command == "exit"
}
