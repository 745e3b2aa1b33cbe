package util

import (
	"strings"

	"github.com/kballard/go-shellquote"
)

// QuoteCmd renders cmd as a shell command line suitable for log
// output. Arguments containing newlines are replaced with a
// placeholder so they don't break up the log line.
func QuoteCmd(cmd []string) string {
	cleanedCmd := make([]string, len(cmd))
	copy(cleanedCmd, cmd)
	for i := range cmd {
		if strings.ContainsRune(cmd[i], '\n') {
			cleanedCmd[i] = "<multiline>"
		}
	}
	return shellquote.Join(cleanedCmd...)
}
