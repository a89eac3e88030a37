package converter

import (
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/yuin/gopher-lua/parse"
)

// SyntaxError reports whether the source parses as Lua. Nothing is executed.
func SyntaxError(name string, lines []string) error {
	_, err := parse.Parse(strings.NewReader(strings.Join(lines, "\n")), name)
	return err
}

// checkLua logs inputs that are not valid Lua. The line scan still runs;
// conversion is pattern based and does not need a clean parse.
func checkLua(log *logrus.Logger, path string, lines []string) {
	if err := SyntaxError(path, lines); err != nil {
		log.WithFields(logrus.Fields{
			"file":  path,
			"error": err,
		}).Warn("Input does not parse as Lua; conversion is best-effort")
	}
}
