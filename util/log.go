package util

import (
	"fmt"
	"os"

	"github.com/mgutz/ansi"
)

var (
	funcErr  = ansi.ColorFunc("red+h")
	funcWarn = ansi.ColorFunc("yellow")
	funcGood = ansi.ColorFunc("green")
)

func LogIfError(err error) error {
	if err != nil {
		LogError(err)
	}
	return err
}

func LogError(err error) {
	fmt.Fprintln(os.Stderr, funcErr(fmt.Sprintf("[  ERR] %+v", err)))
}

func LogWarn(msg ...interface{}) {
	msg = append([]interface{}{"[ WARN]"}, msg...)
	fmt.Fprint(os.Stderr, funcWarn(fmt.Sprintln(msg...)))
}

func LogWarnf(f string, v ...interface{}) {
	fmt.Fprintln(os.Stderr, funcWarn(fmt.Sprintf("%s %s", "[ WARN]", fmt.Sprintf(f, v...))))
}

func LogGood(msg ...interface{}) {
	msg = append([]interface{}{"[ INFO]"}, msg...)
	fmt.Fprint(os.Stderr, funcGood(fmt.Sprintln(msg...)))
}
