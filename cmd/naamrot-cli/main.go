package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/chzyer/readline"
	"github.com/pkg/errors"

	"github.com/naamrot/naamrot.com/naamrot"
	"github.com/naamrot/naamrot.com/util"
)

func main() {
	rulesFile := flag.String("rules", "", "YAML rule file overriding the built-in tables")
	flag.Parse()

	conv := naamrot.Default()
	if *rulesFile != "" {
		var err error
		conv, err = naamrot.LoadRuleFile(*rulesFile)
		if err != nil {
			util.LogError(errors.Wrap(err, "loading rules"))
			return
		}
	}

	if flag.NArg() > 0 {
		// Non-interactive: convert the arguments and exit.
		for _, arg := range flag.Args() {
			fmt.Println(conv.Convert(arg))
		}
		return
	}

	rl, err := readline.New("naamrot> ")
	if err != nil {
		util.LogError(errors.Wrap(err, "readline"))
		return
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		} else if err == io.EOF {
			return
		} else if err != nil {
			util.LogError(errors.Wrap(err, "read"))
			return
		}
		fmt.Println(conv.Convert(line))
	}
}
