package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/bdlightner/evalexpr"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	var (
		inname, verb, varsfile string
		with                   [][2]string
	)
	addwith := func(s string) error {
		d := strings.SplitN(s, "=", 2)
		if len(d) != 2 {
			return fmt.Errorf(`variable definitions must be "name=value", not %q`, s)
		}
		with = append(with, [2]string{strings.TrimSpace(d[0]), strings.TrimSpace(d[1])})
		return nil
	}
	flag.StringVar(&inname, "in", "", "input file of expressions, one per line (default stdin if no args given)")
	flag.StringVar(&verb, "fmt", "%g", "result formatting string")
	flag.StringVar(&varsfile, "vars", "", "YAML file of name: value variable definitions")
	flag.Func("given", "name=value variable definition (any number of times)", addwith)
	flag.Parse()

	ev := evalexpr.New()
	if varsfile != "" {
		buf, err := os.ReadFile(varsfile)
		if err != nil {
			logger.Fatal().Err(err).Msg("reading variable definitions")
		}
		vars := map[string]float64{}
		if err := yaml.Unmarshal(buf, &vars); err != nil {
			logger.Fatal().Err(err).Str("file", varsfile).Msg("parsing variable definitions")
		}
		for k, v := range vars {
			ev.Set(k, v)
		}
	}
	for _, d := range with {
		// Definitions may themselves be expressions, e.g. -given x=2*pi.
		r, err := evalexpr.EvalString(d[1])
		if err != nil {
			logger.Fatal().Err(err).Str("name", d[0]).Msg("setting variable")
		}
		ev.Set(d[0], r)
	}

	verb += "\n"
	if flag.NArg() > 0 {
		for _, arg := range flag.Args() {
			r, err := ev.Evaluate(arg)
			if err != nil {
				logger.Error().Err(err).Str("expr", arg).Msg("evaluation failed")
				continue
			}
			fmt.Printf(verb, r)
		}
		return
	}

	f := os.Stdin
	if inname != "" && inname != "-" {
		in, err := os.Open(inname)
		if err != nil {
			logger.Fatal().Err(err).Msg("opening input")
		}
		defer in.Close()
		f = in
	}
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		r, err := ev.Evaluate(line)
		if err != nil {
			logger.Error().Err(err).Msg("evaluation failed")
			continue
		}
		fmt.Printf(verb, r)
	}
	if err := sc.Err(); err != nil {
		logger.Fatal().Err(err).Msg("reading input")
	}
}
