package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"github.com/davejbax/go-iso8601"
	"github.com/sirupsen/logrus"
	"os"
)

func main() {
	var opts options
	flag.StringVar(&opts.kind, "kind", "offsetdatetime", "Kind of value: date, time, datetime or offsetdatetime")
	flag.StringVar(&opts.in, "in", "iso", "Named input format: iso, basic (dates) or rfc1123 (offset date-times)")
	flag.StringVar(&opts.out, "out", "iso", "Named output format")
	flag.StringVar(&opts.inPattern, "in-pattern", "", "Input pattern, e.g. dd/MM/yyyy; overrides -in")
	flag.StringVar(&opts.outPattern, "out-pattern", "", "Output pattern; overrides -out")
	explain := flag.Bool("explain", false, "Print the structure of the input and output formats and exit")
	verbose := flag.Bool("verbose", false, "Log every conversion")

	flag.Parse()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	conv, err := newConverter(opts)
	if err != nil {
		log.Fatal(err)
	}

	if *explain {
		fmt.Println(conv.Explain())
		return
	}

	failures := 0
	convert := func(text string) {
		result, err := conv.Convert(text)
		if err != nil {
			failures++
			logParseError(log, text, err)
			return
		}

		log.WithFields(logrus.Fields{"in": text, "out": result}).Debug("converted value")
		fmt.Println(result)
	}

	if flag.NArg() > 0 {
		for _, arg := range flag.Args() {
			convert(arg)
		}
	} else {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			convert(scanner.Text())
		}

		if err := scanner.Err(); err != nil {
			log.Fatalf("failed to read input: %v", err)
		}
	}

	if failures > 0 {
		log.Errorf("%d value(s) could not be converted", failures)
		os.Exit(1)
	}
}

func logParseError(log *logrus.Logger, text string, err error) {
	var parseErr *iso8601.ParseError
	if !errors.As(err, &parseErr) {
		log.WithField("in", text).Error(err)
		return
	}

	log.WithFields(logrus.Fields{
		"in":       text,
		"offset":   parseErr.Offset,
		"field":    parseErr.Field,
		"expected": parseErr.Expected,
	}).Error(parseErr.Err)
}
