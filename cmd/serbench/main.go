package main

import (
	"fmt"
	"io"
	"os"

	"github.com/google/gops/agent"
	"github.com/jessevdk/go-flags"
	"github.com/zeromicro/go-zero/core/logx"

	"howett.net/serbench"
)

type options struct {
	Sizes      []int    `short:"s" long:"size" value-name:"N" description:"Dataset size to measure; repeat for more (default: 1, 10, 100, 1000, 10000)"`
	Codecs     []string `short:"c" long:"codec" value-name:"NAME" choice:"xml" choice:"json" choice:"yaml" choice:"cbor" choice:"bson" description:"Codec to measure; repeat for more (default: xml, json)"`
	Repeat     int      `short:"r" long:"repeat" value-name:"N" description:"Time every operation N times and report the mean"`
	Parallel   bool     `short:"p" long:"parallel" description:"Measure all sizes concurrently"`
	NoVerify   bool     `long:"no-verify" description:"Do not check that decoded data equals the generated data"`
	Indent     string   `long:"indent" value-name:"STRING" description:"Pretty-print codecs that support indentation"`
	Config     string   `long:"config" value-name:"FILE" description:"Read settings from a YAML file; flags take precedence"`
	Verbose    bool     `short:"v" long:"verbose" description:"Log debug events to stderr"`
	Gops       bool     `long:"gops" description:"Start a gops agent for inspecting the running benchmark"`
	ListCodecs bool     `long:"list-codecs" description:"List the known codecs and exit"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var opts options
	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "serbench"
	rest, err := parser.ParseArgs(args)
	if err != nil {
		if ferr, ok := err.(*flags.Error); ok && ferr.Type == flags.ErrHelp {
			fmt.Fprintln(stdout, ferr.Message)
			return 0
		}
		fmt.Fprintln(stderr, err)
		return 1
	}
	if len(rest) > 0 {
		fmt.Fprintf(stderr, "unexpected arguments: %v\n", rest)
		return 1
	}

	setupLogging(stderr, opts.Verbose)

	if opts.ListCodecs {
		for _, name := range serbench.Codecs() {
			fmt.Fprintln(stdout, name)
		}
		return 0
	}

	if opts.Gops {
		if err := agent.Listen(agent.Options{}); err != nil {
			return bail(err)
		}
		defer agent.Close()
		logx.Info("gops agent started")
	}

	conf, err := loadConfig(&opts)
	if err != nil {
		return bail(err)
	}
	benchOpts, err := conf.Options()
	if err != nil {
		return bail(err)
	}
	b, err := serbench.New(benchOpts...)
	if err != nil {
		return bail(err)
	}
	if err := b.Run(stdout); err != nil {
		return bail(err)
	}
	return 0
}

// loadConfig reads the config file, if any, and lets flags override it.
func loadConfig(opts *options) (*serbench.Config, error) {
	conf := &serbench.Config{}
	if opts.Config != "" {
		var err error
		if conf, err = serbench.ReadConfigFile(opts.Config); err != nil {
			return nil, err
		}
	}

	if len(opts.Sizes) > 0 {
		conf.Sizes = opts.Sizes
	}
	if len(opts.Codecs) > 0 {
		conf.Codecs = opts.Codecs
	}
	if opts.Repeat != 0 {
		conf.Repeat = opts.Repeat
	}
	if opts.Parallel {
		conf.Parallel = true
	}
	if opts.NoVerify {
		verify := false
		conf.Verify = &verify
	}
	if opts.Indent != "" {
		conf.Indent = opts.Indent
	}
	return conf, nil
}

// setupLogging sends logx output to w so that stdout carries only the report.
func setupLogging(w io.Writer, verbose bool) {
	logx.MustSetup(logx.LogConf{Mode: "console", Encoding: "plain"})
	logx.DisableStat()
	logx.SetWriter(logx.NewWriter(w))
	if verbose {
		logx.SetLevel(logx.DebugLevel)
	} else {
		logx.SetLevel(logx.InfoLevel)
	}
}

func bail(err error) int {
	logx.Error(err)
	return 1
}
