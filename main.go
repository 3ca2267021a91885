package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

const (
	exitOK      = 0
	exitIOError = 1
	exitUsage   = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	log := newLogger(stderr)

	fs := flag.NewFlagSet("letterc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfgPath := fs.String("config", "", "path to config file (default ./"+defaultConfigPath+" if present)")
	format := fs.String("format", "", "output format: text or json")
	encoding := fs.String("encoding", "", "input text encoding, e.g. utf-8, latin1, utf-16le")
	logLevel := fs.String("log-level", "", "log level: debug, info, warn, error")
	progress := fs.Bool("progress", false, "show a progress bar on stderr while reading")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: letterc [options] <path>\ncount letters in a file (use - for stdin)\n\noptions:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "error: wrong number of arguments")
		fs.Usage()
		return exitUsage
	}
	path := fs.Arg(0)

	// 优先级：默认值 < 配置文件 < 环境变量 < 命令行参数
	required := *cfgPath != ""
	if !required {
		*cfgPath = defaultConfigPath
	}
	cfg, err := loadConfig(*cfgPath, required)
	if err != nil {
		log.Errorf("load config failed: %v", err)
		return exitUsage
	}
	if err := cfg.applyEnv(newEnvLookup(dotenvPath)); err != nil {
		log.Errorf("read environment failed: %v", err)
		return exitUsage
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "format":
			cfg.Output.Format = *format
		case "encoding":
			cfg.Input.Encoding = *encoding
		case "log-level":
			cfg.Log.Level = *logLevel
		case "progress":
			cfg.Progress = *progress
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Errorf("invalid config: %v", err)
		return exitUsage
	}
	if err := configureLogger(log, cfg.Log); err != nil {
		log.Errorf("invalid config: %v", err)
		return exitUsage
	}
	log.WithFields(logrus.Fields{
		"encoding": cfg.Input.Encoding,
		"format":   cfg.Output.Format,
		"progress": cfg.Progress,
	}).Debug("config resolved")

	c := &counter{
		encoding: cfg.Input.Encoding,
		progress: cfg.Progress,
		stdin:    stdin,
		stderr:   stderr,
		log:      log,
	}
	tally, err := c.countFile(path)
	if err != nil {
		log.WithField("path", path).Errorf("count letters failed: %v", err)
		return exitIOError
	}

	// 统计成功后再一次性输出，失败时 stdout 保持为空
	var buf bytes.Buffer
	if err := writeReport(&buf, cfg.Output.Format, path, tally); err != nil {
		log.Errorf("render report failed: %v", err)
		return exitIOError
	}
	if _, err := stdout.Write(buf.Bytes()); err != nil {
		log.Errorf("write output failed: %v", err)
		return exitIOError
	}
	return exitOK
}
