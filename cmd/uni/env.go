package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/unio-sh/unio/charenc"
	"github.com/unio-sh/unio/stdio"
)

type envInfo struct {
	FilesystemEncoding string   `yaml:"filesystemEncoding"`
	StdStreamEncoding  string   `yaml:"stdStreamEncoding"`
	FileReadEncoding   string   `yaml:"fileReadEncoding"`
	FileWriteEncoding  string   `yaml:"fileWriteEncoding"`
	StdinIsTerminal    bool     `yaml:"stdinIsTerminal"`
	StdoutIsTerminal   bool     `yaml:"stdoutIsTerminal"`
	StderrIsTerminal   bool     `yaml:"stderrIsTerminal"`
	Argv               []string `yaml:"argv"`
}

func env(cfg *EnvConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Env.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: env takes no arguments", cli.ErrUsage)
	}
	info := &envInfo{
		FilesystemEncoding: charenc.FilesystemEncoding(),
		StdStreamEncoding:  charenc.StdStreamEncoding(),
		FileReadEncoding:   charenc.FileEncoding(false),
		FileWriteEncoding:  charenc.FileEncoding(true),
		StdinIsTerminal:    stdio.StdinIsTerminal(),
		StdoutIsTerminal:   stdio.StdoutIsTerminal(),
		StderrIsTerminal:   stdio.StderrIsTerminal(),
		Argv:               argvStrings(),
	}
	d, err := yaml.Marshal(info)
	if err != nil {
		return err
	}
	if cfg.Color || isTerminalWriter(cc.Out) {
		return writeColored(cc.Out, d)
	}
	_, err = cc.Out.Write(d)
	return err
}

func argvStrings() []string {
	bs := stdio.BinaryArgv()
	out := make([]string, len(bs))
	for i, b := range bs {
		out[i] = fmt.Sprintf("%q", b)
	}
	return out
}

func isTerminalWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func writeColored(w io.Writer, d []byte) error {
	keyColor := color.New(color.FgCyan).SprintFunc()
	for line := range strings.Lines(string(d)) {
		line = strings.TrimSuffix(line, "\n")
		k, v, found := strings.Cut(line, ":")
		if !found {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, "%s:%s\n", keyColor(k), v); err != nil {
			return err
		}
	}
	return nil
}
