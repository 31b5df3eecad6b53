package main

import (
	"io"

	"github.com/scott-cotton/cli"

	"github.com/unio-sh/unio"
	"github.com/unio-sh/unio/charenc"
	"github.com/unio-sh/unio/stdio"
	"github.com/unio-sh/unio/stream"
)

func uniMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) > 0 {
		if sub := cfg.Main.FindSub(cc, args[0]); sub != nil {
			return sub.Run(cc, args[1:])
		}
	}
	if cfg.Binary {
		return catBinary(args)
	}
	return catText(cfg, args)
}

func catBinary(args []string) error {
	out, err := stdio.BinaryStdout()
	if err != nil {
		return err
	}
	if len(args) == 0 {
		in, err := stdio.BinaryStdin()
		if err != nil {
			return err
		}
		_, err = io.Copy(out, in)
		return err
	}
	for _, name := range args {
		if err := copyBinaryFile(out, name); err != nil {
			return err
		}
	}
	return nil
}

func copyBinaryFile(out io.Writer, name string) error {
	f, err := unio.Open(name, "rb")
	if err != nil {
		return err
	}
	_, cerr := io.Copy(out, f)
	if err := f.Close(); err != nil && cerr == nil {
		cerr = err
	}
	return cerr
}

func catText(cfg *MainConfig, args []string) error {
	mode, err := cfg.errorMode()
	if err != nil {
		return err
	}
	out := stdio.TextStdout()
	flush := func() error { return nil }
	if tw, ok := out.(*stream.TextWriter); ok {
		flush = tw.Flush
	}
	if len(args) == 0 {
		in := stdio.TextStdin(
			stream.WithEncoding(cfg.From),
			stream.WithErrorMode(mode))
		if _, err := io.Copy(out, in); err != nil {
			return err
		}
		return flush()
	}
	for _, name := range args {
		if err := copyTextFile(out, cfg, name, mode); err != nil {
			return err
		}
	}
	return flush()
}

func copyTextFile(out io.Writer, cfg *MainConfig, name string, mode charenc.ErrorMode) error {
	var opts []unio.OpenOption
	if cfg.From != "" {
		opts = append(opts, unio.WithEncoding(cfg.From))
	}
	if mode != charenc.ModeUnset {
		opts = append(opts, unio.WithErrorMode(mode))
	}
	f, err := unio.Open(name, "r", opts...)
	if err != nil {
		return err
	}
	_, cerr := io.Copy(out, f)
	if err := f.Close(); err != nil && cerr == nil {
		cerr = err
	}
	return cerr
}
