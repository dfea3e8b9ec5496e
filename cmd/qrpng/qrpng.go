// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Qrpng encodes its arguments or standard input as a QR code and
// writes it as an image or as text.
package main

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt/v2"
	"github.com/pkg/errors"
	"golang.org/x/text/encoding/charmap"

	"github.com/unixdj/qrpng"
	"github.com/unixdj/qrpng/coding"
	"github.com/unixdj/qrpng/internal/config"
)

// settings holds the options after merging flags and configuration.
type settings struct {
	scale   int            // scale
	border  int            // quiet zone
	rev     bool           // reverse colours
	fn      string         // filename
	cfgFile string         // config filename
	format  int            // output file format
	scoring coding.Scoring // mask penalty rules
	latin1  bool           // convert input to Latin-1
	allP    bool           // all penalty rules
	verbose bool           // log diagnostics
}

var g settings

// A usageError reports bad command line arguments.
type usageError string

func (e usageError) Error() string { return string(e) }

// logger carries -v diagnostics.  log.Fatalln stays on the standard
// logger so that errors are printed whatever the level.
var logger = slog.New(slog.NewTextHandler(os.Stderr,
	&slog.HandlerOptions{Level: slog.LevelWarn}))

func printUsage(w io.Writer) {
	cl := getopt.CommandLine
	prog := cl.Program()
	ul := make([]string, 1, 4)
	ul[0] = cl.UsageLine() + " [string ...]"
	ml := max(70-len("Usage: ")-1-len(prog), 0)
	for i := 0; len(ul[i]) > ml; i++ {
		s := ul[i]
		n := ml - 1
		for n > 0 && (s[n] != ' ' || s[n+1] != '[') {
			n--
		}
		ul = append(ul, s[n+1:])
		ul[i] = s[:max(n, 0)]
		ml = 60
	}
	fmt.Fprint(w, "QR code generator\nUsage: ", prog, " ",
		strings.Join(ul, "\n          "), `
If no string is given, data is read from standard input and the final
newline is stripped.  Data is encoded in byte mode at error correction
level M, up to 666 bytes.  Defaults for -1, -m, -P, -s and -t are read
from the configuration file if it exists.

`)
	var b bytes.Buffer
	cl.PrintOptions(&b)
	w.Write(b.Bytes())
}

type opt func()

func (opt) String() string                    { return "" }
func (o opt) Set(string, getopt.Option) error { o(); return nil }

func usage() {
	printUsage(os.Stderr)
	os.Exit(2)
}

func help() {
	printUsage(os.Stdout)
	os.Exit(0)
}

func version() {
	fmt.Println(`qrpng version 0.1.0
Copyright (c) 2011 The Go Authors
Copyright (c) 2024 Vadim Vygonets`)
	os.Exit(0)
}

var types = []string{
	"png", "pngi", "bmp", "bmpi", "pbm", "pbmi", "uri", "urii",
	"utf8", "utf8i", "ascii", "asciii",
}

var encoders = [...]func(*qrpng.Code, io.Writer) error{
	(*qrpng.Code).EncodePNG,
	(*qrpng.Code).EncodeBMP,
	(*qrpng.Code).EncodePBM,
	uri,
	func(c *qrpng.Code, w io.Writer) error { return c.WriteText(w, false) },
	func(c *qrpng.Code, w io.Writer) error { return c.WriteText(w, true) },
}

func uri(c *qrpng.Code, w io.Writer) error {
	s, err := c.DataURI(qrpng.PNG)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s+"\n")
	return err
}

// loadConfig reads the file given by -c, or the default file if it
// exists.
func loadConfig() (*config.Config, error) {
	fn := g.cfgFile
	if fn == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return config.Defaults(), nil
		}
		fn = p
	}
	cfg, err := config.Load(fn)
	if err != nil {
		if g.cfgFile == "" && os.IsNotExist(err) {
			return config.Defaults(), nil
		}
		return nil, errors.Wrap(err, "load config")
	}
	logger.Info("config loaded", "path", fn)
	return cfg, nil
}

// parseFlags defines the options in set, parses args (program name
// first) and merges the configuration file into g.
func parseFlags(set *getopt.Set, args []string) error {
	g = settings{}
	set.SetUsage(usage)
	set.Flag(opt(help), 'h', "show this help").SetFlag()
	set.Flag(opt(version), 'V', "print version and copyright").SetFlag()
	set.Flag(&g.latin1, '1', "convert UTF-8 input to ISO 8859-1")
	set.Flag(&g.allP, 'P', "choose the mask by all four penalty "+
		"rules instead of runs and 2x2 boxes")
	set.Flag(&g.verbose, 'v', "log version, mask and penalties "+
		"to standard error")
	set.Flag(&g.cfgFile, 'c', `configuration file `+
		`[$XDG_CONFIG_HOME/qrpng/config.yaml]`, "file")
	set.Flag(&g.border, 'm', `quiet zone width in modules [4]`,
		"margin")
	fno := set.Flag(&g.fn, 'o', `output file, or "-" for `+
		`standard output`, "file")
	scale := set.Unsigned('s', 4,
		&getopt.UnsignedLimit{Bits: 28, Min: 1, Max: 1 << 28},
		`image pixels per QR module ("pixel"); `+
			`ignored for types utf8[i] and ascii[i]`, "scale")
	ff := set.Enum('t', types, "", `output format, one of: `+
		strings.Join(types, ", ")+
		`; types with "i" appended have colours inverted; `+
		`"uri" writes a PNG data URI; `+
		`if no -o is given and standard output is a TTY, `+
		`default is utf8, otherwise png`, "type")

	if err := set.Getopt(args, nil); err != nil {
		return usageError(err.Error())
	}
	if g.verbose {
		logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
	}
	if set.IsSet('m') && g.border < 0 {
		return usageError("-m must not be negative")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	g.scale = int(*scale)
	if !set.IsSet('s') {
		g.scale = cfg.Scale
	}
	if !set.IsSet('m') {
		g.border = cfg.Margin
	}
	if !set.IsSet('1') {
		g.latin1 = cfg.Latin1
	}
	if g.allP {
		g.scoring = coding.AllRules
	} else {
		// validated by config.Load
		g.scoring, _ = cfg.Rules()
	}
	if !set.IsSet('t') {
		*ff = cfg.Type
	}
	if *ff == "" {
		if !fno.Seen() && isatty.IsTerminal(uintptr(syscall.Stdout)) {
			*ff = "utf8"
		} else {
			*ff = "png"
		}
	}
	g.format = -1
	for i, v := range types {
		if *ff == v {
			g.format = i >> 1
			g.rev = i&1 != 0
			break
		}
	}
	if g.format < 0 {
		return errors.Errorf("config: unknown type %q", *ff)
	}
	if g.fn == "-" {
		g.fn = ""
	}
	return nil
}

func main() {
	log.SetFlags(0)
	if err := parseFlags(getopt.CommandLine, os.Args); err != nil {
		if _, ok := err.(usageError); ok {
			fmt.Fprintln(os.Stderr, err)
			usage()
		}
		log.Fatalln(err)
	}

	var s string
	if args := getopt.Args(); len(args) != 0 {
		s = strings.Join(args, " ")
	} else {
		var b strings.Builder
		if _, err := io.Copy(&b, os.Stdin); err != nil {
			log.Fatalln(errors.Wrap(err, "read input"))
		}
		s, _ = strings.CutSuffix(b.String(), "\n")
	}
	if g.latin1 {
		var err error
		if s, err = charmap.ISO8859_1.NewEncoder().String(s); err != nil {
			log.Fatalln(errors.Wrap(err, "convert to ISO 8859-1"))
		}
	}

	c, err := qrpng.EncodeScoring([]byte(s), g.scoring)
	if err != nil {
		log.Fatalln(err)
	}
	logger.Info("encoded", "input", len(s), "version", c.Version,
		"size", c.Size, "mask", c.Mask, "penalties", c.Penalties,
		"scoring", g.scoring)
	if err := write(c); err != nil {
		log.Fatalln(err)
	}
}

// A counter counts bytes written to w.
type counter struct {
	w io.Writer
	n int
}

func (c *counter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += n
	return n, err
}

// write writes c to the output file or standard output.  A file left
// incomplete by an error is removed.
func write(c *qrpng.Code) error {
	var w = os.Stdout
	open := g.fn != ""
	if open {
		var err error
		if w, err = os.OpenFile(g.fn, os.O_WRONLY|os.O_CREATE|os.O_TRUNC,
			0666); err != nil {
			return err
		}
	}
	c.Scale = g.scale
	c.Border = g.border
	c.Reverse = g.rev
	cw := counter{w: w}
	err := encoders[g.format](c, &cw)
	if open {
		if cerr := w.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			os.Remove(g.fn)
		}
	}
	if err != nil {
		return errors.Wrapf(err, "write %s", types[g.format*2])
	}
	logger.Info("written", "type", types[g.format*2+b2i(g.rev)],
		"bytes", cw.n)
	return nil
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
