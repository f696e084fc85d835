package main

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"syscall"

	"github.com/unixdj/qrgrid"
	"github.com/unixdj/qrgrid/coding"

	"github.com/caarlos0/env/v11"
	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt/v2"
	"golang.org/x/text/encoding/charmap"
)

var g = struct {
	scale  int          // image pixels per module
	border int          // quiet zone width, -1 for format default
	rev    bool         // reverse colours
	fn     string       // output filename
	lev    qrgrid.Level // error correction level
	ver    int          // symbol version, 0 for automatic
	format int          // output format index
	latin1 bool         // transcode input to Latin-1
}{}

// envDefaults seeds the flag defaults, so flags win over the
// environment.
type envDefaults struct {
	Level  string `env:"QRGRID_LEVEL" envDefault:"m"`
	Format string `env:"QRGRID_FORMAT"`
	Scale  uint64 `env:"QRGRID_SCALE" envDefault:"8"`
	Border int64  `env:"QRGRID_BORDER" envDefault:"-1"`
}

func printUsage(w io.Writer) {
	cl := getopt.CommandLine
	fmt.Fprint(w, "QR code generator\nUsage: ", cl.Program(), " ",
		cl.UsageLine(), ` [string ...]
If no string is given, data is read from standard input and the final
newline is stripped.  Environment variables QRGRID_LEVEL, QRGRID_FORMAT,
QRGRID_SCALE and QRGRID_BORDER change the defaults; flags win.

`)
	var b bytes.Buffer
	cl.PrintOptions(&b)
	bb := b.Bytes()
	if n := bytes.Index(bb, []byte(" [-1]")); n != -1 {
		w.Write(bb[:n])
		bb = bb[n+len(" [-1]"):]
	}
	w.Write(bb)
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
	fmt.Println(`qrgrid version 1.0.0
Copyright (c) 2011 The Go Authors
Copyright (c) 2025 Vadim Vygonets`)
	os.Exit(0)
}

var formats = []string{
	"png", "pngi", "pbm", "pbmi", "svg", "svgi",
	"utf8", "utf8i", "ascii", "asciii",
}

var encoders = [...]func(*qrgrid.Code, io.Writer) error{
	(*qrgrid.Code).EncodePNG,
	(*qrgrid.Code).EncodePBM,
	(*qrgrid.Code).EncodeSVG,
	func(c *qrgrid.Code, w io.Writer) error {
		_, err := fmt.Fprint(w, c)
		return err
	},
	ascii,
}

// terminalFormat is the index of the first terminal output format in
// encoders, for the narrower default quiet zone.
const terminalFormat = 3

func parseFlags() {
	var d envDefaults
	if err := env.Parse(&d); err != nil {
		log.Fatalln(err)
	}
	if _, err := coding.ParseLevel(d.Level); err != nil {
		log.Fatalln("QRGRID_LEVEL:", err)
	}
	if d.Format != "" {
		ok := false
		for _, v := range formats {
			ok = ok || v == d.Format
		}
		if !ok {
			log.Fatalln("QRGRID_FORMAT: unknown format")
		}
	}
	if d.Scale < 1 || d.Scale > 1<<28 {
		log.Fatalln("QRGRID_SCALE: out of range")
	}
	if d.Border < -1 || d.Border > 1<<12 {
		log.Fatalln("QRGRID_BORDER: out of range")
	}

	getopt.SetUsage(usage)
	getopt.Flag(opt(help), 'h', "show this help").SetFlag()
	getopt.Flag(opt(version), 'V', "print version and copyright").SetFlag()
	getopt.Flag(&g.latin1, '1', "convert text to Latin-1 before encoding")
	fno := getopt.Flag(&g.fn, 'o', `output file, or "-" for `+
		`standard output`, "file")
	bord := getopt.Signed('b', d.Border,
		&getopt.SignedLimit{Base: 0, Bits: 16, Min: 0, Max: 1 << 12},
		`quiet zone width in modules [4 (2 for types utf8[i] `+
			`and ascii[i])]`, "margin")
	ver := getopt.Unsigned('v', 0, &getopt.UnsignedLimit{Base: 0, Bits: 8, Min: 0, Max: 40},
		"QR code version, 1 to 40; 0 picks the smallest that fits",
		"ver")
	lev := getopt.Enum('l',
		[]string{"l", "m", "q", "h", "L", "M", "Q", "H"}, d.Level,
		"error correction level, lowest to highest", "l|m|q|h")
	scale := getopt.Unsigned('s', d.Scale,
		&(getopt.UnsignedLimit{Base: 0, Bits: 28, Min: 1, Max: 1 << 28}),
		`image pixels per QR module ("pixel"); `+
			`ignored for types utf8[i] and ascii[i]`, "scale")
	ff := getopt.Enum('f', formats, d.Format, `output format, one of: `+
		strings.Join(formats, ", ")+
		`; types with "i" appended have colours inverted; `+
		`if no -o is given and standard output is a TTY, `+
		`default is utf8, otherwise png`, "type")

	getopt.Parse()
	g.scale = int(*scale)
	g.border = int(*bord)
	g.ver = int(*ver)
	l, err := coding.ParseLevel(*lev)
	if err != nil {
		log.Fatalln(err)
	}
	g.lev = qrgrid.Level(l)
	if *ff == "" {
		if !fno.Seen() && isatty.IsTerminal(uintptr(syscall.Stdout)) {
			*ff = "utf8"
		} else {
			*ff = "png"
		}
	}
	for i, v := range formats {
		if *ff == v {
			g.format = i >> 1
			g.rev = i&1 != 0
			break
		}
	}
	if g.fn == "-" {
		g.fn = ""
	}
}

func main() {
	log.SetFlags(0)
	parseFlags()

	var s string
	if args := getopt.Args(); len(args) != 0 {
		s = strings.Join(args, " ")
	} else {
		var b strings.Builder
		if _, err := io.Copy(&b, os.Stdin); err != nil {
			log.Fatalln(err)
		}
		s, _ = strings.CutSuffix(
			strings.ReplaceAll(b.String(), "\r\n", "\n"), "\n")
	}
	if g.latin1 {
		var err error
		if s, err = charmap.ISO8859_1.NewEncoder().String(s); err != nil {
			log.Fatalln(err)
		}
	}
	c, err := qrgrid.EncodeData([]byte(s), g.lev, g.ver)
	if err != nil {
		log.Fatalln(err)
	}
	write(c)
}

func write(c *qrgrid.Code) {
	var w = os.Stdout
	if g.fn != "" {
		var err error
		if w, err = os.OpenFile(g.fn,
			os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0666); err != nil {
			log.Fatalln(err)
		}
	}
	c.Scale = g.scale
	c.Reverse = g.rev
	if g.border >= 0 {
		c.Border = g.border
	} else if g.format >= terminalFormat {
		c.Border = 2
	}
	err := encoders[g.format](c, w)
	if g.fn != "" && err == nil {
		err = w.Close()
	}
	if err != nil {
		log.Fatalln(err)
	}
}

func ascii(c *qrgrid.Code, w io.Writer) error {
	siz := c.Size
	bord := c.Border
	pix := siz + 2*bord
	b := make([]byte, 0, (pix*2+1)*pix)
	for y := -bord; y < siz+bord; y++ {
		for x := -bord; x < siz+bord; x++ {
			var p byte = ' '
			if c.Black(x, y) != c.Reverse {
				p = '#'
			}
			b = append(b, p, p)
		}
		b = append(b, '\n')
	}
	_, err := w.Write(b)
	return err
}
