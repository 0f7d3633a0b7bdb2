// Command stegotext embeds a text secret into a raster image and recovers
// it again. The output image is always PNG; the input may be any common
// format, though lossy inputs are only useful as carriers, not as stego
// images to decode.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/yyyoichi/stegotext"
	"github.com/yyyoichi/stegotext/imgio"
)

func main() {
	log.SetFlags(0)
	if len(os.Args) < 2 {
		usage()
	}
	switch os.Args[1] {
	case "encode":
		runEncode(os.Args[2:])
	case "decode":
		runDecode(os.Args[2:])
	case "capacity":
		runCapacity(os.Args[2:])
	default:
		usage()
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage:
  stegotext encode -in carrier.png -out stego.png (-text SECRET | -textfile FILE) [-utf8] [-golay]
  stegotext decode -in stego.png [-utf8] [-golay]
  stegotext capacity -in carrier.png`)
	os.Exit(2)
}

func codecOptions(utf8, golay bool) []stegotext.Option {
	var opts []stegotext.Option
	if utf8 {
		opts = append(opts, stegotext.WithUTF8())
	}
	if golay {
		opts = append(opts, stegotext.WithGolay())
	}
	return opts
}

func runEncode(args []string) {
	fs := flag.NewFlagSet("encode", flag.ExitOnError)
	in := fs.String("in", "", "carrier image path (any common format)")
	out := fs.String("out", "", "output image path (written as PNG)")
	text := fs.String("text", "", "secret text")
	textfile := fs.String("textfile", "", "read the secret from a text file instead")
	utf8 := fs.Bool("utf8", false, "embed raw UTF-8 bytes")
	golay := fs.Bool("golay", false, "protect the payload with Golay error correction")
	_ = fs.Parse(args)

	if *in == "" || *out == "" {
		log.Fatal("encode: -in and -out are required")
	}
	secret := *text
	if *textfile != "" {
		data, err := os.ReadFile(*textfile)
		if err != nil {
			log.Fatalf("encode: %v", err)
		}
		secret = string(data)
	}
	if secret == "" {
		log.Fatal("encode: provide -text or -textfile")
	}

	c, err := stegotext.New(codecOptions(*utf8, *golay)...)
	if err != nil {
		log.Fatalf("encode: %v", err)
	}
	if err := c.EncodeFile(context.Background(), *in, secret, *out); err != nil {
		log.Fatalf("encode: %v", err)
	}
	log.Printf("encoded image saved to %s", *out)
}

func runDecode(args []string) {
	fs := flag.NewFlagSet("decode", flag.ExitOnError)
	in := fs.String("in", "", "stego image path")
	utf8 := fs.Bool("utf8", false, "payload was embedded as raw UTF-8 bytes")
	golay := fs.Bool("golay", false, "payload was embedded with Golay error correction")
	_ = fs.Parse(args)

	if *in == "" {
		log.Fatal("decode: -in is required")
	}
	c, err := stegotext.New(codecOptions(*utf8, *golay)...)
	if err != nil {
		log.Fatalf("decode: %v", err)
	}
	secret, err := c.DecodeFile(context.Background(), *in)
	if err != nil {
		log.Fatalf("decode: %v", err)
	}
	fmt.Println(secret)
}

func runCapacity(args []string) {
	fs := flag.NewFlagSet("capacity", flag.ExitOnError)
	in := fs.String("in", "", "carrier image path")
	_ = fs.Parse(args)

	if *in == "" {
		log.Fatal("capacity: -in is required")
	}
	img, format, err := imgio.Load(*in)
	if err != nil {
		log.Fatalf("capacity: %v", err)
	}
	c, _ := stegotext.New()
	bits := c.Capacity(img)
	// one byte of the budget goes to the terminator
	maxSecret := bits/8 - 1
	if maxSecret < 0 {
		maxSecret = 0
	}
	log.Printf("%s (%s): %d bits, up to %d secret bytes", *in, format, bits, maxSecret)
}
