// Command asconctl is a thin demonstration harness over the ascon
// package: it exposes the AEAD, hash, XOF, and MAC entry points as
// hex-in/hex-out subcommands so the library can be exercised from a
// shell without writing Go.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/redeaux-corp/ascon"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("asconctl: ")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "seal":
		runSeal(os.Args[2:])
	case "open":
		runOpen(os.Args[2:])
	case "hash":
		runHash(os.Args[2:])
	case "xof":
		runXof(os.Args[2:])
	case "mac":
		runMac(os.Args[2:])
	case "help", "-h", "--help":
		printUsage()
	default:
		log.Fatalf("unknown subcommand %q", os.Args[1])
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `usage: asconctl <subcommand> [flags]

subcommands:
  seal  -variant ascon128|ascon128a|ascon80pq -key HEX -nonce HEX [-ad HEX] -pt HEX
  open  -variant ascon128|ascon128a|ascon80pq -key HEX -nonce HEX [-ad HEX] -ct HEX
  hash  -variant asconhash|asconhasha -msg HEX
  xof   -variant asconxof|asconxofa -msg HEX -outlen N
  mac   -key HEX -msg HEX [-outlen N] [-short]`)
}

func variantFlag(fs *flag.FlagSet) *string {
	return fs.String("variant", "", "ascon variant name")
}

func parseAEADVariant(name string) ascon.Variant {
	switch name {
	case "ascon128":
		return ascon.Ascon128
	case "ascon128a":
		return ascon.Ascon128a
	case "ascon80pq":
		return ascon.Ascon80pq
	default:
		log.Fatalf("unknown AEAD variant %q", name)
		return 0
	}
}

func parseHashVariant(name string) ascon.Variant {
	switch name {
	case "asconhash":
		return ascon.AsconHash
	case "asconhasha":
		return ascon.AsconHasha
	default:
		log.Fatalf("unknown hash variant %q", name)
		return 0
	}
}

func parseXofVariant(name string) ascon.Variant {
	switch name {
	case "asconxof":
		return ascon.AsconXof
	case "asconxofa":
		return ascon.AsconXofa
	default:
		log.Fatalf("unknown XOF variant %q", name)
		return 0
	}
}

func decodeHexFlag(name, s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		log.Fatalf("-%s: invalid hex: %v", name, err)
	}
	return b
}

func runSeal(args []string) {
	fs := flag.NewFlagSet("seal", flag.ExitOnError)
	variant := variantFlag(fs)
	key := fs.String("key", "", "hex key")
	nonce := fs.String("nonce", "", "hex nonce")
	ad := fs.String("ad", "", "hex associated data")
	pt := fs.String("pt", "", "hex plaintext")
	fs.Parse(args)

	a, err := ascon.NewAEAD(parseAEADVariant(*variant), decodeHexFlag("key", *key))
	if err != nil {
		log.Fatal(err)
	}
	sealed := a.Seal(nil, decodeHexFlag("nonce", *nonce), decodeHexFlag("pt", *pt), decodeHexFlag("ad", *ad))
	fmt.Println(hex.EncodeToString(sealed))
}

func runOpen(args []string) {
	fs := flag.NewFlagSet("open", flag.ExitOnError)
	variant := variantFlag(fs)
	key := fs.String("key", "", "hex key")
	nonce := fs.String("nonce", "", "hex nonce")
	ad := fs.String("ad", "", "hex associated data")
	ct := fs.String("ct", "", "hex ciphertext+tag")
	fs.Parse(args)

	a, err := ascon.NewAEAD(parseAEADVariant(*variant), decodeHexFlag("key", *key))
	if err != nil {
		log.Fatal(err)
	}
	opened, err := a.Open(nil, decodeHexFlag("nonce", *nonce), decodeHexFlag("ct", *ct), decodeHexFlag("ad", *ad))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(hex.EncodeToString(opened))
}

func runHash(args []string) {
	fs := flag.NewFlagSet("hash", flag.ExitOnError)
	variant := variantFlag(fs)
	msg := fs.String("msg", "", "hex message")
	fs.Parse(args)

	h := ascon.NewHash(parseHashVariant(*variant))
	h.Write(decodeHexFlag("msg", *msg))
	fmt.Println(hex.EncodeToString(h.Sum(nil)))
}

func runXof(args []string) {
	fs := flag.NewFlagSet("xof", flag.ExitOnError)
	variant := variantFlag(fs)
	msg := fs.String("msg", "", "hex message")
	outlen := fs.Int("outlen", 32, "output length in bytes")
	fs.Parse(args)

	x := ascon.NewXof(parseXofVariant(*variant))
	x.Write(decodeHexFlag("msg", *msg))
	out := make([]byte, *outlen)
	x.Read(out)
	fmt.Println(hex.EncodeToString(out))
}

func runMac(args []string) {
	fs := flag.NewFlagSet("mac", flag.ExitOnError)
	key := fs.String("key", "", "hex key")
	msg := fs.String("msg", "", "hex message")
	outlen := fs.Int("outlen", 0, "Prf output length in bytes; 0 means Mac")
	short := fs.Bool("short", false, "use PrfShort instead of Mac/Prf")
	fs.Parse(args)

	k := decodeHexFlag("key", *key)
	m := decodeHexFlag("msg", *msg)

	switch {
	case *short:
		tag, err := ascon.PrfShort(k, m)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(hex.EncodeToString(tag[:]))
	case *outlen > 0:
		out, err := ascon.Prf(k, m, *outlen)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(hex.EncodeToString(out))
	default:
		tag, err := ascon.Mac(k, m)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(hex.EncodeToString(tag[:]))
	}
}
