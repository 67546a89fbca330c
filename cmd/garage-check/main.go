package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"

	_ "github.com/joho/godotenv/autoload"

	"github.com/ytget/garage/internal/config"
	"github.com/ytget/garage/internal/imagecheck"
)

// Version and edition are set during build via
// -ldflags "-X main.version=X.Y.Z -X main.edition=business"
var (
	version = "dev"
	edition = config.EditionConsumer
)

// Exit codes
const (
	ExitOK       = 0
	ExitRejected = 1
	ExitUsage    = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("garage-check", flag.ContinueOnError)
	fs.SetOutput(stderr)
	showVersion := fs.Bool("version", false, "print version and exit")
	quiet := fs.Bool("q", false, "print only rejected files")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: garage-check [-version] [-q] PATH_OR_FILE_URL...\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return ExitUsage
	}

	cfg, err := config.LoadEnv()
	if err != nil {
		fmt.Fprintf(stderr, "garage-check: %v\n", err)
		return ExitUsage
	}
	build := cfg.Build(runtime.GOOS, edition)

	if *showVersion {
		fmt.Fprintf(stdout, "garage-check %s (%s, %s)\n", version, build.EditionName(), build.Platform)
		return ExitOK
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return ExitUsage
	}

	service := imagecheck.NewService(imagecheck.Options{
		MaxFileSize:        cfg.MaxImageFileSize,
		Platform:           build.Platform,
		ConvertBackslashes: cfg.ConvertBackslashes,
		Logger:             log.New(stderr, "garage-check: ", 0),
	})

	code := ExitOK
	for _, source := range fs.Args() {
		check := service.Check(source)
		if !check.Status.IsOK() {
			code = ExitRejected
		} else if *quiet {
			continue
		}
		fmt.Fprintf(stdout, "%d\t%s\t%s\n", check.Status.Code(), check.Status, check.Path)
	}

	return code
}
