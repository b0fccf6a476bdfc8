package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"jsx2mp-go/packages/compiler/src/config"
)

func usage() {
	fmt.Println(`jsx2mp-go - compile JSX component templates to mini-app templates
Usage: jsx2mp-go <command> [flags] [args]

Commands:
  compile [flags] <path>   Compile every .jsx template under path
  adapter [flags]          Print the adapter settings of a platform as YAML
  help                     Show help

Run 'jsx2mp-go <command> -h' for the flags of a command.`)
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}
	var err error
	switch cmd := os.Args[1]; cmd {
	case "help", "-h", "--help":
		usage()
		return
	case "compile":
		err = runCompile(os.Args[2:])
	case "adapter":
		err = runAdapter(os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", cmd)
		usage()
		os.Exit(1)
	}
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s error: %v\n", os.Args[1], err)
		os.Exit(1)
	}
}

func runAdapter(args []string) error {
	fs := flag.NewFlagSet("adapter", flag.ContinueOnError)
	platform := fs.String("platform", config.PlatformAli.String(), "target platform (ali, wechat, bytedance, quickapp)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	p, err := config.ParsePlatform(*platform)
	if err != nil {
		return err
	}
	data, err := config.MarshalAdapter(config.AdapterFor(p))
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}

// loadAdapter resolves the adapter from -adapter, falling back to the
// -platform preset.
func loadAdapter(platform, adapterFile string) (*config.Adapter, error) {
	if adapterFile != "" {
		return config.LoadAdapterFile(adapterFile)
	}
	p, err := config.ParsePlatform(platform)
	if err != nil {
		return nil, err
	}
	return config.AdapterFor(p), nil
}
