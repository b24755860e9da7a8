// Command radiotap-dump reads a pcap capture containing 802.11 Radiotap
// frames and logs a decoded summary of each one.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(&parseCmd{}, "")
	subcommands.Register(&vendorsCmd{}, "")
	flag.Parse()
	os.Exit(int(subcommands.Execute(context.Background())))
}

// parseCmd decodes a pcap file's Radiotap packets and logs a summary of
// each one.
type parseCmd struct {
	logFile    string
	vendorFile string
}

func (*parseCmd) Name() string     { return "parse" }
func (*parseCmd) Synopsis() string { return "decode a pcap capture of 802.11 Radiotap frames" }
func (*parseCmd) Usage() string {
	return "parse [-log-file path] [-vendors file.yaml] <capture.pcap>\n"
}

func (p *parseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.logFile, "log-file", "", "also write rotated logs to this path")
	f.StringVar(&p.vendorFile, "vendors", "", "YAML file of vendor namespace descriptors to register")
}

func (p *parseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprint(os.Stderr, p.Usage())
		return subcommands.ExitUsageError
	}

	closer, err := configureLogging(p.logFile)
	if err != nil {
		logger.Printf("configuring logging: %s", err)
		return subcommands.ExitFailure
	}
	defer closer.Close()

	h := &radiotapHandler{}
	if p.vendorFile != "" {
		cfg, err := loadVendorFile(p.vendorFile)
		if err != nil {
			logger.Printf("loading vendor config: %s", err)
			return subcommands.ExitFailure
		}
		h.vendors = cfg
	}
	handlers[127] = h

	in, err := os.Open(f.Arg(0))
	if err != nil {
		logger.Printf("opening capture: %s", err)
		return subcommands.ExitFailure
	}
	defer in.Close()

	if err := readPcap(in); err != nil {
		logger.Printf("reading capture: %s", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// vendorsCmd validates a vendor namespace descriptor file without parsing
// any capture.
type vendorsCmd struct{}

func (*vendorsCmd) Name() string     { return "vendors" }
func (*vendorsCmd) Synopsis() string { return "validate a vendor namespace descriptor YAML file" }
func (*vendorsCmd) Usage() string    { return "vendors <file.yaml>\n" }
func (*vendorsCmd) SetFlags(*flag.FlagSet) {}

func (*vendorsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprint(os.Stderr, "vendors <file.yaml>\n")
		return subcommands.ExitUsageError
	}
	cfg, err := loadVendorFile(f.Arg(0))
	if err != nil {
		logger.Printf("%s", err)
		return subcommands.ExitFailure
	}
	logger.Printf("%d vendor namespace(s) declared", len(cfg.Namespaces))
	for _, ns := range cfg.Namespaces {
		logger.Printf("  oui=%s sub=%d fields=%d", ns.Oui, ns.Sub, len(ns.Fields))
	}
	return subcommands.ExitSuccess
}
