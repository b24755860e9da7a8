package main

import (
	"os"

	"github.com/pkg/errors"

	"github.com/rf80211/radiotap"
)

func loadVendorFile(path string) (*radiotap.VendorConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening vendor config file")
	}
	defer f.Close()

	cfg, err := radiotap.LoadVendorConfig(f)
	if err != nil {
		return nil, errors.Wrap(err, "parsing vendor config file")
	}
	return cfg, nil
}
