package main

import (
	"github.com/pkg/errors"

	"github.com/rf80211/radiotap"
)

// radiotapHandler decodes DLT_IEEE802_11_RADIO packets and logs a summary
// of each one. vendors, if non-nil, is applied to every parse so that
// configured vendor namespaces decode instead of being skipped.
type radiotapHandler struct {
	vendors *radiotap.VendorConfig
}

func (h *radiotapHandler) Handle(b []byte) error {
	builder := radiotap.NewBuilder()
	if h.vendors != nil {
		if err := h.vendors.Apply(builder); err != nil {
			return errors.Wrap(err, "applying vendor config")
		}
	}

	capture, _, err := builder.Parse(b)
	if err != nil {
		if rerr, ok := err.(*radiotap.Error); ok {
			logger.Printf("drop: %s (%s)", rerr, rerr.Kind())
			return nil
		}
		return errors.Wrap(err, "parsing radiotap capture")
	}

	logSummary(capture)
	return nil
}
