package main

import (
	"io"
	"log"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/rf80211/radiotap"
)

// sessionID tags every per-packet summary line from one run of the tool, so
// summaries from concurrent or back-to-back runs against the same log file
// can be told apart.
var sessionID = uuid.New().String()[:8]

// logger writes to stderr and, when -log-file is given, also to a rotated
// log file.
var logger = log.New(os.Stderr, "", log.LstdFlags)

func configureLogging(logFile string) (io.Closer, error) {
	if logFile == "" {
		return io.NopCloser(nil), nil
	}
	rotator := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    20, // megabytes
		MaxBackups: 5,
		MaxAge:     28, // days
	}
	logger = log.New(io.MultiWriter(os.Stderr, rotator), "", log.LstdFlags)
	return rotator, nil
}

func logSummary(c *radiotap.ParsedCapture) {
	rate := "unknown rate"
	switch {
	case c.Vht != nil && len(c.Vht.Users) > 0 && c.Vht.Users[0].Datarate != nil:
		rate = humanize.FormatFloat("#,###.#", float64(*c.Vht.Users[0].Datarate)) + " Mbps (VHT)"
	case c.Mcs != nil && c.Mcs.Datarate != nil:
		rate = humanize.FormatFloat("#,###.#", float64(*c.Mcs.Datarate)) + " Mbps (HT)"
	case c.Rate != nil:
		rate = humanize.FormatFloat("#,###.#", float64(*c.Rate)) + " Mbps"
	}

	signal := "no signal reading"
	if c.AntennaSignal != nil {
		signal = humanize.Comma(int64(*c.AntennaSignal)) + " dBm"
	}

	channel := "unknown channel"
	if c.Channel != nil {
		channel = humanize.Comma(int64(c.Channel.Freq)) + " MHz"
	}

	logger.Printf("[%s] len=%s header=%dB %s, %s, %s, vendors=%d",
		sessionID, humanize.Bytes(uint64(c.Header.Length)), c.Header.Size,
		channel, rate, signal, len(c.Vendors))
}
