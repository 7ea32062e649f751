// Package app wires configuration, logging and the decoder for the binaries.
package app

import (
	"log/slog"

	"github.com/Alfex4936/mapsrpc/internal/config"
	"github.com/Alfex4936/mapsrpc/internal/record"
	"github.com/Alfex4936/mapsrpc/mapsrpc"
)

// NewProcessor compiles the configured layout into a Processor whose
// decoder reports fallbacks to logger. A nil logger means slog.Default().
func NewProcessor(cfg *config.Config, logger *slog.Logger) (*mapsrpc.Processor, error) {
	if logger == nil {
		logger = slog.Default()
	}
	layout, err := cfg.Decoder.Layout()
	if err != nil {
		return nil, err
	}
	dec := record.New(layout, record.WithLogger(logger.With(slog.String("component", "decoder"))))
	return mapsrpc.NewProcessor(dec), nil
}
