package l2sync

import (
	"github.com/NethermindEth/juno-l2-sync/core/felt"
	"github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator/v10"
)

// Config holds the five options spec.md §6 recognizes. Flag/env parsing is
// an external collaborator per spec.md §1 ("command-line flag parsing ...
// not respecified here"); this struct is populated however the embedding
// process likes and only validated here.
type Config struct {
	GatewayURL       string `validate:"required,url"`
	FeederGatewayURL string `validate:"required,url"`
	ChainID          *felt.Felt `validate:"required"`
	// Workers bounds Class downloader parallelism. Zero means unbounded,
	// matching spec.md §4.3 ("the source does not [cap parallelism]").
	Workers       int `validate:"gte=0"`
	L1CoreAddress common.Address
}

var configValidator = validator.New()

// Validate checks the recognized fields, returning a validator.ValidationErrors
// on failure.
func (c *Config) Validate() error {
	return configValidator.Struct(c)
}
