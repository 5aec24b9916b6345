package registry

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"github/orbitpulse/orbit-gateway/internal/chains"
)

// customChainsDocument is the shape of the operator provided chains
// file. Viper infers the format (json, toml, yaml) from the extension.
type customChainsDocument struct {
	Chains []chains.Record `mapstructure:"chains"`
}

func loadCustomChains(path string) ([]chains.Record, error) {
	if path == "" {
		return nil, nil
	}

	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read custom chains file %s", path)
	}

	var doc customChainsDocument
	if err := v.Unmarshal(&doc); err != nil {
		return nil, errors.Wrapf(err, "failed to parse custom chains file %s", path)
	}

	for i := range doc.Chains {
		doc.Chains[i].IsCustom = true
	}

	log.Info().
		Int("count", len(doc.Chains)).
		Str("path", path).
		Msg("Loaded custom chains")

	return doc.Chains, nil
}
