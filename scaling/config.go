package scaling

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment keys read by Load.
const (
	EnvPreset       = "BSM_SCALING"
	EnvVegaScale    = "BSM_VEGA_SCALE"
	EnvRhoScale     = "BSM_RHO_SCALE"
	EnvEpsilonScale = "BSM_EPSILON_SCALE"
	EnvThetaScale   = "BSM_THETA_SCALE"
	EnvCharmScale   = "BSM_CHARM_SCALE"
	EnvColorScale   = "BSM_COLOR_SCALE"
)

var ErrUnknownPreset = errors.New("unknown scaling preset")

var envKeys = []string{
	EnvPreset, EnvVegaScale, EnvRhoScale, EnvEpsilonScale,
	EnvThetaScale, EnvCharmScale, EnvColorScale,
}

// Preset resolves a preset by name. The empty name selects Standard.
func Preset(name string) (Params, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "standard":
		return Standard(), nil
	case "none", "no_scaling", "raw":
		return NoScaling(), nil
	case "intraday":
		return Intraday(), nil
	case "weekly":
		return Weekly(), nil
	}
	return Params{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}

// Load builds Params from the given dotenv files and the process
// environment, with non-empty environment values taking precedence. With no
// files only the environment is consulted.
func Load(filenames ...string) (Params, error) {
	env := make(map[string]string)
	if len(filenames) > 0 {
		fileEnv, err := godotenv.Read(filenames...)
		if err != nil {
			return Params{}, fmt.Errorf("failed to read scaling config: %w", err)
		}
		env = fileEnv
	}
	for _, key := range envKeys {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			env[key] = v
		}
	}
	return FromMap(env)
}

// FromMap starts from the preset named by BSM_SCALING and applies any
// per-Greek overrides present in env.
func FromMap(env map[string]string) (Params, error) {
	p, err := Preset(env[EnvPreset])
	if err != nil {
		return Params{}, err
	}

	overrides := []struct {
		key   string
		field *float64
	}{
		{EnvVegaScale, &p.VegaScale},
		{EnvRhoScale, &p.RhoScale},
		{EnvEpsilonScale, &p.EpsilonScale},
		{EnvThetaScale, &p.ThetaScale},
		{EnvCharmScale, &p.CharmScale},
		{EnvColorScale, &p.ColorScale},
	}
	for _, o := range overrides {
		raw, ok := env[o.key]
		if !ok || strings.TrimSpace(raw) == "" {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return Params{}, fmt.Errorf("invalid %s: %w", o.key, err)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Params{}, fmt.Errorf("invalid %s: %q is not finite", o.key, raw)
		}
		*o.field = v
	}
	return p, nil
}
