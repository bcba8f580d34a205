package tuning

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/tailscale/hujson"

	"github.com/calvinalkan/succinct-bv/pkg/bitvec"
)

// EnvVar names the environment variable that, if set, points at a
// JSON-with-comments file overriding one or more tuning fields.
const EnvVar = "BV_TUNING_CONFIG"

// override mirrors bitvec.Tuning but with pointer fields so a config
// file only needs to mention the knobs it wants to change.
type override struct {
	Block          *int `json:"block,omitempty"`
	Super          *int `json:"super,omitempty"`
	Mega           *int `json:"mega,omitempty"`
	SuperblockBits *int `json:"superblock_bits,omitempty"`
}

// Load resolves tuning from compiled-in defaults, overridden by the file
// named by BV_TUNING_CONFIG in env if present. A missing env var (or a
// missing file it points at) is not an error - it just means defaults.
func Load(env []string) (bitvec.Tuning, error) {
	t := bitvec.DefaultTuning()

	path := lookupEnv(env, EnvVar)
	if path == "" {
		return t, nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is operator-controlled configuration
	if err != nil {
		if os.IsNotExist(err) {
			return t, nil
		}

		return bitvec.Tuning{}, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, path, err)
	}

	standardized, err := hujson.Standardize(data)
	if err != nil {
		return bitvec.Tuning{}, fmt.Errorf("%w: %s: invalid JSONC: %w", ErrInvalidConfig, path, err)
	}

	var ov override

	if err := json.Unmarshal(standardized, &ov); err != nil {
		return bitvec.Tuning{}, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, path, err)
	}

	applyOverride(&t, ov)

	return t, nil
}

func applyOverride(t *bitvec.Tuning, ov override) {
	if ov.Block != nil {
		t.Block = *ov.Block
	}

	if ov.Super != nil {
		t.Super = *ov.Super
	}

	if ov.Mega != nil {
		t.Mega = *ov.Mega
	}

	if ov.SuperblockBits != nil {
		t.SuperblockBits = *ov.SuperblockBits
	}
}

func lookupEnv(env []string, key string) string {
	for _, e := range env {
		if k, v, ok := strings.Cut(e, "="); ok && k == key {
			return v
		}
	}

	return ""
}
