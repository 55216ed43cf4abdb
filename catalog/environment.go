package catalog

import (
	"encoding/json"
	"os"
)

// EnvVarName is the env var that may hold a JSON object of overrides,
// e.g. CATALOG_EXPORT='{"CATALOG_TERM":"202610","CATALOG_OUTPUT_PATH":"fall.csv"}'.
const EnvVarName = "CATALOG_EXPORT"

type CompositeEnvVar interface {
	LookupEnv(child string) (string, bool)
}

// JSONCompositeEnvVar resolves ${CHILD} references from the JSON object held
// in the Parent env var, then from the process environment.
type JSONCompositeEnvVar struct {
	Parent string
}

func (c JSONCompositeEnvVar) LookupEnv(child string) (string, bool) {
	if c.Parent != "" {
		s := os.Getenv(c.Parent)
		if s != "" {
			m := make(map[string]string)
			err := json.Unmarshal([]byte(s), &m)
			if err == nil {
				if v, exists := m[child]; exists {
					return v, true
				}
			}
		}
	}
	return os.LookupEnv(child)
}
