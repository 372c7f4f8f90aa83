package linkcheck

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// reportSchema is the contract for the verification report. Requiring a
// non-empty version string makes a missing dependency fail the smoke test.
const reportSchema = `{
  "type": "object",
  "properties": {
    "got": {"type": "string"},
    "want": {"type": "string"},
    "match": {"type": "boolean"},
    "json_lib_version": {"type": "string", "minLength": 1}
  },
  "required": ["got", "want", "match", "json_lib_version"]
}`

// Report captures the outcome of one verification run.
type Report struct {
	Got            string `json:"got"`
	Want           string `json:"want"`
	Match          bool   `json:"match"`
	JSONLibVersion string `json:"json_lib_version"`
}

// Verify compares got against Magic, resolves the JSON library version and
// validates the resulting report against its schema. The validation call
// runs the external dependency's own code, so a broken link surfaces here
// rather than going unnoticed behind version metadata.
//
// A mismatch returns the report together with ErrMagicMismatch; callers
// treat it as the expected failure branch, not an internal error.
func Verify(got string, opts ...Option) (Report, error) {
	o := resolveOptions(opts)

	rep := Report{
		Got:   got,
		Want:  Magic,
		Match: got == Magic,
	}

	ver, err := Example{reporter: o.reporter}.JSONLibVersion()
	if err != nil {
		return rep, fmt.Errorf("resolve json library version: %w", err)
	}

	rep.JSONLibVersion = ver

	if err := rep.validate(); err != nil {
		return rep, err
	}

	if !rep.Match {
		return rep, fmt.Errorf("%w: %q != %q", ErrMagicMismatch, rep.Got, rep.Want)
	}

	return rep, nil
}

func (r Report) validate() error {
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	schemaLoader := gojsonschema.NewStringLoader(reportSchema)
	docLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return fmt.Errorf("validate report: %w", err)
	}

	if result.Valid() {
		return nil
	}

	errs := make([]string, 0, len(result.Errors()))
	for _, resErr := range result.Errors() {
		errs = append(errs, resErr.String())
	}

	return fmt.Errorf("%w: %s", ErrReportInvalid, strings.Join(errs, "; "))
}
