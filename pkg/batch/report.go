package batch

import (
	"io"

	"gopkg.in/yaml.v3"
)

type resultRecord struct {
	Name     string   `yaml:"name"`
	Distance *float64 `yaml:"distance,omitempty"`
	Angle    *float64 `yaml:"angle,omitempty"`
	Branch   string   `yaml:"branch,omitempty"`
	Error    string   `yaml:"error,omitempty"`
}

// WriteYAML encodes outcomes as a YAML document with a results list
func WriteYAML(w io.Writer, outcomes []Outcome) error {
	records := make([]resultRecord, 0, len(outcomes))
	for _, o := range outcomes {
		rec := resultRecord{Name: o.Case.Name}
		if o.Err != nil {
			rec.Error = o.Err.Error()
		} else {
			distance, angle := o.Result.Distance, o.Result.Angle
			rec.Distance = &distance
			rec.Angle = &angle
			rec.Branch = o.Result.Branch.String()
		}
		records = append(records, rec)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(struct {
		Results []resultRecord `yaml:"results"`
	}{records}); err != nil {
		return err
	}
	return enc.Close()
}
