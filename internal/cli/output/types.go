package output

// JSON payloads written in ModeJSON.

// DAGNode is one component in the dependency graph.
type DAGNode struct {
	Component string   `json:"component"`
	DependsOn []string `json:"depends_on"`
	UsedBy    []string `json:"used_by"`
}

// DAGLevel groups components that depend only on earlier levels.
type DAGLevel struct {
	Level      int       `json:"level"`
	Components []DAGNode `json:"components"`
}

// DAGOutput is the dag command payload.
type DAGOutput struct {
	Levels          []DAGLevel `json:"levels"`
	Roots           []string   `json:"roots"`
	Leaves          []string   `json:"leaves"`
	TotalComponents int        `json:"total_components"`
	TotalEdges      int        `json:"total_edges"`
}

// DAGImpact lists what one component is derived from and what is derived from it.
type DAGImpact struct {
	Component  string   `json:"component"`
	Upstream   []string `json:"upstream"`
	Downstream []string `json:"downstream"`
}

// WidthCheck is the rover width check result.
type WidthCheck struct {
	Passed            bool    `json:"passed"`
	RequiredClearance float64 `json:"required_clearance"`
	Target            float64 `json:"target"`
}

// Warning is a feasibility warning.
type Warning struct {
	Component string  `json:"component"`
	Field     string  `json:"field"`
	Value     float64 `json:"value"`
	Reason    string  `json:"reason"`
}

// Artifact is one persisted record.
type Artifact struct {
	Component string `json:"component"`
	Path      string `json:"path"`
}

// DeriveOutput is the derive command payload.
type DeriveOutput struct {
	RunID              string     `json:"run_id"`
	Params             string     `json:"params"`
	OutDir             string     `json:"out_dir"`
	Width              WidthCheck `json:"width"`
	UpperMinBoltLength float64    `json:"upper_min_bolt_length"`
	LowerMinBoltLength float64    `json:"lower_min_bolt_length"`
	Warnings           []Warning  `json:"warnings"`
	Written            []Artifact `json:"written"`
	Skipped            []string   `json:"skipped"`
	Removed            []string   `json:"removed"`
}

// ValidateOutput is the validate command payload.
type ValidateOutput struct {
	Params string     `json:"params"`
	Width  WidthCheck `json:"width"`
}

// Field is one artifact field.
type Field struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Unit  string  `json:"unit,omitempty"`
}

// ShowOutput is the show command payload.
type ShowOutput struct {
	Component string  `json:"component"`
	Path      string  `json:"path"`
	Fields    []Field `json:"fields"`
}

// Parameter is one parameter table entry.
type Parameter struct {
	Name     string  `json:"name"`
	Value    float64 `json:"value"`
	Unit     string  `json:"unit,omitempty"`
	Required bool    `json:"required"`
}

// ParamsOutput is the params command payload.
type ParamsOutput struct {
	Source     string      `json:"source"`
	Parameters []Parameter `json:"parameters"`
	Missing    []string    `json:"missing"`
}
