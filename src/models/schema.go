package models

// SchemaField is one field of the client-facing form schema. VisibleIf
// exposes the raw visibility rule so a renderer can show/hide fields as
// the user types; the server re-derives visibility on submit and never
// trusts the client's rendering decisions.
type SchemaField struct {
	ID        string          `json:"id"`
	Label     string          `json:"label"`
	Type      FieldType       `json:"type"`
	Required  bool            `json:"required"`
	Options   []FieldOption   `json:"options,omitempty"`
	VisibleIf *VisibilityRule `json:"visibleIf"`
}

// FormSchema is the public projection of a form, served to renderers.
type FormSchema struct {
	ID     string        `json:"id"`
	Title  string        `json:"title"`
	Fields []SchemaField `json:"fields"`
}
