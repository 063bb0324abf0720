package segment

import "edge-segmenter/internal/field"

// Segmenter converts an intensity field into a binary mask. The two
// shipped variants differ in threshold strategy and output polarity;
// both are deliberate configurations, selected by name through the
// Manager.
type Segmenter interface {
	Process(input *field.Field, params map[string]interface{}) (*field.Mask, error)
	ValidateParameters(params map[string]interface{}) error
	GetDefaultParameters() map[string]interface{}
	GetName() string
}
