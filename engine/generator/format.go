package generator

// ConfigFormat is the routing configuration dialect of generated code.
type ConfigFormat string

const (
	FormatYAML       ConfigFormat = "yaml"
	FormatXML        ConfigFormat = "xml"
	FormatPHP        ConfigFormat = "php"
	FormatAnnotation ConfigFormat = "annotation"
)

// NormalizeFormat maps any input to a supported format. Unrecognized values
// silently normalize to yaml.
func NormalizeFormat(format string) ConfigFormat {
	switch ConfigFormat(format) {
	case FormatYAML, FormatXML, FormatPHP, FormatAnnotation:
		return ConfigFormat(format)
	default:
		return FormatYAML
	}
}

// EmitsRoutingFile reports whether the format produces a standalone routing
// configuration file. The annotation format declares routes inline in the
// controller instead.
func (f ConfigFormat) EmitsRoutingFile() bool {
	switch f {
	case FormatYAML, FormatXML, FormatPHP:
		return true
	default:
		return false
	}
}
