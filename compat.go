package tagattrs

// JSONToHTMLAttr parses markup into its first element and attributes.
//
// Deprecated: use Extract.
func JSONToHTMLAttr(markup string) (*Extraction, error) { return Extract(markup) }

// HTMLAttrToJSON renders an attribute mapping as a tag attribute fragment.
//
// Deprecated: use Serialize or SerializeAny.
func HTMLAttrToJSON(attrs any) string { return SerializeAny(attrs) }
