package models

// RawRow is one uploaded spreadsheet row before classification: cell values
// keyed by column header, exactly as the upload collaborator delivered them.
// Header casing is not normalized here; the classifier resolves the accepted
// variants (e.g. "Ano" vs "ano") through the field accessor.
type RawRow map[string]any
