package static

import _ "embed"

// UsageMd contains the embedded API usage guide served at the root path.
//
//go:embed usage.md
var UsageMd string
