package appfs

import "embed"

// FS embeds the goose migrations.
//go:embed migrations
var FS embed.FS
