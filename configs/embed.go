package configs

import _ "embed"

// ApplicationYAML is the bundled application.yml, used when no file is found on disk.
//
//go:embed application.yml
var ApplicationYAML []byte

// MessagesYAML is the bundled messages.yml, used when no file is found on disk.
//
//go:embed messages.yml
var MessagesYAML []byte
