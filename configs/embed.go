package configs

import _ "embed"

// ApplicationYAML holds the default application properties.
//
//go:embed application.yml
var ApplicationYAML []byte

// MessagesYAML holds the default message catalogue.
//
//go:embed messages.yml
var MessagesYAML []byte
