// Package uri builds Obsidian URIs for files written into a vault.
package uri

import (
	"net/url"
	"strings"
)

// encode percent-encodes a query value the way Obsidian expects (spaces as %20).
func encode(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// Open returns an obsidian://open URI for a vault-relative file path.
func Open(vaultName, filePath string) string {
	filePath = strings.TrimPrefix(filePath, "/")
	return "obsidian://open?vault=" + encode(vaultName) + "&file=" + encode(filePath)
}
