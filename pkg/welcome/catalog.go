// SPDX-License-Identifier: Apache-2.0
package welcome

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

const (
	// CatalogRoot is the panel's extension catalog page
	CatalogRoot = "/admin/extension/catalog"

	catalogPackagePath = CatalogRoot + "/package/"
	packageDownloadURL = "https://ext.plesk.com/packages/%s-%s/download"
)

// CatalogEntry maps an extension's short name to its catalog ID
type CatalogEntry struct {
	Name string `json:"name" yaml:"name"`
	ID   string `json:"id" yaml:"id"`
}

var catalog = []CatalogEntry{
	{Name: "wp-toolkit", ID: "00d002a7-3252-4996-8a08-aa1c89cf29f7"},
	{Name: "panel-migrator", ID: "bebc4866-d171-45fb-91a6-4b139b8c9a1b"},
	{Name: "security-advisor", ID: "6bcc01cf-d7bb-4e6a-9db8-dd1826dcad8f"},
	{Name: "pagespeed-insights", ID: "3d2639e6-64a9-43fe-a990-c873b6b3ec66"},
}

// Catalog returns every known extension in a stable order
func Catalog() []CatalogEntry {
	entries := make([]CatalogEntry, len(catalog))
	copy(entries, catalog)
	return entries
}

// CatalogIDs returns the whole name to ID table
func CatalogIDs() map[string]string {
	ids := make(map[string]string, len(catalog))
	for _, e := range catalog {
		ids[e.Name] = e.ID
	}
	return ids
}

// CatalogID looks name up in the catalog. Matching is exact and
// case-sensitive.
func CatalogID(name string) (string, bool) {
	for _, e := range catalog {
		if e.Name == name {
			return e.ID, true
		}
	}
	return "", false
}

// CatalogLookup is the outcome of LookupCatalog
type CatalogLookup struct {
	Found bool              `json:"found" yaml:"found"`
	ID    string            `json:"id,omitempty" yaml:"id,omitempty"`
	All   map[string]string `json:"all,omitempty" yaml:"all,omitempty"` // set only when the name is unknown and the full table was asked for
}

// LookupCatalog looks name up and, when it is unknown and returnAll is set,
// hands back the full table instead
func LookupCatalog(name string, returnAll bool) CatalogLookup {
	if id, ok := CatalogID(name); ok {
		return CatalogLookup{Found: true, ID: id}
	}
	if returnAll {
		return CatalogLookup{All: CatalogIDs()}
	}
	return CatalogLookup{}
}

// CatalogLink returns the catalog page of name, or the catalog root for
// unknown extensions
func CatalogLink(name string) string {
	if id, ok := CatalogID(name); ok {
		return catalogPackagePath + id
	}
	return CatalogRoot
}

// PackageURL returns the download URL the panel installs name from
func PackageURL(name string) (string, bool) {
	id, ok := CatalogID(name)
	if !ok {
		return "", false
	}
	return fmt.Sprintf(packageDownloadURL, id, name), true
}

// IsExtensionInstalled reports whether an extension directory called name
// sits next to this extension's plugin directory
func (h *Helper) IsExtensionInstalled(name string) bool {
	path := filepath.Join(filepath.Dir(filepath.Clean(h.pluginDir)), name)
	_, err := os.Stat(path)
	log.Debugf("welcome: extension %s installed=%v (%s)", name, err == nil, path)
	return err == nil
}
