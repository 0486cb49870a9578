// Package file reads and writes tree definitions stored as YAML or JSON files.
package file
