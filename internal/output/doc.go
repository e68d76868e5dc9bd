// Package output assembles and writes the Markdown review document.
package output
