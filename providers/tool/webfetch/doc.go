// Package webfetch provides a tool that downloads a web page and converts
// its HTML to Markdown, the format language models digest best.
package webfetch
