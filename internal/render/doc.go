// Package render turns a combined network graph into a single interactive
// HTML file. The page embeds the vis-network layout engine with Barnes-Hut
// physics and edge-hiding-on-drag disabled; node and edge data is marshalled
// server-side and injected into the page as JSON.
package render
