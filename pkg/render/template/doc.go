// Package template defines the engine seam HTML renderers use so the
// template implementation can be swapped without touching renderers.
package template
