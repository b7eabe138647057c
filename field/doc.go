// Package field provides a labeled rich-text input component for Bubble Tea,
// backed by the bubbles textarea.
//
// The package is responsible for field association (name + mirrored form
// value), the live character counter, max-length enforcement, change events,
// and the emote completion popup fed by the emotes package.
package field
