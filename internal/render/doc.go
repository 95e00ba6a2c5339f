// Package render draws the two scoreboard charts as PNG images.
//
// Both renderers produce the encoded image bytes and leave file writing to
// the caller, so a run either writes every artifact or none of them.
// Canvas size follows a fixed 6x4 inch figure scaled by the configured DPI.
package render
