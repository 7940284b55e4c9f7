// Package switchlist coordinates the animated indicator of a switch list
// (segmented control or tab bar).
//
// Geometry is only known after the rendering layer has measured every
// option, and measurements arrive one at a time in any order. The
// Coordinator holds a requested selection as pending until the measurement
// set for the current options is complete, places the indicator instantly
// the first time and eases it on every later change, and re-places it when
// labels change under an unchanged selection.
//
// The coordinator is headless. A host feeds it layout reports, scroll
// offsets and presses, advances its tweens from an animation loop, and draws
// from Snapshot.
package switchlist
