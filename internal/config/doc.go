// Package config loads polarstrip rendering settings from YAML.
//
// A config file mirrors the render options one to one. Fields left out keep
// their zero value, which means "derive from the strip" exactly as when the
// option is not passed to polarstrip.Render:
//
//	strategy: rings
//	smooth: true
//	degenerate: clamp
//	canvas:
//	  size: 512
//	  background: "#00000000"
//	layout:
//	  radius: 200
//	  thickness: 12
//	  rings: 3
//	  gap: 2
//	  segment: 7.5
//	batch:
//	  ext: .bmp
//	  workers: 4
//	  keep_going: true
//
// Unknown keys are rejected so that typos do not silently fall back to
// defaults.
package config
