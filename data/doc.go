// Package data locates the bundled CVA5 core source tree.
//
// The tree lives in the system_verilog directory next to this package's
// source and is shipped as opaque payload: nothing here parses or checks
// the hardware description itself. A Locator maps names relative to that
// directory onto absolute, existence-checked paths.
package data
