// Package version describes the three version axes of the cva5data bundle.
//
// The package axis versions this Go module, the data axis versions the
// bundled CVA5 tree (with its git provenance) and the tool axis versions
// the generator that produced the bundle. All values are fixed when the
// bundle is generated.
package version
