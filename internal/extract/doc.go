// Package extract locates an embedded toolchain version inside the free-form
// diagnostic text a JVM prints about itself and normalizes it into the
// display form used by the prompt ("v11.0.4").
//
// Extraction is an anchor scan: find a vendor-specific literal, then take the
// run of characters accepted by the vendor's token class. Vendors are modeled
// as a small table of strategies so new diagnostic formats can be registered
// without touching the scan itself.
package extract
