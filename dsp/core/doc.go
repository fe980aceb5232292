// Package core holds small numeric and buffer helpers shared by the
// effect and filter packages.
package core
