/*
Package point provides the 2D coordinate value used throughout board
geometry.

A Point stores X and Y as float64 and remembers the significant-digit count
that was configured when it was built (see package config). That snapshot
drives PX and PY, the canonical output form written to SVG and other
downstream formats: whole numbers lose their decimal point, anything else is
rounded to the snapshot's digit count.

Equality is exact. Callers that need a tolerance should Round or snap before
comparing.
*/
package point
