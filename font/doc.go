// The font subpackage contains helper functions to parse fonts and
// obtain their names, plus a bundled [Default]() font so particle
// fields can be created without shipping any font files.
package font
