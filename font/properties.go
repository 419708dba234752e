package font

import "errors"

import "golang.org/x/image/font/sfnt"

var ErrNotFound = errors.New("font property not found or empty")

// Returns the requested font property for the given font.
// If the property is missing, [ErrNotFound] will be returned.
func GetProperty(font *sfnt.Font, property sfnt.NameID) (string, error) {
	var buffer sfnt.Buffer
	str, err := font.Name(&buffer, property)
	if errors.Is(err, sfnt.ErrNotFound) { return "", ErrNotFound }
	return str, err
}

// Returns the full name of the given font (e.g. "Go Regular").
func GetName(font *sfnt.Font) (string, error) {
	return GetProperty(font, sfnt.NameIDFull)
}

// Returns the family name of the given font (e.g. "Go").
func GetFamily(font *sfnt.Font) (string, error) {
	return GetProperty(font, sfnt.NameIDFamily)
}
