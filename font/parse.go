package font

import "os"
import "path/filepath"
import "io"
import "io/fs"
import "errors"
import "fmt"

import "golang.org/x/image/font/sfnt"

// Returned (wrapped) when trying to parse a font from a path
// without a .ttf or .otf extension.
var ErrInvalidPath = errors.New("invalid font path")

// Similar to [sfnt.Parse](), but also including the font name
// in the returned values. The bytes must not be modified while
// the font is in use.
//
// [sfnt.Parse]: https://pkg.go.dev/golang.org/x/image/font/sfnt#Parse.
func ParseFromBytes(fontBytes []byte) (*sfnt.Font, string, error) {
	newFont, err := sfnt.Parse(fontBytes)
	if err != nil {
		return nil, "", err
	}
	fontName, err := GetName(newFont)
	return newFont, fontName, err
}

// Parses the font file at the given OS path, returning the font
// and its name. Supported formats are .ttf and .otf.
func ParseFromPath(path string) (*sfnt.Font, string, error) {
	dir, name := filepath.Split(filepath.Clean(path))
	if dir == "" { dir = "." }
	return ParseFromFS(os.DirFS(dir), name)
}

// Parses the font file at the given path of the filesystem,
// returning the font and its name. Paths must use forward
// slashes, as required by [fs.FS].
func ParseFromFS(filesys fs.FS, path string) (*sfnt.Font, string, error) {
	if !hasValidFontExtension(path) {
		return nil, "", fmt.Errorf("%w '%s'", ErrInvalidPath, path)
	}

	file, err := filesys.Open(path)
	if err != nil {
		return nil, "", err
	}
	return parseFontFileAndClose(file)
}

// ---- helpers ----

func parseFontFileAndClose(file io.ReadCloser) (*sfnt.Font, string, error) {
	fontBytes, err := io.ReadAll(file)
	if err != nil {
		_ = file.Close()
		return nil, "", err
	}
	err = file.Close()
	if err != nil {
		return nil, "", err
	}
	return ParseFromBytes(fontBytes)
}

// Whether font path ends in .ttf or .otf.
func hasValidFontExtension(path string) bool {
	if len(path) < 4 { return false }
	if path[len(path) - 1] != 'f' { return false }
	if path[len(path) - 2] != 't' { return false }
	thrd := path[len(path) - 3]
	if thrd != 't' && thrd != 'o' { return false }
	return path[len(path) - 4] == '.'
}
