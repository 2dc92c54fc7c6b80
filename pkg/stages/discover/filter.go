package discover

import "strings"

// supportedExts is the set of recognised frame extensions, lower-case.
var supportedExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".bmp":  true,
}

// IsSupported reports whether name has a recognised image extension.
// Matching is case-insensitive and purely by suffix; file contents are never inspected.
func IsSupported(name string) bool {
	_, ext := SplitExt(name)
	return ext != "" && supportedExts[strings.ToLower(ext)]
}

// SplitExt splits name into base and final extension (extension keeps its dot).
// Leading dots belong to the base, so ".png" has no extension and "a.b.png" splits as ("a.b", ".png").
// Only the last path element is considered.
func SplitExt(name string) (base, ext string) {
	elem := name
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		elem = name[i+1:]
	}

	dot := strings.LastIndexByte(elem, '.')
	if dot <= 0 || strings.TrimLeft(elem[:dot], ".") == "" {
		return name, ""
	}

	cut := len(name) - len(elem) + dot
	return name[:cut], name[cut:]
}
