package docstore

import (
	"fmt"
	"strings"
	"unicode"
)

// segmentMetaChars are the sequences no name or path segment may carry:
// traversal and URL query/fragment metacharacters that would change the
// request target.
var segmentMetaChars = []string{"..", "?", "#", "&"}

// ValidateCollectionName checks that name is usable as a single
// collection segment. Empty or whitespace-only names, names containing
// a path separator, and names carrying traversal or URL metacharacters
// are rejected.
func ValidateCollectionName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: empty collection name", ErrInvalidName)
	}
	if strings.Contains(name, "/") {
		return fmt.Errorf("%w: collection name %q contains a path separator", ErrInvalidName, name)
	}
	if err := validateSegment(name); err != nil {
		return fmt.Errorf("%w: collection name %q: %v", ErrInvalidName, name, err)
	}
	return nil
}

// ValidateDocumentPath checks that path alternates collection and
// document segments: an even number (at least two) of non-empty
// segments, each passing the same metacharacter rules as collection
// names.
func ValidateDocumentPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("%w: empty document path", ErrInvalidPath)
	}

	segments := strings.Split(path, "/")
	if len(segments)%2 != 0 {
		return fmt.Errorf("%w: path %q has an odd number of segments", ErrInvalidPath, path)
	}

	for _, segment := range segments {
		if segment == "" {
			return fmt.Errorf("%w: path %q has an empty segment", ErrInvalidPath, path)
		}
		if err := validateSegment(segment); err != nil {
			return fmt.Errorf("%w: path %q: %v", ErrInvalidPath, path, err)
		}
	}
	return nil
}

func validateSegment(segment string) error {
	for _, meta := range segmentMetaChars {
		if strings.Contains(segment, meta) {
			return fmt.Errorf("segment %q contains %q", segment, meta)
		}
	}
	if strings.ContainsFunc(segment, unicode.IsSpace) {
		return fmt.Errorf("segment %q contains whitespace", segment)
	}
	return nil
}
